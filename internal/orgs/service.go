package orgs

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
)

// RepositoryPort defines data access methods for organizations.
type RepositoryPort interface {
	List(ctx context.Context) ([]Organization, error)
	Get(ctx context.Context, id int64) (*Organization, error)
	FindBySlug(ctx context.Context, slug string) (*Organization, error)
	Create(ctx context.Context, in CreateInput) (*Organization, error)
	Delete(ctx context.Context, id int64) error
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Service handles organization business logic.
type Service struct {
	repo     RepositoryPort
	validate *validator.Validate
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	v := httpx.NewValidator()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return &Service{repo: repo, validate: v}
}

// List returns all organizations.
func (s *Service) List(ctx context.Context) ([]Organization, error) {
	return s.repo.List(ctx)
}

// Get returns one organization.
func (s *Service) Get(ctx context.Context, id int64) (*Organization, error) {
	return s.repo.Get(ctx, id)
}

// FindBySlug returns the organization with the given slug.
func (s *Service) FindBySlug(ctx context.Context, slug string) (*Organization, error) {
	return s.repo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

// Create validates and stores a new organization. The slug is lowercased.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Organization, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.ToLower(strings.TrimSpace(in.Slug))
	if err := httpx.Validate(s.validate, in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

// Delete removes an organization.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
