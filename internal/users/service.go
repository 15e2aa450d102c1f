package users

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fintaskReza/opzer-dash/internal/auth"
	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	ListUsers(ctx context.Context, orgID int64) ([]User, error)
	CreateUser(ctx context.Context, in NewUser) (*User, error)
	UpdateUser(ctx context.Context, id int64, p Patch) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Service handles user business logic.
type Service struct {
	repo     RepositoryPort
	validate *validator.Validate
	hash     func(string) (string, error)
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo, validate: httpx.NewValidator(), hash: auth.HashPassword}
}

// ListUsers returns users; orgID 0 lists every organization.
func (s *Service) ListUsers(ctx context.Context, orgID int64) ([]User, error) {
	return s.repo.ListUsers(ctx, orgID)
}

// CreateUser validates the payload, hashes the password and stores the user.
func (s *Service) CreateUser(ctx context.Context, in CreateInput) (*User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := httpx.Validate(s.validate, in); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = shared.RoleMember
	}
	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateUser(ctx, NewUser{OrgID: in.OrgID, Email: in.Email, PasswordHash: hash, Name: in.Name, Role: in.Role})
}

// UpdateUser applies a partial update.
func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateInput) (*User, error) {
	if err := httpx.Validate(s.validate, in); err != nil {
		return nil, err
	}
	patch := Patch{Name: in.Name, Role: in.Role}
	if in.Password != nil {
		hash, err := s.hash(*in.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	return s.repo.UpdateUser(ctx, id, patch)
}

// DeleteUser removes a user. Admins cannot delete themselves.
func (s *Service) DeleteUser(ctx context.Context, actor shared.Principal, id int64) error {
	if actor.UserID == id {
		return httpx.ErrForbidden
	}
	return s.repo.DeleteUser(ctx, id)
}
