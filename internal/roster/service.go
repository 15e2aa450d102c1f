package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

// RepositoryPort defines roster persistence.
type RepositoryPort interface {
	ListClients(ctx context.Context, orgID int64) ([]ClientRecord, error)
	CreateClient(ctx context.Context, orgID int64, c profitability.Client) (*ClientRecord, error)
	DeleteClient(ctx context.Context, orgID, id int64) error
	ListTeamMembers(ctx context.Context, orgID int64) ([]TeamMemberRecord, error)
	CreateTeamMember(ctx context.Context, orgID int64, m profitability.TeamMember) (*TeamMemberRecord, error)
	UpdateTeamMember(ctx context.Context, orgID, id int64, in TeamMemberInput) (*TeamMemberRecord, error)
	DeleteTeamMember(ctx context.Context, orgID, id int64) error
}

// Buster invalidates cached dashboards for an organization.
type Buster interface {
	Bust(ctx context.Context, orgID int64)
}

// Service handles roster business logic.
type Service struct {
	repo     RepositoryPort
	buster   Buster
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService builds Service instance. buster may be nil.
func NewService(repo RepositoryPort, buster Buster, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, buster: buster, logger: logger, validate: httpx.NewValidator()}
}

// ListClients returns the org's clients.
func (s *Service) ListClients(ctx context.Context, orgID int64) ([]ClientRecord, error) {
	return s.repo.ListClients(ctx, orgID)
}

// Normalizer builds an identity normalizer from the org's client roster and
// logs ambiguous billing names.
func (s *Service) Normalizer(ctx context.Context, orgID int64) (*profitability.Normalizer, error) {
	records, err := s.repo.ListClients(ctx, orgID)
	if err != nil {
		return nil, err
	}
	n := profitability.NewNormalizer(Clients(records))
	if collisions := n.Collisions(); len(collisions) > 0 {
		s.logger.Warn("billing names map to several clients; first registered wins",
			slog.Int64("org_id", orgID), slog.Any("names", collisions))
	}
	return n, nil
}

// CreateClient validates and stores a client.
func (s *Service) CreateClient(ctx context.Context, orgID int64, in CreateClientInput) (*ClientRecord, error) {
	in.CanonicalName = strings.TrimSpace(in.CanonicalName)
	in.ExternalName = strings.TrimSpace(in.ExternalName)
	if err := httpx.Validate(s.validate, in); err != nil {
		return nil, err
	}
	c := profitability.Client{CanonicalName: in.CanonicalName, ExternalName: in.ExternalName, Status: in.Status}
	if c.ExternalName == "" {
		c.ExternalName = c.CanonicalName
	}
	if c.Status == "" {
		c.Status = profitability.StatusActive
	}
	rec, err := s.repo.CreateClient(ctx, orgID, c)
	if err != nil {
		return nil, err
	}
	s.bust(ctx, orgID)
	return rec, nil
}

// DeleteClient removes a client.
func (s *Service) DeleteClient(ctx context.Context, orgID, id int64) error {
	if err := s.repo.DeleteClient(ctx, orgID, id); err != nil {
		return err
	}
	s.bust(ctx, orgID)
	return nil
}

// ListTeamMembers returns the org's team.
func (s *Service) ListTeamMembers(ctx context.Context, orgID int64) ([]TeamMemberRecord, error) {
	return s.repo.ListTeamMembers(ctx, orgID)
}

// CreateTeamMember validates the input and applies defaults: zero rates,
// Active, 140 hours per month, Onshore.
func (s *Service) CreateTeamMember(ctx context.Context, orgID int64, in TeamMemberInput) (*TeamMemberRecord, error) {
	if err := httpx.Validate(s.validate, in); err != nil {
		return nil, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name: required", httpx.ErrValidation)
	}
	m := profitability.TeamMember{
		Name:                  strings.TrimSpace(*in.Name),
		Status:                profitability.StatusActive,
		CapacityHoursPerMonth: profitability.DefaultCapacityHoursPerMonth,
		Location:              profitability.LocationOnshore,
	}
	if in.Role != nil {
		m.Role = *in.Role
	}
	if in.CostRate != nil {
		m.CostRate = *in.CostRate
	}
	if in.BillingRate != nil {
		m.BillingRate = *in.BillingRate
	}
	if in.Status != nil {
		m.Status = *in.Status
	}
	if in.CapacityHoursPerMonth != nil {
		m.CapacityHoursPerMonth = *in.CapacityHoursPerMonth
	}
	if in.Location != nil {
		m.Location = *in.Location
	}
	rec, err := s.repo.CreateTeamMember(ctx, orgID, m)
	if err != nil {
		return nil, err
	}
	s.bust(ctx, orgID)
	return rec, nil
}

// UpdateTeamMember applies a partial update.
func (s *Service) UpdateTeamMember(ctx context.Context, orgID, id int64, in TeamMemberInput) (*TeamMemberRecord, error) {
	if err := httpx.Validate(s.validate, in); err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name: required", httpx.ErrValidation)
		}
		in.Name = &name
	}
	rec, err := s.repo.UpdateTeamMember(ctx, orgID, id, in)
	if err != nil {
		return nil, err
	}
	s.bust(ctx, orgID)
	return rec, nil
}

// DeleteTeamMember removes a team member.
func (s *Service) DeleteTeamMember(ctx context.Context, orgID, id int64) error {
	if err := s.repo.DeleteTeamMember(ctx, orgID, id); err != nil {
		return err
	}
	s.bust(ctx, orgID)
	return nil
}

func (s *Service) bust(ctx context.Context, orgID int64) {
	if s.buster != nil {
		s.buster.Bust(ctx, orgID)
	}
}
