package entries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

// RepositoryPort defines entry persistence.
type RepositoryPort interface {
	ListTimeEntries(ctx context.Context, orgID int64) ([]TimeEntryRecord, error)
	InsertTimeEntries(ctx context.Context, orgID int64, rows []TimeEntryInput) (int, error)
	DeleteAllTimeEntries(ctx context.Context, orgID int64) (int64, error)
	ListRevenueEntries(ctx context.Context, orgID int64) ([]RevenueEntryRecord, error)
	InsertRevenueEntries(ctx context.Context, orgID int64, rows []RevenueEntryInput) (int, error)
	DeleteAllRevenueEntries(ctx context.Context, orgID int64) (int64, error)
	ListBudgets(ctx context.Context, orgID int64) ([]BudgetRecord, error)
	UpsertBudget(ctx context.Context, orgID int64, in BudgetInput) (*BudgetRecord, error)
	DeleteBudget(ctx context.Context, orgID, id int64) error
	CountBySource(ctx context.Context, orgID int64) (map[DataSource]int64, error)
}

// NormalizerSource builds the org's billing-name normalizer.
type NormalizerSource interface {
	Normalizer(ctx context.Context, orgID int64) (*profitability.Normalizer, error)
}

// Buster invalidates cached dashboards for an organization.
type Buster interface {
	Bust(ctx context.Context, orgID int64)
}

// Service handles entry business logic.
type Service struct {
	repo     RepositoryPort
	names    NormalizerSource
	buster   Buster
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService builds Service instance. names and buster may be nil.
func NewService(repo RepositoryPort, names NormalizerSource, buster Buster, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, names: names, buster: buster, logger: logger, validate: httpx.NewValidator()}
}

// ListTimeEntries returns the org's time entries.
func (s *Service) ListTimeEntries(ctx context.Context, orgID int64) ([]TimeEntryRecord, error) {
	return s.repo.ListTimeEntries(ctx, orgID)
}

// ListRevenueEntries returns the org's revenue entries.
func (s *Service) ListRevenueEntries(ctx context.Context, orgID int64) ([]RevenueEntryRecord, error) {
	return s.repo.ListRevenueEntries(ctx, orgID)
}

// ListBudgets returns the org's budgets.
func (s *Service) ListBudgets(ctx context.Context, orgID int64) ([]BudgetRecord, error) {
	return s.repo.ListBudgets(ctx, orgID)
}

// CountBySource reports how many rows each data source contributed.
func (s *Service) CountBySource(ctx context.Context, orgID int64) (map[DataSource]int64, error) {
	return s.repo.CountBySource(ctx, orgID)
}

// BulkInsertTime validates and stores time entries. Blank service tags are
// stored as Uncategorized, billable defaults to true and data source to
// fallback.
func (s *Service) BulkInsertTime(ctx context.Context, orgID int64, rows []TimeEntryInput, fallback DataSource) (int, error) {
	if len(rows) > MaxBulkRows {
		return 0, ErrTooManyRows
	}
	if len(rows) == 0 {
		return 0, nil
	}
	prepared := make([]TimeEntryInput, len(rows))
	for i, row := range rows {
		row.ClientName = strings.TrimSpace(row.ClientName)
		row.TeamMember = strings.TrimSpace(row.TeamMember)
		row.ServiceTag = strings.TrimSpace(row.ServiceTag)
		if err := httpx.Validate(s.validate, row); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		if row.ServiceTag == "" {
			row.ServiceTag = profitability.UncategorizedService
		}
		if row.Billable == nil {
			billable := true
			row.Billable = &billable
		}
		if row.DataSource == "" {
			row.DataSource = fallback
		}
		prepared[i] = row
	}
	n, err := s.repo.InsertTimeEntries(ctx, orgID, prepared)
	if err != nil {
		return 0, err
	}
	s.bust(ctx, orgID)
	return n, nil
}

// BulkInsertRevenue validates revenue rows, resolves billing-system client
// names onto the org's roster and stores them.
func (s *Service) BulkInsertRevenue(ctx context.Context, orgID int64, rows []RevenueEntryInput, fallback DataSource) (int, error) {
	if len(rows) > MaxBulkRows {
		return 0, ErrTooManyRows
	}
	if len(rows) == 0 {
		return 0, nil
	}
	var normalizer *profitability.Normalizer
	if s.names != nil {
		n, err := s.names.Normalizer(ctx, orgID)
		if err != nil {
			return 0, err
		}
		normalizer = n
	}
	prepared := make([]RevenueEntryInput, len(rows))
	for i, row := range rows {
		row.ClientName = strings.TrimSpace(row.ClientName)
		if err := httpx.Validate(s.validate, row); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		row.ClientName = normalizer.Normalize(row.ClientName)
		if row.DataSource == "" {
			row.DataSource = fallback
		}
		prepared[i] = row
	}
	n, err := s.repo.InsertRevenueEntries(ctx, orgID, prepared)
	if err != nil {
		return 0, err
	}
	s.bust(ctx, orgID)
	return n, nil
}

// DeleteAllTimeEntries clears the org's time entries.
func (s *Service) DeleteAllTimeEntries(ctx context.Context, orgID int64) (int64, error) {
	n, err := s.repo.DeleteAllTimeEntries(ctx, orgID)
	if err != nil {
		return 0, err
	}
	s.bust(ctx, orgID)
	return n, nil
}

// DeleteAllRevenueEntries clears the org's revenue entries.
func (s *Service) DeleteAllRevenueEntries(ctx context.Context, orgID int64) (int64, error) {
	n, err := s.repo.DeleteAllRevenueEntries(ctx, orgID)
	if err != nil {
		return 0, err
	}
	s.bust(ctx, orgID)
	return n, nil
}

// UpsertBudget sets the budget for one client.
func (s *Service) UpsertBudget(ctx context.Context, orgID int64, in BudgetInput) (*BudgetRecord, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	if err := httpx.Validate(s.validate, in); err != nil {
		return nil, err
	}
	rec, err := s.repo.UpsertBudget(ctx, orgID, in)
	if err != nil {
		return nil, err
	}
	s.bust(ctx, orgID)
	return rec, nil
}

// DeleteBudget removes one budget.
func (s *Service) DeleteBudget(ctx context.Context, orgID, id int64) error {
	if err := s.repo.DeleteBudget(ctx, orgID, id); err != nil {
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
