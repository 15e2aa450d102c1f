// Package seed loads the demo firm into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/fixtures"
	"github.com/fintaskReza/opzer-dash/internal/orgs"
	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/roster"
	"github.com/fintaskReza/opzer-dash/internal/shared"
	"github.com/fintaskReza/opzer-dash/internal/users"
)

// DefaultAdminPassword is used when no password is configured.
const DefaultAdminPassword = "Opzer2025!"

// OrgStore finds and creates organizations.
type OrgStore interface {
	FindBySlug(ctx context.Context, slug string) (*orgs.Organization, error)
	Create(ctx context.Context, in orgs.CreateInput) (*orgs.Organization, error)
}

// UserCreator creates user accounts.
type UserCreator interface {
	CreateUser(ctx context.Context, in users.CreateInput) (*users.User, error)
}

// RosterWriter stores clients and team members.
type RosterWriter interface {
	CreateClient(ctx context.Context, orgID int64, in roster.CreateClientInput) (*roster.ClientRecord, error)
	CreateTeamMember(ctx context.Context, orgID int64, in roster.TeamMemberInput) (*roster.TeamMemberRecord, error)
}

// EntryWriter stores time, revenue and budget rows.
type EntryWriter interface {
	BulkInsertTime(ctx context.Context, orgID int64, rows []entries.TimeEntryInput, fallback entries.DataSource) (int, error)
	BulkInsertRevenue(ctx context.Context, orgID int64, rows []entries.RevenueEntryInput, fallback entries.DataSource) (int, error)
	UpsertBudget(ctx context.Context, orgID int64, in entries.BudgetInput) (*entries.BudgetRecord, error)
}

// Seeder writes the demo dataset through the regular services so every row
// passes the same validation and normalization as user input.
type Seeder struct {
	Orgs    OrgStore
	Users   UserCreator
	Roster  RosterWriter
	Entries EntryWriter
	Logger  *slog.Logger
}

// Result summarizes a seed run.
type Result struct {
	OrgID       int64 `json:"orgId"`
	Skipped     bool  `json:"skipped"`
	Clients     int   `json:"clients"`
	TeamMembers int   `json:"teamMembers"`
	TimeEntries int   `json:"timeEntries"`
	Revenue     int   `json:"revenue"`
	Budgets     int   `json:"budgets"`
}

// Demo creates the demo organization, its admin and the demo dataset.
// It is a no-op when the demo organization already exists.
func (s *Seeder) Demo(ctx context.Context, adminPassword string) (Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}

	existing, err := s.Orgs.FindBySlug(ctx, fixtures.DemoOrgSlug)
	switch {
	case err == nil:
		logger.Info("demo organization present, skipping seed", slog.Int64("org_id", existing.ID))
		return Result{OrgID: existing.ID, Skipped: true}, nil
	case !errors.Is(err, httpx.ErrNotFound):
		return Result{}, fmt.Errorf("seed: find org: %w", err)
	}

	org, err := s.Orgs.Create(ctx, orgs.CreateInput{Name: fixtures.DemoOrgName, Slug: fixtures.DemoOrgSlug})
	if err != nil {
		return Result{}, fmt.Errorf("seed: create org: %w", err)
	}
	res := Result{OrgID: org.ID}

	if _, err := s.Users.CreateUser(ctx, users.CreateInput{
		OrgID:    org.ID,
		Email:    fixtures.DemoAdminEmail,
		Password: adminPassword,
		Name:     fixtures.DemoAdminName,
		Role:     shared.RoleAdmin,
	}); err != nil {
		return res, fmt.Errorf("seed: create admin: %w", err)
	}

	data := fixtures.Demo()
	for _, c := range data.Clients {
		if _, err := s.Roster.CreateClient(ctx, org.ID, roster.CreateClientInput{
			CanonicalName: c.CanonicalName,
			ExternalName:  c.ExternalName,
			Status:        c.Status,
		}); err != nil {
			return res, fmt.Errorf("seed: client %q: %w", c.CanonicalName, err)
		}
		res.Clients++
	}
	for _, m := range data.TeamMembers {
		m := m
		if _, err := s.Roster.CreateTeamMember(ctx, org.ID, roster.TeamMemberInput{
			Name:                  &m.Name,
			Role:                  &m.Role,
			CostRate:              &m.CostRate,
			BillingRate:           &m.BillingRate,
			Status:                &m.Status,
			CapacityHoursPerMonth: &m.CapacityHoursPerMonth,
			Location:              &m.Location,
		}); err != nil {
			return res, fmt.Errorf("seed: team member %q: %w", m.Name, err)
		}
		res.TeamMembers++
	}

	timeRows := make([]entries.TimeEntryInput, len(data.TimeEntries))
	for i, e := range data.TimeEntries {
		billable := e.Billable
		timeRows[i] = entries.TimeEntryInput{
			ClientName:  e.ClientName,
			TeamMember:  e.TeamMember,
			HoursLogged: e.HoursLogged,
			Date:        e.Date,
			ServiceTag:  e.ServiceTag,
			Billable:    &billable,
		}
	}
	if res.TimeEntries, err = s.Entries.BulkInsertTime(ctx, org.ID, timeRows, entries.SourceSeed); err != nil {
		return res, fmt.Errorf("seed: time entries: %w", err)
	}

	// Revenue goes in under billing names so the roster mapping resolves it.
	raw := fixtures.RawRevenue()
	revenueRows := make([]entries.RevenueEntryInput, len(raw))
	for i, r := range raw {
		revenueRows[i] = entries.RevenueEntryInput{ClientName: r.ClientName, Amount: r.Amount, Date: r.Date}
	}
	if res.Revenue, err = s.Entries.BulkInsertRevenue(ctx, org.ID, revenueRows, entries.SourceSeed); err != nil {
		return res, fmt.Errorf("seed: revenue: %w", err)
	}

	for _, b := range data.Budgets {
		if _, err := s.Entries.UpsertBudget(ctx, org.ID, entries.BudgetInput{ClientName: b.ClientName, Budget: b.Budget}); err != nil {
			return res, fmt.Errorf("seed: budget %q: %w", b.ClientName, err)
		}
		res.Budgets++
	}

	logger.Info("demo data seeded",
		slog.Int64("org_id", org.ID),
		slog.Int("clients", res.Clients),
		slog.Int("team_members", res.TeamMembers),
		slog.Int("time_entries", res.TimeEntries),
		slog.Int("revenue", res.Revenue),
	)
	return res, nil
}
