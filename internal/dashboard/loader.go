package dashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/platform/db"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
	"github.com/fintaskReza/opzer-dash/internal/roster"
)

// Loader fetches one organization's dataset.
type Loader interface {
	Load(ctx context.Context, orgID int64) (profitability.Dataset, error)
}

// SnapshotLoader reads every table of a dataset inside one read-only
// repeatable-read transaction.
type SnapshotLoader struct {
	pool *pgxpool.Pool
}

// NewSnapshotLoader constructs a loader over pool.
func NewSnapshotLoader(pool *pgxpool.Pool) *SnapshotLoader {
	return &SnapshotLoader{pool: pool}
}

// Load implements Loader.
func (l *SnapshotLoader) Load(ctx context.Context, orgID int64) (profitability.Dataset, error) {
	var data profitability.Dataset
	err := db.WithSnapshot(ctx, l.pool, func(tx pgx.Tx) error {
		people := roster.NewRepository(tx)
		records := entries.NewReader(tx)

		clients, err := people.ListClients(ctx, orgID)
		if err != nil {
			return err
		}
		members, err := people.ListTeamMembers(ctx, orgID)
		if err != nil {
			return err
		}
		timeRows, err := records.ListTimeEntries(ctx, orgID)
		if err != nil {
			return err
		}
		revenue, err := records.ListRevenueEntries(ctx, orgID)
		if err != nil {
			return err
		}
		budgets, err := records.ListBudgets(ctx, orgID)
		if err != nil {
			return err
		}

		data = profitability.Dataset{
			Clients:     roster.Clients(clients),
			TeamMembers: roster.TeamMembers(members),
			TimeEntries: entries.TimeEntries(timeRows),
			Revenue:     entries.RevenueEntries(revenue),
			Budgets:     entries.Budgets(budgets),
		}
		return nil
	})
	if err != nil {
		return profitability.Dataset{}, fmt.Errorf("dashboard: load snapshot: %w", err)
	}
	return data, nil
}
