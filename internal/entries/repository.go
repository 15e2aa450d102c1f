package entries

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintaskReza/opzer-dash/internal/platform/db"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	db   db.DBTX
	pool *pgxpool.Pool
}

// NewRepository constructs a repository whose bulk writes run in their own
// transaction.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool, pool: pool}
}

// NewReader binds the repository to an existing querier, such as a snapshot
// transaction.
func NewReader(q db.DBTX) *Repository {
	return &Repository{db: q}
}

// ListTimeEntries returns every time entry of the org.
func (r *Repository) ListTimeEntries(ctx context.Context, orgID int64) ([]TimeEntryRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, client_name, team_member, hours_logged, date, service_tag, billable, data_source
		FROM time_entries WHERE org_id = $1 ORDER BY id`, orgID)
	if err != nil {
		return nil, db.MapError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (TimeEntryRecord, error) {
		var (
			rec    TimeEntryRecord
			hours  pgtype.Numeric
			source string
		)
		err := row.Scan(&rec.ID, &rec.ClientName, &rec.TeamMember, &hours, &rec.Date, &rec.ServiceTag, &rec.Billable, &source)
		rec.HoursLogged = db.Float(hours)
		rec.DataSource = DataSource(source)
		return rec, err
	})
	return out, db.MapError(err)
}

// InsertTimeEntries stores rows in one transaction.
func (r *Repository) InsertTimeEntries(ctx context.Context, orgID int64, rows []TimeEntryInput) (int, error) {
	batch := &pgx.Batch{}
	for _, e := range rows {
		batch.Queue(`
			INSERT INTO time_entries (org_id, client_name, team_member, hours_logged, date, service_tag, billable, data_source)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			orgID, e.ClientName, e.TeamMember, db.Numeric(e.HoursLogged), e.Date, e.ServiceTag, *e.Billable, string(e.DataSource))
	}
	return len(rows), r.sendBatch(ctx, batch)
}

// DeleteAllTimeEntries removes every time entry of the org.
func (r *Repository) DeleteAllTimeEntries(ctx context.Context, orgID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM time_entries WHERE org_id = $1`, orgID)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}

// ListRevenueEntries returns every revenue entry of the org.
func (r *Repository) ListRevenueEntries(ctx context.Context, orgID int64) ([]RevenueEntryRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, client_name, amount, date, data_source
		FROM revenue_entries WHERE org_id = $1 ORDER BY id`, orgID)
	if err != nil {
		return nil, db.MapError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RevenueEntryRecord, error) {
		var (
			rec    RevenueEntryRecord
			amount pgtype.Numeric
			source string
		)
		err := row.Scan(&rec.ID, &rec.ClientName, &amount, &rec.Date, &source)
		rec.Amount = db.Float(amount)
		rec.DataSource = DataSource(source)
		return rec, err
	})
	return out, db.MapError(err)
}

// InsertRevenueEntries stores rows in one transaction.
func (r *Repository) InsertRevenueEntries(ctx context.Context, orgID int64, rows []RevenueEntryInput) (int, error) {
	batch := &pgx.Batch{}
	for _, e := range rows {
		batch.Queue(`
			INSERT INTO revenue_entries (org_id, client_name, amount, date, data_source)
			VALUES ($1, $2, $3, $4, $5)`,
			orgID, e.ClientName, db.Numeric(e.Amount), e.Date, string(e.DataSource))
	}
	return len(rows), r.sendBatch(ctx, batch)
}

// DeleteAllRevenueEntries removes every revenue entry of the org.
func (r *Repository) DeleteAllRevenueEntries(ctx context.Context, orgID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM revenue_entries WHERE org_id = $1`, orgID)
	if err != nil {
		return 0, db.MapError(err)
	}
	return tag.RowsAffected(), nil
}

// ListBudgets returns the org's budgets.
func (r *Repository) ListBudgets(ctx context.Context, orgID int64) ([]BudgetRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT id, client_name, budget FROM budget_entries WHERE org_id = $1 ORDER BY id`, orgID)
	if err != nil {
		return nil, db.MapError(err)
	}
	out, err := pgx.CollectRows(rows, scanBudget)
	return out, db.MapError(err)
}

// UpsertBudget inserts or replaces the budget for (org, client).
func (r *Repository) UpsertBudget(ctx context.Context, orgID int64, in BudgetInput) (*BudgetRecord, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO budget_entries (org_id, client_name, budget) VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT budget_entries_org_client_key DO UPDATE SET budget = EXCLUDED.budget
		RETURNING id, client_name, budget`,
		orgID, in.ClientName, db.Numeric(in.Budget))
	if err != nil {
		return nil, db.MapError(err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanBudget)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &rec, nil
}

// DeleteBudget removes one budget owned by orgID.
func (r *Repository) DeleteBudget(ctx context.Context, orgID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM budget_entries WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}

// CountBySource counts the org's time and revenue rows per data source.
func (r *Repository) CountBySource(ctx context.Context, orgID int64) (map[DataSource]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT data_source, count(*) FROM (
			SELECT data_source FROM time_entries WHERE org_id = $1
			UNION ALL
			SELECT data_source FROM revenue_entries WHERE org_id = $1
		) s GROUP BY data_source`, orgID)
	if err != nil {
		return nil, db.MapError(err)
	}
	defer rows.Close()

	out := make(map[DataSource]int64)
	for rows.Next() {
		var (
			source string
			n      int64
		)
		if err := rows.Scan(&source, &n); err != nil {
			return nil, db.MapError(err)
		}
		out[DataSource(source)] = n
	}
	return out, db.MapError(rows.Err())
}

func (r *Repository) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	if r.pool == nil {
		return execBatch(ctx, r.db, batch)
	}
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return execBatch(ctx, tx, batch)
	})
}

func execBatch(ctx context.Context, q db.DBTX, batch *pgx.Batch) error {
	results := q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("entries: row %d: %w", i, db.MapError(err))
		}
	}
	return db.MapError(results.Close())
}

func scanBudget(row pgx.CollectableRow) (BudgetRecord, error) {
	var (
		rec    BudgetRecord
		budget pgtype.Numeric
	)
	err := row.Scan(&rec.ID, &rec.ClientName, &budget)
	rec.Budget = db.Float(budget)
	return rec, err
}
