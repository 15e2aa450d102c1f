package roster

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/fintaskReza/opzer-dash/internal/platform/db"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

// Repository provides PostgreSQL backed persistence. It accepts a pool or a
// transaction so snapshot readers can share it.
type Repository struct {
	db db.DBTX
}

// NewRepository constructs a repository.
func NewRepository(q db.DBTX) *Repository {
	return &Repository{db: q}
}

const (
	clientColumns = `id, org_id, karbon_name, quickbooks_name, status`
	memberColumns = `id, org_id, name, role, cost_rate, billing_rate, status, capacity_hours_per_month, location`
)

// ListClients returns the org's clients in insertion order, which fixes
// first-wins name resolution.
func (r *Repository) ListClients(ctx context.Context, orgID int64) ([]ClientRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM clients WHERE org_id = $1 ORDER BY id`, orgID)
	if err != nil {
		return nil, db.MapError(err)
	}
	out, err := pgx.CollectRows(rows, scanClient)
	return out, db.MapError(err)
}

// CreateClient inserts a client.
func (r *Repository) CreateClient(ctx context.Context, orgID int64, c profitability.Client) (*ClientRecord, error) {
	rows, err := r.db.Query(ctx,
		`INSERT INTO clients (org_id, karbon_name, quickbooks_name, status) VALUES ($1, $2, $3, $4) RETURNING `+clientColumns,
		orgID, c.CanonicalName, c.ExternalName, string(c.Status),
	)
	if err != nil {
		return nil, db.MapError(err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanClient)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &rec, nil
}

// DeleteClient removes a client owned by orgID.
func (r *Repository) DeleteClient(ctx context.Context, orgID, id int64) error {
	return deleteOwned(ctx, r.db, `DELETE FROM clients WHERE org_id = $1 AND id = $2`, orgID, id)
}

// ListTeamMembers returns the org's team in insertion order.
func (r *Repository) ListTeamMembers(ctx context.Context, orgID int64) ([]TeamMemberRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+memberColumns+` FROM team_members WHERE org_id = $1 ORDER BY id`, orgID)
	if err != nil {
		return nil, db.MapError(err)
	}
	out, err := pgx.CollectRows(rows, scanMember)
	return out, db.MapError(err)
}

// CreateTeamMember inserts a team member.
func (r *Repository) CreateTeamMember(ctx context.Context, orgID int64, m profitability.TeamMember) (*TeamMemberRecord, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO team_members (org_id, name, role, cost_rate, billing_rate, status, capacity_hours_per_month, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+memberColumns,
		orgID, m.Name, m.Role, db.Numeric(m.CostRate), db.Numeric(m.BillingRate),
		string(m.Status), m.CapacityHoursPerMonth, string(m.Location),
	)
	if err != nil {
		return nil, db.MapError(err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanMember)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &rec, nil
}

// UpdateTeamMember applies a partial update.
func (r *Repository) UpdateTeamMember(ctx context.Context, orgID, id int64, in TeamMemberInput) (*TeamMemberRecord, error) {
	var cost, billing *pgtype.Numeric
	if in.CostRate != nil {
		n := db.Numeric(*in.CostRate)
		cost = &n
	}
	if in.BillingRate != nil {
		n := db.Numeric(*in.BillingRate)
		billing = &n
	}
	rows, err := r.db.Query(ctx, `
		UPDATE team_members SET
			name = COALESCE($3, name),
			role = COALESCE($4, role),
			cost_rate = COALESCE($5, cost_rate),
			billing_rate = COALESCE($6, billing_rate),
			status = COALESCE($7, status),
			capacity_hours_per_month = COALESCE($8, capacity_hours_per_month),
			location = COALESCE($9, location)
		WHERE org_id = $1 AND id = $2
		RETURNING `+memberColumns,
		orgID, id, in.Name, in.Role, cost, billing,
		optionalText(in.Status), in.CapacityHoursPerMonth, optionalText(in.Location),
	)
	if err != nil {
		return nil, db.MapError(err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanMember)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &rec, nil
}

// DeleteTeamMember removes a team member owned by orgID.
func (r *Repository) DeleteTeamMember(ctx context.Context, orgID, id int64) error {
	return deleteOwned(ctx, r.db, `DELETE FROM team_members WHERE org_id = $1 AND id = $2`, orgID, id)
}

func deleteOwned(ctx context.Context, q db.DBTX, sql string, orgID, id int64) error {
	tag, err := q.Exec(ctx, sql, orgID, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}

func optionalText[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func scanClient(row pgx.CollectableRow) (ClientRecord, error) {
	var (
		rec    ClientRecord
		status string
	)
	err := row.Scan(&rec.ID, &rec.OrgID, &rec.CanonicalName, &rec.ExternalName, &status)
	rec.Status = profitability.Status(status)
	return rec, err
}

func scanMember(row pgx.CollectableRow) (TeamMemberRecord, error) {
	var (
		rec              TeamMemberRecord
		cost, billing    pgtype.Numeric
		status, location string
	)
	err := row.Scan(&rec.ID, &rec.OrgID, &rec.Name, &rec.Role, &cost, &billing, &status, &rec.CapacityHoursPerMonth, &location)
	rec.CostRate = db.Float(cost)
	rec.BillingRate = db.Float(billing)
	rec.Status = profitability.Status(status)
	rec.Location = profitability.Location(location)
	return rec, err
}
