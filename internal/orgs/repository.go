package orgs

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fintaskReza/opzer-dash/internal/platform/db"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	db db.DBTX
}

// NewRepository constructs a repository.
func NewRepository(q db.DBTX) *Repository {
	return &Repository{db: q}
}

// List returns every organization ordered by id.
func (r *Repository) List(ctx context.Context) ([]Organization, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM organizations ORDER BY id`)
	if err != nil {
		return nil, db.MapError(err)
	}
	out, err := pgx.CollectRows(rows, scanOrg)
	return out, db.MapError(err)
}

// Get fetches one organization.
func (r *Repository) Get(ctx context.Context, id int64) (*Organization, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM organizations WHERE id = $1`, id)
	if err != nil {
		return nil, db.MapError(err)
	}
	org, err := pgx.CollectExactlyOneRow(rows, scanOrg)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &org, nil
}

// FindBySlug fetches an organization by its unique slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*Organization, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, slug, created_at FROM organizations WHERE slug = $1`, slug)
	if err != nil {
		return nil, db.MapError(err)
	}
	org, err := pgx.CollectExactlyOneRow(rows, scanOrg)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &org, nil
}

// Create inserts an organization.
func (r *Repository) Create(ctx context.Context, in CreateInput) (*Organization, error) {
	var org Organization
	err := r.db.QueryRow(ctx,
		`INSERT INTO organizations (name, slug) VALUES ($1, $2) RETURNING id, name, slug, created_at`,
		in.Name, in.Slug,
	).Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &org, nil
}

// Delete removes an organization and, by cascade, all of its data.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}

func scanOrg(row pgx.CollectableRow) (Organization, error) {
	var org Organization
	err := row.Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt)
	return org, err
}
