package users

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/fintaskReza/opzer-dash/internal/platform/db"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	db db.DBTX
}

// NewRepository constructs a repository.
func NewRepository(q db.DBTX) *Repository {
	return &Repository{db: q}
}

const userColumns = `id, org_id, email, name, role, created_at`

// ListUsers returns users, optionally restricted to one organization.
func (r *Repository) ListUsers(ctx context.Context, orgID int64) ([]User, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if orgID > 0 {
		rows, err = r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE org_id = $1 ORDER BY id`, orgID)
	} else {
		rows, err = r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	}
	if err != nil {
		return nil, db.MapError(err)
	}
	out, err := pgx.CollectRows(rows, scanUser)
	return out, db.MapError(err)
}

// CreateUser inserts a user.
func (r *Repository) CreateUser(ctx context.Context, in NewUser) (*User, error) {
	rows, err := r.db.Query(ctx,
		`INSERT INTO users (org_id, email, password_hash, name, role) VALUES ($1, $2, $3, $4, $5) RETURNING `+userColumns,
		in.OrgID, strings.ToLower(in.Email), in.PasswordHash, in.Name, string(in.Role),
	)
	if err != nil {
		return nil, db.MapError(err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &u, nil
}

// UpdateUser applies a partial update with COALESCE so absent fields survive.
func (r *Repository) UpdateUser(ctx context.Context, id int64, p Patch) (*User, error) {
	var role *string
	if p.Role != nil {
		s := string(*p.Role)
		role = &s
	}
	rows, err := r.db.Query(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			role = COALESCE($3, role),
			password_hash = COALESCE($4, password_hash)
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.Name, role, p.PasswordHash,
	)
	if err != nil {
		return nil, db.MapError(err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, db.MapError(err)
	}
	return &u, nil
}

// DeleteUser removes a user.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return db.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return db.MapError(pgx.ErrNoRows)
	}
	return nil
}

func scanUser(row pgx.CollectableRow) (User, error) {
	var (
		u    User
		role string
	)
	err := row.Scan(&u.ID, &u.OrgID, &u.Email, &u.Name, &role, &u.CreatedAt)
	u.Role = shared.Role(role)
	return u, err
}
