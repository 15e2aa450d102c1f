package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
)

// MapError translates driver errors into the httpx sentinel errors. Errors
// that are not recognised are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return httpx.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", httpx.ErrDuplicate, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", httpx.ErrNotFound, pgErr.Detail)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.InvalidTextRepresentation:
		return fmt.Errorf("%w: %s", httpx.ErrValidation, pgErr.Message)
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return fmt.Errorf("platform/db: transaction conflict (retryable): %w", err)
	default:
		return fmt.Errorf("platform/db: postgres error [%s]: %s: %w", pgErr.Code, pgErr.Message, err)
	}
}
