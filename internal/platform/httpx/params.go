package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// IDParam parses a positive integer URL parameter.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrValidation, name, raw)
	}
	return id, nil
}

// LogError logs unexpected failures. Client errors mapped to 4xx are not logged.
func LogError(logger *slog.Logger, op string, err error) {
	if logger == nil || err == nil {
		return
	}
	for _, expected := range []error{ErrNotFound, ErrDuplicate, ErrValidation, ErrForbidden, ErrUnauthorized} {
		if errors.Is(err, expected) {
			return
		}
	}
	logger.Error(op, slog.Any("error", err))
}
