package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

const maxUploadBytes = 16 << 20

// Inserter stores parsed rows.
type Inserter interface {
	BulkInsertTime(ctx context.Context, orgID int64, rows []entries.TimeEntryInput, fallback entries.DataSource) (int, error)
	BulkInsertRevenue(ctx context.Context, orgID int64, rows []entries.RevenueEntryInput, fallback entries.DataSource) (int, error)
}

// Handler exposes CSV import endpoints.
type Handler struct {
	logger   *slog.Logger
	inserter Inserter
	rbac     rbac.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, inserter Inserter, rbac rbac.Middleware) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, inserter: inserter, rbac: rbac}
}

// MountRoutes registers /import.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Post("/{kind}", h.upload)
	r.Post("/{kind}/preview", h.preview)
}

type importResponse struct {
	Inserted int     `json:"inserted"`
	Rows     int     `json:"rows"`
	Mapping  Mapping `json:"mapping,omitempty"`
}

type previewResponse struct {
	Headers []string            `json:"headers"`
	Mapping Mapping             `json:"mapping"`
	Sample  []map[string]string `json:"sample"`
	Rows    int                 `json:"rows"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	_, rows, mapping, err := readUpload(w, r)
	if err != nil {
		h.fail(w, "import read", err)
		return
	}
	if len(rows) > entries.MaxBulkRows {
		httpx.RespondError(w, entries.ErrTooManyRows)
		return
	}
	if mapping != nil {
		rows = ApplyColumnMapping(rows, mapping)
	}

	p, _ := shared.PrincipalFromContext(r.Context())
	org := shared.ResolveOrgID(p, r)

	var inserted int
	switch kind {
	case KindTime:
		inserted, err = h.inserter.BulkInsertTime(r.Context(), org, ParseTimeEntries(rows), entries.SourceCSV)
	case KindRevenue:
		inserted, err = h.inserter.BulkInsertRevenue(r.Context(), org, ParseRevenueEntries(rows), entries.SourceCSV)
	}
	if err != nil {
		h.fail(w, "import "+string(kind), err)
		return
	}
	h.logger.Info("csv import", slog.Int64("org_id", org), slog.String("kind", string(kind)), slog.Int("rows", inserted))
	httpx.JSON(w, http.StatusCreated, importResponse{Inserted: inserted, Rows: len(rows), Mapping: mapping})
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	headers, rows, _, err := readUpload(w, r)
	if err != nil {
		h.fail(w, "import preview", err)
		return
	}
	sample := rows
	if len(sample) > 5 {
		sample = sample[:5]
	}
	if sample == nil {
		sample = []map[string]string{}
	}
	httpx.JSON(w, http.StatusOK, previewResponse{
		Headers: headers,
		Mapping: DetectMapping(headers, kind),
		Sample:  sample,
		Rows:    len(rows),
	})
}

// readUpload parses the multipart "file" part and the optional "mapping"
// JSON field.
func readUpload(w http.ResponseWriter, r *http.Request) ([]string, []map[string]string, Mapping, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, nil, fmt.Errorf("%w: upload exceeds %d bytes", httpx.ErrValidation, maxUploadBytes)
		}
		return nil, nil, nil, fmt.Errorf("%w: multipart form: %v", httpx.ErrValidation, err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: file: required", httpx.ErrValidation)
	}
	defer func() {
		_ = file.Close()
	}()

	var mapping Mapping
	if raw := r.FormValue("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
			return nil, nil, nil, fmt.Errorf("%w: mapping: %v", httpx.ErrValidation, err)
		}
	}
	headers, rows, err := ReadCSV(file)
	if err != nil {
		return nil, nil, nil, err
	}
	return headers, rows, mapping, nil
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	httpx.LogError(h.logger, op, err)
	httpx.RespondError(w, err)
}
