package entries

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

// Handler exposes time, revenue and budget endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	rbac    rbac.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, rbac rbac.Middleware) *Handler {
	return &Handler{logger: logger, service: service, rbac: rbac}
}

// MountTimeRoutes registers /time-entries.
func (h *Handler) MountTimeRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Get("/", h.listTime)
	r.Post("/bulk", h.bulkTime)
	r.With(h.rbac.RequireAdmin).Delete("/", h.deleteAllTime)
}

// MountRevenueRoutes registers /revenue-entries.
func (h *Handler) MountRevenueRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Get("/", h.listRevenue)
	r.Post("/bulk", h.bulkRevenue)
	r.With(h.rbac.RequireAdmin).Delete("/", h.deleteAllRevenue)
}

// MountBudgetRoutes registers /budget-entries.
func (h *Handler) MountBudgetRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Get("/", h.listBudgets)
	r.Post("/", h.upsertBudget)
	r.Put("/", h.upsertBudget)
	r.With(h.rbac.RequireAdmin).Delete("/{id}", h.deleteBudget)
}

type insertedResponse struct {
	Inserted int `json:"inserted"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

func orgID(r *http.Request) int64 {
	p, _ := shared.PrincipalFromContext(r.Context())
	return shared.ResolveOrgID(p, r)
}

func (h *Handler) listTime(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListTimeEntries(r.Context(), orgID(r))
	if err != nil {
		h.fail(w, "list time entries", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) bulkTime(w http.ResponseWriter, r *http.Request) {
	var rows []TimeEntryInput
	if err := decodeArray(r, &rows, "time entries"); err != nil {
		httpx.RespondError(w, err)
		return
	}
	n, err := h.service.BulkInsertTime(r.Context(), orgID(r), rows, SourceCSV)
	if err != nil {
		h.fail(w, "bulk insert time entries", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, insertedResponse{Inserted: n})
}

func (h *Handler) deleteAllTime(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.DeleteAllTimeEntries(r.Context(), orgID(r))
	if err != nil {
		h.fail(w, "delete time entries", err)
		return
	}
	httpx.JSON(w, http.StatusOK, deletedResponse{Deleted: n})
}

func (h *Handler) listRevenue(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListRevenueEntries(r.Context(), orgID(r))
	if err != nil {
		h.fail(w, "list revenue entries", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) bulkRevenue(w http.ResponseWriter, r *http.Request) {
	var rows []RevenueEntryInput
	if err := decodeArray(r, &rows, "revenue entries"); err != nil {
		httpx.RespondError(w, err)
		return
	}
	n, err := h.service.BulkInsertRevenue(r.Context(), orgID(r), rows, SourceCSV)
	if err != nil {
		h.fail(w, "bulk insert revenue entries", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, insertedResponse{Inserted: n})
}

func (h *Handler) deleteAllRevenue(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.DeleteAllRevenueEntries(r.Context(), orgID(r))
	if err != nil {
		h.fail(w, "delete revenue entries", err)
		return
	}
	httpx.JSON(w, http.StatusOK, deletedResponse{Deleted: n})
}

func (h *Handler) listBudgets(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListBudgets(r.Context(), orgID(r))
	if err != nil {
		h.fail(w, "list budgets", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rows)
}

func (h *Handler) upsertBudget(w http.ResponseWriter, r *http.Request) {
	var in BudgetInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, err)
		return
	}
	rec, err := h.service.UpsertBudget(r.Context(), orgID(r), in)
	if err != nil {
		h.fail(w, "upsert budget", err)
		return
	}
	httpx.JSON(w, http.StatusOK, rec)
}

func (h *Handler) deleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.DeleteBudget(r.Context(), orgID(r), id); err != nil {
		h.fail(w, "delete budget", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeArray insists on a top-level JSON array so that a single object is
// rejected rather than silently inserted as zero rows.
func decodeArray(r *http.Request, dst any, what string) error {
	var raw json.RawMessage
	if err := httpx.DecodeJSON(r, &raw); err != nil {
		return err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return fmt.Errorf("%w: expected array of %s", httpx.ErrValidation, what)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error())
	}
	return nil
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	httpx.LogError(h.logger, op, err)
	httpx.RespondError(w, err)
}
