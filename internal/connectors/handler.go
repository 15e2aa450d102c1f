package connectors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

// Handler exposes /data-sources.
type Handler struct {
	logger   *slog.Logger
	registry *Registry
	rbac     rbac.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, registry *Registry, rbac rbac.Middleware) *Handler {
	return &Handler{logger: logger, registry: registry, rbac: rbac}
}

// MountRoutes registers the data source routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Get("/", h.list)
	r.With(h.rbac.RequireAdmin).Post("/{type}/sync", h.sync)
}

func orgID(r *http.Request) int64 {
	p, _ := shared.PrincipalFromContext(r.Context())
	return shared.ResolveOrgID(p, r)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sources, err := h.registry.List(r.Context(), orgID(r))
	if err != nil {
		httpx.LogError(h.logger, "list data sources", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sources)
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "type")
	c, ok := h.registry.Get(kind)
	if !ok {
		httpx.RespondError(w, fmt.Errorf("%w: data source %q", httpx.ErrNotFound, kind))
		return
	}
	n, err := c.Sync(r.Context(), orgID(r))
	if err != nil {
		if errors.Is(err, ErrNotConnected) {
			httpx.Problem(w, http.StatusConflict, "Not Connected", err.Error())
			return
		}
		httpx.LogError(h.logger, "sync data source", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int{"synced": n})
}
