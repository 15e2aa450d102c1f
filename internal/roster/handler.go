package roster

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

// Handler exposes client and team member endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	rbac    rbac.Middleware
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, rbac rbac.Middleware) *Handler {
	return &Handler{logger: logger, service: service, rbac: rbac}
}

// MountClientRoutes registers /clients. Reads need a session, writes need admin.
func (h *Handler) MountClientRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Get("/", h.listClients)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAdmin)
		r.Post("/", h.createClient)
		r.Delete("/{id}", h.deleteClient)
	})
}

// MountTeamRoutes registers /team-members.
func (h *Handler) MountTeamRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Get("/", h.listTeamMembers)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAdmin)
		r.Post("/", h.createTeamMember)
		r.Patch("/{id}", h.updateTeamMember)
		r.Put("/{id}", h.updateTeamMember)
		r.Delete("/{id}", h.deleteTeamMember)
	})
}

func orgID(r *http.Request) int64 {
	p, _ := shared.PrincipalFromContext(r.Context())
	return shared.ResolveOrgID(p, r)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.ListClients(r.Context(), orgID(r))
	if err != nil {
		h.fail(w, "list clients", err)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var in CreateClientInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, err)
		return
	}
	client, err := h.service.CreateClient(r.Context(), orgID(r), in)
	if err != nil {
		h.fail(w, "create client", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.DeleteClient(r.Context(), orgID(r), id); err != nil {
		h.fail(w, "delete client", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListTeamMembers(r.Context(), orgID(r))
	if err != nil {
		h.fail(w, "list team members", err)
		return
	}
	httpx.JSON(w, http.StatusOK, members)
}

func (h *Handler) createTeamMember(w http.ResponseWriter, r *http.Request) {
	var in TeamMemberInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, err)
		return
	}
	member, err := h.service.CreateTeamMember(r.Context(), orgID(r), in)
	if err != nil {
		h.fail(w, "create team member", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, member)
}

func (h *Handler) updateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var in TeamMemberInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.RespondError(w, err)
		return
	}
	member, err := h.service.UpdateTeamMember(r.Context(), orgID(r), id, in)
	if err != nil {
		h.fail(w, "update team member", err)
		return
	}
	httpx.JSON(w, http.StatusOK, member)
}

func (h *Handler) deleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IDParam(r, "id")
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.DeleteTeamMember(r.Context(), orgID(r), id); err != nil {
		h.fail(w, "delete team member", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	httpx.LogError(h.logger, op, err)
	httpx.RespondError(w, err)
}
