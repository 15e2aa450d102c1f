package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fintaskReza/opzer-dash/internal/auth"
	"github.com/fintaskReza/opzer-dash/internal/connectors"
	"github.com/fintaskReza/opzer-dash/internal/dashboard"
	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/importer"
	"github.com/fintaskReza/opzer-dash/internal/observability"
	"github.com/fintaskReza/opzer-dash/internal/orgs"
	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/roster"
	"github.com/fintaskReza/opzer-dash/internal/shared"
	"github.com/fintaskReza/opzer-dash/internal/users"
	"github.com/fintaskReza/opzer-dash/jobs"
	"github.com/fintaskReza/opzer-dash/report"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager
	RBACMiddleware rbac.Middleware
	Metrics        *observability.Metrics

	AuthHandler       *auth.Handler
	OrgsHandler       *orgs.Handler
	UsersHandler      *users.Handler
	RosterHandler     *roster.Handler
	EntriesHandler    *entries.Handler
	DashboardHandler  *dashboard.Handler
	ImportHandler     *importer.Handler
	DataSourceHandler *connectors.Handler
	ReportHandler     *report.Handler
	JobHandler        *jobs.Handler
}

// NewRouter constructs the chi.Router with the API defaults.
func NewRouter(params RouterParams) http.Handler {
	if params.Logger == nil {
		params.Logger = slog.Default()
	}
	r := chi.NewRouter()
	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		for _, mw := range MiddlewareStack(MiddlewareConfig{
			Logger:         params.Logger,
			Config:         params.Config,
			SessionManager: params.SessionManager,
			CSRFManager:    params.CSRFManager,
			Metrics:        params.Metrics,
		}) {
			r.Use(mw)
		}

		if params.JobHandler != nil {
			r.Route("/jobs", params.JobHandler.MountRoutes)
		}
		if params.ReportHandler != nil {
			r.Route("/report", params.ReportHandler.MountRoutes)
		}

		r.Route("/api", func(r chi.Router) {
			r.Use(params.RBACMiddleware.Authenticate)

			if params.AuthHandler != nil {
				r.Route("/auth", params.AuthHandler.MountRoutes)
				r.With(params.RBACMiddleware.RequireAuth).Get("/me", params.AuthHandler.Me)
			}
			if params.OrgsHandler != nil {
				r.Route("/orgs", params.OrgsHandler.MountRoutes)
			}
			if params.UsersHandler != nil {
				r.Route("/users", params.UsersHandler.MountRoutes)
			}
			if params.RosterHandler != nil {
				r.Route("/clients", params.RosterHandler.MountClientRoutes)
				r.Route("/team-members", params.RosterHandler.MountTeamRoutes)
			}
			if params.EntriesHandler != nil {
				r.Route("/time-entries", params.EntriesHandler.MountTimeRoutes)
				r.Route("/revenue-entries", params.EntriesHandler.MountRevenueRoutes)
				r.Route("/budget-entries", params.EntriesHandler.MountBudgetRoutes)
			}
			if params.DashboardHandler != nil {
				r.Route("/dashboard", params.DashboardHandler.MountRoutes)
			}
			if params.ImportHandler != nil {
				r.Route("/import", params.ImportHandler.MountRoutes)
			}
			if params.DataSourceHandler != nil {
				r.Route("/data-sources", params.DataSourceHandler.MountRoutes)
			}
		})
	})

	return r
}
