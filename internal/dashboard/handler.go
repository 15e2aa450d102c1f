package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fintaskReza/opzer-dash/internal/orgs"
	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
	"github.com/fintaskReza/opzer-dash/report"
)

// PDFRenderer turns HTML into a PDF document.
type PDFRenderer interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
}

// OrgDirectory resolves organization details for report titles.
type OrgDirectory interface {
	Get(ctx context.Context, id int64) (*orgs.Organization, error)
}

// Handler exposes the dashboard endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	pdf     PDFRenderer
	orgs    OrgDirectory
	rbac    rbac.Middleware
	now     func() time.Time
}

// NewHandler builds Handler instance. pdf and directory may be nil.
func NewHandler(logger *slog.Logger, service *Service, pdf PDFRenderer, directory OrgDirectory, rbac rbac.Middleware) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, pdf: pdf, orgs: directory, rbac: rbac, now: time.Now}
}

// MountRoutes registers /dashboard.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Use(h.rbac.RequireAuth)
	r.Get("/report.pdf", h.reportPDF)
	r.Get("/overview", h.overview)
	r.Get("/{report}", h.show)
	r.Get("/{report}/export.csv", h.exportCSV)
}

func orgID(r *http.Request) int64 {
	p, _ := shared.PrincipalFromContext(r.Context())
	return shared.ResolveOrgID(p, r)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseReport(chi.URLParam(r, "report"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	org, filters := orgID(r), ParseFilters(r.URL.Query())

	var payload any
	switch kind {
	case ReportClients:
		payload, err = h.service.ClientProfitability(r.Context(), org, filters)
	case ReportServices:
		payload, err = h.service.ServiceProfitability(r.Context(), org, filters)
	case ReportTeam:
		payload, err = h.service.TeamUtilization(r.Context(), org, filters)
	case ReportSummary:
		payload, err = h.service.Summary(r.Context(), org, filters)
	}
	if err != nil {
		h.fail(w, "dashboard "+string(kind), err)
		return
	}
	httpx.JSON(w, http.StatusOK, payload)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Overview(r.Context(), orgID(r), ParseFilters(r.URL.Query()))
	if err != nil {
		h.fail(w, "dashboard overview", err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseReport(chi.URLParam(r, "report"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	org, filters := orgID(r), ParseFilters(r.URL.Query())

	var rows [][]string
	switch kind {
	case ReportClients:
		var data []profitability.ClientProfitabilityRow
		if data, err = h.service.ClientProfitability(r.Context(), org, filters); err == nil {
			rows = profitability.ExportClientRows(data)
		}
	case ReportServices:
		var data []profitability.ServiceProfitabilityRow
		if data, err = h.service.ServiceProfitability(r.Context(), org, filters); err == nil {
			rows = profitability.ExportServiceRows(data)
		}
	case ReportTeam:
		var data []profitability.TeamMemberUtilizationRow
		if data, err = h.service.TeamUtilization(r.Context(), org, filters); err == nil {
			rows = profitability.ExportTeamRows(data)
		}
	case ReportSummary:
		var data profitability.Summary
		if data, err = h.service.Summary(r.Context(), org, filters); err == nil {
			rows = summaryRows(data)
		}
	}
	if err != nil {
		h.fail(w, "dashboard export "+string(kind), err)
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.csv", kind, filters.DateFrom, filters.DateTo)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := WriteCSV(w, rows); err != nil {
		h.logger.Error("dashboard csv stream failed", slog.String("report", string(kind)), slog.Any("error", err))
	}
}

func (h *Handler) reportPDF(w http.ResponseWriter, r *http.Request) {
	if h.pdf == nil {
		httpx.RespondError(w, fmt.Errorf("%w: pdf rendering is not configured", httpx.ErrUnavailable))
		return
	}
	org, filters := orgID(r), ParseFilters(r.URL.Query())
	result, err := h.service.Overview(r.Context(), org, filters)
	if err != nil {
		h.fail(w, "dashboard pdf", err)
		return
	}

	title := "Opzer Dash"
	if h.orgs != nil {
		if o, err := h.orgs.Get(r.Context(), org); err == nil {
			title = o.Name
		}
	}
	html, err := report.RenderDashboard(report.DashboardDocument{
		Title:       title,
		Period:      periodLabel(filters),
		GeneratedAt: h.now(),
		Summary:     result.Summary,
		Clients:     result.Clients,
		Services:    result.Services,
		Team:        result.Team,
	})
	if err != nil {
		h.fail(w, "dashboard pdf template", err)
		return
	}
	pdf, err := h.pdf.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("dashboard pdf render failed", slog.Int64("org_id", org), slog.Any("error", err))
		httpx.RespondError(w, fmt.Errorf("%w: %v", httpx.ErrUnavailable, err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "dashboard_"+filters.DateFrom+"_"+filters.DateTo+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func summaryRows(s profitability.Summary) [][]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return [][]string{
		{"Metric", "Value"},
		{"Total Revenue", f(s.TotalRevenue)},
		{"Total Costs", f(s.TotalCosts)},
		{"Gross Profit", f(s.TotalGrossProfit)},
		{"Gross Margin", strconv.FormatFloat(s.GrossMargin, 'f', 4, 64)},
		{"Avg Effective Hourly Rate", f(s.AvgEffectiveHourlyRate)},
		{"Avg Utilization", strconv.FormatFloat(s.AvgUtilization, 'f', 4, 64)},
		{"Clients", strconv.Itoa(s.ClientCount)},
		{"Team Members", strconv.Itoa(s.MemberCount)},
	}
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	httpx.LogError(h.logger, op, err)
	httpx.RespondError(w, err)
}
