package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/fixtures"
	"github.com/fintaskReza/opzer-dash/internal/orgs"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/shared"
)

type stubPDF struct {
	html string
	err  error
}

func (s *stubPDF) RenderHTML(_ context.Context, html string) ([]byte, error) {
	s.html = html
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-1.7"), nil
}

type stubOrgs struct{}

func (stubOrgs) Get(_ context.Context, id int64) (*orgs.Organization, error) {
	return &orgs.Organization{ID: id, Name: "Opzer Demo Firm"}, nil
}

func newTestRouter(loader Loader, pdf PDFRenderer, p *shared.Principal) http.Handler {
	h := NewHandler(nil, NewService(loader, nil, nil), pdf, stubOrgs{}, rbac.Middleware{})
	h.now = func() time.Time { return time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC) }
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if p != nil {
				req = req.WithContext(shared.ContextWithPrincipal(req.Context(), *p))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/dashboard", h.MountRoutes)
	return r
}

var member = &shared.Principal{UserID: 1, OrgID: 1, Role: shared.RoleMember}

func TestDashboardEndpoints(t *testing.T) {
	loader := &stubLoader{data: fixtures.Demo()}
	tests := []struct {
		name      string
		principal *shared.Principal
		path      string
		code      int
	}{
		{"clients", member, "/api/dashboard/client-profitability", http.StatusOK},
		{"services", member, "/api/dashboard/service-profitability?from=2025-06-01&to=2025-06-30", http.StatusOK},
		{"team", member, "/api/dashboard/team-utilization", http.StatusOK},
		{"summary", member, "/api/dashboard/summary?activeOnly=false", http.StatusOK},
		{"overview", member, "/api/dashboard/overview", http.StatusOK},
		{"unknown report", member, "/api/dashboard/pnl", http.StatusNotFound},
		{"anonymous", nil, "/api/dashboard/summary", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			newTestRouter(loader, nil, tt.principal).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, rr.Code, rr.Body.String())
		})
	}
}

func TestDashboardClientRowsMatchEngine(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(&stubLoader{data: fixtures.Demo()}, nil, member).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/client-profitability", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var rows []profitability.ClientProfitabilityRow
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&rows))
	want := profitability.ComputeClientProfitability(DefaultFilters(), fixtures.Demo())
	require.Len(t, rows, len(want))
	assert.Equal(t, want[0].ClientName, rows[0].ClientName)
	assert.InDelta(t, want[0].Revenue, rows[0].Revenue, 1e-9)
}

func TestDashboardEmptyDatasetReturnsArray(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(&stubLoader{}, nil, member).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/team-utilization", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestExportCSV(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(&stubLoader{data: fixtures.Demo()}, nil, member).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/service-profitability/export.csv?from=2025-01-01&to=2025-03-31", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "service-profitability_2025-01-01_2025-03-31.csv")
	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, "Service,"), body)
	assert.Contains(t, body, "\r\n")

	rr = httptest.NewRecorder()
	newTestRouter(&stubLoader{data: fixtures.Demo()}, nil, member).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/summary/export.csv", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Body.String(), "Metric,Value\r\nTotal Revenue,"))
}

func TestReportPDF(t *testing.T) {
	pdf := &stubPDF{}
	rr := httptest.NewRecorder()
	newTestRouter(&stubLoader{data: fixtures.Demo()}, pdf, member).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/report.pdf", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7", rr.Body.String())
	assert.Contains(t, pdf.html, "Opzer Demo Firm")

	failing := &stubPDF{err: errors.New("gotenberg down")}
	rr = httptest.NewRecorder()
	newTestRouter(&stubLoader{data: fixtures.Demo()}, failing, member).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/report.pdf", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = httptest.NewRecorder()
	newTestRouter(&stubLoader{data: fixtures.Demo()}, nil, member).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/report.pdf", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
