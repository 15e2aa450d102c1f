package report

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

func TestRenderHTMLPostsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forms/chromium/convert/html", r.URL.Path)
		file, header, err := r.FormFile("files")
		require.NoError(t, err)
		assert.Equal(t, "index.html", header.Filename)
		body, _ := io.ReadAll(file)
		assert.Contains(t, string(body), "<h1>hi</h1>")
		_, _ = w.Write([]byte("%PDF-1.7"))
	}))
	defer srv.Close()

	pdf, err := NewClient(srv.URL+"/").RenderHTML(context.Background(), "<h1>hi</h1>")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(pdf))
}

func TestRenderHTMLRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.backoff = 20 * time.Millisecond
	start := time.Now()
	_, err := client.RenderHTML(context.Background(), "<p/>")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestRenderHTMLStopsBackoffOnCancel(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.backoff = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.RenderHTML(ctx, "<p/>")
	assert.ErrorIs(t, err, ErrRenderFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), calls.Load())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRenderHTMLDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).RenderHTML(context.Background(), "<p/>")
	assert.ErrorIs(t, err, ErrRenderFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	assert.NoError(t, NewClient(srv.URL).Ping(context.Background()))
}

func TestRenderDashboard(t *testing.T) {
	budget := 1200.0
	html, err := RenderDashboard(DashboardDocument{
		Title:       "Opzer Demo Firm",
		Period:      "2025-01-01 to 2025-12-31",
		GeneratedAt: time.Date(2025, 12, 31, 9, 0, 0, 0, time.UTC),
		Summary:     profitability.Summary{TotalRevenue: 1234567.891, GrossMargin: 0.4567},
		Clients: []profitability.ClientProfitabilityRow{
			{ClientName: "Acme & Sons", Revenue: 1000, GrossProfit: -50, Budget: &budget},
		},
		Team: []profitability.TeamMemberUtilizationRow{{MemberName: "Dana", UtilizationPct: 0.5}},
	})
	require.NoError(t, err)
	assert.Contains(t, html, "$1,234,567.89")
	assert.Contains(t, html, "45.7%")
	assert.Contains(t, html, "Acme &amp; Sons")
	assert.Contains(t, html, `class="neg"`)
	assert.Contains(t, html, "$1,200.00")
	assert.Contains(t, html, "2025-12-31 09:00 UTC")
	assert.True(t, strings.Contains(html, "Dana"))
}
