package jobmetrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRecordsOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	assert.NoError(t, m.Track("dashboard:warmup").End(nil))
	boom := errors.New("boom")
	assert.Equal(t, boom, m.Track("dashboard:warmup").End(boom))
	m.AddOrgs("dashboard:warmup", 3)
	m.AddOrgs("dashboard:warmup", 0)

	rr := httptest.NewRecorder()
	promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `opzer_jobs_total{job="dashboard:warmup",status="success"} 1`)
	assert.Contains(t, body, `opzer_jobs_total{job="dashboard:warmup",status="failure"} 1`)
	assert.Contains(t, body, `opzer_jobs_failures_total{job="dashboard:warmup"} 1`)
	assert.Contains(t, body, `opzer_job_orgs_processed_total{job="dashboard:warmup"} 3`)
	assert.Contains(t, body, `opzer_job_duration_seconds_count{job="dashboard:warmup"} 2`)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	err := errors.New("x")
	assert.Equal(t, err, m.Track("job").End(err))
	m.AddOrgs("job", 1)
}
