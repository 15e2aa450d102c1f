package dashboard

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsMu     sync.Mutex
	metricsReady  bool
	metricsErr    error
	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	computeLength *prometheus.HistogramVec
)

// SetupMetrics registers dashboard cache and compute metrics. Subsequent calls
// are ignored.
func SetupMetrics(reg prometheus.Registerer) error {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	if metricsReady {
		return metricsErr
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opzer_dashboard_cache_hits_total",
		Help: "Number of dashboard results served from cache.",
	}, []string{"report", "org"})
	misses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "opzer_dashboard_cache_miss_total",
		Help: "Number of dashboard results computed because the cache was empty.",
	}, []string{"report", "org"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "opzer_dashboard_compute_duration_seconds",
		Help:    "Time spent loading a dataset and running the aggregation engine.",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	cacheHits = register(reg, hits)
	cacheMisses = register(reg, misses)
	computeLength = register(reg, durations)
	metricsReady = true
	return metricsErr
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		metricsErr = err
	}
	return c
}

func recordHit(report Report, orgID int64) {
	if cacheHits != nil {
		cacheHits.WithLabelValues(string(report), strconv.FormatInt(orgID, 10)).Inc()
	}
}

func recordMiss(report Report, orgID int64) {
	if cacheMisses != nil {
		cacheMisses.WithLabelValues(string(report), strconv.FormatInt(orgID, 10)).Inc()
	}
}

func observeCompute(report Report, d time.Duration) {
	if computeLength != nil {
		computeLength.WithLabelValues(string(report)).Observe(d.Seconds())
	}
}
