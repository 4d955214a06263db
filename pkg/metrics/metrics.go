package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DashboardMetrics records upstream fetch, cache, and sync activity.
type DashboardMetrics struct {
	upstreamDuration *prometheus.HistogramVec
	upstreamFailure  *prometheus.CounterVec
	cacheHit         *prometheus.CounterVec
	cacheMiss        *prometheus.CounterVec
	syncTotal        *prometheus.CounterVec
}

// NewDashboardMetrics registers the dashboard metrics on the provided registerer.
func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	if reg == nil {
		return &DashboardMetrics{}
	}
	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of upstream orders API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	upstreamFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_request_failures",
		Help: "Failed upstream orders API requests.",
	}, []string{"operation"})
	cacheHit := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_cache_hits",
		Help: "Report cache hits.",
	}, []string{"app"})
	cacheMiss := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_cache_misses",
		Help: "Report cache misses.",
	}, []string{"app"})
	syncTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_sync_total",
		Help: "Sync trigger outcomes.",
	}, []string{"outcome"})
	reg.MustRegister(upstreamDuration, upstreamFailure, cacheHit, cacheMiss, syncTotal)
	return &DashboardMetrics{
		upstreamDuration: upstreamDuration,
		upstreamFailure:  upstreamFailure,
		cacheHit:         cacheHit,
		cacheMiss:        cacheMiss,
		syncTotal:        syncTotal,
	}
}

// ObserveUpstream records the duration of the named upstream operation.
func (m *DashboardMetrics) ObserveUpstream(operation string, duration time.Duration) {
	if m == nil || m.upstreamDuration == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncUpstreamFailure increments the failure counter for the named operation.
func (m *DashboardMetrics) IncUpstreamFailure(operation string) {
	if m == nil || m.upstreamFailure == nil {
		return
	}
	m.upstreamFailure.WithLabelValues(normalizeLabel(operation)).Inc()
}

// IncCacheHit increments the cache hit counter for the given app filter.
func (m *DashboardMetrics) IncCacheHit(app string) {
	if m == nil || m.cacheHit == nil {
		return
	}
	m.cacheHit.WithLabelValues(appLabel(app)).Inc()
}

// IncCacheMiss increments the cache miss counter for the given app filter.
func (m *DashboardMetrics) IncCacheMiss(app string) {
	if m == nil || m.cacheMiss == nil {
		return
	}
	m.cacheMiss.WithLabelValues(appLabel(app)).Inc()
}

// IncSync records a sync trigger outcome ("success" or "failure").
func (m *DashboardMetrics) IncSync(outcome string) {
	if m == nil || m.syncTotal == nil {
		return
	}
	m.syncTotal.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

func appLabel(app string) string {
	if app == "" {
		return "all"
	}
	return app
}
