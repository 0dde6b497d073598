// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion metrics, instrumenting the real-time manager's update cycle.
var (
	LoaderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vessel_loader_duration_seconds",
			Help:    "Duration of a feed load, keyed by feed.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"feed"},
	)

	LoaderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vessel_loader_errors_total",
			Help: "Total number of feed load errors.",
		},
		[]string{"feed", "kind"},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vessel_cache_hits_total",
			Help: "Total number of cache hits served by the real-time manager.",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vessel_cache_misses_total",
			Help: "Total number of cache misses served by the real-time manager.",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vessel_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open).",
		},
		[]string{"op"},
	)

	WatcherChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vessel_watcher_changes_total",
			Help: "Total number of file-change events observed by the watcher.",
		},
		[]string{"path"},
	)

	MergedSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vessel_merged_total",
			Help: "Number of vessel records in the most recent merged view.",
		},
	)

	UpdateCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vessel_update_cycle_duration_seconds",
			Help:    "Duration of a complete update cycle (load, validate, merge, analyze).",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)
)

// API metrics, instrumenting the read-only HTTP surface.
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of HTTP API requests.",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP API request duration in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)

// Recorder implements manager.Recorder against the collectors above. It is
// defined here, not in internal/manager, so the manager package stays free
// of a direct Prometheus dependency — it only knows the narrow Recorder
// interface it declares itself.
type Recorder struct{}

// NewRecorder returns a Recorder backed by the package-level collectors.
func NewRecorder() Recorder { return Recorder{} }

func (Recorder) ObserveLoaderDuration(feed string, d time.Duration) {
	LoaderDuration.WithLabelValues(feed).Observe(d.Seconds())
}

func (Recorder) IncLoaderError(feed, kind string) {
	LoaderErrors.WithLabelValues(feed, kind).Inc()
}

func (Recorder) IncCacheHit()  { CacheHits.Inc() }
func (Recorder) IncCacheMiss() { CacheMisses.Inc() }

func (Recorder) SetBreakerState(op string, state int) {
	CircuitBreakerState.WithLabelValues(op).Set(float64(state))
}

func (Recorder) IncWatcherChange(path string) {
	WatcherChanges.WithLabelValues(path).Inc()
}

func (Recorder) SetMergedSize(n int) {
	MergedSize.Set(float64(n))
}

func (Recorder) ObserveUpdateCycleDuration(d time.Duration) {
	UpdateCycleDuration.Observe(d.Seconds())
}

// RecordAPIRequest records one HTTP API request's outcome and latency.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
