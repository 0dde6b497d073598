// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package metrics exposes Prometheus collectors for the ingestion core and
its HTTP API.

Recorder implements manager.Recorder, letting the real-time manager stay
free of a direct Prometheus import while still publishing:

	vessel_loader_duration_seconds
	vessel_loader_errors_total
	vessel_cache_hits_total / vessel_cache_misses_total
	vessel_circuit_breaker_state
	vessel_watcher_changes_total
	vessel_merged_total
	vessel_update_cycle_duration_seconds

The manager does not call IncCacheHit or IncCacheMiss, so
vessel_cache_hits_total and vessel_cache_misses_total stay at zero unless
another caller records them.

RecordAPIRequest is called from the API package's request middleware and
publishes api_requests_total and api_request_duration_seconds.

All collectors register themselves on prometheus.DefaultRegisterer via
promauto at package init; the API router (internal/api) mounts
promhttp.Handler() at /metrics.
*/
package metrics
