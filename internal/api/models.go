// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package api

import "time"

// Response is the envelope every handler wraps its payload in.
type Response struct {
	Status   string    `json:"status"`
	Data     any       `json:"data,omitempty"`
	Error    *APIError `json:"error,omitempty"`
	Metadata Metadata  `json:"metadata"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata carries response-level bookkeeping common to every route.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

func newMetadata() Metadata {
	return Metadata{Timestamp: time.Now()}
}

// StatusResponse is the payload served by GET /status. LastErr is surfaced
// as a plain string since schedule.Status excludes it from its own JSON
// encoding (a bare error interface doesn't marshal meaningfully).
type StatusResponse struct {
	BreakerState    string    `json:"breaker_state"`
	LastRunAt       time.Time `json:"last_run_at"`
	LastErr         string    `json:"last_err,omitempty"`
	TickCount       int64     `json:"tick_count"`
	SkipCount       int64     `json:"skip_count"`
	CacheHits       int64     `json:"cache_hits"`
	CacheMisses     int64     `json:"cache_misses"`
	CacheEvictions  int64     `json:"cache_evictions"`
	CacheTotalKeys  int64     `json:"cache_total_keys"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
}
