// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package manager

import (
	"time"

	"github.com/tomtom215/port-twin/internal/quality"
	"github.com/tomtom215/port-twin/internal/vessel"
)

// Config holds the manager's operating parameters. It is a narrow,
// package-local view of internal/config.Config — main wires the two
// together at startup.
type Config struct {
	FeedPaths                map[vessel.FeedID]string
	HistoricalThroughputPath string

	VesselUpdateInterval time.Duration
	FilePollInterval     time.Duration
	CacheDefaultTTL      time.Duration
	DedupWindow          time.Duration
	DefaultMaxAge        time.Duration

	BreakerFailureThreshold uint32
	BreakerResetInterval    time.Duration

	AvgTEUPerShip        float64
	VarianceThresholdPct float64

	EnableFileMonitoring   bool
	AutoReloadOnFileChange bool
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		VesselUpdateInterval:    300 * time.Second,
		FilePollInterval:        5 * time.Second,
		CacheDefaultTTL:         3600 * time.Second,
		DefaultMaxAge:           300 * time.Second,
		BreakerFailureThreshold: 5,
		BreakerResetInterval:    300 * time.Second,
		AvgTEUPerShip:           quality.DefaultAvgTEUPerShip,
		VarianceThresholdPct:    20,
		EnableFileMonitoring:    true,
		AutoReloadOnFileChange:  true,
	}
}
