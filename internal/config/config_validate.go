// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import "fmt"

// Validate checks every field with a meaningful constraint and returns the
// first violation found.
func (c *Config) Validate() error {
	if c.Update.IntervalSeconds <= 0 {
		return fmt.Errorf("update.interval_seconds must be positive, got %d", c.Update.IntervalSeconds)
	}
	if c.Update.FilePollSeconds <= 0 {
		return fmt.Errorf("update.file_poll_seconds must be positive, got %d", c.Update.FilePollSeconds)
	}
	if c.Update.CacheDefaultTTLSecond <= 0 {
		return fmt.Errorf("update.cache_default_ttl_seconds must be positive, got %d", c.Update.CacheDefaultTTLSecond)
	}
	if c.Update.DedupWindowSeconds < 0 {
		return fmt.Errorf("update.dedup_window_seconds must not be negative, got %d", c.Update.DedupWindowSeconds)
	}
	if c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("breaker.failure_threshold must be positive")
	}
	if c.Breaker.ResetIntervalSeconds <= 0 {
		return fmt.Errorf("breaker.reset_interval_seconds must be positive, got %d", c.Breaker.ResetIntervalSeconds)
	}
	if c.Quality.AvgTEUPerShip <= 0 {
		return fmt.Errorf("quality.avg_teu_per_ship must be positive, got %v", c.Quality.AvgTEUPerShip)
	}
	if c.Quality.VarianceThresholdPct <= 0 {
		return fmt.Errorf("quality.variance_threshold_pct must be positive, got %v", c.Quality.VarianceThresholdPct)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server.host must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
