// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"time"
)

// Config holds every setting the ingestion core needs at startup.
//
// Configuration Categories:
//
//  1. Feeds: file paths for the four vessel feeds and the historical
//     throughput series.
//  2. Update: polling/caching/dedup tuning for the real-time manager.
//  3. Breaker: circuit breaker thresholds guarding the update cycle.
//  4. Quality: cross-reference analyzer tuning.
//  5. Server: HTTP API bind address and timeouts.
//  6. Logging: log level and output format.
//
// Thread Safety: Config is immutable after Load() returns and is safe for
// concurrent read access from multiple goroutines.
type Config struct {
	Feeds    FeedsConfig    `koanf:"feeds"`
	Update   UpdateConfig   `koanf:"update"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Quality  QualityConfig  `koanf:"quality"`
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// FeedsConfig lists the on-disk paths the feed loader and watcher read
// from. Any path left empty yields an empty frame for that feed rather
// than a startup error.
type FeedsConfig struct {
	ArrivedPath             string `koanf:"arrived_path"`
	DepartedPath            string `koanf:"departed_path"`
	ExpectedArrivalsPath    string `koanf:"expected_arrivals_path"`
	ExpectedDeparturesPath  string `koanf:"expected_departures_path"`
	HistoricalThroughputCSV string `koanf:"historical_throughput_csv"`
}

// UpdateConfig tunes the real-time manager's update cycle.
type UpdateConfig struct {
	IntervalSeconds       int     `koanf:"interval_seconds"`
	FilePollSeconds       int     `koanf:"file_poll_seconds"`
	CacheDefaultTTLSecond int     `koanf:"cache_default_ttl_seconds"`
	DedupWindowSeconds    int     `koanf:"dedup_window_seconds"`
	DefaultMaxAgeSeconds  int     `koanf:"default_max_age_seconds"`
	EnableFileMonitoring  bool    `koanf:"enable_file_monitoring"`
	AutoReloadOnChange    bool    `koanf:"auto_reload_on_file_change"`

	Interval       time.Duration `koanf:"-"`
	FilePoll       time.Duration `koanf:"-"`
	CacheDefaultTTL time.Duration `koanf:"-"`
	DedupWindow    time.Duration `koanf:"-"`
	DefaultMaxAge  time.Duration `koanf:"-"`
}

// BreakerConfig tunes the circuit breaker guarding the loader stage of
// every update cycle.
type BreakerConfig struct {
	FailureThreshold    uint32 `koanf:"failure_threshold"`
	ResetIntervalSeconds int   `koanf:"reset_interval_seconds"`

	ResetInterval time.Duration `koanf:"-"`
}

// QualityConfig tunes the cross-reference analyzer.
type QualityConfig struct {
	AvgTEUPerShip        float64 `koanf:"avg_teu_per_ship"`
	VarianceThresholdPct float64 `koanf:"variance_threshold_pct"`
}

// ServerConfig configures the read-only HTTP API.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	ShutdownGrace  time.Duration `koanf:"shutdown_grace"`
	Environment    string        `koanf:"environment"`
}

// LoggingConfig configures the zerolog writer.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, console
}

// Addr returns the HTTP listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// resolveDurations fills the time.Duration-typed fields derived from the
// *_seconds koanf fields. Koanf unmarshals the *_seconds ints directly but
// has no notion of these derived fields, so Load calls this once after
// unmarshaling rather than making every consumer convert units itself.
func (c *Config) resolveDurations() {
	c.Update.Interval = time.Duration(c.Update.IntervalSeconds) * time.Second
	c.Update.FilePoll = time.Duration(c.Update.FilePollSeconds) * time.Second
	c.Update.CacheDefaultTTL = time.Duration(c.Update.CacheDefaultTTLSecond) * time.Second
	c.Update.DedupWindow = time.Duration(c.Update.DedupWindowSeconds) * time.Second
	c.Update.DefaultMaxAge = time.Duration(c.Update.DefaultMaxAgeSeconds) * time.Second
	c.Breaker.ResetInterval = time.Duration(c.Breaker.ResetIntervalSeconds) * time.Second
}
