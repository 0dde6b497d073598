// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where a config file is searched for,
// in order of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/port-twin/config.yaml",
	"/etc/port-twin/config.yml",
}

// ConfigPathEnvVar overrides the config file search with an explicit path.
const ConfigPathEnvVar = "PORT_TWIN_CONFIG_PATH"

// envPrefix is stripped from every environment variable before it is
// mapped to a koanf path, so only vars meant for this service are read.
const envPrefix = "PORT_TWIN_"

// defaultConfig returns every setting at its documented default, applied
// before the config file and environment layers.
func defaultConfig() *Config {
	return &Config{
		Update: UpdateConfig{
			IntervalSeconds:       300,
			FilePollSeconds:       5,
			CacheDefaultTTLSecond: 3600,
			DedupWindowSeconds:    0,
			DefaultMaxAgeSeconds:  300,
			EnableFileMonitoring:  true,
			AutoReloadOnChange:    true,
		},
		Breaker: BreakerConfig{
			FailureThreshold:     5,
			ResetIntervalSeconds: 300,
		},
		Quality: QualityConfig{
			AvgTEUPerShip:        2000.0,
			VarianceThresholdPct: 20.0,
		},
		Server: ServerConfig{
			Host:          "0.0.0.0",
			Port:          8080,
			ReadTimeout:   15 * time.Second,
			WriteTimeout:  15 * time.Second,
			ShutdownGrace: 10 * time.Second,
			Environment:   "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds a Config from defaults, an optional YAML file, and
// PORT_TWIN_-prefixed environment variables, in that order of increasing
// priority, then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.resolveDurations()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps PORT_TWIN_FEEDS_ARRIVED_PATH to feeds.arrived_path,
// PORT_TWIN_UPDATE_INTERVAL_SECONDS to update.interval_seconds, and so on:
// strip the prefix, lowercase, and turn the first underscore-separated
// segment into the koanf section name.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return key
	}
	return parts[0] + "." + parts[1]
}
