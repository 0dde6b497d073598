// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaultsWithNoFileOrEnv(t *testing.T) {
	withCleanEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Update.IntervalSeconds != 300 {
		t.Errorf("expected default update interval 300, got %d", cfg.Update.IntervalSeconds)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	withCleanEnv(t)
	t.Setenv("PORT_TWIN_UPDATE_INTERVAL_SECONDS", "60")
	t.Setenv("PORT_TWIN_SERVER_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Update.IntervalSeconds != 60 {
		t.Errorf("expected env override to 60, got %d", cfg.Update.IntervalSeconds)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected env override to 9999, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigFileOverridesDefaultsButNotEnv(t *testing.T) {
	withCleanEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlContent := "update:\n  interval_seconds: 120\nserver:\n  port: 7000\n"
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("PORT_TWIN_SERVER_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Update.IntervalSeconds != 120 {
		t.Errorf("expected file value 120, got %d", cfg.Update.IntervalSeconds)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected env to win over file, got %d", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	withCleanEnv(t)
	t.Setenv("PORT_TWIN_SERVER_PORT", "0")

	if _, err := Load(); err == nil {
		t.Error("expected validation failure for port 0")
	}
}

func TestEnvTransformFuncMapsNestedKeys(t *testing.T) {
	cases := map[string]string{
		"PORT_TWIN_UPDATE_INTERVAL_SECONDS": "update.interval_seconds",
		"PORT_TWIN_SERVER_PORT":             "server.port",
		"PORT_TWIN_FEEDS_ARRIVED_PATH":      "feeds.arrived_path",
	}
	for in, want := range cases {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func withCleanEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		for i, c := range kv {
			if c == '=' {
				key := kv[:i]
				if len(key) >= len(envPrefix) && key[:len(envPrefix)] == envPrefix {
					os.Unsetenv(key)
				}
				break
			}
		}
	}
	os.Unsetenv(ConfigPathEnvVar)
}
