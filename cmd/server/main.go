// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package main is the entry point for the port-twin server.
//
// port-twin is a real-time vessel data ingestion and aggregation core for
// a port digital twin: it loads arrival/departure feeds and a historical
// throughput series from disk, merges and deduplicates them into a single
// current view, validates and cross-references the result, and serves it
// over a small read-only HTTP API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: load settings from a YAML file and PORT_TWIN_-prefixed
//     environment variables (Koanf v2), highest priority wins.
//  2. Logging: configure the global zerolog logger from config.Logging.
//  3. Manager: build the real-time manager (feed loader, cache, circuit
//     breaker, watcher, scheduler) from config.
//  4. Supervisor Tree: wire the manager's watcher/scheduler into the
//     ingestion layer and the HTTP server into the API layer.
//  5. HTTP Server: the read-only vessel API, behind the API layer.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: the root
// context is canceled, the supervisor tree stops every service within its
// configured shutdown timeout, and main waits for that to finish before
// exiting.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/port-twin/internal/api"
	"github.com/tomtom215/port-twin/internal/config"
	"github.com/tomtom215/port-twin/internal/logging"
	"github.com/tomtom215/port-twin/internal/manager"
	"github.com/tomtom215/port-twin/internal/metrics"
	"github.com/tomtom215/port-twin/internal/supervisor"
	"github.com/tomtom215/port-twin/internal/supervisor/services"
	"github.com/tomtom215/port-twin/internal/vessel"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("port-twin exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logging.Info().Str("environment", cfg.Server.Environment).Msg("port-twin starting")

	mgrCfg := managerConfigFrom(cfg)
	mgr := manager.New(mgrCfg, logging.Logger(), metrics.NewRecorder())

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("build supervisor tree: %w", err)
	}

	tree.AddIngestionService(mgr.Scheduler())
	if cfg.Update.EnableFileMonitoring {
		tree.AddIngestionService(mgr.Watcher())
	}

	server := api.NewServer(mgr, cfg.Server, cfg.Update.DefaultMaxAge)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownGrace))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("serving vessel API")
	if err := tree.Serve(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("supervisor tree stopped unexpectedly: %w", err)
	}

	logging.Info().Msg("port-twin stopped cleanly")
	return nil
}

// managerConfigFrom adapts the on-disk configuration layout into the
// manager's narrower operating parameters.
func managerConfigFrom(cfg *config.Config) manager.Config {
	feedPaths := map[vessel.FeedID]string{
		vessel.FeedArrived:            cfg.Feeds.ArrivedPath,
		vessel.FeedDeparted:           cfg.Feeds.DepartedPath,
		vessel.FeedExpectedArrivals:   cfg.Feeds.ExpectedArrivalsPath,
		vessel.FeedExpectedDepartures: cfg.Feeds.ExpectedDeparturesPath,
	}

	return manager.Config{
		FeedPaths:                feedPaths,
		HistoricalThroughputPath: cfg.Feeds.HistoricalThroughputCSV,

		VesselUpdateInterval: cfg.Update.Interval,
		FilePollInterval:     cfg.Update.FilePoll,
		CacheDefaultTTL:      cfg.Update.CacheDefaultTTL,
		DedupWindow:          cfg.Update.DedupWindow,
		DefaultMaxAge:        cfg.Update.DefaultMaxAge,

		BreakerFailureThreshold: cfg.Breaker.FailureThreshold,
		BreakerResetInterval:    cfg.Breaker.ResetInterval,

		AvgTEUPerShip:        cfg.Quality.AvgTEUPerShip,
		VarianceThresholdPct: cfg.Quality.VarianceThresholdPct,

		EnableFileMonitoring:   cfg.Update.EnableFileMonitoring,
		AutoReloadOnFileChange: cfg.Update.AutoReloadOnChange,
	}
}
