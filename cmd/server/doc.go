// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package main is the entry point for the port-twin server.

port-twin ingests the four vessel traffic feeds (arrived, departed,
expected arrivals, expected departures) and an optional historical
container-throughput series from disk, merges and deduplicates them into
a single current view on a fixed schedule, validates and cross-references
the result, and serves it over a small read-only HTTP API for a port
digital twin's other components to consume.

# Application Architecture

The server implements a two-layer architecture with Suture v4 process
supervision:

	RootSupervisor ("port-twin")
	├── IngestionSupervisor ("ingestion-layer")
	│   ├── Watcher   (file-change driven re-ingestion)
	│   └── Scheduler (periodic update cycle)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (6 read-only routes)

Component initialization order:

 1. Configuration: Koanf v2 with a YAML file and PORT_TWIN_-prefixed
    environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Manager: feed loader, TTL cache, circuit breaker, watcher, scheduler
 4. Supervisor Tree: Suture v4 process supervision
 5. HTTP Server: chi router serving the cached merged view, per-feed
    frames, analysis, status, and quality reports

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest
priority wins):

	Priority: Environment variables > config.yaml > Defaults

Core environment variables (see internal/config for the full set):

	PORT_TWIN_SERVER_HOST=0.0.0.0
	PORT_TWIN_SERVER_PORT=8080
	PORT_TWIN_LOGGING_LEVEL=info          # debug, info, warn, error
	PORT_TWIN_LOGGING_FORMAT=json         # json or console

	PORT_TWIN_FEEDS_ARRIVED_PATH=/data/arrived.xml
	PORT_TWIN_FEEDS_DEPARTED_PATH=/data/departed.xml
	PORT_TWIN_FEEDS_EXPECTED_ARRIVALS_PATH=/data/expected_arrivals.xml
	PORT_TWIN_FEEDS_EXPECTED_DEPARTURES_PATH=/data/expected_departures.xml
	PORT_TWIN_FEEDS_HISTORICAL_THROUGHPUT_CSV=/data/historical_throughput.csv

	PORT_TWIN_UPDATE_INTERVAL_SECONDS=300
	PORT_TWIN_UPDATE_FILE_POLL_SECONDS=5

A config file is searched for at config.yaml, config.yml,
/etc/port-twin/config.yaml, or /etc/port-twin/config.yml, or at the path
named by PORT_TWIN_CONFIG_PATH.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. The root context is canceled.
 2. The HTTP server stops accepting new connections and drains in-flight
    requests within its configured shutdown grace period.
 3. The watcher and scheduler stop.
 4. Any services that failed to stop in time are reported via
    UnstoppedServiceReport.

# Usage

	go run ./cmd/server

	# or, with an explicit config file:
	PORT_TWIN_CONFIG_PATH=/etc/port-twin/config.yaml ./port-twin

# See Also

  - internal/config: Configuration management
  - internal/manager: Real-time ingestion and aggregation core
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
*/
package main
