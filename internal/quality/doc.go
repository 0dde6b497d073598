// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package quality validates ingested data and flags anomalies: per-frame
// completeness checks, historical-throughput consistency and
// month-over-month anomaly detection, cross-dataset variance against
// expected vessel throughput, and dataset freshness classification.
package quality
