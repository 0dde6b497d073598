// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package manager owns the feed loader, cache, watcher, scheduler, and
// circuit breaker, and runs the per-cycle update that loads, validates,
// merges, and caches vessel data. It is the single point of read access
// consumed by the HTTP API.
package manager
