// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package breaker guards per-operation calls (one loader run, one update
// cycle) behind a consecutive-failure circuit breaker: after a threshold
// of failures in a row the operation is skipped outright until a cooldown
// elapses, rather than tripping on an error ratio over a request window.
package breaker
