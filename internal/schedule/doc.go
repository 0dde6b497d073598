// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package schedule runs a callback on a fixed interval with skip-on-busy
// overlap semantics: a tick whose callback is still running when the next
// tick fires is simply skipped, rather than queued or run concurrently.
package schedule
