// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package vessel defines the core data model for the port's vessel
// ingestion pipeline: records parsed from a single feed, the per-feed
// frame they're grouped into, and the deduplicated merged view served to
// consumers.
package vessel
