// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package cache holds the frames and merged view produced by an update cycle
between loads. Entries are never returned past their TTL — Get evicts the
entry as part of the read rather than waiting for a background sweep, so
callers never observe stale data even if the cleanup goroutine hasn't run
yet.

Keys in use by the real-time manager:

	frame:<source_feed>        per-feed FeedFrame, TTL = cache_default_ttl_s
	merged_view                current MergedVesselView
	comprehensive_analysis      latest analysis summary
	historical_throughput       parsed historical series (if configured)
	cross_reference             latest cross-reference result

The cache has no maximum size and no LRU eviction; the key set is bounded
by the number of configured feeds plus a handful of derived entries, so
unbounded growth is not a concern at this scale.
*/
package cache
