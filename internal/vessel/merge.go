// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package vessel

import (
	"fmt"
	"sort"
	"time"
)

// Merge combines frames into a single deduplicated view, following the
// status-precedence rule (spec invariant 3): the highest-precedence
// record for a given (call_sign, vessel_name) key wins.
//
// Steps, mirroring the data model's merge algorithm exactly:
//  1. Concatenate all frames, preserving source_feed.
//  2. Stable-sort by status precedence, descending.
//  3. Drop duplicates by key, keeping the first (highest-precedence)
//     occurrence. A record whose call sign and vessel name are both
//     empty is never treated as a duplicate of anything else.
//  4. Final stable sort by event_time ascending, nulls last.
//
// dedupWindow, when nonzero, narrows step 3: a later record only counts
// as a duplicate of an earlier one if their event_time values fall within
// dedupWindow of each other (if either is null, they're still always
// treated as duplicates). Zero keeps the unwindowed behavior: any key
// collision merges regardless of how far apart the records are in time.
func Merge(frames []Frame, now time.Time, dedupWindow time.Duration) MergedView {
	var all []Record
	var sourceIDs []FeedID
	for _, f := range frames {
		sourceIDs = append(sourceIDs, f.SourceFeed)
		all = append(all, f.Records...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Status.Precedence() > all[j].Status.Precedence()
	})

	firstSeen := make(map[Key]Record, len(all))
	deduped := make([]Record, 0, len(all))
	emptyKeyOrdinal := 0
	for _, r := range all {
		key := r.Key()
		if key.CallSign == "" && key.VesselName == "" {
			// Never collides: give every such record a distinct identity
			// for the purposes of this pass only.
			key = Key{CallSign: fmt.Sprintf("\x00empty-%d", emptyKeyOrdinal)}
			emptyKeyOrdinal++
			deduped = append(deduped, r)
			continue
		}
		if winner, ok := firstSeen[key]; ok {
			if !withinDedupWindow(winner, r, dedupWindow) {
				deduped = append(deduped, r)
			}
			continue
		}
		firstSeen[key] = r
		deduped = append(deduped, r)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		ti, tj := deduped[i].EventTime, deduped[j].EventTime
		if ti == nil && tj == nil {
			return false
		}
		if ti == nil {
			return false // nulls last
		}
		if tj == nil {
			return true
		}
		return ti.Before(*tj)
	})

	return MergedView{
		Records:        deduped,
		ComputedAt:     now,
		SourceFrameIDs: sourceIDs,
	}
}

// withinDedupWindow reports whether candidate should be treated as a
// duplicate of winner under dedupWindow. A zero window, or either record
// missing an event_time, always counts as a duplicate.
func withinDedupWindow(winner, candidate Record, dedupWindow time.Duration) bool {
	if dedupWindow <= 0 {
		return true
	}
	if winner.EventTime == nil || candidate.EventTime == nil {
		return true
	}
	delta := winner.EventTime.Sub(*candidate.EventTime)
	if delta < 0 {
		delta = -delta
	}
	return delta <= dedupWindow
}
