// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package manager

import (
	"time"

	"github.com/tomtom215/port-twin/internal/vessel"
)

// DayBucket is one day's worth of arrival activity.
type DayBucket struct {
	DayStart      time.Time `json:"day_start"`
	ArrivalsCount int       `json:"arrivals_count"`
}

// RecentActivity is a snapshot of arrival counts over short trailing
// windows, plus how many vessels are still expected.
type RecentActivity struct {
	Last24h       int `json:"last_24h"`
	Last12h       int `json:"last_12h"`
	Last6h        int `json:"last_6h"`
	ExpectedCount int `json:"expected_count"`
}

// Analysis is the comprehensive summary computed from a MergedView on
// every successful update cycle.
type Analysis struct {
	TotalVessels          int                         `json:"total_vessels"`
	PerSourceCounts       map[vessel.FeedID]int       `json:"per_source_counts"`
	StatusBreakdown       map[vessel.Status]int       `json:"status_breakdown"`
	ShipCategoryBreakdown map[vessel.ShipCategory]int `json:"ship_category_breakdown"`
	LocationKindBreakdown map[vessel.LocationKind]int `json:"location_kind_breakdown"`
	PerFeedEarliest       map[vessel.FeedID]time.Time `json:"per_feed_earliest"`
	PerFeedLatest         map[vessel.FeedID]time.Time `json:"per_feed_latest"`
	ActivityTrend         []DayBucket                 `json:"activity_trend"`
	RecentActivity        RecentActivity              `json:"recent_activity"`
	AnalysisTimestamp     time.Time                   `json:"analysis_timestamp"`
}

// activityTrendDays is the number of trailing daily buckets computed,
// ending with today.
const activityTrendDays = 7

// ComputeAnalysis builds an Analysis from the current merged view, as of
// now.
func ComputeAnalysis(view vessel.MergedView, now time.Time) Analysis {
	a := Analysis{
		TotalVessels:          len(view.Records),
		PerSourceCounts:       map[vessel.FeedID]int{},
		StatusBreakdown:       map[vessel.Status]int{},
		ShipCategoryBreakdown: map[vessel.ShipCategory]int{},
		LocationKindBreakdown: map[vessel.LocationKind]int{},
		PerFeedEarliest:       map[vessel.FeedID]time.Time{},
		PerFeedLatest:         map[vessel.FeedID]time.Time{},
		AnalysisTimestamp:     now,
	}

	for _, r := range view.Records {
		a.PerSourceCounts[r.SourceFeed]++
		a.StatusBreakdown[r.Status]++
		a.ShipCategoryBreakdown[r.ShipCategory]++
		a.LocationKindBreakdown[r.LocationKind]++

		if r.EventTime == nil {
			continue
		}
		if earliest, ok := a.PerFeedEarliest[r.SourceFeed]; !ok || r.EventTime.Before(earliest) {
			a.PerFeedEarliest[r.SourceFeed] = *r.EventTime
		}
		if latest, ok := a.PerFeedLatest[r.SourceFeed]; !ok || r.EventTime.After(latest) {
			a.PerFeedLatest[r.SourceFeed] = *r.EventTime
		}
	}

	a.ActivityTrend = computeActivityTrend(view.Records, now)
	a.RecentActivity = computeRecentActivity(view.Records, now)
	return a
}

func computeActivityTrend(records []vessel.Record, now time.Time) []DayBucket {
	today := now.UTC().Truncate(24 * time.Hour)
	buckets := make([]DayBucket, activityTrendDays)
	for i := 0; i < activityTrendDays; i++ {
		daysBack := activityTrendDays - 1 - i
		buckets[i] = DayBucket{DayStart: today.AddDate(0, 0, -daysBack)}
	}

	for _, r := range records {
		if r.EventTime == nil {
			continue
		}
		day := r.EventTime.UTC().Truncate(24 * time.Hour)
		for i := range buckets {
			if buckets[i].DayStart.Equal(day) {
				buckets[i].ArrivalsCount++
				break
			}
		}
	}
	return buckets
}

func computeRecentActivity(records []vessel.Record, now time.Time) RecentActivity {
	var ra RecentActivity
	for _, r := range records {
		if r.Status == vessel.StatusExpected {
			ra.ExpectedCount++
		}
		if r.EventTime == nil || r.EventKind != vessel.EventKindArrival {
			continue
		}
		age := now.Sub(*r.EventTime)
		if age < 0 {
			continue
		}
		if age <= 24*time.Hour {
			ra.Last24h++
		}
		if age <= 12*time.Hour {
			ra.Last12h++
		}
		if age <= 6*time.Hour {
			ra.Last6h++
		}
	}
	return ra
}
