// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package quality

import "time"

// Freshness classifies how stale a dataset is.
type Freshness string

const (
	FreshnessFresh  Freshness = "fresh"
	FreshnessStale  Freshness = "stale"
	FreshnessVeryOld Freshness = "very_old"
	FreshnessRecent Freshness = "recent"
	FreshnessOld    Freshness = "old"
)

// FreshnessThresholds configures the age cutoffs used when classifying a
// dataset. Container (slow-moving) datasets and real-time (vessel feed)
// datasets use different vocabularies and cutoffs.
type FreshnessThresholds struct {
	ContainerFresh time.Duration // below this: fresh
	ContainerStale time.Duration // below this: stale; at/above: very_old

	VesselRealTime time.Duration // below this: real-time ("fresh")
	VesselRecent   time.Duration // below this: recent; at/above: old
}

// DefaultFreshnessThresholds mirrors the port authority's operational
// expectations: container throughput is published monthly, so 60/180 days
// still counts as usable; the live vessel feed is expected to update
// continuously, so anything older than a day is "old".
func DefaultFreshnessThresholds() FreshnessThresholds {
	return FreshnessThresholds{
		ContainerFresh: 60 * 24 * time.Hour,
		ContainerStale: 180 * 24 * time.Hour,
		VesselRealTime: time.Hour,
		VesselRecent:   24 * time.Hour,
	}
}

// ClassifyContainerFreshness classifies a container-throughput dataset's
// age as fresh, stale, or very_old.
func ClassifyContainerFreshness(age time.Duration, t FreshnessThresholds) Freshness {
	switch {
	case age < t.ContainerFresh:
		return FreshnessFresh
	case age < t.ContainerStale:
		return FreshnessStale
	default:
		return FreshnessVeryOld
	}
}

// ClassifyVesselFreshness classifies a vessel-feed dataset's age as
// real-time (fresh), recent, or old.
func ClassifyVesselFreshness(age time.Duration, t FreshnessThresholds) Freshness {
	switch {
	case age < t.VesselRealTime:
		return FreshnessFresh
	case age < t.VesselRecent:
		return FreshnessRecent
	default:
		return FreshnessOld
	}
}
