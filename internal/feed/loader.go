// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package feed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/port-twin/internal/vessel"
)

// statusRule derives event_kind/status for a feed whose file alone is
// ambiguous about which lifecycle stage its rows represent.
type statusRule struct {
	kind                   vessel.EventKind
	status                 vessel.Status
	departedRemarkOverride bool
}

var feedRules = map[vessel.FeedID]statusRule{
	vessel.FeedArrived:            {kind: vessel.EventKindArrival, status: vessel.StatusInPort, departedRemarkOverride: true},
	vessel.FeedDeparted:           {kind: vessel.EventKindDeparture, status: vessel.StatusDeparted},
	vessel.FeedExpectedArrivals:   {kind: vessel.EventKindExpected, status: vessel.StatusArriving},
	vessel.FeedExpectedDepartures: {kind: vessel.EventKindExpected, status: vessel.StatusExpected},
}

// Loader loads every configured feed file into a vessel.Frame.
type Loader struct {
	// Paths maps each feed to the file it is read from.
	Paths map[vessel.FeedID]string
	log   zerolog.Logger
}

// NewLoader builds a Loader for the given feed-to-path mapping.
func NewLoader(paths map[vessel.FeedID]string, log zerolog.Logger) *Loader {
	return &Loader{Paths: paths, log: log.With().Str("component", "feed_loader").Logger()}
}

// LoadAll loads every feed in vessel.AllFeeds. A feed whose file is
// missing, empty, or fails to parse yields an empty Frame and a logged
// warning rather than an error, so one bad feed never blocks the others.
func (l *Loader) LoadAll(ctx context.Context) (map[vessel.FeedID]vessel.Frame, error) {
	frames := make(map[vessel.FeedID]vessel.Frame, len(vessel.AllFeeds))
	for _, id := range vessel.AllFeeds {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}

		frame, err := l.loadOne(id)
		if err != nil {
			return frames, fmt.Errorf("feed: load %s: %w", id, err)
		}
		frames[id] = frame
	}
	return frames, nil
}

func (l *Loader) loadOne(id vessel.FeedID) (vessel.Frame, error) {
	now := time.Now()
	path, ok := l.Paths[id]
	if !ok || path == "" {
		l.log.Warn().Str("feed", string(id)).Msg("no path configured, emitting empty frame")
		return vessel.Frame{SourceFeed: id, LoadedAt: now}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		l.log.Warn().Err(err).Str("feed", string(id)).Str("path", path).Msg("feed file unavailable")
		return vessel.Frame{SourceFeed: id, LoadedAt: now}, nil
	}
	if info.Size() == 0 {
		l.log.Warn().Str("feed", string(id)).Str("path", path).Msg("feed file is empty")
		return vessel.Frame{SourceFeed: id, LoadedAt: now}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return vessel.Frame{}, fmt.Errorf("read %s: %w", path, err)
	}

	rule, ok := feedRules[id]
	if !ok {
		return vessel.Frame{}, fmt.Errorf("no status rule registered for feed %s", id)
	}

	elements, err := ParseElements(raw, func(rowErr error) {
		l.log.Warn().Err(rowErr).Str("feed", string(id)).Msg("skipping malformed row")
	})
	if err != nil {
		l.log.Warn().Err(err).Str("feed", string(id)).Str("path", path).Msg("feed could not be parsed, emitting empty frame")
		return vessel.Frame{SourceFeed: id, LoadedAt: now}, nil
	}

	records := make([]vessel.Record, 0, len(elements))
	for _, el := range elements {
		records = append(records, buildRecord(el, id, rule))
	}

	return vessel.Frame{SourceFeed: id, Records: records, LoadedAt: now}, nil
}

func buildRecord(el element, id vessel.FeedID, rule statusRule) vessel.Record {
	var timeStr string
	switch {
	case el.ArrivalTime != "":
		timeStr = el.ArrivalTime
	case el.DepartureTime != "":
		timeStr = el.DepartureTime
	case el.ExpectedTime != "":
		timeStr = el.ExpectedTime
	}

	var eventTime *time.Time
	if timeStr != "" {
		if t, err := ParseInstant(timeStr); err == nil {
			eventTime = &t
		}
	}

	status := rule.status
	if rule.departedRemarkOverride && el.Remark == "Departed" {
		status = vessel.StatusDeparted
	}

	return vessel.Record{
		CallSign:     el.CallSign,
		VesselName:   el.VesselName,
		ShipTypeRaw:  el.ShipType,
		ShipCategory: CategorizeShipType(el.ShipType),
		AgentName:    el.AgentName,
		LocationRaw:  el.CurrentLocation,
		LocationKind: CategorizeLocation(el.CurrentLocation),
		EventTime:    eventTime,
		EventKind:    rule.kind,
		Status:       status,
		Remark:       el.Remark,
		SourceFeed:   id,
	}
}
