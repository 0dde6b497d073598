// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package vessel

import "time"

// ShipCategory is the derived classification of a vessel's raw ship-type
// string.
type ShipCategory string

const (
	ShipCategoryContainer      ShipCategory = "container"
	ShipCategoryBulkCarrier    ShipCategory = "bulk_carrier"
	ShipCategoryChemicalTanker ShipCategory = "chemical_tanker"
	ShipCategoryGeneralCargo   ShipCategory = "general_cargo"
	ShipCategoryTanker         ShipCategory = "tanker"
	ShipCategoryOther          ShipCategory = "other"
	ShipCategoryUnknown        ShipCategory = "unknown"
)

// LocationKind is the derived classification of a vessel's raw location
// string.
type LocationKind string

const (
	LocationKindBerth     LocationKind = "berth"
	LocationKindAnchorage LocationKind = "anchorage"
	LocationKindChannel   LocationKind = "channel"
	LocationKindOther     LocationKind = "other"
	LocationKindUnknown   LocationKind = "unknown"
)

// EventKind records which time field on the source feed produced
// EventTime.
type EventKind string

const (
	EventKindArrival   EventKind = "arrival"
	EventKindDeparture EventKind = "departure"
	EventKindExpected  EventKind = "expected"
)

// Status is the vessel's lifecycle state in the merged view. Precedence
// defines the merge's conflict-resolution order: the record with the
// higher Precedence wins when two records share a merge key.
type Status string

const (
	StatusInPort   Status = "in_port"
	StatusDeparted Status = "departed"
	StatusArriving Status = "arriving"
	StatusExpected Status = "expected"
)

// statusPrecedence is defined once so every caller (merge, validation,
// tests) agrees on the ordering in spec invariant 3:
// in_port > departed > arriving > expected.
var statusPrecedence = map[Status]int{
	StatusInPort:   3,
	StatusDeparted: 2,
	StatusArriving: 1,
	StatusExpected: 0,
}

// Precedence returns the merge-conflict ranking for s. Unknown statuses
// rank below every known one so a malformed record never wins a merge.
func (s Status) Precedence() int {
	if p, ok := statusPrecedence[s]; ok {
		return p
	}
	return -1
}

// FeedID names one of the four known vessel feed files.
type FeedID string

const (
	FeedArrived            FeedID = "arrived"
	FeedDeparted           FeedID = "departed"
	FeedExpectedArrivals   FeedID = "expected_arrivals"
	FeedExpectedDepartures FeedID = "expected_departures"
)

// AllFeeds lists every feed the loader is aware of, in load order.
var AllFeeds = []FeedID{FeedArrived, FeedDeparted, FeedExpectedArrivals, FeedExpectedDepartures}

// Record is the atom of the ingestion pipeline: one vessel entry parsed
// from one G_SQL1 element of one feed. Every field but SourceFeed is
// optional — missing data on the feed becomes a zero value here, not a
// parse failure.
type Record struct {
	CallSign     string       `json:"call_sign"`
	VesselName   string       `json:"vessel_name"`
	ShipTypeRaw  string       `json:"ship_type_raw,omitempty"`
	ShipCategory ShipCategory `json:"ship_category"`
	AgentName    string       `json:"agent_name,omitempty"`
	LocationRaw  string       `json:"location_raw,omitempty"`
	LocationKind LocationKind `json:"location_kind"`
	EventTime    *time.Time   `json:"event_time,omitempty"`
	EventKind    EventKind    `json:"event_kind,omitempty"`
	Status       Status       `json:"status"`
	Remark       string       `json:"remark,omitempty"`
	SourceFeed   FeedID       `json:"source_feed"`
}

// Key returns the merge identity of r: the pair (call_sign, vessel_name).
func (r Record) Key() Key {
	return Key{CallSign: r.CallSign, VesselName: r.VesselName}
}

// Key is the merge/dedup identity described in spec invariant 1. Two
// records with an identical Key collapse to one in the merged view,
// except when both fields are empty (see Merge).
type Key struct {
	CallSign   string `json:"call_sign"`
	VesselName string `json:"vessel_name"`
}

// Frame is the parsed output of loading one feed at one point in time.
type Frame struct {
	SourceFeed FeedID    `json:"source_feed"`
	Records    []Record  `json:"records"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// MergedView is the deduplicated, status-precedence-resolved union of
// every current Frame.
type MergedView struct {
	Records        []Record  `json:"records"`
	ComputedAt     time.Time `json:"computed_at"`
	SourceFrameIDs []FeedID  `json:"source_frame_ids"`
}

// HistoricalThroughputPoint is one month of container-throughput figures
// against which current vessel activity can be cross-referenced.
type HistoricalThroughputPoint struct {
	Month       string  `json:"month"` // "YYYY-MM"
	SeaborneTEU float64 `json:"seaborne_teu"`
	RiverTEU    float64 `json:"river_teu"`
	TotalTEU    float64 `json:"total_teu"`
}
