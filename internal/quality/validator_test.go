// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package quality

import (
	"testing"
	"time"

	"github.com/tomtom215/port-twin/internal/vessel"
)

func TestValidateVesselFrameEmptyIsInvalid(t *testing.T) {
	report := ValidateVesselFrame(nil)
	if report.Valid {
		t.Error("expected an empty frame to be invalid")
	}
}

func TestValidateVesselFrameAllMissingEventTimeIsInvalid(t *testing.T) {
	report := ValidateVesselFrame([]vessel.Record{
		{VesselName: "SHIP ONE"},
		{VesselName: "SHIP TWO"},
	})
	if report.Valid {
		t.Error("expected a frame with no event_time values to be invalid")
	}
}

func TestValidateVesselFrameValid(t *testing.T) {
	now := time.Now()
	report := ValidateVesselFrame([]vessel.Record{
		{CallSign: "A1", VesselName: "SHIP ONE", EventTime: &now},
		{CallSign: "A2", VesselName: "SHIP TWO", EventTime: &now},
		{CallSign: "A1", VesselName: "SHIP ONE", EventTime: &now}, // duplicate key
	})
	if !report.Valid {
		t.Fatalf("expected frame to be valid, got message %q", report.Message)
	}
	if report.RecordsCount != 3 {
		t.Errorf("expected 3 records, got %d", report.RecordsCount)
	}
	if report.UniqueVessels != 2 {
		t.Errorf("expected 2 unique vessels, got %d", report.UniqueVessels)
	}
	if report.DuplicateRecords != 1 {
		t.Errorf("expected 1 duplicate record, got %d", report.DuplicateRecords)
	}
	if report.CompletenessPct != 100 {
		t.Errorf("expected 100%% completeness, got %.2f", report.CompletenessPct)
	}
}

func TestValidateHistoricalThroughputConsistencyErrors(t *testing.T) {
	points := []vessel.HistoricalThroughputPoint{
		{Month: "2025-01", SeaborneTEU: 1000, RiverTEU: 200, TotalTEU: 1200},
		{Month: "2025-02", SeaborneTEU: 1000, RiverTEU: 200, TotalTEU: 2000}, // inconsistent total
	}
	report := ValidateHistoricalThroughput(points)
	if report.ConsistencyErrors != 1 {
		t.Errorf("expected 1 consistency error, got %d", report.ConsistencyErrors)
	}
}

func TestValidateHistoricalThroughputSuddenChange(t *testing.T) {
	points := []vessel.HistoricalThroughputPoint{
		{Month: "2025-01", SeaborneTEU: 1000, RiverTEU: 0, TotalTEU: 1000},
		{Month: "2025-02", SeaborneTEU: 1300, RiverTEU: 0, TotalTEU: 1300}, // +30%
	}
	report := ValidateHistoricalThroughput(points)
	if len(report.SuddenChanges) == 0 {
		t.Error("expected a sudden-change flag for a 30% month-over-month swing")
	}
}

func TestValidateHistoricalThroughputEmpty(t *testing.T) {
	report := ValidateHistoricalThroughput(nil)
	if report.RecordsCount != 0 {
		t.Errorf("expected 0 records, got %d", report.RecordsCount)
	}
}
