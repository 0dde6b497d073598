// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package vessel

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", s, err)
	}
	return ts
}

func TestMergeStatusPrecedence(t *testing.T) {
	inPortTime := mustTime(t, "2025-08-17T12:30")
	expectedTime := mustTime(t, "2025-08-18T06:00")

	arrived := Frame{
		SourceFeed: FeedArrived,
		Records: []Record{
			{CallSign: "VRAB7", VesselName: "EVER ACE", EventTime: &inPortTime, Status: StatusInPort, SourceFeed: FeedArrived},
		},
	}
	expectedArrivals := Frame{
		SourceFeed: FeedExpectedArrivals,
		Records: []Record{
			{CallSign: "VRAB7", VesselName: "EVER ACE", EventTime: &expectedTime, Status: StatusArriving, SourceFeed: FeedExpectedArrivals},
		},
	}

	merged := Merge([]Frame{arrived, expectedArrivals}, time.Now(), 0)

	if len(merged.Records) != 1 {
		t.Fatalf("expected exactly one merged record, got %d", len(merged.Records))
	}
	got := merged.Records[0]
	if got.Status != StatusInPort {
		t.Errorf("expected status in_port to win, got %s", got.Status)
	}
	if got.EventTime == nil || !got.EventTime.Equal(inPortTime) {
		t.Errorf("expected event_time from the in_port record, got %v", got.EventTime)
	}
}

func TestMergeKeepsBothEmptyKeyRecords(t *testing.T) {
	f := Frame{
		SourceFeed: FeedArrived,
		Records: []Record{
			{Status: StatusInPort, Remark: "first"},
			{Status: StatusInPort, Remark: "second"},
		},
	}

	merged := Merge([]Frame{f}, time.Now(), 0)

	if len(merged.Records) != 2 {
		t.Fatalf("expected both empty-key records kept, got %d", len(merged.Records))
	}
}

func TestMergeDropsDuplicateKeepingHighestPrecedence(t *testing.T) {
	f1 := Frame{Records: []Record{{CallSign: "ABC1", VesselName: "SHIP ONE", Status: StatusExpected}}}
	f2 := Frame{Records: []Record{{CallSign: "ABC1", VesselName: "SHIP ONE", Status: StatusDeparted}}}

	merged := Merge([]Frame{f1, f2}, time.Now(), 0)

	if len(merged.Records) != 1 {
		t.Fatalf("expected dedup to collapse to one record, got %d", len(merged.Records))
	}
	if merged.Records[0].Status != StatusDeparted {
		t.Errorf("expected departed (higher precedence) to survive, got %s", merged.Records[0].Status)
	}
}

func TestMergeFinalSortByEventTimeNullsLast(t *testing.T) {
	early := mustTime(t, "2025-01-01T00:00")
	late := mustTime(t, "2025-06-01T00:00")

	f := Frame{Records: []Record{
		{CallSign: "C1", VesselName: "NO TIME", Status: StatusExpected},
		{CallSign: "C2", VesselName: "LATE", EventTime: &late, Status: StatusExpected},
		{CallSign: "C3", VesselName: "EARLY", EventTime: &early, Status: StatusExpected},
	}}

	merged := Merge([]Frame{f}, time.Now(), 0)

	if len(merged.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(merged.Records))
	}
	if merged.Records[0].VesselName != "EARLY" || merged.Records[1].VesselName != "LATE" {
		t.Fatalf("expected early, late order, got %v, %v", merged.Records[0].VesselName, merged.Records[1].VesselName)
	}
	if merged.Records[2].EventTime != nil {
		t.Errorf("expected the record with no event_time to sort last")
	}
}

func TestMergeDedupWindowKeepsDistantDuplicates(t *testing.T) {
	early := mustTime(t, "2025-01-01T00:00")
	late := mustTime(t, "2025-06-01T00:00")

	f1 := Frame{Records: []Record{{CallSign: "ABC1", VesselName: "SHIP ONE", EventTime: &early, Status: StatusExpected}}}
	f2 := Frame{Records: []Record{{CallSign: "ABC1", VesselName: "SHIP ONE", EventTime: &late, Status: StatusExpected}}}

	merged := Merge([]Frame{f1, f2}, time.Now(), time.Hour)

	if len(merged.Records) != 2 {
		t.Fatalf("expected both records kept when they fall outside the dedup window, got %d", len(merged.Records))
	}
}

func TestMergeDedupWindowCollapsesCloseDuplicates(t *testing.T) {
	t1 := mustTime(t, "2025-01-01T00:00")
	t2 := mustTime(t, "2025-01-01T00:30")

	f1 := Frame{Records: []Record{{CallSign: "ABC1", VesselName: "SHIP ONE", EventTime: &t1, Status: StatusExpected}}}
	f2 := Frame{Records: []Record{{CallSign: "ABC1", VesselName: "SHIP ONE", EventTime: &t2, Status: StatusExpected}}}

	merged := Merge([]Frame{f1, f2}, time.Now(), time.Hour)

	if len(merged.Records) != 1 {
		t.Fatalf("expected records within the dedup window to collapse, got %d", len(merged.Records))
	}
}

func TestStatusPrecedenceOrdering(t *testing.T) {
	if StatusInPort.Precedence() <= StatusDeparted.Precedence() {
		t.Error("in_port must outrank departed")
	}
	if StatusDeparted.Precedence() <= StatusArriving.Precedence() {
		t.Error("departed must outrank arriving")
	}
	if StatusArriving.Precedence() <= StatusExpected.Precedence() {
		t.Error("arriving must outrank expected")
	}
	if Status("bogus").Precedence() >= StatusExpected.Precedence() {
		t.Error("an unrecognized status must rank below every known one")
	}
}
