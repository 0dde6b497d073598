// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/port-twin/internal/vessel"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

const arrivedFixture = `<ROWSET>
<G_SQL1>
<CALL_SIGN>VRAB7</CALL_SIGN>
<VESSEL_NAME>EVER ACE</VESSEL_NAME>
<SHIP_TYPE>Container Ship</SHIP_TYPE>
<CURRENT_LOCATION>Berth 7</CURRENT_LOCATION>
<ARRIVAL_TIME>2025/08/17 12:30</ARRIVAL_TIME>
</G_SQL1>
</ROWSET>`

func testConfig(t *testing.T, dir string) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.FeedPaths = map[vessel.FeedID]string{
		vessel.FeedArrived: writeFixture(t, dir, "arrived.xml", arrivedFixture),
	}
	cfg.CacheDefaultTTL = time.Hour
	cfg.VesselUpdateInterval = time.Hour
	cfg.FilePollInterval = time.Hour
	cfg.EnableFileMonitoring = false
	return cfg
}

func TestManagerRunCycleLoadsAndMerges(t *testing.T) {
	dir := t.TempDir()
	m := New(testConfig(t, dir), zerolog.Nop(), nil)

	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, ok := m.GetMergedView(0)
	if !ok {
		t.Fatal("expected a cached merged view after a cycle")
	}
	if len(view.Records) != 1 {
		t.Fatalf("expected 1 merged record, got %d", len(view.Records))
	}
	if view.Records[0].VesselName != "EVER ACE" {
		t.Errorf("unexpected vessel name %q", view.Records[0].VesselName)
	}

	if _, ok := m.GetComprehensiveAnalysis(); !ok {
		t.Error("expected a cached analysis after a cycle")
	}
	frame, ok := m.GetFrame(vessel.FeedArrived, 0)
	if !ok || len(frame.Records) != 1 {
		t.Error("expected the arrived frame to be cached")
	}
}

func TestManagerRunCycleGuardedSkipsWhenAlreadyRunning(t *testing.T) {
	dir := t.TempDir()
	m := New(testConfig(t, dir), zerolog.Nop(), nil)

	m.cycleMu.Lock()
	defer m.cycleMu.Unlock()

	if err := m.runCycleGuarded(context.Background()); err != nil {
		t.Fatalf("expected a skip, not an error: %v", err)
	}
	if _, ok := m.GetMergedView(0); ok {
		t.Error("expected no merged view to be produced by a skipped cycle")
	}
}

func TestManagerRunCycleSkipsWhenBreakerOpen(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.BreakerFailureThreshold = 1
	m := New(cfg, zerolog.Nop(), nil)

	// Force the breaker open by feeding it one failure directly.
	_ = m.breaker.Execute(context.Background(), func(context.Context) error {
		return errors.New("forced failure")
	})
	if !m.breaker.IsOpen() {
		t.Fatal("expected breaker to be open after a forced failure")
	}

	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("expected a silent skip while open, got error: %v", err)
	}
	if _, ok := m.GetMergedView(0); ok {
		t.Error("expected no update to run while the breaker is open")
	}
}

func TestManagerRegisterCallbackFiresAndIsolatesPanics(t *testing.T) {
	dir := t.TempDir()
	m := New(testConfig(t, dir), zerolog.Nop(), nil)

	var fired bool
	m.RegisterCallback("vessel_update", func(any) { panic("boom") })
	m.RegisterCallback("vessel_update", func(any) { fired = true })

	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fired {
		t.Error("expected the second callback to run despite the first panicking")
	}
}

func TestManagerGetMergedViewRespectsMaxAge(t *testing.T) {
	dir := t.TempDir()
	m := New(testConfig(t, dir), zerolog.Nop(), nil)

	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, ok := m.GetMergedView(time.Millisecond); ok {
		t.Error("expected a too-short max age to reject the cached view")
	}
	if _, ok := m.GetMergedView(time.Hour); !ok {
		t.Error("expected a generous max age to still find the cached view")
	}
}

func TestManagerPreservesPreviousFrameWhenFeedGoesEmpty(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	m := New(cfg, zerolog.Nop(), nil)

	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.GetFrame(vessel.FeedArrived, 0); !ok {
		t.Fatal("expected the first cycle to cache a frame")
	}

	// Truncate the feed file to empty; the loader now reports it unavailable.
	if err := os.Truncate(cfg.FeedPaths[vessel.FeedArrived], 0); err != nil {
		t.Fatal(err)
	}
	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frame, ok := m.GetFrame(vessel.FeedArrived, 0)
	if !ok || len(frame.Records) != 1 {
		t.Error("expected the previously cached frame to survive an empty re-read")
	}
}

func TestManagerStartStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	cfg.VesselUpdateInterval = 5 * time.Millisecond
	m := New(cfg, zerolog.Nop(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := m.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Start(ctx); err != nil {
		t.Fatalf("second Start should be a no-op, got error: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	m.Stop()
	m.Stop() // idempotent

	if _, ok := m.GetMergedView(time.Hour); !ok {
		t.Error("expected at least one cycle to have run before Stop")
	}
}

func TestManagerDataQualityReportCoversCachedFrames(t *testing.T) {
	dir := t.TempDir()
	m := New(testConfig(t, dir), zerolog.Nop(), nil)

	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := m.DataQualityReport()
	frameReport, ok := report.Frames[vessel.FeedArrived]
	if !ok {
		t.Fatal("expected a quality report for the arrived feed")
	}
	if !frameReport.Valid {
		t.Error("expected the fixture frame to validate cleanly")
	}
}

func TestManagerStatusReportsBreakerAndCache(t *testing.T) {
	dir := t.TempDir()
	m := New(testConfig(t, dir), zerolog.Nop(), nil)

	if err := m.runCycle(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := m.Status()
	if status.BreakerState != "closed" {
		t.Errorf("expected a closed breaker after a clean cycle, got %s", status.BreakerState)
	}
	if status.CacheStats.TotalKeys == 0 {
		t.Error("expected the cache to report stored keys")
	}
}
