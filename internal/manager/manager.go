// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package manager

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/port-twin/internal/breaker"
	"github.com/tomtom215/port-twin/internal/cache"
	"github.com/tomtom215/port-twin/internal/feed"
	"github.com/tomtom215/port-twin/internal/quality"
	"github.com/tomtom215/port-twin/internal/schedule"
	"github.com/tomtom215/port-twin/internal/vessel"
	"github.com/tomtom215/port-twin/internal/watcher"
)

const breakerOpName = "vessel_update"

const (
	keyFramePrefix      = "frame:"
	keyMergedView       = "merged_view"
	keyAnalysis         = "comprehensive_analysis"
	keyHistorical       = "historical_throughput"
	keyCrossReference   = "cross_reference"
)

func frameCacheKey(id vessel.FeedID) string { return keyFramePrefix + string(id) }

// Manager owns the feed loader, cache, watcher, scheduler, and circuit
// breaker, and serializes the update cycle so two runs never overlap.
type Manager struct {
	cfg Config
	log zerolog.Logger
	rec Recorder

	cache     *cache.Cache
	loader    *feed.Loader
	breaker   *breaker.Breaker
	watcher   *watcher.Watcher
	scheduler *schedule.Scheduler

	cycleMu sync.Mutex

	callbackMu sync.Mutex
	callbacks  map[string][]func(any)

	runMu   sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New builds a Manager from cfg. Feed and historical-throughput paths are
// registered with the watcher immediately; the watcher and scheduler do
// not start polling until Start is called (or until the caller adds
// Watcher()/Scheduler() to a supervisor tree and starts that instead).
func New(cfg Config, log zerolog.Logger, rec Recorder) *Manager {
	if rec == nil {
		rec = NoopRecorder{}
	}
	log = log.With().Str("component", "manager").Logger()

	m := &Manager{
		cfg:       cfg,
		log:       log,
		rec:       rec,
		cache:     cache.New(cfg.CacheDefaultTTL),
		loader:    feed.NewLoader(cfg.FeedPaths, log),
		watcher:   watcher.New(cfg.FilePollInterval, log),
		callbacks: make(map[string][]func(any)),
	}
	m.breaker = breaker.New(breaker.Config{
		Name:                breakerOpName,
		FailureThreshold:    cfg.BreakerFailureThreshold,
		ResetInterval:       cfg.BreakerResetInterval,
		HalfOpenMaxRequests: 1,
	})
	m.scheduler = schedule.New(cfg.VesselUpdateInterval, m.runCycleGuarded, log)
	m.scheduler.RunImmediately = true

	for id, path := range cfg.FeedPaths {
		id := id
		m.watcher.Watch(path, func(p string) { m.onFeedFileChanged(id, p) })
	}
	if cfg.HistoricalThroughputPath != "" {
		m.watcher.Watch(cfg.HistoricalThroughputPath, m.onHistoricalFileChanged)
	}

	return m
}

// Watcher returns the manager's file watcher, for wiring into a supervisor
// tree as an independently-restartable service.
func (m *Manager) Watcher() *watcher.Watcher { return m.watcher }

// Scheduler returns the manager's update scheduler, for the same purpose.
func (m *Manager) Scheduler() *schedule.Scheduler { return m.scheduler }

// Start runs the watcher and scheduler on their own goroutines until ctx
// is cancelled or Stop is called. Start is idempotent.
func (m *Manager) Start(ctx context.Context) error {
	m.runMu.Lock()
	if m.running {
		m.runMu.Unlock()
		return nil
	}
	m.running = true
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.runMu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := m.scheduler.Serve(runCtx); err != nil && runCtx.Err() == nil {
			m.log.Error().Err(err).Msg("scheduler exited unexpectedly")
		}
	}()

	if m.cfg.EnableFileMonitoring {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			if err := m.watcher.Serve(runCtx); err != nil && runCtx.Err() == nil {
				m.log.Error().Err(err).Msg("watcher exited unexpectedly")
			}
		}()
	}
	return nil
}

// Stop signals the watcher and scheduler to stop and waits for the
// current update cycle, if any, to finish. Stop is idempotent.
func (m *Manager) Stop() {
	m.runMu.Lock()
	if !m.running {
		m.runMu.Unlock()
		return
	}
	m.running = false
	cancel := m.cancel
	m.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *Manager) onFeedFileChanged(id vessel.FeedID, path string) {
	m.rec.IncWatcherChange(path)
	if !m.cfg.AutoReloadOnFileChange {
		return
	}
	m.log.Info().Str("feed", string(id)).Str("path", path).Msg("feed file changed, triggering update")
	m.runCycleGuarded(context.Background())
}

func (m *Manager) onHistoricalFileChanged(path string) {
	m.rec.IncWatcherChange(path)
	m.log.Info().Str("path", path).Msg("historical throughput file changed, invalidating cache entry")
	m.cache.Invalidate(keyHistorical)
}

// runCycleGuarded serializes update cycles: if one is already running
// (triggered by the scheduler tick or a concurrent watcher event), this
// invocation is dropped rather than queued. This is how the scheduler tick
// and watcher-driven re-runs coalesce into a single in-flight cycle.
func (m *Manager) runCycleGuarded(ctx context.Context) error {
	if !m.cycleMu.TryLock() {
		m.log.Debug().Msg("update cycle already running, skipping")
		return nil
	}
	defer m.cycleMu.Unlock()

	start := time.Now()
	err := m.runCycle(ctx)
	m.rec.ObserveUpdateCycleDuration(time.Since(start))
	m.rec.SetBreakerState(breakerOpName, breakerStateCode(m.breaker.State()))
	return err
}

func (m *Manager) runCycle(ctx context.Context) error {
	if m.breaker.IsOpen() {
		m.log.Warn().Msg("vessel_update breaker open, skipping cycle")
		return nil
	}

	return m.breaker.Execute(ctx, func(ctx context.Context) error {
		loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		loadStart := time.Now()
		frames, err := m.loader.LoadAll(loadCtx)
		m.rec.ObserveLoaderDuration("all", time.Since(loadStart))
		if err != nil {
			m.rec.IncLoaderError("all", "load")
			return err
		}

		allFrames := make([]vessel.Frame, 0, len(vessel.AllFeeds))
		for _, id := range vessel.AllFeeds {
			frame, loaded := frames[id]
			if loaded {
				report := quality.ValidateVesselFrame(frame.Records)
				if report.Valid {
					m.cache.Set(frameCacheKey(id), frame)
					allFrames = append(allFrames, frame)
					continue
				}
				m.log.Warn().Str("feed", string(id)).Str("reason", report.Message).Msg("frame failed validation, not cached")
			}
			if cached, ok := m.cache.Get(frameCacheKey(id)); ok {
				if cachedFrame, ok := cached.(vessel.Frame); ok {
					allFrames = append(allFrames, cachedFrame)
				}
			}
		}

		now := time.Now()
		merged := vessel.Merge(allFrames, now, m.cfg.DedupWindow)
		m.cache.Set(keyMergedView, merged)
		m.rec.SetMergedSize(len(merged.Records))

		analysis := ComputeAnalysis(merged, now)
		m.cache.Set(keyAnalysis, analysis)

		m.runCrossReferenceBestEffort(merged)
		m.fireCallbacks("vessel_update", merged)

		m.log.Info().Int("vessels", len(merged.Records)).Msg("vessels_merged")
		return nil
	})
}

func (m *Manager) runCrossReferenceBestEffort(merged vessel.MergedView) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn().Interface("panic", r).Msg("cross-reference analyzer panicked, ignoring")
		}
	}()

	if m.cfg.HistoricalThroughputPath == "" {
		return
	}

	history, ok := m.cache.Get(keyHistorical)
	if !ok {
		loaded, err := LoadHistoricalThroughput(m.cfg.HistoricalThroughputPath)
		if err != nil {
			m.log.Warn().Err(err).Msg("could not load historical throughput, skipping cross-reference")
			return
		}
		m.cache.Set(keyHistorical, loaded)
		history = loaded
	}

	points, ok := history.([]vessel.HistoricalThroughputPoint)
	if !ok {
		return
	}

	result, ok := quality.CrossReference(points, len(merged.Records), m.cfg.AvgTEUPerShip, m.cfg.VarianceThresholdPct)
	if !ok {
		return
	}
	m.cache.Set(keyCrossReference, result)
}

// RegisterCallback registers fn to run after every successful update for
// dataType. Callbacks for the same dataType run in registration order;
// order across distinct dataType keys is unspecified. A panicking callback
// is recovered and logged without affecting the others.
func (m *Manager) RegisterCallback(dataType string, fn func(any)) {
	m.callbackMu.Lock()
	defer m.callbackMu.Unlock()
	m.callbacks[dataType] = append(m.callbacks[dataType], fn)
}

func (m *Manager) fireCallbacks(dataType string, payload any) {
	m.callbackMu.Lock()
	cbs := append([]func(any){}, m.callbacks[dataType]...)
	m.callbackMu.Unlock()

	for _, cb := range cbs {
		func(cb func(any)) {
			defer func() {
				if r := recover(); r != nil {
					m.log.Error().Interface("panic", r).Str("data_type", dataType).Msg("callback panicked")
				}
			}()
			cb(payload)
		}(cb)
	}
}

// GetMergedView returns the cached MergedView if it is fresher than
// maxAge (zero uses the cache's default TTL).
func (m *Manager) GetMergedView(maxAge time.Duration) (vessel.MergedView, bool) {
	v, ok := m.cache.GetWithTTL(keyMergedView, maxAge)
	if !ok {
		return vessel.MergedView{}, false
	}
	view, ok := v.(vessel.MergedView)
	return view, ok
}

// GetFrame returns the cached Frame for a feed if it is fresher than
// maxAge.
func (m *Manager) GetFrame(id vessel.FeedID, maxAge time.Duration) (vessel.Frame, bool) {
	v, ok := m.cache.GetWithTTL(frameCacheKey(id), maxAge)
	if !ok {
		return vessel.Frame{}, false
	}
	frame, ok := v.(vessel.Frame)
	return frame, ok
}

// GetComprehensiveAnalysis returns the most recently computed Analysis.
func (m *Manager) GetComprehensiveAnalysis() (Analysis, bool) {
	v, ok := m.cache.Get(keyAnalysis)
	if !ok {
		return Analysis{}, false
	}
	a, ok := v.(Analysis)
	return a, ok
}

// GetCrossReference returns the most recently computed cross-reference
// result, if any historical throughput data has been configured.
func (m *Manager) GetCrossReference() (quality.CrossReferenceResult, bool) {
	v, ok := m.cache.Get(keyCrossReference)
	if !ok {
		return quality.CrossReferenceResult{}, false
	}
	r, ok := v.(quality.CrossReferenceResult)
	return r, ok
}

// Status is a health/diagnostic snapshot.
type Status struct {
	BreakerState    string          `json:"breaker_state"`
	SchedulerStatus schedule.Status `json:"scheduler_status"`
	CacheStats      cache.Stats     `json:"cache_stats"`
}

// Status reports the manager's current health.
func (m *Manager) Status() Status {
	return Status{
		BreakerState:    m.breaker.State(),
		SchedulerStatus: m.scheduler.Snapshot(),
		CacheStats:      m.cache.Stats(),
	}
}

// QualityReport bundles every validation/anomaly report the manager can
// currently produce.
type QualityReport struct {
	Frames     map[vessel.FeedID]quality.VesselFrameReport `json:"frames"`
	Historical *quality.HistoricalThroughputReport         `json:"historical,omitempty"`
}

// DataQualityReport validates the currently cached frames and, if
// available, the historical throughput series.
func (m *Manager) DataQualityReport() QualityReport {
	report := QualityReport{Frames: make(map[vessel.FeedID]quality.VesselFrameReport)}

	for _, id := range vessel.AllFeeds {
		if v, ok := m.cache.Get(frameCacheKey(id)); ok {
			if frame, ok := v.(vessel.Frame); ok {
				report.Frames[id] = quality.ValidateVesselFrame(frame.Records)
			}
		}
	}

	if v, ok := m.cache.Get(keyHistorical); ok {
		if points, ok := v.([]vessel.HistoricalThroughputPoint); ok {
			r := quality.ValidateHistoricalThroughput(points)
			report.Historical = &r
		}
	}

	return report
}

func breakerStateCode(state string) int {
	switch state {
	case gobreaker.StateClosed.String():
		return 0
	case gobreaker.StateHalfOpen.String():
		return 1
	case gobreaker.StateOpen.String():
		return 2
	default:
		return -1
	}
}
