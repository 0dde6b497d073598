// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Func is the nullary (beyond ctx) unit of work a Scheduler invokes on
// every tick.
type Func func(ctx context.Context) error

// Scheduler invokes Fn every Interval. Each tick runs synchronously in the
// loop that reads the ticker channel, so Fn never runs concurrently with
// itself. When a run outlasts the interval, the tick that time.Ticker
// buffered meanwhile is discarded rather than run late, and every interval
// that elapsed during the run is added to SkipCount.
type Scheduler struct {
	Interval       time.Duration
	Fn             Func
	RunImmediately bool

	log zerolog.Logger

	mu        sync.Mutex
	running   bool
	lastErr   error
	lastRunAt time.Time
	tickCount int64
	skipCount int64
}

// New builds a Scheduler invoking fn every interval.
func New(interval time.Duration, fn Func, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Interval: interval,
		Fn:       fn,
		log:      log.With().Str("component", "scheduler").Logger(),
	}
}

// Serve runs the scheduler loop until ctx is cancelled, implementing
// suture.Service.
func (s *Scheduler) Serve(ctx context.Context) error {
	if s.RunImmediately {
		s.tick(ctx)
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			s.tick(ctx)
			if missed := int64(time.Since(start) / s.Interval); missed > 0 {
				select {
				case <-ticker.C:
				default:
				}
				s.mu.Lock()
				s.skipCount += missed
				s.mu.Unlock()
			}
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.skipCount++
		s.mu.Unlock()
		s.log.Warn().Msg("previous tick still running, skipping this one")
		return
	}
	s.running = true
	s.tickCount++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	err := s.Fn(ctx)

	s.mu.Lock()
	s.lastErr = err
	s.lastRunAt = time.Now()
	s.mu.Unlock()

	if err != nil {
		s.log.Error().Err(err).Msg("scheduled run failed")
	}
}

// Status is a snapshot of the scheduler's recent activity, useful for a
// health/diagnostic endpoint.
type Status struct {
	LastRunAt time.Time `json:"last_run_at"`
	LastErr   error     `json:"-"`
	TickCount int64     `json:"tick_count"`
	SkipCount int64     `json:"skip_count"`
}

// Snapshot returns the scheduler's current Status.
func (s *Scheduler) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		LastRunAt: s.lastRunAt,
		LastErr:   s.lastErr,
		TickCount: s.tickCount,
		SkipCount: s.skipCount,
	}
}
