// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package manager

import "time"

// Recorder receives instrumentation events from the manager's update
// cycle. internal/metrics implements this against Prometheus collectors;
// tests use NoopRecorder.
type Recorder interface {
	ObserveLoaderDuration(feed string, d time.Duration)
	IncLoaderError(feed, kind string)
	IncCacheHit()
	IncCacheMiss()
	SetBreakerState(op string, state int)
	IncWatcherChange(path string)
	SetMergedSize(n int)
	ObserveUpdateCycleDuration(d time.Duration)
}

// NoopRecorder discards every event. It is the default Recorder when none
// is supplied.
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoaderDuration(string, time.Duration) {}
func (NoopRecorder) IncLoaderError(string, string)               {}
func (NoopRecorder) IncCacheHit()                                {}
func (NoopRecorder) IncCacheMiss()                               {}
func (NoopRecorder) SetBreakerState(string, int)                 {}
func (NoopRecorder) IncWatcherChange(string)                     {}
func (NoopRecorder) SetMergedSize(int)                           {}
func (NoopRecorder) ObserveUpdateCycleDuration(time.Duration)     {}
