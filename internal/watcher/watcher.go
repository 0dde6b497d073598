// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package watcher

import (
	"context"
	"crypto/sha256"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Callback is invoked with the path that changed. Callbacks run on the
// watcher's own goroutine and must be short or hand work off elsewhere.
type Callback func(path string)

type observation struct {
	modTime time.Time
	size    int64
	hash    [sha256.Size]byte
}

// Watcher polls a fixed set of files on an interval and invokes registered
// callbacks when a file's mtime, size, or content hash differs from the
// last observation. The first observation of any path never fires a
// callback — it only establishes the baseline.
type Watcher struct {
	interval time.Duration
	log      zerolog.Logger

	mu        sync.Mutex
	callbacks map[string][]Callback
	state     map[string]observation

	wg sync.WaitGroup
}

// New builds a Watcher that polls every interval.
func New(interval time.Duration, log zerolog.Logger) *Watcher {
	return &Watcher{
		interval:  interval,
		log:       log.With().Str("component", "watcher").Logger(),
		callbacks: make(map[string][]Callback),
		state:     make(map[string]observation),
	}
}

// Watch registers cb to run whenever path changes. Multiple callbacks may
// be registered for the same path.
func (w *Watcher) Watch(path string, cb Callback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks[path] = append(w.callbacks[path], cb)
}

// Serve polls every configured path until ctx is cancelled, implementing
// suture.Service. In-flight callbacks are allowed to complete before Serve
// returns.
func (w *Watcher) Serve(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.wg.Wait()
			return ctx.Err()
		case <-ticker.C:
			w.pollOnce()
		}
	}
}

func (w *Watcher) pollOnce() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.callbacks))
	for p := range w.callbacks {
		paths = append(paths, p)
	}
	w.mu.Unlock()

	for _, path := range paths {
		w.pollPath(path)
	}
}

func (w *Watcher) pollPath(path string) {
	next, err := observe(path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("could not stat watched file")
		return
	}

	w.mu.Lock()
	prev, seen := w.state[path]
	w.state[path] = next
	cbs := append([]Callback(nil), w.callbacks[path]...)
	w.mu.Unlock()

	if !seen {
		return // baseline capture only
	}
	if !changed(prev, next) {
		return
	}

	for _, cb := range cbs {
		w.wg.Add(1)
		func(cb Callback) {
			defer w.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					w.log.Error().Interface("panic", r).Str("path", path).Msg("watcher callback panicked")
				}
			}()
			cb(path)
		}(cb)
	}
}

func changed(prev, next observation) bool {
	return !prev.modTime.Equal(next.modTime) || prev.size != next.size || prev.hash != next.hash
}

func observe(path string) (observation, error) {
	info, err := os.Stat(path)
	if err != nil {
		return observation{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return observation{}, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return observation{}, err
	}

	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))

	return observation{
		modTime: info.ModTime(),
		size:    info.Size(),
		hash:    sum,
	}, nil
}
