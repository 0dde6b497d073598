// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestWatcherFirstObservationFiresNoCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.xml")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(10*time.Millisecond, zerolog.Nop())
	var calls int32
	w.Watch(path, func(string) { atomic.AddInt32(&calls, 1) })

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	_ = w.Serve(ctx)

	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no callback on the first observation, got %d calls", calls)
	}
}

func TestWatcherFiresOnContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.xml")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := New(10*time.Millisecond, zerolog.Nop())
	var calls int32
	w.Watch(path, func(string) { atomic.AddInt32(&calls, 1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = w.Serve(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond) // let the baseline observation happen
	if err := os.WriteFile(path, []byte("v2 - longer content"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(40 * time.Millisecond)
	cancel()
	<-done

	if atomic.LoadInt32(&calls) == 0 {
		t.Error("expected at least one callback after the file content changed")
	}
}

func TestWatcherMissingFileLogsWithoutPanic(t *testing.T) {
	w := New(10*time.Millisecond, zerolog.Nop())
	w.Watch("/nonexistent/path/feed.xml", func(string) {})

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	_ = w.Serve(ctx) // must not panic
}
