// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package cache

import "time"

// Cacher is the interface the real-time manager depends on, so tests can
// substitute a fake clock-driven cache without pulling in the concrete
// cleanup goroutine.
type Cacher interface {
	Set(key string, value interface{})
	Get(key string) (interface{}, bool)
	GetWithTTL(key string, ttl time.Duration) (interface{}, bool)
	Invalidate(key string)
	Clear()
	Stats() Stats
}

var _ Cacher = (*Cache)(nil)
