// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package breaker

import (
	"context"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// Config tunes one circuit breaker. Unlike gobreaker's default ratio-based
// ReadyToTrip, a breaker built from this Config trips on consecutive
// failures, matching the per-operation failure counter described for this
// service's update loop.
type Config struct {
	// Name identifies the guarded operation, surfaced in metrics/logs.
	Name string
	// FailureThreshold is the number of consecutive failures before the
	// breaker opens.
	FailureThreshold uint32
	// ResetInterval is how long the breaker stays open before allowing a
	// single half-open probe.
	ResetInterval time.Duration
	// HalfOpenMaxRequests bounds how many probe calls are allowed through
	// while half-open.
	HalfOpenMaxRequests uint32
}

// DefaultConfig returns the service-wide defaults: 5 consecutive failures,
// a 300-second cooldown.
func DefaultConfig(name string) Config {
	return Config{
		Name:                name,
		FailureThreshold:    5,
		ResetInterval:       300 * time.Second,
		HalfOpenMaxRequests: 1,
	}
}

// Breaker wraps one gobreaker instance for a single named operation.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[any]
}

// New builds a Breaker from cfg.
func New(cfg Config) *Breaker {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenMaxRequests,
		Timeout:     cfg.ResetInterval,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
	}
	return &Breaker{name: cfg.Name, cb: gobreaker.NewCircuitBreaker[any](settings)}
}

// Name returns the operation name this breaker guards.
func (b *Breaker) Name() string { return b.name }

// State returns the current breaker state as one of "closed", "open",
// "half-open".
func (b *Breaker) State() string { return b.cb.State().String() }

// IsOpen reports whether the breaker is currently open (the operation
// would be skipped, not attempted).
func (b *Breaker) IsOpen() bool { return b.cb.State() == gobreaker.StateOpen }

// Execute runs fn through the breaker. If the breaker is open, fn is never
// called and Execute returns gobreaker.ErrOpenState immediately. A
// cancelled ctx is treated as a failure without invoking fn.
func (b *Breaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := b.cb.Execute(func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fn(ctx)
	})
	return err
}

// Registry is a concurrency-safe set of named breakers, lazily created
// from a shared default configuration template on first use.
type Registry struct {
	mu       sync.Mutex
	breakers map[string]*Breaker
	template Config
}

// NewRegistry builds a Registry. template.Name is ignored; each breaker
// created through Get takes its own name.
func NewRegistry(template Config) *Registry {
	return &Registry{breakers: make(map[string]*Breaker), template: template}
}

// Get returns the breaker for op, creating it from the registry's template
// config on first use.
func (r *Registry) Get(op string) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.breakers[op]; ok {
		return b
	}
	cfg := r.template
	cfg.Name = op
	b := New(cfg)
	r.breakers[op] = b
	return b
}

// Snapshot returns the current state of every breaker created so far,
// keyed by operation name.
func (r *Registry) Snapshot() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]string, len(r.breakers))
	for name, b := range r.breakers {
		out[name] = b.State()
	}
	return out
}
