// Package ratelimit bounds repeated login attempts per identifier within a
// fixed window. The Limiter interface hides the backend so the in-memory
// map can be swapped for a shared Redis counter without touching callers.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultWindow allows a single attempt per identifier every 5 seconds.
const DefaultWindow = 5 * time.Second

// Result is the outcome of one rate-limited attempt.
type Result struct {
	Allowed bool
	// RetryAfterSeconds is the ceiling of the time left in the window.
	// Zero when Allowed.
	RetryAfterSeconds int
}

type Limiter interface {
	Attempt(ctx context.Context, identifier string) (Result, error)
}

// Memory is a process-local Limiter: identifier → last accepted attempt.
// Limits are not shared across instances.
type Memory struct {
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	last map[string]time.Time
}

// NewMemory returns a Memory limiter. A non-positive window falls back to
// DefaultWindow.
func NewMemory(window time.Duration) *Memory {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Memory{
		window: window,
		now:    time.Now,
		last:   make(map[string]time.Time),
	}
}

// Attempt records the attempt and allows it unless a prior attempt for the
// same identifier falls inside the window. A denied attempt does not extend
// the window.
func (m *Memory) Attempt(_ context.Context, identifier string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if prior, ok := m.last[identifier]; ok {
		if elapsed := now.Sub(prior); elapsed < m.window {
			return Result{RetryAfterSeconds: ceilSeconds(m.window - elapsed)}, nil
		}
	}
	m.last[identifier] = now
	m.prune(now)

	return Result{Allowed: true}, nil
}

// prune drops entries older than the window. Opportunistic: bounds memory,
// not required for correctness.
func (m *Memory) prune(now time.Time) {
	cutoff := now.Add(-m.window)
	for id, ts := range m.last {
		if ts.Before(cutoff) {
			delete(m.last, id)
		}
	}
}

func ceilSeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}
