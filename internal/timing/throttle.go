package timing

import (
	"sync"
	"time"
)

// Throttler admits at most one event per interval and drops the rest.
type Throttler struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

// NewThrottler creates a throttler. A nil clock means time.Now.
func NewThrottler(interval time.Duration, now func() time.Time) *Throttler {
	if now == nil {
		now = time.Now
	}
	return &Throttler{interval: interval, now: now}
}

// Allow reports whether an event may pass now.
func (t *Throttler) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Reset lets the next event through regardless of timing.
func (t *Throttler) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = time.Time{}
}
