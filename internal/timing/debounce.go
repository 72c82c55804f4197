// Package timing has the delay-parameterised rate limiters the client uses
// for document loading and redraws.
package timing

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once the triggers
// have been quiet for the configured delay.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
	running sync.WaitGroup
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any function scheduled earlier.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()

	d.running.Add(1)
	d.pending = fn
	var timer *time.Timer
	timer = time.AfterFunc(d.delay, func() {
		defer d.running.Done()
		d.mu.Lock()
		if d.timer == timer {
			d.timer, d.pending = nil, nil
		}
		d.mu.Unlock()
		fn()
	})
	d.timer = timer
}

// cancelLocked stops the scheduled timer. It reports whether fn had not
// started yet.
func (d *Debouncer) cancelLocked() bool {
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	if stopped {
		d.running.Done()
	}
	d.timer, d.pending = nil, nil
	return stopped
}

// Stop cancels a scheduled function. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

// Flush runs a scheduled function now instead of after the delay, then
// waits for any run already in progress. It reports whether a scheduled
// function was run.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	ran := d.cancelLocked()
	d.mu.Unlock()

	if ran {
		fn()
	}
	d.running.Wait()
	return ran
}
