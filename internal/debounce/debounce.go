// Package debounce provides a cancellable delay-and-reschedule timer for
// rapid event streams such as search-as-you-type input.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs a function only after its duration has elapsed without a
// newer call. Each call cancels the previously scheduled one.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// New creates a Debouncer with the given quiet window.
func New(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Do schedules fn, cancelling any pending call. Only the last call within the
// window actually fires.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
