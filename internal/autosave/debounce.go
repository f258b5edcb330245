package autosave

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one, running fn only after
// the configured quiet period. Text inputs use a short delay so drafts
// track keystrokes closely; whole forms use a longer one.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a Debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, replacing any previously
// scheduled call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.fn = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		pending := d.fn
		d.fn = nil
		d.timer = nil
		d.mu.Unlock()
		if pending != nil {
			pending()
		}
	})
}

// Flush runs any pending call immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	pending := d.fn
	d.fn = nil
	d.mu.Unlock()
	if pending != nil {
		pending()
	}
}

// Stop cancels any pending call without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fn = nil
}
