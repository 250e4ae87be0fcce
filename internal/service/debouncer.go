package service

import (
	"sync"
	"time"
)

// Debouncer runs a function once its key has been quiet for the delay.
// Triggering a key again before it fires replaces the pending function.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending map[string]*debounced
	stopped bool
	running sync.WaitGroup
}

type debounced struct {
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]*debounced),
	}
}

// Trigger schedules fn for key, superseding whatever was pending for it.
func (d *Debouncer) Trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}

	entry := &debounced{}
	entry.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.pending[key] != entry || d.stopped {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.running.Add(1)
		d.mu.Unlock()

		defer d.running.Done()
		fn()
	})
	d.pending[key] = entry
}

// Cancel drops the pending function for key, if any.
func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if entry, ok := d.pending[key]; ok {
		entry.timer.Stop()
		delete(d.pending, key)
	}
}

// Pending reports whether key has a function waiting to run.
func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Stop cancels everything pending and waits for running functions to return.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	for key, entry := range d.pending {
		entry.timer.Stop()
		delete(d.pending, key)
	}
	d.mu.Unlock()
	d.running.Wait()
}
