package service

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of Put calls into one emit. Each Put moves the
// deadline to now+delay; emit runs once the deadline passes without another
// Put, then the debouncer is ready for the next burst.
type Debouncer struct {
	delay time.Duration
	emit  func()

	mu       sync.Mutex
	pending  bool
	deadline time.Time
}

// NewDebouncer returns a debouncer calling emit after delay of quiet
func NewDebouncer(delay time.Duration, emit func()) *Debouncer {
	return &Debouncer{delay: delay, emit: emit}
}

// Put arms the debouncer, postponing a pending emit
func (d *Debouncer) Put() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.deadline = time.Now().Add(d.delay)
	if d.pending {
		return
	}
	d.pending = true
	go d.wait()
}

// Pending reports whether an emit is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) wait() {
	for {
		d.mu.Lock()
		remaining := time.Until(d.deadline)
		if remaining <= 0 {
			d.pending = false
			d.mu.Unlock()
			d.emit()
			return
		}
		d.mu.Unlock()
		time.Sleep(remaining)
	}
}
