// Package ticker drives the countdown by invoking a callback at a fixed
// cadence until it is cancelled
package ticker

import (
	"sync"
	"time"
)

// Handle is the cancellation token of a running schedule.
type Handle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func newHandle() *Handle {
	return &Handle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Cancel stops the schedule. It is safe to call more than once, on a nil
// handle, and from within the tick callback itself.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}

	h.once.Do(func() {
		close(h.stop)
	})
}

// Cancelled reports whether Cancel has been called.
func (h *Handle) Cancelled() bool {
	if h == nil {
		return true
	}

	select {
	case <-h.stop:
		return true
	default:
		return false
	}
}

// Done is closed once the schedule has stopped and no tick is running.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Driver owns the single active schedule.
type Driver struct {
	current *Handle
	mu      sync.Mutex
}

// New returns a driver with no active schedule.
func New() *Driver {
	return &Driver{}
}

// Start invokes onTick every interval, the first time after one interval has
// elapsed. Any schedule started earlier is cancelled first.
func (d *Driver) Start(interval time.Duration, onTick func()) *Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.current.Cancel()

	h := newHandle()
	d.current = h

	go run(h, interval, onTick)

	return h
}

// Cancel stops the schedule identified by h.
func (d *Driver) Cancel(h *Handle) {
	h.Cancel()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current == h {
		d.current = nil
	}
}

// active returns the live handle, if any.
func (d *Driver) active() *Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current.Cancelled() {
		return nil
	}

	return d.current
}

func run(h *Handle, interval time.Duration, onTick func()) {
	t := time.NewTicker(interval)

	defer func() {
		t.Stop()
		close(h.done)
	}()

	for {
		select {
		case <-h.stop:
			return
		case <-t.C:
			// both channels may be ready at once
			if h.Cancelled() {
				return
			}

			onTick()
		}
	}
}
