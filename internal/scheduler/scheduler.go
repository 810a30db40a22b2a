// Package scheduler drives fixed-interval simulation ticks.
// The game controller only sees the Scheduler interface, so the same state
// machine runs against the wall clock, a test harness or a scripted replay.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler is a single logical timer.
//
// Start while running and Stop while stopped are no-ops. onTick is called once
// per elapsed interval until Stop; missed intervals are not replayed.
type Scheduler interface {
	Start(interval time.Duration, onTick func())
	Stop()
	IsRunning() bool
}

// Ticker runs onTick from a background goroutine driven by time.Ticker.
// Stop does not wait for the goroutine, so it is safe to call from onTick.
type Ticker struct {
	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker creates a stopped Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start begins ticking every interval.
func (t *Ticker) Start(interval time.Duration, onTick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	go t.run(interval, onTick, stop)
}

func (t *Ticker) run(interval time.Duration, onTick func(), stop <-chan struct{}) {
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tk.C:
			// Both channels may be ready; stop wins.
			select {
			case <-stop:
				return
			default:
			}
			onTick()
		}
	}
}

// Stop halts ticking.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
}

// IsRunning reports whether the ticker is active.
func (t *Ticker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Manual ticks only when Fire is called. It ignores the interval.
type Manual struct {
	mu       sync.Mutex
	onTick   func()
	interval time.Duration
	starts   int
}

// NewManual creates a stopped Manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Start arms the scheduler with onTick.
func (m *Manual) Start(interval time.Duration, onTick func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.onTick != nil {
		return
	}
	m.onTick = onTick
	m.interval = interval
	m.starts++
}

// Stop disarms the scheduler.
func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onTick = nil
}

// IsRunning reports whether the scheduler is armed.
func (m *Manual) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.onTick != nil
}

// Fire delivers one tick if running and reports whether it did.
func (m *Manual) Fire() bool {
	m.mu.Lock()
	onTick := m.onTick
	m.mu.Unlock()

	if onTick == nil {
		return false
	}
	onTick()
	return true
}

// Interval returns the interval passed to the last effective Start.
func (m *Manual) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}

// Starts counts effective Start calls. Idempotent starts are not counted.
func (m *Manual) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}
