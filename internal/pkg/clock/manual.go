package clock

import (
	"sync"
	"time"
)

// Manual is a Clock driven by explicit Advance calls, for tests.
// Timers registered via AfterFunc fire synchronously during Advance,
// in schedule order, once their deadline is reached.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

// NewManual creates a manual clock set to the given instant
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// Now returns the manual clock's current instant
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to fire when the clock advances past d from now
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{
		clock: m,
		at:    m.now.Add(d),
		f:     f,
	}
	m.timers = append(m.timers, t)
	return t
}

// SetNow jumps the clock to a specific instant without firing timers
func (m *Manual) SetNow(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Advance moves the clock forward and fires every due timer. Callbacks
// run outside the clock's lock so they may register new timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)

	var due []*manualTimer
	var remaining []*manualTimer
	for _, t := range m.timers {
		if t.stopped {
			continue
		}
		if !t.at.After(m.now) {
			t.fired = true
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	m.timers = remaining
	m.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of registered timers that have not fired
// and have not been stopped
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, t := range m.timers {
		if !t.stopped {
			count++
		}
	}
	return count
}

type manualTimer struct {
	clock   *Manual
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
