// Package clock provides time utilities for the application
package clock

import "time"

// Timer is a cancellable one-shot wake-up. Stop reports whether the
// call prevented the timer from firing.
type Timer interface {
	Stop() bool
}

// Clock provides time functionality
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on a real timer
func (c *Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
