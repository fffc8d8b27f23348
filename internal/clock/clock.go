// Package clock provides the time source used to date new cookies.
package clock

import "time"

// Clock is an interface for getting the current time.
type Clock interface {
	Now() time.Time
}

// Real is the production clock -- uses system time.
type Real struct{}

// Now returns the current system time.
func (Real) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Tests use it to make encoded
// archives reproducible.
type Fixed struct {
	current time.Time
}

// NewFixed returns a clock stuck at t, or at 2024-01-01 UTC when t is zero.
func NewFixed(t time.Time) *Fixed {
	if t.IsZero() {
		t = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &Fixed{current: t}
}

// Now returns the fixed time.
func (f *Fixed) Now() time.Time {
	return f.current
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
