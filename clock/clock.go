// Package clock provides the time sources a game loop reads from
package clock

import "time"

// Clock is a monotonic time source
type Clock interface {
	Now() time.Time
}

// Monotonic provides the real system time with monotonic clock readings
type Monotonic struct{}

// NewMonotonic creates a new monotonic clock
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

// Now returns the current time with monotonic clock reading
func (Monotonic) Now() time.Time {
	return time.Now()
}
