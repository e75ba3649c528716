package toast

import "time"

// Clock supplies current time and timer scheduling. Countdowns run against a
// Clock rather than the time package directly so tests can drive them on a
// virtual clock.
type Clock interface {
	Now() time.Time

	// AfterFunc schedules fn to run in its own goroutine after d elapses.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle for a single scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

type realClock struct{}

// NewClock returns a Clock backed by the time package.
func NewClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
