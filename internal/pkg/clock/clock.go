package clock

import "time"

// Clock abstracts wall-clock time so validation and state filtering
// can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// Fixed is a Clock pinned to a single instant. Tests can advance it
// by reassigning Instant between calls.
type Fixed struct {
	Instant time.Time
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}

// NewFixed returns a Clock frozen at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Instant: t}
}
