package animation

import "time"

// Clock measures seconds since it was started or last reset.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock on the wall time.
func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc starts a clock reading time from now.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Seconds returns the elapsed time.
func (c *Clock) Seconds() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Reset restarts the clock from zero.
func (c *Clock) Reset() {
	c.start = c.now()
}
