package engine

import "time"

// Clock measures wall-clock time between frames and the total time the
// app has been running.
type Clock struct {
	now     func() time.Time
	prev    time.Time
	elapsed time.Duration
}

// NewClock creates a clock backed by the system time.
func NewClock() *Clock {
	return newClockWithSource(time.Now)
}

// newClockWithSource allows tests to substitute a fake time source.
func newClockWithSource(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, prev: t}
}

// Update samples the time source and returns the duration since the
// previous Update (or since construction on the first call).
func (c *Clock) Update() time.Duration {
	t := c.now()
	dt := t.Sub(c.prev)
	c.prev = t
	c.elapsed += dt
	return dt
}

// Elapsed returns the total time accumulated across Update calls.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}
