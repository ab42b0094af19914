package scene

import "time"

// Clock measures the time between ticks.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock that reads time from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start captures the epoch the first delta is measured from.
func (c *Clock) Start() {
	c.last = c.now()
}

// Delta returns the seconds elapsed since the previous call, or since Start for
// the first call. The result is never negative.
func (c *Clock) Delta() float64 {
	current := c.now()
	dt := current.Sub(c.last).Seconds()
	c.last = current
	if dt < 0 {
		return 0
	}
	return dt
}
