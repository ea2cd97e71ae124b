package render

import "time"

// FrameClock is the time source of the simulation: it measures the wall
// time between two game updates. The measured time is not clamped, a
// stalled window produces one long frame.
type FrameClock struct {
	now      func() time.Time
	last     time.Time
	fallback time.Duration // returned on the very first frame
}

// NewFrameClock creates a clock; now defaults to time.Now.
func NewFrameClock(now func() time.Time, fallback time.Duration) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now, fallback: fallback}
}

// Elapsed returns the time since the previous call, multiplied by scale.
func (c *FrameClock) Elapsed(scale float64) time.Duration {
	t := c.now()
	elapsed := c.fallback
	if !c.last.IsZero() {
		elapsed = t.Sub(c.last)
	}
	c.last = t
	return time.Duration(float64(elapsed) * scale)
}
