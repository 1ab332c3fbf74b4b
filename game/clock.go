package game

import "time"

// FrameClock gates ticks on a wall clock. At most one tick is released per
// call: time missed while the host was slow is dropped rather than replayed,
// and a clock that runs backwards resynchronizes without ticking.
type FrameClock struct {
	interval time.Duration
	last     time.Time
	started  bool
	skipped  uint64
}

// NewFrameClock returns a clock releasing rate ticks per second.
func NewFrameClock(rate int) *FrameClock {
	if rate < 1 {
		rate = 1
	}
	return &FrameClock{interval: time.Second / time.Duration(rate)}
}

// Ready reports whether a tick is due at now.
func (c *FrameClock) Ready(now time.Time) bool {
	if !c.started {
		c.started = true
		c.last = now
		return true
	}

	elapsed := now.Sub(c.last)
	if elapsed < 0 {
		c.last = now
		return false
	}
	// A tenth of a frame of slack absorbs ticker jitter.
	if elapsed+c.interval/10 < c.interval {
		return false
	}

	if elapsed >= 2*c.interval {
		c.skipped += uint64(elapsed/c.interval) - 1
	}
	c.last = now
	return true
}

// Skipped returns how many ticks were dropped because the host fell behind.
func (c *FrameClock) Skipped() uint64 {
	return c.skipped
}
