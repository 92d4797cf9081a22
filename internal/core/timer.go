package core

import "time"

// Clock reports the current time in seconds. Implementations must never go
// backwards within one session.
type Clock interface {
	Now() float64
}

// WallClock measures seconds elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the seconds since the clock started.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock is advanced explicitly. Tools and tests use it to run the
// simulation without waiting on real time.
type ManualClock struct {
	T float64
}

// Now returns the stored time.
func (c *ManualClock) Now() float64 { return c.T }

// Advance moves the clock forward by dt seconds. Negative steps are ignored.
func (c *ManualClock) Advance(dt float64) {
	if dt > 0 {
		c.T += dt
	}
}

// Interval gates work so it happens at most once per period, independent of
// how often Ready is polled.
type Interval struct {
	last float64
}

// Reset marks the interval as last fired at t.
func (i *Interval) Reset(t float64) { i.last = t }

// Elapsed reports the time since the interval last fired.
func (i *Interval) Elapsed(now float64) float64 { return now - i.last }

// Ready reports whether at least period seconds passed since the last firing
// and, if so, records now as the new firing time.
func (i *Interval) Ready(now, period float64) bool {
	if now-i.last < period {
		return false
	}
	i.last = now
	return true
}

// Exceeded is the strict form of Ready: the elapsed time must be greater than
// period.
func (i *Interval) Exceeded(now, period float64) bool {
	if now-i.last <= period {
		return false
	}
	i.last = now
	return true
}
