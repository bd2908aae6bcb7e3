package core

import "time"

// maxBurst bounds how many ticks one frame may catch up on after a stall.
const maxBurst = 8

// FixedStep paces generations at a target rate independent of the frame rate.
type FixedStep struct {
	interval time.Duration
	owed     time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFixedStep returns a pacer for gps generations per second. The first call
// to Due always yields one tick.
func NewFixedStep(gps int) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetRate(gps)
	f.owed = f.interval
	return f
}

// SetRate changes the target rate; non-positive values fall back to 60.
func (f *FixedStep) SetRate(gps int) {
	if gps <= 0 {
		gps = 60
	}
	f.interval = time.Second / time.Duration(gps)
}

// Due returns how many generations have come due since the previous call.
// The backlog is capped so a long pause does not trigger a burst of steps.
func (f *FixedStep) Due() int {
	t := f.now()
	if !f.last.IsZero() {
		f.owed += t.Sub(f.last)
	}
	f.last = t
	n := int(f.owed / f.interval)
	if n > maxBurst {
		f.owed = 0
		return maxBurst
	}
	f.owed -= time.Duration(n) * f.interval
	return n
}
