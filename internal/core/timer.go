package core

import "time"

// DefaultTickInterval is the period between snake ticks.
const DefaultTickInterval = 120 * time.Millisecond

// FixedStep gates a frame-driven loop so the game advances at a steady
// interval regardless of the host frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.step = interval
}

// Interval returns the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset discards accumulated time so the next tick lands one full interval
// after the call.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the game should advance by one tick. Time lost
// while the host loop stalled collapses into at most one pending tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
