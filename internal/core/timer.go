package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// It owns the cadence; the simulation it drives does not.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	ticks       uint64

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 30
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 30
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of a single tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Ticks reports how many times ShouldStep has returned true.
func (f *FixedStep) Ticks() uint64 { return f.ticks }

// ShouldStep reports whether the simulation should advance by one tick.
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
		f.ticks++
		return true
	}
	return false
}
