package core

import "time"

// FixedStep paces frame updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: 5}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance accounts for the time elapsed up to now and returns how many ticks
// are due. At most five ticks are reported at once so a stalled caller does
// not fast-forward through a burst of frames.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := 0
	for f.accumulator >= f.step && n < f.maxCatchUp {
		f.accumulator -= f.step
		n++
	}
	if n == f.maxCatchUp {
		f.accumulator = 0
	}
	return n
}

// Wait sleeps until the next tick is due.
func (f *FixedStep) Wait() {
	if f.last.IsZero() {
		f.Advance(time.Now())
		return
	}
	if remaining := f.step - f.accumulator - time.Since(f.last); remaining > 0 {
		time.Sleep(remaining)
	}
	f.Advance(time.Now())
}
