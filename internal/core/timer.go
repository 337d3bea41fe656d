package core

import "time"

// FixedStep converts wall-clock time into a whole number of fixed-length
// ticks, carrying the remainder between calls.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxSteps    int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// At most maxSteps ticks are reported per call; zero means unbounded.
func NewFixedStep(tps, maxSteps int) *FixedStep {
	fs := &FixedStep{maxSteps: maxSteps}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance reports how many ticks elapsed up to now. The first call only
// records the starting time.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	f.accumulator += delta
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if f.maxSteps > 0 && n > f.maxSteps {
		n = f.maxSteps
	}
	return n
}

// Reset forgets the last observed time and any carried remainder.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = 0
}
