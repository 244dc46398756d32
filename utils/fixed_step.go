package utils

import "time"

// FixedStep converts a host frame clock into engine ticks at a fixed rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep targets tps ticks per second; non-positive rates fall back to 1.
// The first call to ShouldStep fires immediately.
func NewFixedStep(tps float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(tps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the tick rate.
func (f *FixedStep) SetRate(tps float64) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Duration(float64(time.Second) / tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a tick is due based on wall-clock time.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Advance adds elapsed time and reports whether a tick is due. At most one
// tick is reported per call.
func (f *FixedStep) Advance(delta time.Duration) bool {
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// drop backlog beyond one tick so a stalled host does not burst
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
