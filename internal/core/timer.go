package core

import (
	"sync/atomic"
	"time"
)

// FixedStep turns a host frame loop into a clock tick source. The host calls
// Pump once per frame; FixedStep emits one tick each time a full interval has
// accumulated. It implements clock.Ticker.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	ch      chan time.Time
	stopped atomic.Bool
}

// NewFixedStep constructs a FixedStep emitting one tick per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now, ch: make(chan time.Time, 1)}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// ShouldStep reports whether a full interval has accumulated since the last
// tick, consuming it if so.
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
		// Long frames must not queue a burst of catch-up ticks.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Pump advances the accumulator and delivers a tick when one is due. A tick
// the consumer has not picked up yet is not duplicated.
func (f *FixedStep) Pump() bool {
	if f.stopped.Load() || !f.ShouldStep() {
		return false
	}
	select {
	case f.ch <- f.last:
		return true
	default:
		return false
	}
}

// C returns the tick channel.
func (f *FixedStep) C() <-chan time.Time { return f.ch }

// Stop makes further Pump calls inert. It may be called from any goroutine.
func (f *FixedStep) Stop() { f.stopped.Store(true) }
