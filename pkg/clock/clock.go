package clock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrInvalidInterval is returned when a clock is started with a non-positive
// interval.
var ErrInvalidInterval = errors.New("interval must be positive")

// ErrRunning is returned by Advance while a tick stream is active.
var ErrRunning = errors.New("clock is running")

// State is the run state of a Clock.
type State int

const (
	// Stopped is the initial state; no ticks are issued.
	Stopped State = iota
	// Running means a tick stream is active.
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stepper is anything that can advance by one generation.
type Stepper interface {
	Step()
}

// TickFunc observes a completed tick.
type TickFunc func(generations int, elapsed time.Duration)

// Option configures a Clock.
type Option func(*Clock)

// WithTicker overrides how the clock builds its tick source.
func WithTicker(fn func(time.Duration) Ticker) Option {
	return func(c *Clock) {
		if fn != nil {
			c.newTicker = fn
		}
	}
}

// WithLogger sets the log entry used for lifecycle messages.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Clock) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOnTick registers a callback invoked after every tick, on the ticking
// goroutine.
func WithOnTick(fn TickFunc) Option {
	return func(c *Clock) { c.onTick = fn }
}

// Clock calls Step on a fixed interval and tracks how many generations and
// how much simulated time have passed.
type Clock struct {
	mu          sync.Mutex
	state       State
	generations int
	elapsed     time.Duration

	newTicker func(time.Duration) Ticker
	onTick    TickFunc
	log       *logrus.Entry

	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a stopped clock.
func New(opts ...Option) *Clock {
	c := &Clock{
		newTicker: NewTimeTicker,
		log:       logrus.WithField("component", "clock"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins calling grid.Step once per interval until Stop. Starting a
// running clock does nothing.
func (c *Clock) Start(grid Stepper, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("start clock with interval %v: %w", interval, ErrInvalidInterval)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		c.log.Debug("start ignored, already running")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.state = Running
	c.cancel = cancel
	c.done = done

	go c.run(ctx, c.newTicker(interval), grid, interval, done)
	c.log.WithField("interval", interval).Info("clock started")
	return nil
}

func (c *Clock) run(ctx context.Context, t Ticker, grid Stepper, interval time.Duration, done chan struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			// Both cases may be ready at once; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			c.tick(grid, interval)
		}
	}
}

func (c *Clock) tick(grid Stepper, interval time.Duration) {
	grid.Step()

	c.mu.Lock()
	gens, elapsed, hook := c.record(interval)
	c.mu.Unlock()

	c.notify(gens, elapsed, hook)
}

// record counts one finished step. c.mu must be held.
func (c *Clock) record(interval time.Duration) (int, time.Duration, TickFunc) {
	c.generations++
	c.elapsed += interval
	return c.generations, c.elapsed, c.onTick
}

func (c *Clock) notify(gens int, elapsed time.Duration, hook TickFunc) {
	c.log.WithField("generation", gens).Trace("tick")
	if hook != nil {
		hook(gens, elapsed)
	}
}

// Stop halts the tick stream and waits for the ticking goroutine to exit.
// A step already in progress is allowed to finish, and the clock reports
// Running until it has. Stop must not be called from a TickFunc or from
// grid.Step.
func (c *Clock) Stop() {
	c.mu.Lock()
	if c.state != Running {
		c.mu.Unlock()
		return
	}
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	cancel()
	<-done

	c.mu.Lock()
	if c.done == done {
		c.state = Stopped
		c.cancel, c.done = nil, nil
	}
	gens := c.generations
	c.mu.Unlock()
	c.log.WithField("generations", gens).Info("clock stopped")
}

// Advance performs a single tick synchronously. It is meant for single
// stepping a stopped clock and fails while a tick stream is active. Start
// waits for an Advance in progress.
func (c *Clock) Advance(grid Stepper, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("advance clock with interval %v: %w", interval, ErrInvalidInterval)
	}

	c.mu.Lock()
	if c.state == Running {
		c.mu.Unlock()
		return ErrRunning
	}
	grid.Step()
	gens, elapsed, hook := c.record(interval)
	c.mu.Unlock()

	c.notify(gens, elapsed, hook)
	return nil
}

// Reset zeroes the generation counter and elapsed time.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations = 0
	c.elapsed = 0
}

// State returns the current run state.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Generations returns the number of ticks since the last Reset.
func (c *Clock) Generations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations
}

// ElapsedTime returns the simulated time since the last Reset.
func (c *Clock) ElapsedTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// ElapsedSeconds is ElapsedTime in seconds.
func (c *Clock) ElapsedSeconds() float64 {
	return c.ElapsedTime().Seconds()
}
