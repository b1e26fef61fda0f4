package app

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"sparse-life/internal/core"
	"sparse-life/pkg/clock"
	"sparse-life/pkg/life"
	"sparse-life/pkg/pattern"
)

// Controller maps user intents onto the world and its clock. It holds no
// rendering state so both the GUI and tests can drive it.
type Controller struct {
	world    core.World
	clock    *clock.Clock
	pattern  pattern.Pattern
	interval time.Duration
	view     *core.ByteGrid
	scale    int
	follow   bool

	frames atomic.Pointer[core.FixedStep]
	log    *logrus.Entry
}

// NewController seeds world with p and prepares a stopped clock paced by the
// host frame loop through Pump.
func NewController(world core.World, p pattern.Pattern, cfg *Config) *Controller {
	c := &Controller{
		world:    world,
		pattern:  p,
		interval: cfg.Interval,
		view:     core.NewByteGrid(cfg.Width, cfg.Height),
		scale:    cfg.Scale,
		follow:   cfg.Follow,
		log:      logrus.WithField("component", "app"),
	}
	c.view.Origin = c.view.CenteredOn(life.Cell{})
	c.clock = clock.New(
		clock.WithTicker(func(d time.Duration) clock.Ticker {
			fs := core.NewFixedStep(d)
			c.frames.Store(fs)
			return fs
		}),
		clock.WithLogger(c.log),
	)
	world.Seed(p.Cells)
	return c
}

// Clock exposes the simulation clock.
func (c *Controller) Clock() *clock.Clock { return c.clock }

// View returns the viewport refreshed from the current live set.
func (c *Controller) View() *core.ByteGrid {
	if c.follow {
		c.view.Follow(c.world)
	}
	c.view.Project(c.world.Cells())
	return c.view
}

// Recenter frames the current live cells once.
func (c *Controller) Recenter() {
	c.view.Follow(c.world)
}

// ToggleFollow switches continuous recentering on or off.
func (c *Controller) ToggleFollow() {
	c.follow = !c.follow
}

// Stats reports the values shown on the HUD.
func (c *Controller) Stats() core.Stats {
	return core.Snapshot(c.pattern.Name, c.world, c.clock)
}

// Pump is called once per host frame and lets a due tick through.
func (c *Controller) Pump() {
	if fs := c.frames.Load(); fs != nil {
		fs.Pump()
	}
}

// TogglePause starts a stopped clock or stops a running one.
func (c *Controller) TogglePause() {
	if c.clock.State() == clock.Running {
		c.clock.Stop()
		return
	}
	if err := c.clock.Start(c.world, c.interval); err != nil {
		c.log.WithError(err).Error("could not start clock")
	}
}

// Resume starts the clock if it is stopped.
func (c *Controller) Resume() {
	if err := c.clock.Start(c.world, c.interval); err != nil {
		c.log.WithError(err).Error("could not start clock")
	}
}

// StepOnce advances a paused simulation by one generation.
func (c *Controller) StepOnce() {
	if err := c.clock.Advance(c.world, c.interval); err != nil {
		c.log.WithError(err).Debug("single step ignored")
	}
}

// Clear kills every cell. Counters are left alone.
func (c *Controller) Clear() {
	c.world.Clear()
}

// Reseed restores the configured pattern and zeroes the counters.
func (c *Controller) Reseed() {
	c.world.Seed(c.pattern.Cells)
	c.clock.Reset()
	c.log.WithField("pattern", c.pattern.Name).Info("reseeded")
}

// CellAt translates a screen pixel into a plane cell. ok is false outside
// the view.
func (c *Controller) CellAt(px, py int) (life.Cell, bool) {
	if px < 0 || py < 0 {
		return life.Cell{}, false
	}
	x, y := px/c.scale, py/c.scale
	if x >= c.view.W || y >= c.view.H {
		return life.Cell{}, false
	}
	return c.view.PlaneCell(x, y), true
}

// ToggleAt flips the cell under the pixel.
func (c *Controller) ToggleAt(px, py int) {
	if cell, ok := c.CellAt(px, py); ok {
		c.world.Toggle(cell)
	}
}

// PaintAt makes the cell under the pixel alive.
func (c *Controller) PaintAt(px, py int) {
	if cell, ok := c.CellAt(px, py); ok {
		c.world.Set(cell, true)
	}
}

// Shutdown stops the clock.
func (c *Controller) Shutdown() {
	c.clock.Stop()
}
