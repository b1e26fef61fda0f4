package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparse-life/pkg/clock"
	"sparse-life/pkg/life"
	"sparse-life/pkg/pattern"
)

func newTestController(t *testing.T, name string) (*Controller, *life.Grid) {
	t.Helper()
	p, err := pattern.Lookup(name)
	require.NoError(t, err)
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Scale = 10, 10, 4
	g := life.New()
	return NewController(g, p, cfg), g
}

func TestControllerSeedsCenteredPattern(t *testing.T) {
	ctl, g := newTestController(t, "blinker")
	assert.Equal(t, []life.Cell{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}, g.Cells())

	view := ctl.View()
	assert.Equal(t, life.Cell{X: -5, Y: -5}, view.Origin)
	assert.EqualValues(t, 1, view.Cells()[view.Index(5, 5)])
}

func TestControllerCellAt(t *testing.T) {
	ctl, _ := newTestController(t, "block")

	cell, ok := ctl.CellAt(20, 21)
	require.True(t, ok)
	assert.Equal(t, life.Cell{X: 0, Y: 0}, cell)

	_, ok = ctl.CellAt(-1, 0)
	assert.False(t, ok)
	_, ok = ctl.CellAt(40, 0)
	assert.False(t, ok)
}

func TestControllerToggleAndPaint(t *testing.T) {
	ctl, g := newTestController(t, "block")
	before := g.Population()

	ctl.ToggleAt(0, 0)
	assert.True(t, g.IsAlive(life.Cell{X: -5, Y: -5}))
	ctl.ToggleAt(0, 0)
	assert.Equal(t, before, g.Population())

	ctl.PaintAt(4, 0)
	ctl.PaintAt(4, 0)
	assert.True(t, g.IsAlive(life.Cell{X: -4, Y: -5}))
	assert.Equal(t, before+1, g.Population())
}

func TestControllerRecenter(t *testing.T) {
	ctl, g := newTestController(t, "blinker")
	g.Clear()
	for x := 40; x <= 42; x++ {
		g.Set(life.Cell{X: x, Y: 40}, true)
	}
	assert.Equal(t, 0, ctl.View().Project(g.Cells()), "blinker starts outside the view")

	ctl.Recenter()

	view := ctl.View()
	assert.Equal(t, life.Cell{X: 36, Y: 35}, view.Origin)
	for x := 4; x <= 6; x++ {
		assert.EqualValues(t, 1, view.Cells()[view.Index(x, 5)])
	}
}

func TestControllerFollow(t *testing.T) {
	p, err := pattern.Lookup("glider")
	require.NoError(t, err)
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Follow = 3, 3, true
	g := life.New()
	ctl := NewController(g, p, cfg)

	for i := 0; i < 40; i++ {
		ctl.StepOnce()
		assert.Equal(t, 5, ctl.View().Project(g.Cells()), "generation %d left the view", i+1)
	}

	ctl.ToggleFollow()
	origin := ctl.View().Origin
	for i := 0; i < 8; i++ {
		ctl.StepOnce()
	}
	assert.Equal(t, origin, ctl.View().Origin)
}

func TestControllerStepOnceAndReseed(t *testing.T) {
	ctl, g := newTestController(t, "blinker")

	ctl.StepOnce()
	assert.Equal(t, 1, ctl.Clock().Generations())
	assert.Equal(t, []life.Cell{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}, g.Cells())

	ctl.Clear()
	assert.Equal(t, 0, g.Population())
	assert.Equal(t, 1, ctl.Clock().Generations())

	ctl.Reseed()
	assert.Equal(t, 3, g.Population())
	assert.Equal(t, 0, ctl.Clock().Generations())

	s := ctl.Stats()
	assert.Equal(t, "blinker", s.Pattern)
	assert.Equal(t, 3, s.Population)
}

func TestControllerTogglePause(t *testing.T) {
	ctl, _ := newTestController(t, "glider")

	ctl.TogglePause()
	assert.Equal(t, clock.Running, ctl.Clock().State())
	ctl.Pump()
	ctl.TogglePause()
	assert.Equal(t, clock.Stopped, ctl.Clock().State())

	ctl.Resume()
	assert.Equal(t, clock.Running, ctl.Clock().State())
	ctl.Shutdown()
	assert.Equal(t, clock.Stopped, ctl.Clock().State())
}
