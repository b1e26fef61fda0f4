package core

import (
	"time"

	"sparse-life/pkg/clock"
	"sparse-life/pkg/life"
)

// World is the part of the life grid that drivers and renderers use.
type World interface {
	Step()
	Cells() []life.Cell
	Bounds() (lo, hi life.Cell, ok bool)
	Population() int
	Toggle(c life.Cell)
	Set(c life.Cell, alive bool)
	Seed(cells []life.Cell)
	Clear()
}

// Metrics exposes the clock counters shown on status displays.
type Metrics interface {
	State() clock.State
	Generations() int
	ElapsedTime() time.Duration
}

var (
	_ World   = (*life.Grid)(nil)
	_ Metrics = (*clock.Clock)(nil)
)
