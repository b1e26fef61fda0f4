package core

import "sparse-life/pkg/life"

// ByteGrid stores a window of the unbounded plane as byte-sized cell values
// in row-major order. Origin is the plane coordinate of the top-left cell.
type ByteGrid struct {
	W, H   int
	Origin life.Cell
	data   []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// CenteredOn returns the origin that puts c in the middle of the window.
func (g *ByteGrid) CenteredOn(c life.Cell) life.Cell {
	return life.Cell{X: c.X - g.W/2, Y: c.Y - g.H/2}
}

// Frame moves the window so the box lo..hi sits in its middle.
func (g *ByteGrid) Frame(lo, hi life.Cell) {
	g.Origin = g.CenteredOn(life.Cell{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2})
}

// Follow frames the live cells of w. It leaves the window alone when w is
// empty.
func (g *ByteGrid) Follow(w World) {
	if lo, hi, ok := w.Bounds(); ok {
		g.Frame(lo, hi)
	}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for window coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// PlaneCell translates window coordinates into a plane coordinate.
func (g *ByteGrid) PlaneCell(x, y int) life.Cell {
	return life.Cell{X: g.Origin.X + x, Y: g.Origin.Y + y}
}

// Project clears the window and marks every cell that falls inside it. It
// returns how many cells were visible.
func (g *ByteGrid) Project(cells []life.Cell) int {
	g.Clear()
	visible := 0
	for _, c := range cells {
		x, y := c.X-g.Origin.X, c.Y-g.Origin.Y
		if x < 0 || y < 0 || x >= g.W || y >= g.H {
			continue
		}
		g.data[g.Index(x, y)] = 1
		visible++
	}
	return visible
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
