package life

import "sync"

// Grid implements Conway's Game of Life on an unbounded plane. Only live cells
// are stored.
type Grid struct {
	mu  sync.RWMutex
	cur CellSet
	chk CellSet
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{cur: CellSet{}, chk: CellSet{}}
}

// IsAlive reports whether c is in the live set.
func (g *Grid) IsAlive(c Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cur.Contains(c)
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cur.Len()
}

// Toggle flips the liveness of c.
func (g *Grid) Toggle(c Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cur.Contains(c) {
		g.cur.Remove(c)
		return
	}
	g.cur.Insert(c)
}

// Set forces c alive or dead.
func (g *Grid) Set(c Cell, alive bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if alive {
		g.cur.Insert(c)
		return
	}
	g.cur.Remove(c)
}

// Seed replaces the live set with cells, shifted so the pattern's bounding
// box center lands on the origin.
func (g *Grid) Seed(cells []Cell) {
	center := Center(cells)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cur = make(CellSet, len(cells))
	g.chk.Clear()
	for _, c := range cells {
		g.cur.Insert(c.Sub(center))
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cur = CellSet{}
}

// Cells returns the live cells ordered by row, then column.
func (g *Grid) Cells() []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cur.Sorted()
}

// Bounds returns the inclusive bounding box of the live set. ok is false
// when the grid is empty.
func (g *Grid) Bounds() (lo, hi Cell, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for c := range g.cur {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi, ok
}

// Step advances the simulation by one generation. Every candidate is judged
// against the current set; survivors go into a fresh set that replaces it.
func (g *Grid) Step() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.chk.Clear()
	for c := range g.cur {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				g.chk.Insert(Cell{X: c.X + dx, Y: c.Y + dy})
			}
		}
	}

	nxt := make(CellSet, len(g.cur))
	for c := range g.chk {
		if Rule(g.cur.Contains(c), g.countNeighbors(c)) {
			nxt.Insert(c)
		}
	}
	g.cur = nxt
}

func (g *Grid) countNeighbors(c Cell) int {
	n := 0
	for _, nb := range Neighbors(c) {
		if g.cur.Contains(nb) {
			n++
		}
	}
	return n
}
