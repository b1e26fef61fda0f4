package life

// Cell identifies a position on the unbounded grid.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell { return Cell{X: c.X + o.X, Y: c.Y + o.Y} }

// Sub returns the component-wise difference of c and o.
func (c Cell) Sub(o Cell) Cell { return Cell{X: c.X - o.X, Y: c.Y - o.Y} }

// Neighbors returns the Moore neighborhood of c, excluding c itself.
func Neighbors(c Cell) [8]Cell {
	var out [8]Cell
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = Cell{X: c.X + dx, Y: c.Y + dy}
			i++
		}
	}
	return out
}

// Rule reports whether a cell is alive in the next generation.
func Rule(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Center returns the midpoint of the pattern's bounding box. The box always
// includes the origin, and the midpoint uses truncating division.
func Center(cells []Cell) Cell {
	if len(cells) == 0 {
		return Cell{}
	}
	var lo, hi Cell
	for _, c := range cells {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return Cell{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
}
