package life

import "sort"

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

// NewCellSet returns a set holding the provided cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Insert adds c to the set.
func (s CellSet) Insert(c Cell) { s[c] = struct{}{} }

// Remove deletes c from the set.
func (s CellSet) Remove(c Cell) { delete(s, c) }

// Contains reports whether c is a member.
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s CellSet) Len() int { return len(s) }

// Clear removes every member while keeping the allocation.
func (s CellSet) Clear() {
	for c := range s {
		delete(s, c)
	}
}

// Sorted returns the members ordered by row, then column.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Equal reports whether both sets hold the same cells.
func (s CellSet) Equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}
