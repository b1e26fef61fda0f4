// Package pattern provides named starting configurations for the life grid:
// a built-in catalog, YAML and plaintext pattern files, and random soups.
package pattern

import (
	"errors"
	"fmt"

	"sparse-life/pkg/life"
)

var (
	// ErrEmptyPattern is returned for patterns without live cells.
	ErrEmptyPattern = errors.New("pattern has no live cells")
	// ErrUnknownPattern is returned when a catalog lookup fails.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Pattern is a reusable set of live-cell offsets.
type Pattern struct {
	Name        string
	Description string
	Cells       []life.Cell
}

// Validate checks that the pattern can seed a grid.
func (p Pattern) Validate() error {
	if p.Name == "" {
		return errors.New("pattern name is required")
	}
	if len(p.Cells) == 0 {
		return fmt.Errorf("%s: %w", p.Name, ErrEmptyPattern)
	}
	return nil
}

// Size returns the width and height of the pattern's bounding box.
func (p Pattern) Size() (w, h int) {
	if len(p.Cells) == 0 {
		return 0, 0
	}
	lo, hi := p.Cells[0], p.Cells[0]
	for _, c := range p.Cells[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return hi.X - lo.X + 1, hi.Y - lo.Y + 1
}

// FromRows converts a picture into cell offsets. Row i is y=i; 'O' and '*'
// mark live cells and '.' marks dead ones.
func FromRows(rows []string) ([]life.Cell, error) {
	var cells []life.Cell
	for y, row := range rows {
		for x, ch := range []byte(row) {
			switch ch {
			case 'O', 'o', '*':
				cells = append(cells, life.Cell{X: x, Y: y})
			case '.', ' ':
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", y, x, ch)
			}
		}
	}
	return cells, nil
}

func mustRows(rows ...string) []life.Cell {
	cells, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return cells
}
