package render

import (
	"io"
	"strings"

	"sparse-life/internal/core"
)

// Text draws the window as one line per row using on for live cells and off
// for dead ones.
func Text(g *core.ByteGrid, on, off byte) string {
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if cells[g.Index(x, y)] != 0 {
				b.WriteByte(on)
			} else {
				b.WriteByte(off)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteText writes the Text frame to w.
func WriteText(w io.Writer, g *core.ByteGrid, on, off byte) error {
	_, err := io.WriteString(w, Text(g, on, off))
	return err
}
