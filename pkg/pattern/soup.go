package pattern

import (
	"fmt"

	"sparse-life/pkg/core"
	"sparse-life/pkg/life"
)

// Soup returns a w*h area filled at random with the given density. The same
// seed always yields the same cells.
func Soup(seed int64, w, h int, density float64) Pattern {
	var cells []life.Cell
	core.NewRNG(seed).FillBinary(w, h, density, func(x, y int) {
		cells = append(cells, life.Cell{X: x, Y: y})
	})
	return Pattern{
		Name:        fmt.Sprintf("soup-%d", seed),
		Description: fmt.Sprintf("%dx%d random fill at %.2f", w, h, density),
		Cells:       cells,
	}
}
