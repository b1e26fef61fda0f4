package pattern

import (
	"fmt"
	"sort"
)

var catalog = map[string]Pattern{}

// Register adds p to the catalog under its name. Invalid patterns are ignored.
func Register(p Pattern) {
	if p.Validate() != nil {
		return
	}
	catalog[p.Name] = p
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Pattern, error) {
	p, ok := catalog[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%q: %w", name, ErrUnknownPattern)
	}
	return p, nil
}

// Names lists the catalog entries in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Pattern{Name: "block", Description: "2x2 still life", Cells: mustRows(
		"OO",
		"OO",
	)})
	Register(Pattern{Name: "blinker", Description: "period 2 oscillator", Cells: mustRows(
		"OOO",
	)})
	Register(Pattern{Name: "toad", Description: "period 2 oscillator", Cells: mustRows(
		".OOO",
		"OOO.",
	)})
	Register(Pattern{Name: "beacon", Description: "period 2 oscillator", Cells: mustRows(
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	)})
	Register(Pattern{Name: "glider", Description: "c/4 diagonal spaceship", Cells: mustRows(
		".O.",
		"..O",
		"OOO",
	)})
	Register(Pattern{Name: "lwss", Description: "lightweight spaceship", Cells: mustRows(
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	)})
	Register(Pattern{Name: "r-pentomino", Description: "methuselah, stabilizes after 1103 generations", Cells: mustRows(
		".OO",
		"OO.",
		".O.",
	)})
	Register(Pattern{Name: "diehard", Description: "vanishes after 130 generations", Cells: mustRows(
		"......O.",
		"OO......",
		".O...OOO",
	)})
	Register(Pattern{Name: "acorn", Description: "methuselah, 5206 generations", Cells: mustRows(
		".O.....",
		"...O...",
		"OO..OOO",
	)})
	Register(Pattern{Name: "pulsar", Description: "period 3 oscillator", Cells: mustRows(
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	)})
	Register(Pattern{Name: "gosper-glider-gun", Description: "emits a glider every 30 generations", Cells: mustRows(
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	)})
}
