package core

import (
	"fmt"
	"time"

	"sparse-life/pkg/clock"
)

// Stats is a point-in-time status line for a running simulation.
type Stats struct {
	Pattern     string
	State       clock.State
	Population  int
	Generations int
	Elapsed     time.Duration
}

// Snapshot reads population from the world and counters from the clock.
func Snapshot(pattern string, w World, m Metrics) Stats {
	return Stats{
		Pattern:     pattern,
		State:       m.State(),
		Population:  w.Population(),
		Generations: m.Generations(),
		Elapsed:     m.ElapsedTime(),
	}
}

// Lines renders the stats one label per line for the HUD.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("pattern     %s", s.Pattern),
		fmt.Sprintf("state       %s", s.State),
		fmt.Sprintf("population  %d", s.Population),
		fmt.Sprintf("generation  %d", s.Generations),
		fmt.Sprintf("elapsed     %.2fs", s.Elapsed.Seconds()),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("gen=%d pop=%d elapsed=%.2fs", s.Generations, s.Population, s.Elapsed.Seconds())
}
