package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenterBoundingBox(t *testing.T) {
	cases := []struct {
		name  string
		cells []Cell
		want  Cell
	}{
		{"empty", nil, Cell{}},
		{"square", []Cell{{0, 0}, {2, 0}, {0, 2}, {2, 2}}, Cell{1, 1}},
		{"origin floor", []Cell{{4, 6}}, Cell{2, 3}},
		{"odd span truncates", []Cell{{0, 0}, {3, 1}}, Cell{1, 0}},
		{"negative sum truncates toward zero", []Cell{{-3, 0}, {0, 0}}, Cell{-1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Center(tc.cells))
		})
	}
}

func TestNeighborsExcludesSelf(t *testing.T) {
	c := Cell{3, -2}
	around := Neighbors(c)
	seen := NewCellSet(around[:]...)
	assert.Equal(t, 8, seen.Len())
	assert.False(t, seen.Contains(c))
	for _, nb := range around {
		assert.LessOrEqual(t, abs(nb.X-c.X), 1)
		assert.LessOrEqual(t, abs(nb.Y-c.Y), 1)
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		assert.Equal(t, n == 2 || n == 3, Rule(true, n), "alive with %d", n)
		assert.Equal(t, n == 3, Rule(false, n), "dead with %d", n)
	}
}

func TestCellSetSortedRowMajor(t *testing.T) {
	s := NewCellSet(Cell{1, 1}, Cell{0, 1}, Cell{5, -1})
	assert.Equal(t, []Cell{{5, -1}, {0, 1}, {1, 1}}, s.Sorted())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
