package pattern

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparse-life/pkg/life"
)

func TestFromRows(t *testing.T) {
	cells, err := FromRows([]string{".O.", "..*", "OOO"})
	require.NoError(t, err)
	assert.Equal(t, []life.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}, cells)

	_, err = FromRows([]string{"OX"})
	assert.Error(t, err)
}

func TestCatalogEntriesAreValid(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	for _, name := range names {
		p, err := Lookup(name)
		require.NoError(t, err)
		assert.NoError(t, p.Validate(), name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-thing")
	assert.True(t, errors.Is(err, ErrUnknownPattern))
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Names())
	Register(Pattern{Name: "empty"})
	Register(Pattern{Cells: []life.Cell{{X: 0, Y: 0}}})
	assert.Len(t, Names(), before)
}

func TestPulsarSize(t *testing.T) {
	p, err := Lookup("pulsar")
	require.NoError(t, err)
	w, h := p.Size()
	assert.Equal(t, 13, w)
	assert.Equal(t, 13, h)
	assert.Len(t, p.Cells, 48)
}

// Every oscillator in the catalog must return to its seeded form.
func TestCatalogOscillatorPeriods(t *testing.T) {
	periods := map[string]int{"block": 1, "blinker": 2, "toad": 2, "beacon": 2, "pulsar": 3}
	for name, period := range periods {
		p, err := Lookup(name)
		require.NoError(t, err)

		g := life.New()
		g.Seed(p.Cells)
		start := g.Cells()
		for i := 0; i < period; i++ {
			g.Step()
		}
		assert.Equal(t, start, g.Cells(), "%s after %d steps", name, period)
	}
}

func TestDiehardVanishes(t *testing.T) {
	p, err := Lookup("diehard")
	require.NoError(t, err)
	g := life.New()
	g.Seed(p.Cells)
	for i := 0; i < 130; i++ {
		g.Step()
	}
	assert.Equal(t, 0, g.Population())
}

func TestDecodeYAML(t *testing.T) {
	src := `
name: corner
description: mixed cells and rows
cells:
  - [5, 5]
rows:
  - "O."
  - ".O"
`
	p, err := DecodeYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "corner", p.Name)
	assert.Equal(t, []life.Cell{{X: 5, Y: 5}, {X: 0, Y: 0}, {X: 1, Y: 1}}, p.Cells)
}

func TestDecodeYAMLRejectsUnknownFields(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("name: x\ncelz: []\n"))
	assert.Error(t, err)
}

func TestYAMLRoundTripThroughFile(t *testing.T) {
	glider, err := Lookup("glider")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, glider))

	path := filepath.Join(t.TempDir(), "glider.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, glider.Name, loaded.Name)
	assert.ElementsMatch(t, glider.Cells, loaded.Cells)
}

func TestParsePlaintext(t *testing.T) {
	src := "!Name: Glider\n!The smallest spaceship.\n.O.\n..O\nOOO\n"
	p, err := ParsePlaintext(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Glider", p.Name)
	assert.Equal(t, "The smallest spaceship.", p.Description)
	assert.Len(t, p.Cells, 5)
}

func TestLoadPlaintextDefaultsNameToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.cells")
	require.NoError(t, os.WriteFile(path, []byte("OOO\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "blinker", p.Name)
	assert.Len(t, p.Cells, 3)
}

func TestLoadEmptyPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nothing.cells")
	require.NoError(t, os.WriteFile(path, []byte("!Name: nothing\n...\n"), 0o644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrEmptyPattern))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSoupDeterministic(t *testing.T) {
	a := Soup(42, 16, 16, 0.35)
	b := Soup(42, 16, 16, 0.35)
	assert.Equal(t, a.Cells, b.Cells)
	assert.NotEmpty(t, a.Cells)
	for _, c := range a.Cells {
		assert.True(t, c.X >= 0 && c.X < 16 && c.Y >= 0 && c.Y < 16)
	}

	assert.Empty(t, Soup(1, 8, 8, 0).Cells)
	assert.Len(t, Soup(1, 8, 8, 1).Cells, 64)
}
