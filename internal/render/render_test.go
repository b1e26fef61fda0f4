package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparse-life/internal/core"
	"sparse-life/pkg/life"
)

func TestTextFrame(t *testing.T) {
	g := core.NewByteGrid(3, 3)
	g.Origin = g.CenteredOn(life.Cell{})
	g.Project([]life.Cell{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}})

	assert.Equal(t, "...\nOOO\n...\n", Text(g, 'O', '.'))

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, g, '#', ' '))
	assert.Equal(t, "   \n###\n   \n", buf.String())
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, []byte{255, 255, 255, 255, 1, 2, 3, 255}, buf)
}
