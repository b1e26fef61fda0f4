//go:build ebiten

package ui

import (
	"image/color"

	"sparse-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

// HUD renders the status panel in the top-left corner of the view.
type HUD struct {
	visible bool
	panel   *ebiten.Image
	stats   core.Stats
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update caches the stats to draw on the next frame.
func (h *HUD) Update(s core.Stats) {
	if h == nil {
		return
	}
	h.stats = s
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := h.stats.Lines()
	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*face.Advance)
	}
	width += 12
	height := len(lines)*lineHeight + 10

	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, l := range lines {
		text.Draw(h.panel, l, face, 6, 4+(i+1)*lineHeight-3, color.White)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
