//go:build ebiten

package app

import (
	"image/color"

	"sparse-life/internal/render"
	"sparse-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, cfg *Config) *Game {
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(cfg.Width, cfg.Height),
		hud:      ui.NewHUD(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
	}
}

// Update handles per-frame input and paces the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctl.Shutdown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.ctl.Recenter()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.ctl.ToggleFollow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.ToggleAt(x, y)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.ctl.PaintAt(x, y)
	}

	g.ctl.Pump()
	g.hud.Update(g.ctl.Stats())
	return nil
}

// Draw renders the visible part of the live set.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.View(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
