//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"huelife/internal/config"
	"huelife/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts the simulation to the ebiten.Game interface.
type Game struct {
	sim     *sim.Sim
	painter *painter
	banner  *banner

	pxW, pxH int
}

// New constructs a Game running the given configuration.
func New(cfg config.Config) (*Game, error) {
	b := &banner{}
	s, err := sim.New(cfg, b)
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:     s,
		painter: newPainter(),
		banner:  b,
		pxW:     cfg.Width,
		pxH:     cfg.Height,
	}, nil
}

// Update handles input and advances the simulation one host tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.sim.Paused() {
		g.sim.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sim.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sim.ZoomOut()
	}

	// The sim records failures and the HUD surfaces them, so the loop
	// keeps running on a halted sim.
	g.sim.Resize(g.pxW, g.pxH)
	g.sim.Tick(time.Now())
	return nil
}

// Draw uploads the current frame and presents it with the HUD and banner on
// top. The upload pairs pixels with their capture scale, so a resize mid
// frame never tears the geometry.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.upload(g.sim.Frame(), g.sim.CellSize())
	g.painter.draw(screen)
	g.drawHUD(screen)
	g.banner.draw(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	line := fmt.Sprintf("gen %d  pop %d  %dx%d @ %dpx  hue %.0f  %s",
		snap.Generation, snap.Population, snap.Size.W, snap.Size.H, snap.CellSize, snap.Hue, snap.Strategy)
	if snap.Paused {
		line += "  [paused]"
	}
	face := basicfont.Face7x13
	text.Draw(screen, line, face, 12, 16, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if err := g.sim.Err(); err != nil {
		text.Draw(screen, err.Error(), face, 12, 32, color.RGBA{R: 240, G: 120, B: 120, A: 255})
	}
}

// Layout tracks the window size; the next Update rebuilds the grid when it
// changed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pxW, g.pxH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and drives the game loop until quit.
func Run(cfg config.Config) error {
	game, err := New(cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("huelife")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
