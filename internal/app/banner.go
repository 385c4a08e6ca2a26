//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// banner presents the rotating status messages near the bottom edge. It is
// the sim.Overlay for the GUI backend; Show is only called from the game
// loop goroutine.
type banner struct {
	msg   string
	until time.Time
}

// Show replaces the current message for the given duration.
func (b *banner) Show(msg string, d time.Duration) {
	b.msg = msg
	b.until = time.Now().Add(d)
}

// draw paints the message while it is live.
func (b *banner) draw(screen *ebiten.Image) {
	if b.msg == "" || time.Now().After(b.until) {
		return
	}
	h := screen.Bounds().Dy()
	text.Draw(screen, b.msg, basicfont.Face7x13, 12, h-12, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}
