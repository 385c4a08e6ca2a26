//go:build ebiten

package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// painter owns the GPU image the grid is uploaded into, one texel per cell.
// The cell scale is captured together with the pixels so every draw uses a
// matching pair.
type painter struct {
	w, h  int
	img   *ebiten.Image
	scale int
}

func newPainter() *painter { return &painter{scale: 1} }

// upload pushes one rendered frame to the GPU, reallocating the texture
// when the grid dimensions changed.
func (p *painter) upload(frame *image.RGBA, scale int) {
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
	if p.img == nil || p.w != w || p.h != h {
		p.img = ebiten.NewImage(w, h)
		p.w, p.h = w, h
	}
	p.img.ReplacePixels(frame.Pix)
	if scale < 1 {
		scale = 1
	}
	p.scale = scale
}

// draw blits the last uploaded frame scaled up to cell size.
func (p *painter) draw(dst *ebiten.Image) {
	if p.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	dst.DrawImage(p.img, op)
}
