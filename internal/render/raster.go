package render

import (
	"image"
	"image/color"
)

// Fill writes one RGBA pixel per cell into buf. The buffer must hold at
// least 4*len(cells) bytes; shorter buffers are left untouched.
func Fill(buf []byte, cells []uint8, on, off color.RGBA) {
	if len(buf) < len(cells)*4 {
		return
	}
	for i, c := range cells {
		o := i * 4
		p := off
		if c != 0 {
			p = on
		}
		buf[o] = p.R
		buf[o+1] = p.G
		buf[o+2] = p.B
		buf[o+3] = p.A
	}
}

// Image rasterizes cells into a 1:1 RGBA image, one pixel per cell, live
// cells in the hue's color and dead cells in the background gray. dst is
// reused when its bounds match and reallocated otherwise.
func Image(dst *image.RGBA, cells []uint8, w, h int, hue float64) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	Fill(dst.Pix, cells, AliveColor(hue), DeadColor())
	return dst
}
