package render

import (
	"image/color"
	"math"
)

// Fixed HSL components of the two cell states. Only the live hue varies at
// runtime; dead cells stay a hueless dark gray.
const (
	deadGray   = 0.1
	aliveSat   = 0.8
	aliveLight = 0.4
)

// HSL converts a hue in degrees and saturation/lightness in [0,1] into RGB
// components in [0,1]. Hues outside [0,360) are normalized first.
func HSL(h, s, l float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// AliveColor returns the live-cell color at the given hue.
func AliveColor(hue float64) color.RGBA {
	r, g, b := HSL(hue, aliveSat, aliveLight)
	return rgba(r, g, b)
}

// DeadColor returns the background color shared by every palette.
func DeadColor() color.RGBA {
	return rgba(deadGray, deadGray, deadGray)
}

// CellColor maps a cell state to its display color.
func CellColor(alive bool, hue float64) color.RGBA {
	if alive {
		return AliveColor(hue)
	}
	return DeadColor()
}

func rgba(r, g, b float64) color.RGBA {
	return color.RGBA{R: comp(r), G: comp(g), B: comp(b), A: 0xff}
}

func comp(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
