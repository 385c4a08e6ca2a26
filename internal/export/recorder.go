package export

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

// Recorder accumulates paletted frames for animated GIF export. Each
// captured grid becomes one frame.
type Recorder struct {
	delay  int
	frames []*image.Paletted
	delays []int
}

// NewRecorder builds a recorder with the given per-frame delay in
// hundredths of a second. GIF decoders treat delays under 2 as
// unspecified, so that is the floor.
func NewRecorder(delayCS int) *Recorder {
	if delayCS < 2 {
		delayCS = 2
	}
	return &Recorder{delay: delayCS}
}

// Capture appends one frame rendered from cells with a two-color palette,
// upscaled by the given integer factor. The factor is per frame because a
// reset can change the cell size mid recording; keeping frames near the
// surface size stops later frames from outgrowing the first.
func (r *Recorder) Capture(cells []uint8, w, h, scale int, on, off color.RGBA) {
	if scale < 1 {
		scale = 1
	}
	img := image.NewPaletted(image.Rect(0, 0, w*scale, h*scale), color.Palette{off, on})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := uint8(0)
			if cells[y*w+x] != 0 {
				idx = 1
			}
			x0 := x * scale
			for dy := 0; dy < scale; dy++ {
				o := (y*scale+dy)*img.Stride + x0
				row := img.Pix[o : o+scale]
				for i := range row {
					row[i] = idx
				}
			}
		}
	}
	r.frames = append(r.frames, img)
	r.delays = append(r.delays, r.delay)
}

// Len reports how many frames have been captured.
func (r *Recorder) Len() int { return len(r.frames) }

// EncodeGIF writes the captured frames as a looping animation.
func (r *Recorder) EncodeGIF(w io.Writer) error {
	if len(r.frames) == 0 {
		return errors.New("no frames captured")
	}
	return gif.EncodeAll(w, &gif.GIF{Image: r.frames, Delay: r.delays, LoopCount: 0})
}

// EncodePNG writes a single frame as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
