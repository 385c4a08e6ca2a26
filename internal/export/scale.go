package export

import "image"

// Scale upscales src by an integer factor with nearest-neighbor blocks. dst
// is reused when its bounds match and reallocated otherwise.
func Scale(dst, src *image.RGBA, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	w, h := sw*scale, sh*scale
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	for y := 0; y < sh; y++ {
		// Expand one source row horizontally, then replicate it downward.
		base := y * scale * dst.Stride
		for x := 0; x < sw; x++ {
			so := y*src.Stride + x*4
			for i := 0; i < scale; i++ {
				o := base + (x*scale+i)*4
				copy(dst.Pix[o:o+4], src.Pix[so:so+4])
			}
		}
		row := dst.Pix[base : base+w*4]
		for dy := 1; dy < scale; dy++ {
			o := base + dy*dst.Stride
			copy(dst.Pix[o:o+w*4], row)
		}
	}
	return dst
}
