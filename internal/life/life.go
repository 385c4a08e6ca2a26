package life

// Next applies the Game of Life rule to one cell: a cell is alive in the
// next generation if it has exactly three live neighbors, or if it is alive
// now and has exactly two.
func Next(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// stepRows computes rows [y0,y1) of the next generation into dst from src.
// Both buffers are w*h cells in row-major order and the grid wraps on both
// axes. Row offsets are hoisted so the inner loop only wraps columns.
func stepRows(dst, src []uint8, w, h, y0, y1 int) {
	for y := y0; y < y1; y++ {
		up := ((y - 1 + h) % h) * w
		row := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			n := int(src[up+left]) + int(src[up+x]) + int(src[up+right]) +
				int(src[row+left]) + int(src[row+right]) +
				int(src[down+left]) + int(src[down+x]) + int(src[down+right])
			if Next(src[row+x] == 1, n) {
				dst[row+x] = 1
			} else {
				dst[row+x] = 0
			}
		}
	}
}
