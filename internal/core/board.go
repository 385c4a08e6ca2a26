package core

import "github.com/pkg/errors"

// DefaultMaxCells bounds how many cells a single buffer may hold when the
// caller does not configure a budget. A full pair at this size stays under
// 300 MB.
const DefaultMaxCells = 1 << 27

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Board owns the double-buffered cell state for one grid. Both buffers live
// in a single arena allocation; a 0/1 index selects which half is current.
type Board struct {
	w, h  int
	arena []uint8
	cur   int
}

// CheckSize reports whether a w×h buffer pair fits the cell budget. A budget
// of zero or less means DefaultMaxCells. Dimensions below 1 are treated as 1,
// matching NewBoard.
func CheckSize(w, h, maxCells int) error {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	if w > maxCells/h {
		return errors.Wrapf(ErrBoardTooLarge, "%dx%d cells, budget %d", w, h, maxCells)
	}
	return nil
}

// NewBoard allocates a buffer pair for a w×h grid. Dimensions below 1 are
// clamped to 1. Cell values are undefined until reseeded.
func NewBoard(w, h, maxCells int) (*Board, error) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if err := CheckSize(w, h, maxCells); err != nil {
		return nil, err
	}
	return &Board{w: w, h: h, arena: make([]uint8, 2*w*h)}, nil
}

// Size returns the grid dimensions.
func (b *Board) Size() Size { return Size{W: b.w, H: b.h} }

// Cells returns the current buffer, the read side of this tick.
func (b *Board) Cells() []uint8 { return b.half(b.cur) }

// Scratch returns the next buffer, the write target of this tick.
func (b *Board) Scratch() []uint8 { return b.half(1 - b.cur) }

// half slices one arena half with a capped capacity so neither buffer can
// bleed into the other.
func (b *Board) half(i int) []uint8 {
	n := b.w * b.h
	off := i * n
	return b.arena[off : off+n : off+n]
}

// Swap exchanges the current/next roles. No cell data moves.
func (b *Board) Swap() { b.cur = 1 - b.cur }

// Reseed fills the current buffer with an independent 50/50 draw per cell.
func (b *Board) Reseed(rng *RNG) { rng.FillBinary(b.Cells()) }

// Clear zeroes the current buffer.
func (b *Board) Clear() {
	buf := b.Cells()
	for i := range buf {
		buf[i] = 0
	}
}

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(x, y int) (int, int) {
	x = (x%b.w + b.w) % b.w
	y = (y%b.h + b.h) % b.h
	return x, y
}
