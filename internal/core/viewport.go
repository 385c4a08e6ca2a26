package core

// MinCellSize is the hard floor for zooming out.
const MinCellSize = 1

// Viewport derives grid dimensions from the display pixel size and the cell
// size in pixels, and enforces the zoom clamp.
type Viewport struct {
	pxW, pxH int
	cellSize int
	defCell  int
}

// NewViewport builds a viewport starting at the default cell size.
func NewViewport(pxW, pxH, defaultCell int) *Viewport {
	if defaultCell < MinCellSize {
		defaultCell = MinCellSize
	}
	v := &Viewport{defCell: defaultCell, cellSize: defaultCell}
	v.SetPixelSize(pxW, pxH)
	return v
}

// SetPixelSize records a new display size and reports whether it changed.
func (v *Viewport) SetPixelSize(w, h int) bool {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == v.pxW && h == v.pxH {
		return false
	}
	v.pxW, v.pxH = w, h
	return true
}

// SetCellSize installs a cell size directly, bypassing the zoom ceiling;
// the reset trigger installs its random picks through this. Reports whether
// the size changed.
func (v *Viewport) SetCellSize(n int) bool {
	if n < MinCellSize {
		n = MinCellSize
	}
	if n == v.cellSize {
		return false
	}
	v.cellSize = n
	return true
}

// ZoomIn grows cells by one pixel, never past the default starting size.
func (v *Viewport) ZoomIn() bool {
	if v.cellSize >= v.defCell {
		return false
	}
	v.cellSize++
	return true
}

// ZoomOut shrinks cells by one pixel, never below MinCellSize.
func (v *Viewport) ZoomOut() bool {
	if v.cellSize <= MinCellSize {
		return false
	}
	v.cellSize--
	return true
}

// GridSize returns floor(pixel/cell) per axis, clamped to at least 1×1.
func (v *Viewport) GridSize() Size {
	w := v.pxW / v.cellSize
	h := v.pxH / v.cellSize
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Size{W: w, H: h}
}

// CellSize returns the current cell edge length in pixels.
func (v *Viewport) CellSize() int { return v.cellSize }

// DefaultCellSize returns the configured starting size, the zoom ceiling.
func (v *Viewport) DefaultCellSize() int { return v.defCell }

// PixelSize returns the most recent display size.
func (v *Viewport) PixelSize() (int, int) { return v.pxW, v.pxH }
