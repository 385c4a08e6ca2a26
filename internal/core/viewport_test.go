package core

import "testing"

func TestGridSizeFloorsPixelDivision(t *testing.T) {
	v := NewViewport(333, 250, 10)
	if s := v.GridSize(); s.W != 33 || s.H != 25 {
		t.Fatalf("grid=%dx%d, expected 33x25", s.W, s.H)
	}
}

func TestGridSizeClampsToOneByOne(t *testing.T) {
	v := NewViewport(5, 5, 10)
	if s := v.GridSize(); s.W != 1 || s.H != 1 {
		t.Fatalf("grid=%dx%d, expected 1x1", s.W, s.H)
	}
}

func TestZoomClampsAtBothEnds(t *testing.T) {
	v := NewViewport(100, 100, 10)
	if v.ZoomIn() {
		t.Fatal("ZoomIn at the default size reported a change")
	}
	for i := 0; i < 9; i++ {
		if !v.ZoomOut() {
			t.Fatalf("ZoomOut %d reported no change at size %d", i, v.CellSize())
		}
	}
	if v.CellSize() != MinCellSize {
		t.Fatalf("cell size=%d after zooming out, expected %d", v.CellSize(), MinCellSize)
	}
	if v.ZoomOut() {
		t.Fatal("ZoomOut at the minimum size reported a change")
	}
	for i := 0; i < 9; i++ {
		if !v.ZoomIn() {
			t.Fatalf("ZoomIn %d reported no change at size %d", i, v.CellSize())
		}
	}
	if v.CellSize() != 10 {
		t.Fatalf("cell size=%d after zooming back in, expected 10", v.CellSize())
	}
}

func TestSetCellSizeBypassesZoomCeiling(t *testing.T) {
	v := NewViewport(100, 100, 10)
	if !v.SetCellSize(2) {
		t.Fatal("SetCellSize(2) reported no change")
	}
	if v.SetCellSize(2) {
		t.Fatal("SetCellSize(2) twice reported a change")
	}
	if !v.ZoomIn() || v.CellSize() != 3 {
		t.Fatalf("ZoomIn from 2 gave size %d, expected 3", v.CellSize())
	}
	if v.SetCellSize(0); v.CellSize() != MinCellSize {
		t.Fatalf("SetCellSize(0) gave size %d, expected clamp to %d", v.CellSize(), MinCellSize)
	}
}

func TestSetPixelSizeReportsChange(t *testing.T) {
	v := NewViewport(200, 100, 10)
	if v.SetPixelSize(200, 100) {
		t.Fatal("same pixel size reported as a change")
	}
	if !v.SetPixelSize(300, 100) {
		t.Fatal("new pixel size not reported as a change")
	}
	v.SetPixelSize(0, -5)
	if w, h := v.PixelSize(); w != 1 || h != 1 {
		t.Fatalf("pixel size=%dx%d after clamping, expected 1x1", w, h)
	}
}
