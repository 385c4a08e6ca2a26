package render

import (
	"testing"
)

func TestImageLaysOutCellsRowMajor(t *testing.T) {
	cells := []uint8{
		0, 1, 0,
		0, 0, 1,
	}
	img := Image(nil, cells, 3, 2, 120)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds=%v, expected 3x2", b)
	}
	on, off := AliveColor(120), DeadColor()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := off
			if cells[y*3+x] == 1 {
				want = on
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d)=%+v, expected %+v", x, y, got, want)
			}
		}
	}
}

func TestImageReusesMatchingBuffer(t *testing.T) {
	cells := make([]uint8, 4*4)
	first := Image(nil, cells, 4, 4, 150)
	second := Image(first, cells, 4, 4, 150)
	if first != second {
		t.Fatal("matching buffer was reallocated")
	}
	third := Image(second, make([]uint8, 5*4), 5, 4, 150)
	if third == second {
		t.Fatal("mismatched buffer was reused")
	}
}

func TestFillIgnoresShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	Fill(buf, []uint8{1, 1}, AliveColor(120), DeadColor())
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d=%d written despite short buffer", i, b)
		}
	}
}
