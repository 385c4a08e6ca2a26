package core

import (
	"errors"
	"testing"
)

func TestNewBoardClampsToOneByOne(t *testing.T) {
	b, err := NewBoard(0, -3, 0)
	if err != nil {
		t.Fatalf("NewBoard returned error: %v", err)
	}
	if s := b.Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("size=%dx%d, expected 1x1", s.W, s.H)
	}
	if len(b.Cells()) != 1 || len(b.Scratch()) != 1 {
		t.Fatalf("buffer lengths %d/%d, expected 1/1", len(b.Cells()), len(b.Scratch()))
	}
}

func TestCheckSizeBudget(t *testing.T) {
	if err := CheckSize(100, 100, 10000); err != nil {
		t.Fatalf("CheckSize(100,100,10000) = %v, expected nil", err)
	}
	err := CheckSize(101, 100, 10000)
	if err == nil {
		t.Fatal("CheckSize(101,100,10000) = nil, expected error")
	}
	if !errors.Is(err, ErrBoardTooLarge) {
		t.Fatalf("error %v does not wrap ErrBoardTooLarge", err)
	}
	if _, err := NewBoard(1<<16, 1<<16, DefaultMaxCells); !errors.Is(err, ErrBoardTooLarge) {
		t.Fatalf("NewBoard over budget = %v, expected ErrBoardTooLarge", err)
	}
}

func TestSwapExchangesBufferRoles(t *testing.T) {
	b, err := NewBoard(4, 4, 0)
	if err != nil {
		t.Fatalf("NewBoard returned error: %v", err)
	}
	b.Cells()[0] = 7
	b.Scratch()[0] = 9
	b.Swap()
	if got := b.Cells()[0]; got != 9 {
		t.Fatalf("after swap Cells()[0]=%d, expected 9", got)
	}
	if got := b.Scratch()[0]; got != 7 {
		t.Fatalf("after swap Scratch()[0]=%d, expected 7", got)
	}
	b.Swap()
	if got := b.Cells()[0]; got != 7 {
		t.Fatalf("after second swap Cells()[0]=%d, expected 7", got)
	}
}

func TestBufferHalvesDoNotAlias(t *testing.T) {
	b, err := NewBoard(8, 8, 0)
	if err != nil {
		t.Fatalf("NewBoard returned error: %v", err)
	}
	cur, nxt := b.Cells(), b.Scratch()
	for i := range cur {
		cur[i] = 1
	}
	for i := range nxt {
		if nxt[i] != 0 {
			t.Fatalf("scratch[%d]=%d after writing cells, expected 0", i, nxt[i])
		}
	}
	if cap(cur) != len(cur) {
		t.Fatalf("cells cap=%d, expected %d", cap(cur), len(cur))
	}
}

func TestReseedDensityNearHalf(t *testing.T) {
	b, err := NewBoard(64, 64, 0)
	if err != nil {
		t.Fatalf("NewBoard returned error: %v", err)
	}
	b.Reseed(NewRNG(1))
	alive := 0
	for _, c := range b.Cells() {
		if c == 1 {
			alive++
		} else if c != 0 {
			t.Fatalf("cell value %d, expected 0 or 1", c)
		}
	}
	if alive < 1850 || alive > 2250 {
		t.Fatalf("alive=%d of 4096, expected roughly half", alive)
	}
}

func TestClearZeroesActiveBuffer(t *testing.T) {
	b, err := NewBoard(4, 4, 0)
	if err != nil {
		t.Fatalf("NewBoard returned error: %v", err)
	}
	b.Reseed(NewRNG(2))
	b.Clear()
	for i, c := range b.Cells() {
		if c != 0 {
			t.Fatalf("cell %d=%d after Clear, expected 0", i, c)
		}
	}
}

func TestIndexAndWrap(t *testing.T) {
	b, err := NewBoard(5, 4, 0)
	if err != nil {
		t.Fatalf("NewBoard returned error: %v", err)
	}
	if got := b.Index(2, 3); got != 17 {
		t.Fatalf("Index(2,3)=%d, expected 17", got)
	}
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{2, 1, 2, 1},
		{-6, 9, 4, 1},
	}
	for _, c := range cases {
		x, y := b.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d)=(%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}
