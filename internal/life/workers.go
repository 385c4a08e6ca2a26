package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minRowsPerWorker keeps small grids on one goroutine, where spawn overhead
// costs more than the strips save.
const minRowsPerWorker = 4

// Workers splits the grid into horizontal strips and steps them on a pool
// of goroutines. The double buffer makes strips independent, so no
// synchronization beyond the final join is needed.
type Workers struct {
	n int
}

// NewWorkers builds a strip-parallel strategy; n outside [1, NumCPU*4]
// falls back to the CPU count.
func NewWorkers(n int) *Workers {
	if n < 1 || n > runtime.NumCPU()*4 {
		n = runtime.NumCPU()
	}
	return &Workers{n: n}
}

// Name identifies the strategy in snapshots and CLI output.
func (s *Workers) Name() string { return "workers" }

// Step fans rows out over the worker strips and joins them.
func (s *Workers) Step(dst, src []uint8, w, h int) error {
	if s.n == 1 || h < s.n*minRowsPerWorker {
		stepRows(dst, src, w, h, 0, h)
		return nil
	}
	rows := (h + s.n - 1) / s.n
	var eg errgroup.Group
	for y0 := 0; y0 < h; y0 += rows {
		y1 := y0 + rows
		if y1 > h {
			y1 = h
		}
		eg.Go(func() error {
			stepRows(dst, src, w, h, y0, y1)
			return nil
		})
	}
	return eg.Wait()
}
