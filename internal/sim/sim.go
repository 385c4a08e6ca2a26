package sim

import (
	"image"
	"time"

	"huelife/internal/config"
	"huelife/internal/core"
	"huelife/internal/life"
	"huelife/internal/render"
)

// Reset picks land in [hueBase, hueBase+hueSpan), the green-to-cyan band.
const (
	hueBase = 120.0
	hueSpan = 60.0
)

// Cell sizes rolled by the reset trigger span [resetCellMin, resetCellMax].
const (
	resetCellMin = 2
	resetCellMax = 9
)

// Sim owns the whole simulation: the double-buffered board, the update
// strategy, the viewport, the wall-clock triggers and the RNG. It is not
// safe for concurrent use; backends drive it from one goroutine.
type Sim struct {
	cfg      config.Config
	board    *core.Board
	strategy life.Strategy
	view     *core.Viewport
	clock    *core.Clock
	rng      *core.RNG
	overlay  Overlay

	hue    float64
	paused bool
	halted bool
	err    error

	gen    uint64
	msgIdx int
	frame  *image.RGBA
}

// New builds a simulation from the config. A zero seed draws one from the
// wall clock; everything after that is deterministic for a given seed.
func New(cfg config.Config, overlay Overlay) (*Sim, error) {
	cfg.Normalize()
	strategy, err := life.Pick(cfg.Strategy, cfg.Workers)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Sim{
		cfg:      cfg,
		strategy: strategy,
		view:     core.NewViewport(cfg.Width, cfg.Height, cfg.CellSize),
		clock:    core.NewClock(cfg.ResetPeriod(), cfg.InfoPeriod()),
		rng:      core.NewRNG(seed),
		overlay:  overlay,
	}
	s.pickHue()
	if err := s.reallocate(s.view.GridSize()); err != nil {
		return nil, err
	}
	return s, nil
}

// Tick evaluates the wall-clock triggers at now and, unless paused, steps
// one generation. Triggers keep firing while paused; a halted sim ignores
// ticks entirely so the last good grid stays on screen.
func (s *Sim) Tick(now time.Time) error {
	if s.halted {
		return nil
	}
	reset, info := s.clock.Tick(now)
	if info {
		s.postInfo()
	}
	if reset {
		s.resetPick()
		if err := s.reallocate(s.view.GridSize()); err != nil {
			return err
		}
	}
	if s.paused {
		return nil
	}
	return s.step()
}

// step computes the next generation into the scratch buffer and promotes
// it. On a strategy failure the partial scratch is discarded and the
// current generation stays.
func (s *Sim) step() error {
	size := s.board.Size()
	if err := s.strategy.Step(s.board.Scratch(), s.board.Cells(), size.W, size.H); err != nil {
		s.err = err
		return err
	}
	s.board.Swap()
	s.gen++
	return nil
}

// resetPick rolls the per-reset presentation: a fresh cell size and hue.
func (s *Sim) resetPick() {
	s.view.SetCellSize(s.rng.IntN(resetCellMax-resetCellMin+1) + resetCellMin)
	s.pickHue()
}

func (s *Sim) pickHue() {
	s.hue = hueBase + s.rng.Float64()*hueSpan
}

// postInfo pushes the next rotating message to the overlay.
func (s *Sim) postInfo() {
	if s.overlay == nil {
		return
	}
	s.overlay.Show(infoMessages[s.msgIdx], infoDuration)
	s.msgIdx = (s.msgIdx + 1) % len(infoMessages)
}

// reallocate swaps in a freshly seeded board of the given size. The size is
// validated against the cell budget before the old arena is released, so on
// failure the previous grid survives and the sim halts.
func (s *Sim) reallocate(size core.Size) error {
	if err := core.CheckSize(size.W, size.H, s.cfg.MaxCells); err != nil {
		s.halted = true
		s.err = err
		return err
	}
	s.board = nil
	board, err := core.NewBoard(size.W, size.H, s.cfg.MaxCells)
	if err != nil {
		s.halted = true
		s.err = err
		return err
	}
	s.board = board
	s.board.Reseed(s.rng)
	s.frame = nil
	s.gen = 0
	return nil
}

// Resize tracks a display size change. Any change rebuilds the grid at the
// dimensions derived from the current zoom level.
func (s *Sim) Resize(pxW, pxH int) error {
	if s.halted || !s.view.SetPixelSize(pxW, pxH) {
		return nil
	}
	return s.reallocate(s.view.GridSize())
}

// ZoomIn grows cells one pixel up to the configured default size,
// rebuilding the grid when the level changes.
func (s *Sim) ZoomIn() error {
	if s.halted || !s.view.ZoomIn() {
		return nil
	}
	return s.reallocate(s.view.GridSize())
}

// ZoomOut shrinks cells one pixel down to a single pixel per cell,
// rebuilding the grid when the level changes.
func (s *Sim) ZoomOut() error {
	if s.halted || !s.view.ZoomOut() {
		return nil
	}
	return s.reallocate(s.view.GridSize())
}

// TogglePause flips stepping on and off. Wall-clock triggers are not
// affected.
func (s *Sim) TogglePause() { s.paused = !s.paused }

// Paused reports whether stepping is suspended.
func (s *Sim) Paused() bool { return s.paused }

// StepOnce advances a single generation for frame-by-frame inspection.
func (s *Sim) StepOnce() error {
	if s.halted {
		return nil
	}
	return s.step()
}

// Reseed refills the current grid from the RNG without touching size, zoom
// or hue.
func (s *Sim) Reseed() {
	if s.halted {
		return
	}
	s.board.Reseed(s.rng)
	s.gen = 0
}

// Frame renders the current generation one pixel per cell into a cached
// RGBA image. The returned image stays valid until the next Frame call.
func (s *Sim) Frame() *image.RGBA {
	size := s.board.Size()
	s.frame = render.Image(s.frame, s.board.Cells(), size.W, size.H, s.hue)
	return s.frame
}

// Cells exposes the current generation, row-major.
func (s *Sim) Cells() []uint8 { return s.board.Cells() }

// Size returns the grid dimensions in cells.
func (s *Sim) Size() core.Size { return s.board.Size() }

// CellSize returns the current zoom level in pixels per cell.
func (s *Sim) CellSize() int { return s.view.CellSize() }

// Hue returns the live-cell hue in degrees.
func (s *Sim) Hue() float64 { return s.hue }

// Generation counts steps since the grid was last seeded.
func (s *Sim) Generation() uint64 { return s.gen }

// Population counts live cells in the current generation.
func (s *Sim) Population() int {
	n := 0
	for _, c := range s.board.Cells() {
		n += int(c)
	}
	return n
}

// Halted reports whether the sim stopped after a failed rebuild.
func (s *Sim) Halted() bool { return s.halted }

// Err returns the last recorded failure, if any.
func (s *Sim) Err() error { return s.err }

// Snapshot bundles the observable state for HUDs and sidebars.
func (s *Sim) Snapshot() core.Snapshot {
	return core.Snapshot{
		Generation: s.gen,
		Population: s.Population(),
		Size:       s.board.Size(),
		CellSize:   s.view.CellSize(),
		Hue:        s.hue,
		Paused:     s.paused,
		Strategy:   s.strategy.Name(),
	}
}
