package main

import (
	"strings"

	"github.com/spf13/cobra"

	"huelife/internal/config"
	"huelife/internal/life"
)

// simFlags carries the per-command simulation overrides. Each command owns
// an instance so commands can show different defaults for the same flag.
type simFlags struct {
	width    int
	height   int
	cellSize int
	tps      int
	seed     int64
	strategy string
	workers  int
}

func (f *simFlags) bind(cmd *cobra.Command, def config.Config) {
	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", def.Width, "surface width in pixels")
	fl.IntVar(&f.height, "height", def.Height, "surface height in pixels")
	fl.IntVar(&f.cellSize, "cell", def.CellSize, "cell size in pixels")
	fl.IntVar(&f.tps, "tps", def.TPS, "generations per second")
	fl.Int64Var(&f.seed, "seed", def.Seed, "random seed (0 uses the clock)")
	fl.StringVar(&f.strategy, "strategy", def.Strategy,
		"step strategy: "+strings.Join(life.Names(), ", ")+" or auto")
	fl.IntVar(&f.workers, "workers", def.Workers, "worker goroutines (0 picks per cpu)")
}

// apply copies flags the user actually set over cfg, so a preset or config
// file keeps its values for everything left untouched.
func (f *simFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("width") {
		cfg.Width = f.width
	}
	if fl.Changed("height") {
		cfg.Height = f.height
	}
	if fl.Changed("cell") {
		cfg.CellSize = f.cellSize
	}
	if fl.Changed("tps") {
		cfg.TPS = f.tps
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	cfg.Normalize()
}
