package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"huelife/internal/core"
)

// Config holds every tunable of a run. Fields left zero or out of range are
// normalized back to defaults, so partial YAML files work.
type Config struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	CellSize int   `yaml:"cell_size"`
	TPS      int   `yaml:"tps"`
	Seed     int64 `yaml:"seed"`

	Strategy string `yaml:"strategy"`
	Workers  int    `yaml:"workers"`

	ResetMS  int `yaml:"reset_ms"`
	InfoMS   int `yaml:"info_ms"`
	MaxCells int `yaml:"max_cells"`
}

// Default returns the stock configuration: a 1280x720 surface with 10px
// cells stepping 60 generations per second, seeded from the wall clock.
func Default() Config {
	return Config{
		Width:    1280,
		Height:   720,
		CellSize: 10,
		TPS:      60,
		Seed:     0,
		Strategy: "auto",
		Workers:  0,
		ResetMS:  30000,
		InfoMS:   5000,
		MaxCells: core.DefaultMaxCells,
	}
}

// Load reads a YAML file over the defaults and normalizes the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize pulls out-of-range fields back to their defaults. Seed stays
// untouched: zero there means seed from the wall clock.
func (c *Config) Normalize() {
	d := Default()
	if c.Width < 1 {
		c.Width = d.Width
	}
	if c.Height < 1 {
		c.Height = d.Height
	}
	if c.CellSize < 1 {
		c.CellSize = d.CellSize
	}
	if c.TPS < 1 {
		c.TPS = d.TPS
	}
	if c.Strategy == "" {
		c.Strategy = d.Strategy
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
	if c.ResetMS < 1 {
		c.ResetMS = d.ResetMS
	}
	if c.InfoMS < 1 {
		c.InfoMS = d.InfoMS
	}
	if c.MaxCells < 1 {
		c.MaxCells = d.MaxCells
	}
}

// ResetPeriod returns the grid reset trigger period.
func (c Config) ResetPeriod() time.Duration {
	return time.Duration(c.ResetMS) * time.Millisecond
}

// InfoPeriod returns the overlay message trigger period.
func (c Config) InfoPeriod() time.Duration {
	return time.Duration(c.InfoMS) * time.Millisecond
}
