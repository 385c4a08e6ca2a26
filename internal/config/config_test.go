package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultValues(t *testing.T) {
	d := Default()
	if d.Width != 1280 || d.Height != 720 {
		t.Fatalf("default surface %dx%d, expected 1280x720", d.Width, d.Height)
	}
	if d.CellSize != 10 || d.TPS != 60 {
		t.Fatalf("cell=%d tps=%d, expected 10 and 60", d.CellSize, d.TPS)
	}
	if d.ResetPeriod() != 30*time.Second || d.InfoPeriod() != 5*time.Second {
		t.Fatalf("periods %v/%v, expected 30s/5s", d.ResetPeriod(), d.InfoPeriod())
	}
	if d.Strategy != "auto" || d.Seed != 0 {
		t.Fatalf("strategy=%q seed=%d, expected auto and 0", d.Strategy, d.Seed)
	}
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huelife.yaml")
	body := "width: 640\nheight: 360\ncell_size: 5\nseed: 42\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 360 || cfg.CellSize != 5 || cfg.Seed != 42 {
		t.Fatalf("loaded %+v, expected file values applied", cfg)
	}
	if cfg.TPS != 60 || cfg.Strategy != "auto" {
		t.Fatalf("tps=%d strategy=%q, expected untouched defaults", cfg.TPS, cfg.Strategy)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load of a missing file returned no error")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed YAML returned no error")
	}
}

func TestNormalizeClampsToDefaults(t *testing.T) {
	cfg := Config{Width: -5, Height: 0, CellSize: 0, TPS: -1, Workers: -3, MaxCells: -1}
	cfg.Normalize()
	d := Default()
	if cfg.Width != d.Width || cfg.Height != d.Height || cfg.CellSize != d.CellSize {
		t.Fatalf("normalized %+v, expected default dimensions", cfg)
	}
	if cfg.TPS != d.TPS || cfg.Workers != 0 || cfg.MaxCells != d.MaxCells {
		t.Fatalf("normalized %+v, expected default rates", cfg)
	}
	if cfg.Strategy != "auto" || cfg.ResetMS != d.ResetMS || cfg.InfoMS != d.InfoMS {
		t.Fatalf("normalized %+v, expected default strategy and periods", cfg)
	}
}

func TestPresetLookup(t *testing.T) {
	fine, ok := Preset("fine")
	if !ok || fine.CellSize != 4 {
		t.Fatalf("Preset(fine)=%+v ok=%v, expected cell size 4", fine, ok)
	}
	calm, ok := Preset("calm")
	if !ok || calm.ResetPeriod() != 2*time.Minute {
		t.Fatalf("Preset(calm)=%+v ok=%v, expected 2m reset period", calm, ok)
	}
	if _, ok := Preset("nope"); ok {
		t.Fatal("unknown preset reported ok")
	}
	names := PresetNames()
	if len(names) != 4 {
		t.Fatalf("PresetNames()=%v, expected 4 entries", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("PresetNames()=%v not sorted", names)
		}
	}
}
