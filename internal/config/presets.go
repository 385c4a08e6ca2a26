package config

import "sort"

// presets are named bundles applied over the defaults.
var presets = map[string]func(*Config){
	"default": func(*Config) {},
	"fine": func(c *Config) {
		c.CellSize = 4
	},
	"coarse": func(c *Config) {
		c.CellSize = 16
	},
	"calm": func(c *Config) {
		c.ResetMS = 120000
		c.InfoMS = 15000
	},
}

// Preset returns the named preset applied over the defaults.
func Preset(name string) (Config, bool) {
	f, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	cfg := Default()
	f(&cfg)
	return cfg, true
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
