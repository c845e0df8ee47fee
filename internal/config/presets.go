package config

import "sort"

// Presets are named starting points. Fields a preset leaves zero keep the
// current value when applied.
var Presets = map[string]*Config{
	"random": {
		GridLength: 64, Sweeps: 100, Frames: 100, Density: 0.5,
	},
	"soup": {
		GridLength: 256, Sweeps: 2000, Frames: 200, Density: 0.3, Sweeper: "parallel",
	},
	"block": {
		GridLength: 4, Sweeps: 15, Frames: 5, Pattern: "block",
	},
	"blinker": {
		GridLength: 8, Sweeps: 20, Frames: 20, Pattern: "blinker",
	},
	"glider": {
		GridLength: 16, Sweeps: 64, Frames: 64, Pattern: "glider",
	},
	"lwss": {
		GridLength: 32, Sweeps: 128, Frames: 64, Pattern: "lwss",
	},
	"r-pentomino": {
		GridLength: 128, Sweeps: 1200, Frames: 300, Pattern: "r-pentomino",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply overlays the non-zero fields of preset onto c.
func (c *Config) Apply(preset *Config) {
	if preset.GridLength != 0 {
		c.GridLength = preset.GridLength
	}
	if preset.Sweeps != 0 {
		c.Sweeps = preset.Sweeps
	}
	if preset.Frames != 0 {
		c.Frames = preset.Frames
	}
	if preset.Density != 0 {
		c.Density = preset.Density
	}
	if preset.Sweeper != "" {
		c.Sweeper = preset.Sweeper
	}
	c.Pattern = preset.Pattern
}
