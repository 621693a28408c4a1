package config

import "sort"

var Presets = map[string]*Config{
	// Matches the package defaults.
	"classic": {
		Bodies: 15, Width: 500, Height: 500, Radius: 10, Speed: 5, Tolerance: 2,
		Ticks: 600, FPS: 60,
	},
	"sparse": {
		Bodies: 5, Width: 500, Height: 500, Radius: 10, Speed: 3, Tolerance: 2,
		Ticks: 600, FPS: 60,
	},
	"crowded": {
		Bodies: 60, Width: 500, Height: 500, Radius: 12, Speed: 4, Tolerance: 2,
		Ticks: 1200, FPS: 60,
	},
	"giants": {
		Bodies: 6, Width: 500, Height: 500, Radius: 45, Speed: 2, Tolerance: 5,
		Ticks: 900, FPS: 30,
	},
	"pinball": {
		Bodies: 8, Width: 300, Height: 600, Radius: 6, Speed: 12, Tolerance: 3,
		Ticks: 600, FPS: 60,
	},
}

// GetPreset returns a copy of the named preset with unset fields filled
// from the defaults, or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
