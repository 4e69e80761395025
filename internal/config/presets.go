package config

import "github.com/san-kum/sortwiz/internal/logging"

var Presets = map[string]*Config{
	"classic": {
		Count: 100, Min: 0, Max: 200, Algorithm: "bubble",
		Canvas:  Canvas{Width: 1200, Height: 1000},
		Display: Display{FPS: 60, Speed: 1, Theme: "ocean"},
	},
	"tiny": {
		Count: 12, Min: 1, Max: 20, Algorithm: "insertion",
		Canvas:  Canvas{Width: 1200, Height: 1000},
		Display: Display{FPS: 8, Speed: 1, Theme: "minimal"},
	},
	"dense": {
		Count: 400, Min: 0, Max: 800, Algorithm: "heap",
		Canvas:  Canvas{Width: 1200, Height: 1000},
		Display: Display{FPS: 60, Speed: 8, Theme: "cyberpunk"},
	},
	"duplicates": {
		Count: 80, Min: 0, Max: 5, Algorithm: "selection",
		Canvas:  Canvas{Width: 1200, Height: 1000},
		Display: Display{FPS: 30, Speed: 1, Theme: "retro"},
	},
	"flat": {
		Count: 40, Min: 7, Max: 7, Algorithm: "bubble",
		Canvas:  Canvas{Width: 1200, Height: 1000},
		Display: Display{FPS: 30, Speed: 1, Theme: "minimal"},
	},
	"reversed-heap": {
		Count: 100, Min: 0, Max: 200, Algorithm: "heap", Descending: true,
		Canvas:  Canvas{Width: 1200, Height: 1000},
		Display: Display{FPS: 60, Speed: 2, Theme: "sunset"},
	},
}

// GetPreset returns a copy of the named preset, or nil. Presets carry no log
// settings, so the copy logs with the defaults.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Log = logging.DefaultOptions()
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
