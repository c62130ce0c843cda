package config

var Presets = map[string]*Config{
	"default": {
		Resolution: 256, PatchSize: 150, Choppiness: 1.5, Dt: 0.016, Ticks: 600,
		Wind: WindConfig{X: 60, Y: 30},
	},
	"storm": {
		Resolution: 256, PatchSize: 8192, Choppiness: 3.0, Dt: 0.016, Ticks: 600,
		Wind: WindConfig{X: 60, Y: 35},
	},
	"calm": {
		Resolution: 256, PatchSize: 16384, Choppiness: 0.6, Dt: 0.016, Ticks: 600,
		Wind: WindConfig{X: 8, Y: 5},
	},
	"swell": {
		Resolution: 128, PatchSize: 1000, Choppiness: 1.0, Dt: 0.016, Ticks: 600,
		Wind: WindConfig{X: 25, Y: 10},
	},
}

func GetPreset(name string) (*Config, bool) {
	p, ok := Presets[name]
	if !ok {
		return nil, false
	}
	cfg := *p
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	return &cfg, true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
