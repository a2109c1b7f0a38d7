package config

var Presets = map[string]map[string]*Config{
	"bouncing_ball": {
		"classic": {
			Model: "bouncing_ball", Dt: 0.1, Duration: 20.0,
			Params: map[string]float64{"pos": 10.0, "vel": 0.0, "restitution": 0.9},
		},
		"dead": {
			Model: "bouncing_ball", Dt: 0.1, Duration: 20.0,
			Params: map[string]float64{"pos": 10.0, "vel": 0.0, "restitution": 0.2},
		},
		"moon": {
			Model: "bouncing_ball", Dt: 0.1, Duration: 40.0,
			Params: map[string]float64{"pos": 10.0, "vel": 0.0, "gravity": -1.62},
		},
	},
	"falling_ball": {
		"drop": {
			Model: "falling_ball", Dt: 0.1, Duration: 2.0,
			Params: map[string]float64{"pos": 10.0, "vel": 0.0},
		},
	},
	"oscillator": {
		"slow": {
			Model: "oscillator", Dt: 0.01, Duration: 30.0,
			Params: map[string]float64{"omega": 0.5, "x": 1.0},
		},
		"fast": {
			Model: "oscillator", Dt: 0.001, Duration: 10.0,
			Params: map[string]float64{"omega": 5.0, "x": 1.0},
		},
	},
	"cooling": {
		"coffee": {
			Model: "cooling", Dt: 0.01, Duration: 20.0,
			Params: map[string]float64{"temp": 90.0, "ambient": 20.0, "k": 0.5},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
