package ripple

import "mad-ripples/internal/core"

// Parameter keys, named after the console variables of the host renderer.
const (
	KeyEnabled        = "r_ripple"
	KeyUpdateInterval = "r_ripple_updatetime"
	KeySpawnInterval  = "r_ripple_spawntime"
	KeySampleMode     = "r_ripple_samplemode"
)

var sampleModes = []SampleMode{SampleAuto, SampleCoarse, SampleFull}

func sampleModeIndex(m SampleMode) int {
	for i, v := range sampleModes {
		if v == m {
			return i
		}
	}
	return 0
}

// Parameters reports the current tunables.
func (e *Effect) Parameters() core.ParameterSnapshot {
	cfg := e.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Ripples",
			Params: []core.Parameter{
				core.FloatParam(KeyEnabled, "Intensity", cfg.Enabled),
				core.FloatParam(KeyUpdateInterval, "Update interval", cfg.UpdateInterval),
				core.FloatParam(KeySpawnInterval, "Spawn interval", cfg.SpawnInterval),
				core.IntParam(KeySampleMode, "Sample mode", sampleModeIndex(cfg.SampleMode)),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("ticks", "Ticks", int(e.field.Ticks())),
				core.IntParam("sources", "Cached sources", e.cache.Len()),
				core.StringParam("filter", "Texture filter", cfg.TextureFilter),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable tunables.
func (e *Effect) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyEnabled, Label: "Intensity", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: KeyUpdateInterval, Label: "Update (s)", Type: core.ParamTypeFloat, Step: 0.01, Min: MinInterval, Max: 1, HasMin: true, HasMax: true},
		{Key: KeySpawnInterval, Label: "Spawn (s)", Type: core.ParamTypeFloat, Step: 0.05, Min: MinInterval, Max: 5, HasMin: true, HasMax: true},
		{Key: KeySampleMode, Label: "Sample mode", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(len(sampleModes) - 1), HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a floating point tunable.
func (e *Effect) SetFloatParameter(key string, value float64) bool {
	cfg := e.cfg
	switch key {
	case KeyEnabled:
		cfg.Enabled = value
	case KeyUpdateInterval:
		cfg.UpdateInterval = value
	case KeySpawnInterval:
		cfg.SpawnInterval = value
	default:
		return false
	}
	e.SetConfig(cfg)
	return true
}

// SetIntParameter updates an integer tunable.
func (e *Effect) SetIntParameter(key string, value int) bool {
	switch key {
	case KeySampleMode:
		if value < 0 || value >= len(sampleModes) {
			return false
		}
		cfg := e.cfg
		cfg.SampleMode = sampleModes[value]
		e.SetConfig(cfg)
		return true
	case KeyEnabled:
		return e.SetFloatParameter(key, float64(value))
	}
	return false
}
