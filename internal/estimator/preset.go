package estimator

import "errors"

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is one of the quick factor buttons.
type Preset struct {
	Key    string  `json:"key" yaml:"key"`
	Name   string  `json:"name" yaml:"name"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// Presets in display order.
var presets = []Preset{
	{Key: "rda", Name: "RDA (adult)", Factor: 0.8},
	{Key: "older_adult", Name: "Older adult", Factor: 1.2},
	{Key: "endurance", Name: "Active / endurance", Factor: 1.4},
	{Key: "hypertrophy", Name: "Strength / hypertrophy", Factor: 1.6},
	{Key: "cut", Name: "High (cut/retain LBM)", Factor: 1.8},
	{Key: "bodybuilder", Name: "Very high (bodybuilders)", Factor: 2.2},
}

// Presets returns a copy of the preset list.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

func GetPreset(key string) (Preset, bool) {
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// ApplyPreset resets goal and activity to their neutral values and switches the
// form to the preset's custom factor. Edits made afterwards are applied on top;
// goal and activity only matter again once UseCustom is turned off.
func ApplyPreset(in Input, key string) (Input, error) {
	p, ok := GetPreset(key)
	if !ok {
		return in, ErrUnknownPreset
	}
	in.Goal = GoalMaintenance
	in.Activity = ActivitySedentary
	in.CustomFactor = p.Factor
	in.UseCustom = true
	return in, nil
}
