package config

import "sort"

// Presets are well-known regions of the set.
var Presets = map[string]View{
	"full": FullView,

	// dense filaments and repeating curls
	"seahorse": {XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15},

	// large bulb with trunk-like tendrils
	"elephant": {XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02},

	// small copy with tight spiral arms
	"spiral": {XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325},

	"triple-spiral": {XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980},

	"dragon": {XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850},

	// self-similar copy inside a spiral arm
	"mini-spiral": {XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220},
}

func GetPreset(name string) (View, bool) {
	v, ok := Presets[name]
	return v, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
