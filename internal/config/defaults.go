package config

import (
	_ "embed"
)

//go:embed defaults/universe.yaml
var defaultUniverseYAML []byte

// DefaultUniverseConfig returns the hardcoded default configuration,
// matching the embedded YAML. Used as the last-resort fallback.
func DefaultUniverseConfig() UniverseConfig {
	return UniverseConfig{
		Galaxy: GalaxyConfig{
			StarDensity:    0.06,
			SecondsPerYear: 60,
		},
		Nebula: NebulaConfig{
			Scale:           0.08,
			MaskScaleFactor: 0.75,
			Sparsity:        0.65,
			Intensity:       0.9,
			CachePrecision:  1,
			CacheSize:       65536,
			Background:      "#000000",
			Palette: []string{
				"#1a0533", "#2d1b69", "#0b3d5c", "#4a1942", "#16324f",
			},
		},
		System: SystemConfig{
			MaxPlanets:      8,
			StarbaseChance:  0.18,
			StarbaseOrbitAU: 0.75,
			FirstOrbitAU:    0.35,
			MinSeparationAU: 0.2,
			OuterLimitAU:    40,
			EdgeFloorAU:     2.5,
			EdgeFactor:      1.25,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration document.
func GetDefaultYAML() []byte {
	return defaultUniverseYAML
}
