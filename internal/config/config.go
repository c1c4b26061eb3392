// Package config provides YAML-based universe configuration loading
// for the exploration engine.
package config

import (
	"fmt"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/nebula"
	"github.com/stardrift-dev/stardrift/internal/universe"
)

// UniverseConfig contains all tunable generation parameters.
type UniverseConfig struct {
	Galaxy GalaxyConfig `yaml:"galaxy"`
	Nebula NebulaConfig `yaml:"nebula"`
	System SystemConfig `yaml:"system"`
}

// GalaxyConfig defines galaxy-level parameters.
type GalaxyConfig struct {
	StarDensity    float64 `yaml:"star_density"`     // Probability a cell hosts a star
	SecondsPerYear float64 `yaml:"seconds_per_year"` // Real seconds per orbital year
}

// NebulaConfig defines the background nebula field. Colors are hex
// strings like "#1a0b2e".
type NebulaConfig struct {
	Scale           float64  `yaml:"scale"`
	MaskScaleFactor float64  `yaml:"mask_scale_factor"`
	Sparsity        float64  `yaml:"sparsity"`
	Intensity       float64  `yaml:"intensity"`
	CachePrecision  int      `yaml:"cache_precision"`
	CacheSize       int      `yaml:"cache_size"`
	Background      string   `yaml:"background"`
	Palette         []string `yaml:"palette"`
}

// SystemConfig defines star system generation parameters. Distances are
// in astronomical units.
type SystemConfig struct {
	MaxPlanets      int     `yaml:"max_planets"`
	StarbaseChance  float64 `yaml:"starbase_chance"`
	StarbaseOrbitAU float64 `yaml:"starbase_orbit_au"`
	FirstOrbitAU    float64 `yaml:"first_orbit_au"`
	MinSeparationAU float64 `yaml:"min_separation_au"`
	OuterLimitAU    float64 `yaml:"outer_limit_au"`
	EdgeFloorAU     float64 `yaml:"edge_floor_au"`
	EdgeFactor      float64 `yaml:"edge_factor"`
}

// Options converts the loaded configuration into engine options.
// Invalid hex colors fail the whole conversion rather than silently
// falling back.
func (c UniverseConfig) Options() (universe.Options, error) {
	opts := universe.DefaultOptions()

	opts.StarDensity = c.Galaxy.StarDensity
	opts.SecondsPerYear = c.Galaxy.SecondsPerYear

	opts.Generator = universe.GeneratorConfig{
		MaxPlanets:      c.System.MaxPlanets,
		StarbaseChance:  c.System.StarbaseChance,
		StarbaseOrbitAU: c.System.StarbaseOrbitAU,
		FirstOrbitAU:    c.System.FirstOrbitAU,
		MinSeparationAU: c.System.MinSeparationAU,
		OuterLimitAU:    c.System.OuterLimitAU,
		EdgeFloorAU:     c.System.EdgeFloorAU,
		EdgeFactor:      c.System.EdgeFactor,
	}

	neb := nebula.DefaultConfig()
	neb.Scale = c.Nebula.Scale
	neb.MaskScaleFactor = c.Nebula.MaskScaleFactor
	neb.Sparsity = c.Nebula.Sparsity
	neb.Intensity = c.Nebula.Intensity
	neb.CachePrecision = c.Nebula.CachePrecision
	neb.CacheSize = c.Nebula.CacheSize

	bg, err := core.ParseHex(c.Nebula.Background)
	if err != nil {
		return opts, fmt.Errorf("config: nebula background: %w", err)
	}
	neb.Background = bg

	palette := make([]core.RGB, 0, len(c.Nebula.Palette))
	for i, hex := range c.Nebula.Palette {
		col, err := core.ParseHex(hex)
		if err != nil {
			return opts, fmt.Errorf("config: nebula palette entry %d: %w", i, err)
		}
		palette = append(palette, col)
	}
	neb.Palette = palette

	opts.Nebula = neb
	return opts, nil
}
