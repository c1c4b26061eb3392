package universe

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/stardrift-dev/stardrift/internal/rng"
)

// GeneratorConfig holds the tunable parameters of system generation.
// Distances are in astronomical units unless noted otherwise.
type GeneratorConfig struct {
	MaxPlanets      int     // Orbital slots per system
	StarbaseChance  float64 // Probability a system has a starbase
	StarbaseOrbitAU float64 // Fixed starbase orbital radius
	FirstOrbitAU    float64 // Starting value of the running distance marker
	MinSeparationAU float64 // Minimum gap between any two orbits
	OuterLimitAU    float64 // Orbits never exceed this radius
	EdgeFloorAU     float64 // Lower bound on the system edge radius
	EdgeFactor      float64 // Edge radius relative to the outermost orbit
}

// DefaultGeneratorConfig returns the standard galaxy parameters.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxPlanets:      8,
		StarbaseChance:  0.18,
		StarbaseOrbitAU: 0.75,
		FirstOrbitAU:    0.35,
		MinSeparationAU: 0.2,
		OuterLimitAU:    40,
		EdgeFloorAU:     2.5,
		EdgeFactor:      1.25,
	}
}

// StarSystem is a fully generated system. It is created once per
// coordinate pair and reproduced exactly by the same seed; only the
// orbital angles and positions of its bodies mutate afterwards.
type StarSystem struct {
	X, Y       int            // World coordinates of the star
	Class      SpectralClass  // Spectral class with physical constants
	Name       string         // Generated display name
	Planets    []*Planet      // Fixed-length slot array; nil means empty slot
	Starbase   *Starbase      // Optional, nil if absent
	EdgeRadius float64        // Simulation/view boundary in meters
}

// PlanetCount returns the number of occupied planet slots.
func (s *StarSystem) PlanetCount() int {
	n := 0
	for _, p := range s.Planets {
		if p != nil {
			n++
		}
	}
	return n
}

// Generator derives star systems from a root seed.
type Generator struct {
	root   *rng.Rand
	cfg    GeneratorConfig
	logger *log.Logger
}

// NewGenerator creates a system generator over the given root stream.
// A nil logger disables diagnostics.
func NewGenerator(root *rng.Rand, cfg GeneratorConfig, logger *log.Logger) *Generator {
	if cfg.MaxPlanets <= 0 {
		cfg.MaxPlanets = DefaultGeneratorConfig().MaxPlanets
	}
	return &Generator{root: root, cfg: cfg, logger: logger}
}

// Generate derives the star system at integer world coordinates (x, y).
//
// All randomness comes from a child stream keyed "star_{x},{y}", so systems
// never share draws and the same coordinates always reproduce the same
// system. The draw order is a hard contract; changing it changes every
// generated galaxy:
//
//  1. spectral class (weighted choice)
//  2. name: prefix choice, number [1,999], letter [A,Z]
//  3. starbase roll, then (only if present) starbase angle
//  4. orbit scale base in [1.5, 2.0)
//  5. per slot i = 0..MaxPlanets-1:
//     a. spacing jitter in [-0.2, 0.2)
//     b. additive spacing term in [0, 0.05) AU
//     c. formation roll against 0.9 - 0.03*i
//     d. if formed: planet type choice, then starting angle
func (g *Generator) Generate(x, y int) *StarSystem {
	r := g.root.SeedNew(fmt.Sprintf("star_%d,%d", x, y))

	sys := &StarSystem{
		X:       x,
		Y:       y,
		Class:   rng.Choice(r, classPool),
		Planets: make([]*Planet, g.cfg.MaxPlanets),
	}
	sys.Name = generateName(r)

	if r.Float() < g.cfg.StarbaseChance {
		sys.Starbase = &Starbase{
			Distance: g.cfg.StarbaseOrbitAU * AU,
			Angle:    r.FloatRange(0, 2*math.Pi),
		}
		sys.Starbase.X = math.Cos(sys.Starbase.Angle) * sys.Starbase.Distance
		sys.Starbase.Y = math.Sin(sys.Starbase.Angle) * sys.Starbase.Distance
	}

	scaleBase := r.FloatRange(1.5, 2.0)
	g.placePlanets(sys, r, scaleBase)

	sys.EdgeRadius = g.edgeRadius(sys)
	return sys
}

// placePlanets fills the slot array using approximate power-law spacing.
// Every slot, occupied or not, advances the running distance marker so
// later slots stay properly spaced.
func (g *Generator) placePlanets(sys *StarSystem, r *rng.Rand, scaleBase float64) {
	minSep := g.cfg.MinSeparationAU * AU
	outer := g.cfg.OuterLimitAU * AU
	last := g.cfg.FirstOrbitAU * AU

	for i := 0; i < g.cfg.MaxPlanets; i++ {
		jitter := r.FloatRange(-0.2, 0.2)
		additive := r.FloatRange(0, 0.05) * AU

		candidate := last*math.Pow(scaleBase, 1+jitter) + additive
		if candidate < last+minSep {
			candidate = last + minSep
		}
		if candidate > outer {
			candidate = outer
		}
		candidate = g.avoidStarbase(sys, candidate, last, minSep, outer)

		// The outer clamp can pin the candidate against the previous
		// orbit. A body there would break the minimum separation, so the
		// slot stays empty and placement ends.
		if candidate < last+minSep {
			break
		}

		formed := r.Float() < 0.9-0.03*float64(i)
		if formed {
			teff := effectiveTemperature(sys.Class, candidate)
			if math.IsNaN(teff) || math.IsInf(teff, 0) {
				g.warnf("non-finite orbit temperature, defaulting to rocky",
					"system", sys.Name, "slot", i)
			}
			p := &Planet{
				Slot:     i,
				Type:     typeForTemperature(teff, r),
				Distance: candidate,
				Angle:    r.FloatRange(0, 2*math.Pi),
			}
			p.X = math.Cos(p.Angle) * p.Distance
			p.Y = math.Sin(p.Angle) * p.Distance
			sys.Planets[i] = p
		}

		last = candidate
		if last >= outer {
			break
		}
	}
}

// avoidStarbase nudges a candidate orbit away from the starbase when it
// falls within half the minimum separation, then re-clamps it against the
// previous orbit and the outer limit.
func (g *Generator) avoidStarbase(sys *StarSystem, candidate, last, minSep, outer float64) float64 {
	sb := sys.Starbase
	if sb == nil || math.Abs(candidate-sb.Distance) >= minSep/2 {
		return candidate
	}

	// Push toward whichever side the candidate already leans
	if candidate >= sb.Distance {
		candidate = sb.Distance + minSep
	} else {
		candidate = sb.Distance - minSep
	}
	if candidate < last+minSep {
		candidate = last + minSep
	}
	// The nudge can land back inside the starbase band when the previous
	// orbit forces it upward; resolve by jumping past the starbase.
	if math.Abs(candidate-sb.Distance) < minSep/2 {
		candidate = sb.Distance + minSep
	}
	if candidate > outer {
		candidate = outer
	}
	return candidate
}

// edgeRadius derives the system boundary from the outermost body, with
// the configured floor.
func (g *Generator) edgeRadius(sys *StarSystem) float64 {
	maxOrbit := 0.0
	for _, p := range sys.Planets {
		if p != nil && p.Distance > maxOrbit {
			maxOrbit = p.Distance
		}
	}
	if sys.Starbase != nil && sys.Starbase.Distance > maxOrbit {
		maxOrbit = sys.Starbase.Distance
	}

	edge := maxOrbit * g.cfg.EdgeFactor
	floor := g.cfg.EdgeFloorAU * AU
	if edge < floor {
		edge = floor
	}
	return edge
}

func (g *Generator) warnf(msg string, kv ...any) {
	if g.logger != nil {
		g.logger.Warn(msg, kv...)
	}
}
