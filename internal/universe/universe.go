package universe

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/nebula"
	"github.com/stardrift-dev/stardrift/internal/rng"
)

// Options bundles the generation parameters of one galaxy.
type Options struct {
	Generator      GeneratorConfig
	Nebula         nebula.Config
	StarDensity    float64 // Probability a world cell hosts a star
	SecondsPerYear float64 // Real seconds per simulated orbital year
}

// DefaultOptions returns the standard galaxy parameters.
func DefaultOptions() Options {
	return Options{
		Generator:      DefaultGeneratorConfig(),
		Nebula:         nebula.DefaultConfig(),
		StarDensity:    0.06,
		SecondsPerYear: 60,
	}
}

// cellKey identifies an integer world cell.
type cellKey struct {
	X, Y int
}

// Universe owns one galaxy session: the root seed, the nebula background,
// the system generator, and the session cache of generated systems. It is
// an explicitly constructed value, never ambient global state; independent
// sessions (or tests) each build their own.
type Universe struct {
	seed    string
	opts    Options
	gen     *Generator
	neb     *nebula.Field
	integ   *Integrator
	systems map[cellKey]*StarSystem
}

// New creates a universe from a root seed. A nil logger disables
// diagnostics throughout the engine.
func New(seed string, opts Options, logger *log.Logger) *Universe {
	root := rng.New(seed)
	return &Universe{
		seed:    seed,
		opts:    opts,
		gen:     NewGenerator(root, opts.Generator, logger),
		neb:     nebula.New(seed, opts.Nebula, logger),
		integ:   NewIntegrator(opts.SecondsPerYear, logger),
		systems: make(map[cellKey]*StarSystem),
	}
}

// Seed returns the root seed of this universe.
func (u *Universe) Seed() string {
	return u.seed
}

// HasStar reports whether the integer world cell hosts a star system.
// The roll uses its own child stream, so it never perturbs the draw
// sequence of system generation.
func (u *Universe) HasStar(x, y int) bool {
	r := u.gen.root.SeedNew(fmt.Sprintf("cell_%d,%d", x, y))
	return r.Float() < u.opts.StarDensity
}

// SystemAt returns the star system at (x, y), generating it on first
// visit and caching it for the session. Evicting the cache would be
// harmless: the same seed always regenerates the same system.
func (u *Universe) SystemAt(x, y int) *StarSystem {
	key := cellKey{X: x, Y: y}
	if sys, ok := u.systems[key]; ok {
		return sys
	}
	sys := u.gen.Generate(x, y)
	u.systems[key] = sys
	return sys
}

// NebulaColor returns the background color at a world coordinate.
func (u *Universe) NebulaColor(x, y float64) core.RGB {
	return u.neb.ColorAt(x, y)
}

// Advance moves a system's orbital simulation forward by dt real seconds.
func (u *Universe) Advance(sys *StarSystem, dt float64) {
	u.integ.Advance(sys, dt)
}
