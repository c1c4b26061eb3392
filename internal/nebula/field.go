// Package nebula composites seeded coherent noise into a continuous
// background color function of world coordinates. Two noise frequencies are
// combined: one shapes the gas structure, the other masks its density, so
// shape and sparsity stay visually decorrelated.
package nebula

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/noise"
)

// Config holds the tunable parameters of a nebula field.
// All values are read-only inputs; the field never mutates them.
type Config struct {
	Scale           float64    // World-to-noise coordinate multiplier for structure
	MaskScaleFactor float64    // Mask frequency relative to structure (typically 0.75)
	Sparsity        float64    // 0..1, higher suppresses more of the field
	Intensity       float64    // Global alpha multiplier, clamped to 1
	CachePrecision  int        // Decimal places for cache-key quantization
	CacheSize       int        // Max cached colors; 0 disables caching
	Background      core.RGB   // Fallback color for any fault
	Palette         []core.RGB // Base colors, at least two for interpolation
}

// DefaultConfig returns parameters tuned for an 80x24 viewport.
func DefaultConfig() Config {
	return Config{
		Scale:           0.08,
		MaskScaleFactor: 0.75,
		Sparsity:        0.65,
		Intensity:       0.9,
		CachePrecision:  1,
		CacheSize:       65536,
		Background:      core.Black,
		Palette: []core.RGB{
			{R: 26, G: 5, B: 51},
			{R: 45, G: 27, B: 105},
			{R: 11, G: 61, B: 92},
			{R: 74, G: 25, B: 66},
			{R: 22, G: 50, B: 79},
		},
	}
}

// colorKey is a quantized world coordinate used as a cache key.
type colorKey struct {
	X, Y float64
}

// Field maps world coordinates to composited nebula colors.
// The color cache is bounded: once full, new colors are recomputed on every
// call but existing entries stay valid. Correctness never degrades, only
// performance.
type Field struct {
	cfg      Config
	noise    *noise.Field
	cache    map[colorKey]core.RGB
	keyScale float64
	logger   *log.Logger
}

// New creates a nebula field. The noise domain is derived from the root
// seed with a fixed suffix so it never collides with other consumers of
// the same seed. A nil logger disables diagnostics.
func New(rootSeed string, cfg Config, logger *log.Logger) *Field {
	if cfg.MaskScaleFactor <= 0 {
		cfg.MaskScaleFactor = 0.75
	}
	f := &Field{
		cfg:      cfg,
		noise:    noise.NewField(rootSeed+":nebula", cfg.CachePrecision),
		cache:    make(map[colorKey]core.RGB),
		keyScale: math.Pow(10, float64(cfg.CachePrecision)),
		logger:   logger,
	}
	if len(cfg.Palette) < 2 {
		f.warnf("nebula palette has fewer than two colors; rendering flat background")
	}
	return f
}

// ColorAt returns the nebula color at a world coordinate.
// It is total: any non-finite input or intermediate falls back to the
// configured background color, never a panic or a corrupt value.
func (f *Field) ColorAt(x, y float64) core.RGB {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return f.cfg.Background
	}
	if len(f.cfg.Palette) < 2 {
		return f.cfg.Background
	}

	key := colorKey{
		X: math.Round(x*f.keyScale) / f.keyScale,
		Y: math.Round(y*f.keyScale) / f.keyScale,
	}
	if c, ok := f.cache[key]; ok {
		return c
	}

	c, ok := f.compose(x, y)
	if !ok {
		f.warnf("nebula composite produced a non-finite value", "x", x, "y", y)
		return f.cfg.Background
	}

	if f.cfg.CacheSize > 0 && len(f.cache) < f.cfg.CacheSize {
		f.cache[key] = c
	}
	return c
}

// compose runs the full noise-to-color pipeline.
// The boolean result is false when any intermediate was non-finite.
func (f *Field) compose(x, y float64) (core.RGB, bool) {
	structural := f.noise.Sample(x*f.cfg.Scale, y*f.cfg.Scale)

	maskScale := f.cfg.Scale * f.cfg.MaskScaleFactor
	mask := f.noise.Sample(x*maskScale, y*maskScale)

	if !finite(structural) || !finite(mask) {
		return core.RGB{}, false
	}

	base := f.paletteColor((structural + 1) / 2)

	alpha := f.alphaFor(mask)
	if !finite(alpha) {
		return core.RGB{}, false
	}

	if alpha < 1 {
		// Fade toward black, not toward the true background: compositing
		// over starfield content is the renderer's job.
		base = core.LerpRGB(core.Black, base, alpha)
	}
	return base, true
}

// paletteColor maps a normalized value in [0, 1] to an interpolated
// palette color. The two bracketing palette entries are blended linearly.
func (f *Field) paletteColor(t float64) core.RGB {
	t = core.ClampF(t, 0, 1)
	pos := t * float64(len(f.cfg.Palette)-1)
	i := int(math.Floor(pos))
	if i >= len(f.cfg.Palette)-1 {
		return f.cfg.Palette[len(f.cfg.Palette)-1]
	}
	return core.LerpRGB(f.cfg.Palette[i], f.cfg.Palette[i+1], pos-float64(i))
}

// alphaFor converts a raw mask sample in [-1, 1] to an opacity in [0, 1].
// Sparsity passes through a power curve (exponent 0.7) so mid-range
// settings still leave visible wisps; intensity scales the result.
func (f *Field) alphaFor(mask float64) float64 {
	maskNorm := (mask + 1) / 2

	denom := 1 - math.Pow(core.ClampF(f.cfg.Sparsity, 0, 1), 0.7)
	if denom <= 0 {
		return 0
	}

	alpha := 1 - maskNorm/denom
	if alpha < 0 {
		alpha = 0
	}
	alpha *= f.cfg.Intensity
	if alpha > 1 {
		alpha = 1
	}
	return alpha
}

// CachedColors returns the number of cached cell colors.
func (f *Field) CachedColors() int {
	return len(f.cache)
}

func (f *Field) warnf(msg string, kv ...any) {
	if f.logger != nil {
		f.logger.Warn(msg, kv...)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
