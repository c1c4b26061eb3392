// Package noise implements seeded 2D coherent (Perlin-style) gradient noise.
// Each Field owns its own gradient and value caches; there is no shared
// global state, so independent fields (and test cases) never interfere.
package noise

import (
	"fmt"
	"math"

	"github.com/stardrift-dev/stardrift/internal/rng"
)

// DefaultPrecision is the default number of decimal places used to
// quantize sample coordinates for value caching.
const DefaultPrecision = 2

// latticePoint identifies an integer grid vertex.
type latticePoint struct {
	X, Y int
}

// gradient is a unit vector assigned to a lattice point.
type gradient struct {
	X, Y float64
}

// sampleKey is a quantized coordinate pair used as a value-cache key.
// Struct keys avoid the precision-formatting pitfalls of string keys.
type sampleKey struct {
	X, Y float64
}

// Field is a deterministic 2D coherent noise function.
//
// Gradient vectors are stable per lattice point per instance: nearby points
// yield nearby values, and the noise is continuous across cell boundaries
// because adjacent cells share corner gradients. Both caches grow without
// bound; sessions exploring very large areas should call ClearCache.
type Field struct {
	rand      *rng.Rand
	scale     float64 // 10^precision, used for coordinate quantization
	gradients map[latticePoint]gradient
	values    map[sampleKey]float64
}

// NewField creates a noise field from a string seed.
// precision is the number of decimal places sample coordinates are rounded
// to before cache lookup; higher precision trades cache hits for fidelity.
func NewField(seed string, precision int) *Field {
	f := &Field{}
	f.Reseed(seed, precision)
	return f
}

// Reseed reinitializes the random source and drops both caches.
// After a reseed the field behaves exactly like a freshly constructed one;
// no gradients carry over.
func (f *Field) Reseed(seed string, precision int) {
	if precision < 0 {
		precision = 0
	}
	f.rand = rng.New(seed)
	f.scale = math.Pow(10, float64(precision))
	f.gradients = make(map[latticePoint]gradient)
	f.values = make(map[sampleKey]float64)
}

// ClearCache drops the value cache but keeps gradients, preserving the
// exact noise function while releasing the bulk of the memory.
func (f *Field) ClearCache() {
	f.values = make(map[sampleKey]float64)
}

// Sample returns the noise value at (x, y), in [-1, 1].
// It is total over all finite inputs; non-finite coordinates yield 0.
func (f *Field) Sample(x, y float64) float64 {
	if !finite(x) || !finite(y) {
		return 0
	}

	key := sampleKey{X: f.quantize(x), Y: f.quantize(y)}
	if v, ok := f.values[key]; ok {
		return v
	}

	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix := int(x0)
	iy := int(y0)

	// Fractional position inside the lattice cell
	fx := x - x0
	fy := y - y0

	// Dot product of each corner gradient with the offset to (x, y)
	d00 := f.cornerDot(ix, iy, fx, fy)
	d10 := f.cornerDot(ix+1, iy, fx-1, fy)
	d01 := f.cornerDot(ix, iy+1, fx, fy-1)
	d11 := f.cornerDot(ix+1, iy+1, fx-1, fy-1)

	sx := smootherstep(fx)
	sy := smootherstep(fy)

	top := lerp(d00, d10, sx)
	bottom := lerp(d01, d11, sx)
	v := lerp(top, bottom, sy)

	if !finite(v) {
		v = 0
	}
	// Unit gradients keep the raw value inside [-1, 1]; clamp anyway so the
	// contract survives float drift.
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	f.values[key] = v
	return v
}

// GradientCount returns the number of cached lattice gradients.
func (f *Field) GradientCount() int {
	return len(f.gradients)
}

// CachedValues returns the number of cached sample values.
func (f *Field) CachedValues() int {
	return len(f.values)
}

// cornerDot returns the dot product of the gradient at lattice point
// (ix, iy) with the offset vector (dx, dy).
func (f *Field) cornerDot(ix, iy int, dx, dy float64) float64 {
	g := f.gradientAt(ix, iy)
	return g.X*dx + g.Y*dy
}

// gradientAt lazily creates and caches the gradient for a lattice point.
// The angle is derived from a child stream keyed by the point itself, so
// the gradient does not depend on the order lattice points are first
// visited in - only on the field's seed.
func (f *Field) gradientAt(ix, iy int) gradient {
	p := latticePoint{X: ix, Y: iy}
	if g, ok := f.gradients[p]; ok {
		return g
	}

	angle := f.rand.SeedNew(fmt.Sprintf("grad_%d,%d", ix, iy)).Float() * 2 * math.Pi
	g := gradient{X: math.Cos(angle), Y: math.Sin(angle)}
	f.gradients[p] = g
	return g
}

// quantize rounds a coordinate to the field's configured precision.
func (f *Field) quantize(v float64) float64 {
	return math.Round(v*f.scale) / f.scale
}

// smootherstep is the quintic easing curve 6t^5 - 15t^4 + 10t^3.
// Its first and second derivatives vanish at t=0 and t=1, which keeps the
// interpolated noise C2-continuous across cell boundaries.
func smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
