package nebula

import (
	"math"
	"testing"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/rng"
)

func TestColorAtTotality(t *testing.T) {
	f := New("totality", DefaultConfig(), nil)

	// Pathological inputs must produce the background, never a panic
	bad := [][2]float64{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), math.Inf(-1)},
	}
	for _, p := range bad {
		if got := f.ColorAt(p[0], p[1]); got != f.cfg.Background {
			t.Errorf("ColorAt(%v, %v) = %v, want background", p[0], p[1], got)
		}
	}

	// Ordinary and extreme finite inputs always return some color
	r := rng.New("probe")
	for i := 0; i < 2000; i++ {
		x := r.FloatRange(-1e7, 1e7)
		y := r.FloatRange(-1e7, 1e7)
		f.ColorAt(x, y)
	}
	f.ColorAt(0, 0)
	f.ColorAt(1e15, -1e15)
}

func TestColorAtDeterministic(t *testing.T) {
	a := New("det", DefaultConfig(), nil)
	b := New("det", DefaultConfig(), nil)

	for i := 0; i < 200; i++ {
		x := float64(i) * 1.7
		y := float64(i) * -2.3
		if ca, cb := a.ColorAt(x, y), b.ColorAt(x, y); ca != cb {
			t.Fatalf("ColorAt(%v, %v): %v != %v", x, y, ca, cb)
		}
	}
}

func TestPaletteMidpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = []core.RGB{core.Black, core.White}
	f := New("midpoint", cfg, nil)

	// The uncomposited nebula color at a normalized structural value of
	// exactly 0.5 is the exact midpoint grey.
	got := f.paletteColor(0.5)
	want := core.RGB{R: 128, G: 128, B: 128}
	if got != want {
		t.Errorf("paletteColor(0.5) = %v, want %v", got, want)
	}

	if got := f.paletteColor(0); got != core.Black {
		t.Errorf("paletteColor(0) = %v, want black", got)
	}
	if got := f.paletteColor(1); got != core.White {
		t.Errorf("paletteColor(1) = %v, want white", got)
	}
}

func TestDegeneratePalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = []core.RGB{{R: 200}}
	cfg.Background = core.RGB{R: 1, G: 2, B: 3}
	f := New("degenerate", cfg, nil)

	if got := f.ColorAt(12.5, -4.5); got != cfg.Background {
		t.Errorf("single-color palette should render background, got %v", got)
	}
}

func TestCacheBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheSize = 10
	cfg.CachePrecision = 0
	f := New("bounded", cfg, nil)

	for i := 0; i < 100; i++ {
		f.ColorAt(float64(i), float64(i))
	}
	if f.CachedColors() > 10 {
		t.Errorf("cache grew past cap: %d entries", f.CachedColors())
	}

	// A full cache degrades to recomputation, never to wrong output
	v1 := f.ColorAt(55, 55)
	v2 := f.ColorAt(55, 55)
	if v1 != v2 {
		t.Errorf("uncached recomputation differs: %v != %v", v1, v2)
	}
}

func TestAlphaSparsityBounds(t *testing.T) {
	f := New("alpha", DefaultConfig(), nil)

	for mask := -1.0; mask <= 1.0; mask += 0.05 {
		a := f.alphaFor(mask)
		if a < 0 || a > 1 {
			t.Fatalf("alphaFor(%v) = %v out of [0, 1]", mask, a)
		}
	}

	// Full sparsity suppresses everything
	cfg := DefaultConfig()
	cfg.Sparsity = 1
	g := New("alpha-full", cfg, nil)
	if a := g.alphaFor(-1); a != 0 {
		t.Errorf("sparsity=1 should zero alpha, got %v", a)
	}
}
