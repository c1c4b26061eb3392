package universe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stardrift-dev/stardrift/internal/rng"
)

func newTestGenerator(seed string) *Generator {
	return NewGenerator(rng.New(seed), DefaultGeneratorConfig(), nil)
}

func TestGenerateDeterministic(t *testing.T) {
	a := newTestGenerator("alpha").Generate(5, 5)
	b := newTestGenerator("alpha").Generate(5, 5)

	if a.Name != b.Name {
		t.Fatalf("names diverged: %q vs %q", a.Name, b.Name)
	}
	if a.Class.Code != b.Class.Code {
		t.Fatalf("classes diverged: %s vs %s", a.Class.Code, b.Class.Code)
	}
	if (a.Starbase == nil) != (b.Starbase == nil) {
		t.Fatalf("starbase presence diverged")
	}
	if len(a.Planets) != len(b.Planets) {
		t.Fatalf("slot counts diverged: %d vs %d", len(a.Planets), len(b.Planets))
	}
	for i := range a.Planets {
		pa, pb := a.Planets[i], b.Planets[i]
		if (pa == nil) != (pb == nil) {
			t.Fatalf("slot %d occupancy diverged", i)
		}
		if pa == nil {
			continue
		}
		if pa.Type != pb.Type || pa.Distance != pb.Distance || pa.Angle != pb.Angle {
			t.Fatalf("slot %d diverged: %+v vs %+v", i, pa, pb)
		}
	}
	if a.EdgeRadius != b.EdgeRadius {
		t.Fatalf("edge radii diverged: %v vs %v", a.EdgeRadius, b.EdgeRadius)
	}
}

func TestGenerateDistinctCoordinates(t *testing.T) {
	g := newTestGenerator("alpha")
	a := g.Generate(0, 0)
	b := g.Generate(1, 0)

	// Names colliding across adjacent systems would mean the child streams
	// are not actually independent.
	if a.Name == b.Name && a.Class.Code == b.Class.Code && a.EdgeRadius == b.EdgeRadius {
		t.Fatalf("adjacent systems identical: %q", a.Name)
	}
}

// checkSeparation asserts the spacing invariants of one system: any two
// planets at least minSep apart, any planet at least minSep/2 from the
// starbase. A hair of slack absorbs float rounding at large radii.
func checkSeparation(t *testing.T, sys *StarSystem, minSep float64, label string) {
	t.Helper()
	const slack = 1 - 1e-9

	var orbits []float64
	for _, p := range sys.Planets {
		if p != nil {
			orbits = append(orbits, p.Distance)
		}
	}
	for i := 0; i < len(orbits); i++ {
		for j := i + 1; j < len(orbits); j++ {
			if gap := math.Abs(orbits[i] - orbits[j]); gap < minSep*slack {
				t.Errorf("%s: planet orbits %.6g and %.6g closer than %.3g",
					label, orbits[i], orbits[j], minSep)
			}
		}
	}
	if sys.Starbase != nil {
		for _, d := range orbits {
			if gap := math.Abs(d - sys.Starbase.Distance); gap < minSep/2*slack {
				t.Errorf("%s: orbit %.6g within %.3g of the starbase", label, d, gap)
			}
		}
	}
}

func TestOrbitSeparation(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	minSep := cfg.MinSeparationAU * AU

	for s := 0; s < 25; s++ {
		seed := fmt.Sprintf("seed-%d", s)
		g := newTestGenerator(seed)
		for x := 0; x < 400; x++ {
			sys := g.Generate(x, 0)
			checkSeparation(t, sys, minSep, fmt.Sprintf("seed %q system (%d,0)", seed, x))
		}
	}
}

func TestOrbitSeparationNearOuterLimit(t *testing.T) {
	// A tight outer limit pins candidates against the previous orbit;
	// those slots must stay empty rather than form an overlapping planet.
	cfg := DefaultGeneratorConfig()
	cfg.OuterLimitAU = 1.2
	minSep := cfg.MinSeparationAU * AU

	g := NewGenerator(rng.New("pinned"), cfg, nil)
	for x := 0; x < 200; x++ {
		sys := g.Generate(x, 0)
		checkSeparation(t, sys, minSep, fmt.Sprintf("system (%d,0)", x))
		for _, p := range sys.Planets {
			if p != nil && p.Distance > cfg.OuterLimitAU*AU {
				t.Fatalf("system (%d,0): slot %d beyond the outer limit", x, p.Slot)
			}
		}
	}
}

func TestOrbitsWithinOuterLimit(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	outer := cfg.OuterLimitAU * AU

	g := newTestGenerator("outer-limit")
	for x := 0; x < 20; x++ {
		sys := g.Generate(x, 3)
		for _, p := range sys.Planets {
			if p != nil && p.Distance > outer {
				t.Fatalf("system (%d,3): orbit %.3g exceeds outer limit %.3g", x, p.Distance, outer)
			}
		}
	}
}

func TestEdgeRadiusFloor(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	floor := cfg.EdgeFloorAU * AU

	g := newTestGenerator("edge-floor")
	for x := 0; x < 50; x++ {
		sys := g.Generate(x, 0)
		if sys.EdgeRadius < floor {
			t.Fatalf("system (%d,0): edge radius %.3g below floor %.3g", x, sys.EdgeRadius, floor)
		}
		maxOrbit := 0.0
		for _, p := range sys.Planets {
			if p != nil && p.Distance > maxOrbit {
				maxOrbit = p.Distance
			}
		}
		if sys.Starbase != nil && sys.Starbase.Distance > maxOrbit {
			maxOrbit = sys.Starbase.Distance
		}
		if want := maxOrbit * cfg.EdgeFactor; want > floor && sys.EdgeRadius != want {
			t.Fatalf("system (%d,0): edge radius %.3g, want %.3g", x, sys.EdgeRadius, want)
		}
	}
}

func TestEdgeRadiusEmptySystem(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	g := newTestGenerator("empty")
	sys := &StarSystem{Planets: make([]*Planet, cfg.MaxPlanets)}
	if got, want := g.edgeRadius(sys), cfg.EdgeFloorAU*AU; got != want {
		t.Fatalf("empty system edge radius = %.3g, want floor %.3g", got, want)
	}
}

func TestHotZoneExcludesColdTypes(t *testing.T) {
	classO, ok := ClassByCode("O")
	if !ok {
		t.Fatal("class O missing from the table")
	}

	teff := effectiveTemperature(classO, 0.05*AU)
	if zone := zoneForTemperature(teff); zone != zoneHot {
		t.Fatalf("class O at 0.05 AU: teff %.1f K landed in zone %d, want hot", teff, zone)
	}

	r := rng.New("hot-zone")
	for i := 0; i < 500; i++ {
		pt := typeForTemperature(teff, r)
		switch pt {
		case PlanetGasGiant, PlanetIceGiant, PlanetFrozen, PlanetOceanic:
			t.Fatalf("draw %d: hot zone produced %s", i, pt)
		}
	}
}

func TestZoneBoundaries(t *testing.T) {
	cases := []struct {
		teff float64
		want climateZone
	}{
		{5000, zoneHot},
		{600, zoneHot},
		{599.9, zoneOuterHot},
		{350, zoneOuterHot},
		{278, zoneHabitable},
		{240, zoneHabitable},
		{200, zoneCool},
		{150, zoneCool},
		{30, zoneCold},
	}
	for _, c := range cases {
		if got := zoneForTemperature(c.teff); got != c.want {
			t.Errorf("zoneForTemperature(%v) = %d, want %d", c.teff, got, c.want)
		}
	}
}

func TestTypeForTemperatureNonFinite(t *testing.T) {
	r := rng.New("nan")
	if got := typeForTemperature(math.NaN(), r); got != PlanetRocky {
		t.Fatalf("NaN temperature produced %s, want Rocky", got)
	}
	if got := typeForTemperature(math.Inf(1), r); got != PlanetRocky {
		t.Fatalf("+Inf temperature produced %s, want Rocky", got)
	}
}

func TestStarbaseSeparation(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.StarbaseChance = 1 // Force a starbase into every system
	minSep := cfg.MinSeparationAU * AU

	g := NewGenerator(rng.New("starbase"), cfg, nil)
	for x := 0; x < 30; x++ {
		sys := g.Generate(x, 7)
		if sys.Starbase == nil {
			t.Fatalf("system (%d,7): starbase chance 1 produced no starbase", x)
		}
		for _, p := range sys.Planets {
			if p == nil {
				continue
			}
			if gap := math.Abs(p.Distance - sys.Starbase.Distance); gap < minSep/2 {
				t.Errorf("system (%d,7): slot %d orbit within %.3g of the starbase", x, p.Slot, gap)
			}
		}
	}
}

func TestGeneratedNameFormat(t *testing.T) {
	r := rng.New("names")
	for i := 0; i < 100; i++ {
		name := generateName(r)
		idx := strings.LastIndexByte(name, '-')
		if idx <= 0 || idx == len(name)-1 {
			t.Fatalf("name %q does not match prefix-number-letter", name)
		}
		suffix := name[idx+1:]
		letter := rune(suffix[len(suffix)-1])
		if letter < 'A' || letter > 'Z' {
			t.Fatalf("name %q: letter %c out of [A, Z]", name, letter)
		}
		number, err := strconv.Atoi(suffix[:len(suffix)-1])
		if err != nil || number < 1 || number > 999 {
			t.Fatalf("name %q: bad number part %q", name, suffix[:len(suffix)-1])
		}
	}
}

func TestUniverseSessionCache(t *testing.T) {
	u := New("session", DefaultOptions(), nil)
	a := u.SystemAt(2, 3)
	b := u.SystemAt(2, 3)
	if a != b {
		t.Fatal("repeat visit returned a different system instance")
	}

	fresh := New("session", DefaultOptions(), nil)
	c := fresh.SystemAt(2, 3)
	if a.Name != c.Name || a.Class.Code != c.Class.Code {
		t.Fatalf("regenerated system diverged: %q/%s vs %q/%s",
			a.Name, a.Class.Code, c.Name, c.Class.Code)
	}
}

func TestHasStarDeterministic(t *testing.T) {
	u1 := New("density", DefaultOptions(), nil)
	u2 := New("density", DefaultOptions(), nil)

	stars := 0
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			a, b := u1.HasStar(x, y), u2.HasStar(x, y)
			if a != b {
				t.Fatalf("cell (%d,%d): star presence diverged", x, y)
			}
			if a {
				stars++
			}
		}
	}
	// 1600 cells at density 0.06 should land near 96; a zero or full grid
	// means the roll is broken.
	if stars == 0 || stars == 1600 {
		t.Fatalf("degenerate star count %d over 1600 cells", stars)
	}
}
