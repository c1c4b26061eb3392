package universe

import (
	"math"
	"testing"
)

func testSystem() *StarSystem {
	return &StarSystem{
		Planets: []*Planet{
			{Slot: 0, Type: PlanetRocky, Distance: 0.4 * AU, Angle: 0},
			nil,
			{Slot: 2, Type: PlanetOceanic, Distance: 1.1 * AU, Angle: math.Pi / 2},
		},
		Starbase: &Starbase{Distance: 0.75 * AU, Angle: math.Pi},
	}
}

func TestAdvanceFullYear(t *testing.T) {
	it := NewIntegrator(60, nil)
	sys := testSystem()
	startAngles := []float64{sys.Planets[0].Angle, sys.Planets[2].Angle, sys.Starbase.Angle}

	// One full simulated year in quarter steps returns every body to its
	// starting angle, modulo floating point.
	for i := 0; i < 4; i++ {
		it.Advance(sys, 15)
	}

	got := []float64{sys.Planets[0].Angle, sys.Planets[2].Angle, sys.Starbase.Angle}
	for i := range got {
		diff := math.Abs(got[i] - startAngles[i])
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff > 1e-9 {
			t.Errorf("body %d: angle %.12f after one year, want %.12f", i, got[i], startAngles[i])
		}
	}
}

func TestAdvanceWrapsAngle(t *testing.T) {
	it := NewIntegrator(60, nil)
	sys := testSystem()

	for i := 0; i < 1000; i++ {
		it.Advance(sys, 7.3)
		for _, p := range sys.Planets {
			if p == nil {
				continue
			}
			if p.Angle < 0 || p.Angle >= 2*math.Pi {
				t.Fatalf("step %d: angle %v outside [0, 2pi)", i, p.Angle)
			}
		}
		if a := sys.Starbase.Angle; a < 0 || a >= 2*math.Pi {
			t.Fatalf("step %d: starbase angle %v outside [0, 2pi)", i, a)
		}
	}
}

func TestAdvancePositionsFinite(t *testing.T) {
	it := NewIntegrator(60, nil)
	sys := testSystem()

	for i := 0; i < 200; i++ {
		it.Advance(sys, 0.033)
	}
	for _, p := range sys.Planets {
		if p == nil {
			continue
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("slot %d: non-finite position (%v, %v)", p.Slot, p.X, p.Y)
		}
		if r := math.Hypot(p.X, p.Y); math.Abs(r-p.Distance) > p.Distance*1e-9 {
			t.Fatalf("slot %d: radius %v drifted from orbit %v", p.Slot, r, p.Distance)
		}
	}
}

func TestAdvanceParksInvalidDistance(t *testing.T) {
	it := NewIntegrator(60, nil)
	sys := &StarSystem{
		Planets: []*Planet{
			{Slot: 0, Distance: math.NaN(), X: 99, Y: 99},
			{Slot: 1, Distance: -1, X: 99, Y: 99},
			{Slot: 2, Distance: 0.5 * AU},
		},
	}

	it.Advance(sys, 1)

	for _, slot := range []int{0, 1} {
		p := sys.Planets[slot]
		if p.X != 0 || p.Y != 0 {
			t.Errorf("slot %d: invalid distance not parked at origin, got (%v, %v)", slot, p.X, p.Y)
		}
	}
	if p := sys.Planets[2]; p.X == 0 && p.Y == 0 {
		t.Error("valid orbit was parked at origin")
	}
}

func TestAdvanceIgnoresBadInput(t *testing.T) {
	it := NewIntegrator(60, nil)
	it.Advance(nil, 1) // Must not panic

	sys := testSystem()
	before := sys.Planets[0].Angle
	it.Advance(sys, math.NaN())
	it.Advance(sys, math.Inf(1))
	if sys.Planets[0].Angle != before {
		t.Fatal("non-finite dt mutated the system")
	}
}

func TestNewIntegratorRejectsBadYear(t *testing.T) {
	for _, spy := range []float64{0, -5, math.NaN()} {
		it := NewIntegrator(spy, nil)
		if it.secondsPerYear != 60 {
			t.Errorf("secondsPerYear %v accepted, got %v", spy, it.secondsPerYear)
		}
	}
}
