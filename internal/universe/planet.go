package universe

import (
	"math"

	"github.com/stardrift-dev/stardrift/internal/core"
	"github.com/stardrift-dev/stardrift/internal/rng"
)

// PlanetType classifies a planet by its dominant surface regime.
type PlanetType int

const (
	PlanetRocky PlanetType = iota
	PlanetOceanic
	PlanetFrozen
	PlanetMolten
	PlanetLunar
	PlanetGasGiant
	PlanetIceGiant
)

// String returns the display name of the planet type.
func (p PlanetType) String() string {
	switch p {
	case PlanetRocky:
		return "Rocky"
	case PlanetOceanic:
		return "Oceanic"
	case PlanetFrozen:
		return "Frozen"
	case PlanetMolten:
		return "Molten"
	case PlanetLunar:
		return "Lunar"
	case PlanetGasGiant:
		return "Gas Giant"
	case PlanetIceGiant:
		return "Ice Giant"
	default:
		return "Unknown"
	}
}

// Glyph returns the character used to draw this planet type.
func (p PlanetType) Glyph() rune {
	switch p {
	case PlanetGasGiant, PlanetIceGiant:
		return 'O'
	case PlanetLunar:
		return '∘'
	default:
		return 'o'
	}
}

// Color returns the display color of the planet type.
func (p PlanetType) Color() core.RGB {
	switch p {
	case PlanetRocky:
		return core.RGB{R: 176, G: 144, B: 106}
	case PlanetOceanic:
		return core.RGB{R: 62, G: 134, B: 204}
	case PlanetFrozen:
		return core.RGB{R: 199, G: 228, B: 240}
	case PlanetMolten:
		return core.RGB{R: 228, G: 86, B: 34}
	case PlanetLunar:
		return core.RGB{R: 158, G: 158, B: 158}
	case PlanetGasGiant:
		return core.RGB{R: 214, G: 170, B: 110}
	case PlanetIceGiant:
		return core.RGB{R: 128, G: 176, B: 222}
	default:
		return core.Gray
	}
}

// Planet is an orbiting body generated during system creation.
// Only Angle, X and Y change after creation (by the Integrator);
// everything else is fixed.
type Planet struct {
	Slot     int        // Orbital slot index within the system
	Type     PlanetType // Fixed at generation
	Distance float64    // Orbital radius in meters
	Angle    float64    // Orbital angle in radians, [0, 2pi)
	X, Y     float64    // Cartesian position relative to the star, meters
}

// Starbase is an artificial orbiting body with the same orbital fields
// as a planet.
type Starbase struct {
	Distance float64 // Orbital radius in meters
	Angle    float64 // Orbital angle in radians, [0, 2pi)
	X, Y     float64 // Cartesian position relative to the star, meters
}

// Climate zones ordered hot to cold by effective temperature.
type climateZone int

const (
	zoneHot climateZone = iota
	zoneOuterHot
	zoneHabitable
	zoneCool
	zoneCold
)

// Zone boundaries in kelvin. Earth sits near 278 K under this model, so
// the habitable band brackets it.
const (
	hotZoneMin      = 600.0
	outerHotZoneMin = 350.0
	habitableMin    = 240.0
	coolZoneMin     = 150.0
)

// zonePools are weighted planet-type pools per climate zone; a type with
// weight N appears N times. The values are tuning, not a contract: the
// hard requirement is only that the hot pools never contain giants or
// frozen worlds, and the cold pool favors them.
var zonePools = map[climateZone][]PlanetType{
	zoneHot: {
		PlanetMolten, PlanetMolten, PlanetMolten, PlanetMolten, PlanetMolten, PlanetMolten,
		PlanetRocky, PlanetRocky, PlanetRocky,
		PlanetLunar,
	},
	zoneOuterHot: {
		PlanetRocky, PlanetRocky, PlanetRocky, PlanetRocky, PlanetRocky,
		PlanetLunar, PlanetLunar, PlanetLunar,
		PlanetMolten, PlanetMolten,
	},
	zoneHabitable: {
		PlanetRocky, PlanetRocky, PlanetRocky, PlanetRocky,
		PlanetOceanic, PlanetOceanic, PlanetOceanic, PlanetOceanic,
		PlanetLunar,
	},
	zoneCool: {
		PlanetFrozen, PlanetFrozen, PlanetFrozen, PlanetFrozen,
		PlanetRocky, PlanetRocky, PlanetRocky,
		PlanetLunar, PlanetLunar,
		PlanetGasGiant,
	},
	zoneCold: {
		PlanetGasGiant, PlanetGasGiant, PlanetGasGiant, PlanetGasGiant,
		PlanetIceGiant, PlanetIceGiant, PlanetIceGiant, PlanetIceGiant,
		PlanetFrozen, PlanetFrozen, PlanetFrozen,
		PlanetLunar,
	},
}

// zoneForTemperature buckets an effective temperature into a climate zone.
func zoneForTemperature(teff float64) climateZone {
	switch {
	case teff >= hotZoneMin:
		return zoneHot
	case teff >= outerHotZoneMin:
		return zoneOuterHot
	case teff >= habitableMin:
		return zoneHabitable
	case teff >= coolZoneMin:
		return zoneCool
	default:
		return zoneCold
	}
}

// typeForTemperature draws a planet type from the zone distribution for
// the given effective temperature. A non-finite temperature falls back to
// a rocky world rather than propagating.
func typeForTemperature(teff float64, r *rng.Rand) PlanetType {
	if math.IsNaN(teff) || math.IsInf(teff, 0) {
		return PlanetRocky
	}
	return rng.Choice(r, zonePools[zoneForTemperature(teff)])
}

// effectiveTemperature estimates the black-body temperature at an orbit
// around a star. Luminosity is relative to the Sun-like reference:
// (T/Tref)^4 * (R/Rref)^2; the orbit temperature follows
// 278.3 * L^0.25 / sqrt(d_AU).
func effectiveTemperature(class SpectralClass, distanceMeters float64) float64 {
	luminosity := math.Pow(class.Temperature/SunTemperature, 4) * math.Pow(class.Radius, 2)
	distanceAU := distanceMeters / AU
	return 278.3 * math.Pow(luminosity, 0.25) / math.Sqrt(distanceAU)
}
