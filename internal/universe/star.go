// Package universe generates deterministic star systems and advances their
// orbital simulation. Given a root seed and integer world coordinates, the
// generator always reproduces the same system: same star, same name, same
// planets on the same orbits.
package universe

import "github.com/stardrift-dev/stardrift/internal/core"

// Physical reference constants.
const (
	// AU is one astronomical unit in meters.
	AU = 1.496e11

	// SunTemperature is the effective temperature of a G2 reference star
	// in kelvin, used for relative luminosity.
	SunTemperature = 5778.0
)

// SpectralClass describes a star category with its physical constants and
// visual attributes. Mass and Radius are relative to the reference star.
type SpectralClass struct {
	Code        string
	Name        string
	Color       core.RGB
	Glyph       rune
	Mass        float64
	Radius      float64
	Temperature float64
	Weight      int // Relative frequency in the galaxy
}

// spectralClasses is the fixed class table. Frequencies are compressed
// relative to a real stellar population so rare classes still show up
// within a playable exploration radius.
var spectralClasses = []SpectralClass{
	{Code: "O", Name: "Blue Supergiant", Color: core.RGB{R: 155, G: 176, B: 255}, Glyph: '◉', Mass: 30, Radius: 6.6, Temperature: 35000, Weight: 1},
	{Code: "B", Name: "Blue Giant", Color: core.RGB{R: 170, G: 191, B: 255}, Glyph: '✹', Mass: 10, Radius: 4.2, Temperature: 15000, Weight: 2},
	{Code: "A", Name: "White Star", Color: core.RGB{R: 202, G: 215, B: 255}, Glyph: '✶', Mass: 2.1, Radius: 1.8, Temperature: 8500, Weight: 4},
	{Code: "F", Name: "Yellow-White Star", Color: core.RGB{R: 248, G: 247, B: 255}, Glyph: '✶', Mass: 1.3, Radius: 1.3, Temperature: 6700, Weight: 6},
	{Code: "G", Name: "Yellow Dwarf", Color: core.RGB{R: 255, G: 244, B: 234}, Glyph: '☉', Mass: 1.0, Radius: 1.0, Temperature: 5778, Weight: 8},
	{Code: "K", Name: "Orange Dwarf", Color: core.RGB{R: 255, G: 210, B: 161}, Glyph: '✦', Mass: 0.7, Radius: 0.8, Temperature: 4500, Weight: 11},
	{Code: "M", Name: "Red Dwarf", Color: core.RGB{R: 255, G: 204, B: 111}, Glyph: '·', Mass: 0.3, Radius: 0.4, Temperature: 3200, Weight: 18},
}

// classPool expands the class table into a weighted pool for uniform
// selection: a class with weight N appears N times.
var classPool = func() []SpectralClass {
	var pool []SpectralClass
	for _, c := range spectralClasses {
		for i := 0; i < c.Weight; i++ {
			pool = append(pool, c)
		}
	}
	return pool
}()

// referenceClass is the documented fallback when a class lookup fails:
// Sun-like G-class data.
var referenceClass = spectralClasses[4]

// Classes returns the full spectral class table.
func Classes() []SpectralClass {
	out := make([]SpectralClass, len(spectralClasses))
	copy(out, spectralClasses)
	return out
}

// ClassByCode looks up a spectral class by its single-letter code.
// Unknown codes return the G-class reference data and false.
func ClassByCode(code string) (SpectralClass, bool) {
	for _, c := range spectralClasses {
		if c.Code == code {
			return c, true
		}
	}
	return referenceClass, false
}
