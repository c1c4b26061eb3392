package core

import (
	"fmt"
	"math"
)

// RGB is a 24-bit truecolor value used for cell foregrounds.
// The nebula compositor produces these directly; the platform layer
// converts them to terminal escape sequences.
type RGB struct {
	R, G, B uint8
}

// Common colors used across the game.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Gray  = RGB{128, 128, 128}
)

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the perceived brightness in [0, 1].
// Uses the Rec. 601 luma coefficients.
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// Scale multiplies each channel by f, clamping to the valid range.
func (c RGB) Scale(f float64) RGB {
	return RGB{
		R: clampChannel(float64(c.R) * f),
		G: clampChannel(float64(c.G) * f),
		B: clampChannel(float64(c.B) * f),
	}
}

// ParseHex parses a "#rrggbb" or "rrggbb" string into an RGB value.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("core: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// LerpRGB linearly interpolates between two colors.
// t is clamped to [0, 1]; t=0 returns a, t=1 returns b.
func LerpRGB(a, b RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	return RGB{
		R: clampChannel(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: clampChannel(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: clampChannel(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}
