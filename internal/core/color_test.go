package core

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ff0000", RGB{255, 0, 0}, false},
		{"00ff00", RGB{0, 255, 0}, false},
		{"#1a0533", RGB{26, 5, 51}, false},
		{"#fff", RGB{}, true},
		{"not-a-color", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 26, G: 5, B: 51}
	parsed, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(%q) failed: %v", c.Hex(), err)
	}
	if parsed != c {
		t.Errorf("round trip = %v, want %v", parsed, c)
	}
}

func TestLerpRGB(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	if got := LerpRGB(black, white, 0); got != black {
		t.Errorf("t=0 should return first color, got %v", got)
	}
	if got := LerpRGB(black, white, 1); got != white {
		t.Errorf("t=1 should return second color, got %v", got)
	}

	mid := LerpRGB(black, white, 0.5)
	if mid.R != 128 || mid.G != 128 || mid.B != 128 {
		t.Errorf("midpoint = %v, want {128 128 128}", mid)
	}

	// t is clamped, not extrapolated
	if got := LerpRGB(black, white, 2.5); got != white {
		t.Errorf("t>1 should clamp to second color, got %v", got)
	}
}

func TestRGBScale(t *testing.T) {
	c := RGB{100, 200, 50}

	half := c.Scale(0.5)
	if half.R != 50 || half.G != 100 || half.B != 25 {
		t.Errorf("Scale(0.5) = %v", half)
	}

	// Overflow clamps to 255
	bright := c.Scale(10)
	if bright.G != 255 {
		t.Errorf("Scale(10).G = %d, want 255", bright.G)
	}
}
