package colorspace

import (
	"math"
	"testing"
)

func TestHexRoundTrip(t *testing.T) {
	// hex -> HSL -> hex must reproduce the exact bytes
	samples := []string{
		"#000000", "#FFFFFF", "#808080",
		"#FF0000", "#00FF00", "#0000FF",
		"#E74C3C", "#3498DB", "#2ECC71", "#F1C40F",
		"#9B59B6", "#E67E22", "#1ABC9C", "#E91E63",
		"#7F8C8D", "#34495E", "#4A235A", "#0E6251",
		"#123456", "#ABCDEF", "#FEDCBA",
	}

	for _, hex := range samples {
		c := HexToHSL(hex)
		got := c.Hex()
		if got != hex {
			t.Errorf("Round trip failed for %s: got %s (HSL %.2f/%.2f/%.2f)", hex, got, c.H, c.S, c.L)
		}
	}
}

func TestHexToHSLRanges(t *testing.T) {
	samples := []string{"#FF0000", "#00FFFF", "#123456", "#FEDCBA", "#808080"}
	for _, hex := range samples {
		c := HexToHSL(hex)
		if c.H < 0 || c.H >= 360 {
			t.Errorf("Hue out of range for %s: %f", hex, c.H)
		}
		if c.S < 0 || c.S > 100 {
			t.Errorf("Saturation out of range for %s: %f", hex, c.S)
		}
		if c.L < 0 || c.L > 100 {
			t.Errorf("Lightness out of range for %s: %f", hex, c.L)
		}
	}
}

func TestHexToHSLKnownValues(t *testing.T) {
	tests := []struct {
		hex     string
		h, s, l float64
	}{
		{"#FF0000", 0, 100, 50},
		{"#00FF00", 120, 100, 50},
		{"#0000FF", 240, 100, 50},
		{"#FFFFFF", 0, 0, 100},
		{"#000000", 0, 0, 0},
	}

	for _, tt := range tests {
		c := HexToHSL(tt.hex)
		if math.Abs(c.H-tt.h) > 0.01 || math.Abs(c.S-tt.s) > 0.01 || math.Abs(c.L-tt.l) > 0.01 {
			t.Errorf("%s: expected HSL(%.0f,%.0f,%.0f), got (%.2f,%.2f,%.2f)",
				tt.hex, tt.h, tt.s, tt.l, c.H, c.S, c.L)
		}
	}
}

func TestHexToHSLInvalid(t *testing.T) {
	for _, bad := range []string{"", "nope", "#12", "#GGGGGG"} {
		c := HexToHSL(bad)
		if c != (HSL{}) {
			t.Errorf("Invalid hex %q should yield zero HSL, got %+v", bad, c)
		}
	}
}

func TestHSLToHexWrapsHue(t *testing.T) {
	// Hue is circular: -90 and 270 name the same color
	a := HSLToHex(-90, 80, 50)
	b := HSLToHex(270, 80, 50)
	if a != b {
		t.Errorf("Hue wrap mismatch: %s vs %s", a, b)
	}

	c := HSLToHex(360+45, 80, 50)
	d := HSLToHex(45, 80, 50)
	if c != d {
		t.Errorf("Hue wrap mismatch: %s vs %s", c, d)
	}
}

func TestHSLToHexClampsComponents(t *testing.T) {
	if got := HSLToHex(0, 150, 50); got != HSLToHex(0, 100, 50) {
		t.Errorf("Saturation should clamp to 100, got %s", got)
	}
	if got := HSLToHex(0, 50, -10); got != HSLToHex(0, 50, 0) {
		t.Errorf("Lightness should clamp to 0, got %s", got)
	}
}

func TestHSLToHexCanonicalForm(t *testing.T) {
	got := HSLToHex(6.3, 78, 57)
	if len(got) != 7 || got[0] != '#' {
		t.Fatalf("Expected #RRGGBB form, got %q", got)
	}
	for _, r := range got[1:] {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			t.Errorf("Expected uppercase hex digits, got %q", got)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal("#AABBCC", "#aabbcc") {
		t.Error("Equal should ignore case")
	}
	if Equal("#AABBCC", "#AABBCD") {
		t.Error("Equal should reject different colors")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("#aabbcc"); got != "#AABBCC" {
		t.Errorf("Expected #AABBCC, got %s", got)
	}
}
