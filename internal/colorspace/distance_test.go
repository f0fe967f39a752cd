package colorspace

import (
	"math"
	"testing"
)

func TestHueDistanceShorterArc(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{0, 0, 0},
		{0, 90, 90},
		{0, 180, 180},
		{0, 359, 1},   // wraps around, not 359
		{350, 10, 20}, // crosses zero
		{90, 270, 180},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("HueDistance(%.0f, %.0f) = %.2f, want %.2f", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func TestDistanceZeroForSameColor(t *testing.T) {
	if d := Distance("#E74C3C", "#E74C3C"); d != 0 {
		t.Errorf("Distance of a color to itself should be 0, got %f", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"#E74C3C", "#3498DB"},
		{"#2ECC71", "#F1C40F"},
		{"#000000", "#FFFFFF"},
	}
	for _, p := range pairs {
		d1 := Distance(p[0], p[1])
		d2 := Distance(p[1], p[0])
		if math.Abs(d1-d2) > 1e-9 {
			t.Errorf("Distance(%s, %s) = %f but reversed = %f", p[0], p[1], d1, d2)
		}
	}
}

func TestDistanceUsesShorterHueArc(t *testing.T) {
	// Two saturated colors at hue 2 and hue 358 are near neighbors on the
	// wheel even though their raw hue values differ by 356.
	a := HSLToHex(2, 90, 50)
	b := HSLToHex(358, 90, 50)
	if d := Distance(a, b); d > 10 {
		t.Errorf("Colors across the hue seam should be close, got distance %f", d)
	}
}

func TestDistanceOrdering(t *testing.T) {
	// A near-identical color must score closer than a complement.
	base := "#E74C3C"
	near := shiftHue(base, 3)
	far := ComplementaryColor(base)

	if Distance(base, near) >= Distance(base, far) {
		t.Errorf("Near color (%s) should be closer to %s than its complement (%s)", near, base, far)
	}
}

// shiftHue builds a deterministic nearby color for distance tests.
func shiftHue(base string, hueShift float64) string {
	c := HexToHSL(base)
	return HSLToHex(c.H+hueShift, c.S, c.L)
}
