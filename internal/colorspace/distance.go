package colorspace

import "math"

// HueDistance returns the angular distance between two hues along the
// shorter arc of the color wheel, in [0,180].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Distance is the perceptual similarity proxy used throughout the game:
// Euclidean distance over (hue arc, saturation delta, lightness delta).
// Symmetric, and zero exactly when both colors round-trip to the same HSL.
func Distance(hexA, hexB string) float64 {
	a := HexToHSL(hexA)
	b := HexToHSL(hexB)

	dh := HueDistance(a.H, b.H)
	ds := a.S - b.S
	dl := a.L - b.L
	return math.Sqrt(dh*dh + ds*ds + dl*dl)
}
