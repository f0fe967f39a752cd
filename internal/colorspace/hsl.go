// Package colorspace provides the color math behind Chromatch: hex/HSL
// conversion, perceptual distance, and generators for the eight color
// harmony relationships plus their near-miss distractors.
//
// Colors cross package boundaries as hex strings ("#RRGGBB", canonical
// uppercase). HSL keeps hue in [0,360) and saturation/lightness in [0,100]
// as float64 so that hex -> HSL -> hex reproduces the original bytes.
package colorspace

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL is a hue/saturation/lightness triplet.
// H is degrees in [0,360); S and L are percentages in [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

// HexToHSL converts a "#RRGGBB" hex string to HSL.
// Shorthand and alpha forms are not supported; invalid input yields black.
func HexToHSL(hex string) HSL {
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return HSL{}
	}
	h, s, l := c.Hsl()
	return HSL{H: wrapHue(h), S: s * 100, L: l * 100}
}

// HSLToHex converts HSL components to a canonical uppercase "#RRGGBB" string.
func HSLToHex(h, s, l float64) string {
	c := colorful.Hsl(wrapHue(h), clamp(s, 0, 100)/100, clamp(l, 0, 100)/100)
	return strings.ToUpper(c.Clamped().Hex())
}

// Hex returns the canonical hex encoding of the triplet.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// Normalize returns the canonical uppercase form of a hex color.
func Normalize(hex string) string {
	return strings.ToUpper(hex)
}

// Equal reports whether two hex colors are identical, ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// wrapHue maps a hue to [0,360).
func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
