package colorspace

// Relationship generators. Each takes a base hex color and returns the
// partner color(s) at fixed hue offsets, preserving the base saturation and
// lightness except where the relationship itself is a saturation/lightness
// shift (monochromatic).

// DefaultAnalogousSpacing is the hue spacing for analogous schemes.
const DefaultAnalogousSpacing = 30

// ComplementaryColor returns the color opposite base on the wheel (180°).
func ComplementaryColor(base string) string {
	c := HexToHSL(base)
	return HSLToHex(c.H+180, c.S, c.L)
}

// TriadicColors returns the two partners at 120° and 240° from base.
func TriadicColors(base string) [2]string {
	c := HexToHSL(base)
	return [2]string{
		HSLToHex(c.H+120, c.S, c.L),
		HSLToHex(c.H+240, c.S, c.L),
	}
}

// SplitComplementaryColors returns the partners at 150° and 210° from base,
// flanking the complement.
func SplitComplementaryColors(base string) [2]string {
	c := HexToHSL(base)
	return [2]string{
		HSLToHex(c.H+150, c.S, c.L),
		HSLToHex(c.H+210, c.S, c.L),
	}
}

// AnalogousColors returns the neighbors at ±spacing degrees from base.
// A spacing of 0 falls back to DefaultAnalogousSpacing.
func AnalogousColors(base string, spacing float64) [2]string {
	if spacing == 0 {
		spacing = DefaultAnalogousSpacing
	}
	c := HexToHSL(base)
	return [2]string{
		HSLToHex(c.H-spacing, c.S, c.L),
		HSLToHex(c.H+spacing, c.S, c.L),
	}
}

// TetradicColors returns the three partners at 90°, 180° and 270° from base,
// completing a square on the wheel.
func TetradicColors(base string) [3]string {
	c := HexToHSL(base)
	return [3]string{
		HSLToHex(c.H+90, c.S, c.L),
		HSLToHex(c.H+180, c.S, c.L),
		HSLToHex(c.H+270, c.S, c.L),
	}
}

// DoubleComplementaryColors returns the 30° neighbor of base plus the
// complements of both, forming two complementary pairs.
func DoubleComplementaryColors(base string) [3]string {
	c := HexToHSL(base)
	return [3]string{
		HSLToHex(c.H+30, c.S, c.L),
		HSLToHex(c.H+180, c.S, c.L),
		HSLToHex(c.H+210, c.S, c.L),
	}
}

// MonochromaticColors returns a lighter and a darker same-hue variant:
// lightness shifted by ±20 with compensating saturation shifts of -15/+10.
func MonochromaticColors(base string) [2]string {
	c := HexToHSL(base)
	return [2]string{
		HSLToHex(c.H, clamp(c.S-15, 0, 100), clamp(c.L+20, 0, 100)),
		HSLToHex(c.H, clamp(c.S+10, 0, 100), clamp(c.L-20, 0, 100)),
	}
}
