package colorspace

import "math/rand"

// minDistractorHueSeparation is the minimum hue arc, in degrees, between a
// distractor and every color already on screen. Anything closer reads as a
// duplicate swatch.
const minDistractorHueSeparation = 12

// maxDistractorJitter bounds the secondary saturation/lightness jitter
// applied to each distractor.
const maxDistractorJitter = 15

// Per-harmony offset menus: plausible wrong angles measured from the true
// relationship hue. Sampled without replacement, so each menu caps how many
// distractors a single call can produce.
var (
	complementaryOffsets = []float64{-40, -25, -15, 15, 25, 40}
	triadicOffsets       = []float64{-45, -30, -15, 15, 30, 45}
	splitCompOffsets     = []float64{-35, -20, -12, 12, 20, 35}
	analogousOffsets     = []float64{-28, -18, -12, 12, 18, 28}
	tetradicOffsets      = []float64{-40, -25, -15, 15, 25, 40}
	doubleCompOffsets    = []float64{-35, -25, -15, 15, 25, 35}
)

// ComplementaryDistractors produces up to count wrong choices near the true
// complement of base. May return fewer when the offset menu is exhausted;
// callers pad (see round.Generator).
func ComplementaryDistractors(correct string, avoid []string, count int, rng *rand.Rand) []string {
	return offsetDistractors(correct, complementaryOffsets, avoid, count, rng)
}

// TriadicDistractors produces wrong choices near a missing triadic partner.
func TriadicDistractors(correct string, avoid []string, count int, rng *rand.Rand) []string {
	return offsetDistractors(correct, triadicOffsets, avoid, count, rng)
}

// SplitComplementaryDistractors produces wrong choices near a missing
// split-complementary partner.
func SplitComplementaryDistractors(correct string, avoid []string, count int, rng *rand.Rand) []string {
	return offsetDistractors(correct, splitCompOffsets, avoid, count, rng)
}

// AnalogousDistractors produces wrong choices near a missing analogous
// neighbor.
func AnalogousDistractors(correct string, avoid []string, count int, rng *rand.Rand) []string {
	return offsetDistractors(correct, analogousOffsets, avoid, count, rng)
}

// TetradicDistractors produces wrong choices near a missing tetradic corner.
func TetradicDistractors(correct string, avoid []string, count int, rng *rand.Rand) []string {
	return offsetDistractors(correct, tetradicOffsets, avoid, count, rng)
}

// DoubleComplementaryDistractors produces wrong choices near a missing color
// of a double-complementary scheme.
func DoubleComplementaryDistractors(correct string, avoid []string, count int, rng *rand.Rand) []string {
	return offsetDistractors(correct, doubleCompOffsets, avoid, count, rng)
}

// monochromaticShifts are (hue, saturation, lightness) deltas from the
// correct shade. Monochromatic distractors stay close in hue but miss the
// lightness/saturation relationship, with a couple of slight off-hues mixed
// in.
var monochromaticShifts = [][3]float64{
	{0, -10, 14},
	{0, 12, -14},
	{0, -18, -10},
	{8, 5, 12},
	{-8, 5, -12},
	{14, -12, 0},
}

// MonochromaticDistractors produces wrong shades for a monochromatic round.
func MonochromaticDistractors(correct string, avoid []string, count int, rng *rand.Rand) []string {
	c := HexToHSL(correct)
	menu := rng.Perm(len(monochromaticShifts))

	var out []string
	for _, idx := range menu {
		if len(out) >= count {
			break
		}
		shift := monochromaticShifts[idx]
		h := wrapHue(c.H + shift[0])
		s := clamp(c.S+shift[1]+jitter(rng), minSynthSaturation, maxSynthSaturation)
		l := clamp(c.L+shift[2]+jitter(rng), minSynthLightness, maxSynthLightness)
		cand := HSLToHex(h, s, l)
		if tooCloseInHueOrShade(cand, correct, avoid, out) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// offsetDistractors is the shared sampler behind the hue-offset menus.
func offsetDistractors(correct string, offsets []float64, avoid []string, count int, rng *rand.Rand) []string {
	c := HexToHSL(correct)
	menu := rng.Perm(len(offsets))

	var out []string
	for _, idx := range menu {
		if len(out) >= count {
			break
		}
		h := wrapHue(c.H + offsets[idx])
		s := clamp(c.S+jitter(rng), minSynthSaturation, maxSynthSaturation)
		l := clamp(c.L+jitter(rng), minSynthLightness, maxSynthLightness)
		cand := HSLToHex(h, s, l)
		if tooCloseInHue(cand, correct, avoid, out) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// jitter returns a uniform offset in [-maxDistractorJitter, maxDistractorJitter].
func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * maxDistractorJitter
}

func tooCloseInHue(cand, correct string, avoid, used []string) bool {
	h := HexToHSL(cand).H
	if HueDistance(h, HexToHSL(correct).H) < minDistractorHueSeparation {
		return true
	}
	for _, a := range avoid {
		if HueDistance(h, HexToHSL(a).H) < minDistractorHueSeparation {
			return true
		}
	}
	for _, u := range used {
		if HueDistance(h, HexToHSL(u).H) < minDistractorHueSeparation {
			return true
		}
	}
	return false
}

// tooCloseInHueOrShade is the monochromatic variant: hue separation alone is
// meaningless for same-hue shades, so full perceptual distance is used.
func tooCloseInHueOrShade(cand, correct string, avoid, used []string) bool {
	const minShadeDistance = 10
	if Distance(cand, correct) < minShadeDistance {
		return true
	}
	for _, a := range avoid {
		if Distance(cand, a) < minShadeDistance {
			return true
		}
	}
	for _, u := range used {
		if Distance(cand, u) < minShadeDistance {
			return true
		}
	}
	return false
}
