package colorspace

import "math/rand"

// Vibrant colors sit in a narrow saturation/lightness band so every harmony
// prompt pops against the board regardless of hue.
const (
	vibrantMinSaturation = 70
	vibrantMaxSaturation = 100
	vibrantMinLightness  = 45
	vibrantMaxLightness  = 60
)

// VibrantColorAvoidingRecent synthesizes a vibrant color whose hue falls in
// one of the least-recently-used arcs of the wheel. The wheel is split into
// zones equal arcs; each recent color votes for its arc and a hue is drawn
// uniformly from a randomly chosen least-loaded arc. This keeps consecutive
// rounds from camping in one hue family.
func VibrantColorAvoidingRecent(recent []string, zones int, rng *rand.Rand) string {
	if zones <= 0 {
		zones = 6
	}
	arc := 360.0 / float64(zones)

	counts := make([]int, zones)
	for _, hex := range recent {
		z := int(HexToHSL(hex).H / arc)
		if z >= zones {
			z = zones - 1
		}
		counts[z]++
	}

	minCount := counts[0]
	for _, c := range counts[1:] {
		if c < minCount {
			minCount = c
		}
	}
	var leastUsed []int
	for z, c := range counts {
		if c == minCount {
			leastUsed = append(leastUsed, z)
		}
	}

	zone := leastUsed[rng.Intn(len(leastUsed))]
	h := float64(zone)*arc + rng.Float64()*arc
	s := vibrantMinSaturation + rng.Float64()*(vibrantMaxSaturation-vibrantMinSaturation)
	l := vibrantMinLightness + rng.Float64()*(vibrantMaxLightness-vibrantMinLightness)

	return HSLToHex(h, s, l)
}
