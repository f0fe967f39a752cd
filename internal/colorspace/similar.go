package colorspace

import "math/rand"

// Saturation/lightness bounds for synthesized colors. Keeping lightness off
// the extremes ensures swatches stay distinguishable on dark terminals.
const (
	minSynthSaturation = 10
	maxSynthSaturation = 100
	minSynthLightness  = 20
	maxSynthLightness  = 85
)

// SimilarColor perturbs base by random offsets scaled by variance:
// hue up to ±2·variance degrees, saturation ±0.5·variance, lightness
// ±0.8·variance. Higher variance means an easier discrimination task.
func SimilarColor(base string, variance float64, rng *rand.Rand) string {
	c := HexToHSL(base)

	h := wrapHue(c.H + (rng.Float64()*2-1)*2*variance)
	s := clamp(c.S+(rng.Float64()*2-1)*0.5*variance, minSynthSaturation, maxSynthSaturation)
	l := clamp(c.L+(rng.Float64()*2-1)*0.8*variance, minSynthLightness, maxSynthLightness)

	return HSLToHex(h, s, l)
}
