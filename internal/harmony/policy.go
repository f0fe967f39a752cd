package harmony

import "math/rand"

// Challenge-type switch cadence: every round a fresh threshold is drawn
// from [SwitchAfterMin, SwitchAfterMax]; once the rounds-since-switch counter
// reaches it a new type is selected. Gives organic blocks of 3-5 rounds per
// type rather than a fixed rotation.
const (
	SwitchAfterMin = 3
	SwitchAfterMax = 5
)

// Unlocked returns the harmonies available at the given lifetime score, in
// unlock order.
func Unlocked(lifetimeScore int) []Harmony {
	var out []Harmony
	for _, h := range Table {
		if h.UnlockThreshold <= lifetimeScore {
			out = append(out, h)
		}
	}
	return out
}

// SelectNext draws a harmony type from the unlocked set, weighted by the
// table weights (roulette-wheel selection). The color-match fallback is only
// reachable if every unlocked weight is zero, which the table invariant
// forbids for the base set.
func SelectNext(lifetimeScore int, rng *rand.Rand) Type {
	unlocked := Unlocked(lifetimeScore)

	total := 0
	for _, h := range unlocked {
		total += h.Weight
	}
	if total > 0 {
		pick := rng.Float64() * float64(total)
		for _, h := range unlocked {
			pick -= float64(h.Weight)
			if pick < 0 {
				return h.Type
			}
		}
	}
	return ColorMatch
}

// NextChallengeType decides the type for the upcoming round. When
// roundsSinceSwitch has reached a freshly drawn threshold a new type is
// selected (possibly the same one again); otherwise current is kept.
func NextChallengeType(current Type, roundsSinceSwitch, lifetimeScore int, rng *rand.Rand) Type {
	threshold := SwitchAfterMin + rng.Intn(SwitchAfterMax-SwitchAfterMin+1)
	if roundsSinceSwitch >= threshold {
		return SelectNext(lifetimeScore, rng)
	}
	return current
}
