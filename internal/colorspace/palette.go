package colorspace

import "math/rand"

// Tiered target palette for color-match rounds. Early levels draw from
// bold primaries, later tiers mix in subtler and trickier hues.
var paletteTiers = [][]string{
	{
		"#E74C3C", "#3498DB", "#2ECC71", "#F1C40F",
		"#9B59B6", "#E67E22", "#1ABC9C", "#E91E63",
	},
	{
		"#C0392B", "#2980B9", "#27AE60", "#F39C12",
		"#8E44AD", "#D35400", "#16A085", "#C2185B",
		"#7F8C8D", "#34495E",
	},
	{
		"#A93226", "#1F618D", "#1E8449", "#B7950B",
		"#6C3483", "#A04000", "#117A65", "#880E4F",
		"#5D6D7E", "#4A235A", "#784212", "#0E6251",
	},
}

// tierForLevel maps a game level onto a palette tier index.
func tierForLevel(level int) int {
	switch {
	case level <= 3:
		return 0
	case level <= 7:
		return 1
	default:
		return 2
	}
}

// PaletteColor returns a uniformly random target color for a color-match
// round at the given level. From the deepest tier onward all tiers stay in
// rotation so familiar colors keep appearing.
func PaletteColor(level int, rng *rand.Rand) string {
	tier := tierForLevel(level)
	pool := paletteTiers[tier]
	if tier == len(paletteTiers)-1 {
		pool = nil
		for _, t := range paletteTiers {
			pool = append(pool, t...)
		}
	}
	return pool[rng.Intn(len(pool))]
}
