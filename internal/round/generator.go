package round

import (
	"math/rand"

	"github.com/askoryk/chromatch/internal/colorspace"
	"github.com/askoryk/chromatch/internal/config"
	"github.com/askoryk/chromatch/internal/harmony"
)

// Generator builds rounds for every harmony type. It owns no mutable state
// beyond the injected RNG, so one generator serves a whole session.
type Generator struct {
	gen  config.GenerationConfig
	diff config.DifficultyConfig
	rng  *rand.Rand
}

// NewGenerator creates a round generator with the given constraints and
// random source.
func NewGenerator(gen config.GenerationConfig, diff config.DifficultyConfig, rng *rand.Rand) *Generator {
	if gen.ChoiceCount <= 0 {
		gen.ChoiceCount = 4
	}
	if gen.MaxAttempts <= 0 {
		gen.MaxAttempts = 12
	}
	return &Generator{gen: gen, diff: diff, rng: rng}
}

// Generate produces a fully populated round for the given harmony type.
// recent holds the last correct-answer colors and steers base-color hues
// away from overused wheel zones. Never fails: generation under-supply
// degrades to looser-constraint padding, not an error.
func (g *Generator) Generate(t harmony.Type, level int, recent []string) Round {
	switch t {
	case harmony.ColorMatch:
		return g.colorMatch(level)
	case harmony.Complementary:
		return g.complementary(recent)
	case harmony.Triadic:
		return g.triadic(recent)
	case harmony.SplitComplementary:
		return g.splitComplementary(recent)
	case harmony.Analogous:
		return g.analogous(recent)
	case harmony.Tetradic:
		return g.tetradic(recent)
	case harmony.DoubleComplementary:
		return g.doubleComplementary(recent)
	case harmony.Monochromatic:
		return g.monochromatic(recent)
	default:
		return g.colorMatch(level)
	}
}

func (g *Generator) colorMatch(level int) ColorMatch {
	target := colorspace.PaletteColor(level, g.rng)
	variance := DifficultyForLevel(g.diff, level)

	needed := g.gen.ChoiceCount - 1
	var distractors []string
	for attempt := 0; attempt < g.gen.MaxAttempts*needed && len(distractors) < needed; attempt++ {
		cand := colorspace.SimilarColor(target, variance, g.rng)
		if colorspace.Equal(cand, target) {
			continue
		}
		if !g.farEnough(cand, append([]string{target}, distractors...)) {
			continue
		}
		distractors = append(distractors, cand)
	}
	distractors = g.pad(target, nil, distractors)

	choices, correct := g.shuffleIn(target, distractors)
	return ColorMatch{answers: answers{ChoiceColors: choices, Answer: correct}, Target: target}
}

func (g *Generator) complementary(recent []string) Complementary {
	base := g.vibrant(recent)
	pair := [2]string{base, colorspace.ComplementaryColor(base)}
	missing := g.rng.Intn(2)

	return Complementary{
		answers: g.buildAnswers(pair[missing], allBut(pair[:], missing), colorspace.ComplementaryDistractors),
		Pair:    pair,
		Missing: missing,
	}
}

func (g *Generator) triadic(recent []string) Triadic {
	base := g.vibrant(recent)
	partners := colorspace.TriadicColors(base)
	wheel := [3]string{base, partners[0], partners[1]}
	missing := g.rng.Intn(3)

	return Triadic{
		answers: g.buildAnswers(wheel[missing], allBut(wheel[:], missing), colorspace.TriadicDistractors),
		Wheel:   wheel,
		Missing: missing,
	}
}

func (g *Generator) splitComplementary(recent []string) SplitComplementary {
	base := g.vibrant(recent)
	partners := colorspace.SplitComplementaryColors(base)
	scheme := [3]string{base, partners[0], partners[1]}
	missing := g.rng.Intn(3)

	return SplitComplementary{
		answers: g.buildAnswers(scheme[missing], allBut(scheme[:], missing), colorspace.SplitComplementaryDistractors),
		Scheme:  scheme,
		Missing: missing,
	}
}

func (g *Generator) analogous(recent []string) Analogous {
	base := g.vibrant(recent)
	neighbors := colorspace.AnalogousColors(base, colorspace.DefaultAnalogousSpacing)
	scheme := [3]string{neighbors[0], base, neighbors[1]}
	missing := g.rng.Intn(3)

	return Analogous{
		answers: g.buildAnswers(scheme[missing], allBut(scheme[:], missing), colorspace.AnalogousDistractors),
		Scheme:  scheme,
		Missing: missing,
	}
}

func (g *Generator) tetradic(recent []string) Tetradic {
	base := g.vibrant(recent)
	partners := colorspace.TetradicColors(base)
	wheel := [4]string{base, partners[0], partners[1], partners[2]}
	missing := g.rng.Intn(4)

	return Tetradic{
		answers: g.buildAnswers(wheel[missing], allBut(wheel[:], missing), colorspace.TetradicDistractors),
		Wheel:   wheel,
		Missing: missing,
	}
}

func (g *Generator) doubleComplementary(recent []string) DoubleComplementary {
	base := g.vibrant(recent)
	partners := colorspace.DoubleComplementaryColors(base)
	scheme := [4]string{base, partners[0], partners[1], partners[2]}
	missing := g.rng.Intn(4)

	return DoubleComplementary{
		answers: g.buildAnswers(scheme[missing], allBut(scheme[:], missing), colorspace.DoubleComplementaryDistractors),
		Scheme:  scheme,
		Missing: missing,
	}
}

func (g *Generator) monochromatic(recent []string) Monochromatic {
	base := g.vibrant(recent)
	variants := colorspace.MonochromaticColors(base)
	shades := [3]string{variants[0], base, variants[1]}
	missing := g.rng.Intn(3)

	return Monochromatic{
		answers: g.buildAnswers(shades[missing], allBut(shades[:], missing), colorspace.MonochromaticDistractors),
		Shades:  shades,
		Missing: missing,
	}
}

// distractorFunc is the shape shared by the colorspace distractor generators.
type distractorFunc func(correct string, avoid []string, count int, rng *rand.Rand) []string

// buildAnswers assembles the choice set for a harmony round: type-specific
// distractors, pairwise-distance enforcement with bounded retries, fallback
// padding, then the correct answer shuffled in.
func (g *Generator) buildAnswers(correct string, visible []string, distract distractorFunc) answers {
	needed := g.gen.ChoiceCount - 1

	distractors := distract(correct, visible, needed, g.rng)
	distractors = g.enforceDistance(correct, visible, distractors, distract)
	distractors = g.pad(correct, visible, distractors)

	choices, idx := g.shuffleIn(correct, distractors)
	return answers{ChoiceColors: choices, Answer: idx}
}

// enforceDistance regenerates distractors that sit within MinChoiceDistance
// of the correct answer or of each other, up to MaxAttempts passes.
func (g *Generator) enforceDistance(correct string, visible, distractors []string, distract distractorFunc) []string {
	for attempt := 0; attempt < g.gen.MaxAttempts; attempt++ {
		kept := distractors[:0:0]
		for _, d := range distractors {
			if g.farEnough(d, append([]string{correct}, kept...)) {
				kept = append(kept, d)
			}
		}
		if len(kept) == len(distractors) {
			return kept
		}
		missing := len(distractors) - len(kept)
		kept = append(kept, distract(correct, append(visible, kept...), missing, g.rng)...)
		distractors = kept
	}
	return distractors
}

// pad fills the distractor set up to the required count when the offset menu
// under-supplied. Fallback policy: SimilarColor at PadVariance, accepted at
// half the configured minimum distance; after the attempt budget the last
// candidate is taken unconditionally so a round always has a full choice set.
func (g *Generator) pad(correct string, visible, distractors []string) []string {
	needed := g.gen.ChoiceCount - 1
	for len(distractors) < needed {
		var cand string
		for attempt := 0; attempt < g.gen.MaxAttempts; attempt++ {
			cand = colorspace.SimilarColor(correct, g.gen.PadVariance, g.rng)
			if colorspace.Equal(cand, correct) {
				continue
			}
			if g.farEnoughRelaxed(cand, append([]string{correct}, distractors...)) {
				break
			}
		}
		distractors = append(distractors, cand)
	}
	return distractors[:needed]
}

// shuffleIn places the correct answer at a uniformly random position among
// the distractors and returns the choice slice plus the correct index.
func (g *Generator) shuffleIn(correct string, distractors []string) ([]string, int) {
	idx := g.rng.Intn(len(distractors) + 1)
	choices := make([]string, 0, len(distractors)+1)
	choices = append(choices, distractors[:idx]...)
	choices = append(choices, correct)
	choices = append(choices, distractors[idx:]...)
	return choices, idx
}

func (g *Generator) vibrant(recent []string) string {
	return colorspace.VibrantColorAvoidingRecent(recent, g.gen.HueZones, g.rng)
}

func (g *Generator) farEnough(cand string, others []string) bool {
	for _, o := range others {
		if colorspace.Distance(cand, o) < g.gen.MinChoiceDistance {
			return false
		}
	}
	return true
}

func (g *Generator) farEnoughRelaxed(cand string, others []string) bool {
	for _, o := range others {
		if colorspace.Distance(cand, o) < g.gen.MinChoiceDistance/2 {
			return false
		}
	}
	return true
}
