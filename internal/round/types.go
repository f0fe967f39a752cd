// Package round builds playable rounds: a visual prompt, one correct answer
// and a shuffled set of plausible wrong choices for every harmony type.
package round

import "github.com/askoryk/chromatch/internal/harmony"

// Round is one question instance. It is a closed sum: exactly one variant
// exists per harmony type, so consumer switches can be exhaustive. Rounds are
// immutable once generated; the countdown lives in the game engine.
type Round interface {
	// ChallengeType returns the harmony type discriminant.
	ChallengeType() harmony.Type
	// Choices returns the answer colors in display order.
	Choices() []string
	// CorrectIndex returns the index of the correct answer in Choices.
	CorrectIndex() int
	// Visible returns the relationship colors shown in the prompt.
	Visible() []string

	sealed()
}

// answers carries the choice set shared by all variants.
type answers struct {
	ChoiceColors []string
	Answer       int
}

func (a answers) Choices() []string { return a.ChoiceColors }
func (a answers) CorrectIndex() int { return a.Answer }
func (a answers) sealed()           {}

// ColorMatch shows a single target swatch; the correct choice is the exact
// same color among near-identical distractors.
type ColorMatch struct {
	answers
	Target string
}

func (ColorMatch) ChallengeType() harmony.Type { return harmony.ColorMatch }
func (r ColorMatch) Visible() []string         { return []string{r.Target} }

// Complementary shows one color of a 180° pair; the other is missing.
type Complementary struct {
	answers
	Pair    [2]string
	Missing int
}

func (Complementary) ChallengeType() harmony.Type { return harmony.Complementary }
func (r Complementary) Visible() []string         { return allBut(r.Pair[:], r.Missing) }

// Triadic shows two corners of a 120° wheel triple.
type Triadic struct {
	answers
	Wheel   [3]string
	Missing int
}

func (Triadic) ChallengeType() harmony.Type { return harmony.Triadic }
func (r Triadic) Visible() []string         { return allBut(r.Wheel[:], r.Missing) }

// SplitComplementary shows two of base plus its 150°/210° partners.
type SplitComplementary struct {
	answers
	Scheme  [3]string
	Missing int
}

func (SplitComplementary) ChallengeType() harmony.Type { return harmony.SplitComplementary }
func (r SplitComplementary) Visible() []string         { return allBut(r.Scheme[:], r.Missing) }

// Analogous shows two of three hue neighbors.
type Analogous struct {
	answers
	Scheme  [3]string
	Missing int
}

func (Analogous) ChallengeType() harmony.Type { return harmony.Analogous }
func (r Analogous) Visible() []string         { return allBut(r.Scheme[:], r.Missing) }

// Tetradic shows three corners of a 90° square.
type Tetradic struct {
	answers
	Wheel   [4]string
	Missing int
}

func (Tetradic) ChallengeType() harmony.Type { return harmony.Tetradic }
func (r Tetradic) Visible() []string         { return allBut(r.Wheel[:], r.Missing) }

// DoubleComplementary shows three colors of two complementary pairs.
type DoubleComplementary struct {
	answers
	Scheme  [4]string
	Missing int
}

func (DoubleComplementary) ChallengeType() harmony.Type { return harmony.DoubleComplementary }
func (r DoubleComplementary) Visible() []string         { return allBut(r.Scheme[:], r.Missing) }

// Monochromatic shows two of three same-hue shades.
type Monochromatic struct {
	answers
	Shades  [3]string
	Missing int
}

func (Monochromatic) ChallengeType() harmony.Type { return harmony.Monochromatic }
func (r Monochromatic) Visible() []string         { return allBut(r.Shades[:], r.Missing) }

// allBut returns colors with the element at skip removed.
func allBut(colors []string, skip int) []string {
	out := make([]string, 0, len(colors)-1)
	for i, c := range colors {
		if i != skip {
			out = append(out, c)
		}
	}
	return out
}
