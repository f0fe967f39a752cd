package round

import (
	"math/rand"
	"testing"

	"github.com/askoryk/chromatch/internal/colorspace"
	"github.com/askoryk/chromatch/internal/config"
	"github.com/askoryk/chromatch/internal/harmony"
)

func testGenerator(seed int64) *Generator {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(seed))
	return NewGenerator(cfg.Generation, cfg.Difficulty, rng)
}

var allTypes = []harmony.Type{
	harmony.ColorMatch,
	harmony.Complementary,
	harmony.Triadic,
	harmony.SplitComplementary,
	harmony.Analogous,
	harmony.Tetradic,
	harmony.DoubleComplementary,
	harmony.Monochromatic,
}

func TestGenerateChoiceSetShape(t *testing.T) {
	for _, typ := range allTypes {
		t.Run(string(typ), func(t *testing.T) {
			g := testGenerator(42)
			for trial := 0; trial < 30; trial++ {
				r := g.Generate(typ, 1, nil)

				if r.ChallengeType() != typ {
					t.Fatalf("Wrong challenge type: %s", r.ChallengeType())
				}
				choices := r.Choices()
				if len(choices) != 4 {
					t.Fatalf("Expected 4 choices, got %d", len(choices))
				}
				idx := r.CorrectIndex()
				if idx < 0 || idx >= len(choices) {
					t.Fatalf("Correct index %d out of range", idx)
				}

				// The correct answer appears exactly once
				correct := choices[idx]
				count := 0
				for _, c := range choices {
					if colorspace.Equal(c, correct) {
						count++
					}
				}
				if count != 1 {
					t.Fatalf("Correct color %s appears %d times in %v", correct, count, choices)
				}
			}
		})
	}
}

func TestGenerateCorrectMatchesScheme(t *testing.T) {
	g := testGenerator(7)

	for trial := 0; trial < 30; trial++ {
		for _, typ := range allTypes {
			r := g.Generate(typ, 1, nil)
			correct := r.Choices()[r.CorrectIndex()]

			var want string
			switch v := r.(type) {
			case ColorMatch:
				want = v.Target
			case Complementary:
				want = v.Pair[v.Missing]
			case Triadic:
				want = v.Wheel[v.Missing]
			case SplitComplementary:
				want = v.Scheme[v.Missing]
			case Analogous:
				want = v.Scheme[v.Missing]
			case Tetradic:
				want = v.Wheel[v.Missing]
			case DoubleComplementary:
				want = v.Scheme[v.Missing]
			case Monochromatic:
				want = v.Shades[v.Missing]
			default:
				t.Fatalf("Unknown round variant %T", r)
			}

			if !colorspace.Equal(correct, want) {
				t.Errorf("%s: correct choice %s does not match missing scheme color %s",
					typ, correct, want)
			}
		}
	}
}

func TestGenerateVisibleExcludesMissing(t *testing.T) {
	tests := []struct {
		typ        harmony.Type
		schemeSize int
	}{
		{harmony.ColorMatch, 1}, // target is fully visible
		{harmony.Complementary, 2},
		{harmony.Triadic, 3},
		{harmony.SplitComplementary, 3},
		{harmony.Analogous, 3},
		{harmony.Tetradic, 4},
		{harmony.DoubleComplementary, 4},
		{harmony.Monochromatic, 3},
	}

	g := testGenerator(9)
	for _, tt := range tests {
		r := g.Generate(tt.typ, 1, nil)
		visible := r.Visible()

		wantLen := tt.schemeSize - 1
		if tt.typ == harmony.ColorMatch {
			wantLen = 1
		}
		if len(visible) != wantLen {
			t.Errorf("%s: expected %d visible colors, got %d", tt.typ, wantLen, len(visible))
		}

		if tt.typ == harmony.ColorMatch {
			continue
		}
		correct := r.Choices()[r.CorrectIndex()]
		for _, v := range visible {
			if colorspace.Equal(v, correct) {
				t.Errorf("%s: missing color %s leaked into the visible prompt", tt.typ, correct)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, typ := range allTypes {
		g1 := testGenerator(12345)
		g2 := testGenerator(12345)

		r1 := g1.Generate(typ, 3, []string{"#E74C3C"})
		r2 := g2.Generate(typ, 3, []string{"#E74C3C"})

		c1, c2 := r1.Choices(), r2.Choices()
		if len(c1) != len(c2) {
			t.Fatalf("%s: choice count mismatch", typ)
		}
		for i := range c1 {
			if c1[i] != c2[i] {
				t.Errorf("%s: choice %d mismatch: %s vs %s", typ, i, c1[i], c2[i])
			}
		}
		if r1.CorrectIndex() != r2.CorrectIndex() {
			t.Errorf("%s: correct index mismatch: %d vs %d", typ, r1.CorrectIndex(), r2.CorrectIndex())
		}
	}
}

func TestGenerateDistractorsDifferFromCorrect(t *testing.T) {
	g := testGenerator(3)
	for trial := 0; trial < 50; trial++ {
		for _, typ := range allTypes {
			r := g.Generate(typ, 1, nil)
			choices := r.Choices()
			correct := choices[r.CorrectIndex()]
			for i, c := range choices {
				if i == r.CorrectIndex() {
					continue
				}
				if colorspace.Equal(c, correct) {
					t.Errorf("%s: distractor %d duplicates the correct color %s", typ, i, correct)
				}
			}
		}
	}
}

func TestGenerateColorMatchDistanceFloor(t *testing.T) {
	cfg := config.Default()
	g := testGenerator(21)

	for trial := 0; trial < 50; trial++ {
		r := g.Generate(harmony.ColorMatch, 1, nil)
		choices := r.Choices()
		correct := choices[r.CorrectIndex()]
		for i, c := range choices {
			if i == r.CorrectIndex() {
				continue
			}
			// Padding may accept half the configured floor
			if d := colorspace.Distance(c, correct); d < cfg.Generation.MinChoiceDistance/2 {
				t.Errorf("Distractor %s within relaxed floor of target %s (d=%.2f)", c, correct, d)
			}
		}
	}
}

func TestGenerateUnknownTypeFallsBack(t *testing.T) {
	g := testGenerator(5)
	r := g.Generate(harmony.Type("mystery"), 1, nil)
	if r.ChallengeType() != harmony.ColorMatch {
		t.Errorf("Unknown type should fall back to color-match, got %s", r.ChallengeType())
	}
}

func TestNewGeneratorDefaults(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := NewGenerator(config.GenerationConfig{}, config.DifficultyConfig{BaseVariance: 20, MinVariance: 8}, rng)

	r := g.Generate(harmony.Complementary, 1, nil)
	if len(r.Choices()) != 4 {
		t.Errorf("Zero-value generation config should default to 4 choices, got %d", len(r.Choices()))
	}
}
