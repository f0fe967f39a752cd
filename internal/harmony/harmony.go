// Package harmony defines the eight challenge types, their unlock
// thresholds against lifetime score, and the weighted selection policy that
// rotates challenges during play.
package harmony

import "fmt"

// Type identifies a color harmony challenge.
type Type string

const (
	ColorMatch         Type = "color-match"
	Triadic            Type = "triadic"
	Complementary      Type = "complementary"
	SplitComplementary Type = "split-complementary"
	Analogous          Type = "analogous"
	Tetradic           Type = "tetradic"
	DoubleComplementary Type = "double-complementary"
	Monochromatic      Type = "monochromatic"
)

// Harmony is one entry of the static challenge table.
type Harmony struct {
	Type            Type
	Title           string
	UnlockThreshold int // cumulative lifetime score required
	Weight          int // relative pick weight among unlocked types
}

// Table lists all harmonies in unlock order. Thresholds are monotonic with
// difficulty; weights keep early types frequent even after everything is
// unlocked.
var Table = []Harmony{
	{Type: ColorMatch, Title: "Color Match", UnlockThreshold: 0, Weight: 30},
	{Type: Triadic, Title: "Triadic", UnlockThreshold: 0, Weight: 20},
	{Type: Complementary, Title: "Complementary", UnlockThreshold: 500, Weight: 18},
	{Type: SplitComplementary, Title: "Split Complementary", UnlockThreshold: 2000, Weight: 12},
	{Type: Analogous, Title: "Analogous", UnlockThreshold: 5000, Weight: 10},
	{Type: Tetradic, Title: "Tetradic", UnlockThreshold: 8000, Weight: 6},
	{Type: DoubleComplementary, Title: "Double Complementary", UnlockThreshold: 12000, Weight: 5},
	{Type: Monochromatic, Title: "Monochromatic", UnlockThreshold: 20000, Weight: 4},
}

func init() {
	// A zero weight sum among the always-unlocked types would make the
	// roulette draw in SelectNext unwinnable. Fail loudly at startup instead
	// of falling back silently at runtime.
	sum := 0
	for _, h := range Table {
		if h.Weight < 0 {
			panic(fmt.Sprintf("harmony: negative weight for %s", h.Type))
		}
		if h.UnlockThreshold == 0 {
			sum += h.Weight
		}
	}
	if sum <= 0 {
		panic("harmony: no positive weight among always-unlocked types")
	}
}

// ByType returns the table entry for t, or false when t is unknown.
func ByType(t Type) (Harmony, bool) {
	for _, h := range Table {
		if h.Type == t {
			return h, true
		}
	}
	return Harmony{}, false
}

// Title returns the display name for t, falling back to the raw type string.
func Title(t Type) string {
	if h, ok := ByType(t); ok {
		return h.Title
	}
	return string(t)
}

// All returns the types in unlock order.
func All() []Type {
	out := make([]Type, len(Table))
	for i, h := range Table {
		out[i] = h.Type
	}
	return out
}
