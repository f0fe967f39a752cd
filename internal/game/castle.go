package game

// CastleProgress is the cosmetic 5-stage reward derived from the session
// score. Stage is ordinal (0-4); Percentage is in-stage completion, 0-100.
type CastleProgress struct {
	Stage      int
	Percentage float64
}

// CastleProgressFor maps a score against ascending milestones. Purely
// derived; never part of the engine's mutable state.
func CastleProgressFor(score int, milestones []int) CastleProgress {
	if len(milestones) == 0 {
		return CastleProgress{}
	}

	stage := 0
	for _, m := range milestones {
		if score >= m {
			stage++
		}
	}
	if stage >= len(milestones) {
		return CastleProgress{Stage: len(milestones) - 1, Percentage: 100}
	}

	lower := 0
	if stage > 0 {
		lower = milestones[stage-1]
	}
	upper := milestones[stage]
	pct := 100 * float64(score-lower) / float64(upper-lower)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return CastleProgress{Stage: stage, Percentage: pct}
}
