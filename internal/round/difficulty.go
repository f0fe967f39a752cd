package round

import (
	"time"

	"github.com/askoryk/chromatch/internal/config"
)

// DifficultyForLevel returns the color-match distractor variance for a level.
// Linearly decreases toward the floor: lower variance, harder discrimination.
func DifficultyForLevel(cfg config.DifficultyConfig, level int) float64 {
	v := cfg.BaseVariance - float64(level)*cfg.ReductionPerLevel
	if v < cfg.MinVariance {
		v = cfg.MinVariance
	}
	return v
}

// TimeForLevel returns the round countdown for a level. Same linear-clamp
// shape as the difficulty curve.
func TimeForLevel(cfg config.TimingConfig, level int) time.Duration {
	ms := cfg.BaseRoundMs - level*cfg.ReductionPerLevel
	if ms < cfg.MinRoundMs {
		ms = cfg.MinRoundMs
	}
	return time.Duration(ms) * time.Millisecond
}
