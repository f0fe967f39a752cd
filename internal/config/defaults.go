package config

import (
	_ "embed"
)

//go:embed defaults/chromatch.yaml
var defaultYAML []byte

// Default returns the built-in Chromatch configuration.
func Default() Config {
	return Config{
		Scoring: ScoringConfig{
			BasePoints:  10,
			StreakBonus: 5,
			TimeBonus:   0.3,
			LevelBonus:  2,
		},
		Timing: TimingConfig{
			BaseRoundMs:       10000,
			ReductionPerLevel: 250,
			MinRoundMs:        4000,
			FeedbackMs:        600,
			TransitionMs:      1000,
			GameEndDelayMs:    1500,
		},
		Difficulty: DifficultyConfig{
			BaseVariance:      30,
			ReductionPerLevel: 1.5,
			MinVariance:       8,
		},
		Generation: GenerationConfig{
			ChoiceCount:       4,
			MinChoiceDistance: 10,
			PadVariance:       20,
			MaxAttempts:       12,
			HueZones:          6,
			AnswerHistory:     6,
		},
		Rules: RulesConfig{
			MaxWrongAnswers:  3,
			StreakMilestones: []int{3, 5, 10, 15, 20, 25},
			CastleMilestones: []int{250, 750, 1500, 3000, 5000},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
