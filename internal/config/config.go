// Package config provides YAML-based configuration loading and difficulty
// presets for the Chromatch game.
package config

// Config contains all tunables for a Chromatch session.
type Config struct {
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Generation GenerationConfig `yaml:"generation"`
	Rules      RulesConfig      `yaml:"rules"`
}

// ScoringConfig defines how points are awarded for a correct answer.
type ScoringConfig struct {
	BasePoints  int     `yaml:"base_points"`
	StreakBonus int     `yaml:"streak_bonus"` // multiplied by the new streak value
	TimeBonus   float64 `yaml:"time_bonus"`   // multiplied by timeLeft percent, color-match only
	LevelBonus  int     `yaml:"level_bonus"`  // multiplied by the current level
}

// TimingConfig defines the round countdown and transition delays, all in
// milliseconds.
type TimingConfig struct {
	BaseRoundMs       int `yaml:"base_round_ms"`          // countdown at level 1
	ReductionPerLevel int `yaml:"reduction_per_level_ms"` // countdown shrink per level
	MinRoundMs        int `yaml:"min_round_ms"`           // countdown floor
	FeedbackMs        int `yaml:"feedback_ms"`            // input-locked feedback window
	TransitionMs      int `yaml:"transition_ms"`          // delay before the next round
	GameEndDelayMs    int `yaml:"game_end_delay_ms"`      // delay before the ended state
}

// DifficultyConfig defines the color-match discrimination curve. Variance
// feeds SimilarColor: lower variance means distractors hug the target.
type DifficultyConfig struct {
	BaseVariance      float64 `yaml:"base_variance"`
	ReductionPerLevel float64 `yaml:"reduction_per_level"`
	MinVariance       float64 `yaml:"min_variance"`
}

// GenerationConfig defines round construction constraints.
type GenerationConfig struct {
	ChoiceCount       int     `yaml:"choice_count"`        // answers per round
	MinChoiceDistance float64 `yaml:"min_choice_distance"` // pairwise perceptual floor
	PadVariance       float64 `yaml:"pad_variance"`        // variance for fallback padding
	MaxAttempts       int     `yaml:"max_attempts"`        // regeneration bound
	HueZones          int     `yaml:"hue_zones"`           // arcs for recent-hue avoidance
	AnswerHistory     int     `yaml:"answer_history"`      // answer-color ring size
}

// RulesConfig defines session rules and reward milestones.
type RulesConfig struct {
	MaxWrongAnswers  int   `yaml:"max_wrong_answers"`
	StreakMilestones []int `yaml:"streak_milestones"`
	CastleMilestones []int `yaml:"castle_milestones"`
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ApplyPreset adjusts the curves for a difficulty preset. "fixed" disables
// per-level progression entirely so the game stays at its initial pace.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Timing.BaseRoundMs += 3000
		cfg.Timing.MinRoundMs += 1500
		cfg.Difficulty.BaseVariance += 8
		cfg.Difficulty.MinVariance += 5
	case PresetHard:
		cfg.Timing.BaseRoundMs -= 2000
		cfg.Timing.MinRoundMs -= 1000
		cfg.Difficulty.BaseVariance -= 6
		cfg.Difficulty.MinVariance -= 2
	case PresetFixed:
		cfg.Timing.ReductionPerLevel = 0
		cfg.Difficulty.ReductionPerLevel = 0
	}
}
