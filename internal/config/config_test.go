package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default failed to parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Embedded YAML and hardcoded default diverged:\nyaml: %+v\ncode: %+v", cfg, Default())
	}
}

func TestDefaultSanity(t *testing.T) {
	cfg := Default()

	if cfg.Generation.ChoiceCount < 2 {
		t.Errorf("Need at least 2 choices, got %d", cfg.Generation.ChoiceCount)
	}
	if cfg.Timing.MinRoundMs > cfg.Timing.BaseRoundMs {
		t.Errorf("Countdown floor %d exceeds base %d", cfg.Timing.MinRoundMs, cfg.Timing.BaseRoundMs)
	}
	if cfg.Difficulty.MinVariance > cfg.Difficulty.BaseVariance {
		t.Errorf("Variance floor %.1f exceeds base %.1f", cfg.Difficulty.MinVariance, cfg.Difficulty.BaseVariance)
	}
	if cfg.Rules.MaxWrongAnswers <= 0 {
		t.Errorf("MaxWrongAnswers must be positive, got %d", cfg.Rules.MaxWrongAnswers)
	}
	for i := 1; i < len(cfg.Rules.CastleMilestones); i++ {
		if cfg.Rules.CastleMilestones[i] <= cfg.Rules.CastleMilestones[i-1] {
			t.Errorf("Castle milestones not ascending at %d", i)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("scoring:\n  base_points: 99\nrules:\n  max_wrong_answers: 5\n")
	if err := os.WriteFile(custom, content, 0o644); err != nil {
		t.Fatalf("Cannot write fixture: %v", err)
	}

	cfg, err := Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.BasePoints != 99 {
		t.Errorf("Expected base_points 99 from custom config, got %d", cfg.Scoring.BasePoints)
	}
	if cfg.Rules.MaxWrongAnswers != 5 {
		t.Errorf("Expected max_wrong_answers 5, got %d", cfg.Rules.MaxWrongAnswers)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Loading a missing explicit path should fail")
	}
}

func TestLoadInvalidCustomPathFails(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(custom, []byte("scoring: [not a map"), 0o644); err != nil {
		t.Fatalf("Cannot write fixture: %v", err)
	}
	if _, err := Load(custom); err == nil {
		t.Error("Loading malformed YAML should fail")
	}
}

func TestApplyPresetEasy(t *testing.T) {
	cfg := Default()
	base := Default()
	ApplyPreset(&cfg, PresetEasy)

	if cfg.Timing.BaseRoundMs <= base.Timing.BaseRoundMs {
		t.Error("Easy preset should lengthen the countdown")
	}
	if cfg.Difficulty.BaseVariance <= base.Difficulty.BaseVariance {
		t.Error("Easy preset should loosen distractors")
	}
}

func TestApplyPresetHard(t *testing.T) {
	cfg := Default()
	base := Default()
	ApplyPreset(&cfg, PresetHard)

	if cfg.Timing.BaseRoundMs >= base.Timing.BaseRoundMs {
		t.Error("Hard preset should shorten the countdown")
	}
	if cfg.Difficulty.BaseVariance >= base.Difficulty.BaseVariance {
		t.Error("Hard preset should tighten distractors")
	}
	if cfg.Timing.MinRoundMs <= 0 {
		t.Errorf("Hard preset pushed the countdown floor to %d", cfg.Timing.MinRoundMs)
	}
}

func TestApplyPresetFixed(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetFixed)

	if cfg.Timing.ReductionPerLevel != 0 {
		t.Errorf("Fixed preset should zero the countdown curve, got %d", cfg.Timing.ReductionPerLevel)
	}
	if cfg.Difficulty.ReductionPerLevel != 0 {
		t.Errorf("Fixed preset should zero the variance curve, got %.1f", cfg.Difficulty.ReductionPerLevel)
	}
}

func TestApplyPresetNormalIsNoop(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetNormal)

	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("Normal preset should leave the config untouched")
	}
}
