package game

import "testing"

func TestCastleProgressStages(t *testing.T) {
	milestones := []int{250, 750, 1500, 3000, 5000}

	tests := []struct {
		score     int
		wantStage int
	}{
		{0, 0},
		{249, 0},
		{250, 1},
		{749, 1},
		{750, 2},
		{1500, 3},
		{3000, 4},
		{4999, 4},
		{5000, 4}, // final stage is capped
		{99999, 4},
	}

	for _, tt := range tests {
		got := CastleProgressFor(tt.score, milestones)
		if got.Stage != tt.wantStage {
			t.Errorf("Score %d: expected stage %d, got %d", tt.score, tt.wantStage, got.Stage)
		}
	}
}

func TestCastleProgressPercentage(t *testing.T) {
	milestones := []int{250, 750, 1500, 3000, 5000}

	if got := CastleProgressFor(0, milestones); got.Percentage != 0 {
		t.Errorf("Score 0: expected 0%%, got %f", got.Percentage)
	}
	if got := CastleProgressFor(125, milestones); got.Percentage != 50 {
		t.Errorf("Score 125: expected 50%% toward the first milestone, got %f", got.Percentage)
	}
	// Halfway between 250 and 750
	if got := CastleProgressFor(500, milestones); got.Percentage != 50 {
		t.Errorf("Score 500: expected 50%% within stage 1, got %f", got.Percentage)
	}
	if got := CastleProgressFor(5000, milestones); got.Percentage != 100 {
		t.Errorf("Final milestone: expected 100%%, got %f", got.Percentage)
	}
	if got := CastleProgressFor(99999, milestones); got.Percentage != 100 {
		t.Errorf("Beyond final milestone: expected 100%%, got %f", got.Percentage)
	}
}

func TestCastleProgressNoMilestones(t *testing.T) {
	got := CastleProgressFor(1000, nil)
	if got.Stage != 0 || got.Percentage != 0 {
		t.Errorf("Empty milestones should yield zero progress, got %+v", got)
	}
}
