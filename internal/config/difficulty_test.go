package config

import "testing"

func TestDifficultyDisabledKeepsBasePace(t *testing.T) {
	dm := NewDifficultyManager(DefaultSnakeConfig().Difficulty)

	if dm.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	for _, score := range []int{0, 100, 10000} {
		if got := dm.MoveEvery(6, score, 0); got != 6 {
			t.Errorf("MoveEvery(6, %d) = %d, expected 6", score, got)
		}
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		level    float64
		interval int
	}{
		{0, 0.0, 8},
		{50, 0.5, 5},  // 8 / 1.5 = 5.33
		{100, 1.0, 4}, // 8 / 2
		{500, 1.0, 4}, // clamped
	}
	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := dm.MoveEvery(8, tc.score, 0); got != tc.interval {
			t.Errorf("MoveEvery(8, %d) = %d, expected %d", tc.score, got, tc.interval)
		}
	}
}

func TestDifficultyNeverBelowOneFrame(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 50},
	}
	dm := NewDifficultyManager(cfg)
	if got := dm.MoveEvery(2, 0, 1000); got != 1 {
		t.Errorf("MoveEvery() = %d, expected floor of 1", got)
	}
}
