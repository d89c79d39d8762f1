package config

import "testing"

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5, IntervalReduction: 0.5},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0},
		{500, 0.5},
		{1000, 1},
		{5000, 1},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(0.3)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true, want false")
	}
	if got := d.Level(1000, 0); got != 0.3 {
		t.Errorf("Level = %v, want initial 0.3", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())
	if got := d.Speed(10, 1000, 0); got != 15 {
		t.Errorf("Speed at max = %v, want 15", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.Interval(3000, 0, 0); got != 3000 {
		t.Errorf("Interval at level 0 = %d, want 3000", got)
	}
	if got := d.Interval(3000, 1000, 0); got != 1500 {
		t.Errorf("Interval at max = %d, want 1500", got)
	}

	cfg := testDifficulty()
	cfg.Scaling.IntervalReduction = 2
	d = NewDifficultyManager(cfg)
	if got := d.Interval(3000, 1000, 0); got != 750 {
		t.Errorf("Interval floor = %d, want 750", got)
	}
}
