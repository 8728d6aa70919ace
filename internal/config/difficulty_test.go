package config

import "testing"

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling: ScalingConfig{
			SpeedMultiplier:   1.0,
			LifetimeReduction: 0.5,
			ExtraEnemies:      4,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); got != tc.expected {
			t.Errorf("Level(ticks=%d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}
}

func TestDifficultyDisabledKeepsInitialLevel(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 1000); got != 0.3 {
		t.Errorf("Level = %v, expected 0.3", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.Speed(1.0, 0, 100); got != 2.0 {
		t.Errorf("Speed at max = %v, expected 2.0", got)
	}
	if got := d.Lifetime(10, 0, 100); got != 5 {
		t.Errorf("Lifetime at max = %v, expected 5", got)
	}
	if got := d.Lifetime(4, 0, 100); got != 3 {
		t.Errorf("Lifetime should floor at 3, got %v", got)
	}
	if got := d.Lifetime(0, 0, 100); got != 0 {
		t.Errorf("Infinite lifetime should stay 0, got %v", got)
	}
	if got := d.EnemyCount(4, 0, 50); got != 6 {
		t.Errorf("EnemyCount at half = %d, expected 6", got)
	}
}
