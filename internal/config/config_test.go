package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded BomberConfig
	if err := yaml.Unmarshal(defaultBomberYAML, &embedded); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	want := DefaultBomberConfig()

	if embedded.Level != want.Level {
		t.Errorf("Level = %+v, expected %+v", embedded.Level, want.Level)
	}
	if embedded.Player != want.Player {
		t.Errorf("Player = %+v, expected %+v", embedded.Player, want.Player)
	}
	if embedded.PowerUps != want.PowerUps {
		t.Errorf("PowerUps = %+v, expected %+v", embedded.PowerUps, want.PowerUps)
	}
	if embedded.Difficulty != want.Difficulty {
		t.Errorf("Difficulty = %+v, expected %+v", embedded.Difficulty, want.Difficulty)
	}
	if len(embedded.Enemies.Types) != len(want.Enemies.Types) {
		t.Fatalf("Enemies.Types = %v, expected %v", embedded.Enemies.Types, want.Enemies.Types)
	}
	for i := range want.Enemies.Types {
		if embedded.Enemies.Types[i] != want.Enemies.Types[i] {
			t.Errorf("Enemies.Types[%d] = %q, expected %q", i, embedded.Enemies.Types[i], want.Enemies.Types[i])
		}
	}
}

func TestLoadBomberCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	data := []byte("level:\n  layout: Maze\n  mechanic: Ice\n  block_density: 0.3\nplayer:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBomber(path)
	if err != nil {
		t.Fatalf("LoadBomber: %v", err)
	}
	if cfg.Level.Layout != "Maze" || cfg.Level.Mechanic != "Ice" {
		t.Errorf("Level = %+v, expected Maze/Ice", cfg.Level)
	}
	if cfg.Level.BlockDensity != 0.3 {
		t.Errorf("BlockDensity = %v, expected 0.3", cfg.Level.BlockDensity)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
}

func TestLoadBomberErrors(t *testing.T) {
	if _, err := LoadBomber(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("level: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBomber(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestApplyBomberPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBomberConfig()
			ApplyBomberPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Player.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultBomberConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back BomberConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Player != DefaultBomberConfig().Player {
		t.Errorf("round trip Player = %+v", back.Player)
	}
}
