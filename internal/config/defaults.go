package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default bomber configuration.
// It mirrors defaults/bomber.yaml.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Level: BomberLevel{
			Layout:        "Classic",
			Mechanic:      "None",
			BlockDensity:  0.45,
			PowerUpChance: 0.2,
			Exit:          true,
		},
		Player: BomberPlayer{
			Speed:            150,
			Lives:            3,
			InvulnerableTime: 2.0,
			TeleportCooldown: 1.0,
			IceSpeedBonus:    1.5,
		},
		Enemies: BomberEnemies{
			Count:       4,
			Types:       []string{"Balloom", "Oneal", "Doll", "Minvo"},
			MinDistance: 5,
		},
		PowerUps: BomberPowerUps{
			SpawnInterval: 6.0,
			Lifetime:      10.0,
			MaxOnField:    3,
			Score:         50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.8,
				LifetimeReduction: 0.5,
				ExtraEnemies:      4,
			},
		},
	}
}
