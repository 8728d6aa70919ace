// Package config provides YAML-based game configuration loading and
// difficulty management for the bomber sandbox.
package config

// BomberConfig contains all configuration for the bomber sandbox.
type BomberConfig struct {
	Level      BomberLevel      `yaml:"level"`
	Player     BomberPlayer     `yaml:"player"`
	Enemies    BomberEnemies    `yaml:"enemies"`
	PowerUps   BomberPowerUps   `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BomberLevel defines how the level is generated.
type BomberLevel struct {
	Layout        string  `yaml:"layout"`   // Layout name, e.g. "Classic"
	Mechanic      string  `yaml:"mechanic"` // World mechanic name, e.g. "Ice"
	BlockDensity  float64 `yaml:"block_density"`
	PowerUpChance float64 `yaml:"powerup_chance"` // Chance a block hides a power-up
	Exit          bool    `yaml:"exit"`           // Hide an exit under one block
}

// BomberPlayer defines player parameters.
type BomberPlayer struct {
	Speed            float64 `yaml:"speed"` // Pixels per second
	Lives            int     `yaml:"lives"`
	InvulnerableTime float64 `yaml:"invulnerable_time"` // Seconds of grace after a hit
	TeleportCooldown float64 `yaml:"teleport_cooldown"` // Seconds a used teleporter stays cold
	IceSpeedBonus    float64 `yaml:"ice_speed_bonus"`   // Multiplier while sliding on ice
}

// BomberEnemies defines the initial enemy population.
type BomberEnemies struct {
	Count       int      `yaml:"count"`
	Types       []string `yaml:"types"`        // Archetype names drawn at random
	MinDistance int      `yaml:"min_distance"` // Minimum spawn distance from the player, in tiles
}

// BomberPowerUps defines the field power-up spawner.
type BomberPowerUps struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	Lifetime      float64 `yaml:"lifetime"`       // Seconds a spawned power-up stays; 0 = forever
	MaxOnField    int     `yaml:"max_on_field"`
	Score         int     `yaml:"score"` // Points per pickup
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	LifetimeReduction float64 `yaml:"lifetime_reduction"` // Fraction of power-up lifetime removed at max difficulty
	ExtraEnemies      int     `yaml:"extra_enemies"`      // Enemies added by max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
