// Package world holds the spatial ground truth of a bomber level: the fixed
// tile grid, per-tile semantics and the hazard/effect state stored on each tile.
// The package is UI-agnostic and never publishes events; all mutation happens
// synchronously on the simulation thread.
package world

// TileType is the terrain kind of a single cell.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileWall
	TileBlock
	TileExit
	TileIce
	TileConveyor
	TileTeleporter
	TileLavaCrack
	TilePlatformGap
)

// String returns the name of the tile type.
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileBlock:
		return "Block"
	case TileExit:
		return "Exit"
	case TileIce:
		return "Ice"
	case TileConveyor:
		return "Conveyor"
	case TileTeleporter:
		return "Teleporter"
	case TileLavaCrack:
		return "LavaCrack"
	case TilePlatformGap:
		return "PlatformGap"
	default:
		return "Unknown"
	}
}

// IsMechanic reports whether the tile is a world-mechanic tile.
func (t TileType) IsMechanic() bool {
	switch t {
	case TileIce, TileConveyor, TileTeleporter, TileLavaCrack, TilePlatformGap:
		return true
	}
	return false
}

// ExplosionDir classifies which flame segment a burning tile shows.
type ExplosionDir uint8

const (
	ExplosionNone ExplosionDir = iota
	ExplosionCenter
	ExplosionHorizontal
	ExplosionVertical
	ExplosionEndUp
	ExplosionEndRight
	ExplosionEndDown
	ExplosionEndLeft
)

// PowerUpType identifies a collectible power-up, either hidden under a block
// or lying on a tile as an entity.
type PowerUpType uint8

const (
	PowerUpNone PowerUpType = iota
	PowerUpBombUp
	PowerUpFireUp
	PowerUpSpeedUp
	PowerUpWallPass
	PowerUpBombPass
	PowerUpFlamePass
	PowerUpDetonator
	PowerUpInvincible
	PowerUpExtraLife
	powerUpCount
)

// PowerUpTypes lists every real power-up type (PowerUpNone excluded).
func PowerUpTypes() []PowerUpType {
	types := make([]PowerUpType, 0, powerUpCount-1)
	for t := PowerUpBombUp; t < powerUpCount; t++ {
		types = append(types, t)
	}
	return types
}

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpNone:
		return "None"
	case PowerUpBombUp:
		return "BombUp"
	case PowerUpFireUp:
		return "FireUp"
	case PowerUpSpeedUp:
		return "SpeedUp"
	case PowerUpWallPass:
		return "WallPass"
	case PowerUpBombPass:
		return "BombPass"
	case PowerUpFlamePass:
		return "FlamePass"
	case PowerUpDetonator:
		return "Detonator"
	case PowerUpInvincible:
		return "Invincible"
	case PowerUpExtraLife:
		return "ExtraLife"
	default:
		return "Unknown"
	}
}

// EffectKind is one of the independently timed field effects a tile can carry.
type EffectKind uint8

const (
	EffectFreeze EffectKind = iota
	EffectLavaPuddle
	EffectSmoke
	EffectPoison
	EffectGravityWell
	EffectTimeWarp
	EffectBlackHole
	EffectKindCount
)

// String returns the name of the effect kind.
func (e EffectKind) String() string {
	switch e {
	case EffectFreeze:
		return "Freeze"
	case EffectLavaPuddle:
		return "LavaPuddle"
	case EffectSmoke:
		return "Smoke"
	case EffectPoison:
		return "Poison"
	case EffectGravityWell:
		return "GravityWell"
	case EffectTimeWarp:
		return "TimeWarp"
	case EffectBlackHole:
		return "BlackHole"
	default:
		return "Unknown"
	}
}

// IsHarmful reports whether standing in the effect damages the player.
func (e EffectKind) IsHarmful() bool {
	return e == EffectLavaPuddle || e == EffectPoison || e == EffectBlackHole
}
