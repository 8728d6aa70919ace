package world

import "math"

// Lava cracks pulse on a fixed cycle and are lethal for the tail of each cycle.
const (
	LavaCrackPeriod    = 4.0   // Seconds per pulse cycle
	LavaCrackThreshold = 0.625 // Fraction of the cycle after which lava is active
)

// Bomb is the occupancy record of a ticking bomb. The bomb/explosion stepper
// owns and mutates it; the grid only uses it to answer passability queries.
type Bomb struct {
	OwnerID     int
	Range       int
	FuseTimer   float64
	PlayerOnTop bool // Placer still stands on the tile and may walk off it
}

// Pickup is a power-up entity lying on a tile.
type Pickup interface {
	PowerUpType() PowerUpType
}

// Cell is one addressable grid position and its full mutable state.
// Position is fixed at construction; everything else resets through Clear.
type Cell struct {
	x, y int

	Type TileType

	// Contents revealed when a block is destroyed (owned by the destruction handler).
	HiddenPowerUp PowerUpType
	HasHiddenExit bool

	IsDestroying        bool
	DestructionProgress float64

	Bomb    *Bomb
	PowerUp Pickup

	IsExploding        bool
	ExplosionProgress  float64
	ExplosionDirection ExplosionDir
	AfterglowTimer     float64

	ConveyorDirection Dir

	TeleporterTarget   Coord
	TeleporterLinked   bool
	TeleporterColorID  int
	TeleporterCooldown float64

	LavaCrackTimer float64

	effects [EffectKindCount]float64 // Remaining seconds per effect kind
}

func newCell(x, y int) Cell {
	return Cell{x: x, y: y}
}

// X returns the cell column.
func (c *Cell) X() int { return c.x }

// Y returns the cell row.
func (c *Cell) Y() int { return c.y }

// Coord returns the cell position.
func (c *Cell) Coord() Coord { return Coord{X: c.x, Y: c.y} }

// Clear resets every field to its construction default. This is the single
// authoritative way to reset a tile.
func (c *Cell) Clear() {
	*c = newCell(c.x, c.y)
}

// IsWalkable reports whether a mover may enter the tile.
// Walls never pass; blocks pass only wall-passers; a bomb blocks unless the
// mover passes bombs or is the placer still standing on it.
func (c *Cell) IsWalkable(canPassWalls, canPassBombs bool) bool {
	switch c.Type {
	case TileWall:
		return false
	case TileBlock:
		if !canPassWalls {
			return false
		}
	}
	if c.Bomb != nil && !canPassBombs && !c.Bomb.PlayerOnTop {
		return false
	}
	return true
}

// CanExplosionPass reports whether a flame may continue through the tile.
// Walls and blocks stop it; a block absorbs the pulse and is destroyed by the
// stepper. hasFlamePass is accepted for API stability but currently does not
// change the result.
func (c *Cell) CanExplosionPass(hasFlamePass bool) bool {
	return c.Type != TileWall && c.Type != TileBlock
}

// IsLavaCrackActive reports whether a lava crack is in the lethal part of its cycle.
func (c *Cell) IsLavaCrackActive() bool {
	if c.Type != TileLavaCrack {
		return false
	}
	phase := math.Mod(c.LavaCrackTimer, LavaCrackPeriod)
	if phase < 0 {
		phase += LavaCrackPeriod
	}
	return phase > LavaCrackPeriod*LavaCrackThreshold
}

// IsTeleporterReady reports whether the tile can send a mover through now.
func (c *Cell) IsTeleporterReady() bool {
	return c.Type == TileTeleporter && c.TeleporterLinked && c.TeleporterCooldown <= 0
}

// PlaceBomb puts a bomb on the tile. Returns false if one is already there.
func (c *Cell) PlaceBomb(b *Bomb) bool {
	if c.Bomb != nil || b == nil {
		return false
	}
	c.Bomb = b
	return true
}

// RemoveBomb clears the bomb slot.
func (c *Cell) RemoveBomb() {
	c.Bomb = nil
}

// SetPowerUp puts a power-up entity on the tile. Returns false if the slot is taken.
func (c *Cell) SetPowerUp(p Pickup) bool {
	if c.PowerUp != nil || p == nil {
		return false
	}
	c.PowerUp = p
	return true
}

// RemovePowerUp clears the power-up slot.
func (c *Cell) RemovePowerUp() {
	c.PowerUp = nil
}

// ApplyEffect starts (or extends) a field effect. The longer duration wins.
func (c *Cell) ApplyEffect(kind EffectKind, seconds float64) {
	if kind >= EffectKindCount || seconds <= 0 {
		return
	}
	if seconds > c.effects[kind] {
		c.effects[kind] = seconds
	}
}

// HasEffect reports whether the effect is currently active.
func (c *Cell) HasEffect(kind EffectKind) bool {
	return kind < EffectKindCount && c.effects[kind] > 0
}

// EffectRemaining returns the seconds left on an effect (0 when inactive).
func (c *Cell) EffectRemaining(kind EffectKind) float64 {
	if kind >= EffectKindCount {
		return 0
	}
	return c.effects[kind]
}

// ActiveEffects returns the kinds currently active, in kind order.
func (c *Cell) ActiveEffects() []EffectKind {
	var active []EffectKind
	for k := EffectKind(0); k < EffectKindCount; k++ {
		if c.effects[k] > 0 {
			active = append(active, k)
		}
	}
	return active
}

// ClearEffects cancels every field effect.
func (c *Cell) ClearEffects() {
	c.effects = [EffectKindCount]float64{}
}

// TickEffects counts every field effect down by dt.
func (c *Cell) TickEffects(dt float64) {
	for k := range c.effects {
		if c.effects[k] > 0 {
			c.effects[k] = math.Max(0, c.effects[k]-dt)
		}
	}
}

// Tick advances every timer on the tile by dt seconds.
func (c *Cell) Tick(dt float64) {
	c.TickEffects(dt)
	if c.AfterglowTimer > 0 {
		c.AfterglowTimer = math.Max(0, c.AfterglowTimer-dt)
	}
	if c.TeleporterCooldown > 0 {
		c.TeleporterCooldown = math.Max(0, c.TeleporterCooldown-dt)
	}
	if c.Type == TileLavaCrack {
		c.LavaCrackTimer += dt
	}
}
