package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/collision"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Attack cycle timings shared by every archetype.
const (
	TelegraphDuration = 2.0 // Seconds of warning before an attack lands
	AttackDuration    = 1.5 // Seconds the attack stays live
	EnragedCooldown   = 0.6 // Cooldown multiplier once enraged
	RotationLength    = 4   // Attack kinds the final boss cycles through
)

// BossKind is a boss archetype.
type BossKind uint8

const (
	BossGolem BossKind = iota
	BossPhantom
	BossHydra
	BossMecha
	BossOverlord
	bossKindCount
)

type bossStats struct {
	name        string
	glyph       rune
	size        int
	hp          int
	cooldown    float64
	speed       float64
	enrageBonus float64
	score       int
	color       core.Color
	attack      AttackKind
	final       bool
}

var bossTable = [bossKindCount]bossStats{
	BossGolem:    {name: "Golem", glyph: 'G', size: 3, hp: 30, cooldown: 5, speed: 30, enrageBonus: 10, score: 5000, color: core.ColorYellow, attack: AttackShockwave},
	BossPhantom:  {name: "Phantom", glyph: 'P', size: 2, hp: 20, cooldown: 4, speed: 50, enrageBonus: 10, score: 6000, color: core.ColorBrightMagenta, attack: AttackVortex},
	BossHydra:    {name: "Hydra", glyph: 'H', size: 3, hp: 35, cooldown: 4.5, speed: 35, enrageBonus: 10, score: 8000, color: core.ColorGreen, attack: AttackMeteorRain},
	BossMecha:    {name: "Mecha", glyph: 'M', size: 2, hp: 25, cooldown: 3.5, speed: 45, enrageBonus: 12, score: 9000, color: core.ColorBrightBlue, attack: AttackCrossBeam},
	BossOverlord: {name: "Overlord", glyph: 'O', size: 3, hp: 50, cooldown: 3, speed: 40, enrageBonus: 10, score: 20000, color: core.ColorBrightRed, final: true},
}

// BossKinds returns every archetype in declaration order.
func BossKinds() []BossKind {
	kinds := make([]BossKind, bossKindCount)
	for i := range kinds {
		kinds[i] = BossKind(i)
	}
	return kinds
}

func (k BossKind) stats() bossStats {
	if k >= bossKindCount {
		return bossStats{name: "Unknown", glyph: '?', size: 2, hp: 1, cooldown: 5, speed: 30, color: core.ColorDefault}
	}
	return bossTable[k]
}

func (k BossKind) String() string { return k.stats().name }

// Size returns the side of the square footprint in tiles.
func (k BossKind) Size() int { return k.stats().size }

// MaxHP returns the starting hit points.
func (k BossKind) MaxHP() int { return k.stats().hp }

// Cooldown returns the base seconds between attacks.
func (k BossKind) Cooldown() float64 { return k.stats().cooldown }

// IsFinal reports whether the archetype rotates through every attack kind.
func (k BossKind) IsFinal() bool { return k.stats().final }

// Glyph returns the label used by text renderers.
func (k BossKind) Glyph() rune { return k.stats().glyph }

// FallbackColor returns the colour used when no sprite is available.
func (k BossKind) FallbackColor() core.Color { return k.stats().color }

// ParseBossKind resolves an archetype by case-insensitive name.
func ParseBossKind(s string) (BossKind, error) {
	for i, st := range bossTable {
		if strings.EqualFold(st.name, s) {
			return BossKind(i), nil
		}
	}
	return 0, fmt.Errorf("entity: unknown boss %q", s)
}

// BossEvent reports the attack transition that happened during a tick.
type BossEvent uint8

const (
	BossEventNone BossEvent = iota
	BossEventTelegraphStarted
	BossEventAttackStarted
	BossEventAttackEnded
)

func (e BossEvent) String() string {
	switch e {
	case BossEventTelegraphStarted:
		return "TelegraphStarted"
	case BossEventAttackStarted:
		return "AttackStarted"
	case BossEventAttackEnded:
		return "AttackEnded"
	default:
		return "None"
	}
}

// Boss is a multi-tile enemy with a timed telegraph, attack, cooldown cycle.
// X and Y are the pixel centre of the footprint.
type Boss struct {
	Entity
	Kind  BossKind
	MaxHP int

	// Heading is the unit movement vector; zero means standing still.
	HeadingX, HeadingY float64

	hp      int
	enraged bool

	cooldownTimer  float64
	telegraphTimer float64
	attacking      bool
	attackTimer    float64
	targets        []world.Coord
	rotation       int

	plan      AttackPlan
	lastEvent BossEvent
}

// NewBossAt creates a boss whose footprint has its top-left tile at (gx, gy).
// The footprint is pulled inside the border walls if needed.
func NewBossAt(kind BossKind, gx, gy int) *Boss {
	size := kind.Size()
	b := &Boss{
		Entity:        Entity{HalfSize: float64(size*world.TileSize) / 2},
		Kind:          kind,
		MaxHP:         kind.MaxHP(),
		hp:            kind.MaxHP(),
		cooldownTimer: kind.Cooldown(),
	}
	b.X = float64(gx*world.TileSize) + b.HalfSize
	b.Y = float64(gy*world.TileSize) + b.HalfSize
	b.X, b.Y = b.clamp(b.X, b.Y)
	return b
}

// Size returns the footprint side in tiles.
func (b *Boss) Size() int { return b.Kind.Size() }

// HP returns the current hit points.
func (b *Boss) HP() int { return b.hp }

// Alive reports whether the boss still has hit points.
func (b *Boss) Alive() bool { return b.hp > 0 }

// ScoreValue returns the kill reward.
func (b *Boss) ScoreValue() int { return b.Kind.stats().score }

// IsEnraged reports whether the enrage latch has fired.
func (b *Boss) IsEnraged() bool { return b.enraged }

// SetHP sets current hit points, clamped to [0, MaxHP], and fires the enrage
// latch once they drop to half or below.
func (b *Boss) SetHP(hp int) {
	b.hp = max(0, min(hp, b.MaxHP))
	if b.hp <= b.MaxHP/2 {
		b.enraged = true
	}
}

// TakeDamage removes hit points. Returns true if the boss died.
func (b *Boss) TakeDamage(n int) bool {
	if !b.Alive() || n <= 0 {
		return false
	}
	b.SetHP(b.hp - n)
	return !b.Alive()
}

// Heal restores hit points. Enrage stays latched.
func (b *Boss) Heal(n int) {
	if !b.Alive() || n <= 0 {
		return
	}
	b.SetHP(b.hp + n)
}

// Speed returns movement speed in pixels per second including the enrage bonus.
func (b *Boss) Speed() float64 {
	st := b.Kind.stats()
	if b.enraged {
		return st.speed + st.enrageBonus
	}
	return st.speed
}

// NextCooldown returns the cooldown armed after the current attack ends.
func (b *Boss) NextCooldown() float64 {
	if b.enraged {
		return b.Kind.Cooldown() * EnragedCooldown
	}
	return b.Kind.Cooldown()
}

// CooldownRemaining returns seconds until the next telegraph.
func (b *Boss) CooldownRemaining() float64 { return b.cooldownTimer }

// IsTelegraphing reports whether an attack warning is showing.
func (b *Boss) IsTelegraphing() bool { return b.telegraphTimer > 0 }

// IsAttacking reports whether the attack is live.
func (b *Boss) IsAttacking() bool { return b.attacking }

// AttackTargetCells returns the tiles the pending or live attack covers.
// The slice is owned by the boss and valid until the next tick.
func (b *Boss) AttackTargetCells() []world.Coord { return b.targets }

// SetAttackTargets replaces the affected-tile list.
func (b *Boss) SetAttackTargets(cells []world.Coord) {
	b.targets = append(b.targets[:0], cells...)
}

// IsTargeted reports whether a tile is covered by the current attack.
func (b *Boss) IsTargeted(c world.Coord) bool {
	for _, t := range b.targets {
		if t == c {
			return true
		}
	}
	return false
}

// Rotation returns the final boss rotation index in [0, RotationLength).
func (b *Boss) Rotation() int { return b.rotation }

// CurrentAttack returns the plan of the pending or live attack.
func (b *Boss) CurrentAttack() AttackPlan { return b.plan }

// LastEvent returns the attack transition of the most recent Update.
func (b *Boss) LastEvent() BossEvent { return b.lastEvent }

// UpdateAttack advances the attack cycle by dt seconds and reports the
// transition it made, if any.
func (b *Boss) UpdateAttack(dt float64) BossEvent {
	switch {
	case b.attacking:
		b.attackTimer -= dt
		if b.attackTimer > 0 {
			return BossEventNone
		}
		b.attackTimer = 0
		b.attacking = false
		b.targets = b.targets[:0]
		b.cooldownTimer = b.NextCooldown()
		if b.Kind.IsFinal() {
			b.rotation = (b.rotation + 1) % RotationLength
		}
		return BossEventAttackEnded

	case b.telegraphTimer > 0:
		b.telegraphTimer -= dt
		if b.telegraphTimer > 0 {
			return BossEventNone
		}
		b.telegraphTimer = 0
		b.attacking = true
		b.attackTimer = AttackDuration
		return BossEventAttackStarted

	default:
		b.cooldownTimer -= dt
		if b.cooldownTimer > 0 {
			return BossEventNone
		}
		b.cooldownTimer = 0
		b.telegraphTimer = TelegraphDuration
		return BossEventTelegraphStarted
	}
}

// Anchor returns the top-left tile of the footprint.
func (b *Boss) Anchor() world.Coord {
	return world.TileAt(b.X-b.HalfSize+world.TileSize/2, b.Y-b.HalfSize+world.TileSize/2)
}

// OccupiesCell reports whether (x, y) is inside the footprint.
func (b *Boss) OccupiesCell(x, y int) bool {
	a := b.Anchor()
	s := b.Size()
	return x >= a.X && x < a.X+s && y >= a.Y && y < a.Y+s
}

// OccupiedCells enumerates the footprint in row-major order.
func (b *Boss) OccupiedCells() []world.Coord {
	a := b.Anchor()
	s := b.Size()
	cells := make([]world.Coord, 0, s*s)
	for dy := 0; dy < s; dy++ {
		for dx := 0; dx < s; dx++ {
			cells = append(cells, world.Coord{X: a.X + dx, Y: a.Y + dy})
		}
	}
	return cells
}

func bossBlocked(c *world.Cell) bool {
	return collision.SolidOnly(c) || c.Bomb != nil
}

// clamp keeps the footprint inside the border walls.
func (b *Boss) clamp(x, y float64) (float64, float64) {
	minX := world.TileSize + b.HalfSize
	maxX := float64((world.Width-1)*world.TileSize) - b.HalfSize
	minY := world.TileSize + b.HalfSize
	maxY := float64((world.Height-1)*world.TileSize) - b.HalfSize
	return math.Max(minX, math.Min(x, maxX)), math.Max(minY, math.Min(y, maxY))
}

// Move advances the boss along its heading, sliding along obstacles.
// Returns false when every candidate was rejected; the heading is then cleared
// and the position is unchanged.
func (b *Boss) Move(dt float64, g *world.Grid) bool {
	if b.HeadingX == 0 && b.HeadingY == 0 {
		return false
	}
	step := b.Speed() * dt
	nx, ny := b.clamp(b.X+b.HeadingX*step, b.Y+b.HeadingY*step)

	candidates := [3][2]float64{{nx, ny}, {nx, b.Y}, {b.X, ny}}
	for _, c := range candidates {
		if c[0] == b.X && c[1] == b.Y {
			continue
		}
		if collision.AreaClear(c[0], c[1], b.HalfSize, g, bossBlocked) {
			b.X, b.Y = c[0], c[1]
			return true
		}
	}
	b.HeadingX, b.HeadingY = 0, 0
	return false
}

// SteerToward points the heading at the centre of a tile.
func (b *Boss) SteerToward(target world.Coord) {
	dx := world.TileCenter(target.X) - b.X
	dy := world.TileCenter(target.Y) - b.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		b.HeadingX, b.HeadingY = 0, 0
		return
	}
	b.HeadingX, b.HeadingY = dx/dist, dy/dist
}

// Update chases the target during cooldown, then plans and runs attacks.
func (b *Boss) Update(ctx *TickContext) {
	b.lastEvent = BossEventNone
	if !b.Alive() {
		return
	}
	if !b.attacking && !b.IsTelegraphing() {
		b.SteerToward(ctx.Target)
		b.Move(ctx.DT*ctx.speedScale(), ctx.Grid)
	}

	b.lastEvent = b.UpdateAttack(ctx.DT)
	switch b.lastEvent {
	case BossEventTelegraphStarted:
		b.plan = PlanAttack(b, ctx.Grid, ctx.Target, ctx.RNG)
		b.SetAttackTargets(b.plan.Cells)
	case BossEventAttackEnded:
		b.plan = AttackPlan{}
	}
}
