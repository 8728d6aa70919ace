package bomber

import (
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/collision"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Player tuning.
const (
	PlayerHalfSize   = world.TileSize * 0.4
	maxSpeedUps      = 4
	speedUpBonus     = 0.15 // Extra speed per SpeedUp
	invincibleTime   = 10.0 // Seconds granted by Invincible
	slowEffectFactor = 0.5  // Speed while standing in Freeze or TimeWarp
	wellEffectFactor = 0.7  // Speed while standing in a GravityWell
	digDuration      = 0.5  // Seconds to break a block
	strikeCooldown   = 0.5
	strikeHaste      = 0.1 // Cooldown removed per BombUp
	minStrikeCD      = 0.2
	maxReach         = 3 // Tiles a strike covers with FireUps
)

// player moves tile to tile. While a step is in flight the pixel position is
// interpolated between from and to.
type player struct {
	entity.Entity

	from, to world.Coord
	progress float64 // 0..1 along the current step
	moving   bool

	heading world.Dir // Continues after each step
	queued  world.Dir // Turn requested by input, taken at the next tile
	forced  world.Dir // Ice slide or conveyor push for the next step
	facing  world.Dir
	sliding bool // The step in flight was forced

	lives      int
	invuln     float64
	invincible float64
	strikeCD   float64

	speedUps  int
	wallPass  bool
	flamePass bool
	haste     int // BombUps collected
	reach     int // Tiles covered by a strike
	collected int
}

func newPlayer(lives int) *player {
	p := &player{
		Entity: entity.Entity{HalfSize: PlayerHalfSize},
		lives:  lives,
		facing: world.DirRight,
		reach:  1,
	}
	p.placeAt(world.PlayerSpawn)
	return p
}

func (p *player) placeAt(c world.Coord) {
	p.from, p.to = c, c
	p.progress = 0
	p.moving = false
	p.PlaceAtTile(c)
}

// tile returns the tile the player counts as standing on.
func (p *player) tile() world.Coord {
	if p.moving && p.progress >= 0.5 {
		return p.to
	}
	return p.from
}

func (p *player) blocker() collision.BlockFunc {
	return collision.Blocker(p.wallPass, false)
}

func (p *player) canEnter(g *world.Grid, c world.Coord) bool {
	return collision.CanMoveTo(world.TileCenter(c.X), world.TileCenter(c.Y), p.HalfSize, g, p.blocker())
}

// speed returns pixels per second on the tile the player stands on. Forced
// steps get the slide bonus.
func (p *player) speed(base, slideBonus float64, c *world.Cell) float64 {
	s := base * (1 + speedUpBonus*float64(p.speedUps))
	switch {
	case c.HasEffect(world.EffectFreeze), c.HasEffect(world.EffectTimeWarp):
		s *= slowEffectFactor
	case c.HasEffect(world.EffectGravityWell):
		s *= wellEffectFactor
	}
	if p.sliding {
		s *= slideBonus
	}
	return s
}

// steer records a direction request. DirNone stops at the next tile.
func (p *player) steer(d world.Dir) {
	p.queued = d
	if d == world.DirNone {
		p.heading = world.DirNone
	}
}

// nextDir picks the direction of the next step from the current tile:
// a forced move first, then the queued turn, then the running heading.
func (p *player) nextDir(g *world.Grid) world.Dir {
	p.sliding = false
	if p.forced != world.DirNone {
		d := p.forced
		p.forced = world.DirNone
		if p.canEnter(g, p.from.Step(d)) {
			p.sliding = true
			return d
		}
	}
	if p.queued != world.DirNone && p.canEnter(g, p.from.Step(p.queued)) {
		d := p.queued
		p.queued = world.DirNone
		return d
	}
	if p.heading != world.DirNone && p.canEnter(g, p.from.Step(p.heading)) {
		return p.heading
	}
	return world.DirNone
}

// begin starts the next step from the current tile. Returns false when the
// player stays put. Forced steps leave the heading alone, so a stopped
// player comes to rest where the slide ends.
func (p *player) begin(g *world.Grid) bool {
	d := p.nextDir(g)
	if d == world.DirNone {
		p.heading = world.DirNone
		return false
	}
	if !p.sliding {
		p.heading = d
	}
	p.facing = d
	p.to = p.from.Step(d)
	p.progress = 0
	p.moving = true
	return true
}

// advance moves the step in flight by dt. It returns the tile reached when
// the step completes during this call.
func (p *player) advance(dt, pxPerSec float64) (arrived world.Coord, ok bool) {
	if !p.moving {
		return world.Coord{}, false
	}
	p.progress += pxPerSec * dt / world.TileSize
	if p.progress >= 1 {
		p.placeAt(p.to)
		return p.from, true
	}
	fx, fy := world.TileCenter(p.from.X), world.TileCenter(p.from.Y)
	tx, ty := world.TileCenter(p.to.X), world.TileCenter(p.to.Y)
	p.X = fx + (tx-fx)*p.progress
	p.Y = fy + (ty-fy)*p.progress
	return world.Coord{}, false
}

// protected reports whether hits are currently ignored.
func (p *player) protected() bool {
	return p.invuln > 0 || p.invincible > 0
}

func (p *player) tickTimers(dt float64) {
	p.invuln = max(0, p.invuln-dt)
	p.invincible = max(0, p.invincible-dt)
	p.strikeCD = max(0, p.strikeCD-dt)
}

// cooldown returns the pause after a strike, shortened by BombUps.
func (p *player) cooldown() float64 {
	return max(minStrikeCD, strikeCooldown-strikeHaste*float64(p.haste))
}

// apply grants a collected power-up.
func (p *player) apply(t world.PowerUpType) {
	p.collected++
	switch t {
	case world.PowerUpBombUp:
		p.haste++
	case world.PowerUpFireUp:
		p.reach = min(maxReach, p.reach+1)
	case world.PowerUpSpeedUp:
		p.speedUps = min(maxSpeedUps, p.speedUps+1)
	case world.PowerUpWallPass:
		p.wallPass = true
	case world.PowerUpFlamePass:
		p.flamePass = true
	case world.PowerUpInvincible:
		p.invincible = invincibleTime
	case world.PowerUpExtraLife:
		p.lives++
	}
}
