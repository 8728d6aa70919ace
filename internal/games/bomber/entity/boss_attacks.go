package entity

import (
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// AttackKind is an area-attack pattern.
type AttackKind uint8

const (
	AttackShockwave  AttackKind = iota // Ring around the footprint
	AttackCrossBeam                    // Row and column through the boss
	AttackMeteorRain                   // Scattered tiles around the target
	AttackVortex                       // Square centred on the target
)

// finalRotation is the order the final boss cycles through.
var finalRotation = [RotationLength]AttackKind{AttackShockwave, AttackCrossBeam, AttackMeteorRain, AttackVortex}

func (k AttackKind) String() string {
	switch k {
	case AttackShockwave:
		return "Shockwave"
	case AttackCrossBeam:
		return "CrossBeam"
	case AttackMeteorRain:
		return "MeteorRain"
	case AttackVortex:
		return "Vortex"
	default:
		return "Unknown"
	}
}

// Attack tuning.
const (
	shockwaveReach     = 2
	meteorRadius       = 3
	meteorCount        = 6
	meteorEnragedBonus = 3
	AttackEffectTime   = 4.0 // Seconds a field effect lingers after impact
)

// AttackPlan is a fully targeted attack.
type AttackPlan struct {
	Kind   AttackKind
	Cells  []world.Coord
	Effect world.EffectKind // Field effect left on Cells when the attack lands
}

// NextAttackKind returns the kind the boss will use for its next attack.
func (b *Boss) NextAttackKind() AttackKind {
	if b.Kind.IsFinal() {
		return finalRotation[b.rotation%RotationLength]
	}
	return b.Kind.stats().attack
}

// PlanAttack chooses the tiles of the boss's next attack. Every returned tile
// is in bounds and not a wall. The target is normally the player tile.
func PlanAttack(b *Boss, g *world.Grid, target world.Coord, r *rng.Rand) AttackPlan {
	kind := b.NextAttackKind()
	plan := AttackPlan{Kind: kind, Effect: attackEffect(kind, b)}

	switch kind {
	case AttackShockwave:
		plan.Cells = shockwaveCells(b, g)
	case AttackCrossBeam:
		plan.Cells = crossBeamCells(b, g)
	case AttackMeteorRain:
		plan.Cells = meteorCells(b, g, target, r)
	case AttackVortex:
		reach := 1
		if b.IsEnraged() {
			reach = 2
		}
		plan.Cells = squareCells(g, target, reach)
	}
	return plan
}

func attackEffect(kind AttackKind, b *Boss) world.EffectKind {
	switch kind {
	case AttackShockwave:
		if b.IsEnraged() {
			return world.EffectTimeWarp
		}
		return world.EffectSmoke
	case AttackCrossBeam:
		return world.EffectFreeze
	case AttackMeteorRain:
		if b.Kind == BossHydra {
			return world.EffectPoison
		}
		return world.EffectLavaPuddle
	default:
		if b.IsEnraged() {
			return world.EffectBlackHole
		}
		return world.EffectGravityWell
	}
}

func targetable(g *world.Grid, x, y int) bool {
	c, ok := g.TryGetCell(x, y)
	return ok && c.Type != world.TileWall
}

func shockwaveCells(b *Boss, g *world.Grid) []world.Coord {
	a := b.Anchor()
	s := b.Size()
	var cells []world.Coord
	for y := a.Y - shockwaveReach; y < a.Y+s+shockwaveReach; y++ {
		for x := a.X - shockwaveReach; x < a.X+s+shockwaveReach; x++ {
			if b.OccupiesCell(x, y) || !targetable(g, x, y) {
				continue
			}
			cells = append(cells, world.Coord{X: x, Y: y})
		}
	}
	return cells
}

// crossBeamCells fires four beams from the footprint edges; each stops at the
// first wall.
func crossBeamCells(b *Boss, g *world.Grid) []world.Coord {
	a := b.Anchor()
	s := b.Size()
	mid := world.Coord{X: a.X + s/2, Y: a.Y + s/2}
	var cells []world.Coord
	for _, d := range world.Cardinals {
		p := mid
		for {
			p = p.Step(d)
			if b.OccupiesCell(p.X, p.Y) {
				continue
			}
			if !targetable(g, p.X, p.Y) {
				break
			}
			cells = append(cells, p)
		}
	}
	return cells
}

// meteorCells always hits the target tile and scatters the rest over open
// tiles within meteorRadius, chosen by a partial Fisher-Yates shuffle.
func meteorCells(b *Boss, g *world.Grid, target world.Coord, r *rng.Rand) []world.Coord {
	count := meteorCount
	if b.IsEnraged() {
		count += meteorEnragedBonus
	}

	var pool []world.Coord
	for y := target.Y - meteorRadius; y <= target.Y+meteorRadius; y++ {
		for x := target.X - meteorRadius; x <= target.X+meteorRadius; x++ {
			p := world.Coord{X: x, Y: y}
			if p == target || p.Manhattan(target) > meteorRadius || !targetable(g, x, y) {
				continue
			}
			pool = append(pool, p)
		}
	}

	var cells []world.Coord
	if targetable(g, target.X, target.Y) {
		cells = append(cells, target)
		count--
	}
	count = min(count, len(pool))
	for i := 0; i < count; i++ {
		j := i + r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		cells = append(cells, pool[i])
	}
	return cells
}

func squareCells(g *world.Grid, center world.Coord, reach int) []world.Coord {
	var cells []world.Coord
	for y := center.Y - reach; y <= center.Y+reach; y++ {
		for x := center.X - reach; x <= center.X+reach; x++ {
			if targetable(g, x, y) {
				cells = append(cells, world.Coord{X: x, Y: y})
			}
		}
	}
	return cells
}
