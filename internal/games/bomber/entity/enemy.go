package entity

import (
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/collision"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Regular enemy tuning.
const (
	EnemyHalfSize       = world.TileSize * 0.4
	invisibleVisible    = 3.0 // Seconds shown per invisibility cycle
	invisibleHidden     = 2.0 // Seconds hidden per invisibility cycle
	disguiseRevealTiles = 3   // Player distance that breaks a disguise
)

// Regular is an ordinary single-tile enemy driven by its archetype table row.
type Regular struct {
	Entity
	Type      EnemyType
	HP        int
	Visible   bool
	Disguised bool

	alive        bool
	invisTimer   float64
	lastDecision world.Coord
}

// NewRegular spawns an enemy of the given archetype centred on a tile.
func NewRegular(t EnemyType, tile world.Coord) *Regular {
	r := &Regular{
		Entity:       Entity{HalfSize: EnemyHalfSize},
		Type:         t,
		HP:           t.HitPoints(),
		Visible:      true,
		Disguised:    t.CanDisguise(),
		alive:        true,
		lastDecision: world.Coord{X: -1, Y: -1},
	}
	r.PlaceAtTile(tile)
	return r
}

// Alive reports whether the enemy is still in play.
func (r *Regular) Alive() bool { return r.alive }

// ScoreValue returns the kill reward of the archetype.
func (r *Regular) ScoreValue() int { return r.Type.ScoreValue() }

// OccupiedCells returns the single tile under the enemy.
func (r *Regular) OccupiedCells() []world.Coord {
	return []world.Coord{r.Tile()}
}

// Hit applies one point of damage. Returns true if this hit killed the enemy.
func (r *Regular) Hit() bool {
	if !r.alive {
		return false
	}
	r.HP--
	r.Disguised = false
	if r.HP <= 0 {
		r.alive = false
		return true
	}
	return false
}

// Split returns the offspring of a dead splitter: two Ballooms on the same
// tile heading in opposite directions. Returns nil for other archetypes or
// while the enemy is alive.
func (r *Regular) Split() []*Regular {
	if r.alive || !r.Type.SplitsOnDeath() {
		return nil
	}
	tile := r.Tile()
	a := NewRegular(EnemyBalloom, tile)
	b := NewRegular(EnemyBalloom, tile)
	a.Direction = world.DirLeft
	b.Direction = world.DirRight
	return []*Regular{a, b}
}

func (r *Regular) blocker() collision.BlockFunc {
	return collision.Blocker(r.Type.CanPassWalls(), false)
}

// Update advances abilities and movement by one tick.
func (r *Regular) Update(ctx *TickContext) {
	if !r.alive {
		return
	}
	r.updateAbilities(ctx)
	if r.Disguised {
		return
	}
	r.move(ctx)
}

func (r *Regular) updateAbilities(ctx *TickContext) {
	if r.Type.HasInvisibility() {
		r.invisTimer += ctx.DT
		cycle := invisibleVisible + invisibleHidden
		for r.invisTimer >= cycle {
			r.invisTimer -= cycle
		}
		r.Visible = r.invisTimer < invisibleVisible
	}
	if r.Disguised && r.Tile().Manhattan(ctx.Target) <= disguiseRevealTiles {
		r.Disguised = false
	}
}

func (r *Regular) move(ctx *TickContext) {
	step := r.Type.Speed() * ctx.speedScale() * ctx.DT
	if step <= 0 {
		return
	}

	tile := r.Tile()
	cx, cy := world.TileCenter(tile.X), world.TileCenter(tile.Y)

	if r.Direction == world.DirNone {
		r.X, r.Y = cx, cy
		r.decide(ctx, tile)
		if r.Direction == world.DirNone {
			return
		}
	}

	// Turns only happen on tile centres, where every direction is aligned.
	dx, dy := r.Direction.Delta()
	toCenter := (cx-r.X)*float64(dx) + (cy-r.Y)*float64(dy)
	if toCenter >= 0 && toCenter <= step && tile != r.lastDecision {
		r.X, r.Y = cx, cy
		step -= toCenter
		r.decide(ctx, tile)
		dx, dy = r.Direction.Delta()
	}

	nx := r.X + float64(dx)*step
	ny := r.Y + float64(dy)*step
	if collision.CanMoveTo(nx, ny, r.HalfSize, ctx.Grid, r.blocker()) {
		r.X, r.Y = nx, ny
		return
	}
	// Something appeared in the way (a bomb): turn around.
	r.Direction = r.Direction.Opposite()
}

// decide picks the heading to leave the current tile centre with.
func (r *Regular) decide(ctx *TickContext, tile world.Coord) {
	r.lastDecision = tile

	var open [4]world.Dir
	n := 0
	for _, d := range world.Cardinals {
		next := tile.Step(d)
		c, ok := ctx.Grid.TryGetCell(next.X, next.Y)
		if ok && c.IsWalkable(r.Type.CanPassWalls(), false) {
			open[n] = d
			n++
		}
	}
	if n == 0 {
		r.Direction = world.DirNone
		return
	}

	// Prefer not to reverse unless it is the only way out.
	candidates := open[:n]
	if n > 1 && r.Direction != world.DirNone {
		filtered := make([]world.Dir, 0, n)
		for _, d := range candidates {
			if d != r.Direction.Opposite() {
				filtered = append(filtered, d)
			}
		}
		candidates = filtered
	}

	currentOpen := false
	for _, d := range candidates {
		if d == r.Direction {
			currentOpen = true
			break
		}
	}

	switch r.Type.Intelligence() {
	case IntelligenceLow:
		if currentOpen && ctx.RNG.Chance(0.8) {
			return
		}
		r.Direction = candidates[ctx.RNG.Intn(len(candidates))]
	case IntelligenceNormal:
		if currentOpen && ctx.RNG.Chance(0.6) {
			return
		}
		r.Direction = candidates[ctx.RNG.Intn(len(candidates))]
	default:
		if ctx.RNG.Chance(0.2) {
			r.Direction = candidates[ctx.RNG.Intn(len(candidates))]
			return
		}
		best := candidates[0]
		bestDist := tile.Step(best).Manhattan(ctx.Target)
		for _, d := range candidates[1:] {
			if dist := tile.Step(d).Manhattan(ctx.Target); dist < bestDist {
				best, bestDist = d, dist
			}
		}
		r.Direction = best
	}
}
