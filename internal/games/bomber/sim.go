package bomber

import (
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

func (g *Game) updatePlayer() {
	p := g.player
	defer p.tickTimers(g.dt)

	if !p.moving && !p.begin(g.grid) {
		return
	}
	speed := p.speed(g.cfg.Player.Speed, g.cfg.Player.IceSpeedBonus, g.grid.At(p.tile()))
	if arrived, ok := p.advance(g.dt, speed); ok {
		g.arrive(arrived)
		// Chain into the next step within the same tick.
		if !g.levelCleared {
			p.begin(g.grid)
		}
	}
}

// arrive applies the tile the player just stepped onto.
func (g *Game) arrive(c world.Coord) {
	p := g.player
	cell := g.grid.At(c)
	switch cell.Type {
	case world.TileIce:
		p.forced = p.facing
	case world.TileConveyor:
		p.forced = cell.ConveyorDirection
	case world.TileTeleporter:
		if cell.IsTeleporterReady() {
			dst := cell.TeleporterTarget
			cell.TeleporterCooldown = g.cfg.Player.TeleportCooldown
			g.grid.At(dst).TeleporterCooldown = g.cfg.Player.TeleportCooldown
			p.placeAt(dst)
		}
	case world.TileExit:
		g.clearLevel()
	}
}

// strike hits the first thing in front of the player within its reach: the
// boss, an enemy, or a block, which starts breaking. Walls stop it.
func (g *Game) strike() {
	p := g.player
	if p.strikeCD > 0 {
		return
	}
	p.strikeCD = p.cooldown()
	target := p.tile()
	for i, n := 0, p.reach; i < n; i++ {
		target = target.Step(p.facing)
		cell, ok := g.grid.TryGetCell(target.X, target.Y)
		if !ok || cell.Type == world.TileWall {
			return
		}
		if g.strikeAt(target, cell) {
			return
		}
	}
}

// strikeAt resolves a strike on one tile. Returns true when something
// absorbed the blow.
func (g *Game) strikeAt(target world.Coord, cell *world.Cell) bool {
	if g.boss != nil && g.boss.Alive() && g.boss.OccupiesCell(target.X, target.Y) {
		if g.boss.TakeDamage(1) {
			g.bonus += g.boss.ScoreValue()
			g.kills++
			g.won = true
		}
		return true
	}

	for _, e := range g.enemies {
		if !e.Alive() || e.Tile() != target {
			continue
		}
		if e.Hit() {
			g.bonus += e.ScoreValue()
			g.kills++
			g.enemies = append(g.enemies, e.Split()...)
		}
		return true
	}

	if cell.Type != world.TileBlock {
		return false
	}
	if !cell.IsDestroying {
		cell.IsDestroying = true
		cell.DestructionProgress = 0
		g.digs = append(g.digs, target)
	}
	return true
}

// updateDigs advances breaking blocks and reveals what they hid.
func (g *Game) updateDigs() {
	kept := g.digs[:0]
	for _, c := range g.digs {
		cell := g.grid.At(c)
		cell.DestructionProgress += g.dt / digDuration
		if cell.DestructionProgress < 1 {
			kept = append(kept, c)
			continue
		}
		cell.IsDestroying = false
		cell.DestructionProgress = 0
		cell.Type = world.TileEmpty
		if cell.HasHiddenExit {
			cell.Type = world.TileExit
			cell.HasHiddenExit = false
		}
		if cell.HiddenPowerUp != world.PowerUpNone {
			g.placePowerUp(cell.HiddenPowerUp, c)
			cell.HiddenPowerUp = world.PowerUpNone
		}
	}
	g.digs = kept
}

func (g *Game) updateEnemies(ctx *entity.TickContext) {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		e.Update(ctx)
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	g.enemies = kept
}

// updateBoss runs the boss and lands its attack effects on the grid.
func (g *Game) updateBoss(ctx *entity.TickContext) {
	if g.boss == nil || !g.boss.Alive() {
		return
	}
	g.boss.Update(ctx)
	if g.boss.LastEvent() == entity.BossEventAttackStarted {
		plan := g.boss.CurrentAttack()
		for _, c := range plan.Cells {
			g.grid.At(c).ApplyEffect(plan.Effect, entity.AttackEffectTime)
		}
	}
}

func (g *Game) updatePowerUps() {
	if g.cfg.PowerUps.SpawnInterval > 0 {
		g.spawnTimer -= g.dt
		if g.spawnTimer <= 0 {
			g.spawnTimer = g.cfg.PowerUps.SpawnInterval
			if g.fieldPowerUps() < g.cfg.PowerUps.MaxOnField {
				g.spawnPowerUp()
			}
		}
	}

	here := g.player.tile()
	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		if pu.Tile() == here && pu.Collect() {
			g.player.apply(pu.PowerUpType())
			g.bonus += g.cfg.PowerUps.Score
		}
		pu.Update(g.dt)
		if pu.Removed {
			g.grid.At(pu.Tile()).RemovePowerUp()
			continue
		}
		kept = append(kept, pu)
	}
	g.powerUps = kept
}

// fieldPowerUps counts power-ups that can still be picked up.
func (g *Game) fieldPowerUps() int {
	n := 0
	for _, pu := range g.powerUps {
		if !pu.IsCollecting() {
			n++
		}
	}
	return n
}

// checkHazards applies at most one hit per tick.
func (g *Game) checkHazards() {
	p := g.player
	if p.protected() {
		return
	}
	here := p.tile()
	cell := g.grid.At(here)

	switch {
	case cell.IsLavaCrackActive() && !p.flamePass:
		g.hurt("lava")
	case cell.Type == world.TilePlatformGap && !p.moving:
		g.hurt("fell")
		p.placeAt(world.PlayerSpawn)
		p.heading = world.DirNone
		p.forced = world.DirNone
	default:
		if kind, ok := g.harmfulEffect(cell); ok {
			g.hurt(kind.String())
			return
		}
		if e := g.touchingEnemy(); e != nil {
			g.hurt(e.Type.String())
			return
		}
		if g.bossHits(here) {
			g.hurt(g.boss.Kind.String())
		}
	}
}

func (g *Game) harmfulEffect(cell *world.Cell) (world.EffectKind, bool) {
	for _, k := range cell.ActiveEffects() {
		if !k.IsHarmful() {
			continue
		}
		if k == world.EffectLavaPuddle && g.player.flamePass {
			continue
		}
		return k, true
	}
	return 0, false
}

func (g *Game) touchingEnemy() *entity.Regular {
	box := g.player.BoundingBox()
	for _, e := range g.enemies {
		if e.Alive() && !e.Disguised && e.BoundingBox().Intersects(box) {
			return e
		}
	}
	return nil
}

func (g *Game) bossHits(here world.Coord) bool {
	if g.boss == nil || !g.boss.Alive() {
		return false
	}
	if g.boss.BoundingBox().Intersects(g.player.BoundingBox()) {
		return true
	}
	return g.boss.IsAttacking() && g.boss.IsTargeted(here)
}

// hurt costs a life and starts the grace period.
func (g *Game) hurt(cause string) {
	p := g.player
	p.lives--
	p.invuln = g.cfg.Player.InvulnerableTime
	g.lastHit = cause
	if p.lives <= 0 {
		p.lives = 0
		g.gameOver = true
	}
}

// maintainPopulation tops the enemy count up to the difficulty target, at
// most one spawn per second.
func (g *Game) maintainPopulation() {
	if g.tick%uint64(g.tickRate) != 0 {
		return
	}
	want := g.difficulty.EnemyCount(g.cfg.Enemies.Count, g.Score(), int(g.tick))
	if len(g.enemies) < want {
		g.spawnEnemy()
	}
}
