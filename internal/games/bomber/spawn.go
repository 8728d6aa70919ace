package bomber

import (
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// safeSpawn reports whether an entity may appear on the tile.
func safeSpawn(c *world.Cell) bool {
	if world.InSpawnPocket(c.X(), c.Y()) || !c.IsWalkable(false, false) {
		return false
	}
	switch c.Type {
	case world.TileLavaCrack, world.TilePlatformGap, world.TileTeleporter, world.TileExit:
		return false
	}
	return true
}

// spawnTiles lists safe tiles at least minDist from the player. When none is
// far enough every safe tile qualifies.
func (g *Game) spawnTiles(minDist int) []world.Coord {
	here := g.player.tile()
	var far, all []world.Coord
	g.grid.Each(func(c *world.Cell) {
		if !safeSpawn(c) || c.Coord() == here {
			return
		}
		all = append(all, c.Coord())
		if c.Coord().Manhattan(here) >= minDist {
			far = append(far, c.Coord())
		}
	})
	if len(far) > 0 {
		return far
	}
	return all
}

func (g *Game) spawnEnemy() {
	tiles := g.spawnTiles(g.cfg.Enemies.MinDistance)
	if len(tiles) == 0 {
		return
	}
	t := g.enemyPool[g.rng.Intn(len(g.enemyPool))]
	g.enemies = append(g.enemies, entity.NewRegular(t, tiles[g.rng.Intn(len(tiles))]))
}

// spawnBoss centres the scenario boss and clears blocks from its footprint.
func (g *Game) spawnBoss() {
	kind := g.scenario.Boss
	size := kind.Size()
	g.boss = entity.NewBossAt(kind, (world.Width-size)/2, (world.Height-size)/2)
	for _, c := range g.boss.OccupiedCells() {
		cell := g.grid.At(c)
		if cell.Type == world.TileBlock {
			cell.Type = world.TileEmpty
			cell.HiddenPowerUp = world.PowerUpNone
			cell.HasHiddenExit = false
		}
	}
}

// powerUpPool lists the power-ups that do something without bombs. BombPass
// and Detonator never drop.
var powerUpPool = []world.PowerUpType{
	world.PowerUpBombUp,
	world.PowerUpFireUp,
	world.PowerUpSpeedUp,
	world.PowerUpWallPass,
	world.PowerUpFlamePass,
	world.PowerUpInvincible,
	world.PowerUpExtraLife,
}

// spawnPowerUp drops a random power-up on a free tile.
func (g *Game) spawnPowerUp() {
	var free []world.Coord
	here := g.player.tile()
	g.grid.Each(func(c *world.Cell) {
		if safeSpawn(c) && c.PowerUp == nil && c.Coord() != here {
			free = append(free, c.Coord())
		}
	})
	if len(free) == 0 {
		return
	}
	g.placePowerUp(powerUpPool[g.rng.Intn(len(powerUpPool))], free[g.rng.Intn(len(free))])
}

func (g *Game) placePowerUp(kind world.PowerUpType, tile world.Coord) {
	lifetime := g.difficulty.Lifetime(g.cfg.PowerUps.Lifetime, g.Score(), int(g.tick))
	pu := entity.NewPowerUp(kind, tile, lifetime)
	if g.grid.At(tile).SetPowerUp(pu) {
		g.powerUps = append(g.powerUps, pu)
	}
}
