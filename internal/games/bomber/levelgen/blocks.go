package levelgen

import (
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// PlaceBlocks turns floor(N*density) of the N eligible empty tiles into
// destructible blocks, chosen by an in-place Fisher-Yates shuffle. Density is
// clamped to [0, 1]. Returns the number of blocks placed.
func PlaceBlocks(g *world.Grid, density float64, r *rng.Rand) int {
	density = max(0, min(1, density))
	pool := eligible(g)
	shuffle(pool, r)
	n := int(float64(len(pool)) * density)
	for _, p := range pool[:n] {
		g.At(p).Type = world.TileBlock
	}
	return n
}

// HideContents hides the exit under one block (when withExit is set) and a
// random power-up under each remaining block with probability powerUpChance.
func HideContents(g *world.Grid, r *rng.Rand, powerUpChance float64, withExit bool) {
	hideContents(g, r, powerUpChance, withExit, world.PowerUpTypes())
}

func hideContents(g *world.Grid, r *rng.Rand, powerUpChance float64, withExit bool, kinds []world.PowerUpType) {
	var blocks []world.Coord
	g.Each(func(c *world.Cell) {
		if c.Type == world.TileBlock {
			blocks = append(blocks, c.Coord())
		}
	})
	if len(blocks) == 0 {
		return
	}
	shuffle(blocks, r)

	if withExit {
		g.At(blocks[0]).HasHiddenExit = true
		blocks = blocks[1:]
	}
	for _, p := range blocks {
		if r.Chance(powerUpChance) {
			g.At(p).HiddenPowerUp = kinds[r.Intn(len(kinds))]
		}
	}
}
