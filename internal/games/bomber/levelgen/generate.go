package levelgen

import (
	"hash/fnv"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Params configures a full generation run.
type Params struct {
	Layout        Layout
	Mechanic      Mechanic
	BlockDensity  float64             // Fraction of eligible empty tiles turned into blocks
	PowerUpChance float64             // Chance a block hides a power-up
	PowerUps      []world.PowerUpType // Kinds that may be hidden; nil means all
	WithExit      bool                // Hide an exit under one block
	Seed          uint64
}

// DefaultParams returns a classic level with a moderate block density.
func DefaultParams() Params {
	return Params{
		Layout:        LayoutClassic,
		Mechanic:      MechanicNone,
		BlockDensity:  0.5,
		PowerUpChance: 0.2,
		WithExit:      true,
		Seed:          1,
	}
}

// Generate builds a fresh grid from p. The same Params always produce the
// same grid.
func Generate(p Params) *world.Grid {
	g := world.NewGrid()
	Populate(g, p, rng.New(p.Seed))
	return g
}

// Populate runs every generation stage on an existing grid with the caller's
// random source.
func Populate(g *world.Grid, p Params, r *rng.Rand) {
	SetupLayoutPattern(g, p.Layout, r)
	PlaceWorldMechanicCells(g, p.Mechanic, r)
	PlaceBlocks(g, p.BlockDensity, r)
	kinds := p.PowerUps
	if len(kinds) == 0 {
		kinds = world.PowerUpTypes()
	}
	hideContents(g, r, p.PowerUpChance, p.WithExit, kinds)
}

// Fingerprint hashes the tile types of g in row-major order.
func Fingerprint(g *world.Grid) uint64 {
	h := fnv.New64a()
	types := g.TileTypes()
	buf := make([]byte, len(types))
	for i, t := range types {
		buf[i] = byte(t)
	}
	h.Write(buf)
	return h.Sum64()
}
