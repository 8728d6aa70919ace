// Package collision implements the four-corner occupancy test used by every
// mobile entity that fits inside a single tile.
package collision

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/world"

// cornerInset keeps the right/bottom corners inside the square, so a square
// aligned to a tile touches exactly that tile.
const cornerInset = 0.01

// BlockFunc reports whether a tile stops the mover.
type BlockFunc func(c *world.Cell) bool

// CanMoveTo tests the four corners of the square of side 2*halfSize centred on
// (newX, newY). It returns false on the first corner that falls outside the
// grid or on a tile isBlocked rejects, true only when all four pass.
func CanMoveTo(newX, newY, halfSize float64, g *world.Grid, isBlocked BlockFunc) bool {
	left := world.WorldToTile(newX - halfSize)
	right := world.WorldToTile(newX + halfSize - cornerInset)
	top := world.WorldToTile(newY - halfSize)
	bottom := world.WorldToTile(newY + halfSize - cornerInset)

	return cornerClear(left, top, g, isBlocked) &&
		cornerClear(right, top, g, isBlocked) &&
		cornerClear(left, bottom, g, isBlocked) &&
		cornerClear(right, bottom, g, isBlocked)
}

func cornerClear(tx, ty int, g *world.Grid, isBlocked BlockFunc) bool {
	c, ok := g.TryGetCell(tx, ty)
	if !ok {
		return false
	}
	return !isBlocked(c)
}

// Blocker returns the standard predicate for a mover with the given
// passabilities, derived from Cell.IsWalkable.
func Blocker(canPassWalls, canPassBombs bool) BlockFunc {
	return func(c *world.Cell) bool {
		return !c.IsWalkable(canPassWalls, canPassBombs)
	}
}

// SolidOnly blocks walls and blocks but ignores bombs.
func SolidOnly(c *world.Cell) bool {
	return c.Type == world.TileWall || c.Type == world.TileBlock
}

// AreaClear tests every tile the square overlaps. Movers larger than a tile
// can straddle tiles that none of the four corners land on.
func AreaClear(newX, newY, halfSize float64, g *world.Grid, isBlocked BlockFunc) bool {
	left := world.WorldToTile(newX - halfSize)
	right := world.WorldToTile(newX + halfSize - cornerInset)
	top := world.WorldToTile(newY - halfSize)
	bottom := world.WorldToTile(newY + halfSize - cornerInset)

	for ty := top; ty <= bottom; ty++ {
		for tx := left; tx <= right; tx++ {
			if !cornerClear(tx, ty, g, isBlocked) {
				return false
			}
		}
	}
	return true
}
