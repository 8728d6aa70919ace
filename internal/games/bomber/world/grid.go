package world

import (
	"fmt"
	"math"
)

// Fixed level dimensions.
const (
	Width    = 15 // Tiles per row
	Height   = 10 // Tiles per column
	TileSize = 48 // Pixels per tile side, used for world/tile conversion
)

// PlayerSpawn is the tile the player starts on.
var PlayerSpawn = Coord{X: 1, Y: 1}

// spawnPocket is the spawn tile plus its two axis-adjacent interior neighbours.
var spawnPocket = [3]Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}

// SpawnPocket returns the tiles guaranteed clear for the player start.
func SpawnPocket() [3]Coord {
	return spawnPocket
}

// InSpawnPocket reports whether (x, y) is one of the spawn pocket tiles.
func InSpawnPocket(x, y int) bool {
	for _, c := range spawnPocket {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// BoundsError is the panic value raised by indexed access outside the grid.
type BoundsError struct {
	X, Y int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("world: cell (%d,%d) out of bounds %dx%d", e.X, e.Y, Width, Height)
}

// Grid is the level board. Cells are stored in row-major order: index = y*Width + x.
// The cell slice is allocated once and never resized.
type Grid struct {
	cells []Cell
}

// NewGrid creates a grid of empty cells.
func NewGrid() *Grid {
	g := &Grid{cells: make([]Cell, Width*Height)}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g.cells[y*Width+x] = newCell(x, y)
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return Width }

// Height returns the number of rows.
func (g *Grid) Height() int { return Height }

// InBounds returns true if the tile coordinate is on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// TryGetCell returns the cell at (x, y), or false when out of range.
func (g *Grid) TryGetCell(x, y int) (*Cell, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.cells[y*Width+x], true
}

// Cell returns the cell at (x, y). Out-of-range access is a programming error
// and panics with a *BoundsError; use TryGetCell for unchecked input.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		panic(&BoundsError{X: x, Y: y})
	}
	return &g.cells[y*Width+x]
}

// At is Cell addressed by Coord.
func (g *Grid) At(c Coord) *Cell {
	return g.Cell(c.X, c.Y)
}

// Peek returns a copy of the cell for read-only consumers (renderer, AI).
func (g *Grid) Peek(x, y int) (Cell, bool) {
	c, ok := g.TryGetCell(x, y)
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// TypeAt returns the tile type at (x, y); out of range reads as Wall.
func (g *Grid) TypeAt(x, y int) TileType {
	c, ok := g.TryGetCell(x, y)
	if !ok {
		return TileWall
	}
	return c.Type
}

// Reset clears every cell back to its construction defaults.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Clear()
	}
}

// Tick advances the timers of every cell.
func (g *Grid) Tick(dt float64) {
	for i := range g.cells {
		g.cells[i].Tick(dt)
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// CountType returns the number of cells with the given type.
func (g *Grid) CountType(t TileType) int {
	count := 0
	for i := range g.cells {
		if g.cells[i].Type == t {
			count++
		}
	}
	return count
}

// TileTypes returns a row-major snapshot of every tile type.
func (g *Grid) TileTypes() []TileType {
	types := make([]TileType, len(g.cells))
	for i := range g.cells {
		types[i] = g.cells[i].Type
	}
	return types
}

// Neighbors4 returns the in-bounds orthogonal neighbours of c.
func (g *Grid) Neighbors4(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Cardinals {
		n := c.Step(d)
		if g.InBounds(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// IsBorder reports whether (x, y) lies on the outer ring.
func IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == Width-1 || y == Height-1
}

// WorldToTile converts a pixel coordinate to a tile index.
func WorldToTile(px float64) int {
	return int(math.Floor(px / TileSize))
}

// TileCenter returns the pixel coordinate of the centre of tile index t.
func TileCenter(t int) float64 {
	return float64(t)*TileSize + TileSize/2
}

// TileAt converts a pixel position to a tile coordinate.
func TileAt(px, py float64) Coord {
	return Coord{X: WorldToTile(px), Y: WorldToTile(py)}
}
