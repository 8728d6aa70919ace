// Package entity contains the mobile objects of a bomber level: regular
// enemies driven by the archetype tables, multi-tile bosses with their attack
// state machine, and collectible power-ups.
package entity

import (
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Box is an axis-aligned bounding box in pixels.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Intersects returns true if the boxes overlap.
func (b Box) Intersects(other Box) bool {
	if b.MinX >= other.MaxX || other.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= other.MaxY || other.MinY >= b.MaxY {
		return false
	}
	return true
}

// Entity is the shared positional state of every mobile object.
// X and Y are the pixel centre.
type Entity struct {
	X, Y      float64
	HalfSize  float64
	Direction world.Dir
	Removed   bool // Marked for removal by its owner
}

// Tile returns the tile containing the entity centre.
func (e *Entity) Tile() world.Coord {
	return world.TileAt(e.X, e.Y)
}

// BoundingBox returns the entity's square hitbox.
func (e *Entity) BoundingBox() Box {
	return Box{
		MinX: e.X - e.HalfSize,
		MinY: e.Y - e.HalfSize,
		MaxX: e.X + e.HalfSize,
		MaxY: e.Y + e.HalfSize,
	}
}

// PlaceAtTile centres the entity on a tile.
func (e *Entity) PlaceAtTile(c world.Coord) {
	e.X = world.TileCenter(c.X)
	e.Y = world.TileCenter(c.Y)
}

// TickContext carries everything an enemy needs for one simulation step.
type TickContext struct {
	DT         float64     // Seconds since the previous tick
	Grid       *world.Grid // Level being simulated
	Target     world.Coord // Tile the enemies hunt (the player)
	RNG        *rng.Rand   // Simulation-owned random source
	SpeedScale float64     // Difficulty multiplier; 0 means 1
}

func (ctx *TickContext) speedScale() float64 {
	if ctx.SpeedScale <= 0 {
		return 1
	}
	return ctx.SpeedScale
}

// Enemy is the common surface of regular enemies and bosses, so both can live
// in one collection and share update dispatch.
type Enemy interface {
	Update(ctx *TickContext)
	BoundingBox() Box
	OccupiedCells() []world.Coord
	Alive() bool
	ScoreValue() int
}

var (
	_ Enemy = (*Regular)(nil)
	_ Enemy = (*Boss)(nil)
)
