// Package levelgen builds playable levels in three seeded stages: a wall
// layout, world-mechanic tiles, then destructible blocks. Given the same seed
// and call sequence the output is identical.
package levelgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Layout is a named wall pattern.
type Layout uint8

const (
	LayoutClassic Layout = iota
	LayoutCross
	LayoutArena
	LayoutMaze
	LayoutTwoRooms
	LayoutSpiral
	LayoutDiagonal
	LayoutBossArena
	LayoutLabyrinth
	LayoutSymmetry
	LayoutIslands
	LayoutChaos
	layoutCount
)

// ErrUnknownLayout is returned by ParseLayout for unrecognised names.
var ErrUnknownLayout = errors.New("levelgen: unknown layout")

var layoutNames = [layoutCount]string{
	LayoutClassic:   "Classic",
	LayoutCross:     "Cross",
	LayoutArena:     "Arena",
	LayoutMaze:      "Maze",
	LayoutTwoRooms:  "TwoRooms",
	LayoutSpiral:    "Spiral",
	LayoutDiagonal:  "Diagonal",
	LayoutBossArena: "BossArena",
	LayoutLabyrinth: "Labyrinth",
	LayoutSymmetry:  "Symmetry",
	LayoutIslands:   "Islands",
	LayoutChaos:     "Chaos",
}

func (l Layout) String() string {
	if l >= layoutCount {
		return "Unknown"
	}
	return layoutNames[l]
}

// Layouts returns every layout in declaration order.
func Layouts() []Layout {
	out := make([]Layout, layoutCount)
	for i := range out {
		out[i] = Layout(i)
	}
	return out
}

// ParseLayout resolves a layout by case-insensitive name.
func ParseLayout(s string) (Layout, error) {
	for i, name := range layoutNames {
		if strings.EqualFold(name, s) {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Layout tuning.
const (
	chaosSeed       = 42
	chaosWallChance = 0.2
	mazeBraidChance = 0.35
	labyrinthExtend = 0.4
)

// symmetryQuadrant is the top-left quarter of the Symmetry layout. Column 0
// is x=1 and row 0 is y=1; it is mirrored across both axes.
var symmetryQuadrant = [4]string{
	".......",
	".#.#.#.",
	".#...##",
	"...#...",
}

// islandAnchors are the top-left tiles of the 2x2 Islands blocks.
var islandAnchors = []world.Coord{{X: 3, Y: 2}, {X: 8, Y: 2}, {X: 3, Y: 6}, {X: 8, Y: 6}, {X: 11, Y: 4}, {X: 5, Y: 4}}

// SetupLayoutPattern clears g and lays the border and the wall pattern.
// The spawn pocket is never walled and every open tile is left reachable
// from the spawn tile.
func SetupLayoutPattern(g *world.Grid, layout Layout, r *rng.Rand) {
	g.Reset()
	placeBorder(g)

	switch layout {
	case LayoutCross:
		layoutCross(g)
	case LayoutArena:
		layoutArena(g)
	case LayoutMaze:
		layoutMaze(g, r)
	case LayoutTwoRooms:
		layoutTwoRooms(g)
	case LayoutSpiral:
		layoutSpiral(g)
	case LayoutDiagonal:
		layoutDiagonal(g)
	case LayoutBossArena:
		layoutBossArena(g)
	case LayoutLabyrinth:
		layoutLabyrinth(g, r)
	case LayoutSymmetry:
		layoutSymmetry(g)
	case LayoutIslands:
		layoutIslands(g)
	case LayoutChaos:
		layoutChaos(g)
	default:
		layoutClassic(g)
	}

	repairConnectivity(g)
}

func placeBorder(g *world.Grid) {
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			if world.IsBorder(x, y) {
				g.Cell(x, y).Type = world.TileWall
			}
		}
	}
}

// setWall walls an interior tile unless it belongs to the spawn pocket.
func setWall(g *world.Grid, x, y int) {
	if world.IsBorder(x, y) || world.InSpawnPocket(x, y) {
		return
	}
	if c, ok := g.TryGetCell(x, y); ok {
		c.Type = world.TileWall
	}
}

func clearWall(g *world.Grid, x, y int) {
	if world.IsBorder(x, y) {
		return
	}
	if c, ok := g.TryGetCell(x, y); ok && c.Type == world.TileWall {
		c.Type = world.TileEmpty
	}
}

func isPillar(x, y int) bool {
	return x%2 == 0 && y%2 == 0
}

func layoutClassic(g *world.Grid) {
	for y := 1; y < world.Height-1; y++ {
		for x := 1; x < world.Width-1; x++ {
			if isPillar(x, y) {
				setWall(g, x, y)
			}
		}
	}
}

func layoutCross(g *world.Grid) {
	for x := 2; x <= 12; x++ {
		if x < 6 || x > 8 {
			setWall(g, x, 5)
		}
	}
	for y := 2; y <= 7; y++ {
		if y < 4 || y > 5 {
			setWall(g, 7, y)
		}
	}
}

// layoutArena keeps classic pillars only in the ring next to the border.
func layoutArena(g *world.Grid) {
	for y := 1; y < world.Height-1; y++ {
		for x := 1; x < world.Width-1; x++ {
			if isPillar(x, y) && (x == 2 || x == world.Width-3 || y == 2 || y == world.Height-2) {
				setWall(g, x, y)
			}
		}
	}
}

// layoutMaze carves a recursive-backtracker maze over the odd tiles of rows
// 1..7, braids some dead ends, and gives the last interior row classic pillars.
func layoutMaze(g *world.Grid, r *rng.Rand) {
	const mazeBottom = world.Height - 3
	for y := 1; y <= mazeBottom; y++ {
		for x := 1; x < world.Width-1; x++ {
			setWall(g, x, y)
		}
	}
	for x := 2; x < world.Width-1; x += 2 {
		setWall(g, x, world.Height-2)
	}

	isCell := func(c world.Coord) bool {
		return c.X >= 1 && c.X < world.Width-1 && c.Y >= 1 && c.Y <= mazeBottom && c.X%2 == 1 && c.Y%2 == 1
	}

	visited := make(map[world.Coord]bool)
	start := world.PlayerSpawn
	stack := []world.Coord{start}
	visited[start] = true
	clearWall(g, start.X, start.Y)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		var next [4]world.Coord
		n := 0
		for _, d := range world.Cardinals {
			dx, dy := d.Delta()
			c := cur.Add(2*dx, 2*dy)
			if isCell(c) && !visited[c] {
				next[n] = c
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		c := next[r.Intn(n)]
		clearWall(g, (cur.X+c.X)/2, (cur.Y+c.Y)/2)
		clearWall(g, c.X, c.Y)
		visited[c] = true
		stack = append(stack, c)
	}

	// Braid: open one extra wall around some dead ends.
	for y := 1; y <= mazeBottom; y += 2 {
		for x := 1; x < world.Width-1; x += 2 {
			var walls [4]world.Coord
			n := 0
			for _, d := range world.Cardinals {
				w := world.C(x, y).Step(d)
				if g.TypeAt(w.X, w.Y) == world.TileWall && !world.IsBorder(w.X, w.Y) {
					walls[n] = w
					n++
				}
			}
			if n >= 3 && r.Chance(mazeBraidChance) {
				w := walls[r.Intn(n)]
				clearWall(g, w.X, w.Y)
			}
		}
	}
}

func layoutTwoRooms(g *world.Grid) {
	const divider = world.Width / 2
	for y := 1; y < world.Height-1; y++ {
		if y == 2 || y == world.Height-3 {
			continue
		}
		setWall(g, divider, y)
	}
	for _, x := range []int{3, world.Width - 4} {
		for _, y := range []int{3, world.Height - 4} {
			setWall(g, x, y)
		}
	}
}

// layoutSpiral draws an outer ring open on its left side and an inner hook
// that curls toward the centre.
func layoutSpiral(g *world.Grid) {
	ring(g, 2, 2, world.Width-3, world.Height-3, world.C(2, 6))
	for x := 4; x <= world.Width-5; x++ {
		setWall(g, x, 4)
	}
	setWall(g, world.Width-5, 5)
}

// ring walls the rectangle outline between (x0,y0) and (x1,y1) except gap.
func ring(g *world.Grid, x0, y0, x1, y1 int, gap world.Coord) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			onEdge := x == x0 || x == x1 || y == y0 || y == y1
			if onEdge && (world.Coord{X: x, Y: y}) != gap {
				setWall(g, x, y)
			}
		}
	}
}

func layoutDiagonal(g *world.Grid) {
	for y := 1; y < world.Height-1; y++ {
		for x := 1; x < world.Width-1; x++ {
			if ((x-y)%4+4)%4 == 0 && x%3 != 0 {
				setWall(g, x, y)
			}
		}
	}
}

func layoutBossArena(g *world.Grid) {
	for _, p := range []world.Coord{{X: 3, Y: 3}, {X: 11, Y: 3}, {X: 3, Y: 6}, {X: 11, Y: 6}} {
		setWall(g, p.X, p.Y)
	}
}

// layoutLabyrinth grows some classic pillars by one tile in a random direction.
func layoutLabyrinth(g *world.Grid, r *rng.Rand) {
	for y := 2; y < world.Height-1; y += 2 {
		for x := 2; x < world.Width-1; x += 2 {
			setWall(g, x, y)
			if r.Chance(labyrinthExtend) {
				d := world.Cardinals[r.Intn(len(world.Cardinals))]
				ext := world.C(x, y).Step(d)
				setWall(g, ext.X, ext.Y)
			}
		}
	}
}

func layoutSymmetry(g *world.Grid) {
	for qy, row := range symmetryQuadrant {
		for qx, ch := range row {
			if ch != '#' {
				continue
			}
			x, y := qx+1, qy+1
			mx, my := world.Width-1-x, world.Height-1-y
			setWall(g, x, y)
			setWall(g, mx, y)
			setWall(g, x, my)
			setWall(g, mx, my)
		}
	}
}

func layoutIslands(g *world.Grid) {
	for _, a := range islandAnchors {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				setWall(g, a.X+dx, a.Y+dy)
			}
		}
	}
}

// layoutChaos scatters walls from its own fixed seed so the pattern is the
// same whatever seed the level uses.
func layoutChaos(g *world.Grid) {
	r := rng.New(chaosSeed)
	for y := 1; y < world.Height-1; y++ {
		for x := 1; x < world.Width-1; x++ {
			if r.Chance(chaosWallChance) {
				setWall(g, x, y)
			}
		}
	}
}
