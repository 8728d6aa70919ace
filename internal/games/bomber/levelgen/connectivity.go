package levelgen

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/world"

func index(c world.Coord) int { return c.Y*world.Width + c.X }

func coordOf(i int) world.Coord { return world.Coord{X: i % world.Width, Y: i / world.Width} }

// Reachable marks every non-wall tile connected to the spawn tile through
// non-wall tiles. The result is indexed row-major.
func Reachable(g *world.Grid) []bool {
	seen := make([]bool, world.Width*world.Height)
	if g.TypeAt(world.PlayerSpawn.X, world.PlayerSpawn.Y) == world.TileWall {
		return seen
	}
	queue := []world.Coord{world.PlayerSpawn}
	seen[index(world.PlayerSpawn)] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors4(cur) {
			if seen[index(n)] || g.TypeAt(n.X, n.Y) == world.TileWall {
				continue
			}
			seen[index(n)] = true
			queue = append(queue, n)
		}
	}
	return seen
}

// Unreachable returns the non-wall tiles that cannot be reached from spawn.
func Unreachable(g *world.Grid) []world.Coord {
	seen := Reachable(g)
	var out []world.Coord
	for i, ok := range seen {
		c := coordOf(i)
		if !ok && g.TypeAt(c.X, c.Y) != world.TileWall {
			out = append(out, c)
		}
	}
	return out
}

// repairConnectivity opens the cheapest wall path from the reachable region
// to each isolated pocket until every open tile is reachable. Border walls
// are never removed.
func repairConnectivity(g *world.Grid) {
	for len(Unreachable(g)) > 0 {
		path := cheapestBreach(g, Reachable(g))
		if len(path) == 0 {
			return
		}
		for _, c := range path {
			clearWall(g, c.X, c.Y)
		}
	}
}

// cheapestBreach runs a 0-1 search from the reachable region, where entering
// an interior wall costs 1 and an open tile costs 0. It stops at the first
// isolated open tile and returns the walls on the way to it.
func cheapestBreach(g *world.Grid, reachable []bool) []world.Coord {
	const unvisited = -1
	size := world.Width * world.Height
	prev := make([]int, size)
	dist := make([]int, size)
	for i := range dist {
		dist[i] = unvisited
		prev[i] = unvisited
	}

	var level []int
	for i, ok := range reachable {
		if ok {
			dist[i] = 0
			level = append(level, i)
		}
	}

	for cost := 0; len(level) > 0; cost++ {
		var next []int
		for q := 0; q < len(level); q++ {
			i := level[q]
			if dist[i] != cost {
				continue
			}
			for _, n := range g.Neighbors4(coordOf(i)) {
				if world.IsBorder(n.X, n.Y) {
					continue
				}
				j := index(n)
				wall := g.TypeAt(n.X, n.Y) == world.TileWall
				step := 0
				if wall {
					step = 1
				}
				if dist[j] != unvisited && dist[j] <= cost+step {
					continue
				}
				dist[j] = cost + step
				prev[j] = i
				if !wall && !reachable[j] {
					return wallsOnPath(g, prev, j)
				}
				if wall {
					next = append(next, j)
				} else {
					level = append(level, j)
				}
			}
		}
		level = next
	}
	return nil
}

func wallsOnPath(g *world.Grid, prev []int, end int) []world.Coord {
	var walls []world.Coord
	for i := end; i != -1; i = prev[i] {
		c := coordOf(i)
		if g.TypeAt(c.X, c.Y) == world.TileWall {
			walls = append(walls, c)
		}
	}
	return walls
}
