package levelgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Mechanic is the world-mechanic tile type stamped onto a level.
type Mechanic uint8

const (
	MechanicNone Mechanic = iota
	MechanicIce
	MechanicConveyor
	MechanicTeleporter
	MechanicLavaCrack
	MechanicPlatformGap
	mechanicCount
)

// ErrUnknownMechanic is returned by ParseMechanic for unrecognised names.
var ErrUnknownMechanic = errors.New("levelgen: unknown mechanic")

var mechanicNames = [mechanicCount]string{
	MechanicNone:        "None",
	MechanicIce:         "Ice",
	MechanicConveyor:    "Conveyor",
	MechanicTeleporter:  "Teleporter",
	MechanicLavaCrack:   "LavaCrack",
	MechanicPlatformGap: "PlatformGap",
}

func (m Mechanic) String() string {
	if m >= mechanicCount {
		return "Unknown"
	}
	return mechanicNames[m]
}

// Mechanics returns every mechanic in declaration order.
func Mechanics() []Mechanic {
	out := make([]Mechanic, mechanicCount)
	for i := range out {
		out[i] = Mechanic(i)
	}
	return out
}

// ParseMechanic resolves a mechanic by case-insensitive name.
func ParseMechanic(s string) (Mechanic, error) {
	for i, name := range mechanicNames {
		if strings.EqualFold(name, s) {
			return Mechanic(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMechanic, s)
}

// Mechanic coverage ranges. Fractions are of the eligible empty tiles.
const (
	iceMin                = 0.30
	iceMax                = 0.45
	lavaMin               = 0.15
	lavaMax               = 0.25
	gapMin                = 0.10
	gapMax                = 0.15
	conveyorStripsMin     = 4
	conveyorStripsMax     = 8
	conveyorLenMin        = 3
	conveyorLenMax        = 6
	conveyorStartAttempts = 20
	teleporterPairsMin    = 2
	teleporterPairsMax    = 3
	teleporterMinDistance = 5
)

// eligible returns the empty interior tiles outside the spawn pocket in
// row-major order.
func eligible(g *world.Grid) []world.Coord {
	var out []world.Coord
	g.Each(func(c *world.Cell) {
		if c.Type == world.TileEmpty && !world.InSpawnPocket(c.X(), c.Y()) {
			out = append(out, c.Coord())
		}
	})
	return out
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle(cells []world.Coord, r *rng.Rand) {
	for i := len(cells) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cells[i], cells[j] = cells[j], cells[i]
	}
}

// PlaceWorldMechanicCells stamps one mechanic onto the eligible empty tiles.
// It never fails; when the pool runs out it places fewer tiles.
func PlaceWorldMechanicCells(g *world.Grid, m Mechanic, r *rng.Rand) {
	switch m {
	case MechanicIce:
		stampFraction(g, r, r.FloatRange(iceMin, iceMax), func(c *world.Cell) {
			c.Type = world.TileIce
		})
	case MechanicConveyor:
		placeConveyors(g, r)
	case MechanicTeleporter:
		placeTeleporters(g, r)
	case MechanicLavaCrack:
		stampFraction(g, r, r.FloatRange(lavaMin, lavaMax), func(c *world.Cell) {
			c.Type = world.TileLavaCrack
			c.LavaCrackTimer = r.FloatRange(0, world.LavaCrackPeriod)
		})
	case MechanicPlatformGap:
		stampFraction(g, r, r.FloatRange(gapMin, gapMax), func(c *world.Cell) {
			c.Type = world.TilePlatformGap
		})
	}
}

// stampFraction shuffles the eligible pool and applies fn to the first
// floor(len*fraction) tiles.
func stampFraction(g *world.Grid, r *rng.Rand, fraction float64, fn func(c *world.Cell)) {
	pool := eligible(g)
	shuffle(pool, r)
	n := int(float64(len(pool)) * fraction)
	for _, p := range pool[:n] {
		fn(g.At(p))
	}
}

func placeConveyors(g *world.Grid, r *rng.Rand) {
	strips := r.Range(conveyorStripsMin, conveyorStripsMax)
	for s := 0; s < strips; s++ {
		length := r.Range(conveyorLenMin, conveyorLenMax)
		horizontal := r.Chance(0.5)
		var dir world.Dir
		switch {
		case horizontal && r.Chance(0.5):
			dir = world.DirLeft
		case horizontal:
			dir = world.DirRight
		case r.Chance(0.5):
			dir = world.DirUp
		default:
			dir = world.DirDown
		}

		pool := eligible(g)
		if len(pool) == 0 {
			return
		}
		for attempt := 0; attempt < conveyorStartAttempts; attempt++ {
			start := pool[r.Intn(len(pool))]
			if stripFits(g, start, horizontal, length) {
				layStrip(g, start, horizontal, dir, length)
				break
			}
		}
	}
}

func stripStep(horizontal bool) world.Dir {
	if horizontal {
		return world.DirRight
	}
	return world.DirDown
}

// stripFits reports whether length eligible tiles run from start rightward
// or downward.
func stripFits(g *world.Grid, start world.Coord, horizontal bool, length int) bool {
	p := start
	for i := 0; i < length; i++ {
		c, ok := g.TryGetCell(p.X, p.Y)
		if !ok || c.Type != world.TileEmpty || world.InSpawnPocket(p.X, p.Y) {
			return false
		}
		p = p.Step(stripStep(horizontal))
	}
	return true
}

func layStrip(g *world.Grid, start world.Coord, horizontal bool, dir world.Dir, length int) {
	p := start
	for i := 0; i < length; i++ {
		c := g.At(p)
		c.Type = world.TileConveyor
		c.ConveyorDirection = dir
		p = p.Step(stripStep(horizontal))
	}
}

// placeTeleporters links pairs of far-apart tiles. Each pair shares a colour
// id equal to its index.
func placeTeleporters(g *world.Grid, r *rng.Rand) {
	pairs := r.Range(teleporterPairsMin, teleporterPairsMax)
	pool := eligible(g)
	shuffle(pool, r)

	for id := 0; id < pairs; id++ {
		if len(pool) < 2 {
			return
		}
		a := pool[0]
		partner := -1
		for i := 1; i < len(pool); i++ {
			if pool[i].Manhattan(a) >= teleporterMinDistance {
				partner = i
				break
			}
		}
		if partner < 0 {
			pool = pool[1:]
			id--
			continue
		}
		b := pool[partner]
		link(g.At(a), b, id)
		link(g.At(b), a, id)

		pool = append(pool[1:partner], pool[partner+1:]...)
	}
}

func link(c *world.Cell, target world.Coord, colorID int) {
	c.Type = world.TileTeleporter
	c.TeleporterTarget = target
	c.TeleporterLinked = true
	c.TeleporterColorID = colorID
}
