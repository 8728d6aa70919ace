package levelgen

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// ASCII tile legend:
//
//	. empty      # wall        % block       E exit
//	~ ice        < > ^ v conveyor (push direction)
//	0-9 teleporter (pair colour id)
//	! lava crack o platform gap
var conveyorGlyphs = map[world.Dir]rune{
	world.DirLeft:  '<',
	world.DirRight: '>',
	world.DirUp:    '^',
	world.DirDown:  'v',
}

// TileGlyph returns the ASCII character of a cell.
func TileGlyph(c *world.Cell) rune {
	switch c.Type {
	case world.TileWall:
		return '#'
	case world.TileBlock:
		return '%'
	case world.TileExit:
		return 'E'
	case world.TileIce:
		return '~'
	case world.TileConveyor:
		if g, ok := conveyorGlyphs[c.ConveyorDirection]; ok {
			return g
		}
		return '='
	case world.TileTeleporter:
		return rune('0' + c.TeleporterColorID%10)
	case world.TileLavaCrack:
		return '!'
	case world.TilePlatformGap:
		return 'o'
	default:
		return '.'
	}
}

// RenderASCII returns the grid as Height lines of Width glyphs.
func RenderASCII(g *world.Grid) string {
	var sb strings.Builder
	sb.Grow((world.Width + 1) * world.Height)
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			sb.WriteRune(TileGlyph(g.Cell(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseASCII builds a grid from RenderASCII-style rows. Teleporters with the
// same digit are linked to each other.
func ParseASCII(rows []string) (*world.Grid, error) {
	if len(rows) != world.Height {
		return nil, fmt.Errorf("levelgen: expected %d rows, got %d", world.Height, len(rows))
	}
	g := world.NewGrid()
	portals := make(map[int][]world.Coord)

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != world.Width {
			return nil, fmt.Errorf("levelgen: row %d has %d tiles, want %d", y, len(runes), world.Width)
		}
		for x, ch := range runes {
			c := g.Cell(x, y)
			switch {
			case ch == '.':
			case ch == '#':
				c.Type = world.TileWall
			case ch == '%':
				c.Type = world.TileBlock
			case ch == 'E':
				c.Type = world.TileExit
			case ch == '~':
				c.Type = world.TileIce
			case ch == '!':
				c.Type = world.TileLavaCrack
			case ch == 'o':
				c.Type = world.TilePlatformGap
			case ch >= '0' && ch <= '9':
				id := int(ch - '0')
				c.Type = world.TileTeleporter
				c.TeleporterColorID = id
				portals[id] = append(portals[id], world.C(x, y))
			default:
				dir, ok := conveyorDir(ch)
				if !ok {
					return nil, fmt.Errorf("levelgen: unknown tile %q at (%d,%d)", ch, x, y)
				}
				c.Type = world.TileConveyor
				c.ConveyorDirection = dir
			}
		}
	}

	for id, ends := range portals {
		if len(ends) != 2 {
			return nil, fmt.Errorf("levelgen: teleporter %d has %d ends, want 2", id, len(ends))
		}
		link(g.At(ends[0]), ends[1], id)
		link(g.At(ends[1]), ends[0], id)
	}
	return g, nil
}

func conveyorDir(ch rune) (world.Dir, bool) {
	for d, g := range conveyorGlyphs {
		if g == ch {
			return d, true
		}
	}
	return world.DirNone, false
}
