package bomber

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/levelgen"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

const (
	hudHeight    = 2 // Status line plus separator
	footerHeight = 1
)

// tileScales are the tile sizes in characters tried from largest to smallest.
var tileScales = [][2]int{{4, 2}, {2, 1}}

// Resize fits the grid to a new screen size without resetting the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = true
	for _, s := range tileScales {
		gw, gh := world.Width*s[0], world.Height*s[1]
		if w >= gw && h >= hudHeight+gh+footerHeight {
			g.tileW, g.tileH = s[0], s[1]
			g.offsetX = (w - gw) / 2
			g.offsetY = hudHeight
			g.tooSmall = false
			return
		}
	}
}

var powerUpGlyphs = map[world.PowerUpType]rune{
	world.PowerUpBombUp:     'B',
	world.PowerUpFireUp:     'F',
	world.PowerUpSpeedUp:    'S',
	world.PowerUpWallPass:   'W',
	world.PowerUpBombPass:   'P',
	world.PowerUpFlamePass:  'L',
	world.PowerUpDetonator:  'D',
	world.PowerUpInvincible: 'I',
	world.PowerUpExtraLife:  '+',
}

var effectGlyphs = [world.EffectKindCount]struct {
	r rune
	c core.Color
}{
	world.EffectFreeze:      {'*', core.ColorBrightCyan},
	world.EffectLavaPuddle:  {'≈', core.ColorRed},
	world.EffectSmoke:       {'░', core.ColorGray},
	world.EffectPoison:      {'§', core.ColorGreen},
	world.EffectGravityWell: {'@', core.ColorMagenta},
	world.EffectTimeWarp:    {'&', core.ColorBlue},
	world.EffectBlackHole:   {'O', core.ColorBrightMagenta},
}

// tileLook returns the glyph and colour of a tile's terrain.
func tileLook(c *world.Cell) (rune, core.Color) {
	switch c.Type {
	case world.TileWall:
		return '█', core.ColorGray
	case world.TileBlock:
		if c.IsDestroying {
			return '▓', core.ColorYellow
		}
		return '▒', core.ColorOrange
	case world.TileExit:
		return 'E', core.ColorBrightGreen
	case world.TileIce:
		return '~', core.ColorBrightCyan
	case world.TileConveyor:
		return levelgen.TileGlyph(c), core.ColorCyan
	case world.TileTeleporter:
		if c.IsTeleporterReady() {
			return levelgen.TileGlyph(c), core.ColorBrightMagenta
		}
		return levelgen.TileGlyph(c), core.ColorMagenta
	case world.TileLavaCrack:
		if c.IsLavaCrackActive() {
			return '!', core.ColorBrightRed
		}
		return '!', core.ColorOrange
	case world.TilePlatformGap:
		return ' ', core.ColorDefault
	default:
		return '·', core.ColorGray
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", world.Width*2, hudHeight+world.Height+footerHeight))
		return
	}

	g.renderGrid(dst)
	g.renderPowerUps(dst)
	g.renderEnemies(dst)
	g.renderBoss(dst)
	g.renderPlayer(dst)
	g.renderFooter(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Victory!", fmt.Sprintf("Final Score: %d", g.Score()))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.level), g.layoutForLevel().String())
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Lives: %d  Level: %d  Time: %ds",
		g.scenario.Title, g.Score(), g.player.lives, g.level, int(g.tick)/g.tickRate)
	if g.boss != nil {
		hud += fmt.Sprintf("  %s HP: %d/%d", g.boss.Kind, g.boss.HP(), g.boss.MaxHP)
		if g.boss.IsEnraged() {
			hud += " ENRAGED"
		}
	}
	dst.DrawText(0, 0, hud)

	for x, n := 0, dst.Width(); x < n; x++ {
		dst.Set(x, 1, '─')
	}
}

// fillTile paints every character of a tile.
func (g *Game) fillTile(dst *core.Screen, c world.Coord, r rune, col core.Color) {
	for dy, n := 0, g.tileH; dy < n; dy++ {
		for dx, n := 0, g.tileW; dx < n; dx++ {
			dst.SetColored(g.offsetX+c.X*g.tileW+dx, g.offsetY+c.Y*g.tileH+dy, r, col)
		}
	}
}

// putAt draws a single glyph at a pixel position.
func (g *Game) putAt(dst *core.Screen, px, py float64, r rune, col core.Color) {
	x := g.offsetX + int(px*float64(g.tileW)/world.TileSize)
	y := g.offsetY + int(py*float64(g.tileH)/world.TileSize)
	dst.SetColored(x, y, r, col)
}

func (g *Game) renderGrid(dst *core.Screen) {
	blink := g.tick/10%2 == 0
	var telegraph map[world.Coord]bool
	if g.boss != nil && (g.boss.IsTelegraphing() || g.boss.IsAttacking()) {
		telegraph = make(map[world.Coord]bool)
		for _, c := range g.boss.AttackTargetCells() {
			telegraph[c] = true
		}
	}

	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			c, _ := g.grid.Peek(x, y)
			r, col := tileLook(&c)
			if active := c.ActiveEffects(); len(active) > 0 {
				e := effectGlyphs[active[len(active)-1]]
				r, col = e.r, e.c
			}
			if telegraph[c.Coord()] {
				switch {
				case g.boss.IsAttacking():
					r, col = '#', core.ColorBrightRed
				case blink:
					r, col = '!', core.ColorBrightYellow
				}
			}
			g.fillTile(dst, c.Coord(), r, col)
		}
	}
}

func (g *Game) renderPowerUps(dst *core.Screen) {
	for _, pu := range g.powerUps {
		if !pu.Visible || (pu.Blinking && g.tick/8%2 == 1) {
			continue
		}
		r := powerUpGlyphs[pu.PowerUpType()]
		if pu.IsCollecting() && pu.Scale() < 0.5 {
			r = '·'
		}
		g.putAt(dst, pu.X, pu.Y, r, core.ColorBrightYellow)
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.enemies {
		switch {
		case e.Disguised:
			g.putAt(dst, e.X, e.Y, '▒', core.ColorOrange)
		case e.Visible:
			g.putAt(dst, e.X, e.Y, e.Type.Glyph(), e.Type.FallbackColor())
		}
	}
}

func (g *Game) renderBoss(dst *core.Screen) {
	if g.boss == nil || !g.boss.Alive() {
		return
	}
	col := g.boss.Kind.FallbackColor()
	if g.boss.IsEnraged() && g.tick/6%2 == 0 {
		col = core.ColorBrightRed
	}
	for _, c := range g.boss.OccupiedCells() {
		g.fillTile(dst, c, g.boss.Kind.Glyph(), col)
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.player
	if p.invuln > 0 && g.tick/4%2 == 1 {
		return
	}
	col := core.ColorBrightWhite
	if p.invincible > 0 {
		col = core.ColorBrightYellow
	}
	g.putAt(dst, p.X, p.Y, '@', col)
}

// renderFooter lists the player's upgrades under the grid.
func (g *Game) renderFooter(dst *core.Screen) {
	p := g.player
	parts := []string{fmt.Sprintf("Speed+%d", p.speedUps), fmt.Sprintf("Kills %d", g.kills)}
	if p.reach > 1 {
		parts = append(parts, fmt.Sprintf("Reach %d", p.reach))
	}
	if p.haste > 0 {
		parts = append(parts, fmt.Sprintf("Haste+%d", p.haste))
	}
	if p.wallPass {
		parts = append(parts, "WallPass")
	}
	if p.flamePass {
		parts = append(parts, "FlamePass")
	}
	if p.invincible > 0 {
		parts = append(parts, fmt.Sprintf("Invincible %.0fs", p.invincible))
	}
	if g.lastHit != "" {
		parts = append(parts, "Last hit: "+g.lastHit)
	}
	y := g.offsetY + world.Height*g.tileH
	dst.DrawTextColored(g.offsetX, y, strings.Join(parts, "  "), core.ColorGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	g.drawCenteredText(dst, line1, box.Y+1)
	g.drawCenteredText(dst, line2, box.Y+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	dst.DrawTextCentered(y, text)
}
