package entity

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

// EnemyType is a regular enemy archetype.
type EnemyType uint8

const (
	EnemyBalloom EnemyType = iota
	EnemyOneal
	EnemyDoll
	EnemyMinvo
	EnemyKondoria
	EnemyOvapi
	EnemyPass
	EnemyPontan
	EnemyGhost
	EnemySplitter
	EnemyMimic
	EnemyTank
	enemyTypeCount
)

// Intelligence is how purposefully an enemy chooses its path.
type Intelligence uint8

const (
	IntelligenceLow Intelligence = iota
	IntelligenceNormal
	IntelligenceHigh
)

// String returns the name of the intelligence tier.
func (i Intelligence) String() string {
	switch i {
	case IntelligenceLow:
		return "Low"
	case IntelligenceNormal:
		return "Normal"
	case IntelligenceHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// enemyStats is the immutable per-archetype row of the lookup table.
type enemyStats struct {
	name         string
	glyph        rune
	speed        float64 // Pixels per second
	intelligence Intelligence
	passWalls    bool
	hitPoints    int
	score        int
	color        core.Color
	splits       bool
	invisibility bool
	disguise     bool
}

var enemyTable = [enemyTypeCount]enemyStats{
	EnemyBalloom:  {name: "Balloom", glyph: 'b', speed: 40, intelligence: IntelligenceLow, hitPoints: 1, score: 100, color: core.ColorOrange},
	EnemyOneal:    {name: "Oneal", glyph: 'o', speed: 60, intelligence: IntelligenceNormal, hitPoints: 1, score: 200, color: core.ColorBlue},
	EnemyDoll:     {name: "Doll", glyph: 'd', speed: 55, intelligence: IntelligenceLow, hitPoints: 1, score: 400, color: core.ColorMagenta},
	EnemyMinvo:    {name: "Minvo", glyph: 'm', speed: 75, intelligence: IntelligenceNormal, hitPoints: 1, score: 800, color: core.ColorRed},
	EnemyKondoria: {name: "Kondoria", glyph: 'k', speed: 30, intelligence: IntelligenceHigh, passWalls: true, hitPoints: 1, score: 1000, color: core.ColorBrightBlue},
	EnemyOvapi:    {name: "Ovapi", glyph: 'v', speed: 45, intelligence: IntelligenceNormal, passWalls: true, hitPoints: 1, score: 2000, color: core.ColorBrightMagenta},
	EnemyPass:     {name: "Pass", glyph: 'a', speed: 90, intelligence: IntelligenceHigh, hitPoints: 1, score: 4000, color: core.ColorBrightRed},
	EnemyPontan:   {name: "Pontan", glyph: 'p', speed: 95, intelligence: IntelligenceHigh, passWalls: true, hitPoints: 1, score: 8000, color: core.ColorBrightYellow},
	EnemyGhost:    {name: "Ghost", glyph: 'g', speed: 50, intelligence: IntelligenceNormal, passWalls: true, hitPoints: 1, score: 1500, color: core.ColorWhite, invisibility: true},
	EnemySplitter: {name: "Splitter", glyph: 's', speed: 50, intelligence: IntelligenceNormal, hitPoints: 2, score: 1200, color: core.ColorGreen, splits: true},
	EnemyMimic:    {name: "Mimic", glyph: 'i', speed: 45, intelligence: IntelligenceHigh, hitPoints: 1, score: 1800, color: core.ColorYellow, disguise: true},
	EnemyTank:     {name: "Tank", glyph: 't', speed: 30, intelligence: IntelligenceNormal, hitPoints: 3, score: 3000, color: core.ColorGray},
}

// EnemyTypes returns every archetype in declaration order.
func EnemyTypes() []EnemyType {
	types := make([]EnemyType, enemyTypeCount)
	for i := range types {
		types[i] = EnemyType(i)
	}
	return types
}

func (t EnemyType) stats() enemyStats {
	if t >= enemyTypeCount {
		return enemyStats{name: "Unknown", speed: 1, hitPoints: 1, color: core.ColorDefault}
	}
	return enemyTable[t]
}

// String returns the archetype name.
func (t EnemyType) String() string { return t.stats().name }

// Speed returns the base movement speed in pixels per second.
func (t EnemyType) Speed() float64 { return t.stats().speed }

// Intelligence returns the pathing tier.
func (t EnemyType) Intelligence() Intelligence { return t.stats().intelligence }

// CanPassWalls reports whether the archetype drifts through destructible blocks.
func (t EnemyType) CanPassWalls() bool { return t.stats().passWalls }

// HitPoints returns the number of hits needed to kill the archetype.
func (t EnemyType) HitPoints() int { return t.stats().hitPoints }

// ScoreValue returns the points awarded for a kill.
func (t EnemyType) ScoreValue() int { return t.stats().score }

// SpriteRow returns the row of the archetype in the enemy sprite sheet.
func (t EnemyType) SpriteRow() int {
	if t >= enemyTypeCount {
		return 0
	}
	return int(t)
}

// FallbackColor returns the colour used when no sprite is available.
func (t EnemyType) FallbackColor() core.Color { return t.stats().color }

// SplitsOnDeath reports whether a kill spawns smaller enemies.
func (t EnemyType) SplitsOnDeath() bool { return t.stats().splits }

// HasInvisibility reports whether the archetype periodically vanishes.
func (t EnemyType) HasInvisibility() bool { return t.stats().invisibility }

// CanDisguise reports whether the archetype hides as a block until approached.
func (t EnemyType) CanDisguise() bool { return t.stats().disguise }

// Glyph returns the single-character label used by text renderers.
func (t EnemyType) Glyph() rune {
	if g := t.stats().glyph; g != 0 {
		return g
	}
	return '?'
}

// ParseEnemyType resolves an archetype by case-insensitive name.
func ParseEnemyType(s string) (EnemyType, error) {
	for i, st := range enemyTable {
		if strings.EqualFold(st.name, s) {
			return EnemyType(i), nil
		}
	}
	return 0, fmt.Errorf("entity: unknown enemy type %q", s)
}
