package bomber

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/world"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int
	Score       int
	Lives       int
	PlayerTile  world.Coord
	PlayerX     float64
	PlayerY     float64
	Enemies     int
	EnemyTiles  []world.Coord
	BossHP      int
	PowerUps    int
	Kills       int
	LevelSeed   uint64
	Fingerprint uint64
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	tiles := make([]world.Coord, len(g.enemies))
	for i, e := range g.enemies {
		tiles[i] = e.Tile()
	}
	bossHP := 0
	if g.boss != nil {
		bossHP = g.boss.HP()
	}

	return Snapshot{
		Tick:        g.tick,
		Level:       g.level,
		Score:       g.Score(),
		Lives:       g.player.lives,
		PlayerTile:  g.player.tile(),
		PlayerX:     g.player.X,
		PlayerY:     g.player.Y,
		Enemies:     len(g.enemies),
		EnemyTiles:  tiles,
		BossHP:      bossHP,
		PowerUps:    len(g.powerUps),
		Kills:       g.kills,
		LevelSeed:   g.levelSeed,
		Fingerprint: g.print,
		State:       state,
	}
}
