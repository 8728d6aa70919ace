// Package bomber is the survival sandbox that drives the bomber core: it
// generates levels, spawns enemies, bosses and power-ups, and resolves the
// hazards that the world tiles and boss attacks leave behind. There are no
// bombs; the player survives, breaks blocks and strikes enemies at close range.
package bomber

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/levelgen"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

// Scoring and pacing.
const (
	pointsPerSecond  = 10
	levelBonus       = 1000 // Multiplied by the level number
	levelClearDelay  = 1.5  // Seconds the "level cleared" banner stays up
	bossBlockDensity = 0.1  // Block density cap on boss levels
	defaultTickRate  = 60
)

// Game implements the bomber survival sandbox.
type Game struct {
	scenario   Scenario
	cfg        config.BomberConfig
	difficulty *config.DifficultyManager

	rng       *rng.Rand
	aiRNG     *rng.Rand // Enemy and boss decisions; split off per level
	seed      int64
	level     int
	layout    levelgen.Layout
	mechanic  levelgen.Mechanic
	enemyPool []entity.EnemyType

	grid      *world.Grid
	levelSeed uint64
	params    levelgen.Params
	print     uint64 // Fingerprint of the generated level

	player   *player
	enemies  []*entity.Regular
	boss     *entity.Boss
	powerUps []*entity.PowerUp
	digs     []world.Coord

	tick       uint64
	tickRate   int
	dt         float64
	spawnTimer float64
	bonus      int
	kills      int
	lastHit    string

	// Screen layout
	screenW, screenH int
	tileW, tileH     int
	offsetX, offsetY int
	tooSmall         bool

	gameOver        bool
	won             bool
	paused          bool
	levelCleared    bool
	levelClearTicks int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a sandbox for the given scenario.
func New(s Scenario) *Game {
	return &Game{scenario: s}
}

// ID returns the scenario identifier.
func (g *Game) ID() string {
	return g.scenario.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.scenario.Title
}

// Reset initializes or restarts the sandbox.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBomber(configPath)
	if err != nil {
		cfg = config.DefaultBomberConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBomberPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.dt = 1.0 / float64(g.tickRate)

	g.seed = runtime.Seed
	if g.scenario.Daily {
		g.seed = DailySeed(time.Now())
	}
	g.rng = rng.FromInt64(g.seed)

	g.layout = g.resolveLayout()
	g.mechanic = g.resolveMechanic()
	g.enemyPool = g.resolveEnemyPool()

	g.player = newPlayer(max(1, cfg.Player.Lives))
	g.tick = 0
	g.bonus = 0
	g.kills = 0
	g.lastHit = ""
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.levelClearTicks = 0
	g.level = 1

	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.loadLevel()
}

func (g *Game) resolveLayout() levelgen.Layout {
	name := g.scenario.Layout
	if name == "" {
		name = g.cfg.Level.Layout
	}
	l, err := levelgen.ParseLayout(name)
	if err != nil {
		return levelgen.LayoutClassic
	}
	return l
}

func (g *Game) resolveMechanic() levelgen.Mechanic {
	name := g.scenario.Mechanic
	if name == "" {
		name = g.cfg.Level.Mechanic
	}
	m, err := levelgen.ParseMechanic(name)
	if err != nil {
		return levelgen.MechanicNone
	}
	return m
}

// resolveEnemyPool parses the archetype names, skipping unknown ones.
func (g *Game) resolveEnemyPool() []entity.EnemyType {
	names := g.scenario.Enemies
	if len(names) == 0 {
		names = g.cfg.Enemies.Types
	}
	var pool []entity.EnemyType
	for _, n := range names {
		if t, err := entity.ParseEnemyType(n); err == nil {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		pool = []entity.EnemyType{entity.EnemyBalloom}
	}
	return pool
}

// layoutForLevel returns the layout of the current level.
func (g *Game) layoutForLevel() levelgen.Layout {
	if !g.scenario.CycleLayouts {
		return g.layout
	}
	all := levelgen.Layouts()
	return all[(int(g.layout)+g.level-1)%len(all)]
}

// loadLevel generates the current level and places every entity.
func (g *Game) loadLevel() {
	density := g.cfg.Level.BlockDensity
	if g.scenario.HasBoss {
		density = min(density, bossBlockDensity)
	}
	g.levelSeed = g.rng.Next()
	g.aiRNG = g.rng.Split()
	g.params = levelgen.Params{
		Layout:        g.layoutForLevel(),
		Mechanic:      g.mechanic,
		BlockDensity:  density,
		PowerUpChance: g.cfg.Level.PowerUpChance,
		PowerUps:      powerUpPool,
		WithExit:      g.cfg.Level.Exit && !g.scenario.HasBoss,
		Seed:          g.levelSeed,
	}
	g.grid = levelgen.Generate(g.params)
	g.print = levelgen.Fingerprint(g.grid)

	g.player.placeAt(world.PlayerSpawn)
	g.player.heading = world.DirNone
	g.player.queued = world.DirNone
	g.player.forced = world.DirNone
	g.enemies = g.enemies[:0]
	g.powerUps = g.powerUps[:0]
	g.digs = g.digs[:0]
	g.boss = nil
	g.spawnTimer = g.cfg.PowerUps.SpawnInterval

	if g.scenario.HasBoss {
		g.spawnBoss()
		return
	}
	for i, n := 0, max(0, g.cfg.Enemies.Count); i < n; i++ {
		g.spawnEnemy()
	}
}

// Step advances the sandbox by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     int64(g.rng.Next() >> 1),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if float64(g.levelClearTicks)*g.dt >= levelClearDelay {
			g.nextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.handleInput(in)
	g.updatePlayer()
	g.updateDigs()

	ctx := g.tickContext()
	g.updateEnemies(ctx)
	g.updateBoss(ctx)
	g.updatePowerUps()
	g.grid.Tick(g.dt)

	g.checkHazards()
	if !g.scenario.HasBoss {
		g.maintainPopulation()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.player.steer(world.DirUp)
	case in.Has(core.ActionDown):
		g.player.steer(world.DirDown)
	case in.Has(core.ActionLeft):
		g.player.steer(world.DirLeft)
	case in.Has(core.ActionRight):
		g.player.steer(world.DirRight)
	case in.Has(core.ActionDuck):
		g.player.steer(world.DirNone)
	}
	if in.Has(core.ActionJump) {
		g.strike()
	}
}

func (g *Game) tickContext() *entity.TickContext {
	return &entity.TickContext{
		DT:         g.dt,
		Grid:       g.grid,
		Target:     g.player.tile(),
		RNG:        g.aiRNG,
		SpeedScale: g.difficulty.Speed(1.0, g.Score(), int(g.tick)),
	}
}

// nextLevel regenerates the grid and keeps the player's progress.
func (g *Game) nextLevel() {
	g.level++
	g.levelCleared = false
	g.levelClearTicks = 0
	g.loadLevel()
}

// clearLevel ends the level with a bonus.
func (g *Game) clearLevel() {
	g.bonus += levelBonus * g.level
	g.levelCleared = true
	g.levelClearTicks = 0
}

// Score returns time survived plus every bonus earned.
func (g *Game) Score() int {
	return int(g.tick)/g.tickRate*pointsPerSecond + g.bonus
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Grid exposes the live level for inspection.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// LevelInfo describes how the current level was generated.
type LevelInfo struct {
	Level        int
	Layout       levelgen.Layout
	Mechanic     levelgen.Mechanic
	BlockDensity float64
	Seed         uint64
	Fingerprint  uint64
}

// LevelInfo returns the generation record of the current level. Passing the
// same layout, mechanic, density and seed to levelgen.Generate reproduces a
// grid with the same fingerprint.
func (g *Game) LevelInfo() LevelInfo {
	return LevelInfo{
		Level:        g.level,
		Layout:       g.params.Layout,
		Mechanic:     g.params.Mechanic,
		BlockDensity: g.params.BlockDensity,
		Seed:         g.levelSeed,
		Fingerprint:  g.print,
	}
}
