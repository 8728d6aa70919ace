package bomber

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/levelgen"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

var testRuntime = core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

// openRows is an empty walled arena; callers patch single tiles.
func openRows() []string {
	rows := make([]string, world.Height)
	for y := range rows {
		if y == 0 || y == world.Height-1 {
			rows[y] = strings.Repeat("#", world.Width)
		} else {
			rows[y] = "#" + strings.Repeat(".", world.Width-2) + "#"
		}
	}
	return rows
}

func patch(rows []string, x, y int, ch byte) []string {
	b := []byte(rows[y])
	b[x] = ch
	rows[y] = string(b)
	return rows
}

// newTestGame builds a sandbox on a hand-made level with no enemies and no
// power-up spawner.
func newTestGame(t *testing.T, rows []string) *Game {
	t.Helper()
	g := New(Scenario{ID: "test", Title: "Test"})
	g.Reset(testRuntime)

	grid, err := levelgen.ParseASCII(rows)
	if err != nil {
		t.Fatalf("ParseASCII: %v", err)
	}
	cfg := config.DefaultBomberConfig()
	cfg.Enemies.Count = 0
	cfg.PowerUps.SpawnInterval = 0
	cfg.Difficulty.Enabled = false
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.grid = grid
	g.enemies = nil
	g.powerUps = nil
	g.digs = nil
	g.boss = nil
	g.player = newPlayer(cfg.Player.Lives)
	return g
}

// run steps the game n ticks; press is applied on the first tick only.
func run(g *Game, n int, press ...core.Action) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		in.Clear()
		if i == 0 {
			for _, a := range press {
				in.Set(a)
			}
		}
		g.Step(in)
	}
}

func TestScenariosRegistered(t *testing.T) {
	for _, s := range Scenarios() {
		if !registry.Exists(s.ID) {
			t.Errorf("scenario %q is not registered", s.ID)
			continue
		}
		game, err := registry.Create(s.ID)
		if err != nil {
			t.Fatalf("Create(%q): %v", s.ID, err)
		}
		if game.Title() != s.Title {
			t.Errorf("Title() = %q, expected %q", game.Title(), s.Title)
		}
	}
	if _, ok := LookupScenario("boss_hydra"); !ok {
		t.Error("boss_hydra should be a known scenario")
	}
}

func TestDeterminism(t *testing.T) {
	s, _ := LookupScenario("survival")
	g1, g2 := New(s), New(s)
	g1.Reset(testRuntime)
	g2.Reset(testRuntime)

	in := core.NewInputFrame()
	for i := 0; i < 900; i++ {
		in.Clear()
		switch i {
		case 10:
			in.Set(core.ActionRight)
		case 200:
			in.Set(core.ActionDown)
		case 400:
			in.Set(core.ActionJump)
		case 600:
			in.Set(core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if a, b := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(a, b) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", a, b)
	}
	if g1.Grid().TileTypes() == nil {
		t.Fatal("grid should be generated")
	}
}

func TestEnemyDecisionsUseLevelStream(t *testing.T) {
	s, _ := LookupScenario("survival")
	g1, g2 := New(s), New(s)
	g1.Reset(testRuntime)
	g2.Reset(testRuntime)

	if g1.aiRNG == nil || g1.aiRNG == g1.rng {
		t.Fatal("level should own a separate AI stream")
	}
	// Spawner draws must not shift what the enemies decide.
	g2.rng.Next()
	g2.rng.Next()
	for i := 0; i < 5; i++ {
		if a, b := g1.tickContext().RNG.Next(), g2.tickContext().RNG.Next(); a != b {
			t.Fatalf("draw %d: AI streams differ (%d vs %d)", i, a, b)
		}
	}
}

func TestLevelInfoReproducesGrid(t *testing.T) {
	s, _ := LookupScenario("ice")
	g := New(s)
	g.Reset(testRuntime)

	info := g.LevelInfo()
	if info.Layout != levelgen.LayoutArena || info.Mechanic != levelgen.MechanicIce {
		t.Fatalf("LevelInfo = %+v, expected Arena/Ice", info)
	}
	grid := levelgen.Generate(levelgen.Params{
		Layout:       info.Layout,
		Mechanic:     info.Mechanic,
		BlockDensity: info.BlockDensity,
		Seed:         info.Seed,
	})
	if got := levelgen.Fingerprint(grid); got != info.Fingerprint {
		t.Errorf("regenerated fingerprint %x, expected %x", got, info.Fingerprint)
	}
}

func TestPlayerRunsUntilWall(t *testing.T) {
	g := newTestGame(t, openRows())
	run(g, 600, core.ActionRight)

	if got := g.player.tile(); got != world.C(world.Width-2, 1) {
		t.Errorf("player at %v, expected %v", got, world.C(world.Width-2, 1))
	}
	if g.player.moving {
		t.Error("player should have stopped at the wall")
	}
}

func TestPlayerStopsAtNextTile(t *testing.T) {
	g := newTestGame(t, openRows())
	run(g, 25, core.ActionRight)
	run(g, 120, core.ActionDuck)

	if got := g.player.tile(); got != world.C(3, 1) {
		t.Errorf("player at %v, expected (3,1)", got)
	}
}

func TestIceSlidesPastStop(t *testing.T) {
	rows := openRows()
	for x := 2; x <= 5; x++ {
		rows = patch(rows, x, 1, '~')
	}
	g := newTestGame(t, rows)
	run(g, 5, core.ActionRight)
	run(g, 300, core.ActionDuck)

	if got := g.player.tile(); got != world.C(6, 1) {
		t.Errorf("player at %v, expected to slide to (6,1)", got)
	}
}

func TestConveyorPushes(t *testing.T) {
	rows := patch(openRows(), 2, 1, 'v')
	g := newTestGame(t, rows)
	run(g, 5, core.ActionRight)
	run(g, 300, core.ActionDuck)

	if got := g.player.tile(); got != world.C(2, 2) {
		t.Errorf("player at %v, expected conveyor to push to (2,2)", got)
	}
}

func TestTeleporterSendsAndCools(t *testing.T) {
	rows := patch(patch(openRows(), 2, 1, '0'), 10, 7, '0')
	g := newTestGame(t, rows)
	run(g, 5, core.ActionRight)
	run(g, 20, core.ActionDuck)

	if got := g.player.tile(); got != world.C(10, 7) {
		t.Fatalf("player at %v, expected teleport to (10,7)", got)
	}
	if g.grid.Cell(2, 1).TeleporterCooldown <= 0 || g.grid.Cell(10, 7).TeleporterCooldown <= 0 {
		t.Error("both teleporter ends should be cooling down")
	}
}

func TestLavaHurtsWhenActive(t *testing.T) {
	rows := patch(openRows(), 1, 1, '!')
	g := newTestGame(t, rows)

	run(g, 140)
	if g.player.lives != 3 {
		t.Fatalf("lives = %d before the lava activates, expected 3", g.player.lives)
	}
	run(g, 30)
	if g.player.lives != 2 {
		t.Errorf("lives = %d after the lava activates, expected 2", g.player.lives)
	}
	if g.lastHit != "lava" {
		t.Errorf("lastHit = %q, expected lava", g.lastHit)
	}
}

func TestFlamePassIgnoresLava(t *testing.T) {
	rows := patch(openRows(), 1, 1, '!')
	g := newTestGame(t, rows)
	g.player.apply(world.PowerUpFlamePass)

	run(g, 300)
	if g.player.lives != 3 {
		t.Errorf("lives = %d, flame pass should ignore lava", g.player.lives)
	}
}

func TestStoppingOnGapFalls(t *testing.T) {
	rows := patch(openRows(), 2, 1, 'o')
	g := newTestGame(t, rows)
	run(g, 5, core.ActionRight)
	run(g, 30, core.ActionDuck)

	if g.player.lives != 2 {
		t.Errorf("lives = %d, expected a fall", g.player.lives)
	}
	if got := g.player.tile(); got != world.PlayerSpawn {
		t.Errorf("player at %v, expected respawn at %v", got, world.PlayerSpawn)
	}
}

func TestEnemyContactHurtsOnce(t *testing.T) {
	g := newTestGame(t, openRows())
	g.enemies = append(g.enemies, entity.NewRegular(entity.EnemyBalloom, world.PlayerSpawn))

	run(g, 1)
	if g.player.lives != 2 || g.lastHit != "Balloom" {
		t.Fatalf("lives = %d lastHit = %q, expected a Balloom hit", g.player.lives, g.lastHit)
	}
	run(g, 30)
	if g.player.lives != 2 {
		t.Errorf("lives = %d, grace period should block further hits", g.player.lives)
	}
}

func TestHarmfulEffectHurts(t *testing.T) {
	g := newTestGame(t, openRows())
	g.grid.At(world.PlayerSpawn).ApplyEffect(world.EffectPoison, 1)

	run(g, 1)
	if g.player.lives != 2 || g.lastHit != "Poison" {
		t.Errorf("lives = %d lastHit = %q, expected a Poison hit", g.player.lives, g.lastHit)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := newTestGame(t, openRows())
	g.player.lives = 1
	g.enemies = append(g.enemies, entity.NewRegular(entity.EnemyBalloom, world.PlayerSpawn))

	run(g, 1)
	if !g.State().GameOver {
		t.Fatal("losing the last life should end the game")
	}

	run(g, 1, core.ActionRestart)
	if g.State().GameOver || g.player.lives != g.cfg.Player.Lives {
		t.Errorf("restart should start a fresh run, state = %+v lives = %d", g.State(), g.player.lives)
	}
}

func TestStrikeKillsAndSplits(t *testing.T) {
	g := newTestGame(t, openRows())
	splitter := entity.NewRegular(entity.EnemySplitter, world.C(2, 1))
	g.enemies = append(g.enemies, splitter)
	g.player.facing = world.DirRight

	g.strike()
	if splitter.HP != 1 {
		t.Fatalf("splitter HP = %d, expected 1", splitter.HP)
	}
	g.strike()
	if splitter.HP != 1 {
		t.Error("strike cooldown should ignore the second strike")
	}

	g.player.strikeCD = 0
	g.strike()
	if splitter.Alive() {
		t.Fatal("splitter should be dead")
	}
	if g.kills != 1 || g.bonus != splitter.ScoreValue() {
		t.Errorf("kills = %d bonus = %d, expected 1 and %d", g.kills, g.bonus, splitter.ScoreValue())
	}

	alive := 0
	for _, e := range g.enemies {
		if e.Alive() && e.Type == entity.EnemyBalloom {
			alive++
		}
	}
	if alive != 2 {
		t.Errorf("expected 2 Balloom children, got %d", alive)
	}
}

func TestFireUpExtendsStrikeReach(t *testing.T) {
	tests := []struct {
		name    string
		wallAt  int // x of a wall between player and enemy, 0 for none
		fireUps int
		killed  bool
	}{
		{"out of reach", 0, 0, false},
		{"one FireUp", 0, 1, true},
		{"capped reach", 0, 5, true},
		{"wall stops the strike", 2, 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := openRows()
			if tc.wallAt > 0 {
				rows = patch(rows, tc.wallAt, 1, '#')
			}
			g := newTestGame(t, rows)
			target := entity.NewRegular(entity.EnemyBalloom, world.C(3, 1))
			g.enemies = append(g.enemies, target)
			g.player.facing = world.DirRight
			for i, n := 0, tc.fireUps; i < n; i++ {
				g.player.apply(world.PowerUpFireUp)
			}

			g.strike()
			if target.Alive() == tc.killed {
				t.Errorf("enemy alive = %v with reach %d", target.Alive(), g.player.reach)
			}
		})
	}

	g := newTestGame(t, openRows())
	for i := 0; i < 5; i++ {
		g.player.apply(world.PowerUpFireUp)
	}
	if g.player.reach != maxReach {
		t.Errorf("reach = %d, expected the cap %d", g.player.reach, maxReach)
	}
}

func TestStrikeStopsAtFirstBlock(t *testing.T) {
	rows := patch(openRows(), 2, 1, '%')
	g := newTestGame(t, rows)
	behind := entity.NewRegular(entity.EnemyBalloom, world.C(3, 1))
	g.enemies = append(g.enemies, behind)
	g.player.facing = world.DirRight
	g.player.apply(world.PowerUpFireUp)

	g.strike()
	if !g.grid.Cell(2, 1).IsDestroying {
		t.Error("the block should absorb the strike")
	}
	if !behind.Alive() {
		t.Error("the enemy behind the block should survive")
	}
}

func TestBombUpShortensStrikeCooldown(t *testing.T) {
	g := newTestGame(t, openRows())
	p := g.player

	want := []float64{0.5, 0.4, 0.3, 0.2, 0.2}
	for i, w := range want {
		if i > 0 {
			p.apply(world.PowerUpBombUp)
		}
		if got := p.cooldown(); math.Abs(got-w) > 1e-9 {
			t.Errorf("after %d BombUps cooldown = %v, expected %v", i, got, w)
		}
	}

	g.strike()
	if math.Abs(p.strikeCD-minStrikeCD) > 1e-9 {
		t.Errorf("strikeCD = %v, expected %v", p.strikeCD, minStrikeCD)
	}
}

func TestPowerUpPoolSkipsBombOnlyKinds(t *testing.T) {
	g := newTestGame(t, openRows())
	for i := 0; i < 80; i++ {
		g.spawnPowerUp()
	}
	if len(g.powerUps) == 0 {
		t.Fatal("spawner placed nothing")
	}
	for _, pu := range g.powerUps {
		switch pu.PowerUpType() {
		case world.PowerUpBombPass, world.PowerUpDetonator:
			t.Fatalf("spawned %v, which does nothing without bombs", pu.PowerUpType())
		}
	}

	s, _ := LookupScenario("survival")
	game := New(s)
	game.Reset(testRuntime)
	game.grid.Each(func(c *world.Cell) {
		switch c.HiddenPowerUp {
		case world.PowerUpBombPass, world.PowerUpDetonator:
			t.Errorf("block at %v hides %v", c.Coord(), c.HiddenPowerUp)
		}
	})
}

func TestDigRevealsPowerUp(t *testing.T) {
	rows := patch(openRows(), 2, 1, '%')
	g := newTestGame(t, rows)
	g.grid.Cell(2, 1).HiddenPowerUp = world.PowerUpSpeedUp
	g.player.facing = world.DirRight

	g.strike()
	if !g.grid.Cell(2, 1).IsDestroying {
		t.Fatal("block should be breaking")
	}
	run(g, 31)

	cell := g.grid.Cell(2, 1)
	if cell.Type != world.TileEmpty || cell.IsDestroying {
		t.Fatalf("block should be gone, got %v destroying=%v", cell.Type, cell.IsDestroying)
	}
	if cell.PowerUp == nil || cell.PowerUp.PowerUpType() != world.PowerUpSpeedUp {
		t.Fatal("hidden SpeedUp should be on the tile")
	}

	run(g, 5, core.ActionRight)
	run(g, 30, core.ActionDuck)
	if g.player.speedUps != 1 || g.player.collected != 1 {
		t.Errorf("speedUps = %d collected = %d, expected the SpeedUp", g.player.speedUps, g.player.collected)
	}
	if g.bonus != g.cfg.PowerUps.Score {
		t.Errorf("bonus = %d, expected %d", g.bonus, g.cfg.PowerUps.Score)
	}
}

func TestExitClearsLevel(t *testing.T) {
	rows := patch(openRows(), 2, 1, '%')
	g := newTestGame(t, rows)
	g.grid.Cell(2, 1).HasHiddenExit = true
	g.player.facing = world.DirRight

	g.strike()
	run(g, 31)
	if g.grid.Cell(2, 1).Type != world.TileExit {
		t.Fatalf("tile = %v, expected Exit", g.grid.Cell(2, 1).Type)
	}

	run(g, 5, core.ActionRight)
	run(g, 30, core.ActionDuck)
	if !g.levelCleared {
		t.Fatal("stepping on the exit should clear the level")
	}
	if g.bonus != levelBonus {
		t.Errorf("bonus = %d, expected %d", g.bonus, levelBonus)
	}

	run(g, 100)
	if g.level != 2 || g.levelCleared {
		t.Errorf("level = %d cleared = %v, expected level 2 in play", g.level, g.levelCleared)
	}
	if got := g.player.tile(); got != world.PlayerSpawn {
		t.Errorf("player at %v, expected spawn on the new level", got)
	}
}

func TestPowerUpSpawnerRespectsCap(t *testing.T) {
	g := newTestGame(t, openRows())
	g.cfg.PowerUps.SpawnInterval = 1
	g.cfg.PowerUps.MaxOnField = 2
	g.spawnTimer = 1

	run(g, 250)
	if n := g.fieldPowerUps(); n != 2 {
		t.Errorf("field power-ups = %d, expected cap of 2", n)
	}
	for _, pu := range g.powerUps {
		if g.grid.At(pu.Tile()).PowerUp != world.Pickup(pu) {
			t.Errorf("power-up at %v is not registered on its cell", pu.Tile())
		}
	}
}

func TestPowerUpExpiryFreesCell(t *testing.T) {
	g := newTestGame(t, openRows())
	g.cfg.PowerUps.SpawnInterval = 1
	g.cfg.PowerUps.MaxOnField = 1
	g.cfg.PowerUps.Lifetime = 3
	g.spawnTimer = 1

	run(g, 61)
	if len(g.powerUps) != 1 {
		t.Fatalf("expected one power-up, got %d", len(g.powerUps))
	}
	pu := g.powerUps[0]
	run(g, 200)

	if !pu.Removed {
		t.Fatal("power-up should have expired")
	}
	if g.grid.At(pu.Tile()).PowerUp == world.Pickup(pu) {
		t.Error("expired power-up should be removed from its cell")
	}
}

func TestBossScenario(t *testing.T) {
	s, _ := LookupScenario("boss_golem")
	g := New(s)
	g.Reset(testRuntime)

	if g.boss == nil || g.boss.Kind != entity.BossGolem {
		t.Fatal("boss scenario should spawn the Golem")
	}
	if len(g.enemies) != 0 {
		t.Errorf("boss level should have no regular enemies, got %d", len(g.enemies))
	}
	for _, c := range g.boss.OccupiedCells() {
		if g.grid.At(c).Type == world.TileBlock {
			t.Errorf("block left under the boss at %v", c)
		}
	}

	// Survive until the first attack lands.
	g.player.invincible = 1000
	smoke := 0
	for i := 0; i < 480 && smoke == 0; i++ {
		run(g, 1)
		smoke = 0
		g.grid.Each(func(c *world.Cell) {
			if c.HasEffect(world.EffectSmoke) {
				smoke++
			}
		})
	}
	if smoke == 0 {
		t.Error("the Golem shockwave should leave smoke behind")
	}
}

func TestKillingBossWins(t *testing.T) {
	s, _ := LookupScenario("boss_golem")
	g := New(s)
	g.Reset(testRuntime)

	g.boss.SetHP(1)
	anchor := g.boss.Anchor()
	g.player.placeAt(world.C(anchor.X-1, anchor.Y+1))
	g.player.facing = world.DirRight
	g.strike()

	if !g.won || !g.State().GameOver {
		t.Fatal("killing the boss should win the scenario")
	}
	if g.bonus != g.boss.ScoreValue() {
		t.Errorf("bonus = %d, expected the boss reward %d", g.bonus, g.boss.ScoreValue())
	}
}

func TestResizeAndRender(t *testing.T) {
	g := newTestGame(t, openRows())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	// 4x2 tiles centred: offset 10, spawn centre at column 6 row 3 of the grid.
	if got := screen.Get(16, 5); got != '@' {
		t.Errorf("player glyph = %q, expected '@'", got)
	}
	if !strings.Contains(screen.Row(0), "Score") {
		t.Errorf("HUD row = %q, expected a score", screen.Row(0))
	}

	g.Resize(40, 15)
	if g.tooSmall || g.tileW != 2 || g.tileH != 1 {
		t.Errorf("40x15 should use 2x1 tiles, got %dx%d tooSmall=%v", g.tileW, g.tileH, g.tooSmall)
	}

	g.Resize(20, 10)
	if !g.tooSmall {
		t.Fatal("20x10 should be too small")
	}
	screen = core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("too-small overlay should be drawn")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("snapshot state = %v, expected %v", g.Snapshot().State, StatePausedSmall)
	}
}

func TestDailySeedIsDate(t *testing.T) {
	s, _ := LookupScenario("daily")
	if !s.Daily {
		t.Fatal("daily scenario should be flagged")
	}
	a, b := New(s), New(s)
	a.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	b.Reset(core.RuntimeConfig{Seed: 2, ScreenW: 80, ScreenH: 24})
	if a.seed != b.seed {
		t.Errorf("daily seeds differ: %d vs %d", a.seed, b.seed)
	}
}
