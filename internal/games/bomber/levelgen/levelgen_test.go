package levelgen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/levelgen"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

func TestLayoutsKeepBorderAndSpawnPocket(t *testing.T) {
	for _, layout := range levelgen.Layouts() {
		for seed := uint64(1); seed <= 5; seed++ {
			g := world.NewGrid()
			levelgen.SetupLayoutPattern(g, layout, rng.New(seed))

			for y := 0; y < world.Height; y++ {
				for x := 0; x < world.Width; x++ {
					if world.IsBorder(x, y) && g.TypeAt(x, y) != world.TileWall {
						t.Fatalf("%s seed %d: border (%d,%d) is %v", layout, seed, x, y, g.TypeAt(x, y))
					}
				}
			}
			for _, p := range world.SpawnPocket() {
				if g.TypeAt(p.X, p.Y) == world.TileWall {
					t.Errorf("%s seed %d: spawn pocket %v walled", layout, seed, p)
				}
			}
		}
	}
}

func TestLayoutsAreFullyReachable(t *testing.T) {
	for _, layout := range levelgen.Layouts() {
		for seed := uint64(1); seed <= 10; seed++ {
			g := world.NewGrid()
			levelgen.SetupLayoutPattern(g, layout, rng.New(seed))
			if cut := levelgen.Unreachable(g); len(cut) > 0 {
				t.Errorf("%s seed %d: %d unreachable tiles, first %v", layout, seed, len(cut), cut[0])
			}
		}
	}
}

func TestLayoutsHaveInteriorWalls(t *testing.T) {
	borderWalls := 2*world.Width + 2*(world.Height-2)
	for _, layout := range levelgen.Layouts() {
		g := world.NewGrid()
		levelgen.SetupLayoutPattern(g, layout, rng.New(3))
		if g.CountType(world.TileWall) <= borderWalls {
			t.Errorf("%s: no interior walls", layout)
		}
	}
}

func TestClassicPattern(t *testing.T) {
	g := world.NewGrid()
	levelgen.SetupLayoutPattern(g, levelgen.LayoutClassic, rng.New(1))
	for y := 1; y < world.Height-1; y++ {
		for x := 1; x < world.Width-1; x++ {
			want := x%2 == 0 && y%2 == 0
			if got := g.TypeAt(x, y) == world.TileWall; got != want {
				t.Errorf("(%d,%d) wall=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSymmetryIsMirrored(t *testing.T) {
	g := world.NewGrid()
	levelgen.SetupLayoutPattern(g, levelgen.LayoutSymmetry, rng.New(9))
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			mx, my := world.Width-1-x, world.Height-1-y
			if world.InSpawnPocket(x, y) || world.InSpawnPocket(mx, y) || world.InSpawnPocket(x, my) || world.InSpawnPocket(mx, my) {
				continue
			}
			if g.TypeAt(x, y) != g.TypeAt(mx, y) || g.TypeAt(x, y) != g.TypeAt(x, my) {
				t.Errorf("(%d,%d) not mirrored", x, y)
			}
		}
	}
}

func TestChaosIgnoresCallerSeed(t *testing.T) {
	a := world.NewGrid()
	b := world.NewGrid()
	levelgen.SetupLayoutPattern(a, levelgen.LayoutChaos, rng.New(1))
	levelgen.SetupLayoutPattern(b, levelgen.LayoutChaos, rng.New(999))
	if levelgen.Fingerprint(a) != levelgen.Fingerprint(b) {
		t.Error("Chaos layout depends on the caller seed")
	}
}

func TestMazeDependsOnSeed(t *testing.T) {
	distinct := make(map[uint64]bool)
	for seed := uint64(1); seed <= 5; seed++ {
		g := world.NewGrid()
		levelgen.SetupLayoutPattern(g, levelgen.LayoutMaze, rng.New(seed))
		distinct[levelgen.Fingerprint(g)] = true
	}
	if len(distinct) < 2 {
		t.Error("maze layouts identical across seeds")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, layout := range levelgen.Layouts() {
		for _, m := range levelgen.Mechanics() {
			p := levelgen.DefaultParams()
			p.Layout, p.Mechanic, p.Seed = layout, m, 2024

			a := levelgen.Generate(p)
			b := levelgen.Generate(p)
			if levelgen.RenderASCII(a) != levelgen.RenderASCII(b) {
				t.Fatalf("%s/%s: two runs differ", layout, m)
			}
			a.Each(func(c *world.Cell) {
				o := b.Cell(c.X(), c.Y())
				if c.HiddenPowerUp != o.HiddenPowerUp || c.HasHiddenExit != o.HasHiddenExit || c.LavaCrackTimer != o.LavaCrackTimer {
					t.Fatalf("%s/%s: hidden state differs at (%d,%d)", layout, m, c.X(), c.Y())
				}
			})
		}
	}
}

func TestPlaceBlocksExactCount(t *testing.T) {
	testCases := []struct {
		density float64
		ratio   float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{-3, 0},
		{7, 1},
		{0.33, 0.33},
	}
	for _, tc := range testCases {
		g := world.NewGrid()
		levelgen.SetupLayoutPattern(g, levelgen.LayoutClassic, rng.New(5))

		eligible := 0
		g.Each(func(c *world.Cell) {
			if c.Type == world.TileEmpty && !world.InSpawnPocket(c.X(), c.Y()) {
				eligible++
			}
		})

		placed := levelgen.PlaceBlocks(g, tc.density, rng.New(5))
		want := int(float64(eligible) * tc.ratio)
		if placed != want || g.CountType(world.TileBlock) != want {
			t.Errorf("density %.2f: placed %d (grid %d), want %d of %d", tc.density, placed, g.CountType(world.TileBlock), want, eligible)
		}
		for _, p := range world.SpawnPocket() {
			if g.TypeAt(p.X, p.Y) == world.TileBlock {
				t.Errorf("density %.2f: block in spawn pocket %v", tc.density, p)
			}
		}
	}
}

func TestHideContents(t *testing.T) {
	p := levelgen.DefaultParams()
	p.PowerUpChance = 1
	g := levelgen.Generate(p)

	exits, hidden := 0, 0
	g.Each(func(c *world.Cell) {
		if c.HasHiddenExit {
			exits++
			if c.Type != world.TileBlock {
				t.Errorf("exit hidden under %v", c.Type)
			}
		}
		if c.HiddenPowerUp != world.PowerUpNone {
			hidden++
		}
	})
	if exits != 1 {
		t.Errorf("hidden exits = %d, want 1", exits)
	}
	if want := g.CountType(world.TileBlock) - 1; hidden != want {
		t.Errorf("hidden power-ups = %d, want %d", hidden, want)
	}
}

func mechanicFraction(t *testing.T, m levelgen.Mechanic, tile world.TileType, seed uint64) float64 {
	t.Helper()
	g := world.NewGrid()
	levelgen.SetupLayoutPattern(g, levelgen.LayoutBossArena, rng.New(seed))
	eligible := 0
	g.Each(func(c *world.Cell) {
		if c.Type == world.TileEmpty && !world.InSpawnPocket(c.X(), c.Y()) {
			eligible++
		}
	})
	levelgen.PlaceWorldMechanicCells(g, m, rng.New(seed))
	return float64(g.CountType(tile)) / float64(eligible)
}

func TestHideContentsUsesGivenKinds(t *testing.T) {
	p := levelgen.DefaultParams()
	p.PowerUpChance = 1
	p.PowerUps = []world.PowerUpType{world.PowerUpSpeedUp, world.PowerUpExtraLife}
	g := levelgen.Generate(p)

	hidden := 0
	g.Each(func(c *world.Cell) {
		switch c.HiddenPowerUp {
		case world.PowerUpNone:
		case world.PowerUpSpeedUp, world.PowerUpExtraLife:
			hidden++
		default:
			t.Errorf("block at %v hides %v, not in the given kinds", c.Coord(), c.HiddenPowerUp)
		}
	})
	if hidden == 0 {
		t.Error("no power-ups hidden")
	}
}

func TestPipelineKeepsSpawnPocketClear(t *testing.T) {
	for _, layout := range levelgen.Layouts() {
		for _, mechanic := range levelgen.Mechanics() {
			for seed := uint64(1); seed <= 25; seed++ {
				g := world.NewGrid()
				r := rng.New(seed)
				levelgen.SetupLayoutPattern(g, layout, r)
				levelgen.PlaceWorldMechanicCells(g, mechanic, r)
				levelgen.PlaceBlocks(g, 0.8, r)

				for _, p := range world.SpawnPocket() {
					if got := g.TypeAt(p.X, p.Y); got != world.TileEmpty {
						t.Fatalf("%s/%s seed %d: spawn pocket %v is %v", layout, mechanic, seed, p, got)
					}
				}
				g.Each(func(c *world.Cell) {
					if c.Type != world.TileTeleporter {
						return
					}
					partner := g.At(c.TeleporterTarget)
					if partner.TeleporterTarget != c.Coord() || c.Coord().Manhattan(c.TeleporterTarget) < 5 {
						t.Errorf("%s seed %d: bad teleporter pair %v -> %v", layout, seed, c.Coord(), c.TeleporterTarget)
					}
				})
			}
		}
	}
}

func TestMechanicCoverage(t *testing.T) {
	testCases := []struct {
		m      levelgen.Mechanic
		tile   world.TileType
		lo, hi float64
	}{
		{levelgen.MechanicIce, world.TileIce, 0.29, 0.45},
		{levelgen.MechanicLavaCrack, world.TileLavaCrack, 0.14, 0.25},
		{levelgen.MechanicPlatformGap, world.TilePlatformGap, 0.09, 0.15},
	}
	for _, tc := range testCases {
		for seed := uint64(1); seed <= 20; seed++ {
			f := mechanicFraction(t, tc.m, tc.tile, seed)
			if f < tc.lo || f > tc.hi {
				t.Errorf("%s seed %d: coverage %.3f outside [%.2f, %.2f]", tc.m, seed, f, tc.lo, tc.hi)
			}
		}
	}
}

func TestLavaPhasesVary(t *testing.T) {
	g := world.NewGrid()
	levelgen.SetupLayoutPattern(g, levelgen.LayoutArena, rng.New(4))
	levelgen.PlaceWorldMechanicCells(g, levelgen.MechanicLavaCrack, rng.New(4))

	phases := make(map[float64]bool)
	g.Each(func(c *world.Cell) {
		if c.Type != world.TileLavaCrack {
			return
		}
		if c.LavaCrackTimer < 0 || c.LavaCrackTimer >= world.LavaCrackPeriod {
			t.Errorf("phase %.2f out of range", c.LavaCrackTimer)
		}
		phases[c.LavaCrackTimer] = true
	})
	if len(phases) < 2 {
		t.Error("lava cracks share one phase")
	}
}

func TestTeleporterPairs(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := world.NewGrid()
		levelgen.SetupLayoutPattern(g, levelgen.LayoutClassic, rng.New(seed))
		levelgen.PlaceWorldMechanicCells(g, levelgen.MechanicTeleporter, rng.New(seed))

		count := g.CountType(world.TileTeleporter)
		if count < 4 || count > 6 || count%2 != 0 {
			t.Fatalf("seed %d: %d teleporters, want 2-3 pairs", seed, count)
		}
		g.Each(func(c *world.Cell) {
			if c.Type != world.TileTeleporter {
				return
			}
			if !c.TeleporterLinked {
				t.Errorf("seed %d: unlinked teleporter at %v", seed, c.Coord())
			}
			partner := g.At(c.TeleporterTarget)
			if partner.Type != world.TileTeleporter || partner.TeleporterTarget != c.Coord() {
				t.Errorf("seed %d: %v does not point back", seed, c.TeleporterTarget)
			}
			if partner.TeleporterColorID != c.TeleporterColorID {
				t.Errorf("seed %d: pair colours %d/%d", seed, c.TeleporterColorID, partner.TeleporterColorID)
			}
			if d := c.Coord().Manhattan(c.TeleporterTarget); d < 5 {
				t.Errorf("seed %d: pair distance %d < 5", seed, d)
			}
		})
	}
}

func TestConveyorStrips(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := world.NewGrid()
		levelgen.SetupLayoutPattern(g, levelgen.LayoutClassic, rng.New(seed))
		levelgen.PlaceWorldMechanicCells(g, levelgen.MechanicConveyor, rng.New(seed))

		n := g.CountType(world.TileConveyor)
		if n < 6 || n > 48 {
			t.Errorf("seed %d: %d conveyor tiles, want 4-8 strips of 3-6", seed, n)
		}
		g.Each(func(c *world.Cell) {
			if c.Type == world.TileConveyor && c.ConveyorDirection == world.DirNone {
				t.Errorf("seed %d: conveyor without direction at %v", seed, c.Coord())
			}
		})
	}
}

func TestMechanicsSkipSpawnPocket(t *testing.T) {
	for _, m := range levelgen.Mechanics() {
		g := world.NewGrid()
		levelgen.SetupLayoutPattern(g, levelgen.LayoutBossArena, rng.New(11))
		levelgen.PlaceWorldMechanicCells(g, m, rng.New(11))
		for _, p := range world.SpawnPocket() {
			if g.TypeAt(p.X, p.Y) != world.TileEmpty {
				t.Errorf("%s: spawn pocket %v is %v", m, p, g.TypeAt(p.X, p.Y))
			}
		}
	}
}

func TestParseNames(t *testing.T) {
	for _, l := range levelgen.Layouts() {
		got, err := levelgen.ParseLayout(strings.ToLower(l.String()))
		if err != nil || got != l {
			t.Errorf("ParseLayout(%q) = %v, %v", l, got, err)
		}
	}
	for _, m := range levelgen.Mechanics() {
		got, err := levelgen.ParseMechanic(strings.ToUpper(m.String()))
		if err != nil || got != m {
			t.Errorf("ParseMechanic(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := levelgen.ParseLayout("donut"); !errors.Is(err, levelgen.ErrUnknownLayout) {
		t.Errorf("ParseLayout(donut) err = %v", err)
	}
	if _, err := levelgen.ParseMechanic("quicksand"); !errors.Is(err, levelgen.ErrUnknownMechanic) {
		t.Errorf("ParseMechanic(quicksand) err = %v", err)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	p := levelgen.DefaultParams()
	p.Layout = levelgen.LayoutIslands
	p.Mechanic = levelgen.MechanicTeleporter
	g := levelgen.Generate(p)

	text := levelgen.RenderASCII(g)
	parsed, err := levelgen.ParseASCII(strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
	if err != nil {
		t.Fatalf("ParseASCII: %v", err)
	}
	if levelgen.Fingerprint(parsed) != levelgen.Fingerprint(g) {
		t.Error("fingerprint changed after round trip")
	}
	g.Each(func(c *world.Cell) {
		if c.Type == world.TileTeleporter && parsed.Cell(c.X(), c.Y()).TeleporterTarget != c.TeleporterTarget {
			t.Errorf("teleporter at %v lost its target", c.Coord())
		}
	})
}

func TestParseASCIIErrors(t *testing.T) {
	row := strings.Repeat(".", world.Width)
	rows := make([]string, world.Height)
	for i := range rows {
		rows[i] = row
	}
	if _, err := levelgen.ParseASCII(rows[:3]); err == nil {
		t.Error("expected error for short grid")
	}
	bad := append([]string(nil), rows...)
	bad[4] = "..............X"
	if _, err := levelgen.ParseASCII(bad); err == nil {
		t.Error("expected error for unknown glyph")
	}
	lonely := append([]string(nil), rows...)
	lonely[2] = "...3..........."
	if _, err := levelgen.ParseASCII(lonely); err == nil {
		t.Error("expected error for unpaired teleporter")
	}
}

func TestFingerprintStable(t *testing.T) {
	a := levelgen.Generate(levelgen.DefaultParams())
	b := levelgen.Generate(levelgen.DefaultParams())
	if levelgen.Fingerprint(a) != levelgen.Fingerprint(b) {
		t.Error("fingerprint differs for identical params")
	}
	b.Cell(3, 3).Type = world.TileIce
	if levelgen.Fingerprint(a) == levelgen.Fingerprint(b) {
		t.Error("fingerprint ignored a tile change")
	}
}
