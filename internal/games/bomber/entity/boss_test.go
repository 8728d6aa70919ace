package entity_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/rng"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/world"
)

func TestBossEnrageLatch(t *testing.T) {
	testCases := []struct {
		kind      entity.BossKind
		threshold int
	}{
		{entity.BossGolem, 15},
		{entity.BossPhantom, 10},
		{entity.BossHydra, 17},
		{entity.BossOverlord, 25},
	}
	for _, tc := range testCases {
		b := entity.NewBossAt(tc.kind, 3, 3)
		if b.IsEnraged() || b.HP() != b.MaxHP {
			t.Fatalf("%s: fresh boss hp=%d enraged=%v", tc.kind, b.HP(), b.IsEnraged())
		}
		b.SetHP(tc.threshold + 1)
		if b.IsEnraged() {
			t.Errorf("%s: enraged at %d hp", tc.kind, tc.threshold+1)
		}
		b.SetHP(tc.threshold)
		if !b.IsEnraged() {
			t.Errorf("%s: not enraged at %d hp", tc.kind, tc.threshold)
		}
		b.Heal(1000)
		if b.HP() != b.MaxHP || !b.IsEnraged() {
			t.Errorf("%s: after heal hp=%d enraged=%v, want full hp and still enraged", tc.kind, b.HP(), b.IsEnraged())
		}
	}
}

func TestBossEnrageRaisesSpeed(t *testing.T) {
	b := entity.NewBossAt(entity.BossMecha, 3, 3)
	base := b.Speed()
	b.TakeDamage(b.MaxHP - b.MaxHP/2)
	if got := b.Speed() - base; got != 12 {
		t.Errorf("enrage bonus = %.1f, want 12", got)
	}
}

func TestBossTakeDamageKills(t *testing.T) {
	b := entity.NewBossAt(entity.BossPhantom, 3, 3)
	if b.TakeDamage(19) {
		t.Fatal("boss died with 1 hp left")
	}
	if !b.TakeDamage(5) {
		t.Fatal("killing blow not reported")
	}
	if b.Alive() || b.HP() != 0 {
		t.Errorf("alive=%v hp=%d after death", b.Alive(), b.HP())
	}
	if b.TakeDamage(1) {
		t.Error("dead boss reported a second death")
	}
}

// runCycle drives a boss from the end of its cooldown to the end of its attack.
func runCycle(t *testing.T, b *entity.Boss) {
	t.Helper()
	if ev := b.UpdateAttack(b.CooldownRemaining()); ev != entity.BossEventTelegraphStarted {
		t.Fatalf("cooldown expiry produced %v", ev)
	}
	for b.IsTelegraphing() {
		b.UpdateAttack(0.5)
	}
	for b.IsAttacking() {
		b.UpdateAttack(0.5)
	}
}

func TestBossAttackCycle(t *testing.T) {
	b := entity.NewBossAt(entity.BossGolem, 4, 3)

	if ev := b.UpdateAttack(b.CooldownRemaining()); ev != entity.BossEventTelegraphStarted {
		t.Fatalf("event = %v, want TelegraphStarted", ev)
	}
	if !b.IsTelegraphing() || b.IsAttacking() {
		t.Fatal("expected telegraphing state")
	}
	b.SetAttackTargets([]world.Coord{world.C(2, 2), world.C(2, 3)})

	for i := 0; i < 3; i++ {
		if ev := b.UpdateAttack(0.5); ev != entity.BossEventNone {
			t.Fatalf("telegraph tick %d produced %v", i, ev)
		}
	}
	if ev := b.UpdateAttack(0.5); ev != entity.BossEventAttackStarted {
		t.Fatalf("event = %v after 2s telegraph, want AttackStarted", ev)
	}
	if !b.IsAttacking() || b.IsTelegraphing() {
		t.Fatal("expected attacking state")
	}
	if len(b.AttackTargetCells()) == 0 {
		t.Fatal("attack targets should survive into the attack")
	}
	if !b.IsTargeted(world.C(2, 3)) {
		t.Error("IsTargeted missed a target tile")
	}

	b.UpdateAttack(0.5)
	b.UpdateAttack(0.5)
	if ev := b.UpdateAttack(0.5); ev != entity.BossEventAttackEnded {
		t.Fatalf("event = %v after 1.5s attack, want AttackEnded", ev)
	}
	if b.IsAttacking() || len(b.AttackTargetCells()) != 0 {
		t.Errorf("attack did not reset: attacking=%v targets=%d", b.IsAttacking(), len(b.AttackTargetCells()))
	}
	if got := b.CooldownRemaining(); got != entity.BossGolem.Cooldown() {
		t.Errorf("cooldown = %.2f, want %.2f", got, entity.BossGolem.Cooldown())
	}
}

func TestBossEnragedCooldown(t *testing.T) {
	b := entity.NewBossAt(entity.BossGolem, 4, 3)
	b.SetHP(1)
	runCycle(t, b)
	want := entity.BossGolem.Cooldown() * 0.6
	if got := b.CooldownRemaining(); math.Abs(got-want) > 1e-9 {
		t.Errorf("enraged cooldown = %.3f, want %.3f", got, want)
	}
}

func TestFinalBossRotation(t *testing.T) {
	b := entity.NewBossAt(entity.BossOverlord, 4, 3)
	want := []entity.AttackKind{
		entity.AttackShockwave,
		entity.AttackCrossBeam,
		entity.AttackMeteorRain,
		entity.AttackVortex,
		entity.AttackShockwave,
	}
	for i, kind := range want {
		if got := b.NextAttackKind(); got != kind {
			t.Errorf("attack %d = %v, want %v", i, got, kind)
		}
		runCycle(t, b)
	}

	g := entity.NewBossAt(entity.BossGolem, 4, 3)
	runCycle(t, g)
	if g.Rotation() != 0 || g.NextAttackKind() != entity.AttackShockwave {
		t.Errorf("non-final boss rotated: rotation=%d kind=%v", g.Rotation(), g.NextAttackKind())
	}
}

func TestBossFootprint(t *testing.T) {
	b := entity.NewBossAt(entity.BossGolem, 4, 3)
	if b.Anchor() != world.C(4, 3) {
		t.Fatalf("Anchor() = %v, want (4,3)", b.Anchor())
	}
	cells := b.OccupiedCells()
	if len(cells) != 9 {
		t.Fatalf("OccupiedCells() len = %d, want 9", len(cells))
	}
	if cells[0] != world.C(4, 3) || cells[8] != world.C(6, 5) {
		t.Errorf("footprint spans %v..%v, want (4,3)..(6,5)", cells[0], cells[8])
	}
	for _, c := range cells {
		if !b.OccupiesCell(c.X, c.Y) {
			t.Errorf("OccupiesCell%v = false", c)
		}
	}
	if b.OccupiesCell(7, 5) || b.OccupiesCell(4, 2) {
		t.Error("OccupiesCell reported a tile outside the footprint")
	}

	small := entity.NewBossAt(entity.BossPhantom, 6, 6)
	if n := len(small.OccupiedCells()); n != 4 {
		t.Errorf("2x2 boss occupies %d cells", n)
	}
}

func TestBossSpawnIsClamped(t *testing.T) {
	testCases := []struct {
		kind   entity.BossKind
		gx, gy int
		want   world.Coord
	}{
		{entity.BossGolem, 12, 8, world.C(11, 6)},
		{entity.BossGolem, 0, 0, world.C(1, 1)},
		{entity.BossPhantom, 14, 9, world.C(12, 7)},
		{entity.BossPhantom, 5, 5, world.C(5, 5)},
	}
	for _, tc := range testCases {
		b := entity.NewBossAt(tc.kind, tc.gx, tc.gy)
		if got := b.Anchor(); got != tc.want {
			t.Errorf("%s at (%d,%d): anchor %v, want %v", tc.kind, tc.gx, tc.gy, got, tc.want)
		}
	}
}

func TestBossMoveRejectedByObstacles(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(c *world.Cell)
	}{
		{"wall", func(c *world.Cell) { c.Type = world.TileWall }},
		{"block", func(c *world.Cell) { c.Type = world.TileBlock }},
		{"bomb", func(c *world.Cell) { c.PlaceBomb(&world.Bomb{PlayerOnTop: true}) }},
	}
	for _, tc := range testCases {
		g := world.NewGrid()
		tc.setup(g.Cell(7, 4))

		b := entity.NewBossAt(entity.BossGolem, 4, 3)
		x, y := b.X, b.Y
		b.HeadingX = 1
		if b.Move(1, g) {
			t.Errorf("%s: move into obstacle accepted", tc.name)
		}
		if b.X != x || b.Y != y {
			t.Errorf("%s: position changed to (%.1f,%.1f)", tc.name, b.X, b.Y)
		}
		if b.HeadingX != 0 || b.HeadingY != 0 {
			t.Errorf("%s: heading not cleared", tc.name)
		}
	}
}

func TestBossMoveSlides(t *testing.T) {
	g := world.NewGrid()
	for y := 0; y < world.Height; y++ {
		g.Cell(7, y).Type = world.TileWall
	}
	b := entity.NewBossAt(entity.BossGolem, 4, 3)
	x, y := b.X, b.Y
	b.HeadingX, b.HeadingY = 0.6, 0.8

	if !b.Move(1, g) {
		t.Fatal("expected a Y-only slide")
	}
	if b.X != x {
		t.Errorf("X moved into the wall: %.1f -> %.1f", x, b.X)
	}
	if math.Abs(b.Y-(y+24)) > 1e-9 {
		t.Errorf("Y = %.2f, want %.2f", b.Y, y+24)
	}
}

func TestBossMoveOpenGrid(t *testing.T) {
	g := world.NewGrid()
	b := entity.NewBossAt(entity.BossPhantom, 5, 5)
	x := b.X
	b.HeadingX = -1
	if !b.Move(0.5, g) {
		t.Fatal("open move rejected")
	}
	if want := x - 25; b.X != want {
		t.Errorf("X = %.1f, want %.1f", b.X, want)
	}
}

func TestBossUpdatePlansAttack(t *testing.T) {
	g := world.NewGrid()
	g.Cell(1, 1).Type = world.TileWall
	b := entity.NewBossAt(entity.BossGolem, 2, 2)
	ctx := &entity.TickContext{DT: 0.25, Grid: g, Target: b.Anchor(), RNG: rng.New(1)}

	for i := 0; i < 100 && b.LastEvent() != entity.BossEventTelegraphStarted; i++ {
		b.Update(ctx)
	}
	if b.LastEvent() != entity.BossEventTelegraphStarted {
		t.Fatal("boss never started a telegraph")
	}
	cells := b.AttackTargetCells()
	if len(cells) == 0 {
		t.Fatal("telegraph started without targets")
	}
	for _, c := range cells {
		if g.TypeAt(c.X, c.Y) == world.TileWall {
			t.Errorf("attack targets wall %v", c)
		}
		if b.OccupiesCell(c.X, c.Y) {
			t.Errorf("shockwave targets own footprint %v", c)
		}
	}
	if b.CurrentAttack().Effect != world.EffectSmoke {
		t.Errorf("effect = %v, want Smoke", b.CurrentAttack().Effect)
	}
}

func TestPlanAttackShapes(t *testing.T) {
	t.Run("shockwave", func(t *testing.T) {
		g := world.NewGrid()
		b := entity.NewBossAt(entity.BossGolem, 4, 3)
		plan := entity.PlanAttack(b, g, world.C(1, 1), rng.New(1))
		if plan.Kind != entity.AttackShockwave || len(plan.Cells) != 40 {
			t.Errorf("kind %v with %d cells, want Shockwave with 40", plan.Kind, len(plan.Cells))
		}
	})

	t.Run("cross beam stops at walls", func(t *testing.T) {
		g := world.NewGrid()
		g.Cell(10, 5).Type = world.TileWall
		b := entity.NewBossAt(entity.BossMecha, 6, 4)
		plan := entity.PlanAttack(b, g, world.C(1, 1), rng.New(1))
		if len(plan.Cells) != 16 {
			t.Errorf("beam covers %d cells, want 16", len(plan.Cells))
		}
		for _, c := range plan.Cells {
			if c.X != 7 && c.Y != 5 {
				t.Errorf("beam cell %v off the cross", c)
			}
			if c.X > 9 && c.Y == 5 {
				t.Errorf("beam passed the wall at %v", c)
			}
		}
	})

	t.Run("vortex skips walls", func(t *testing.T) {
		g := world.NewGrid()
		g.Cell(8, 5).Type = world.TileWall
		b := entity.NewBossAt(entity.BossPhantom, 2, 2)
		plan := entity.PlanAttack(b, g, world.C(7, 5), rng.New(1))
		if plan.Kind != entity.AttackVortex || len(plan.Cells) != 8 {
			t.Errorf("kind %v with %d cells, want Vortex with 8", plan.Kind, len(plan.Cells))
		}
		if plan.Effect != world.EffectGravityWell {
			t.Errorf("effect = %v, want GravityWell", plan.Effect)
		}
	})

	t.Run("meteor rain is seeded", func(t *testing.T) {
		g := world.NewGrid()
		b := entity.NewBossAt(entity.BossHydra, 2, 2)
		target := world.C(9, 5)
		first := entity.PlanAttack(b, g, target, rng.New(7))
		second := entity.PlanAttack(b, g, target, rng.New(7))
		if len(first.Cells) != 6 {
			t.Fatalf("meteor count = %d, want 6", len(first.Cells))
		}
		if first.Cells[0] != target {
			t.Errorf("first meteor at %v, want target %v", first.Cells[0], target)
		}
		seen := make(map[world.Coord]bool)
		for i, c := range first.Cells {
			if c != second.Cells[i] {
				t.Errorf("meteor %d differs between identical seeds", i)
			}
			if seen[c] {
				t.Errorf("duplicate meteor at %v", c)
			}
			seen[c] = true
			if c.Manhattan(target) > 3 {
				t.Errorf("meteor %v too far from target", c)
			}
		}
		if first.Effect != world.EffectPoison {
			t.Errorf("hydra effect = %v, want Poison", first.Effect)
		}
	})
}

func TestParseBossKind(t *testing.T) {
	for _, k := range entity.BossKinds() {
		got, err := entity.ParseBossKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseBossKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := entity.ParseBossKind("kraken"); err == nil {
		t.Error("expected error for unknown boss")
	}
}
