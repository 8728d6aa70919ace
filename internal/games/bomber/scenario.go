package bomber

import (
	"time"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

// Scenario is a registered sandbox variant. Empty Layout or Mechanic fall
// back to the loaded config.
type Scenario struct {
	ID       string
	Title    string
	Layout   string
	Mechanic string
	Enemies  []string // Overrides the configured archetype pool

	// Boss scenarios start on the boss arena with a single boss and no
	// regular enemies.
	HasBoss bool
	Boss    entity.BossKind

	// CycleLayouts advances through every layout as levels are cleared.
	CycleLayouts bool
	// Daily derives the seed from the current UTC date.
	Daily bool
}

var scenarios = []Scenario{
	{ID: "survival", Title: "Bomber: Survival", CycleLayouts: true},
	{ID: "daily", Title: "Bomber: Daily Challenge", CycleLayouts: true, Daily: true},
	{ID: "ice", Title: "Bomber: Ice Rink", Layout: "Arena", Mechanic: "Ice"},
	{ID: "conveyor", Title: "Bomber: Conveyor Works", Layout: "Cross", Mechanic: "Conveyor"},
	{ID: "portals", Title: "Bomber: Portals", Layout: "TwoRooms", Mechanic: "Teleporter"},
	{ID: "lava", Title: "Bomber: Lava Fields", Layout: "Islands", Mechanic: "LavaCrack"},
	{ID: "gaps", Title: "Bomber: Sky Platforms", Layout: "Spiral", Mechanic: "PlatformGap"},
	{ID: "maze", Title: "Bomber: Maze Hunt", Layout: "Maze", Enemies: []string{"Kondoria", "Ghost", "Mimic", "Splitter"}},
	{ID: "boss_golem", Title: "Boss: Golem", Layout: "BossArena", HasBoss: true, Boss: entity.BossGolem},
	{ID: "boss_phantom", Title: "Boss: Phantom", Layout: "BossArena", HasBoss: true, Boss: entity.BossPhantom},
	{ID: "boss_hydra", Title: "Boss: Hydra", Layout: "BossArena", HasBoss: true, Boss: entity.BossHydra},
	{ID: "boss_mecha", Title: "Boss: Mecha", Layout: "BossArena", HasBoss: true, Boss: entity.BossMecha},
	{ID: "boss_overlord", Title: "Boss: Overlord", Layout: "BossArena", HasBoss: true, Boss: entity.BossOverlord},
}

// Scenarios returns every registered scenario in declaration order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// LookupScenario returns the scenario with the given ID.
func LookupScenario(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// DailySeed returns the shared seed for the given day.
func DailySeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y*10000 + int(m)*100 + d)
}

func init() {
	for _, s := range scenarios {
		s := s
		registry.Register(s.ID, func() registry.Game {
			return New(s)
		})
	}
}
