package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/entity"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/levelgen"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List layouts, mechanics, enemies and bosses",
	Long: `Shows the names accepted by 'bomber gen' and the config file: wall
layouts, world mechanics, enemy archetypes and boss archetypes.`,
	Run: runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) {
	layouts := make([]string, 0, len(levelgen.Layouts()))
	for _, l := range levelgen.Layouts() {
		layouts = append(layouts, l.String())
	}
	mechanics := make([]string, 0, len(levelgen.Mechanics()))
	for _, m := range levelgen.Mechanics() {
		mechanics = append(mechanics, m.String())
	}

	fmt.Printf("Layouts:    %s\n", strings.Join(layouts, ", "))
	fmt.Printf("Mechanics:  %s\n", strings.Join(mechanics, ", "))
	fmt.Println()

	fmt.Println("Enemies:")
	fmt.Printf("  %-10s  %5s  %-6s  %2s  %5s  %s\n", "Name", "Speed", "Brain", "HP", "Score", "Traits")
	for _, t := range entity.EnemyTypes() {
		fmt.Printf("  %-10s  %5.0f  %-6s  %2d  %5d  %s\n",
			t.String(), t.Speed(), t.Intelligence(), t.HitPoints(), t.ScoreValue(), traits(t))
	}
	fmt.Println()

	fmt.Println("Bosses:")
	fmt.Printf("  %-10s  %4s  %3s  %8s\n", "Name", "Size", "HP", "Cooldown")
	for _, k := range entity.BossKinds() {
		name := k.String()
		if k.IsFinal() {
			name += "*"
		}
		fmt.Printf("  %-10s  %4d  %3d  %7.1fs\n", name, k.Size(), k.MaxHP(), k.Cooldown())
	}
	fmt.Println()
	fmt.Println("* final boss: rotates through its attack pattern")
}

func traits(t entity.EnemyType) string {
	var out []string
	if t.CanPassWalls() {
		out = append(out, "wall-pass")
	}
	if t.SplitsOnDeath() {
		out = append(out, "splits")
	}
	if t.HasInvisibility() {
		out = append(out, "invisible")
	}
	if t.CanDisguise() {
		out = append(out, "disguise")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ", ")
}
