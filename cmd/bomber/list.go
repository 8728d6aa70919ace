package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long:  `Shows every registered scenario with its layout and mechanic.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := bomber.Scenarios()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
		maxTitleLen = max(maxTitleLen, len(s.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Level")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, s.ID, maxTitleLen, s.Title, describe(s))
	}

	fmt.Println()
	fmt.Println("Run 'bomber play <id>' to play a scenario.")
}

// describe summarises how a scenario builds its levels.
func describe(s bomber.Scenario) string {
	layout := s.Layout
	switch {
	case s.CycleLayouts:
		layout = "all layouts"
	case layout == "":
		layout = "config layout"
	}
	mechanic := s.Mechanic
	if mechanic == "" {
		mechanic = "config mechanic"
	}

	desc := layout + ", " + mechanic
	if s.HasBoss {
		desc += ", boss " + s.Boss.String()
	}
	if s.Daily {
		desc += ", daily seed"
	}
	return desc
}
