package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a scenario picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scenario.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scenario
  Tab          - Scoreboard
  Q            - Quit

Examples:
  bomber menu
  bomber menu --fps 30
  bomber menu --db ./bomber.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom bomber config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer := fileLogger()
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	bomber.SetConfigPath(flagConfig)
	bomber.SetDifficultyPreset(flagDifficulty)

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("game started", "game", menuResult.GameID, "seed", cfg.Seed)
		if err := tui.Run(game, recorder(store), cfg, logger); err != nil {
			logger.Error("game crashed", "err", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
