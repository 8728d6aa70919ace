package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <scenario>",
	Short: "Play a scenario",
	Long: `Start playing the specified scenario.

Controls:
  Arrows/WASD  - Run (keeps going until blocked)
  X            - Stop
  Space        - Strike the facing tile (breaks blocks, hits enemies)
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.bomber/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, fewer enemies, frequent power-ups
  normal - Config defaults
  hard   - Fewer lives, more enemies, rare power-ups
  fixed  - No progression, stays at config's initial level

Examples:
  bomber play survival
  bomber play ice --difficulty easy
  bomber play boss_overlord --difficulty hard
  bomber play survival --config ./my-bomber.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom bomber config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runtimeConfig sizes the sandbox to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bomber list' to see available scenarios.")
		os.Exit(1)
	}

	bomber.SetConfigPath(flagConfig)
	bomber.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closer := fileLogger()
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("game started", "game", gameID, "seed", flagSeed)
	if err := tui.Run(game, recorder(store), runtimeConfig(), logger); err != nil {
		logger.Error("game crashed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
