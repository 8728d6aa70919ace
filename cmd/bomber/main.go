// bomber is a terminal tile-arena survival sandbox with procedurally
// generated levels.
//
// Usage:
//
//	bomber list                - List available scenarios
//	bomber layouts             - List layouts, mechanics and archetypes
//	bomber gen                 - Print a generated level
//	bomber play <scenario>     - Play a scenario
//	bomber menu                - Start menu to pick scenarios interactively
//	bomber serve               - Start SSH server for remote play
//	bomber scores <scenario>   - Show high scores for a scenario
//	bomber runs                - Show recorded level runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path|dsn>      - SQLite path or postgres:// DSN (default: ~/.bomber/bomber.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - survive procedurally generated arenas in your terminal",
	Long: `Bomber is a terminal tile-arena sandbox. Every level is generated from a
seed: a wall layout, a world mechanic (ice, conveyors, teleporters, lava,
gaps) and destructible blocks hiding power-ups and the exit.

Available commands:
  list     - Show all scenarios
  layouts  - Show layouts, mechanics, enemies and bosses
  gen      - Print a generated level as ASCII
  play     - Play a specific scenario directly
  menu     - Interactive scenario picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  runs     - View recorded level runs

Examples:
  bomber list
  bomber gen --layout Maze --mechanic Ice --seed 7
  bomber play survival
  bomber play boss_hydra --difficulty hard
  bomber serve --ssh :2222
  bomber runs --verify`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomber/bomber.db", "SQLite path or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger returns a logger writing to w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomber",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.bomber/bomber.log so the alternate screen stays
// clean. It falls back to discarding output. The returned closer is never nil.
func fileLogger() (*log.Logger, io.Closer) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".bomber")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(dir, "bomber.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), io.NopCloser(nil)
	}
	return newLogger(f), f
}

// openStore opens --db. Failures are logged and play continues without
// storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.OpenURL(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// recorder avoids handing a typed nil *Store to the Recorder interface.
func recorder(store *storage.Store) storage.Recorder {
	if store == nil {
		return nil
	}
	return store
}
