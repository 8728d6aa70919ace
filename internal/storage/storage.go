// Package storage persists scores and level-run records. The same Store
// works over SQLite (the pure-Go modernc.org/sqlite driver) and PostgreSQL
// (lib/pq); only the schema and placeholder syntax differ.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Recorder is the write side of the store used by the game session.
type Recorder interface {
	SaveScore(gameID string, score int) (int64, error)
	SaveLevelRun(run LevelRun) (int64, error)
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// LevelRun records how a played level was generated. Regenerating with the
// same layout, mechanic, density and seed must give the same fingerprint.
type LevelRun struct {
	ID           int64
	GameID       string
	Level        int
	Layout       string
	Mechanic     string
	BlockDensity float64
	Seed         uint64
	Fingerprint  uint64
	Score        int
	CreatedAt    time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// OpenURL opens PostgreSQL for postgres:// and postgresql:// targets and a
// SQLite file for anything else.
func OpenURL(target string) (*Store, error) {
	if strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://") {
		return OpenPostgres(target)
	}
	return Open(target)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// parseTime accepts the time.Time PostgreSQL returns and the text SQLite
// returns for CURRENT_TIMESTAMP columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse("2006-01-02 15:04:05", string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
