package storage

import (
	"database/sql"
	"fmt"
)

// SaveLevelRun records a generated level. Seed and fingerprint are stored as
// their int64 bit patterns since neither driver accepts uint64 above MaxInt64.
func (s *Store) SaveLevelRun(run LevelRun) (int64, error) {
	id, err := s.insert(
		`INSERT INTO level_runs
		 (game_id, level, layout, mechanic, block_density, seed, fingerprint, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.GameID,
		run.Level,
		run.Layout,
		run.Mechanic,
		run.BlockDensity,
		int64(run.Seed),
		int64(run.Fingerprint),
		run.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level run: %w", err)
	}
	return id, nil
}

// RecentLevelRuns returns the newest runs first. An empty gameID matches
// every game.
func (s *Store) RecentLevelRuns(gameID string, limit int) ([]LevelRun, error) {
	if limit <= 0 {
		limit = 20
	}

	const cols = `SELECT id, game_id, level, layout, mechanic, block_density, seed, fingerprint, score, created_at
		 FROM level_runs`

	var rows *sql.Rows
	var err error
	if gameID == "" {
		rows, err = s.query(cols+` ORDER BY id DESC LIMIT ?`, limit)
	} else {
		rows, err = s.query(cols+` WHERE game_id = ? ORDER BY id DESC LIMIT ?`, gameID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level runs: %w", err)
	}
	defer rows.Close()

	var runs []LevelRun
	for rows.Next() {
		var r LevelRun
		var seed, fingerprint int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Level,
			&r.Layout,
			&r.Mechanic,
			&r.BlockDensity,
			&seed,
			&fingerprint,
			&r.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Seed = uint64(seed)
		r.Fingerprint = uint64(fingerprint)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
