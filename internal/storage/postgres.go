package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS scores (
		id BIGSERIAL PRIMARY KEY,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
	CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

	CREATE TABLE IF NOT EXISTS level_runs (
		id BIGSERIAL PRIMARY KEY,
		game_id TEXT NOT NULL,
		level INTEGER NOT NULL,
		layout TEXT NOT NULL,
		mechanic TEXT NOT NULL,
		block_density DOUBLE PRECISION NOT NULL,
		seed BIGINT NOT NULL,
		fingerprint BIGINT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_level_runs_game_id ON level_runs(game_id);
	CREATE INDEX IF NOT EXISTS idx_level_runs_seed ON level_runs(seed);
`

// OpenPostgres connects to a PostgreSQL database and runs migrations.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	return connect(db, dialectPostgres)
}

// rebind rewrites ? placeholders to PostgreSQL's $1, $2, ... form. Queries
// in this package never carry a literal question mark.
func rebind(query string) string {
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r != '?' {
			sb.WriteRune(r)
			continue
		}
		n++
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}
