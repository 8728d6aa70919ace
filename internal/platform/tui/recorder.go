package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// runRecorder saves the final score once per game and one level-run record
// per level played. Failures are logged and never stop the game.
type runRecorder struct {
	gameID     string
	rec        storage.Recorder
	logger     *log.Logger
	level      bomber.LevelInfo
	haveLevel  bool
	scoreSaved bool
}

func newRunRecorder(gameID string, rec storage.Recorder, logger *log.Logger) *runRecorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &runRecorder{gameID: gameID, rec: rec, logger: logger}
}

func (r *runRecorder) reset() {
	r.haveLevel = false
	r.scoreSaved = false
}

// observe is called after every tick with the game's new state.
func (r *runRecorder) observe(game registry.Game, state core.GameState) {
	if lr, ok := game.(levelReporter); ok && !r.scoreSaved {
		info := lr.LevelInfo()
		switch {
		case !r.haveLevel:
			r.level, r.haveLevel = info, true
		case info.Level != r.level.Level || info.Seed != r.level.Seed:
			r.saveLevel(state.Score)
			r.level = info
		}
	}

	if state.GameOver && !r.scoreSaved {
		r.scoreSaved = true
		if r.haveLevel {
			r.saveLevel(state.Score)
		}
		if state.Score > 0 {
			r.saveScore(state.Score)
		}
	}
}

func (r *runRecorder) saveScore(score int) {
	if r.rec == nil {
		return
	}
	if _, err := r.rec.SaveScore(r.gameID, score); err != nil {
		r.logger.Warn("cannot save score", "game", r.gameID, "err", err)
		return
	}
	r.logger.Info("score saved", "game", r.gameID, "score", score)
}

func (r *runRecorder) saveLevel(score int) {
	if r.rec == nil {
		return
	}
	run := storage.LevelRun{
		GameID:       r.gameID,
		Level:        r.level.Level,
		Layout:       r.level.Layout.String(),
		Mechanic:     r.level.Mechanic.String(),
		BlockDensity: r.level.BlockDensity,
		Seed:         r.level.Seed,
		Fingerprint:  r.level.Fingerprint,
		Score:        score,
	}
	if _, err := r.rec.SaveLevelRun(run); err != nil {
		r.logger.Warn("cannot save level run", "game", r.gameID, "err", err)
		return
	}
	r.logger.Debug("level run saved", "game", r.gameID, "level", run.Level, "seed", run.Seed)
}
