package crossing

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-crossing/internal/core"
)

// ScoreKeeper tracks the high-water mark of a session and writes every new
// high through to a persister. Persistence is best effort in both directions.
type ScoreKeeper struct {
	persister core.HighScorePersister
	logger    *log.Logger
	high      int
}

// NewScoreKeeper loads the persisted high score. A nil persister, or one that
// fails to load, starts the session from zero.
func NewScoreKeeper(p core.HighScorePersister, logger *log.Logger) *ScoreKeeper {
	if logger == nil {
		logger = log.Default()
	}
	k := &ScoreKeeper{persister: p, logger: logger}
	k.Refresh()
	return k
}

// Refresh pulls the persisted high score, which other sessions sharing the
// store may have raised. The kept value never goes down.
func (k *ScoreKeeper) Refresh() {
	if k.persister == nil {
		return
	}
	high, err := k.persister.LoadHighScore()
	if err != nil {
		k.logger.Warn("high score unavailable", "err", err)
		return
	}
	if high > k.high {
		k.high = high
	}
}

// HighScore returns the best score seen so far.
func (k *ScoreKeeper) HighScore() int {
	return k.high
}

// Record raises the high score if value beats it and persists the new value.
// Returns true on a strict increase. Save failures are logged and dropped.
func (k *ScoreKeeper) Record(value int) bool {
	if value <= k.high {
		return false
	}
	k.high = value

	if k.persister != nil {
		if err := k.persister.SaveHighScore(value); err != nil {
			k.logger.Warn("failed to save high score", "score", value, "err", err)
		}
	}
	return true
}
