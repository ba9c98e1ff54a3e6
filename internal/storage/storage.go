// Package storage persists finished runs and per-game high scores.
// Runs and high scores live in SQL (SQLite by default, PostgreSQL when given
// a postgres:// DSN) or, for single-player installs, in the user's data
// directory through gdata.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord is one finished run: the stars a player held when a collision
// ended it.
type RunRecord struct {
	RunID     string
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// NewRunRecord stamps a run with a fresh ID and the current time.
func NewRunRecord(gameID, player string, score int) RunRecord {
	return RunRecord{
		RunID:     uuid.NewString(),
		GameID:    gameID,
		Player:    player,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}
}

// ScoreEntry represents a single stored run.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// Backend is implemented by every score store.
type Backend interface {
	SaveScore(rec RunRecord) (int64, error)
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	RecentScores(gameID string, limit int) ([]ScoreEntry, error)
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int) error
	ClearScores(gameID string) error
	Close() error
}

// Backend kinds accepted by OpenBackend.
const (
	KindDB    = "db"
	KindLocal = "local"
)

// OpenBackend opens the store selected on the command line. dsn is only
// used by the db kind.
func OpenBackend(kind, dsn string) (Backend, error) {
	switch kind {
	case KindDB, "":
		return Open(dsn)
	case KindLocal:
		return OpenLocal(LocalAppName)
	default:
		return nil, fmt.Errorf("storage: unknown store %q (want %s or %s)", kind, KindDB, KindLocal)
	}
}

// HighScoreSlot binds a backend to one game's high score.
type HighScoreSlot struct {
	backend Backend
	gameID  string
}

// HighScoresFor returns the high score slot of gameID in b.
func HighScoresFor(b Backend, gameID string) *HighScoreSlot {
	return &HighScoreSlot{backend: b, gameID: gameID}
}

// LoadHighScore returns the stored high score, 0 if none.
func (h *HighScoreSlot) LoadHighScore() (int, error) {
	return h.backend.HighScore(h.gameID)
}

// SaveHighScore stores score if it beats the stored value.
func (h *HighScoreSlot) SaveHighScore(score int) error {
	return h.backend.SetHighScore(h.gameID, score)
}
