package core

// HighScorePersister is the read/write contract for a game's persisted high score.
// LoadHighScore returns 0 when nothing has been stored yet.
type HighScorePersister interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}
