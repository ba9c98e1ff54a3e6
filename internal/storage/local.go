package storage

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// LocalAppName is the gdata application directory of the local store.
const LocalAppName = "star_crossing"

// maxLocalRuns caps the run history kept per game.
const maxLocalRuns = 100

const (
	highScoreProp = "highscore"
	runsProp      = "runs"
)

// LocalStore keeps scores in the platform's per-user data directory.
// Each game is a gdata object with a high score and a YAML run list.
type LocalStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// localRun is the on-disk form of a run.
type localRun struct {
	ID        int64  `yaml:"id"`
	RunID     string `yaml:"run_id"`
	Player    string `yaml:"player,omitempty"`
	Score     int    `yaml:"score"`
	CreatedAt string `yaml:"created_at"`
}

// OpenLocal opens the gdata store for appName.
func OpenLocal(appName string) (*LocalStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open local data: %w", err)
	}
	return &LocalStore{manager: m}, nil
}

// Close is a no-op; every write is flushed immediately.
func (l *LocalStore) Close() error {
	return nil
}

// HighScore returns the stored high score, 0 if none.
func (l *LocalStore) HighScore(gameID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	high, err := l.loadHigh(gameID)
	if err != nil {
		return 0, err
	}
	runs, err := l.loadRuns(gameID)
	if err != nil {
		return 0, err
	}
	for _, r := range runs {
		high = max(high, r.Score)
	}
	return high, nil
}

// SetHighScore stores score unless a higher one is already stored.
func (l *LocalStore) SetHighScore(gameID string, score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	high, err := l.loadHigh(gameID)
	if err != nil {
		return err
	}
	if score <= high {
		return nil
	}
	if err := l.manager.SaveObjectProp(gameID, highScoreProp, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// SaveScore appends a run, dropping the oldest past the history cap.
func (l *LocalStore) SaveScore(rec RunRecord) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	runs, err := l.loadRuns(rec.GameID)
	if err != nil {
		return 0, err
	}

	var id int64 = 1
	if len(runs) > 0 {
		id = runs[len(runs)-1].ID + 1
	}
	runs = append(runs, localRun{
		ID:        id,
		RunID:     rec.RunID,
		Player:    rec.Player,
		Score:     rec.Score,
		CreatedAt: rec.CreatedAt.Format(timeLayout),
	})
	if len(runs) > maxLocalRuns {
		runs = runs[len(runs)-maxLocalRuns:]
	}

	if err := l.saveRuns(rec.GameID, runs); err != nil {
		return 0, err
	}
	return id, nil
}

// TopScores returns the best runs, highest first.
func (l *LocalStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	entries, err := l.entries(gameID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return truncate(entries, limit), nil
}

// RecentScores returns the latest runs, newest first.
func (l *LocalStore) RecentScores(gameID string, limit int) ([]ScoreEntry, error) {
	entries, err := l.entries(gameID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return truncate(entries, limit), nil
}

// ClearScores forgets the run history and the high score.
func (l *LocalStore) ClearScores(gameID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.saveRuns(gameID, nil); err != nil {
		return err
	}
	if err := l.manager.SaveObjectProp(gameID, highScoreProp, []byte("0")); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"

func (l *LocalStore) entries(gameID string) ([]ScoreEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	runs, err := l.loadRuns(gameID)
	if err != nil {
		return nil, err
	}
	entries := make([]ScoreEntry, len(runs))
	for i, r := range runs {
		entries[i] = ScoreEntry{
			ID:        r.ID,
			RunID:     r.RunID,
			GameID:    gameID,
			Player:    r.Player,
			Score:     r.Score,
			CreatedAt: parseTimeString(r.CreatedAt),
		}
	}
	return entries, nil
}

func (l *LocalStore) loadHigh(gameID string) (int, error) {
	if !l.manager.ObjectPropExists(gameID, highScoreProp) {
		return 0, nil
	}
	data, err := l.manager.LoadObjectProp(gameID, highScoreProp)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}
	high, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score %q: %w", data, err)
	}
	return high, nil
}

func (l *LocalStore) loadRuns(gameID string) ([]localRun, error) {
	if !l.manager.ObjectPropExists(gameID, runsProp) {
		return nil, nil
	}
	data, err := l.manager.LoadObjectProp(gameID, runsProp)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load runs: %w", err)
	}
	var runs []localRun
	if err := yaml.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("storage: corrupt run history: %w", err)
	}
	return runs, nil
}

func (l *LocalStore) saveRuns(gameID string, runs []localRun) error {
	if runs == nil {
		runs = []localRun{}
	}
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("storage: cannot encode runs: %w", err)
	}
	if err := l.manager.SaveObjectProp(gameID, runsProp, data); err != nil {
		return fmt.Errorf("storage: cannot save runs: %w", err)
	}
	return nil
}

func truncate(entries []ScoreEntry, limit int) []ScoreEntry {
	if limit <= 0 {
		limit = 10
	}
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
