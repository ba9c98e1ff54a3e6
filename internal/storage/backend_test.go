package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseBackend runs the behavior every Backend must share.
func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	const game = "crossing"
	require.NoError(t, b.ClearScores(game))

	slot := HighScoresFor(b, game)
	high, err := slot.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	require.NoError(t, slot.SaveHighScore(5))
	require.NoError(t, slot.SaveHighScore(3))
	high, err = slot.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 5, high)

	for _, s := range []int{2, 6, 1} {
		_, err := b.SaveScore(NewRunRecord(game, "p1", s))
		require.NoError(t, err)
	}

	top, err := b.TopScores(game, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, []int{6, 2}, []int{top[0].Score, top[1].Score})

	recent, err := b.RecentScores(game, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 1, recent[0].Score)
	assert.Equal(t, "p1", recent[0].Player)
	assert.NotEmpty(t, recent[0].RunID)

	high, err = b.HighScore(game)
	require.NoError(t, err)
	assert.Equal(t, 6, high)

	require.NoError(t, b.ClearScores(game))
	high, err = b.HighScore(game)
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestSQLiteBackend(t *testing.T) {
	exerciseBackend(t, openTestStore(t))
}

func TestPostgresBackend(t *testing.T) {
	dsn := os.Getenv("CROSSING_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CROSSING_TEST_POSTGRES_DSN not set")
	}

	store, err := Open(dsn)
	require.NoError(t, err)
	defer store.Close()

	exerciseBackend(t, store)
}

func TestLocalBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	store, err := OpenLocal("star_crossing_test")
	if err != nil {
		t.Skipf("local data directory unavailable: %v", err)
	}
	defer store.Close()

	exerciseBackend(t, store)
}

func TestLocalBackendCapsHistory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	store, err := OpenLocal("star_crossing_cap_test")
	if err != nil {
		t.Skipf("local data directory unavailable: %v", err)
	}

	for i := 0; i < maxLocalRuns+5; i++ {
		_, err := store.SaveScore(NewRunRecord("crossing", "", i))
		require.NoError(t, err)
	}

	recent, err := store.RecentScores("crossing", maxLocalRuns*2)
	require.NoError(t, err)
	require.Len(t, recent, maxLocalRuns)
	assert.Equal(t, maxLocalRuns+4, recent[0].Score)
	assert.Equal(t, 5, recent[len(recent)-1].Score)
}

func TestOpenBackend(t *testing.T) {
	b, err := OpenBackend(KindDB, t.TempDir()+"/scores.db")
	require.NoError(t, err)
	assert.IsType(t, &Store{}, b)
	require.NoError(t, b.Close())

	_, err = OpenBackend("cloud", "")
	assert.Error(t, err)
}
