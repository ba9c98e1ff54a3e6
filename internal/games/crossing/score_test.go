package crossing

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRecordScorePersistsOnlyStrictIncrease(t *testing.T) {
	p := &fakePersister{}
	k := NewScoreKeeper(p, quietLogger())

	assert.True(t, k.Record(5))
	assert.False(t, k.Record(3))
	assert.False(t, k.Record(5))

	assert.Equal(t, 5, k.HighScore())
	assert.Equal(t, []int{5}, p.saves)
}

func TestRecordScoreMonotonic(t *testing.T) {
	p := &fakePersister{}
	k := NewScoreKeeper(p, quietLogger())

	values := []int{1, 4, 2, 4, 9, 0, 7, 10}
	best := 0
	increases := 0
	for _, v := range values {
		if v > best {
			best = v
			increases++
		}
		k.Record(v)
		assert.Equal(t, best, k.HighScore())
	}
	assert.Len(t, p.saves, increases)
}

func TestScoreKeeperLoadsPersistedHigh(t *testing.T) {
	k := NewScoreKeeper(&fakePersister{stored: 12}, quietLogger())
	assert.Equal(t, 12, k.HighScore())
	assert.False(t, k.Record(12))
}

func TestScoreKeeperFailSoft(t *testing.T) {
	p := &fakePersister{stored: 30, loadErr: errStoreDown, saveErr: errStoreDown}
	k := NewScoreKeeper(p, quietLogger())
	require.Equal(t, 0, k.HighScore())

	assert.True(t, k.Record(2))
	assert.Equal(t, 2, k.HighScore())
	assert.Equal(t, []int{2}, p.saves)
}

func TestScoreKeeperWithoutPersister(t *testing.T) {
	k := NewScoreKeeper(nil, nil)
	assert.Equal(t, 0, k.HighScore())
	assert.True(t, k.Record(1))
	assert.Equal(t, 1, k.HighScore())
}

func TestScoreKeeperRefresh(t *testing.T) {
	p := &fakePersister{stored: 4}
	k := NewScoreKeeper(p, quietLogger())
	require.Equal(t, 4, k.HighScore())

	// another session raised the shared high score
	p.stored = 9
	k.Refresh()
	assert.Equal(t, 9, k.HighScore())

	p.stored = 2
	k.Refresh()
	assert.Equal(t, 9, k.HighScore(), "refresh never lowers the high score")

	p.loadErr = errStoreDown
	k.Refresh()
	assert.Equal(t, 9, k.HighScore())
	assert.Empty(t, p.saves)
}
