package crossing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/star-crossing/internal/config"
)

var trafficRows = config.RowRange{Min: 2, Max: 5}

func TestNewEnemySpawn(t *testing.T) {
	g := testGrid()
	spawn := config.RowRange{Min: 2, Max: 4}

	for offset := 0; offset < 5; offset++ {
		e := NewEnemy(g, 120, 0, spawn, &scriptedRand{values: []int{offset}})
		assert.True(t, spawn.Contains(e.Row), "row %d", e.Row)
		assert.Equal(t, -101.0, e.X)
		assert.Equal(t, 0, e.Column)
		assert.True(t, e.Forward)
		assert.Equal(t, SpriteBug, e.Sprite)
		assert.Equal(t, 120.0, e.Speed)
	}
}

func TestEnemyMovesBySpeedTimesDelta(t *testing.T) {
	g := testGrid()
	e := NewEnemy(g, 200, 1, config.RowRange{Min: 3, Max: 3}, &scriptedRand{})

	reversed := e.Update(0.25, g, trafficRows, &scriptedRand{})

	assert.False(t, reversed)
	assert.InDelta(t, 50.0, e.X, 1e-9)
	assert.Equal(t, 1, e.Column)
	assert.Equal(t, 3, e.Row)
}

func TestEnemyReversesAtRightEdge(t *testing.T) {
	g := testGrid()
	e := NewEnemy(g, 120, 1, config.RowRange{Min: 2, Max: 2}, &scriptedRand{})
	e.X = 500

	rng := &scriptedRand{values: []int{3}}
	reversed := e.Update(0.1, g, trafficRows, rng)

	require.True(t, reversed)
	assert.InDelta(t, 512.0, e.X, 1e-9)
	assert.Equal(t, -120.0, e.Speed)
	assert.False(t, e.Forward)
	assert.Equal(t, SpriteBugReverse, e.Sprite)
	assert.Equal(t, 5, e.Row)
	assert.Equal(t, g.RowToY(5), e.Y)
	assert.Equal(t, 1, rng.calls)
}

func TestEnemyReversesAtLeftEdge(t *testing.T) {
	g := testGrid()
	e := NewEnemy(g, 120, 1, config.RowRange{Min: 2, Max: 2}, &scriptedRand{})
	e.reverse()
	e.X = -100

	reversed := e.Update(0.1, g, trafficRows, &scriptedRand{values: []int{0}})

	require.True(t, reversed)
	assert.Equal(t, 120.0, e.Speed)
	assert.True(t, e.Forward)
	assert.Equal(t, SpriteBug, e.Sprite)
	assert.Equal(t, 2, e.Row)
}

func TestEnemyStaysOnEdgeWithoutReversing(t *testing.T) {
	g := testGrid()
	e := NewEnemy(g, 100, 1, config.RowRange{Min: 2, Max: 2}, &scriptedRand{})
	e.X = 405

	assert.False(t, e.Update(1, g, trafficRows, &scriptedRand{}))
	assert.Equal(t, 505.0, e.X)
	assert.True(t, e.Forward)
}

func TestEnemyLargeDeltaReversesOnce(t *testing.T) {
	g := testGrid()
	e := NewEnemy(g, 120, 1, config.RowRange{Min: 2, Max: 2}, &scriptedRand{})

	// Overshoots both edges' worth of distance in one call.
	reversed := e.Update(20, g, trafficRows, &scriptedRand{})

	require.True(t, reversed)
	assert.Equal(t, 2400.0, e.X)
	assert.Equal(t, -120.0, e.Speed)
	assert.False(t, e.Forward)
}

func TestEnemyDoesNotReverseTwiceWhileReturning(t *testing.T) {
	g := testGrid()
	e := NewEnemy(g, 220, 1, config.RowRange{Min: 2, Max: 2}, &scriptedRand{})
	e.X = 500

	require.True(t, e.Update(0.25, g, trafficRows, &scriptedRand{}))
	// A short frame leaves the bug beyond the edge while it heads back in.
	assert.False(t, e.Update(0.01, g, trafficRows, &scriptedRand{}))
	assert.False(t, e.Forward)
	assert.Less(t, e.Speed, 0.0)
}

func TestEnemyUpdateDeterministic(t *testing.T) {
	g := testGrid()
	a := NewEnemy(g, 170, 0, config.RowRange{Min: 2, Max: 4}, &scriptedRand{values: []int{1}})
	b := NewEnemy(g, 170, 0, config.RowRange{Min: 2, Max: 4}, &scriptedRand{values: []int{1}})

	ra := &scriptedRand{values: []int{2, 0, 3}}
	rb := &scriptedRand{values: []int{2, 0, 3}}
	for i := 0; i < 500; i++ {
		a.Update(0.016, g, trafficRows, ra)
		b.Update(0.016, g, trafficRows, rb)
	}

	assert.Equal(t, *a, *b)
}
