package crossing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/star-crossing/internal/config"
	"github.com/vovakirdan/star-crossing/internal/core"
)

func TestPlayerMoveStaysInBounds(t *testing.T) {
	g := testGrid()
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for col := 1; col <= g.Columns; col++ {
		for row := 1; row <= g.Rows; row++ {
			for _, dir := range dirs {
				p := &Player{Entity: Entity{Sprite: SpritePlayer}, HomeRow: 6}
				p.place(g, col, row)

				moved := p.Move(dir, g)

				assert.True(t, g.InBounds(p.Column, p.Row), "(%d,%d) %s", col, row, dir)
				if !moved {
					assert.Equal(t, col, p.Column)
					assert.Equal(t, row, p.Row)
				}
			}
		}
	}
}

func TestPlayerMoveSteps(t *testing.T) {
	g := testGrid()
	p := &Player{Entity: Entity{Sprite: SpritePlayer}, HomeRow: 6}
	p.place(g, 3, 4)

	assert.True(t, p.Move(DirUp, g))
	assert.Equal(t, 3, p.Row)
	assert.True(t, p.Move(DirDown, g))
	assert.Equal(t, 4, p.Row)
	assert.True(t, p.Move(DirLeft, g))
	assert.Equal(t, 2, p.Column)
	assert.True(t, p.Move(DirRight, g))
	assert.Equal(t, 3, p.Column)

	assert.Equal(t, g.ColumnToX(3), p.X)
	assert.Equal(t, g.RowToY(4), p.Y)
}

func TestPlayerMoveIgnoredAtEdges(t *testing.T) {
	g := testGrid()
	p := &Player{Entity: Entity{Sprite: SpritePlayer}, HomeRow: 6}

	p.place(g, 1, 1)
	assert.False(t, p.Move(DirUp, g))
	assert.False(t, p.Move(DirLeft, g))

	p.place(g, 5, 6)
	assert.False(t, p.Move(DirDown, g))
	assert.False(t, p.Move(DirRight, g))
	assert.Equal(t, 5, p.Column)
	assert.Equal(t, 6, p.Row)
}

func TestPlayerResetOnCollision(t *testing.T) {
	g := testGrid()

	for offset := 0; offset < g.Columns; offset++ {
		p := NewPlayer(g, 6, &scriptedRand{})
		p.place(g, 2, 3)
		p.Stars = 7

		p.ResetOnCollision(g, &scriptedRand{values: []int{offset}})

		assert.Equal(t, 0, p.Stars)
		assert.Equal(t, 6, p.Row)
		assert.Equal(t, offset+1, p.Column)
		assert.Equal(t, g.RowToY(6), p.Y)
	}
}

func TestPlayerCollectStar(t *testing.T) {
	p := NewPlayer(testGrid(), 6, &scriptedRand{})

	for i := 1; i <= 3; i++ {
		p.CollectStar()
		assert.Equal(t, i, p.Stars)
	}
}

func TestStarRelocateStaysInRows(t *testing.T) {
	g := testGrid()
	rows := config.RowRange{Min: 2, Max: 5}
	rng := &scriptedRand{values: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	s := NewStar(g, rows, rng)

	for i := 0; i < 50; i++ {
		s.Relocate(g, rows, rng)
		assert.True(t, rows.Contains(s.Row), "row %d", s.Row)
		assert.True(t, s.Column >= 1 && s.Column <= g.Columns, "column %d", s.Column)
	}
}

func TestDirectionFromAction(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionPause, 0, false},
		{core.ActionNone, 0, false},
	}
	for _, tt := range tests {
		dir, ok := DirectionFromAction(tt.action)
		assert.Equal(t, tt.ok, ok, tt.action.String())
		if tt.ok {
			assert.Equal(t, tt.want, dir)
		}
	}
}
