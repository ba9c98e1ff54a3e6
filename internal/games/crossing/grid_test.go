package crossing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridMapping(t *testing.T) {
	g := testGrid()

	assert.Equal(t, 0.0, g.ColumnToX(1))
	assert.Equal(t, 404.0, g.ColumnToX(5))
	assert.Equal(t, -101.0, g.ColumnToX(0))
	assert.Equal(t, 396.0, g.RowToY(6))
	assert.Equal(t, -19.0, g.RowToY(1))

	for row := 1; row <= g.Rows; row++ {
		assert.Equal(t, row, g.YToRow(g.RowToY(row)))
	}
	for col := 0; col <= g.Columns; col++ {
		assert.Equal(t, col, g.XToColumn(g.ColumnToX(col)))
	}
}

func TestXToColumnRoundsHalfUp(t *testing.T) {
	g := testGrid()

	tests := []struct {
		x    float64
		want int
	}{
		{0, 1},
		{50, 1},
		{50.5, 2},
		{102, 2},
		{-50, 1},
		{-50.5, 1},
		{-51, 0},
		{512, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.XToColumn(tt.x), "x=%v", tt.x)
	}
}

func TestInBounds(t *testing.T) {
	g := testGrid()

	assert.True(t, g.InBounds(1, 1))
	assert.True(t, g.InBounds(5, 6))
	assert.False(t, g.InBounds(0, 3))
	assert.False(t, g.InBounds(6, 3))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(3, 7))
}
