package crossing

import (
	"math"

	"github.com/vovakirdan/star-crossing/internal/config"
)

// Grid maps between discrete lane cells and continuous canvas coordinates.
// Columns and rows are 1-based; row 1 is the top border.
type Grid struct {
	Columns      int
	Rows         int
	TileWidth    float64
	TileHeight   float64
	SpriteOffset float64
	CanvasWidth  float64
}

// NewGrid builds a Grid from the game configuration.
func NewGrid(cfg config.CrossingConfig) Grid {
	return Grid{
		Columns:      cfg.Grid.Columns,
		Rows:         cfg.Grid.Rows,
		TileWidth:    float64(cfg.Grid.TileWidth),
		TileHeight:   float64(cfg.Grid.TileHeight),
		SpriteOffset: float64(cfg.Grid.SpriteOffset),
		CanvasWidth:  float64(cfg.Canvas.Width),
	}
}

// ColumnToX returns the left edge of a column. Column 1 starts at 0.
func (g Grid) ColumnToX(column int) float64 {
	return float64(column)*g.TileWidth - g.TileWidth
}

// RowToY returns the sprite origin for a row.
func (g Grid) RowToY(row int) float64 {
	return float64(row)*g.TileHeight - g.SpriteOffset
}

// XToColumn returns the column nearest to x. Halves round up, so a sprite
// counts as entering the next column once it is half a tile across.
func (g Grid) XToColumn(x float64) int {
	return int(math.Floor(x/g.TileWidth+0.5)) + 1
}

// YToRow is the inverse of RowToY.
func (g Grid) YToRow(y float64) int {
	return int(math.Floor((y+g.SpriteOffset)/g.TileHeight + 0.5))
}

// InBounds reports whether (column, row) is a cell on the board.
func (g Grid) InBounds(column, row int) bool {
	return column >= 1 && column <= g.Columns && row >= 1 && row <= g.Rows
}

// Rand is the random source used for every spawn decision.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
}

// randomIn draws uniformly from the inclusive range [lo, hi].
func randomIn(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func randomRow(rng Rand, rows config.RowRange) int {
	return randomIn(rng, rows.Min, rows.Max)
}
