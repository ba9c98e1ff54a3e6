package crossing

import "github.com/vovakirdan/star-crossing/internal/config"

// Star is the collectible. It jumps to a new random cell whenever it is picked up.
type Star struct {
	Entity
}

// NewStar places a star on a random cell within rows.
func NewStar(grid Grid, rows config.RowRange, rng Rand) *Star {
	s := &Star{Entity: Entity{Sprite: SpriteStar}}
	s.Relocate(grid, rows, rng)
	return s
}

// Relocate moves the star to a random cell. The new cell may equal the old one.
func (s *Star) Relocate(grid Grid, rows config.RowRange, rng Rand) {
	s.place(grid, randomIn(rng, 1, grid.Columns), randomRow(rng, rows))
}
