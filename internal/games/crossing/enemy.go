package crossing

import (
	"github.com/vovakirdan/star-crossing/internal/config"
)

// Enemy is a bug that runs along a lane and turns around at the canvas edges.
// X is authoritative; Column is derived from it on every update.
type Enemy struct {
	Entity
	Speed   float64 // pixels per second, negative while running in reverse
	Forward bool
}

// NewEnemy places a bug at the spawn column on a random spawn row, facing forward.
func NewEnemy(grid Grid, speed float64, spawnColumn int, spawnRows config.RowRange, rng Rand) *Enemy {
	if speed < 0 {
		speed = -speed
	}
	return &Enemy{
		Entity:  newEntity(grid, SpriteBug, spawnColumn, randomRow(rng, spawnRows)),
		Speed:   speed,
		Forward: true,
	}
}

// Update advances the bug by dt seconds. When it leaves the canvas it turns
// around once and picks a new traffic row, which may be the same row.
// The edge check runs once, after the move, however large dt is.
// Returns true if the bug reversed.
func (e *Enemy) Update(dt float64, grid Grid, traffic config.RowRange, rng Rand) bool {
	e.X += e.Speed * dt
	e.Column = grid.XToColumn(e.X)

	if !e.outside(grid) {
		return false
	}

	e.reverse()
	e.Row = randomRow(rng, traffic)
	e.Y = grid.RowToY(e.Row)
	return true
}

// outside reports whether the bug has run past an edge in its direction of
// travel. A bug already heading back in never turns again, even if a short
// frame leaves it beyond the edge.
func (e *Enemy) outside(grid Grid) bool {
	if e.Speed > 0 {
		return e.X > grid.CanvasWidth
	}
	return e.X < -grid.TileWidth
}

func (e *Enemy) reverse() {
	e.Speed = -e.Speed
	e.Forward = !e.Forward
	if e.Forward {
		e.Sprite = SpriteBug
	} else {
		e.Sprite = SpriteBugReverse
	}
}
