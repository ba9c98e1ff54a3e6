package crossing

import "github.com/vovakirdan/star-crossing/internal/core"

// Direction is a one-cell step requested by the player.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromAction maps a platform action to a step. ok is false for
// non-directional actions.
func DirectionFromAction(a core.Action) (dir Direction, ok bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Player is the avatar crossing the lanes.
type Player struct {
	Entity
	Stars   int
	HomeRow int
}

// NewPlayer puts the player on a random column of the home row.
func NewPlayer(grid Grid, homeRow int, rng Rand) *Player {
	p := &Player{
		Entity:  Entity{Sprite: SpritePlayer},
		HomeRow: homeRow,
	}
	p.respawn(grid, rng)
	return p
}

// Move steps one cell. Steps that would leave the board are ignored.
// Returns true if the player moved.
func (p *Player) Move(dir Direction, grid Grid) bool {
	column, row := p.Column, p.Row
	switch dir {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		column--
	case DirRight:
		column++
	default:
		return false
	}

	if !grid.InBounds(column, row) {
		return false
	}
	p.place(grid, column, row)
	return true
}

// CollectStar adds one star to the current run.
func (p *Player) CollectStar() {
	p.Stars++
}

// ResetOnCollision drops the run's stars and sends the player home.
func (p *Player) ResetOnCollision(grid Grid, rng Rand) {
	p.Stars = 0
	p.respawn(grid, rng)
}

func (p *Player) respawn(grid Grid, rng Rand) {
	p.place(grid, randomIn(rng, 1, grid.Columns), p.HomeRow)
}
