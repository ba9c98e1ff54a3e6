package crossing

// SpriteID names a drawable asset. Renderers decide what it looks like.
type SpriteID string

const (
	SpriteBug        SpriteID = "enemy-bug"
	SpriteBugReverse SpriteID = "enemy-bug-reverse"
	SpritePlayer     SpriteID = "char-boy"
	SpriteStar       SpriteID = "star"
)

// Sprite is what a render collaborator needs to draw one entity.
type Sprite struct {
	ID SpriteID
	X  float64
	Y  float64
}

// Entity is the state shared by everything on the board.
// Column and Row are the logical cell used for collisions; X and Y are
// the render position derived from them.
type Entity struct {
	Sprite SpriteID
	Column int
	Row    int
	X      float64
	Y      float64
}

func newEntity(grid Grid, sprite SpriteID, column, row int) Entity {
	e := Entity{Sprite: sprite}
	e.place(grid, column, row)
	return e
}

// place moves the entity to a cell and recomputes its render position.
func (e *Entity) place(grid Grid, column, row int) {
	e.Column = column
	e.Row = row
	e.X = grid.ColumnToX(column)
	e.Y = grid.RowToY(row)
}

// SameCell reports whether two entities occupy the same grid cell.
func (e Entity) SameCell(other Entity) bool {
	return e.Column == other.Column && e.Row == other.Row
}

// Drawable returns the entity's render triple.
func (e Entity) Drawable() Sprite {
	return Sprite{ID: e.Sprite, X: e.X, Y: e.Y}
}
