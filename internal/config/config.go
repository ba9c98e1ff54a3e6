// Package config provides YAML-based game configuration loading and
// difficulty presets for the crossing game.
package config

import "fmt"

// CrossingConfig contains all tuning for the lane-crossing game.
// Pixel values describe the reference canvas; front-ends scale them.
type CrossingConfig struct {
	Canvas  CanvasConfig `yaml:"canvas" toml:"canvas"`
	Grid    GridConfig   `yaml:"grid" toml:"grid"`
	Enemies EnemyConfig  `yaml:"enemies" toml:"enemies"`
	Star    StarConfig   `yaml:"star" toml:"star"`
	Player  PlayerConfig `yaml:"player" toml:"player"`
}

// CanvasConfig describes the drawing surface the simulation runs on.
type CanvasConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// GridConfig defines the lane grid and how cells map to pixels.
type GridConfig struct {
	Columns      int `yaml:"columns" toml:"columns"`
	Rows         int `yaml:"rows" toml:"rows"`
	TileWidth    int `yaml:"tile_width" toml:"tile_width"`
	TileHeight   int `yaml:"tile_height" toml:"tile_height"`
	SpriteOffset int `yaml:"sprite_offset" toml:"sprite_offset"` // vertical offset of sprites inside a tile
}

// RowRange is an inclusive range of grid rows.
type RowRange struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// Contains reports whether row lies in the range.
func (r RowRange) Contains(row int) bool {
	return row >= r.Min && row <= r.Max
}

// String formats the range for error messages.
func (r RowRange) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// EnemyConfig defines the bug traffic.
type EnemyConfig struct {
	Speeds      []float64 `yaml:"speeds" toml:"speeds"`             // one enemy per entry, pixels per second
	SpawnColumn int       `yaml:"spawn_column" toml:"spawn_column"` // column enemies enter from
	SpawnRows   RowRange  `yaml:"spawn_rows" toml:"spawn_rows"`     // rows for the first pass
	TrafficRows RowRange  `yaml:"traffic_rows" toml:"traffic_rows"` // rows after every reversal
}

// StarConfig defines where the collectible may appear.
type StarConfig struct {
	Rows RowRange `yaml:"rows" toml:"rows"`
}

// PlayerConfig defines the player's home position.
type PlayerConfig struct {
	HomeRow int `yaml:"home_row" toml:"home_row"`
}

// Validate checks that the configuration describes a playable board.
func (c CrossingConfig) Validate() error {
	g := c.Grid
	switch {
	case g.Columns < 1 || g.Rows < 1:
		return fmt.Errorf("config: grid must have at least one column and row, got %dx%d", g.Columns, g.Rows)
	case g.TileWidth <= 0 || g.TileHeight <= 0:
		return fmt.Errorf("config: tile size must be positive, got %dx%d", g.TileWidth, g.TileHeight)
	case c.Canvas.Width <= 0:
		return fmt.Errorf("config: canvas width must be positive, got %d", c.Canvas.Width)
	case len(c.Enemies.Speeds) == 0:
		return fmt.Errorf("config: at least one enemy speed is required")
	case c.Player.HomeRow < 1 || c.Player.HomeRow > g.Rows:
		return fmt.Errorf("config: home row %d outside grid rows 1..%d", c.Player.HomeRow, g.Rows)
	}

	for i, s := range c.Enemies.Speeds {
		if s <= 0 {
			return fmt.Errorf("config: enemy %d speed must be positive, got %v", i, s)
		}
	}

	ranges := []struct {
		name string
		r    RowRange
	}{
		{"enemies.spawn_rows", c.Enemies.SpawnRows},
		{"enemies.traffic_rows", c.Enemies.TrafficRows},
		{"star.rows", c.Star.Rows},
	}
	for _, rr := range ranges {
		if rr.r.Min < 1 || rr.r.Max > g.Rows || rr.r.Min > rr.r.Max {
			return fmt.Errorf("config: %s %s outside grid rows 1..%d", rr.name, rr.r, g.Rows)
		}
		if rr.r.Contains(c.Player.HomeRow) {
			return fmt.Errorf("config: %s %s must not include home row %d", rr.name, rr.r, c.Player.HomeRow)
		}
	}

	return nil
}
