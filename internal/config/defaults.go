package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in tuning, used when the embedded YAML cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Canvas: CanvasConfig{
			Width:  505,
			Height: 606,
		},
		Grid: GridConfig{
			Columns:      5,
			Rows:         6,
			TileWidth:    101,
			TileHeight:   83,
			SpriteOffset: 102,
		},
		Enemies: EnemyConfig{
			Speeds:      []float64{120, 200, 220, 60, 170},
			SpawnColumn: 0,
			SpawnRows:   RowRange{Min: 2, Max: 4},
			TrafficRows: RowRange{Min: 2, Max: 5},
		},
		Star: StarConfig{
			Rows: RowRange{Min: 2, Max: 5},
		},
		Player: PlayerConfig{
			HomeRow: 6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
