package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// SpeedMultiplier returns the factor applied to every base enemy speed.
func SpeedMultiplier(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.4
	default:
		return 1.0
	}
}

// ApplyCrossingPreset scales the enemy speeds once, before a game starts.
// Speeds stay fixed for the lifetime of each enemy.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	m := SpeedMultiplier(preset)
	if m == 1.0 {
		return
	}
	scaled := make([]float64, len(cfg.Enemies.Speeds))
	for i, s := range cfg.Enemies.Speeds {
		scaled[i] = s * m
	}
	cfg.Enemies.Speeds = scaled
}
