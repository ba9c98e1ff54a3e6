package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// MaxFrameDelta caps the elapsed time handed to a single simulation step.
// A terminal that stalls for seconds would otherwise move enemies across
// the whole board in one frame.
const MaxFrameDelta = 250 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the nominal time between two frames at the configured tick rate.
func (c RuntimeConfig) FrameDelta() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// ClampDelta bounds a measured frame delta to (0, MaxFrameDelta].
// Non-positive deltas (clock skew, first frame) fall back to the nominal frame delta.
func (c RuntimeConfig) ClampDelta(dt time.Duration) time.Duration {
	if dt <= 0 {
		return c.FrameDelta()
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score known to the game, including persisted runs
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// EventKind identifies something that happened during a simulation step.
type EventKind int

const (
	EventStarCollected EventKind = iota + 1
	EventCollision
	EventNewHighScore
	EventEnemyReversed
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventStarCollected:
		return "star_collected"
	case EventCollision:
		return "collision"
	case EventNewHighScore:
		return "new_high_score"
	case EventEnemyReversed:
		return "enemy_reversed"
	default:
		return "unknown"
	}
}

// Event is emitted by a step. Score carries the score relevant to the event:
// the new total for pickups and highs, the score lost for collisions.
type Event struct {
	Kind  EventKind
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step produced an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
