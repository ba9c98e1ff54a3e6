package crossing

import (
	"sync"

	"github.com/vovakirdan/star-crossing/internal/config"
	"github.com/vovakirdan/star-crossing/internal/core"
)

// World owns every entity of one session and advances them together.
// HandleInput may be called from a different goroutine than Step; a mutex
// makes each move an atomic update with last-key-wins semantics.
type World struct {
	mu sync.Mutex

	cfg     config.CrossingConfig
	grid    Grid
	rng     Rand
	keeper  *ScoreKeeper
	player  *Player
	star    *Star
	enemies []*Enemy
	ticks   uint64
}

// NewWorld spawns one enemy per configured speed, the star and the player.
// A nil keeper gets an in-memory one.
func NewWorld(cfg config.CrossingConfig, rng Rand, keeper *ScoreKeeper) *World {
	if keeper == nil {
		keeper = NewScoreKeeper(nil, nil)
	}
	grid := NewGrid(cfg)

	w := &World{
		cfg:    cfg,
		grid:   grid,
		rng:    rng,
		keeper: keeper,
	}
	w.enemies = make([]*Enemy, 0, len(cfg.Enemies.Speeds))
	for _, speed := range cfg.Enemies.Speeds {
		w.enemies = append(w.enemies, NewEnemy(grid, speed, cfg.Enemies.SpawnColumn, cfg.Enemies.SpawnRows, rng))
	}
	w.star = NewStar(grid, cfg.Star.Rows, rng)
	w.player = NewPlayer(grid, cfg.Player.HomeRow, rng)
	return w
}

// HandleInput moves the player one cell right away. It does not wait for
// the next Step.
func (w *World) HandleInput(dir Direction) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.player.Move(dir, w.grid)
}

// Step advances the simulation by dt seconds: enemies move, then collisions
// and the pickup are resolved against the player's current cell.
func (w *World) Step(dt float64) []core.Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ticks++
	var events []core.Event

	for _, e := range w.enemies {
		if e.Update(dt, w.grid, w.cfg.Enemies.TrafficRows, w.rng) {
			events = append(events, core.Event{Kind: core.EventEnemyReversed})
		}
	}

	// Several bugs can share the player's cell; that is still one reset.
	hit := false
	for _, e := range w.enemies {
		if e.SameCell(w.player.Entity) {
			hit = true
		}
	}
	if hit {
		lost := w.player.Stars
		w.player.ResetOnCollision(w.grid, w.rng)
		events = append(events, core.Event{Kind: core.EventCollision, Score: lost})
	}

	if w.player.SameCell(w.star.Entity) {
		w.player.CollectStar()
		w.star.Relocate(w.grid, w.cfg.Star.Rows, w.rng)
		events = append(events, core.Event{Kind: core.EventStarCollected, Score: w.player.Stars})
		if w.keeper.Record(w.player.Stars) {
			events = append(events, core.Event{Kind: core.EventNewHighScore, Score: w.player.Stars})
		}
	}

	return events
}

// Sprites returns the render triples in draw order: star, enemies, player.
func (w *World) Sprites() []Sprite {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Sprite, 0, len(w.enemies)+2)
	out = append(out, w.star.Drawable())
	for _, e := range w.enemies {
		out = append(out, e.Drawable())
	}
	out = append(out, w.player.Drawable())
	return out
}

// Score is the number of stars collected since the last collision.
func (w *World) Score() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.player.Stars
}

// HighScore is the session's best score, including the persisted one.
func (w *World) HighScore() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keeper.HighScore()
}

// Grid returns the coordinate mapping used by this world.
func (w *World) Grid() Grid {
	return w.grid
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.CrossingConfig {
	return w.cfg
}

// Keeper returns the score keeper so a restart can carry the high score over.
func (w *World) Keeper() *ScoreKeeper {
	return w.keeper
}
