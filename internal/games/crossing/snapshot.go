package crossing

// EnemySnapshot is the observable state of one bug.
type EnemySnapshot struct {
	X       float64
	Column  int
	Row     int
	Speed   float64
	Forward bool
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	PlayerCol int
	PlayerRow int
	StarCol   int
	StarRow   int
	Enemies   []EnemySnapshot
	Paused    bool
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := Snapshot{
		Tick:      w.ticks,
		Score:     w.player.Stars,
		HighScore: w.keeper.HighScore(),
		PlayerCol: w.player.Column,
		PlayerRow: w.player.Row,
		StarCol:   w.star.Column,
		StarRow:   w.star.Row,
		Enemies:   make([]EnemySnapshot, len(w.enemies)),
	}
	for i, e := range w.enemies {
		s.Enemies[i] = EnemySnapshot{
			X:       e.X,
			Column:  e.Column,
			Row:     e.Row,
			Speed:   e.Speed,
			Forward: e.Forward,
		}
	}
	return s
}

// Snapshot returns the game snapshot, including the pause flag.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	s := g.world.Snapshot()
	s.Paused = g.paused
	return s
}
