package crossing

import (
	"errors"

	"github.com/vovakirdan/star-crossing/internal/config"
)

// scriptedRand returns its values in order, wrapping around. Each value is
// reduced modulo n, so a value is the offset from the low end of a range.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		r.calls++
		return 0
	}
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

// fakePersister records every save.
type fakePersister struct {
	stored  int
	saves   []int
	loadErr error
	saveErr error
}

func (p *fakePersister) LoadHighScore() (int, error) {
	if p.loadErr != nil {
		return 0, p.loadErr
	}
	return p.stored, nil
}

func (p *fakePersister) SaveHighScore(score int) error {
	p.saves = append(p.saves, score)
	if p.saveErr != nil {
		return p.saveErr
	}
	p.stored = score
	return nil
}

var errStoreDown = errors.New("store down")

func testGrid() Grid {
	return NewGrid(config.DefaultCrossingConfig())
}

// newTestWorld builds a world from the default config and parks every enemy
// off the canvas on row 2 so scenarios only see the enemies they place.
func newTestWorld(rng Rand, keeper *ScoreKeeper) *World {
	w := NewWorld(config.DefaultCrossingConfig(), rng, keeper)
	for _, e := range w.enemies {
		e.place(w.grid, 0, 2)
		e.Column = 0
	}
	return w
}
