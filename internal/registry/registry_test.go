package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/star-crossing/internal/core"
	_ "github.com/vovakirdan/star-crossing/internal/games/crossing"
	"github.com/vovakirdan/star-crossing/internal/registry"
)

type stubGame struct{ id string }

func (s stubGame) ID() string { return s.id }

func (s stubGame) Title() string { return "Stub " + s.id }

func (s stubGame) Reset(core.RuntimeConfig) {}

func (s stubGame) Render(*core.Screen) {}

func (s stubGame) State() core.GameState { return core.GameState{} }

func (s stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestCrossingRegistered(t *testing.T) {
	require.True(t, registry.Exists("crossing"))

	g, err := registry.Create("crossing")
	require.NoError(t, err)
	assert.Equal(t, "crossing", g.ID())
	assert.Equal(t, "Star Crossing", g.Title())

	assert.Implements(t, (*registry.InputHandler)(nil), g)
	assert.Implements(t, (*registry.HighScoreAware)(nil), g)
}

func TestCreateUnknown(t *testing.T) {
	_, err := registry.Create("no-such-game")
	assert.Error(t, err)
	assert.False(t, registry.Exists("no-such-game"))
}

func TestRegisterAndList(t *testing.T) {
	registry.Register("zz_stub", func() registry.Game { return stubGame{id: "zz_stub"} })

	games := registry.List()
	require.NotEmpty(t, games)
	assert.Equal(t, "zz_stub", games[len(games)-1].ID)
	assert.Equal(t, "Stub zz_stub", games[len(games)-1].Title)
	for i := 1; i < len(games); i++ {
		assert.Less(t, games[i-1].ID, games[i].ID)
	}

	assert.Panics(t, func() {
		registry.Register("zz_stub", func() registry.Game { return stubGame{id: "zz_stub"} })
	})
}
