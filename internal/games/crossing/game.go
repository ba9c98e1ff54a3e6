package crossing

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-crossing/internal/config"
	"github.com/vovakirdan/star-crossing/internal/core"
	"github.com/vovakirdan/star-crossing/internal/registry"
)

// GameID is the identifier used for the registry and score storage.
const GameID = "crossing"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are
// rejected by LoadConfig.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// LoadConfig resolves the configuration selected on the command line.
func LoadConfig() (config.CrossingConfig, error) {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		return config.CrossingConfig{}, err
	}
	preset, err := config.ParseDifficulty(string(difficultyPreset))
	if err != nil {
		return config.CrossingConfig{}, err
	}
	config.ApplyCrossingPreset(&cfg, preset)
	return cfg, nil
}

// Game adapts a World to the platform's fixed-tick game loop.
type Game struct {
	cfg       config.CrossingConfig
	fixedCfg  bool
	runtime   core.RuntimeConfig
	rng       *rand.Rand
	world     *World
	keeper    *ScoreKeeper
	persister core.HighScorePersister
	logger    *log.Logger
	paused    bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{logger: log.Default()}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.CrossingConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true, logger: log.Default()}
}

// SetLogger replaces the logger used for persistence warnings.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// UseHighScores connects the game to a high score store. The persisted
// value is loaded immediately.
func (g *Game) UseHighScores(p core.HighScorePersister) {
	g.persister = p
	g.keeper = NewScoreKeeper(p, g.logger)
	if g.world != nil {
		g.world.keeper = g.keeper
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Star Crossing"
}

// Reset starts a fresh run. The high score carries over between resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := LoadConfig()
		if err != nil {
			g.logger.Warn("using default config", "err", err)
			cfg = config.DefaultCrossingConfig()
		}
		g.cfg = cfg
	}

	if g.keeper == nil {
		g.keeper = NewScoreKeeper(g.persister, g.logger)
	} else {
		g.keeper.Refresh()
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(g.cfg, g.rng, g.keeper)
	g.paused = false
}

// HandleAction applies a directional action as soon as it arrives.
func (g *Game) HandleAction(a core.Action) {
	if g.world == nil || g.paused {
		return
	}
	if dir, ok := DirectionFromAction(a); ok {
		g.world.HandleInput(dir)
	}
}

// Step advances the simulation by dt. Directional actions in the frame are
// applied before the world moves.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.HandleAction(a)
		}
	}

	events := g.world.Step(dt.Seconds())
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state. A run never ends; only a
// collision resets it.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		Paused:    g.paused,
	}
}

// World exposes the simulation for front-ends that draw sprites directly.
func (g *Game) World() *World {
	return g.world
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
