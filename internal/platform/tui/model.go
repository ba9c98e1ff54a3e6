package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-crossing/internal/core"
	"github.com/vovakirdan/star-crossing/internal/registry"
	"github.com/vovakirdan/star-crossing/internal/storage"
)

// GameModel is the Bubble Tea model for one player's game, used both for
// local play and for every SSH session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      storage.Backend
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewGameModel creates a model for game. store may be nil, in which case
// runs and high scores only last for the session.
func NewGameModel(game registry.Game, store storage.Backend, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	if aware, ok := game.(registry.HighScoreAware); ok && store != nil {
		aware.UseHighScores(storage.HighScoresFor(store, game.ID()))
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board scales to the window, so the run continues.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Moves go straight to the game when it
// accepts them; everything else waits for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.endRun(m.game.State().Score)
		m.quitting = true
		return m, tea.Quit
	}

	if handler, ok := m.game.(registry.InputHandler); ok && action.IsDirectional() {
		handler.HandleAction(action)
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation by the measured frame time.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.config, m.lastTick, now)
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) {
		m.endRun(m.game.State().Score)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.recordEvents(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordEvents stores a run whenever a collision ends one.
func (m GameModel) recordEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventCollision:
			m.endRun(e.Score)
		case core.EventNewHighScore:
			m.logger.Debug("new high score", "player", m.player, "score", e.Score)
		}
	}
}

// endRun saves a finished run. Empty runs are not recorded.
func (m GameModel) endRun(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	rec := storage.NewRunRecord(m.game.ID(), m.player, score)
	if _, err := m.store.SaveScore(rec); err != nil {
		m.logger.Warn("could not save run", "run", rec.RunID, "score", score, "err", err)
		return
	}
	m.logger.Debug("run saved", "run", rec.RunID, "player", m.player, "score", score)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".crossing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// State returns the game state after the latest tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a local Bubble Tea program for game.
func Run(game registry.Game, store storage.Backend, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
