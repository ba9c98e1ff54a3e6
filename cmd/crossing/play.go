package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-crossing/internal/core"
	"github.com/vovakirdan/star-crossing/internal/games/crossing"
	"github.com/vovakirdan/star-crossing/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move one cell
  P/Esc             - Pause
  R                 - Restart (the current run is saved)
  Ctrl+S            - Save a screenshot to ~/.crossing/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Bugs run at 75% speed
  normal - Bugs run at the configured speed
  hard   - Bugs run at 140% speed

Examples:
  crossing play
  crossing play --difficulty hard
  crossing play --config ./my-crossing.toml
  crossing play --store local`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, desktopCmd, serveCmd, configCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	}
}

// applyGameFlags hands --config and --difficulty to the game and checks
// that they resolve to a valid configuration.
func applyGameFlags() error {
	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)
	if _, err := crossing.LoadConfig(); err != nil {
		return fmt.Errorf("invalid game configuration: %w", err)
	}
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger("crossing")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := crossing.New()
	game.SetLogger(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "seed", flagSeed, "fps", flagFPS, "store", flagStore)
	if err := tui.Run(game, store, cfg, playerName(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
