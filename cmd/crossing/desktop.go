package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-crossing/internal/core"
	"github.com/vovakirdan/star-crossing/internal/games/crossing"
	"github.com/vovakirdan/star-crossing/internal/platform/desktop"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a native window",
	Long: `Open the game in a desktop window at the reference 505x606 canvas.
Moves apply when a key is released, so holding a key moves one cell.

Controls:
  Arrows/WASD  - Move one cell
  P/Esc        - Pause
  R            - Restart (the current run is saved)
  Q            - Quit

Examples:
  crossing desktop
  crossing desktop --difficulty easy --fps 120`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

func runDesktop(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "crossing")
	if err != nil {
		return err
	}

	game := crossing.New()
	game.SetLogger(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	app := desktop.NewApp(game, store, cfg, playerName(), logger)
	if err := desktop.Run(app, flagFPS); err != nil {
		return fmt.Errorf("running desktop game: %w", err)
	}
	return nil
}
