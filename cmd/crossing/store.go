package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-crossing/internal/storage"
)

// openStore opens the store chosen by --store and --db. Games still run
// without one, so a failure is logged and nil is returned.
func openStore(logger *log.Logger) storage.Backend {
	store, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		logger.Warn("could not open score store, scores will not be saved", "store", flagStore, "err", err)
		return nil
	}
	return store
}

// playerName is the name stored with local runs.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
