package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-crossing/internal/games/crossing"
	"github.com/vovakirdan/star-crossing/internal/platform/tui"
	"github.com/vovakirdan/star-crossing/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresRecent      bool
	flagScoresAll         bool
	flagScoresClear       bool
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show stored runs and the high score",
	Long: `Display the best runs (or the most recent ones) and the high score.

Examples:
  crossing scores
  crossing scores --recent --limit 20
  crossing scores --all
  crossing scores --interactive
  crossing scores --store local
  crossing scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every stored run, best first (database store only)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs and the high score")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer store.Close()

	gameID := crossing.GameID
	title := crossing.New().Title()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	var entries []storage.ScoreEntry
	heading := "Best runs"
	db, isDB := store.(*storage.Store)
	switch {
	case flagScoresAll && isDB:
		heading = "All runs"
		entries, err = db.AllScores(gameID)
	case flagScoresRecent || flagScoresAll:
		heading = "Recent runs"
		entries, err = store.RecentScores(gameID, flagScoresLimit)
	default:
		entries, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossing play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "#", "Stars", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "-", "-----", "------", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-8s  %-12s  %s\n", i+1, tui.FormatScore(e.Score), e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Highscore: %s\n", tui.FormatScore(high))
	}
	if isDB {
		if stats, err := db.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
			fmt.Printf("Runs: %d  Average: %.1f  Last played: %s\n",
				stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
