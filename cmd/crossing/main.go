// crossing is a lane-crossing arcade game for the terminal, the desktop and SSH.
//
// Usage:
//
//	crossing play             - Play in the terminal
//	crossing desktop          - Play in a native window
//	crossing serve            - Start SSH server for remote play
//	crossing scores           - Show stored runs and the high score
//	crossing list             - List available games
//	crossing config           - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <dsn>           - SQLite path or postgres:// DSN (default: ~/.crossing/scores.db)
//	--store <kind>       - Score store: db or local (default: db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/star-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Star Crossing - dodge the bugs, grab the stars",
	Long: `Star Crossing is a lane-crossing arcade game. Move across the lanes,
dodge the bugs and collect stars. A bug sends you back home and wipes
your stars; the best run is kept as the high score.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a native window
  serve    - Start SSH server for remote play
  scores   - View stored runs
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  crossing play
  crossing play --difficulty hard
  crossing desktop
  crossing serve --ssh :2222
  crossing scores --recent`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/scores.db", "SQLite path or postgres:// DSN for scores")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "db", "Score store: db or local")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
