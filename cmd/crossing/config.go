package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/star-crossing/internal/config"
	"github.com/vovakirdan/star-crossing/internal/games/crossing"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would run with, as YAML.
Use --defaults to print the built-in file, a good starting point for
~/.crossing/configs/crossing.yaml.

Examples:
  crossing config
  crossing config --difficulty hard
  crossing config --defaults > ~/.crossing/configs/crossing.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(crossing.GameID))
		return err
	}

	if err := applyGameFlags(); err != nil {
		return err
	}
	cfg, err := crossing.LoadConfig()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
