package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Prints the configuration a game would start with, after the config file
search and the difficulty preset, as YAML. Redirect it to a file to get a
starting point for --config.

Config search order:
  --config <path>  ->  ~/.flappy/config.yaml  ->  ./configs/flappy.yaml  ->  built-in

Examples:
  flappy config
  flappy config --difficulty hard > hard.yaml
  flappy config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger(os.Stderr)
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err == nil {
			err = config.ApplyFlappyPreset(&cfg, preset)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	logger.Debug("config loaded", "source", source)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	if flagDifficulty != "" {
		fmt.Printf("# difficulty: %s\n", flagDifficulty)
	}
	os.Stdout.Write(data)
}
