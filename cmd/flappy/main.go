// flappy is a Flappy Bird clone that runs in the terminal or in a window.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy menu              - Start menu with settings and round results
//	flappy window            - Play in a desktop window
//	flappy sim               - Run a headless autopilot game and print a summary
//	flappy presets           - List difficulty presets
//	flappy config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game config from a YAML file
//	--difficulty <name>   - Difficulty preset: easy, medium, hard, expert
//	--bird-color <name>   - Bird colour: yellow, blue, red, purple, pink
//	--volume <0..1>       - Sound volume
//	--mute                - Start muted
//	--log-file <path>     - Write logs to a file (terminal frontends)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagBirdColor  string
	flagVolume     float64
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal or a window",
	Long: `Flappy Bird: flap through the gaps between the pipes and don't touch
the ground. A crash starts the next round right away.

Available commands:
  play     - Play in the terminal
  menu     - Settings menu with this session's round results
  window   - Play in a desktop window
  sim      - Let the autopilot play headless and print a summary
  presets  - Show the difficulty presets
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --difficulty hard --bird-color red
  flappy window --mute
  flappy sim --frames 3600 --seed 42
  flappy config --difficulty easy > my-flappy.yaml`,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, expert")
	pf.StringVar(&flagBirdColor, "bird-color", "yellow", "Bird colour: yellow, blue, red, purple, pink")
	pf.Float64Var(&flagVolume, "volume", audio.DefaultVolume, "Sound volume from 0 to 1")
	pf.BoolVar(&flagMute, "mute", false, "Start with sound muted")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal frontends log nowhere by default)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}
