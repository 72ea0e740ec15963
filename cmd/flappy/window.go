package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagZoom float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window with pixel sprites, a cycling sky and
a bird that tilts with its speed.

Controls:
  Space/Up/W/Click  - Flap
  P                 - Pause
  +/-               - Volume up/down
  M                 - Mute
  Q/Esc             - Quit

Examples:
  flappy window
  flappy window --zoom 1.5 --bird-color purple`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagZoom, "zoom", 1, "Window size relative to the game world")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig("", logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	color, err := birdColor(flagBirdColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed(flagSeed)
	session, err := newSession(cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	player := openAudio(flagVolume, flagMute, logger)
	logger.Info("game started", "seed", seed, "fps", flagFPS)

	runErr := window.Run(session, window.Options{
		Runtime:   runtimeConfig(seed),
		BirdColor: color,
		Listener:  player,
		Logger:    logger,
		Zoom:      flagZoom,
	})
	player.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	state := session.State()
	logger.Info("game over", "rounds", state.Round, "best", state.Best)
}
