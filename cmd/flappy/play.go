package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W  - Flap
  P           - Pause
  +/-         - Volume up/down
  M           - Mute
  Q/Esc/Ctrl+C - Quit

Difficulty options:
  easy    - Weak gravity, slow pipes, wide gaps
  medium  - The config file's own values
  hard    - Stronger gravity, faster pipes
  expert  - The ultimate test

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --bird-color pink --volume 0.3
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

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

	rounds, runErr := tui.Run(session, tui.Options{
		Runtime:   runtimeConfig(seed),
		BirdColor: color,
		Listener:  player,
		Logger:    logger,
	})

	// Close the speaker before a potential exit
	player.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if len(rounds) > 0 {
		fmt.Printf("Finished rounds: %d  Best: %d\n", len(rounds), session.State().Best)
	}
}
