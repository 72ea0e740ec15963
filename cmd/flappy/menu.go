package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a settings menu",
	Long: `Start in interactive menu mode.

Pick the difficulty, bird colour and volume, then play. When you quit a
game you return to the menu, where the results of every round played in
this session can be viewed. Nothing is saved to disk.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change a setting
  Enter/Space   - Select
  Q             - Quit

Examples:
  flappy menu
  flappy menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	settings := tui.Settings{
		Difficulty: config.DifficultyMedium,
		BirdColor:  flagBirdColor,
		Volume:     flagVolume,
		Muted:      flagMute,
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings.Difficulty = preset
	}

	rc := runtimeConfig(flagSeed)
	var rounds []tui.RoundRecord

	// Menu loop
	for {
		result, err := tui.RunMenu(settings, len(rounds) > 0, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		settings = result.Settings
		rc = result.Config

		switch result.Choice {
		case tui.ChoiceResults:
			goBack, sbErr := tui.RunScoreboard(rounds, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return

		case tui.ChoicePlay:
			played, playErr := playFromMenu(&settings, rc, logger)
			if playErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", playErr)
				logger.Error("game failed", "err", playErr)
				continue
			}
			// Number rounds across every game of this menu session
			for i := range played {
				played[i].Round = len(rounds) + i + 1
			}
			rounds = append(rounds, played...)

		default:
			return
		}
	}
}

// playFromMenu runs one game with the menu settings. Volume changes made
// in game are carried back into settings.
func playFromMenu(settings *tui.Settings, rc core.RuntimeConfig, logger *log.Logger) ([]tui.RoundRecord, error) {
	cfg, err := loadConfig(string(settings.Difficulty), logger)
	if err != nil {
		return nil, err
	}
	color, err := birdColor(settings.BirdColor)
	if err != nil {
		return nil, err
	}

	// Fresh seed per game unless --seed pins it
	rc.Seed = resolveSeed(flagSeed)
	session, err := newSession(cfg, rc.Seed)
	if err != nil {
		return nil, err
	}

	player := openAudio(settings.Volume, settings.Muted, logger)
	defer player.Close()
	logger.Info("game started", "seed", rc.Seed, "difficulty", settings.Difficulty)

	rounds, err := tui.Run(session, tui.Options{
		Runtime:   rc,
		BirdColor: color,
		Listener:  player,
		Logger:    logger,
	})
	settings.Volume = player.Volume()
	settings.Muted = player.Muted()
	return rounds, err
}
