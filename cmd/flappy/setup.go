package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// fileLogger opens --log-file for the terminal frontends, whose stderr is
// the game screen. Without the flag logs are discarded.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// loadConfig loads the game config and applies a difficulty preset.
// An empty difficulty falls back to --difficulty.
func loadConfig(difficulty string, logger *log.Logger) (config.FlappyConfig, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if difficulty == "" {
		difficulty = flagDifficulty
	}
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyFlappyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
		logger.Debug("difficulty applied", "preset", preset)
	}
	return cfg, cfg.Validate()
}

// resolveSeed returns seed, or a time-based seed when it is zero.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// newSession creates a session with its own seeded RNG.
func newSession(cfg config.FlappyConfig, seed int64) (*flappy.Session, error) {
	return flappy.New(cfg, rand.New(rand.NewSource(seed)))
}

// runtimeConfig builds the host settings from the flags and the terminal size.
func runtimeConfig(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = seed
	return rc
}

// birdColor resolves a bird colour name.
func birdColor(name string) (core.Color, error) {
	c, ok := core.BirdColorByName(name)
	if !ok {
		return core.ColorDefault, fmt.Errorf("unknown bird colour %q (want one of %v)", name, core.BirdColorNames())
	}
	return c, nil
}

// openAudio starts the sound player. Failing to open the speaker only
// disables sound.
func openAudio(volume float64, muted bool, logger *log.Logger) *audio.Player {
	player := audio.New(volume, muted, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	return player
}
