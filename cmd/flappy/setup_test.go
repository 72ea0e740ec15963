package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	withFlags(t, "", "")
	logger := log.New(io.Discard)

	tests := []struct {
		difficulty string
		gravity    float64
		gap        float64
	}{
		{"easy", 800, 190},
		{"hard", 1000, 130},
		{"4", 1100, 110},
	}
	for _, tc := range tests {
		t.Run(tc.difficulty, func(t *testing.T) {
			cfg, err := loadConfig(tc.difficulty, logger)
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if cfg.Physics.Gravity != tc.gravity || cfg.Pipes.GapHeight != tc.gap {
				t.Errorf("gravity=%v gap=%v, expected %v and %v",
					cfg.Physics.Gravity, cfg.Pipes.GapHeight, tc.gravity, tc.gap)
			}
		})
	}
}

func TestLoadConfigFallsBackToFlag(t *testing.T) {
	withFlags(t, "", "expert")

	cfg, err := loadConfig("", log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.ScrollSpeed != 210 {
		t.Errorf("scroll speed = %v, expected the expert preset", cfg.Physics.ScrollSpeed)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	logger := log.New(io.Discard)

	withFlags(t, "", "")
	if _, err := loadConfig("nightmare", logger); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}

	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("pipes:\n  gap_height: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withFlags(t, path, "")
	if _, err := loadConfig("", logger); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, expected ErrInvalidConfig", err)
	}
}

func TestBirdColor(t *testing.T) {
	if c, err := birdColor("Purple"); err != nil || c != core.ColorPurple {
		t.Errorf("birdColor(Purple) = %v, %v", c, err)
	}
	if _, err := birdColor("green"); err == nil {
		t.Error("expected an error for green")
	}
}

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(42); got != 42 {
		t.Errorf("resolveSeed(42) = %d", got)
	}
	if got := resolveSeed(0); got == 0 {
		t.Error("resolveSeed(0) should pick a time-based seed")
	}
}

func TestNewSessionIsDeterministic(t *testing.T) {
	a, err := newSession(config.DefaultFlappyConfig(), 7)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := newSession(config.DefaultFlappyConfig(), 7)

	idle := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		a.Step(1.0/60, idle)
		b.Step(1.0/60, idle)
	}
	pa, pb := a.Pipes(), b.Pipes()
	if len(pa) != len(pb) {
		t.Fatalf("pipe counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].GapCenter != pb[i].GapCenter {
			t.Errorf("pipe %d gap %v vs %v", i, pa[i].GapCenter, pb[i].GapCenter)
		}
	}
}

func TestLoadConfigMediumKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withFlags(t, path, "")

	cfg, err := loadConfig(string(config.DifficultyMedium), log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Physics.Gravity != 500 {
		t.Errorf("gravity = %v, expected the file's 500", cfg.Physics.Gravity)
	}
}
