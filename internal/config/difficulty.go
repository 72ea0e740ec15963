package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Preset holds the physics a difficulty level overrides.
type Preset struct {
	Name        DifficultyPreset
	Description string
	Gravity     float64
	ScrollSpeed float64
	GapHeight   float64
}

var presets = []Preset{
	{DifficultyEasy, "Perfect for beginners", 800, 120, 190},
	{DifficultyMedium, "A good challenge", 900, 150, 150},
	{DifficultyHard, "For experienced players", 1000, 180, 130},
	{DifficultyExpert, "The ultimate test!", 1100, 210, 110},
}

// Presets returns all difficulty presets from easiest to hardest.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ParsePreset resolves a preset name. Aliases "normal" and "1".."4" are
// accepted so the menu's numeric shortcuts and the CLI flag agree.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "normal", "2":
		return DifficultyMedium, nil
	case "hard", "3":
		return DifficultyHard, nil
	case "expert", "4":
		return DifficultyExpert, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium, hard or expert)", name)
}

// PresetFor returns the preset definition for a name.
func PresetFor(name DifficultyPreset) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
// An empty preset and medium leave the config untouched, so medium plays
// with whatever the config file sets. The medium table entry only
// documents the shipped defaults.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	p, ok := PresetFor(preset)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	if p.Name == DifficultyMedium {
		return nil
	}
	cfg.Physics.Gravity = p.Gravity
	cfg.Physics.ScrollSpeed = p.ScrollSpeed
	cfg.Pipes.GapHeight = p.GapHeight
	return nil
}
