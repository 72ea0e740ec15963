package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot
// be decoded.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      900,
			JumpImpulse:  -300,
			MaxFallSpeed: 0,
			ScrollSpeed:  150,
		},
		Bird: BirdConfig{
			X:            80,
			StartY:       300,
			Width:        34,
			Height:       24,
			FlapInterval: 0.15,
		},
		Pipes: PipesConfig{
			Width:         52,
			GapHeight:     150,
			MinMargin:     40,
			SpawnInterval: 1.5,
			SpawnX:        400,
		},
		Ground: GroundConfig{
			Y:         540,
			TileWidth: 24,
		},
		Session: SessionConfig{
			BannerSeconds: 1.2,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
