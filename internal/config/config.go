// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Bird    BirdConfig    `yaml:"bird"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Ground  GroundConfig  `yaml:"ground"`
	Session SessionConfig `yaml:"session"`
}

// WorldConfig defines the simulated area in pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines motion parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
}

// BirdConfig defines the player sprite and start position.
type BirdConfig struct {
	X            float64 `yaml:"x"`
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FlapInterval float64 `yaml:"flap_interval"`
}

// PipesConfig defines obstacle generation.
type PipesConfig struct {
	Width         float64 `yaml:"width"`
	GapHeight     float64 `yaml:"gap_height"`
	MinMargin     float64 `yaml:"min_margin"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	SpawnX        float64 `yaml:"spawn_x"`
}

// GroundConfig defines the scrolling floor.
type GroundConfig struct {
	Y         float64 `yaml:"y"`
	TileWidth float64 `yaml:"tile_width"`
}

// SessionConfig defines round handling.
type SessionConfig struct {
	BannerSeconds float64 `yaml:"banner_seconds"`
}

// SpawnPosition returns the x where new pipe pairs appear.
// A zero spawn_x means the right edge of the world.
func (c FlappyConfig) SpawnPosition() float64 {
	if c.Pipes.SpawnX == 0 {
		return c.World.Width
	}
	return c.Pipes.SpawnX
}

// PipeSpacing returns the horizontal distance between consecutive pipe pairs.
func (c FlappyConfig) PipeSpacing() float64 {
	return c.Pipes.SpawnInterval * c.Physics.ScrollSpeed
}
