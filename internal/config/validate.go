package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that the configuration describes a playable world.
// It never clamps: an impossible setting is reported, not repaired.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.World.Width > 0 && c.World.Height > 0, "world dimensions must be positive"},
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward)"},
		{c.Physics.MaxFallSpeed >= 0, "physics.max_fall_speed must not be negative"},
		{c.Physics.ScrollSpeed > 0, "physics.scroll_speed must be positive"},
		{c.Bird.Width > 0 && c.Bird.Height > 0, "bird dimensions must be positive"},
		{c.Bird.FlapInterval >= 0, "bird.flap_interval must not be negative"},
		{c.Ground.Y > 0 && c.Ground.Y <= c.World.Height, "ground.y must lie inside the world"},
		{c.Ground.TileWidth > 0, "ground.tile_width must be positive"},
		{c.Pipes.Width > 0, "pipes.width must be positive"},
		{c.Pipes.GapHeight > 0, "pipes.gap_height must be positive"},
		{c.Pipes.MinMargin >= 0, "pipes.min_margin must not be negative"},
		{c.Pipes.SpawnInterval > 0, "pipes.spawn_interval must be positive"},
		{c.Session.BannerSeconds >= 0, "session.banner_seconds must not be negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}

	if c.Bird.StartY < 0 || c.Bird.StartY+c.Bird.Height >= c.Ground.Y {
		return fmt.Errorf("%w: bird.start_y %.0f puts the bird outside the playfield (ground at %.0f)",
			ErrInvalidConfig, c.Bird.StartY, c.Ground.Y)
	}

	// The gap center is drawn from [margin+gap/2, groundY-margin-gap/2];
	// the range must be non-degenerate.
	if usable := c.Ground.Y - 2*c.Pipes.MinMargin; c.Pipes.GapHeight >= usable {
		return fmt.Errorf("%w: pipes.gap_height %.0f must be smaller than %.0f (ground.y - 2*min_margin)",
			ErrInvalidConfig, c.Pipes.GapHeight, usable)
	}

	// At most one pipe pair may overlap the bird at a time.
	if spacing := c.PipeSpacing(); spacing <= c.Pipes.Width+c.Bird.Width {
		return fmt.Errorf("%w: pipe spacing %.0f (spawn_interval*scroll_speed) must exceed pipe width + bird width (%.0f)",
			ErrInvalidConfig, spacing, c.Pipes.Width+c.Bird.Width)
	}

	return nil
}
