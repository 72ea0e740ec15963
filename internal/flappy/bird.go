// Package flappy implements the Flappy Bird simulation: a bird under gravity,
// scrolling pipe pairs and ground, collision checks, scoring and the session
// that ties them together into a frame loop.
//
// Everything here is measured in world pixels and seconds. Nothing in this
// package draws to a real device or plays sound; frontends read a Snapshot
// after every step and react to the events a step returns.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BirdFrames is the number of wing positions the bird cycles through.
const BirdFrames = 3

// Bird is the player entity. X is fixed; Y and Vel change every frame.
// Positive velocity points down.
type Bird struct {
	X, Y  float64 // Top-left corner of the hitbox
	Vel   float64 // Vertical velocity in px/s
	W, H  float64 // Hitbox size
	Frame int     // Wing animation frame, 0..BirdFrames-1

	startY       float64
	gravity      float64
	impulse      float64
	maxFall      float64 // 0 disables the terminal velocity
	flapInterval float64
	flapTimer    float64
}

// NewBird creates a bird at the configured start position.
func NewBird(cfg config.FlappyConfig) *Bird {
	b := &Bird{
		X:            cfg.Bird.X,
		W:            cfg.Bird.Width,
		H:            cfg.Bird.Height,
		startY:       cfg.Bird.StartY,
		gravity:      cfg.Physics.Gravity,
		impulse:      cfg.Physics.JumpImpulse,
		maxFall:      cfg.Physics.MaxFallSpeed,
		flapInterval: cfg.Bird.FlapInterval,
	}
	b.Reset()
	return b
}

// Reset puts the bird back at its start position with zero velocity.
func (b *Bird) Reset() {
	b.Y = b.startY
	b.Vel = 0
	b.Frame = 0
	b.flapTimer = 0
}

// ApplyGravity integrates one step: velocity first, then position.
func (b *Bird) ApplyGravity(dt float64) {
	b.Vel += b.gravity * dt
	if b.maxFall > 0 && b.Vel > b.maxFall {
		b.Vel = b.maxFall
	}
	b.Y += b.Vel * dt
}

// Jump sets the velocity to the jump impulse. It replaces the current
// velocity rather than adding to it, so repeated calls in one frame have
// the effect of a single call.
func (b *Bird) Jump() {
	b.Vel = b.impulse
}

// BoundingBox returns the bird's hitbox.
func (b Bird) BoundingBox() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Animate advances the wing cycle. It has no effect on physics.
func (b *Bird) Animate(dt float64) {
	if b.flapInterval <= 0 {
		return
	}
	b.flapTimer += dt
	for b.flapTimer >= b.flapInterval {
		b.flapTimer -= b.flapInterval
		b.Frame = (b.Frame + 1) % BirdFrames
	}
}
