package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Autopilot is a scripted InputSource that steers the bird toward the next
// gap. It quits after a fixed number of frames.
type Autopilot struct {
	session *Session
	limit   int // 0 means run forever
	frame   int
	// Slack is how far (px) below the target the bird's center may sink
	// before the autopilot flaps.
	Slack float64
}

// NewAutopilot creates an autopilot for s that sends ActionQuit on frame
// limit+1.
func NewAutopilot(s *Session, limit int) *Autopilot {
	return &Autopilot{session: s, limit: limit, Slack: 8}
}

// Poll decides whether to flap this frame.
func (a *Autopilot) Poll() core.InputFrame {
	a.frame++
	if a.limit > 0 && a.frame > a.limit {
		return core.FrameOf(core.ActionQuit)
	}

	cfg := a.session.Config()
	target := cfg.Ground.Y / 2
	if p, ok := a.session.NextPipe(); ok {
		target = p.GapCenter
	}

	bird := a.session.Bird()
	_, cy := bird.BoundingBox().Center()

	// Flap when low and no longer climbing fast. Half the impulse leaves
	// room to climb steadily toward a higher gap.
	if cy > target+a.Slack && bird.Vel > cfg.Physics.JumpImpulse/2 {
		return core.FrameOf(core.ActionJump)
	}
	return core.NewInputFrame()
}

// Frames returns how many times Poll has been called.
func (a *Autopilot) Frames() int {
	return a.frame
}
