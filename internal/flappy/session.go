package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the session's round state.
type Phase int

const (
	// PhasePlaying is the normal state.
	PhasePlaying Phase = iota
	// PhaseGameOver lasts while the crash banner is shown. The simulation
	// has already been reset and keeps running underneath.
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game over"
	}
	return "playing"
}

// Session owns every piece of mutable game state and advances it one frame
// at a time. It is not safe for concurrent use.
type Session struct {
	cfg     config.FlappyConfig
	rng     *rand.Rand
	bird    *Bird
	pipes   []PipePair
	spawner *Spawner
	ground  *Ground
	score   ScoreTracker

	paused bool
	round  int
	banner float64 // Seconds left on the crash banner
	clock  float64 // Unpaused seconds since New
}

// New creates a session. The configuration is validated first; an
// impossible configuration fails here instead of misbehaving later.
// rng drives pipe placement and is never reseeded, including on reset.
func New(cfg config.FlappyConfig, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("flappy: nil random source")
	}

	params := PipeParams{
		Width:     cfg.Pipes.Width,
		Playfield: cfg.Ground.Y,
		GapHeight: cfg.Pipes.GapHeight,
		MinMargin: cfg.Pipes.MinMargin,
		Ceiling:   -cfg.World.Height,
		Palette:   core.PipeColors,
	}

	s := &Session{
		cfg:     cfg,
		rng:     rng,
		bird:    NewBird(cfg),
		pipes:   make([]PipePair, 0, 8),
		spawner: NewSpawner(rng, cfg.Pipes.SpawnInterval, cfg.SpawnPosition(), params),
		ground:  NewGround(cfg.Ground.Y, cfg.Ground.TileWidth),
		round:   1,
	}
	return s, nil
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// Reset restores the initial round state: bird at the start, no pipes,
// zero score. The session best and the RNG sequence carry on.
func (s *Session) Reset() {
	s.bird.Reset()
	s.pipes = s.pipes[:0]
	s.spawner.Reset()
	s.ground.Reset()
	s.score.Reset()
}

// Step advances the simulation by dt seconds.
//
// Order within a frame: pause toggle, jump, gravity, pipes, ground,
// collision, then scoring when nothing was hit. A collision resets the round
// before Step returns.
func (s *Session) Step(dt float64, in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	var events []core.Event

	s.clock += dt
	if s.banner > 0 {
		s.banner = max(s.banner-dt, 0)
	}

	if in.Has(core.ActionJump) {
		s.bird.Jump()
		events = append(events, core.EventJump)
	}
	s.bird.ApplyGravity(dt)
	s.bird.Animate(dt)

	speed := s.cfg.Physics.ScrollSpeed
	s.pipes = s.spawner.Update(dt, speed, s.pipes)
	s.ground.Update(dt, speed)

	if Check(s.bird.BoundingBox(), s.pipes, s.ground.Y) {
		events = append(events, core.EventCollision)
		s.crash()
		return core.StepResult{State: s.State(), Events: events, Crashed: true}
	}

	for n := s.score.Update(s.bird.X, s.pipes); n > 0; n-- {
		events = append(events, core.EventScore)
	}

	return core.StepResult{State: s.State(), Events: events}
}

// crash ends the round and starts the next one.
func (s *Session) crash() {
	s.Reset()
	s.round++
	s.banner = s.cfg.Session.BannerSeconds
}

// State returns the status summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:  s.score.Score(),
		Best:   s.score.Best(),
		Round:  s.round,
		Paused: s.paused,
	}
}

// Phase reports whether the crash banner is showing.
func (s *Session) Phase() Phase {
	if s.banner > 0 {
		return PhaseGameOver
	}
	return PhasePlaying
}

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// SetPaused pauses or resumes the simulation.
func (s *Session) SetPaused(p bool) {
	s.paused = p
}

// Bird returns a copy of the bird.
func (s *Session) Bird() Bird {
	return *s.bird
}

// Pipes returns a copy of the active pipe set in left-to-right order.
func (s *Session) Pipes() []PipePair {
	out := make([]PipePair, len(s.pipes))
	copy(out, s.pipes)
	return out
}

// NextPipe returns the first pair the bird has not yet cleared.
func (s *Session) NextPipe() (PipePair, bool) {
	for _, p := range s.pipes {
		if p.Right() > s.bird.X {
			return p, true
		}
	}
	return PipePair{}, false
}
