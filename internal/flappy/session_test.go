package flappy

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const frame = 1.0 / 60.0

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.GapHeight = cfg.Ground.Y // no room for a gap center

	_, err := New(cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
	}

	if _, err := New(config.DefaultFlappyConfig(), nil); err == nil {
		t.Error("New() with a nil rng should fail")
	}
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession(t, 1)
	snap := s.Snapshot()

	if snap.Score != 0 || snap.Round != 1 || len(snap.Pipes) != 0 {
		t.Errorf("initial snapshot: score %d, round %d, %d pipes", snap.Score, snap.Round, len(snap.Pipes))
	}
	if snap.Bird.Y != 300 || snap.Bird.Vel != 0 {
		t.Errorf("bird starts at y=%f vel=%f", snap.Bird.Y, snap.Bird.Vel)
	}
	if snap.Phase != PhasePlaying || snap.Paused {
		t.Errorf("initial phase %v, paused %v", snap.Phase, snap.Paused)
	}
}

func TestSessionFirstStep(t *testing.T) {
	s := newTestSession(t, 1)
	s.Step(0.1, core.NewInputFrame())

	b := s.Bird()
	if math.Abs(b.Vel-90) > eps || math.Abs(b.Y-309) > eps {
		t.Errorf("after one 0.1s step: vel=%f y=%f, expected 90 and 309", b.Vel, b.Y)
	}
}

func TestSessionResetRoundTrip(t *testing.T) {
	s := newTestSession(t, 4)
	fresh := newTestSession(t, 4)
	fresh.Step(0, core.NewInputFrame())
	want := fresh.Snapshot()

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if i%12 == 0 {
			in.Set(core.ActionJump)
		}
		s.Step(frame, in)
	}

	s.Reset()
	s.Step(0, core.NewInputFrame())
	got := s.Snapshot()

	if got.Score != 0 || len(got.Pipes) != 0 {
		t.Errorf("after reset: score %d, %d pipes", got.Score, len(got.Pipes))
	}
	if !reflect.DeepEqual(got.Bird, want.Bird) {
		t.Errorf("bird after reset = %+v, expected %+v", got.Bird, want.Bird)
	}
	if got.GroundOffset != want.GroundOffset {
		t.Errorf("ground offset %f, expected %f", got.GroundOffset, want.GroundOffset)
	}
}

func TestSessionJumpEvent(t *testing.T) {
	s := newTestSession(t, 1)

	res := s.Step(frame, core.FrameOf(core.ActionJump))
	if len(res.Events) != 1 || res.Events[0] != core.EventJump {
		t.Fatalf("events = %v, expected [jump]", res.Events)
	}
	if s.Bird().Vel >= 0 {
		t.Errorf("bird should be moving up after a jump, vel=%f", s.Bird().Vel)
	}

	res = s.Step(frame, core.NewInputFrame())
	if len(res.Events) != 0 {
		t.Errorf("held input must not repeat the jump, got %v", res.Events)
	}
}

func TestSessionCrashResets(t *testing.T) {
	s := newTestSession(t, 1)

	var res core.StepResult
	for i := 0; i < 200 && !res.Crashed; i++ {
		res = s.Step(frame, core.NewInputFrame())
	}
	if !res.Crashed {
		t.Fatal("bird never hit the ground")
	}

	if n := len(res.Events); n == 0 || res.Events[n-1] != core.EventCollision {
		t.Errorf("events = %v, expected to end with collision", res.Events)
	}
	if res.State.Round != 2 {
		t.Errorf("round = %d after crash, expected 2", res.State.Round)
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected game over while the banner shows", s.Phase())
	}
	if b := s.Bird(); b.Y != 300 || b.Vel != 0 {
		t.Errorf("bird not reset: y=%f vel=%f", b.Y, b.Vel)
	}

	// The banner is visual only and expires.
	for i := 0; i < 60*2; i++ {
		s.Step(frame, core.FrameOf(core.ActionJump))
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v after banner time, expected playing", s.Phase())
	}
}

func TestSessionScoreEvent(t *testing.T) {
	s := newTestSession(t, 1)
	// A pair whose right edge is just ahead of the bird
	s.pipes = append(s.pipes, PipePair{X: 80 - 52 + 1, Width: 52, GapCenter: 300, GapHeight: 150, Ceiling: -600, Floor: 540})

	res := s.Step(frame, core.NewInputFrame())
	if len(res.Events) != 1 || res.Events[0] != core.EventScore {
		t.Fatalf("events = %v, expected [score]", res.Events)
	}
	if res.State.Score != 1 || res.State.Best != 1 {
		t.Errorf("state = %+v, expected score and best 1", res.State)
	}

	res = s.Step(frame, core.NewInputFrame())
	if len(res.Events) != 0 || res.State.Score != 1 {
		t.Errorf("pair scored twice: %+v", res)
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(t, 1)
	s.Step(frame, core.NewInputFrame())
	before := s.Snapshot()

	res := s.Step(frame, core.FrameOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action should pause")
	}
	res = s.Step(frame, core.FrameOf(core.ActionJump))
	if len(res.Events) != 0 {
		t.Errorf("paused session raised %v", res.Events)
	}
	if s.Bird() != before.Bird {
		t.Error("bird moved while paused")
	}
	if s.Snapshot().Clock != before.Clock {
		t.Error("clock advanced while paused")
	}

	s.Step(frame, core.FrameOf(core.ActionPause))
	if s.Paused() {
		t.Fatal("second pause action should resume")
	}
	if s.Bird().Y == before.Bird.Y {
		t.Error("resuming should advance the bird in the same step")
	}

	s.SetPaused(true)
	if !s.State().Paused {
		t.Error("SetPaused(true) not reflected in State")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, 12345)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%17 == 0 {
				in.Set(core.ActionJump)
			}
			s.Step(frame, in)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input produced different states:\n%+v\n%+v", a, b)
	}
}

func TestSessionResetDoesNotReseed(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	s, err := New(cfg, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}

	first := s.spawner.Update(cfg.Pipes.SpawnInterval, 0, nil)
	s.Reset()
	second := s.spawner.Update(cfg.Pipes.SpawnInterval, 0, nil)

	ref := rand.New(rand.NewSource(5))
	params := s.spawner.params
	want1 := NewPipePair(ref, cfg.SpawnPosition(), params)
	want2 := NewPipePair(ref, cfg.SpawnPosition(), params)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one pipe per interval, got %d and %d", len(first), len(second))
	}
	if first[0] != want1 || second[0] != want2 {
		t.Error("pipes after reset should continue the random sequence")
	}
}

func TestSessionSingleOverlappingPipe(t *testing.T) {
	s := newTestSession(t, 99)
	pilot := NewAutopilot(s, 0)

	for i := 0; i < 60*60; i++ {
		s.Step(frame, pilot.Poll())
		box := s.Bird().BoundingBox()
		overlapping := 0
		for _, p := range s.Pipes() {
			if box.OverlapsX(p.Span()) {
				overlapping++
			}
		}
		if overlapping > 1 {
			t.Fatalf("frame %d: %d pipe pairs overlap the bird", i, overlapping)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(t, 1)
	s.pipes = s.spawner.Update(1.5, 150, s.pipes)

	snap := s.Snapshot()
	if len(snap.Pipes) != 1 {
		t.Fatalf("expected one pipe, got %d", len(snap.Pipes))
	}
	snap.Pipes[0].X = -1000
	snap.Bird.Y = -1000

	if s.Pipes()[0].X == -1000 || s.Bird().Y == -1000 {
		t.Error("mutating a snapshot changed the session")
	}
}
