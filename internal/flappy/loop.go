package flappy

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// InputSource yields the actions triggered since the previous poll.
// Each press must appear in exactly one frame.
type InputSource interface {
	Poll() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Poll calls f.
func (f InputFunc) Poll() core.InputFrame { return f() }

// Clock paces the loop. Tick may block to cap the frame rate and returns
// the seconds elapsed since the previous tick.
type Clock interface {
	Tick() float64
}

// ActionHandler is implemented by listeners that also react to host
// actions such as volume changes.
type ActionHandler interface {
	HandleAction(core.Action) bool
}

// hostActions are passed to an ActionHandler instead of the session.
var hostActions = []core.Action{core.ActionVolumeUp, core.ActionVolumeDown, core.ActionMute}

// FixedClock returns the same step every tick without blocking.
type FixedClock struct {
	Step float64
}

// Tick returns c.Step.
func (c FixedClock) Tick() float64 { return c.Step }

// MaxFrameStep caps the dt a TickerClock reports after a stall, so a
// suspended process does not teleport the bird through a pipe.
const MaxFrameStep = 0.1

// TickerClock blocks until the next frame of a fixed rate.
type TickerClock struct {
	ticker *time.Ticker
	last   time.Time
}

// NewTickerClock creates a clock running at fps frames per second.
func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickerClock{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		last:   time.Now(),
	}
}

// Tick waits for the next frame and returns the measured frame time.
func (c *TickerClock) Tick() float64 {
	now := <-c.ticker.C
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return core.ClampF(dt, 0, MaxFrameStep)
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// Summary describes a finished loop.
type Summary struct {
	Frames     int
	Elapsed    float64 // Simulated seconds
	Jumps      int
	Scored     int
	Collisions int
	Rounds     int
	Best       int
}

// Loop runs the session until the input source reports ActionQuit or ctx is
// cancelled. Both are checked once per frame, before the frame starts.
//
// Each frame: tick the clock, poll input, step the session, hand the events
// to the listener, then call draw with a snapshot. listener and draw may be
// nil. A cancelled context is reported as ctx.Err(); a quit action is not an
// error.
func Loop(ctx context.Context, s *Session, src InputSource, clk Clock, listener core.Listener, draw func(Snapshot)) (Summary, error) {
	var sum Summary
	handler, _ := listener.(ActionHandler)

	for {
		if err := ctx.Err(); err != nil {
			return sum.finish(s), err
		}

		dt := clk.Tick()
		in := src.Poll()
		if in.Has(core.ActionQuit) {
			return sum.finish(s), nil
		}
		if handler != nil {
			for _, a := range hostActions {
				if in.Has(a) {
					handler.HandleAction(a)
				}
			}
		}

		res := s.Step(dt, in)
		sum.Frames++
		if !res.State.Paused {
			sum.Elapsed += dt
		}
		for _, e := range res.Events {
			switch e {
			case core.EventJump:
				sum.Jumps++
			case core.EventScore:
				sum.Scored++
			case core.EventCollision:
				sum.Collisions++
			}
		}
		core.Dispatch(listener, res.Events)

		if draw != nil {
			draw(s.Snapshot())
		}
	}
}

func (sum Summary) finish(s *Session) Summary {
	st := s.State()
	sum.Rounds = st.Round
	sum.Best = st.Best
	return sum
}
