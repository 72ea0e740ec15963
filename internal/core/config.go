package core

// RuntimeConfig contains host settings passed to frontends at startup.
// The simulation itself works in world pixels and is independent of the
// screen size; ScreenW/ScreenH only drive how the world is scaled for display.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or window pixels
	ScreenH  int   // Screen height in characters (terminal) or window pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the fixed step length in seconds for this tick rate.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the status summary a session reports after every step.
type GameState struct {
	Score  int  // Score of the round in progress
	Best   int  // Best round score this session (never persisted)
	Round  int  // Rounds started this session, starting at 1
	Paused bool // Whether the simulation is paused
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	State   GameState
	Events  []Event // Events raised during the tick, in order
	Crashed bool    // The tick ended a round and the session was reset
}
