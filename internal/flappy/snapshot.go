package flappy

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it has no effect on the session.
type Snapshot struct {
	WorldW, WorldH float64

	Bird  Bird
	Pipes []PipePair

	GroundY      float64
	GroundOffset float64
	TileWidth    float64

	Score int
	Best  int
	Last  int // Score of the previous round
	Round int

	Paused  bool
	Phase   Phase
	Banner  float64 // Seconds left on the crash banner
	NewBest bool    // The round has beaten the previous best
	Clock   float64 // Unpaused seconds since the session started
}

// FlashPeriod is how long the new-best score stays in each flash color.
const FlashPeriod = 0.25

// Flash reports whether a new-best score is in the highlighted half of
// its blink. It only affects drawing.
func (s Snapshot) Flash() bool {
	return s.NewBest && int(s.Clock/FlashPeriod)%2 == 0
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		WorldW:       s.cfg.World.Width,
		WorldH:       s.cfg.World.Height,
		Bird:         *s.bird,
		Pipes:        s.Pipes(),
		GroundY:      s.ground.Y,
		GroundOffset: s.ground.Offset,
		TileWidth:    s.ground.TileWidth,
		Score:        s.score.Score(),
		Best:         s.score.Best(),
		Last:         s.score.Last(),
		Round:        s.round,
		Paused:       s.paused,
		Phase:        s.Phase(),
		Banner:       s.banner,
		NewBest:      s.score.NewBest(),
		Clock:        s.clock,
	}
}
