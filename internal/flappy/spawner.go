package flappy

import "math/rand"

// Spawner creates pipe pairs on a fixed time interval and drops the ones
// that have scrolled off the left edge.
type Spawner struct {
	interval float64
	spawnX   float64
	params   PipeParams
	rng      *rand.Rand
	elapsed  float64
}

// NewSpawner creates a spawner. rng is shared with the session and is never
// reseeded.
func NewSpawner(rng *rand.Rand, interval, spawnX float64, params PipeParams) *Spawner {
	return &Spawner{
		interval: interval,
		spawnX:   spawnX,
		params:   params,
		rng:      rng,
	}
}

// Update moves every pair, spawns new ones when the interval has elapsed and
// removes pairs whose right edge is past x=0. The returned slice keeps spawn
// order, which is also left-to-right order.
func (s *Spawner) Update(dt, scrollSpeed float64, pipes []PipePair) []PipePair {
	for i := range pipes {
		pipes[i].Update(dt, scrollSpeed)
	}

	// Subtracting the interval keeps the cadence from drifting with dt.
	s.elapsed += dt
	for s.interval > 0 && s.elapsed >= s.interval {
		s.elapsed -= s.interval
		pipes = append(pipes, NewPipePair(s.rng, s.spawnX, s.params))
	}

	kept := pipes[:0]
	for _, p := range pipes {
		if p.Right() >= 0 {
			kept = append(kept, p)
		}
	}
	return kept
}

// Elapsed returns the time accumulated toward the next spawn.
func (s *Spawner) Elapsed() float64 {
	return s.elapsed
}

// Reset clears the accumulator.
func (s *Spawner) Reset() {
	s.elapsed = 0
}
