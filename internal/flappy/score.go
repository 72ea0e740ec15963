package flappy

// ScoreTracker counts pipe pairs the bird has cleared.
type ScoreTracker struct {
	score    int
	best     int
	last     int
	prevBest int // Best when the round started
}

// Update scores every unpassed pair whose right edge is at or left of birdX
// and marks it passed. It returns the number of pairs scored by this call;
// calling it again on the same frame returns 0.
func (t *ScoreTracker) Update(birdX float64, pipes []PipePair) int {
	scored := 0
	for i := range pipes {
		if pipes[i].Passed {
			continue
		}
		if pipes[i].Right() <= birdX {
			pipes[i].Passed = true
			scored++
		}
	}
	t.score += scored
	if t.score > t.best {
		t.best = t.score
	}
	return scored
}

// Score returns the current round's score.
func (t *ScoreTracker) Score() int { return t.score }

// Best returns the highest score reached this session.
func (t *ScoreTracker) Best() int { return t.best }

// Last returns the score the previous round ended with.
func (t *ScoreTracker) Last() int { return t.last }

// NewBest reports whether this round has beaten an earlier round's best.
// The first scoring round of a session never counts.
func (t *ScoreTracker) NewBest() bool {
	return t.prevBest > 0 && t.score > t.prevBest
}

// Reset ends the round: the score goes to zero and is kept as Last.
// Best survives.
func (t *ScoreTracker) Reset() {
	t.last = t.score
	t.score = 0
	t.prevBest = t.best
}
