package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Check reports whether the bird hits the ground plane or a pipe.
//
// The ground is a closed boundary: a bottom edge exactly on groundY is a
// hit. Pipes use open AABB overlap, so touching an edge is not. Every pair
// whose horizontal span overlaps the bird is tested, not just the first.
func Check(bird core.Rect, pipes []PipePair, groundY float64) bool {
	if bird.Bottom() >= groundY {
		return true
	}
	for _, p := range pipes {
		if !bird.OverlapsX(p.Span()) {
			continue
		}
		if bird.Intersects(p.TopRect()) || bird.Intersects(p.BottomRect()) {
			return true
		}
	}
	return false
}
