package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipePair is a top and a bottom obstacle separated by a vertical gap.
// The gap is drawn once at creation and never changes.
type PipePair struct {
	X         float64    // Left edge, decreasing as the world scrolls
	Width     float64    // Horizontal size of both pipes
	GapCenter float64    // Vertical center of the opening
	GapHeight float64    // Vertical size of the opening
	Ceiling   float64    // Top of the upper pipe, above the visible world
	Floor     float64    // Bottom of the lower pipe (the ground plane)
	Passed    bool       // Already counted by the score tracker
	Color     core.Color // Tint drawn from the pipe palette
}

// PipeParams holds the fixed inputs for generating pipe pairs.
type PipeParams struct {
	Width     float64
	Playfield float64 // Height of the flyable area (ground plane y)
	GapHeight float64
	MinMargin float64
	Ceiling   float64
	Palette   []core.Color
}

// NewPipePair creates a pair at x with a random gap center.
//
// The center is a whole pixel drawn uniformly from
// [minMargin + gap/2, playfield - minMargin - gap/2], so the opening keeps
// at least minMargin pixels from both the top of the screen and the ground.
func NewPipePair(rng *rand.Rand, x float64, p PipeParams) PipePair {
	half := p.GapHeight / 2
	lo := p.MinMargin + half
	hi := p.Playfield - p.MinMargin - half

	center := lo
	if ilo, ihi := math.Ceil(lo), math.Floor(hi); ihi > ilo {
		center = ilo + float64(rng.Intn(int(ihi-ilo)+1))
	} else if ihi == ilo {
		center = ilo
	}

	color := core.ColorGreen
	if len(p.Palette) > 0 {
		color = p.Palette[rng.Intn(len(p.Palette))]
	}

	return PipePair{
		X:         x,
		Width:     p.Width,
		GapCenter: center,
		GapHeight: p.GapHeight,
		Ceiling:   p.Ceiling,
		Floor:     p.Playfield,
		Color:     color,
	}
}

// Update scrolls the pair left.
func (p *PipePair) Update(dt, scrollSpeed float64) {
	p.X -= scrollSpeed * dt
}

// Right returns the x of the right edge.
func (p PipePair) Right() float64 {
	return p.X + p.Width
}

// GapTop returns the y of the top of the opening.
func (p PipePair) GapTop() float64 {
	return p.GapCenter - p.GapHeight/2
}

// GapBottom returns the y of the bottom of the opening.
func (p PipePair) GapBottom() float64 {
	return p.GapCenter + p.GapHeight/2
}

// TopRect returns the upper pipe's hitbox. It extends above the visible
// world so the bird cannot fly over it.
func (p PipePair) TopRect() core.Rect {
	return core.NewRect(p.X, p.Ceiling, p.Width, p.GapTop()-p.Ceiling)
}

// BottomRect returns the lower pipe's hitbox, down to the ground plane.
func (p PipePair) BottomRect() core.Rect {
	return core.NewRect(p.X, p.GapBottom(), p.Width, p.Floor-p.GapBottom())
}

// Span returns a rectangle covering the pair's full horizontal extent.
func (p PipePair) Span() core.Rect {
	return core.NewRect(p.X, p.Ceiling, p.Width, p.Floor-p.Ceiling)
}
