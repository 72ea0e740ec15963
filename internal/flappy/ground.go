package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Ground is the scrolling floor. Y is the collision plane; Offset only
// affects how the tiles are drawn.
type Ground struct {
	Y         float64
	TileWidth float64
	Offset    float64 // Always in [0, TileWidth)
}

// NewGround creates a ground plane at y.
func NewGround(y, tileWidth float64) *Ground {
	return &Ground{Y: y, TileWidth: tileWidth}
}

// Update scrolls the tiles.
func (g *Ground) Update(dt, scrollSpeed float64) {
	g.Offset = core.Wrap(g.Offset+scrollSpeed*dt, g.TileWidth)
}

// Reset puts the tiles back at offset zero.
func (g *Ground) Reset() {
	g.Offset = 0
}
