package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	BirdBodyChar   = '●'
	BirdBeakChar   = '▶'
	PipeChar       = '█'
	PipeCapTop     = '▄'
	PipeCapBottom  = '▀'
	GroundTopChar  = '▓'
	GroundAltChar  = '▒'
	GroundFillChar = '░'
)

// wingGlyphs maps a wing frame to the glyph drawn on the bird's tail.
var wingGlyphs = [BirdFrames]rune{'▀', '─', '▄'}

// Renderer draws snapshots into a character screen, scaling world pixels
// to cells. Ground and pipes are drawn first, the bird over them and the
// score last.
type Renderer struct {
	BirdColor core.Color
}

// NewRenderer creates a renderer with the given bird tint.
func NewRenderer(birdColor core.Color) Renderer {
	return Renderer{BirdColor: birdColor}
}

// viewport converts world pixels to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	v := viewport{sx: 1, sy: 1}
	if snap.WorldW > 0 {
		v.sx = float64(dst.Width()) / snap.WorldW
	}
	if snap.WorldH > 0 {
		v.sy = float64(dst.Height()) / snap.WorldH
	}
	return v
}

func (v viewport) col(px float64) int { return int(math.Floor(px * v.sx)) }
func (v viewport) row(py float64) int { return int(math.Floor(py * v.sy)) }

// span returns the half-open cell range covering [a, b) at scale k.
// A non-empty pixel range always covers at least one cell.
func span(a, b, k float64) (int, int) {
	lo := int(math.Floor(a * k))
	hi := int(math.Ceil(b * k))
	if hi <= lo && b > a {
		hi = lo + 1
	}
	return lo, hi
}

// Draw renders snap into dst.
func (r Renderer) Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	v := newViewport(dst, snap)

	groundRow := v.row(snap.GroundY)
	r.drawGround(dst, v, snap, groundRow)
	for _, p := range snap.Pipes {
		r.drawPipe(dst, v, p, groundRow)
	}
	r.drawBird(dst, v, snap.Bird)
	r.drawHUD(dst, snap)
}

func (r Renderer) drawGround(dst *core.Screen, v viewport, snap Snapshot, groundRow int) {
	if groundRow >= dst.Height() {
		return
	}
	dst.FillRect(0, groundRow+1, dst.Width(), dst.Height(), GroundFillChar, core.ColorOrange)

	// Alternate tiles along the top row, shifted by the scroll offset.
	for x := 0; x < dst.Width(); x++ {
		worldX := (float64(x)+0.5)/v.sx + snap.GroundOffset
		ch := GroundTopChar
		if snap.TileWidth > 0 && int(math.Floor(worldX/snap.TileWidth))%2 == 1 {
			ch = GroundAltChar
		}
		dst.SetCell(x, groundRow, ch, core.ColorGreen)
	}
}

func (r Renderer) drawPipe(dst *core.Screen, v viewport, p PipePair, groundRow int) {
	x0, x1 := span(p.X, p.Right(), v.sx)
	if x1 <= 0 || x0 >= dst.Width() {
		return
	}

	topEnd := v.row(p.GapTop())
	dst.FillRect(x0, 0, x1, topEnd, PipeChar, p.Color)
	if topEnd > 0 {
		dst.FillRect(x0, topEnd-1, x1, topEnd, PipeCapTop, p.Color)
	}

	bottomStart := int(math.Ceil(p.GapBottom() * v.sy))
	dst.FillRect(x0, bottomStart, x1, groundRow, PipeChar, p.Color)
	if bottomStart < groundRow {
		dst.FillRect(x0, bottomStart, x1, bottomStart+1, PipeCapBottom, p.Color)
	}
}

func (r Renderer) drawBird(dst *core.Screen, v viewport, b Bird) {
	x0, x1 := span(b.X, b.X+b.W, v.sx)
	y0, y1 := span(b.Y, b.Y+b.H, v.sy)

	dst.FillRect(x0, y0, x1, y1, BirdBodyChar, r.BirdColor)
	dst.SetCell(x1-1, y0, BirdBeakChar, core.ColorOrange)
	if x1-x0 > 1 {
		dst.SetCell(x0, (y0+y1-1)/2, wingGlyphs[b.Frame%BirdFrames], core.ColorBrightWhite)
	}
}

func (r Renderer) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Best %d", snap.Best), core.ColorGray)
	if round := fmt.Sprintf("Round %d", snap.Round); dst.Width() > 20 {
		dst.DrawText(dst.Width()-utf8.RuneCountInString(round)-1, 0, round, core.ColorGray)
	}

	switch {
	case snap.Paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == PhaseGameOver:
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  Best: %d", snap.Last, snap.Best))
	}

	// Score goes last so nothing covers it.
	score, color := fmt.Sprintf(" %d ", snap.Score), core.ColorBrightWhite
	if snap.NewBest {
		score = fmt.Sprintf(" %d NEW BEST ", snap.Score)
		if snap.Flash() {
			color = core.ColorBrightYellow
		}
	}
	dst.DrawTextCentered(1, score, color)
}

// drawMessage draws a two-line box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
