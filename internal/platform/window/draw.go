package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window/art"
)

const (
	pipeCapHeight = 24
	pipeCapLip    = 3
	glyphWidth    = 7 // basicfont.Face7x13 advance
)

var (
	dirt      = color.RGBA{222, 216, 149, 255}
	hudColor  = color.RGBA{255, 255, 255, 255}
	hudShadow = color.RGBA{0, 0, 0, 255}
	hudFlash  = color.RGBA{255, 215, 0, 255}
	dim       = color.RGBA{0, 0, 0, 140}
)

// Draw renders pipes and ground, then the bird, then the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	screen.Fill(art.Sky(g.skyTime))

	for _, p := range snap.Pipes {
		drawPipe(screen, p)
	}
	g.drawGround(screen, snap)
	g.drawBird(screen, snap.Bird)
	g.drawHUD(screen, snap)
}

func drawPipe(screen *ebiten.Image, p flappy.PipePair) {
	body := art.RGBA(p.Color)
	rim := art.Shade(body, 0.7)
	x, w := float32(p.X), float32(p.Width)

	top := float32(p.GapTop())
	vector.DrawFilledRect(screen, x, 0, w, top, body, false)
	vector.DrawFilledRect(screen, x-pipeCapLip, top-pipeCapHeight, w+2*pipeCapLip, pipeCapHeight, rim, false)

	bottom := float32(p.GapBottom())
	vector.DrawFilledRect(screen, x, bottom, w, float32(p.Floor)-bottom, body, false)
	vector.DrawFilledRect(screen, x-pipeCapLip, bottom, w+2*pipeCapLip, pipeCapHeight, rim, false)
}

func (g *Game) drawGround(screen *ebiten.Image, snap flappy.Snapshot) {
	vector.DrawFilledRect(screen, 0, float32(snap.GroundY), float32(snap.WorldW), float32(snap.WorldH-snap.GroundY), dirt, false)

	tile := float64(g.groundTile.Bounds().Dx())
	if snap.TileWidth > 0 {
		tile = snap.TileWidth
	}
	for x := -snap.GroundOffset; x < snap.WorldW; x += tile {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, snap.GroundY)
		screen.DrawImage(g.groundTile, op)
	}
}

func (g *Game) drawBird(screen *ebiten.Image, b flappy.Bird) {
	img := g.birdFrames[b.Frame%len(g.birdFrames)]
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(b.W/w, b.H/h)
	op.GeoM.Rotate(art.Tilt(b.Vel))
	op.GeoM.Translate(b.X+b.W/2, b.Y+b.H/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap flappy.Snapshot) {
	width := int(snap.WorldW)

	drawText(screen, fmt.Sprintf("Best %d", snap.Best), 8, 18)
	round := fmt.Sprintf("Round %d", snap.Round)
	drawText(screen, round, width-8-textWidth(round), 18)
	if vol, ok := g.listener.(interface {
		Volume() float64
		Muted() bool
	}); ok {
		label := fmt.Sprintf("Vol %d%%", int(vol.Volume()*100+0.5))
		if vol.Muted() {
			label = "Muted"
		}
		drawText(screen, label, width-8-textWidth(label), 36)
	}

	switch {
	case snap.Paused:
		drawBanner(screen, snap, "PAUSED", "press P to resume")
	case snap.Phase == flappy.PhaseGameOver:
		drawBanner(screen, snap, "GAME OVER", fmt.Sprintf("score %d", snap.Last))
	}

	score := fmt.Sprintf("%d", snap.Score)
	clr := hudColor
	if snap.NewBest {
		score = fmt.Sprintf("%d NEW BEST", snap.Score)
		if snap.Flash() {
			clr = hudFlash
		}
	}
	drawTextColor(screen, score, (width-textWidth(score))/2, 40, clr)
}

func drawBanner(screen *ebiten.Image, snap flappy.Snapshot, title, sub string) {
	w, h := float32(snap.WorldW), float32(snap.WorldH)
	vector.DrawFilledRect(screen, 0, h/2-40, w, 70, dim, false)

	width := int(snap.WorldW)
	drawText(screen, title, (width-textWidth(title))/2, int(h/2)-12)
	drawText(screen, sub, (width-textWidth(sub))/2, int(h/2)+12)
}

func drawText(screen *ebiten.Image, s string, x, y int) {
	drawTextColor(screen, s, x, y, hudColor)
}

func drawTextColor(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x+1, y+1, hudShadow)
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

func textWidth(s string) int {
	return len([]rune(strings.TrimSpace(s))) * glyphWidth
}
