package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// 40x30 cells over a 400x600 world: one column per 10 px, one row per 20 px.
func testSnapshot() Snapshot {
	return Snapshot{
		WorldW:    400,
		WorldH:    600,
		Bird:      Bird{X: 80, Y: 300, W: 34, H: 24},
		GroundY:   540,
		TileWidth: 24,
		Round:     1,
	}
}

func TestRenderBirdOverPipe(t *testing.T) {
	snap := testSnapshot()
	snap.Pipes = []PipePair{{X: 80, Width: 52, GapCenter: 100, GapHeight: 150, Ceiling: -600, Floor: 540, Color: core.ColorGreen}}

	scr := core.NewScreen(40, 30)
	NewRenderer(core.ColorBrightYellow).Draw(scr, snap)

	// Bird covers columns 8..11 and rows 15..16, inside the lower pipe.
	if c := scr.GetCell(9, 16); c.Rune != BirdBodyChar || c.Color != core.ColorBrightYellow {
		t.Errorf("cell (9,16) = %q %v, expected the bird body", c.Rune, c.Color)
	}
	if r := scr.Get(11, 15); r != BirdBeakChar {
		t.Errorf("cell (11,15) = %q, expected the beak", r)
	}
	// Pipe column next to the bird is still pipe.
	if c := scr.GetCell(13, 16); c.Rune != PipeChar || c.Color != core.ColorGreen {
		t.Errorf("cell (13,16) = %q %v, expected pipe", c.Rune, c.Color)
	}
	// Gap rows are empty.
	if r := scr.Get(13, 6); r != ' ' {
		t.Errorf("cell (13,6) = %q, expected the gap", r)
	}
}

func TestRenderScoreLast(t *testing.T) {
	snap := testSnapshot()
	snap.Score = 7
	snap.Bird.X, snap.Bird.Y = 180, 20 // right under the score

	scr := core.NewScreen(40, 30)
	NewRenderer(core.ColorBrightYellow).Draw(scr, snap)

	if r := scr.Get(19, 1); r != '7' {
		t.Errorf("cell (19,1) = %q, expected the score digit on top of the bird", r)
	}
}

func TestRenderGround(t *testing.T) {
	scr := core.NewScreen(40, 30)
	NewRenderer(core.ColorBrightYellow).Draw(scr, testSnapshot())

	for x := 0; x < 40; x++ {
		c := scr.GetCell(x, 27)
		if c.Rune != GroundTopChar && c.Rune != GroundAltChar {
			t.Fatalf("ground cell (%d,27) = %q", x, c.Rune)
		}
	}
	if r := scr.Get(0, 29); r != GroundFillChar {
		t.Errorf("cell (0,29) = %q, expected ground fill", r)
	}
	if !strings.ContainsRune(scr.Row(27), GroundAltChar) {
		t.Error("ground tiles should alternate")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   string
	}{
		{"paused", func(s *Snapshot) { s.Paused = true }, "PAUSED"},
		{"crash banner", func(s *Snapshot) { s.Phase, s.Last, s.Best = PhaseGameOver, 4, 9 }, "Score: 4  Best: 9"},
		{"best in hud", func(s *Snapshot) { s.Best = 12 }, "Best 12"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := testSnapshot()
			tc.mutate(&snap)
			scr := core.NewScreen(40, 30)
			NewRenderer(core.ColorBrightYellow).Draw(scr, snap)
			if !strings.Contains(scr.String(), tc.want) {
				t.Errorf("screen does not contain %q:\n%s", tc.want, scr.String())
			}
		})
	}
}

func TestRenderTinyScreen(t *testing.T) {
	snap := testSnapshot()
	snap.Pipes = []PipePair{{X: 300, Width: 52, GapCenter: 270, GapHeight: 150, Ceiling: -600, Floor: 540}}

	// Must not panic on screens smaller than the HUD.
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		NewRenderer(core.ColorBrightYellow).Draw(core.NewScreen(size[0], size[1]), snap)
	}
}

func TestRenderNewBestFlash(t *testing.T) {
	tests := []struct {
		name  string
		clock float64
		color core.Color
	}{
		{"highlighted", 0, core.ColorBrightYellow},
		{"plain", FlashPeriod * 1.5, core.ColorBrightWhite},
		{"highlighted again", FlashPeriod * 2.5, core.ColorBrightYellow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := testSnapshot()
			snap.Score = 5
			snap.NewBest = true
			snap.Clock = tc.clock

			scr := core.NewScreen(40, 30)
			NewRenderer(core.ColorBrightYellow).Draw(scr, snap)

			if !strings.Contains(scr.Row(1), " 5 NEW BEST ") {
				t.Fatalf("row 1 = %q, expected the new best label", scr.Row(1))
			}
			if c := scr.GetCell(15, 1); c.Rune != '5' || c.Color != tc.color {
				t.Errorf("score cell = %q %v, expected '5' %v", c.Rune, c.Color, tc.color)
			}
		})
	}

	snap := testSnapshot()
	snap.Clock = 0
	if snap.Flash() {
		t.Error("Flash() without a new best should be false")
	}
}
