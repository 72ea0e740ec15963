package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func defaultParams() PipeParams {
	cfg := config.DefaultFlappyConfig()
	return PipeParams{
		Width:     cfg.Pipes.Width,
		Playfield: cfg.Ground.Y,
		GapHeight: cfg.Pipes.GapHeight,
		MinMargin: cfg.Pipes.MinMargin,
		Ceiling:   -cfg.World.Height,
		Palette:   core.PipeColors,
	}
}

func TestPipeGapBounds(t *testing.T) {
	tests := []struct {
		name      string
		playfield float64
		gap       float64
		margin    float64
	}{
		{"defaults", 540, 150, 40},
		{"odd gap", 540, 151, 40},
		{"narrow range", 300, 200, 49.5},
		{"no margin", 540, 110, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := defaultParams()
			p.Playfield, p.GapHeight, p.MinMargin = tc.playfield, tc.gap, tc.margin

			for seed := int64(0); seed < 300; seed++ {
				rng := rand.New(rand.NewSource(seed))
				for i := 0; i < 10; i++ {
					pair := NewPipePair(rng, 400, p)
					if pair.GapTop() < tc.margin {
						t.Fatalf("seed %d: gap top %f is above margin %f", seed, pair.GapTop(), tc.margin)
					}
					if pair.GapBottom() > tc.playfield-tc.margin {
						t.Fatalf("seed %d: gap bottom %f is below %f", seed, pair.GapBottom(), tc.playfield-tc.margin)
					}
				}
			}
		})
	}
}

func TestPipeGapCoversRange(t *testing.T) {
	p := defaultParams()
	rng := rand.New(rand.NewSource(3))

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 5000; i++ {
		c := NewPipePair(rng, 0, p).GapCenter
		if c != math.Trunc(c) {
			t.Fatalf("gap center %f is not a whole pixel", c)
		}
		lo, hi = math.Min(lo, c), math.Max(hi, c)
	}
	if lo != 115 || hi != 425 {
		t.Errorf("gap centers spanned [%f, %f], expected [115, 425]", lo, hi)
	}
}

func TestPipeDegenerateRange(t *testing.T) {
	p := defaultParams()
	p.Playfield, p.GapHeight, p.MinMargin = 200, 120, 40

	pair := NewPipePair(rand.New(rand.NewSource(1)), 0, p)
	if pair.GapCenter != 100 {
		t.Errorf("gap center = %f, expected the only valid value 100", pair.GapCenter)
	}
}

func TestPipeScrolling(t *testing.T) {
	// Spawned at 400, 150 px/s, four 0.5 s frames
	pair := NewPipePair(rand.New(rand.NewSource(1)), 400, defaultParams())
	center := pair.GapCenter
	color := pair.Color

	for i := 0; i < 4; i++ {
		pair.Update(0.5, 150)
	}

	if pair.X != 100 {
		t.Errorf("X = %f, expected 100", pair.X)
	}
	if pair.GapCenter != center || pair.Color != color {
		t.Error("gap center and color must not change after creation")
	}
}

func TestPipeRects(t *testing.T) {
	pair := PipePair{X: 100, Width: 52, GapCenter: 300, GapHeight: 150, Ceiling: -600, Floor: 540}

	top := pair.TopRect()
	if top.X != 100 || top.Y != -600 || top.Bottom() != 225 || top.W != 52 {
		t.Errorf("TopRect() = %+v", top)
	}
	bottom := pair.BottomRect()
	if bottom.Y != 375 || bottom.Bottom() != 540 {
		t.Errorf("BottomRect() = %+v", bottom)
	}
	if pair.Right() != 152 {
		t.Errorf("Right() = %f, expected 152", pair.Right())
	}
}

func TestPipeColorFromPalette(t *testing.T) {
	p := defaultParams()
	rng := rand.New(rand.NewSource(9))
	seen := make(map[core.Color]bool)

	for i := 0; i < 200; i++ {
		c := NewPipePair(rng, 0, p).Color
		found := false
		for _, pc := range p.Palette {
			if pc == c {
				found = true
			}
		}
		if !found {
			t.Fatalf("color %v is not in the palette", c)
		}
		seen[c] = true
	}
	if len(seen) < 2 {
		t.Error("expected more than one palette color over 200 pipes")
	}

	p.Palette = nil
	if c := NewPipePair(rng, 0, p).Color; c != core.ColorGreen {
		t.Errorf("empty palette color = %v, expected green", c)
	}
}

func TestPipeDeterministicForSeed(t *testing.T) {
	p := defaultParams()
	a := rand.New(rand.NewSource(77))
	b := rand.New(rand.NewSource(77))

	for i := 0; i < 50; i++ {
		pa, pb := NewPipePair(a, 0, p), NewPipePair(b, 0, p)
		if pa != pb {
			t.Fatalf("pipe %d differs for the same seed: %+v vs %+v", i, pa, pb)
		}
	}
}
