package art

import (
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestSpriteImage(t *testing.T) {
	sp := assets.Sprite{
		Name:   "test",
		Width:  2,
		Height: 1,
		Pixels: [][]assets.Role{{assets.RoleTransparent, assets.RoleBody}},
	}
	body := RGBA(core.ColorPink)
	img := SpriteImage(sp, 3, body)

	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, expected 6x3", b)
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("transparent pixel = %v", got)
	}
	for _, p := range [][2]int{{3, 0}, {5, 2}} {
		if got := img.RGBAAt(p[0], p[1]); got != body {
			t.Errorf("pixel %v = %v, expected body tint %v", p, got, body)
		}
	}
}

func TestDefaultSheetRasterizes(t *testing.T) {
	sheet, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	sp, err := sheet.Sprite("bird_0")
	if err != nil {
		t.Fatal(err)
	}
	img := SpriteImage(sp, sheet.Scale, RGBA(core.ColorBrightYellow))
	if img.Bounds().Dx() != 34 || img.Bounds().Dy() != 24 {
		t.Errorf("bird image is %v, expected 34x24", img.Bounds())
	}
}

func TestRGBAOfBirdColors(t *testing.T) {
	want := map[string]color.RGBA{
		"yellow": {255, 255, 0, 255},
		"blue":   {0, 191, 255, 255},
		"red":    {255, 0, 0, 255},
		"purple": {147, 112, 219, 255},
		"pink":   {255, 192, 203, 255},
	}
	for _, nc := range core.BirdColors {
		if got := RGBA(nc.Color); got != want[nc.Name] {
			t.Errorf("%s = %v, expected %v", nc.Name, got, want[nc.Name])
		}
	}
	if got := RGBA(core.Color(200)); got != RGBA(core.ColorDefault) {
		t.Errorf("unknown color = %v, expected the default", got)
	}
}

func TestSkyCycle(t *testing.T) {
	if got := Sky(0); got != SkyColors[0] {
		t.Errorf("Sky(0) = %v, expected %v", got, SkyColors[0])
	}
	if got := Sky(SkyTransitionSeconds); got != SkyColors[1] {
		t.Errorf("Sky(one transition) = %v, expected %v", got, SkyColors[1])
	}
	full := SkyTransitionSeconds * float64(len(SkyColors))
	if got := Sky(full * 5); got != SkyColors[0] {
		t.Errorf("Sky(five cycles) = %v, expected %v", got, SkyColors[0])
	}

	mid := Sky(SkyTransitionSeconds / 2)
	if mid.R >= SkyColors[0].R || mid.R <= SkyColors[1].R {
		t.Errorf("midway red channel %d not between %d and %d", mid.R, SkyColors[1].R, SkyColors[0].R)
	}
}

func TestTilt(t *testing.T) {
	tests := []struct {
		vel  float64
		want float64
	}{
		{0, 0},
		{300, 30 * math.Pi / 180},
		{-300, MaxTiltUp},
		{5000, MaxTiltDown},
	}
	for _, tc := range tests {
		if got := Tilt(tc.vel); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Tilt(%v) = %v, expected %v", tc.vel, got, tc.want)
		}
	}
}

func TestShade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	if got := Shade(c, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("Shade(0.5) = %v", got)
	}
	if got := Shade(c, 2); got != (color.RGBA{255, 200, 100, 255}) {
		t.Errorf("Shade(2) = %v, expected clamped channels", got)
	}
}
