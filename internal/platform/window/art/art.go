// Package art turns sprite sheets and palette colors into RGBA images for
// the window frontend. It has no graphics-driver dependency so it can be
// tested headless.
package art

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// rgb holds the window palette for core colors.
var rgb = map[core.Color]color.RGBA{
	core.ColorDefault:       {255, 255, 255, 255},
	core.ColorRed:           {255, 0, 0, 255},
	core.ColorGreen:         {0, 200, 0, 255},
	core.ColorYellow:        {255, 215, 0, 255},
	core.ColorBlue:          {30, 100, 220, 255},
	core.ColorMagenta:       {200, 0, 200, 255},
	core.ColorCyan:          {0, 200, 200, 255},
	core.ColorWhite:         {230, 230, 230, 255},
	core.ColorBrightRed:     {255, 0, 0, 255},
	core.ColorBrightGreen:   {0, 255, 0, 255},
	core.ColorBrightYellow:  {255, 255, 0, 255},
	core.ColorBrightBlue:    {0, 191, 255, 255},
	core.ColorBrightMagenta: {255, 85, 255, 255},
	core.ColorBrightCyan:    {0, 191, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 165, 0, 255},
	core.ColorGray:          {128, 128, 128, 255},
	core.ColorPink:          {255, 192, 203, 255},
	core.ColorPurple:        {147, 112, 219, 255},
}

// Fixed colors of the non-tinted sprite roles.
var (
	White   = color.RGBA{255, 255, 255, 255}
	Outline = color.RGBA{40, 30, 40, 255}
	Beak    = color.RGBA{250, 110, 40, 255}
	Light   = color.RGBA{222, 216, 149, 255}
	Dark    = color.RGBA{84, 56, 71, 255}
)

// RGBA returns the window color for a palette entry.
func RGBA(c core.Color) color.RGBA {
	if v, ok := rgb[c]; ok {
		return v
	}
	return rgb[core.ColorDefault]
}

// Shade scales the RGB channels of c by f, keeping alpha.
func Shade(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(core.ClampF(math.Round(float64(v)*f), 0, 255))
	}
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), c.A}
}

// RoleColor returns the color for a sprite role. Body takes the tint.
// The boolean is false for transparent pixels.
func RoleColor(r assets.Role, body color.RGBA) (color.RGBA, bool) {
	switch r {
	case assets.RoleBody:
		return body, true
	case assets.RoleWhite:
		return White, true
	case assets.RoleOutline:
		return Outline, true
	case assets.RoleBeak:
		return Beak, true
	case assets.RoleLight:
		return Light, true
	case assets.RoleDark:
		return Dark, true
	}
	return color.RGBA{}, false
}

// SpriteImage rasterizes a sprite, each pixel becoming a scale x scale block.
func SpriteImage(sp assets.Sprite, scale int, body color.RGBA) *image.RGBA {
	scale = max(scale, 1)
	img := image.NewRGBA(image.Rect(0, 0, sp.Width*scale, sp.Height*scale))
	for y := 0; y < sp.Height; y++ {
		for x := 0; x < sp.Width; x++ {
			c, ok := RoleColor(sp.At(x, y), body)
			if !ok {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

// SkyColors is the cycle the background fades through.
var SkyColors = []color.RGBA{
	{135, 206, 235, 255},
	{100, 149, 237, 255},
	{147, 112, 219, 255},
}

// SkyTransitionSeconds is the time to fade from one sky color to the next.
const SkyTransitionSeconds = 1.1

// Sky returns the background color t seconds into the cycle.
func Sky(t float64) color.RGBA {
	n := len(SkyColors)
	pos := core.Wrap(t/SkyTransitionSeconds, float64(n))
	i := int(pos)
	frac := pos - float64(i)
	from, to := SkyColors[i%n], SkyColors[(i+1)%n]

	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*frac))
	}
	return color.RGBA{lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B), 255}
}

// Tilt limits in radians.
const (
	MaxTiltUp   = -30 * math.Pi / 180
	MaxTiltDown = 90 * math.Pi / 180
)

// Tilt returns the bird's rotation for a vertical velocity in px/s:
// a tenth of a degree per px/s, nose down when falling.
func Tilt(vel float64) float64 {
	return core.ClampF(vel/10*math.Pi/180, MaxTiltUp, MaxTiltDown)
}
