package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorPurple
)

// BirdColors lists the selectable bird tints in menu order.
var BirdColors = []NamedColor{
	{"yellow", ColorBrightYellow},
	{"blue", ColorBrightCyan},
	{"red", ColorBrightRed},
	{"purple", ColorPurple},
	{"pink", ColorPink},
}

// PipeColors is the palette a new pipe pair draws its tint from.
var PipeColors = []Color{
	ColorGreen,
	ColorBrightBlue,
	ColorRed,
	ColorPurple,
	ColorOrange,
	ColorPink,
}

// NamedColor pairs a user-facing name with a palette entry.
type NamedColor struct {
	Name  string
	Color Color
}

// BirdColorByName looks up a bird tint, case-insensitively.
func BirdColorByName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range BirdColors {
		if c.Name == name {
			return c.Color, true
		}
	}
	return ColorDefault, false
}

// BirdColorNames returns the names accepted by BirdColorByName.
func BirdColorNames() []string {
	names := make([]string, len(BirdColors))
	for i, c := range BirdColors {
		names[i] = c.Name
	}
	return names
}
