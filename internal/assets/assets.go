// Package assets loads the embedded sprite sheet.
//
// Sprites are stored as rows of runes in a YAML document so they can be
// edited by hand and decoded without an image codec. Each rune maps to a
// colour Role; frontends decide the concrete colours.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed sheet/sprites.yaml
var embedded embed.FS

// DefaultPath is the location of the sheet inside the embedded filesystem.
const DefaultPath = "sheet/sprites.yaml"

var (
	// ErrMissingSprite is returned when a sheet lacks a sprite the game needs.
	ErrMissingSprite = errors.New("assets: missing sprite")
	// ErrMalformedSprite is returned for ragged rows or unknown palette runes.
	ErrMalformedSprite = errors.New("assets: malformed sprite")
)

// BirdFrames is the number of wing animation frames.
const BirdFrames = 3

// Role is the colour class of a sprite pixel.
type Role uint8

const (
	RoleTransparent Role = iota
	RoleBody
	RoleWhite
	RoleOutline
	RoleBeak
	RoleLight
	RoleDark
)

var roleNames = map[string]Role{
	"transparent": RoleTransparent,
	"body":        RoleBody,
	"white":       RoleWhite,
	"outline":     RoleOutline,
	"beak":        RoleBeak,
	"light":       RoleLight,
	"dark":        RoleDark,
}

// Sprite is a decoded pixel grid.
type Sprite struct {
	Name   string
	Width  int
	Height int
	Pixels [][]Role // [y][x]
}

// At returns the role at (x, y), transparent when out of range.
func (s Sprite) At(x, y int) Role {
	if y < 0 || y >= s.Height || x < 0 || x >= s.Width {
		return RoleTransparent
	}
	return s.Pixels[y][x]
}

// Sheet is a set of sprites sharing one pixel scale.
type Sheet struct {
	Scale   int
	sprites map[string]Sprite
}

// sheetFile is the on-disk YAML layout.
type sheetFile struct {
	Scale   int                 `yaml:"scale"`
	Palette map[string]string   `yaml:"palette"`
	Sprites map[string][]string `yaml:"sprites"`
}

// BirdFrameName returns the sprite name of a wing frame.
func BirdFrameName(frame int) string {
	return fmt.Sprintf("bird_%d", frame)
}

// Required lists every sprite the game draws.
func Required() []string {
	names := make([]string, 0, BirdFrames+1)
	for i := 0; i < BirdFrames; i++ {
		names = append(names, BirdFrameName(i))
	}
	return append(names, "ground")
}

// Default loads the sheet compiled into the binary.
func Default() (*Sheet, error) {
	return Load(embedded, DefaultPath)
}

// Load reads and validates a sheet from fsys.
func Load(fsys fs.FS, path string) (*Sheet, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
	}

	var file sheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("assets: cannot parse %s: %w", path, err)
	}

	palette, err := decodePalette(file.Palette)
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{
		Scale:   max(file.Scale, 1),
		sprites: make(map[string]Sprite, len(file.Sprites)),
	}
	for name, rows := range file.Sprites {
		sp, err := decodeSprite(name, rows, palette)
		if err != nil {
			return nil, err
		}
		sheet.sprites[name] = sp
	}

	for _, name := range Required() {
		if _, ok := sheet.sprites[name]; !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrMissingSprite, name, path)
		}
	}
	return sheet, nil
}

func decodePalette(raw map[string]string) (map[rune]Role, error) {
	palette := make(map[rune]Role, len(raw))
	for key, roleName := range raw {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%w: palette key %q must be a single rune", ErrMalformedSprite, key)
		}
		role, ok := roleNames[roleName]
		if !ok {
			return nil, fmt.Errorf("%w: unknown palette role %q", ErrMalformedSprite, roleName)
		}
		r, _ := utf8.DecodeRuneInString(key)
		palette[r] = role
	}
	return palette, nil
}

func decodeSprite(name string, rows []string, palette map[rune]Role) (Sprite, error) {
	if len(rows) == 0 {
		return Sprite{}, fmt.Errorf("%w: %q has no rows", ErrMalformedSprite, name)
	}

	width := utf8.RuneCountInString(rows[0])
	sp := Sprite{
		Name:   name,
		Width:  width,
		Height: len(rows),
		Pixels: make([][]Role, len(rows)),
	}
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return Sprite{}, fmt.Errorf("%w: %q row %d is %d wide, expected %d", ErrMalformedSprite, name, y, n, width)
		}
		sp.Pixels[y] = make([]Role, 0, width)
		for _, r := range row {
			role, ok := palette[r]
			if !ok {
				return Sprite{}, fmt.Errorf("%w: %q row %d uses rune %q missing from the palette", ErrMalformedSprite, name, y, r)
			}
			sp.Pixels[y] = append(sp.Pixels[y], role)
		}
	}
	return sp, nil
}

// Sprite returns a sprite by name.
func (s *Sheet) Sprite(name string) (Sprite, error) {
	sp, ok := s.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrMissingSprite, name)
	}
	return sp, nil
}

// Names lists the sprites in the sheet, sorted.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.sprites))
	for name := range s.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
