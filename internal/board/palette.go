package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color identifies a pen color from the fixed palette.
type Color string

// Available pen colors.
const (
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorSkyBlue Color = "sky-blue"
)

// DefaultColor is the pen color pre-marked active at startup.
const DefaultColor = ColorBlack

// PaletteEntry binds a color control to its style token. The swatch,
// the keyboard shortcut, and the enum variant are all generated from
// the entry, so appending one wires a fully functional new color.
type PaletteEntry struct {
	ID    Color
	Token string
}

// palette is the single ordered source of truth for the pen colors.
var palette = []PaletteEntry{
	{ID: ColorBlack, Token: "#000000"},
	{ID: ColorRed, Token: "#FF4B00"},
	{ID: ColorOrange, Token: "#F6AA00"},
	{ID: ColorGreen, Token: "#03AF7A"},
	{ID: ColorBlue, Token: "#005AFF"},
	{ID: ColorSkyBlue, Token: "#4DC4FF"},
}

// Palette returns a copy of the ordered swatch list.
func Palette() []PaletteEntry {
	entries := make([]PaletteEntry, len(palette))
	copy(entries, palette)
	return entries
}

// Colors returns the ordered color IDs.
func Colors() []Color {
	colors := make([]Color, len(palette))
	for i, entry := range palette {
		colors[i] = entry.ID
	}
	return colors
}

// Valid reports whether c is in the configured palette.
func (c Color) Valid() bool {
	for _, entry := range palette {
		if entry.ID == c {
			return true
		}
	}
	return false
}

// Token returns the immutable style token for the color, or "" when the
// color is not in the palette.
func (c Color) Token() string {
	for _, entry := range palette {
		if entry.ID == c {
			return entry.Token
		}
	}
	return ""
}

// Label returns the display name for the color.
func (c Color) Label() string {
	switch c {
	case ColorSkyBlue:
		return "Sky blue"
	case "":
		return "Unknown"
	default:
		return string(c[0]-'a'+'A') + string(c[1:])
	}
}

// ValidatePalette checks the swatch list for the misconfigurations that
// would otherwise surface as unset or colliding swatches at render time.
func ValidatePalette() error {
	if len(palette) == 0 {
		return errors.New("palette is empty")
	}
	seen := make(map[Color]struct{}, len(palette))
	for _, entry := range palette {
		if entry.ID == "" {
			return errors.New("palette entry with empty id")
		}
		if _, dup := seen[entry.ID]; dup {
			return fmt.Errorf("duplicate palette entry %q", entry.ID)
		}
		seen[entry.ID] = struct{}{}
		if err := validateToken(entry.Token); err != nil {
			return fmt.Errorf("palette entry %q: %w", entry.ID, err)
		}
	}
	return nil
}

func validateToken(token string) error {
	// The round trip catches stray non-hex characters that the parser
	// would otherwise tolerate at the end of a component.
	if len(token) != 7 {
		return fmt.Errorf("malformed style token %q", token)
	}
	parsed, err := colorful.Hex(token)
	if err != nil || !strings.EqualFold(parsed.Hex(), token) {
		return fmt.Errorf("malformed style token %q", token)
	}
	return nil
}
