package styles

// ThemeTokens defines the semantic color roles for the board chrome.
// Pen swatch colors are not theme tokens; they come from the board
// palette and are identical across themes.
type ThemeTokens struct {
	Background string
	Surface    string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	ButtonFill string
	ButtonDark string
	Icon       string
	IconInvert string
	Shadow     string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}
