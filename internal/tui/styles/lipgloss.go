package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme   Theme
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Surface lipgloss.Style
	Border  lipgloss.Style

	// Button and ButtonActive render the circular tool controls.
	// ButtonActive inverts the icon on a dark fill.
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// ForTheme builds styles for the named theme, falling back to the
// default when the name is unknown.
func ForTheme(name string) Styles {
	if theme, ok := Themes[name]; ok {
		return BuildStyles(theme)
	}
	return DefaultStyles()
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	button := CircularButton(ButtonSize).
		BorderForeground(lipgloss.Color(tokens.Shadow)).
		Foreground(lipgloss.Color(tokens.Icon)).
		Background(lipgloss.Color(tokens.ButtonFill))

	return Styles{
		Theme:        theme,
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:         lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Surface:      lipgloss.NewStyle().Background(lipgloss.Color(tokens.Surface)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Border:       lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Button:       button,
		ButtonActive: button.Copy().Foreground(lipgloss.Color(tokens.IconInvert)).Background(lipgloss.Color(tokens.ButtonDark)),
	}
}
