package styles

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: "#000000",
		Surface:    "#000000",
		Panel:      "#0A0A0A",
		Text:       "#FFFFFF",
		TextMuted:  "#C0C0C0",
		Border:     "#FFFFFF",
		Accent:     "#00A2FF",
		ButtonFill: "#FFFFFF",
		ButtonDark: "#1A1A1A",
		Icon:       "#000000",
		IconInvert: "#FFFFFF",
		Shadow:     "#000000",
	},
}
