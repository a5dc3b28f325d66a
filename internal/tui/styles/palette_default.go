package styles

// DefaultTheme is the baseline palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#0B0F14",
		Surface:    "#10151C",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#5B8DEF",
		ButtonFill: "#E6EDF3",
		ButtonDark: "#1C2530",
		Icon:       "#1C2530",
		IconInvert: "#E6EDF3",
		Shadow:     "#060A0E",
	},
}
