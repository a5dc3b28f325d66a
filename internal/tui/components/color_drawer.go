package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/tui/styles"
)

const swatchGap = 0

// ColorDrawerData contains data needed to render the pen color drawer.
type ColorDrawerData struct {
	// Visible is the derived drawer state: true exactly when the pen is
	// the active tool.
	Visible bool

	// Reveal is the eased progress of the show/hide transition. Opacity
	// and visibility move together so a hidden drawer also stops
	// accepting input; the key handler checks Visible, not Reveal.
	Reveal float64

	// Active is the selected pen color.
	Active board.Color

	// BorderFade is the eased progress of the border-width transition on
	// the active swatch.
	BorderFade float64
}

// RenderColorDrawer renders the drawer, or "" while fully hidden. Every
// entry in the board palette produces exactly one swatch row, in palette
// order, so the control, its token, and its shortcut stay in lock-step.
func RenderColorDrawer(styleSet styles.Styles, data ColorDrawerData) string {
	if !data.Visible && data.Reveal <= 0 {
		return ""
	}

	rows := make([]string, 0, len(board.Palette())+1)
	rows = append(rows, styleSet.Muted.Render("Pen color"))
	for i, entry := range board.Palette() {
		rows = append(rows, renderSwatchRow(styleSet, i, entry, data))
	}
	return styles.VerticalStack(swatchGap, rows...)
}

// SwatchStyle returns the style for one color control. The swatch fill
// is the entry's style token. The active control renders with zero
// border width; inactive controls keep the fixed border ring. The ring
// fades toward the panel color as fade runs 0 to 1, which is the
// terminal rendering of the border-width transition.
func SwatchStyle(styleSet styles.Styles, entry board.PaletteEntry, active bool, fade float64) lipgloss.Style {
	tokens := styleSet.Theme.Tokens
	base := styles.CircularButton(styles.SwatchSize).
		Background(lipgloss.Color(entry.Token)).
		Foreground(lipgloss.Color(entry.Token))
	if !active {
		return base.Copy().BorderForeground(lipgloss.Color(tokens.Border))
	}
	if fade >= 1 {
		return base.Copy().Border(lipgloss.HiddenBorder())
	}
	ring := styles.Blend(tokens.Border, tokens.Panel, fade)
	return base.Copy().BorderForeground(lipgloss.Color(ring))
}

func renderSwatchRow(styleSet styles.Styles, index int, entry board.PaletteEntry, data ColorDrawerData) string {
	active := entry.ID == data.Active

	// Opacity tracks the reveal: swatch and label fade in from the panel
	// color together.
	tokens := styleSet.Theme.Tokens
	fill := styles.Blend(tokens.Panel, entry.Token, data.Reveal)
	faded := board.PaletteEntry{ID: entry.ID, Token: fill}

	inner := styles.ImageFill(styles.SwatchSize).Render(" ")
	swatch := SwatchStyle(styleSet, faded, active, data.BorderFade).Render(inner)

	labelStyle := styleSet.Muted
	if active {
		labelStyle = styleSet.Accent
	}
	label := labelStyle.Render(fmt.Sprintf("%d %s", index+1, entry.ID.Label()))

	return lipgloss.JoinHorizontal(lipgloss.Center, swatch, " ", label)
}
