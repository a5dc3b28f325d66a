// Package components provides the board control panels.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/tui/styles"
)

// toolGap is the spacing between tool buttons in the stack.
const toolGap = 0

// ToolPaletteData contains data needed to render the tool palette.
type ToolPaletteData struct {
	// Active is the selected tool. Exactly one entry renders active.
	Active board.Tool

	// Invert is the eased progress of the icon-invert transition on the
	// active button, 0 at selection time and 1 once settled. Cosmetic
	// only; input handling never waits for it.
	Invert float64
}

// RenderToolPalette renders the vertical exclusive group of tool
// controls.
func RenderToolPalette(styleSet styles.Styles, data ToolPaletteData) string {
	buttons := make([]string, 0, len(board.Tools()))
	for _, tool := range board.Tools() {
		buttons = append(buttons, renderToolButton(styleSet, tool, tool == data.Active, data.Invert))
	}
	return styles.VerticalStack(toolGap, buttons...)
}

// ToolButtonStyle returns the button style for one tool control. The
// active control blends from the default fill to the dark fill and from
// the default icon color to its inverse as progress runs 0 to 1.
func ToolButtonStyle(styleSet styles.Styles, active bool, invert float64) lipgloss.Style {
	if !active {
		return styleSet.Button
	}
	if invert >= 1 {
		return styleSet.ButtonActive
	}
	tokens := styleSet.Theme.Tokens
	icon := styles.Blend(tokens.Icon, tokens.IconInvert, invert)
	fill := styles.Blend(tokens.ButtonFill, tokens.ButtonDark, invert)
	return styleSet.Button.Copy().
		Foreground(lipgloss.Color(icon)).
		Background(lipgloss.Color(fill))
}

func renderToolButton(styleSet styles.Styles, tool board.Tool, active bool, invert float64) string {
	icon := styles.ImageFill(styles.ButtonSize).Render(tool.Icon())
	button := ToolButtonStyle(styleSet, active, invert).Render(icon)

	labelStyle := styleSet.Muted
	if active {
		labelStyle = styleSet.Accent
	}
	label := labelStyle.Render(fmt.Sprintf("%s %s", tool.Key(), tool.Label()))

	return lipgloss.JoinHorizontal(lipgloss.Center, button, " ", label)
}
