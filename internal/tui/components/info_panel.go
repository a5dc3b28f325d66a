package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/tui/styles"
)

const (
	infoGap     = 0
	projectLink = "github.com/scrawlboard/scrawl"
)

// InfoAction is one always-visible auxiliary control. Entries are
// independent; activating one has no effect on the others. The first
// key is shown as the shortcut; the rest are aliases.
type InfoAction struct {
	Keys   []string
	Label  string
	Action board.Action
}

// InfoActions returns the fixed info panel entries.
func InfoActions() []InfoAction {
	return []InfoAction{
		{Keys: []string{"c", "delete"}, Label: "Clear", Action: board.ActionClear},
		{Keys: []string{"ctrl+z"}, Label: "Undo", Action: board.ActionUndo},
		{Keys: []string{"ctrl+y"}, Label: "Redo", Action: board.ActionRedo},
	}
}

// ActionForKey maps a key press to its info panel action.
func ActionForKey(key string) (board.Action, bool) {
	for _, entry := range InfoActions() {
		for _, bound := range entry.Keys {
			if bound == key {
				return entry.Action, true
			}
		}
	}
	return "", false
}

// RenderInfoPanel renders the static stack of auxiliary controls. It
// reuses the circular button footprint but carries no selection state.
func RenderInfoPanel(styleSet styles.Styles) string {
	glyph := styles.ImageFill(styles.ButtonSize)
	rows := make([]string, 0, len(InfoActions()))
	for _, entry := range InfoActions() {
		button := styleSet.Button.Render(glyph.Render(string(entry.Label[0])))
		label := styleSet.Muted.Render(fmt.Sprintf("%s %s", entry.Keys[0], entry.Label))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, button, " ", label))
	}
	help := lipgloss.JoinHorizontal(lipgloss.Center,
		styleSet.Button.Render(glyph.Render("?")), " ", styleSet.Muted.Render(projectLink))
	rows = append(rows, help)
	return styles.VerticalStack(infoGap, rows...)
}
