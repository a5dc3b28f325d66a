package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Default control footprints, in cells.
const (
	ButtonSize = 1
	SwatchSize = 1
)

// fillInset is the fixed padding between a button box and the glyph
// filling it.
const fillInset = 1

// shadowColor is the fixed drop shadow under every circular button,
// identical across themes.
const shadowColor = "#060A0E"

// CircularButton returns the footprint shared by every round control:
// a square box of the given side with fully rounded corners, zero
// padding, and the fixed drop shadow. The rounded border glyphs stand in
// for the corner radius; their foreground carries the shadow. Output is
// a pure function of size.
func CircularButton(size int) lipgloss.Style {
	if size < 1 {
		size = 1
	}
	return lipgloss.NewStyle().
		Width(size).
		Height(size).
		Padding(0).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(shadowColor))
}

// ImageFill returns the style for a glyph filling a parent box of the
// given side, minus the fixed inset on every edge. Boxes too small to
// carry the inset render the glyph flush.
func ImageFill(size int) lipgloss.Style {
	inner := size - 2*fillInset
	margin := fillInset
	if inner < 1 {
		inner = 1
		margin = 0
	}
	return lipgloss.NewStyle().
		Width(inner).
		Height(inner).
		Margin(margin).
		Align(lipgloss.Center)
}

// VerticalStack lays out the items in a column with the given number of
// blank lines between consecutive items.
func VerticalStack(gap int, items ...string) string {
	if len(items) == 0 {
		return ""
	}
	if gap < 0 {
		gap = 0
	}
	spaced := make([]string, 0, len(items)+gap*(len(items)-1))
	for i, item := range items {
		if i > 0 {
			for j := 0; j < gap; j++ {
				spaced = append(spaced, "")
			}
		}
		spaced = append(spaced, item)
	}
	return lipgloss.JoinVertical(lipgloss.Left, spaced...)
}

// Blend interpolates between two hex color tokens. t is clamped to
// [0, 1]; 0 yields from, 1 yields to. Malformed tokens fall back to the
// target color so a bad blend degrades to the end state instead of
// garbage.
func Blend(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	fromColor, errFrom := colorful.Hex(from)
	toColor, errTo := colorful.Hex(to)
	if errFrom != nil || errTo != nil {
		return to
	}
	return fromColor.BlendRgb(toColor, t).Hex()
}
