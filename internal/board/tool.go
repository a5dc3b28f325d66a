// Package board holds the selection state shared between the control
// panels and the drawing engine.
package board

// Tool is a selectable drawing mode.
type Tool string

// Available tools.
const (
	ToolSelector Tool = "selector"
	ToolPen      Tool = "pen"
	ToolEraser   Tool = "eraser"
)

// DefaultTool is the tool pre-marked active at startup. The pen is the
// default so the color drawer is visible on first paint.
const DefaultTool = ToolPen

// Tools returns the fixed, ordered tool set.
func Tools() []Tool {
	return []Tool{ToolSelector, ToolPen, ToolEraser}
}

// Valid reports whether t is a known tool.
func (t Tool) Valid() bool {
	switch t {
	case ToolSelector, ToolPen, ToolEraser:
		return true
	}
	return false
}

// Label returns the display name for the tool.
func (t Tool) Label() string {
	switch t {
	case ToolSelector:
		return "Selector"
	case ToolPen:
		return "Pen"
	case ToolEraser:
		return "Eraser"
	default:
		return "Unknown"
	}
}

// Icon returns the single-cell glyph shown on the tool's button.
func (t Tool) Icon() string {
	switch t {
	case ToolSelector:
		return "⬚"
	case ToolPen:
		return "✎"
	case ToolEraser:
		return "⌫"
	default:
		return "?"
	}
}

// Key returns the keyboard shortcut that activates the tool.
func (t Tool) Key() string {
	switch t {
	case ToolSelector:
		return "s"
	case ToolPen:
		return "p"
	case ToolEraser:
		return "e"
	default:
		return ""
	}
}
