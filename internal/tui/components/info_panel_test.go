package components

import (
	"strings"
	"testing"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/tui/styles"
)

func TestRenderInfoPanel_ListsEveryAction(t *testing.T) {
	styleSet := styles.DefaultStyles()

	result := RenderInfoPanel(styleSet)

	for _, entry := range InfoActions() {
		if !strings.Contains(result, entry.Label) {
			t.Errorf("info panel should list %q", entry.Label)
		}
	}
	if !strings.Contains(result, projectLink) {
		t.Error("info panel should carry the project link")
	}
}

func TestActionForKey(t *testing.T) {
	action, ok := ActionForKey("c")
	if !ok || action != board.ActionClear {
		t.Errorf("ActionForKey(c) = %q, %v", action, ok)
	}

	action, ok = ActionForKey("delete")
	if !ok || action != board.ActionClear {
		t.Errorf("ActionForKey(delete) = %q, %v", action, ok)
	}

	action, ok = ActionForKey("ctrl+z")
	if !ok || action != board.ActionUndo {
		t.Errorf("ActionForKey(ctrl+z) = %q, %v", action, ok)
	}

	if _, ok := ActionForKey("x"); ok {
		t.Error("unbound keys should not map to actions")
	}
}

func TestRenderSurface_ExposesObservableState(t *testing.T) {
	styleSet := styles.DefaultStyles()

	result := RenderSurface(styleSet, 40, 10, SurfaceData{
		Tool:  board.ToolPen,
		Color: board.ColorRed,
	})

	if !strings.Contains(result, "tool=pen") || !strings.Contains(result, "color=red") {
		t.Errorf("surface should expose the selections the engine reads, got %q", result)
	}
	for _, layer := range board.Layers() {
		if !strings.Contains(result, layer.String()) {
			t.Errorf("surface should name layer %q", layer)
		}
	}
}
