package components

import (
	"fmt"
	"strings"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/tui/styles"
)

// SurfaceData contains the observable state the drawing engine reads.
type SurfaceData struct {
	Tool  board.Tool
	Color board.Color
}

// RenderSurface renders the stacked drawing-surface region beneath the
// panels. The strokes themselves are owned by the drawing engine; this
// layer only reserves the stack and exposes the selections the engine
// consumes.
func RenderSurface(styleSet styles.Styles, width, height int, data SurfaceData) string {
	if width < 4 {
		width = 4
	}
	if height < 4 {
		height = 4
	}

	names := make([]string, 0, len(board.Layers()))
	for _, layer := range board.Layers() {
		names = append(names, layer.String())
	}

	lines := []string{
		styleSet.Muted.Render(fmt.Sprintf("layers: %s", strings.Join(names, " < "))),
		styleSet.Muted.Render(fmt.Sprintf("engine reads: tool=%s color=%s", data.Tool, data.Color)),
	}

	return styleSet.Surface.Copy().
		Width(width - 2).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}
