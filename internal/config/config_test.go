package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Point the config search path at an empty directory so a developer's
	// real config file cannot leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "default", cfg.TUI.Theme)
	require.Equal(t, "pen", cfg.Board.DefaultTool)
	require.Equal(t, "black", cfg.Board.DefaultColor)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SCRAWL_TUI_THEME", "high-contrast")
	t.Setenv("SCRAWL_BOARD_DEFAULT_TOOL", "eraser")
	t.Setenv("SCRAWL_BOARD_DEFAULT_COLOR", "red")
	t.Setenv("SCRAWL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "high-contrast", cfg.TUI.Theme)
	require.Equal(t, "eraser", cfg.Board.DefaultTool)
	require.Equal(t, "red", cfg.Board.DefaultColor)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDoesNotValidateBoardValues(t *testing.T) {
	// Load only reads configuration; the board store is the single
	// authority on whether a default is selectable.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SCRAWL_BOARD_DEFAULT_TOOL", "airbrush")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "airbrush", cfg.Board.DefaultTool)
}
