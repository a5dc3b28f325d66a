package cli

import (
	"errors"
	"testing"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/config"
)

// withConfig swaps the loaded configuration for the duration of a test.
func withConfig(t *testing.T, replacement *config.Config) {
	t.Helper()
	original := cfg
	cfg = replacement
	t.Cleanup(func() {
		cfg = original
	})
}

func TestNewStoreFromConfigDefaults(t *testing.T) {
	withConfig(t, nil)

	store, err := newStoreFromConfig()
	if err != nil {
		t.Fatalf("newStoreFromConfig: %v", err)
	}
	if store.Tool() != board.DefaultTool {
		t.Errorf("tool = %q, want %q", store.Tool(), board.DefaultTool)
	}
	if store.Color() != board.DefaultColor {
		t.Errorf("color = %q, want %q", store.Color(), board.DefaultColor)
	}
}

func TestNewStoreFromConfigOverrides(t *testing.T) {
	withConfig(t, &config.Config{
		Board: config.BoardConfig{DefaultTool: "eraser", DefaultColor: "red"},
	})

	store, err := newStoreFromConfig()
	if err != nil {
		t.Fatalf("newStoreFromConfig: %v", err)
	}
	if store.Tool() != board.ToolEraser {
		t.Errorf("tool = %q, want eraser", store.Tool())
	}
	if store.Color() != board.ColorRed {
		t.Errorf("color = %q, want red", store.Color())
	}
}

func TestNewStoreFromConfigRejectsMisconfiguredDefaults(t *testing.T) {
	withConfig(t, &config.Config{
		Board: config.BoardConfig{DefaultTool: "airbrush"},
	})

	if _, err := newStoreFromConfig(); !errors.Is(err, board.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}

	withConfig(t, &config.Config{
		Board: config.BoardConfig{DefaultColor: "magenta"},
	})

	if _, err := newStoreFromConfig(); !errors.Is(err, board.ErrUnknownColor) {
		t.Fatalf("expected ErrUnknownColor, got %v", err)
	}
}

func TestConfiguredDefaults(t *testing.T) {
	withConfig(t, nil)
	if configuredDefaultTool() != board.DefaultTool {
		t.Errorf("tool fallback = %q", configuredDefaultTool())
	}
	if configuredDefaultColor() != board.DefaultColor {
		t.Errorf("color fallback = %q", configuredDefaultColor())
	}

	withConfig(t, &config.Config{
		Board: config.BoardConfig{DefaultTool: "selector", DefaultColor: "blue"},
	})
	if configuredDefaultTool() != board.ToolSelector {
		t.Errorf("configured tool = %q, want selector", configuredDefaultTool())
	}
	if configuredDefaultColor() != board.ColorBlue {
		t.Errorf("configured color = %q, want blue", configuredDefaultColor())
	}
}
