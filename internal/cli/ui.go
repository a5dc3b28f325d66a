package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/scrawlboard/scrawl/internal/board"
	"github.com/scrawlboard/scrawl/internal/logging"
	"github.com/scrawlboard/scrawl/internal/tui"
)

const journalSize = 256

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the scrawl board",
	Long:  "Launch the scrawl drawing board terminal user interface.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if !hasTTY() {
		return errors.New("scrawl ui requires an interactive terminal")
	}

	store, err := newStoreFromConfig()
	if err != nil {
		return err
	}

	journal := board.NewJournal(journalSize)
	if err := store.Subscribe("journal", journal); err != nil {
		return err
	}

	tuiConfig := tui.Config{Store: store}
	if cfg := GetConfig(); cfg != nil {
		tuiConfig.Theme = cfg.TUI.Theme
	}

	err = tui.RunWithConfig(tuiConfig)

	logger := logging.Component("cli")
	logger.Debug().Int("events", journal.Len()).Msg("session ended")

	return err
}

// newStoreFromConfig builds the board store from the configured startup
// selections. Misconfigured defaults are refused here, before any UI is
// drawn.
func newStoreFromConfig() (*board.Store, error) {
	defaultTool := board.DefaultTool
	defaultColor := board.DefaultColor
	if cfg := GetConfig(); cfg != nil {
		if cfg.Board.DefaultTool != "" {
			defaultTool = board.Tool(cfg.Board.DefaultTool)
		}
		if cfg.Board.DefaultColor != "" {
			defaultColor = board.Color(cfg.Board.DefaultColor)
		}
	}
	return board.NewStore(defaultTool, defaultColor)
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
