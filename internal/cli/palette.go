package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scrawlboard/scrawl/internal/board"
)

func init() {
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(toolsCmd)
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the pen color palette",
	Long:  "List the pen color palette: each entry's ID, style token, and keyboard shortcut, in drawer order.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := board.ValidatePalette(); err != nil {
			return fmt.Errorf("palette misconfigured: %w", err)
		}

		defaultColor := configuredDefaultColor()

		rows := make([][]string, 0, len(board.Palette()))
		for i, entry := range board.Palette() {
			rows = append(rows, []string{
				string(entry.ID),
				entry.Token,
				strconv.Itoa(i + 1),
				formatYesNo(entry.ID == defaultColor),
			})
		}
		return writeTable(os.Stdout, []string{"COLOR", "TOKEN", "KEY", "DEFAULT"}, rows)
	},
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultTool := configuredDefaultTool()

		rows := make([][]string, 0, len(board.Tools()))
		for _, tool := range board.Tools() {
			rows = append(rows, []string{
				string(tool),
				tool.Key(),
				formatYesNo(tool == defaultTool),
			})
		}
		return writeTable(os.Stdout, []string{"TOOL", "KEY", "DEFAULT"}, rows)
	},
}

func configuredDefaultTool() board.Tool {
	if cfg := GetConfig(); cfg != nil && cfg.Board.DefaultTool != "" {
		return board.Tool(cfg.Board.DefaultTool)
	}
	return board.DefaultTool
}

func configuredDefaultColor() board.Color {
	if cfg := GetConfig(); cfg != nil && cfg.Board.DefaultColor != "" {
		return board.Color(cfg.Board.DefaultColor)
	}
	return board.DefaultColor
}
