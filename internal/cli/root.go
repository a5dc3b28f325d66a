// Package cli provides the scrawl command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/scrawlboard/scrawl/internal/config"
	"github.com/scrawlboard/scrawl/internal/logging"
)

var (
	cfg      *config.Config
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "scrawl",
	Short:         "A freehand drawing board for the terminal",
	Long:          "scrawl is a freehand drawing board for the terminal. The board panels own tool and pen-color selection; the drawing engine observes them.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if logLevel != "" {
			level = logLevel
		}
		return logging.Setup(level, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration, or nil before load.
func GetConfig() *config.Config {
	return cfg
}
