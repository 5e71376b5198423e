package cli

import (
	"log/slog"

	"github.com/re-cinq/topictree/internal/config"
	"github.com/re-cinq/topictree/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

// Version is set at build time with -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:          "topictree",
	Short:        "Paths of the topics content tree (topics, courses, exercises, progress)",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(cmd.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "path", "p", config.DefaultFile, "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.TextFormat, "log format (text, logfmt, json)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
