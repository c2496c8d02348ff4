// Package cli implements the tempo command.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tempo/internal/logging"
)

// Set by the root command's persistent flags; read by subcommands.
var (
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger = slog.New(slog.DiscardHandler)
)

// NewRootCmd returns the tempo command with its run, window and easings
// subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tempo",
		Short:        "Play tween timelines on the tempo scheduler",
		Long:         "tempo plays YAML tween timelines headlessly or in an Ebitengine window.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := flagLogLevel
			if flagDebug {
				level = "debug"
			}
			l, err := logging.New(logging.Options{
				Level:  level,
				Format: flagLogFormat,
				Out:    cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&flagDebug, "debug", false, "Log at debug level, including one record per scheduler pass")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&flagLogFormat, "log-format", "text", "Log record format: text or json")

	root.AddCommand(newRunCmd(), newWindowCmd(), newEasingsCmd())
	return root
}
