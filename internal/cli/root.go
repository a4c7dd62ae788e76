package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// TraceID correlates log lines and JSON responses of one invocation.
	TraceID string

	// Logger is built in PersistentPreRunE. Commands constructed without the
	// root command see a nil logger and must go through log().
	Logger *zap.Logger
}

// log returns the configured logger, or a no-op logger.
func (o *RootOptions) log() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the roman CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "roman",
		Short: "roman - Roman numeral converter",
		Long: `Convert between integers (1-3999) and Roman numerals.

Formatting is strict: values outside 1-3999 are errors. Parsing accepts
only well-formed numerals (case-insensitive) and rejects everything else.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			opts.TraceID = uuid.NewString()
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose).
				With(zap.String("trace_id", opts.TraceID))
			opts.Logger.Debug("command started",
				zap.String("command", cmd.CommandPath()),
				zap.Strings("args", args))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log().Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewFormatCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
