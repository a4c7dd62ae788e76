package cli

import (
	"github.com/spf13/cobra"
)

// NewFormatCommand creates the format command.
func NewFormatCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <value>...",
		Short: "Format integers as Roman numerals",
		Long: `Format one or more integers (1-3999) as canonical Roman numerals.

Decimal values are truncated toward zero before the range check.

Exit codes:
  0 - All values formatted
  1 - One or more values out of range or not numbers

Examples:
  roman format 1994
  roman format 1 58 3999
  roman format 12.7 --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := convertAll(rootOpts, args, formatToken)
			return outputConversions(newFormatter(rootOpts, cmd.OutOrStdout()), result, Conversion.Output)
		},
	}

	return cmd
}
