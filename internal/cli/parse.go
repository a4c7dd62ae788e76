package cli

import (
	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <numeral>...",
		Short: "Parse Roman numerals into integers",
		Long: `Parse one or more Roman numerals into integers.

Numerals are case-insensitive but must otherwise be well formed:
"IIII", "MMMM" and "IC" are rejected.

Exit codes:
  0 - All numerals parsed
  1 - One or more inputs are not numerals

Examples:
  roman parse MCMXCIV
  roman parse mcmxciv lviii
  roman parse XLII --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := convertAll(rootOpts, args, parseToken)
			return outputConversions(newFormatter(rootOpts, cmd.OutOrStdout()), result, Conversion.Output)
		},
	}

	return cmd
}
