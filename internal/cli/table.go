package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/roman/internal/roman"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	From int
	To   int
}

// TableRow is one line of the table.
type TableRow struct {
	Value   int           `json:"value"`
	Numeral roman.Numeral `json:"numeral"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print a value/numeral table",
		Long: `Print every value in [from, to] next to its Roman numeral.

Examples:
  roman table --to 20
  roman table --from 1990 --to 2000 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.From, "from", roman.MinValue, "first value")
	cmd.Flags().IntVar(&opts.To, "to", roman.MaxValue, "last value")

	return cmd
}

func runTable(opts *TableOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())

	if err := validateBounds(opts.From, opts.To); err != nil {
		_ = formatter.Error(ErrCodeOutOfRange, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeOutOfRange, err)
	}

	rows := make([]TableRow, 0, opts.To-opts.From+1)
	for v := opts.From; v <= opts.To; v++ {
		rows = append(rows, TableRow{Value: v, Numeral: roman.Numeral(v)})
	}

	if formatter.JSON() {
		return formatter.Success(rows)
	}

	for _, row := range rows {
		fmt.Fprintf(formatter.Writer, "%d\t%s\n", row.Value, row.Numeral)
	}
	return nil
}

func validateBounds(from, to int) error {
	if from < roman.MinValue || to > roman.MaxValue {
		return fmt.Errorf("table bounds must lie within %d-%d, got %d-%d", roman.MinValue, roman.MaxValue, from, to)
	}
	if from > to {
		return fmt.Errorf("--from (%d) must not exceed --to (%d)", from, to)
	}
	return nil
}
