package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a list of values and numerals",
		Long: `Convert one token per line, reading the file or stdin.

Lines starting with a digit, sign or decimal point are formatted; every
other line is parsed. Blank lines are skipped and surrounding whitespace is
trimmed. Conversion continues past failures.

Exit codes:
  0 - All lines converted
  1 - One or more lines failed
  2 - Input could not be read

Examples:
  roman convert years.txt
  printf '1994\nLVIII\n' | roman convert`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runConvert(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout())

	in := cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		source = args[0]
		file, err := os.Open(source)
		if err != nil {
			if os.IsNotExist(err) {
				return inputError(formatter, ErrCodeNotFound, fmt.Sprintf("input file not found: %s", source), err)
			}
			return inputError(formatter, ErrCodeInputFailed, fmt.Sprintf("cannot open input: %s", source), err)
		}
		defer file.Close()
		in = file
	}

	tokens, err := readTokens(in)
	if err != nil {
		return inputError(formatter, ErrCodeInputFailed, fmt.Sprintf("cannot read input: %s", source), err)
	}
	opts.log().Debug("read input", zap.String("source", source), zap.Int("tokens", len(tokens)))

	result := convertAll(opts, tokens, detectToken)
	return outputConversions(formatter, result, func(c Conversion) string {
		return c.Input + "\t" + c.Output()
	})
}

// readTokens returns the trimmed, non-blank lines of r.
func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens = append(tokens, line)
	}
	return tokens, scanner.Err()
}

func inputError(f *OutputFormatter, code, message string, err error) error {
	_ = f.Error(code, message, nil)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), err)
}
