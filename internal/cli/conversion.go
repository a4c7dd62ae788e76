package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/roach88/roman/internal/roman"
)

// Conversion operations.
const (
	OpFormat = "format"
	OpParse  = "parse"
)

// Conversion is the outcome of converting one input token.
type Conversion struct {
	Input   string    `json:"input"`
	Op      string    `json:"op"`
	Value   int       `json:"value,omitempty"`
	Numeral string    `json:"numeral,omitempty"`
	Error   *CLIError `json:"error,omitempty"`
}

// Failed reports whether the conversion failed.
func (c Conversion) Failed() bool {
	return c.Error != nil
}

// Output returns the converted form of the input.
func (c Conversion) Output() string {
	if c.Op == OpFormat {
		return c.Numeral
	}
	return strconv.Itoa(c.Value)
}

// ConversionResult is the JSON payload of format, parse and convert.
type ConversionResult struct {
	Conversions []Conversion `json:"conversions"`
	Failed      int          `json:"failed"`
}

// formatToken converts a decimal token to a numeral. Integers are used as
// is; decimals are truncated toward zero.
func formatToken(token string) Conversion {
	c := Conversion{Input: token, Op: OpFormat}

	var (
		numeral string
		err     error
	)
	if n, convErr := strconv.Atoi(token); convErr == nil {
		c.Value = n
		numeral, err = roman.Format(n)
	} else if f, convErr := strconv.ParseFloat(token, 64); convErr == nil {
		numeral, err = roman.FormatFloat(f)
		if err == nil {
			c.Value = int(f)
		}
	} else {
		c.Error = &CLIError{Code: ErrCodeInvalidValue, Message: fmt.Sprintf("not a number: %q", token)}
		return c
	}

	if err != nil {
		c.Error = &CLIError{Code: ErrCodeOutOfRange, Message: err.Error()}
		return c
	}
	c.Numeral = numeral
	return c
}

// parseToken converts a numeral token to its value.
func parseToken(token string) Conversion {
	c := Conversion{Input: token, Op: OpParse}

	v, err := roman.ParseNumeral(token)
	if err != nil {
		c.Error = &CLIError{Code: ErrCodeMalformed, Message: err.Error()}
		return c
	}
	c.Value = v
	c.Numeral = roman.Normalize(token)
	return c
}

// detectToken picks the direction from the token's first character: a
// digit, sign or decimal point means format, anything else parse.
func detectToken(token string) Conversion {
	if token == "" {
		return parseToken(token)
	}
	first := []rune(token)[0]
	if unicode.IsDigit(first) || strings.ContainsRune("+-.", first) {
		return formatToken(token)
	}
	return parseToken(token)
}

// convertAll runs convert over every token and logs each outcome.
func convertAll(opts *RootOptions, tokens []string, convert func(string) Conversion) ConversionResult {
	result := ConversionResult{Conversions: make([]Conversion, 0, len(tokens))}
	logger := opts.log()

	for _, token := range tokens {
		c := convert(token)
		if c.Failed() {
			result.Failed++
			logger.Debug("conversion failed",
				zap.String("op", c.Op),
				zap.String("input", token),
				zap.String("code", c.Error.Code))
		} else {
			logger.Debug("converted",
				zap.String("op", c.Op),
				zap.String("input", token),
				zap.String("output", c.Output()))
		}
		result.Conversions = append(result.Conversions, c)
	}

	return result
}

// outputConversions writes conversion results. lineFn renders a successful
// conversion in text mode. Any failed conversion yields an ExitFailure error.
func outputConversions(f *OutputFormatter, result ConversionResult, lineFn func(Conversion) string) error {
	if f.JSON() {
		resp := CLIResponse{Status: "ok", Data: result}
		if result.Failed > 0 {
			resp.Status = "error"
			resp.Error = firstConversionError(result)
		}
		if err := f.Response(resp); err != nil {
			return err
		}
	} else {
		for _, c := range result.Conversions {
			if c.Failed() {
				_ = f.Error(c.Error.Code, c.Error.Message, nil)
				continue
			}
			fmt.Fprintln(f.Writer, lineFn(c))
		}
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d conversion(s) failed", result.Failed))
	}
	return nil
}

func firstConversionError(result ConversionResult) *CLIError {
	for _, c := range result.Conversions {
		if c.Failed() {
			return c.Error
		}
	}
	return nil
}
