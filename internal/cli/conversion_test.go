package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func decodeConversions(t *testing.T, data json.RawMessage) ConversionResult {
	t.Helper()
	var result ConversionResult
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func TestFormatToken(t *testing.T) {
	tests := []struct {
		token   string
		numeral string
		value   int
		code    string
	}{
		{"1", "I", 1, ""},
		{"1994", "MCMXCIV", 1994, ""},
		{"3999", "MMMCMXCIX", 3999, ""},
		{"12.7", "XII", 12, ""},
		{"0", "", 0, ErrCodeOutOfRange},
		{"4000", "", 4000, ErrCodeOutOfRange},
		{"-5", "", -5, ErrCodeOutOfRange},
		{"0.5", "", 0, ErrCodeOutOfRange},
		{"twelve", "", 0, ErrCodeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			c := formatToken(tt.token)
			assert.Equal(t, OpFormat, c.Op)
			assert.Equal(t, tt.token, c.Input)
			assert.Equal(t, tt.numeral, c.Numeral)
			assert.Equal(t, tt.value, c.Value)
			if tt.code == "" {
				assert.False(t, c.Failed())
			} else {
				require.True(t, c.Failed())
				assert.Equal(t, tt.code, c.Error.Code)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	c := parseToken("mcmxciv")
	require.False(t, c.Failed())
	assert.Equal(t, 1994, c.Value)
	assert.Equal(t, "MCMXCIV", c.Numeral)
	assert.Equal(t, "1994", c.Output())

	c = parseToken("IIII")
	require.True(t, c.Failed())
	assert.Equal(t, ErrCodeMalformed, c.Error.Code)
	assert.Contains(t, c.Error.Message, "IIII")
}

func TestDetectToken(t *testing.T) {
	assert.Equal(t, OpFormat, detectToken("1994").Op)
	assert.Equal(t, OpFormat, detectToken("-1").Op)
	assert.Equal(t, OpFormat, detectToken(".5").Op)
	assert.Equal(t, OpParse, detectToken("MCMXCIV").Op)
	assert.Equal(t, OpParse, detectToken("Ⅻ").Op)
	assert.Equal(t, OpParse, detectToken("").Op)
}

func TestFormatCommand_Text(t *testing.T) {
	out, err := runCommand(t, []string{"format", "1", "58", "3999"}, "")
	require.NoError(t, err)
	assert.Equal(t, "I\nLVIII\nMMMCMXCIX\n", out)
}

func TestFormatCommand_OutOfRange(t *testing.T) {
	out, err := runCommand(t, []string{"format", "58", "4000"}, "")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 conversion(s) failed")
	assert.Contains(t, out, "LVIII\n")
	assert.Contains(t, out, "Error [E201]: roman numerals can only be 1 - 3999, provided: 4000")
}

func TestFormatCommand_OutOfRangeReportsExactValue(t *testing.T) {
	out, err := runCommand(t, []string{"format", "1000000", "1e6", "2500000.75"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 conversion(s) failed")
	assert.Equal(t, 2, strings.Count(out, "provided: 1000000\n"))
	assert.Contains(t, out, "provided: 2500000\n")
	assert.NotContains(t, out, "e+06")
}

func TestFormatCommand_JSON(t *testing.T) {
	out, err := runCommand(t, []string{"--format", "json", "format", "0", "1994"}, "")
	require.Error(t, err)

	resp := decodeResponse(t, []byte(out))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeOutOfRange, resp.Error.Code)

	result := decodeConversions(t, resp.Data)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Conversions, 2)
	assert.Equal(t, "MCMXCIV", result.Conversions[1].Numeral)
	assert.Equal(t, 1994, result.Conversions[1].Value)
}

func TestFormatCommand_RequiresArgs(t *testing.T) {
	_, err := runCommand(t, []string{"format"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestParseCommand_Text(t *testing.T) {
	out, err := runCommand(t, []string{"parse", "MCMXCIV", "lviii"}, "")
	require.NoError(t, err)
	assert.Equal(t, "1994\n58\n", out)
}

func TestParseCommand_Malformed(t *testing.T) {
	out, err := runCommand(t, []string{"parse", "IIII", "ABC"}, "")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "2 conversion(s) failed")
	assert.Contains(t, out, `Error [E202]: not a roman numeral: "IIII"`)
	assert.Contains(t, out, `Error [E202]: not a roman numeral: "ABC"`)
}

func TestParseCommand_JSON(t *testing.T) {
	out, err := runCommand(t, []string{"--format", "json", "parse", "mcmxciv"}, "")
	require.NoError(t, err)

	resp := decodeResponse(t, []byte(out))
	assert.Equal(t, "ok", resp.Status)
	result := decodeConversions(t, resp.Data)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Conversions, 1)
	assert.Equal(t, Conversion{Input: "mcmxciv", Op: OpParse, Value: 1994, Numeral: "MCMXCIV"}, result.Conversions[0])
}

func TestConvertCommand_Stdin(t *testing.T) {
	out, err := runCommand(t, []string{"convert"}, "1994\n\n  lviii \nMMMCMXCIX\n")
	require.NoError(t, err)
	assert.Equal(t, "1994\tMCMXCIV\nlviii\t58\nMMMCMXCIX\t3999\n", out)
}

func TestConvertCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("58\nIIII\n4000\nXII\n"), 0644))

	out, err := runCommand(t, []string{"convert", path}, "")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "2 conversion(s) failed")
	assert.Contains(t, out, "58\tLVIII\n")
	assert.Contains(t, out, "XII\t12\n")
	assert.Contains(t, out, "Error [E202]")
	assert.Contains(t, out, "Error [E201]")
}

func TestConvertCommand_MissingFile(t *testing.T) {
	out, err := runCommand(t, []string{"convert", "/nonexistent/input.txt"}, "")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeNotFound)
	assert.Contains(t, out, "input file not found")
}

func TestConvertCommand_EmptyInput(t *testing.T) {
	out, err := runCommand(t, []string{"--format", "json", "convert"}, "\n\n")
	require.NoError(t, err)

	resp := decodeResponse(t, []byte(out))
	assert.Equal(t, "ok", resp.Status)
	result := decodeConversions(t, resp.Data)
	assert.Empty(t, result.Conversions)
}

func TestReadTokens(t *testing.T) {
	tokens, err := readTokens(strings.NewReader(" I \n\nII\r\n\tIII\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"I", "II", "III"}, tokens)
}
