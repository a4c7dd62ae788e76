package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: literal
description: "Literal conversions"
cases:
  - format: 1994
    expect: "MCMXCIV"
  - format: 4000
    error: out_of_range
  - parse: "mcmxciv"
    expect: "1994"
  - parse: "IIII"
    error: no_match
assertions:
  - type: round_trip
    from: 1
    to: 100
  - type: rejects
    numerals: ["IIII", ""]
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "literal", scenario.Name)
	require.Len(t, scenario.Cases, 4)
	require.Len(t, scenario.Assertions, 2)

	assert.Equal(t, OpFormat, scenario.Cases[0].Op())
	assert.Equal(t, "1994", scenario.Cases[0].Input())
	assert.Equal(t, OpParse, scenario.Cases[2].Op())
	assert.Equal(t, "mcmxciv", scenario.Cases[2].Input())
	assert.Equal(t, ErrKindNoMatch, scenario.Cases[3].Error)

	assert.Equal(t, 100, scenario.Assertions[0].To)
	assert.Equal(t, []string{"IIII", ""}, scenario.Assertions[1].Numerals)
}

func TestLoadScenario_FractionalFormatInput(t *testing.T) {
	path := writeScenario(t, `
name: fractional
description: "Truncation"
cases:
  - format: 12.7
    expect: "XII"
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "12.7", scenario.Cases[0].Input())
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "name: [unterminated\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_UnknownFieldsRejected(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "Typo in cases"
case:
  - format: 1
    expect: "I"
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "description: d\ncases:\n  - format: 1\n    expect: I\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\ncases:\n  - format: 1\n    expect: I\n",
			wantErr: "description is required",
		},
		{
			name:    "empty scenario",
			content: "name: n\ndescription: d\n",
			wantErr: "at least one case or assertion is required",
		},
		{
			name:    "both operations",
			content: "name: n\ndescription: d\ncases:\n  - format: 1\n    parse: I\n    expect: I\n",
			wantErr: "exactly one of format or parse",
		},
		{
			name:    "no operation",
			content: "name: n\ndescription: d\ncases:\n  - expect: I\n",
			wantErr: "exactly one of format or parse",
		},
		{
			name:    "no expectation",
			content: "name: n\ndescription: d\ncases:\n  - format: 1\n",
			wantErr: "exactly one of expect or error",
		},
		{
			name:    "unknown error kind",
			content: "name: n\ndescription: d\ncases:\n  - format: 0\n    error: boom\n",
			wantErr: `unknown error kind "boom"`,
		},
		{
			name:    "no_match on format",
			content: "name: n\ndescription: d\ncases:\n  - format: 0\n    error: no_match\n",
			wantErr: "no_match only applies to parse",
		},
		{
			name:    "out_of_range on parse",
			content: "name: n\ndescription: d\ncases:\n  - parse: IIII\n    error: out_of_range\n",
			wantErr: "out_of_range only applies to format",
		},
		{
			name:    "unknown assertion",
			content: "name: n\ndescription: d\nassertions:\n  - type: sorted\n",
			wantErr: `unknown assertion type "sorted"`,
		},
		{
			name:    "missing assertion type",
			content: "name: n\ndescription: d\nassertions:\n  - numerals: [I]\n",
			wantErr: "type is required",
		},
		{
			name:    "inverted round trip",
			content: "name: n\ndescription: d\nassertions:\n  - type: round_trip\n    from: 10\n    to: 1\n",
			wantErr: "from must not exceed to",
		},
		{
			name:    "canonical without numerals",
			content: "name: n\ndescription: d\nassertions:\n  - type: canonical\n",
			wantErr: "numerals list is required for canonical",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid scenario")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAssertionConstants(t *testing.T) {
	assert.Equal(t, "round_trip", AssertRoundTrip)
	assert.Equal(t, "canonical", AssertCanonical)
	assert.Equal(t, "rejects", AssertRejects)
}

func TestLoadExampleScenarios(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "scenarios")
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	if len(files) == 0 {
		t.Skip("no example scenarios found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			scenario, err := LoadScenario(file)
			require.NoError(t, err)

			result, err := Run(scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}
