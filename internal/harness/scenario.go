package harness

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Cases are single conversions with their expected outcome.
	Cases []Case `yaml:"cases,omitempty"`

	// Assertions are properties checked after all cases ran.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Case is one conversion. Exactly one of Format and Parse is set, and
// exactly one of Expect and Error.
type Case struct {
	// Format is the value to format. Fractions are truncated toward zero.
	Format *float64 `yaml:"format,omitempty"`

	// Parse is the numeral to parse.
	Parse *string `yaml:"parse,omitempty"`

	// Expect is the expected output: a numeral for format, a decimal
	// integer for parse.
	Expect string `yaml:"expect,omitempty"`

	// Error is the expected failure kind: out_of_range or no_match.
	Error string `yaml:"error,omitempty"`
}

// Op returns the operation this case exercises.
func (c Case) Op() string {
	if c.Format != nil {
		return OpFormat
	}
	return OpParse
}

// Input returns the case input as it is recorded in the trace.
func (c Case) Input() string {
	if c.Format != nil {
		return strconv.FormatFloat(*c.Format, 'f', -1, 64)
	}
	if c.Parse != nil {
		return *c.Parse
	}
	return ""
}

// Assertion is a property over many conversions.
type Assertion struct {
	// Type is one of round_trip, canonical, rejects.
	Type string `yaml:"type"`

	// From and To bound round_trip (inclusive).
	From int `yaml:"from,omitempty"`
	To   int `yaml:"to,omitempty"`

	// Numerals feeds canonical and rejects.
	Numerals []string `yaml:"numerals,omitempty"`
}

// Assertion type constants.
const (
	AssertRoundTrip = "round_trip"
	AssertCanonical = "canonical"
	AssertRejects   = "rejects"
)

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so typos surface as load errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Cases) == 0 && len(s.Assertions) == 0 {
		return fmt.Errorf("at least one case or assertion is required")
	}

	for i, c := range s.Cases {
		if err := validateCase(i, c); err != nil {
			return err
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

func validateCase(index int, c Case) error {
	if (c.Format == nil) == (c.Parse == nil) {
		return fmt.Errorf("cases[%d]: exactly one of format or parse is required", index)
	}
	if (c.Expect == "") == (c.Error == "") {
		return fmt.Errorf("cases[%d]: exactly one of expect or error is required", index)
	}

	switch c.Error {
	case "":
	case ErrKindOutOfRange:
		if c.Format == nil {
			return fmt.Errorf("cases[%d]: %s only applies to format", index, ErrKindOutOfRange)
		}
	case ErrKindNoMatch:
		if c.Parse == nil {
			return fmt.Errorf("cases[%d]: %s only applies to parse", index, ErrKindNoMatch)
		}
	default:
		return fmt.Errorf("cases[%d]: unknown error kind %q", index, c.Error)
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertRoundTrip:
		if a.From > a.To {
			return fmt.Errorf("assertions[%d]: from must not exceed to for round_trip", index)
		}
	case AssertCanonical, AssertRejects:
		if len(a.Numerals) == 0 {
			return fmt.Errorf("assertions[%d]: numerals list is required for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
