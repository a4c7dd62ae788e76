package harness

import (
	"fmt"
	"strconv"

	"github.com/roach88/roman/internal/roman"
)

// Run executes a scenario and returns the result.
//
// Cases run in order and each one appends exactly one trace event, so the
// trace is deterministic for a given scenario. Case and assertion failures
// are recorded on the result; the returned error is reserved for scenarios
// that cannot be executed at all.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	result := NewResult()

	for i, c := range scenario.Cases {
		runCase(i, c, result)
	}

	for _, msg := range EvaluateAssertions(scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func runCase(index int, c Case, result *Result) {
	var output, errKind string

	switch c.Op() {
	case OpFormat:
		s, err := roman.FormatFloat(*c.Format)
		switch {
		case err == nil:
			output = s
		case roman.IsOutOfRange(err):
			errKind = ErrKindOutOfRange
		default:
			errKind = err.Error()
		}
	case OpParse:
		if v, ok := roman.Parse(*c.Parse); ok {
			output = strconv.Itoa(v)
		} else {
			errKind = ErrKindNoMatch
		}
	}

	result.AddTrace(c.Op(), c.Input(), output, errKind)

	if err := checkCase(index, c, output, errKind); err != nil {
		result.AddError(err.Error())
	}
}

// checkCase compares a case outcome with its expectation.
func checkCase(index int, c Case, output, errKind string) error {
	if c.Error != "" {
		if errKind != c.Error {
			return &CaseError{
				Index:    index,
				Op:       c.Op(),
				Input:    c.Input(),
				Expected: "error " + c.Error,
				Actual:   describeOutcome(output, errKind),
			}
		}
		return nil
	}

	if errKind != "" || output != c.Expect {
		return &CaseError{
			Index:    index,
			Op:       c.Op(),
			Input:    c.Input(),
			Expected: strconv.Quote(c.Expect),
			Actual:   describeOutcome(output, errKind),
		}
	}
	return nil
}

func describeOutcome(output, errKind string) string {
	if errKind != "" {
		return "error " + errKind
	}
	return strconv.Quote(output)
}
