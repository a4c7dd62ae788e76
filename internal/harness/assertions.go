package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/roman/internal/roman"
)

// CaseError is recorded when a case outcome differs from its expectation.
type CaseError struct {
	Index    int
	Op       string
	Input    string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *CaseError) Error() string {
	return fmt.Sprintf("cases[%d]: %s %q: expected %s, got %s", e.Index, e.Op, e.Input, e.Expected, e.Actual)
}

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Failures []string // Offending inputs, capped at maxReportedFailures
	Total    int      // Number of offending inputs
}

// maxReportedFailures bounds AssertionError.Failures so a broken converter
// does not produce thousands of lines.
const maxReportedFailures = 5

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	for _, f := range e.Failures {
		fmt.Fprintf(&buf, "  - %s\n", f)
	}
	if e.Total > len(e.Failures) {
		fmt.Fprintf(&buf, "  ... and %d more\n", e.Total-len(e.Failures))
	}

	return buf.String()
}

func (e *AssertionError) add(failure string) {
	e.Total++
	if len(e.Failures) < maxReportedFailures {
		e.Failures = append(e.Failures, failure)
	}
}

func (e *AssertionError) result() error {
	if e.Total == 0 {
		return nil
	}
	e.Actual = fmt.Sprintf("%d failure(s)", e.Total)
	return e
}

// assertRoundTrip checks parse(format(n)) == n over [from, to].
// A zero range means the full representable range.
func assertRoundTrip(a Assertion) error {
	from, to := a.From, a.To
	if from == 0 && to == 0 {
		from, to = roman.MinValue, roman.MaxValue
	}

	ae := &AssertionError{
		Type:     AssertRoundTrip,
		Expected: fmt.Sprintf("parse(format(n)) == n for n in [%d, %d]", from, to),
	}
	for n := from; n <= to; n++ {
		s, err := roman.Format(n)
		if err != nil {
			ae.add(fmt.Sprintf("format(%d): %v", n, err))
			continue
		}
		if v, ok := roman.Parse(s); !ok || v != n {
			ae.add(fmt.Sprintf("parse(%q) = %d, %t", s, v, ok))
		}
	}
	return ae.result()
}

// assertCanonical checks format(parse(s)) == upper(s).
func assertCanonical(a Assertion) error {
	ae := &AssertionError{
		Type:     AssertCanonical,
		Expected: "format(parse(s)) == upper(s)",
	}
	for _, s := range a.Numerals {
		v, ok := roman.Parse(s)
		if !ok {
			ae.add(fmt.Sprintf("parse(%q): no match", s))
			continue
		}
		got, err := roman.Format(v)
		if err != nil {
			ae.add(fmt.Sprintf("format(%d): %v", v, err))
			continue
		}
		if want := strings.ToUpper(s); got != want {
			ae.add(fmt.Sprintf("format(parse(%q)) = %q, want %q", s, got, want))
		}
	}
	return ae.result()
}

// assertRejects checks that every listed string fails to parse.
func assertRejects(a Assertion) error {
	ae := &AssertionError{
		Type:     AssertRejects,
		Expected: "no match for every numeral",
	}
	for _, s := range a.Numerals {
		if v, ok := roman.Parse(s); ok {
			ae.add(fmt.Sprintf("parse(%q) = %d", s, v))
		}
	}
	return ae.result()
}

// EvaluateAssertions evaluates all assertions.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertRoundTrip:
			err = assertRoundTrip(assertion)
		case AssertCanonical:
			err = assertCanonical(assertion)
		case AssertRejects:
			err = assertRejects(assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
