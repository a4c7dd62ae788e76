package roman

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	// ErrOutOfRange is matched by every *OutOfRangeError.
	ErrOutOfRange = errors.New("roman: value out of range")

	// ErrMalformedNumeral is matched by every *MalformedNumeralError.
	ErrMalformedNumeral = errors.New("roman: malformed numeral")
)

// OutOfRangeError is returned when a value has no Roman numeral
// representation.
type OutOfRangeError struct {
	// Value is the offending input in decimal notation, after truncation
	// toward zero for fractional inputs ("NaN", "+Inf" and "-Inf" pass
	// through as is).
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("roman numerals can only be %d - %d, provided: %s", MinValue, MaxValue, e.Value)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// MalformedNumeralError is returned by the error-returning wrappers around
// Parse when the input is not a valid numeral.
type MalformedNumeralError struct {
	Input string
}

func (e *MalformedNumeralError) Error() string {
	return fmt.Sprintf("not a roman numeral: %q", e.Input)
}

// Is reports whether target is ErrMalformedNumeral.
func (e *MalformedNumeralError) Is(target error) bool {
	return target == ErrMalformedNumeral
}

// IsOutOfRange returns true if err is (or wraps) an out-of-range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsMalformed returns true if err is (or wraps) a malformed-numeral error.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedNumeral)
}
