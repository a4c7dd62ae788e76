package roman

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// grammar accepts exactly the canonical numerals, plus the empty string,
// which Parse rejects separately.
var grammar = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// Normalize case-folds numeral to upper case, the form the grammar is
// checked against.
func Normalize(numeral string) string {
	// A Caser holds state between calls; build one per call.
	return cases.Upper(language.Und).String(numeral)
}

// isASCII reports whether s holds only single-byte characters. Upper-casing
// maps a few non-ASCII letters (dotless ı) onto the alphabet, so they are
// turned away before folding.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Parse decodes a Roman numeral. The second result is false when numeral is
// not a well-formed numeral; in that case the integer is 0.
func Parse(numeral string) (int, bool) {
	if !isASCII(numeral) {
		return 0, false
	}
	s := Normalize(numeral)
	if s == "" || !grammar.MatchString(s) {
		return 0, false
	}

	// Right to left: a digit smaller than the one to its right is the
	// leading half of a subtractive pair.
	total, prev := 0, 0
	for i := len(s) - 1; i >= 0; i-- {
		v, ok := digitValue(s[i])
		if !ok {
			return 0, false
		}
		if prev > v {
			total -= v
		} else {
			total += v
		}
		prev = v
	}
	return total, true
}

// ParseNumeral is Parse with the failure reported as *MalformedNumeralError.
func ParseNumeral(numeral string) (int, error) {
	v, ok := Parse(numeral)
	if !ok {
		return 0, &MalformedNumeralError{Input: numeral}
	}
	return v, nil
}

// Valid reports whether numeral parses.
func Valid(numeral string) bool {
	_, ok := Parse(numeral)
	return ok
}
