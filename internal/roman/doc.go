// Package roman converts between integers and Roman numerals.
//
// Only the classical range 1..3999 is representable. Format is strict and
// fails loudly with an *OutOfRangeError outside that range. Parse is the
// probing counterpart: it reports a malformed numeral with a false second
// return value instead of an error, so callers can test arbitrary strings
// without error plumbing. ParseNumeral re-raises that failure as an error for
// callers that prefer one.
//
// # Grammar
//
// A numeral is accepted only when the whole (normalized) string matches
//
//	M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})
//
// and is non-empty. Input is case-folded first. Only the ASCII letters
// M, D, C, L, X, V and I (in either case) can appear; Unicode look-alikes
// such as "Ⅻ" are not numerals.
//
// Everything in this package is stateless and safe for concurrent use.
package roman
