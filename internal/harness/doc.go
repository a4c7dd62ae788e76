// Package harness runs conformance scenarios against the roman converter.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: boundaries
//	description: "Edges of the representable range"
//	cases:
//	  - format: 3999
//	    expect: "MMMCMXCIX"
//	  - format: 4000
//	    error: out_of_range
//	  - parse: "mcmxciv"
//	    expect: "1994"
//	  - parse: "IIII"
//	    error: no_match
//	assertions:
//	  - type: round_trip
//	    from: 1
//	    to: 3999
//	  - type: canonical
//	    numerals: ["mcmxciv"]
//	  - type: rejects
//	    numerals: ["IIII", "MMMMM", "", "ABC"]
//
// Each case runs one conversion and must name exactly one of format/parse
// and exactly one of expect/error. Format inputs may be fractional; they are
// truncated toward zero.
//
// # Assertion Types
//
//   - round_trip: parse(format(n)) == n for every n in [from, to]
//   - canonical: format(parse(s)) == upper(s) for every listed numeral
//   - rejects: every listed string fails to parse
//
// # Golden Files
//
// Every case is recorded as a TraceEvent. RunWithGolden compares the trace
// against testdata/golden/<name>.golden; regenerate with
//
//	go test ./internal/harness -update
package harness
