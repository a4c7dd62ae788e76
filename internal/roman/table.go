package roman

// Bounds of the representable range.
const (
	MinValue = 1
	MaxValue = 3999
)

type symbol struct {
	glyph string
	value int
}

// symbols drives greedy encoding. Order is descending by value and must stay
// that way: Format relies on it, including the subtractive pairs.
var symbols = [...]symbol{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// digitValue returns the value of a single Roman digit.
func digitValue(c byte) (int, bool) {
	switch c {
	case 'M':
		return 1000, true
	case 'D':
		return 500, true
	case 'C':
		return 100, true
	case 'L':
		return 50, true
	case 'X':
		return 10, true
	case 'V':
		return 5, true
	case 'I':
		return 1, true
	default:
		return 0, false
	}
}
