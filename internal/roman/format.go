package roman

import (
	"math"
	"strconv"
	"strings"
)

// Format returns the canonical upper-case Roman numeral for value.
// Values outside [MinValue, MaxValue] fail with *OutOfRangeError.
func Format(value int) (string, error) {
	if value < MinValue || value > MaxValue {
		return "", &OutOfRangeError{Value: strconv.Itoa(value)}
	}

	var b strings.Builder
	remaining := value
	for _, s := range symbols {
		b.WriteString(strings.Repeat(s.glyph, remaining/s.value))
		remaining %= s.value
	}
	return b.String(), nil
}

// FormatFloat truncates value toward zero and formats the result.
// NaN and infinities are out of range.
func FormatFloat(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", &OutOfRangeError{Value: strconv.FormatFloat(value, 'g', -1, 64)}
	}
	t := math.Trunc(value)
	if t < MinValue || t > MaxValue {
		if t == 0 {
			t = 0 // drop the sign of -0
		}
		return "", &OutOfRangeError{Value: strconv.FormatFloat(t, 'f', -1, 64)}
	}
	return Format(int(t))
}
