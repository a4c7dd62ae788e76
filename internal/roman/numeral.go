package roman

import "fmt"

// Numeral is an integer that encodes to and decodes from its Roman numeral
// text form. It plugs into encoding/json, yaml.v3 and anything else that
// honours encoding.TextMarshaler.
type Numeral int

// String returns the canonical numeral, or Numeral(n) if n is out of range.
func (n Numeral) String() string {
	s, err := Format(int(n))
	if err != nil {
		return fmt.Sprintf("Numeral(%d)", int(n))
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (n Numeral) MarshalText() ([]byte, error) {
	s, err := Format(int(n))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any input
// Parse accepts.
func (n *Numeral) UnmarshalText(text []byte) error {
	v, err := ParseNumeral(string(text))
	if err != nil {
		return err
	}
	*n = Numeral(v)
	return nil
}
