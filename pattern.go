package iso8583

import (
	"fmt"
	"strconv"
)

// Pattern is the compiled wire representation of one field. The set of
// implementations is closed: FixedNumeric, FixedAlpha, FixedBinary and
// Variable.
type Pattern interface {
	// Kind identifies the variant.
	Kind() PatternKind
	// Format renders value the way it appears on the wire.
	Format(value string) (string, error)
	// Build appends the formatted value to the state buffer, sets the
	// field's bitmap bit and records the value the way Parse reads it back.
	Build(st *State, field int, value string) error
	// Parse reads the field at the state cursor and records it.
	Parse(st *State, field int) error

	sealed()
}

// FixedNumeric is a zero-padded, right-justified field of Length characters.
// Longer values keep their rightmost Length characters.
type FixedNumeric struct {
	Length int
}

func (FixedNumeric) Kind() PatternKind { return PatternFixedNumeric }
func (FixedNumeric) sealed()           {}

func (p FixedNumeric) Format(value string) (string, error) {
	if len(value) > p.Length {
		return value[len(value)-p.Length:], nil
	}
	return padLeft(value, p.Length, '0'), nil
}

func (p FixedNumeric) Build(st *State, field int, value string) error {
	return buildFixed(p, st, field, value)
}

func (p FixedNumeric) Parse(st *State, field int) error {
	return parseFixed(st, field, p.Length)
}

// FixedAlpha is a space-padded, left-justified field of Length characters.
// Longer values keep their leftmost Length characters.
type FixedAlpha struct {
	Length int
}

func (FixedAlpha) Kind() PatternKind { return PatternFixedAlpha }
func (FixedAlpha) sealed()           {}

func (p FixedAlpha) Format(value string) (string, error) {
	return formatAlpha(value, p.Length), nil
}

func (p FixedAlpha) Build(st *State, field int, value string) error {
	return buildFixed(p, st, field, value)
}

func (p FixedAlpha) Parse(st *State, field int) error {
	return parseFixed(st, field, p.Length)
}

// FixedBinary carries Bits bits of binary data as hex digits, four bits per
// character. Padding and truncation follow FixedAlpha.
type FixedBinary struct {
	Bits int
}

func (FixedBinary) Kind() PatternKind { return PatternFixedBinary }
func (FixedBinary) sealed()           {}

// Length is the number of hex characters the field occupies.
func (p FixedBinary) Length() int { return p.Bits / 4 }

func (p FixedBinary) Format(value string) (string, error) {
	return formatAlpha(value, p.Length()), nil
}

func (p FixedBinary) Build(st *State, field int, value string) error {
	return buildFixed(p, st, field, value)
}

func (p FixedBinary) Parse(st *State, field int) error {
	return parseFixed(st, field, p.Length())
}

// Variable is a length-prefixed field. The prefix is the value's length in
// decimal, zero-padded to LengthDigits. MaxLength is catalog metadata and is
// not enforced.
type Variable struct {
	LengthDigits int
	MaxLength    int
}

func (Variable) Kind() PatternKind { return PatternVariable }
func (Variable) sealed()           {}

func (p Variable) Format(value string) (string, error) {
	prefix := strconv.Itoa(len(value))
	if len(prefix) > p.LengthDigits {
		return "", fmt.Errorf("%w: %d characters do not fit a %d digit prefix",
			ErrInvalidLength, len(value), p.LengthDigits)
	}
	return padLeft(prefix, p.LengthDigits, '0') + value, nil
}

func (p Variable) Build(st *State, field int, value string) error {
	wire, err := p.Format(value)
	if err != nil {
		return err
	}
	st.emit(wire)
	st.AddField(field, value)
	return nil
}

func (p Variable) Parse(st *State, field int) error {
	prefix, err := st.take(p.LengthDigits)
	if err != nil {
		return err
	}
	n, err := parseDecimal(prefix)
	if err != nil {
		return err
	}
	data, err := st.take(n)
	if err != nil {
		return err
	}
	st.AddField(field, data)
	return nil
}

func formatAlpha(value string, length int) string {
	if len(value) > length {
		return value[:length]
	}
	return padRight(value, length, ' ')
}

func buildFixed(p Pattern, st *State, field int, value string) error {
	wire, err := p.Format(value)
	if err != nil {
		return err
	}
	st.emit(wire)
	st.AddField(field, wire)
	return nil
}

func parseFixed(st *State, field, length int) error {
	data, err := st.take(length)
	if err != nil {
		return err
	}
	st.AddField(field, data)
	return nil
}

// parseDecimal accepts only ASCII digits; strconv.Atoi would also take a sign.
func parseDecimal(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty length prefix", ErrInvalidLength)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: length prefix %q is not decimal", ErrInvalidLength, s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
