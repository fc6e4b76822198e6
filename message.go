package iso8583

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Message is the product of a parse or build. RoutingPrefix and MTI are
// empty for DF61 messages.
type Message struct {
	Family        string
	RoutingPrefix string
	MTI           string
	// Bitmap holds one '0'/'1' per field, index n-1 for field n.
	Bitmap string
	// Source is the message text without any length header.
	Source       string
	DeclaredSize int
	Fields       *FieldSet
}

// Field returns the data of field n. The boolean is false when the field is
// absent.
func (m *Message) Field(n int) (string, bool) {
	f, ok := m.Fields.Get(n)
	return f.Data, ok
}

// HasField reports whether the bitmap flags field n.
func (m *Message) HasField(n int) bool {
	i := n - 1
	return i >= 0 && i < len(m.Bitmap) && m.Bitmap[i] == '1'
}

// Extended reports whether the message carries a secondary bitmap.
func (m *Message) Extended() bool {
	return len(m.Bitmap) > PrimaryBits
}

// BitmapHex returns the bitmap as uppercase hex.
func (m *Message) BitmapHex() string {
	h, err := BitsToHex(m.Bitmap)
	if err != nil {
		return ""
	}
	return h
}

// Values returns the field data as a value array indexed by field number,
// sized to the bitmap plus one. Building from it reproduces the message.
func (m *Message) Values() []string {
	values := make([]string, len(m.Bitmap)+1)
	for _, f := range m.Fields.All() {
		if f.Number < len(values) {
			values[f.Number] = f.Data
		}
	}
	return values
}

// WireBytes returns the 2-byte big-endian declared size followed by the
// source text, one byte per character.
func (m *Message) WireBytes() ([]byte, error) {
	return m.Frame(HeaderBinary)
}

// Frame returns the source text preceded by a length header of type htype.
func (m *Message) Frame(htype HeaderType) ([]byte, error) {
	size := m.DeclaredSize
	if htype == HeaderNone {
		size = len(m.Source)
	}
	out := make([]byte, htype.Len()+len(m.Source))
	n, err := WriteHeader(size, out, htype)
	if err != nil {
		return nil, fmt.Errorf("frame %s message: %w", m.Family, err)
	}
	copy(out[n:], m.Source)
	return out, nil
}

// String is the display form "{H,L}" followed by the source text.
func (m *Message) String() string {
	return FormatDisplayHeader(m.DeclaredSize) + m.Source
}

// LogValue implements slog.LogValuer.
func (m *Message) LogValue() slog.Value {
	fields := make([]slog.Attr, 0, m.Fields.Len())
	for _, f := range m.Fields.All() {
		fields = append(fields, slog.String(strconv.Itoa(f.Number), f.Data))
	}
	attrs := []slog.Attr{
		slog.String("family", m.Family),
		slog.String("bitmap", m.BitmapHex()),
		slog.Int("size", m.DeclaredSize),
		slog.Attr{Key: "fields", Value: slog.GroupValue(fields...)},
	}
	if m.MTI != "" {
		attrs = append(attrs,
			slog.String("prefix", m.RoutingPrefix),
			slog.String("mti", m.MTI))
	}
	return slog.GroupValue(attrs...)
}
