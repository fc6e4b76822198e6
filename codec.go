package iso8583

import (
	"fmt"
	"log/slog"
)

// Parser turns message text into a Message.
type Parser interface {
	Parse(text string) (*Message, error)
}

// MainCodec parses and builds main family messages:
//
//	[{H,L}] routingPrefix(8) mti(4) bitmapHex(16|32) field-data...
//
// A MainCodec holds only read-only state and is safe for concurrent use.
type MainCodec struct {
	registry *Registry
	cfg      codecConfig
}

// NewMainCodec returns a codec that resolves fields through reg.
func NewMainCodec(reg *Registry, opts ...CodecOption) *MainCodec {
	return &MainCodec{registry: reg, cfg: newCodecConfig(opts)}
}

// Registry returns the field table the codec uses.
func (c *MainCodec) Registry() *Registry { return c.registry }

// Parse decodes text. With WithHeader enabled the text must start with a
// "{H,L}" size prefix.
func (c *MainCodec) Parse(text string) (*Message, error) {
	size := -1
	body := text
	if c.cfg.header {
		var err error
		size, body, err = splitDisplayHeader(text)
		if err != nil {
			return nil, c.fail("parse", slog.Int("length", len(text)), err)
		}
	}
	msg, err := c.parseBody(body, size)
	if err != nil {
		return nil, c.fail("parse", slog.Int("length", len(text)), err)
	}
	return msg, nil
}

// ParseWire decodes wire bytes framed by the configured length header
// (2-byte big-endian by default), the inverse of Message.WireBytes.
func (c *MainCodec) ParseWire(data []byte) (*Message, error) {
	htype := c.cfg.wireHeader
	size, err := ReadHeader(data, htype)
	if err != nil {
		return nil, c.fail("parse wire", slog.Int("length", len(data)), err)
	}
	payload := data[htype.Len():]
	if len(payload) < size {
		err := fmt.Errorf("%w: header declares %d bytes, have %d", ErrBufferUnderrun, size, len(payload))
		return nil, c.fail("parse wire", slog.Int("length", len(data)), err)
	}
	msg, err := c.parseBody(string(payload[:size]), size)
	if err != nil {
		return nil, c.fail("parse wire", slog.Int("length", len(data)), err)
	}
	return msg, nil
}

func (c *MainCodec) parseBody(body string, size int) (*Message, error) {
	if size < 0 && len(body) > maxWireLength {
		return nil, fmt.Errorf("%w: %d characters", ErrMessageTooLong, len(body))
	}
	st := newParseState(body)

	prefix, err := st.take(RoutingPrefixLength)
	if err != nil {
		return nil, fmt.Errorf("routing prefix: %w", err)
	}
	mti, err := st.take(MTILength)
	if err != nil {
		return nil, fmt.Errorf("mti: %w", err)
	}

	first, err := st.peek(2)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}
	width, err := BitmapWidth(first)
	if err != nil {
		return nil, err
	}
	if err := readBitmap(st, width); err != nil {
		return nil, err
	}
	if err := parseFields(st, c.registry); err != nil {
		return nil, err
	}

	if size < 0 {
		size = len(body)
	}
	return &Message{
		Family:        c.registry.Family(),
		RoutingPrefix: prefix,
		MTI:           mti,
		Bitmap:        st.Bitmap(),
		Source:        body,
		DeclaredSize:  size,
		Fields:        st.Fields(),
	}, nil
}

// Build encodes values, a value array indexed by field number, behind the
// routing prefix and MTI. Empty values are absent fields. Whether a secondary
// bitmap is added follows the codec's BitmapSelection.
func (c *MainCodec) Build(prefix, mti string, values []string) (*Message, error) {
	msg, err := c.build(prefix, mti, values)
	if err != nil {
		return nil, c.fail("build", slog.Int("values", len(values)), err)
	}
	return msg, nil
}

func (c *MainCodec) build(prefix, mti string, values []string) (*Message, error) {
	if len(prefix) != RoutingPrefixLength {
		return nil, fmt.Errorf("%w: %q is not %d characters", ErrInvalidRoutingPrefix, prefix, RoutingPrefixLength)
	}
	if len(mti) != MTILength {
		return nil, fmt.Errorf("%w: %q is not %d characters", ErrInvalidMTI, mti, MTILength)
	}
	extended, err := c.selectBitmap(values)
	if err != nil {
		return nil, err
	}
	width := PrimaryBits
	if extended {
		width = SecondaryBits
	}

	st := newBuildState(extended)
	defer st.release()
	if err := buildFields(st, c.registry, values, width); err != nil {
		return nil, err
	}
	bitmapHex, err := BitsToHex(st.Bitmap())
	if err != nil {
		return nil, err
	}

	source := prefix + mti + bitmapHex + string(st.buf)
	if len(source) > maxWireLength {
		return nil, fmt.Errorf("%w: %d characters", ErrMessageTooLong, len(source))
	}
	return &Message{
		Family:        c.registry.Family(),
		RoutingPrefix: prefix,
		MTI:           mti,
		Bitmap:        st.Bitmap(),
		Source:        source,
		DeclaredSize:  len(source),
		Fields:        st.Fields(),
	}, nil
}

func (c *MainCodec) selectBitmap(values []string) (bool, error) {
	switch c.cfg.selection {
	case SelectByHighestField:
		top := highestPopulated(values)
		if top > SecondaryBits {
			return false, &FieldError{Field: top, Err: ErrInvalidFieldNumber}
		}
		return top > PrimaryBits, nil
	default:
		switch {
		case len(values) <= PrimaryValues:
			return false, nil
		case len(values) <= SecondaryValues:
			return true, nil
		}
		return false, fmt.Errorf("%w: %d values exceed a %d-bit bitmap",
			ErrInvalidFieldNumber, len(values), SecondaryBits)
	}
}

func (c *MainCodec) fail(op string, size slog.Attr, err error) error {
	c.cfg.logger.Error(op+" failed",
		slog.String("family", c.registry.Family()),
		size,
		slog.Any("error", err))
	return err
}

func highestPopulated(values []string) int {
	for n := len(values) - 1; n >= MinFieldNumber; n-- {
		if values[n] != "" {
			return n
		}
	}
	return 0
}

// readBitmap consumes width hex characters and installs the decoded bits.
func readBitmap(st *State, width int) error {
	bitmapHex, err := st.take(width)
	if err != nil {
		return fmt.Errorf("bitmap: %w", err)
	}
	bits, err := HexToBits(bitmapHex)
	if err != nil {
		return err
	}
	st.bitmap = []byte(bits)
	return nil
}

// parseFields reads every field the bitmap flags, in ascending order.
func parseFields(st *State, reg *Registry) error {
	for n := MinFieldNumber; n <= len(st.bitmap); n++ {
		if !st.HasField(n) {
			continue
		}
		p, err := reg.pattern(n)
		if err != nil {
			return err
		}
		if err := p.Parse(st, n); err != nil {
			return &FieldError{Field: n, Err: err}
		}
	}
	return nil
}

// buildFields appends fields 2..width; bit 1 is already set by the caller.
func buildFields(st *State, reg *Registry, values []string, width int) error {
	for n := MinFieldNumber; n <= width; n++ {
		var v string
		if n < len(values) {
			v = values[n]
		}
		if v == "" {
			st.skip()
			continue
		}
		p, err := reg.pattern(n)
		if err != nil {
			return err
		}
		if err := p.Build(st, n, v); err != nil {
			return &FieldError{Field: n, Err: err}
		}
	}
	return nil
}

var _ Parser = (*MainCodec)(nil)
