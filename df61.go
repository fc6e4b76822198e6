package iso8583

import (
	"fmt"
	"log/slog"
)

// DF61Codec handles the private sub-message carried in main field 61:
//
//	bitmapHex(16) field-data...
//
// There is no header, routing prefix or MTI, and only fields 2..64 exist.
type DF61Codec struct {
	registry *Registry
	cfg      codecConfig
}

// NewDF61Codec returns a codec that resolves fields through reg.
func NewDF61Codec(reg *Registry, opts ...CodecOption) *DF61Codec {
	return &DF61Codec{registry: reg, cfg: newCodecConfig(opts)}
}

// Registry returns the field table the codec uses.
func (c *DF61Codec) Registry() *Registry { return c.registry }

// Parse decodes a DF61 message. The first bitmap bit is ignored.
func (c *DF61Codec) Parse(text string) (*Message, error) {
	if len(text) > maxWireLength {
		err := fmt.Errorf("%w: %d characters", ErrMessageTooLong, len(text))
		return nil, c.fail("parse", slog.Int("length", len(text)), err)
	}
	st := newParseState(text)
	if err := readBitmap(st, PrimaryBits/4); err != nil {
		return nil, c.fail("parse", slog.Int("length", len(text)), err)
	}
	if err := parseFields(st, c.registry); err != nil {
		return nil, c.fail("parse", slog.Int("length", len(text)), err)
	}
	return &Message{
		Family:       c.registry.Family(),
		Bitmap:       st.Bitmap(),
		Source:       text,
		DeclaredSize: len(text),
		Fields:       st.Fields(),
	}, nil
}

// Build encodes values, indexed by field number. Values beyond field 64 are
// rejected.
func (c *DF61Codec) Build(values []string) (*Message, error) {
	msg, err := c.build(values)
	if err != nil {
		return nil, c.fail("build", slog.Int("values", len(values)), err)
	}
	return msg, nil
}

func (c *DF61Codec) build(values []string) (*Message, error) {
	if top := highestPopulated(values); top > PrimaryBits {
		return nil, &FieldError{Field: top, Err: ErrInvalidFieldNumber}
	}
	st := newBuildState(false)
	defer st.release()
	if err := buildFields(st, c.registry, values, PrimaryBits); err != nil {
		return nil, err
	}
	bitmapHex, err := BitsToHex(st.Bitmap())
	if err != nil {
		return nil, err
	}
	source := bitmapHex + string(st.buf)
	if len(source) > maxWireLength {
		return nil, fmt.Errorf("%w: %d characters", ErrMessageTooLong, len(source))
	}
	return &Message{
		Family:       c.registry.Family(),
		Bitmap:       st.Bitmap(),
		Source:       source,
		DeclaredSize: len(source),
		Fields:       st.Fields(),
	}, nil
}

func (c *DF61Codec) fail(op string, size slog.Attr, err error) error {
	c.cfg.logger.Error(op+" failed",
		slog.String("family", c.registry.Family()),
		size,
		slog.Any("error", err))
	return err
}

var _ Parser = (*DF61Codec)(nil)
