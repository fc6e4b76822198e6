package iso8583

import "fmt"

// Codecs bundles the main and DF61 codecs built from one catalog with a
// shared Compiler.
type Codecs struct {
	Compiler *Compiler
	Main     *MainCodec
	DF61     *DF61Codec
}

// NewCodecs binds the Common and DF61 families of cat. A nil catalog means
// DefaultCatalog. Options apply to both codecs.
func NewCodecs(cat *Catalog, opts ...CodecOption) (*Codecs, error) {
	if cat == nil {
		cat = DefaultCatalog()
	}
	cfg := newCodecConfig(opts)
	compiler := NewCompiler(WithCompilerLogger(cfg.logger))

	mainReg, err := cat.Registry(FamilyCommon, PeerCommon, compiler)
	if err != nil {
		return nil, err
	}
	df61Reg, err := cat.Registry(FamilyDF61, PeerCommon, compiler)
	if err != nil {
		return nil, err
	}
	return &Codecs{
		Compiler: compiler,
		Main:     NewMainCodec(mainReg, opts...),
		DF61:     NewDF61Codec(df61Reg, opts...),
	}, nil
}

// BuildNested builds a DF61 message from df61Values and a main message that
// carries it in field 61. values is not modified.
func (c *Codecs) BuildNested(prefix, mti string, values, df61Values []string) (*Message, *Message, error) {
	sub, err := c.DF61.Build(df61Values)
	if err != nil {
		return nil, nil, fmt.Errorf("build DF61: %w", err)
	}
	size := len(values)
	if size <= PrivateField {
		size = PrimaryValues
	}
	merged := make([]string, size)
	copy(merged, values)
	merged[PrivateField] = sub.Source

	msg, err := c.Main.Build(prefix, mti, merged)
	if err != nil {
		return nil, nil, err
	}
	return msg, sub, nil
}

// ParseNested parses a main message and, when field 61 is present, its DF61
// sub-message. The sub-message is nil if field 61 is absent.
func (c *Codecs) ParseNested(text string) (*Message, *Message, error) {
	msg, err := c.Main.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	data, ok := msg.Field(PrivateField)
	if !ok {
		return msg, nil, nil
	}
	sub, err := c.DF61.Parse(data)
	if err != nil {
		return nil, nil, &FieldError{Field: PrivateField, Err: err}
	}
	return msg, sub, nil
}
