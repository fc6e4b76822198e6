package iso8583

import "log/slog"

type codecConfig struct {
	header     bool
	selection  BitmapSelection
	wireHeader HeaderType
	logger     *slog.Logger
}

func newCodecConfig(opts []CodecOption) codecConfig {
	cfg := codecConfig{
		selection:  SelectByArrayLength,
		wireHeader: HeaderBinary,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// CodecOption configures a MainCodec or DF61Codec.
type CodecOption func(*codecConfig)

// WithHeader makes MainCodec.Parse expect a "{H,L}" size prefix.
func WithHeader(enabled bool) CodecOption {
	return func(c *codecConfig) {
		c.header = enabled
	}
}

// WithBitmapSelection sets how MainCodec.Build decides on a secondary bitmap.
func WithBitmapSelection(sel BitmapSelection) CodecOption {
	return func(c *codecConfig) {
		c.selection = sel
	}
}

// WithWireHeader sets the length header MainCodec.ParseWire expects.
func WithWireHeader(htype HeaderType) CodecOption {
	return func(c *codecConfig) {
		c.wireHeader = htype
	}
}

// WithLogger sets the logger used to report parse and build failures.
func WithLogger(logger *slog.Logger) CodecOption {
	return func(c *codecConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithCompilerLogger sets the logger for compile and bind events.
func WithCompilerLogger(logger *slog.Logger) CompilerOption {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency sets the maximum number of messages parsed at once.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithErrorHandler sets a callback invoked for every failed message.
func WithErrorHandler(handler func(error)) ProcessorOption {
	return func(p *Processor) {
		p.errorHandler = handler
	}
}

// WithProcessorLogger sets the processor's logger.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}
