package iso8583

import (
	"fmt"
	"sync"
)

// Builder pool for reuse
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{
			values: make([]string, 0, SecondaryValues),
			errors: make([]error, 0, 4),
		}
	},
}

// Builder assembles the value array passed to MainCodec.Build or
// DF61Codec.Build. Errors accumulate and the first one is returned by Values.
type Builder struct {
	values []string
	errors []error
}

// NewBuilder returns a builder for a bitmap of width bits, PrimaryBits or
// SecondaryBits.
func NewBuilder(width int) *Builder {
	b := builderPool.Get().(*Builder)
	b.errors = b.errors[:0]
	if width != PrimaryBits && width != SecondaryBits {
		b.errors = append(b.errors, fmt.Errorf("%w: bitmap width %d", ErrInvalidBitmap, width))
		width = PrimaryBits
	}
	b.values = b.values[:0]
	for i := 0; i <= width; i++ {
		b.values = append(b.values, "")
	}
	return b
}

// Release returns the builder to the pool
func (b *Builder) Release() {
	b.values = b.values[:0]
	b.errors = b.errors[:0]
	builderPool.Put(b)
}

// Field sets the value of field n.
func (b *Builder) Field(n int, value string) *Builder {
	if n < MinFieldNumber || n >= len(b.values) {
		b.errors = append(b.errors, &FieldError{Field: n, Err: ErrInvalidFieldNumber})
		return b
	}
	b.values[n] = value
	return b
}

// Embed sets field n to the source text of a built sub-message.
func (b *Builder) Embed(n int, msg *Message) *Builder {
	if msg == nil {
		b.errors = append(b.errors, &FieldError{Field: n, Err: fmt.Errorf("nil message")})
		return b
	}
	return b.Field(n, msg.Source)
}

func (b *Builder) PAN(pan string) *Builder {
	return b.Field(2, pan)
}

func (b *Builder) ProcessingCode(code string) *Builder {
	return b.Field(3, code)
}

func (b *Builder) Amount(amount string) *Builder {
	return b.Field(4, amount)
}

func (b *Builder) STAN(stan string) *Builder {
	return b.Field(11, stan)
}

// Values returns a copy of the value array.
func (b *Builder) Values() ([]string, error) {
	if len(b.errors) > 0 {
		return nil, b.errors[0]
	}
	out := make([]string, len(b.values))
	copy(out, b.values)
	return out, nil
}
