package iso8583

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"sync"
)

var (
	fixedRepr    = regexp.MustCompile(`^(\S+)\s+(\d+)$`)
	variableRepr = regexp.MustCompile(`^(\S+)\s+(\.+)(\d+)$`)
	trailingRepr = regexp.MustCompile(`\s+(\d+)$`)
)

// Compiler turns representation strings ("n 6", "an ..11", "b 64") into
// patterns. Each distinct string is compiled once and the pattern is shared
// by every field that declares it.
type Compiler struct {
	mu     sync.Mutex
	cache  map[string]Pattern
	logger *slog.Logger
}

// NewCompiler returns an empty compiler.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		cache:  make(map[string]Pattern),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile returns the pattern for repr. Representations that match no rule
// fail with ErrUnrecognizedRepresentation and are not cached.
func (c *Compiler) Compile(repr string) (Pattern, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.cache[repr]; ok {
		return p, nil
	}
	p, err := compileRepresentation(repr)
	if err != nil {
		return nil, err
	}
	c.cache[repr] = p
	c.logger.Debug("compiled representation", "representation", repr, "kind", p.Kind())
	return p, nil
}

// Len is the number of distinct representations compiled so far.
func (c *Compiler) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

func compileRepresentation(repr string) (Pattern, error) {
	if m := fixedRepr.FindStringSubmatch(repr); m != nil {
		n, err := reprNumber(repr, m[2])
		if err != nil {
			return nil, err
		}
		switch m[1] {
		case "n", "x+n":
			return FixedNumeric{Length: n}, nil
		case "b":
			return FixedBinary{Bits: n}, nil
		default:
			return FixedAlpha{Length: n}, nil
		}
	}

	if m := variableRepr.FindStringSubmatch(repr); m != nil {
		n, err := reprNumber(repr, m[3])
		if err != nil {
			return nil, err
		}
		return Variable{LengthDigits: len(m[2]), MaxLength: n}, nil
	}

	if m := trailingRepr.FindStringSubmatch(repr); m != nil {
		n, err := reprNumber(repr, m[1])
		if err != nil {
			return nil, err
		}
		return FixedAlpha{Length: n}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnrecognizedRepresentation, repr)
}

func reprNumber(repr, digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrUnrecognizedRepresentation, repr, err)
	}
	return n, nil
}
