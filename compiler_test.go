package iso8583_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	iso8583 "github.com/mkadit/iso8583-df61"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		assertion string
		input     string
		output    iso8583.Pattern
	}{
		{"numeric", "n 6", iso8583.FixedNumeric{Length: 6}},
		{"signed amount is numeric", "x+n 8", iso8583.FixedNumeric{Length: 8}},
		{"binary", "b 64", iso8583.FixedBinary{Bits: 64}},
		{"alpha", "an 12", iso8583.FixedAlpha{Length: 12}},
		{"any other type is alpha", "ans 40", iso8583.FixedAlpha{Length: 40}},
		{"tabs separate", "n\t4", iso8583.FixedNumeric{Length: 4}},
		{"two dots", "n ..19", iso8583.Variable{LengthDigits: 2, MaxLength: 19}},
		{"three dots", "ans ...999", iso8583.Variable{LengthDigits: 3, MaxLength: 999}},
		{"one dot", "z .9", iso8583.Variable{LengthDigits: 1, MaxLength: 9}},
		{"fallback with spaced type", "a n 5", iso8583.FixedAlpha{Length: 5}},
		{"fallback without type", " 7", iso8583.FixedAlpha{Length: 7}},
	}
	c := iso8583.NewCompiler()
	for _, cc := range cases {
		t.Run(cc.assertion, func(t *testing.T) {
			p, err := c.Compile(cc.input)
			require.NoError(t, err)
			require.Equal(t, cc.output, p)
		})
	}
}

func TestCompileUnrecognized(t *testing.T) {
	c := iso8583.NewCompiler()
	for _, input := range []string{"", "n", "n ..", "n 12x", "12"} {
		t.Run(input, func(t *testing.T) {
			p, err := c.Compile(input)
			require.ErrorIs(t, err, iso8583.ErrUnrecognizedRepresentation)
			require.Nil(t, p)
		})
	}
	require.Equal(t, 0, c.Len())
}

func TestCompileCachesOncePerRepresentation(t *testing.T) {
	c := iso8583.NewCompiler()
	_, err := c.Compile("n 6")
	require.NoError(t, err)
	_, err = c.Compile("n 6")
	require.NoError(t, err)
	_, err = c.Compile("an 6")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestCompileConcurrent(t *testing.T) {
	c := iso8583.NewCompiler()
	reprs := []string{"n 6", "n 12", "an ..11", "ans ...999", "b 64"}

	var wg sync.WaitGroup
	results := make([][]iso8583.Pattern, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, r := range reprs {
				p, err := c.Compile(r)
				if err == nil {
					results[i] = append(results[i], p)
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(reprs), c.Len())
	for _, res := range results {
		require.Equal(t, results[0], res)
	}
}
