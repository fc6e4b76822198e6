package iso8583_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	iso8583 "github.com/mkadit/iso8583-df61"
)

func TestNewRegistry(t *testing.T) {
	c := iso8583.NewCompiler()
	reg, err := iso8583.NewRegistry("test", []iso8583.FieldDefinition{
		{Number: 3, Representation: "n 6", Name: "Processing Code"},
		{Number: 2, Representation: "n ..19", Name: "PAN"},
		{Number: 70, Representation: "n 3", Name: "Network Management Code"},
	}, c)
	require.NoError(t, err)
	require.Equal(t, "test", reg.Family())
	require.Equal(t, 3, reg.Len())

	def, ok := reg.ByPosition(1)
	require.True(t, ok)
	require.Equal(t, 2, def.Number)
	require.Equal(t, iso8583.Variable{LengthDigits: 2, MaxLength: 19}, def.Pattern())

	def, ok = reg.ByNumber(70)
	require.True(t, ok)
	require.Equal(t, "Network Management Code", def.Name)
	require.Equal(t, iso8583.FixedNumeric{Length: 3}, def.Pattern())

	_, ok = reg.ByNumber(4)
	require.False(t, ok)
	_, ok = reg.ByPosition(3)
	require.False(t, ok)
	_, ok = reg.ByPosition(-1)
	require.False(t, ok)

	// one pattern per distinct representation
	require.Equal(t, 3, c.Len())
}

func TestNewRegistryFailsClosed(t *testing.T) {
	cases := []struct {
		assertion string
		defs      []iso8583.FieldDefinition
		field     int
		err       error
	}{
		{
			"unrecognized representation",
			[]iso8583.FieldDefinition{{Number: 2, Representation: "n ..19"}, {Number: 3, Representation: "numeric"}},
			3,
			iso8583.ErrUnrecognizedRepresentation,
		},
		{
			"field one is reserved",
			[]iso8583.FieldDefinition{{Number: 1, Representation: "b 64"}},
			1,
			iso8583.ErrInvalidFieldNumber,
		},
		{
			"field above 192",
			[]iso8583.FieldDefinition{{Number: 193, Representation: "n 1"}},
			193,
			iso8583.ErrInvalidFieldNumber,
		},
		{
			"duplicate number",
			[]iso8583.FieldDefinition{{Number: 4, Representation: "n 12"}, {Number: 4, Representation: "n 6"}},
			4,
			iso8583.ErrDuplicateField,
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			reg, err := iso8583.NewRegistry("bad", c.defs, iso8583.NewCompiler())
			require.Nil(t, reg)
			require.ErrorIs(t, err, c.err)

			var ce *iso8583.CatalogError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, "bad", ce.Family)
			require.Equal(t, c.field, ce.Field)
		})
	}
}

func TestDefaultRegistries(t *testing.T) {
	c := iso8583.NewCompiler()
	common, err := iso8583.NewRegistry(iso8583.FamilyCommon, iso8583.DefaultCommonFields, c)
	require.NoError(t, err)
	require.Equal(t, 127, common.Len())
	for n := 2; n <= 128; n++ {
		def, ok := common.ByNumber(n)
		require.True(t, ok, "field %d", n)
		require.NotNil(t, def.Pattern(), "field %d", n)
	}

	df61, err := iso8583.NewRegistry(iso8583.FamilyDF61, iso8583.DefaultDF61Fields, c)
	require.NoError(t, err)
	def, ok := df61.ByNumber(35)
	require.True(t, ok)
	require.Equal(t, iso8583.FixedNumeric{Length: 20}, def.Pattern())
}
