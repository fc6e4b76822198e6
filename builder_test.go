package iso8583_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	iso8583 "github.com/mkadit/iso8583-df61"
)

func TestBuilder(t *testing.T) {
	codecs := newCodecs(t)

	sb := iso8583.NewBuilder(iso8583.PrimaryBits)
	defer sb.Release()
	subValues, err := sb.Field(3, "00000001").
		Field(4, "001").
		Field(8, "20150128183005").
		Field(10, "7111680123456789").
		Field(11, "55").
		Field(35, "86000000000000000001").
		Values()
	require.NoError(t, err)
	sub, err := codecs.DF61.Build(subValues)
	require.NoError(t, err)

	b := iso8583.NewBuilder(iso8583.PrimaryBits)
	defer b.Release()
	values, err := b.PAN("0000000000000000").
		ProcessingCode("990174").
		Amount("000000000055").
		Field(7, "0128183005").
		STAN("555555").
		Field(32, "st00000001").
		Field(37, "502818555555").
		Field(41, "00000001").
		Field(42, "000000022555003").
		Embed(iso8583.PrivateField, sub).
		Values()
	require.NoError(t, err)
	require.Len(t, values, iso8583.PrimaryValues)

	msg, err := codecs.Main.Build("88880822", "0100", values)
	require.NoError(t, err)
	require.Equal(t, sale0100, msg.String())
}

func TestBuilderErrors(t *testing.T) {
	cases := []struct {
		assertion string
		build     func(*iso8583.Builder) *iso8583.Builder
		err       error
	}{
		{"field one", func(b *iso8583.Builder) *iso8583.Builder { return b.Field(1, "x") }, iso8583.ErrInvalidFieldNumber},
		{"beyond primary", func(b *iso8583.Builder) *iso8583.Builder { return b.Field(70, "071") }, iso8583.ErrInvalidFieldNumber},
		{"first error wins", func(b *iso8583.Builder) *iso8583.Builder {
			return b.Field(3, "1").Field(0, "x").Field(65, "y")
		}, iso8583.ErrInvalidFieldNumber},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			b := iso8583.NewBuilder(iso8583.PrimaryBits)
			defer b.Release()
			values, err := c.build(b).Values()
			require.Nil(t, values)
			require.ErrorIs(t, err, c.err)
		})
	}

	b := iso8583.NewBuilder(100)
	_, err := b.Values()
	require.ErrorIs(t, err, iso8583.ErrInvalidBitmap)
	b.Release()

	b = iso8583.NewBuilder(iso8583.SecondaryBits)
	values, err := b.Field(70, "071").Embed(61, nil).Values()
	require.Error(t, err)
	require.Nil(t, values)
	b.Release()
}

func TestBuilderSecondary(t *testing.T) {
	codecs := newCodecs(t)
	b := iso8583.NewBuilder(iso8583.SecondaryBits)
	defer b.Release()
	values, err := b.Field(7, "0128132501").Field(11, "111111").Field(70, "071").Values()
	require.NoError(t, err)
	msg, err := codecs.Main.Build("88880822", "0810", values)
	require.NoError(t, err)
	require.Equal(t, signOn0810, msg.String())
}
