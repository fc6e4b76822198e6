package iso8583_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	iso8583 "github.com/mkadit/iso8583-df61"
)

func TestEncodeText(t *testing.T) {
	out, err := iso8583.EncodeText("café")
	require.NoError(t, err)
	require.Equal(t, "caf\xe9", out)
	require.Len(t, out, 4)

	back, err := iso8583.DecodeText(out)
	require.NoError(t, err)
	require.Equal(t, "café", back)

	_, err = iso8583.EncodeText("€")
	require.Error(t, err)
}

func TestEncodedTextKeepsFieldWidths(t *testing.T) {
	codecs := newCodecs(t)
	name, err := iso8583.EncodeText("Café Zürich")
	require.NoError(t, err)

	values := make([]string, iso8583.PrimaryValues)
	values[43] = name
	msg, err := codecs.Main.Build("88880822", "0100", values)
	require.NoError(t, err)
	require.Equal(t, 8+4+16+40, msg.DeclaredSize)

	back, err := codecs.Main.Parse(msg.Source)
	require.NoError(t, err)
	data, _ := back.Field(43)
	decoded, err := iso8583.DecodeText(data)
	require.NoError(t, err)
	require.Equal(t, "Café Zürich"+"                             ", decoded)
}
