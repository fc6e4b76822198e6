package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	iso8583 "github.com/mkadit/iso8583-df61"
)

func TestApplyAssignments(t *testing.T) {
	b := iso8583.NewBuilder(iso8583.PrimaryBits)
	defer b.Release()
	require.NoError(t, applyAssignments(b, []string{"3=990174", "43=Café", "11=5=5"}))
	values, err := b.Values()
	require.NoError(t, err)
	require.Equal(t, "990174", values[3])
	require.Equal(t, "Caf\xe9", values[43])
	require.Equal(t, "5=5", values[11])

	require.Error(t, applyAssignments(b, []string{"3"}))
	require.Error(t, applyAssignments(b, []string{"x=1"}))
	require.Error(t, applyAssignments(b, []string{"3=€"}))
}

func TestWriteText(t *testing.T) {
	codecs, err := iso8583.NewCodecs(nil)
	require.NoError(t, err)
	msg, err := codecs.Main.Parse("082288880800822000000000000004000000000000000128132501111111071")
	require.NoError(t, err)

	view, err := newMessageView(msg, codecs.Main.Registry())
	require.NoError(t, err)
	require.Equal(t, "0800", view.MTI)
	require.Len(t, view.Fields, 3)
	require.Equal(t, "Network Management Information Code", view.Fields[2].Name)

	var buf bytes.Buffer
	writeText(&buf, view, "")
	require.Contains(t, buf.String(), "[071]")

	buf.Reset()
	require.NoError(t, writeJSON(&buf, view))
	require.Contains(t, buf.String(), `"mti": "0800"`)
}
