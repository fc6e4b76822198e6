package iso8583

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	cases := []struct {
		assertion string
		htype     HeaderType
		size      int
		encoded   []byte
	}{
		{"binary", HeaderBinary, 215, []byte{0x00, 0xD7}},
		{"binary two bytes", HeaderBinary, 0x0102, []byte{0x01, 0x02}},
		{"ascii", HeaderASCII, 63, []byte("0063")},
		{"hex", HeaderHex, 215, []byte("00D7")},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			buf := make([]byte, 4)
			n, err := WriteHeader(c.size, buf, c.htype)
			require.NoError(t, err)
			require.Equal(t, c.htype.Len(), n)
			require.Equal(t, c.encoded, buf[:n])

			size, err := ReadHeader(buf[:n], c.htype)
			require.NoError(t, err)
			require.Equal(t, c.size, size)
		})
	}
}

func TestHeaderErrors(t *testing.T) {
	_, err := WriteHeader(0x10000, make([]byte, 2), HeaderBinary)
	require.ErrorIs(t, err, ErrMessageTooLong)
	_, err = WriteHeader(10000, make([]byte, 4), HeaderASCII)
	require.ErrorIs(t, err, ErrMessageTooLong)
	_, err = WriteHeader(10, make([]byte, 1), HeaderBinary)
	require.ErrorIs(t, err, ErrBufferUnderrun)

	_, err = ReadHeader([]byte("00a1"), HeaderASCII)
	require.ErrorIs(t, err, ErrMalformedHeader)
	_, err = ReadHeader([]byte("00G1"), HeaderHex)
	require.ErrorIs(t, err, ErrMalformedHeader)
	_, err = ReadHeader([]byte{0x01}, HeaderBinary)
	require.ErrorIs(t, err, ErrBufferUnderrun)
}

func TestDisplayHeader(t *testing.T) {
	require.Equal(t, "{0,215}", FormatDisplayHeader(215))
	require.Equal(t, "{1,44}", FormatDisplayHeader(300))

	size, body, err := splitDisplayHeader("{0,3}abc")
	require.NoError(t, err)
	require.Equal(t, 3, size)
	require.Equal(t, "abc", body)

	_, _, err = splitDisplayHeader("{1,44}abc")
	require.ErrorIs(t, err, ErrBufferUnderrun)

	size, body, err = splitDisplayHeader("{0,2}abcdef")
	require.NoError(t, err)
	require.Equal(t, 2, size)
	require.Equal(t, "ab", body)

	for _, bad := range []string{"abc", "{0,}abc", "{,1}abc", "{-1,1}abc", "{0,300}abc", "{0 1}abc"} {
		_, _, err := splitDisplayHeader(bad)
		require.ErrorIs(t, err, ErrMalformedHeader, bad)
	}
}
