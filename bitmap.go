package iso8583

import (
	"encoding/hex"
	"fmt"
)

const (
	primaryBitmapHex   = PrimaryBits / 4
	secondaryBitmapHex = SecondaryBits / 4
)

// HasExtension reports whether the first bitmap byte, given as two hex
// characters, flags a secondary bitmap (bit 0x80).
func HasExtension(firstByteHex string) (bool, error) {
	if len(firstByteHex) < 2 {
		return false, fmt.Errorf("%w: need 2 hex characters, got %d", ErrInvalidBitmap, len(firstByteHex))
	}
	var b [1]byte
	if _, err := hex.Decode(b[:], []byte(firstByteHex[:2])); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidBitmapHex, err)
	}
	return b[0]&0x80 != 0, nil
}

// BitmapWidth returns the number of hex characters occupied by the bitmap
// that starts with firstByteHex: 16 without extension, 32 with.
func BitmapWidth(firstByteHex string) (int, error) {
	ext, err := HasExtension(firstByteHex)
	if err != nil {
		return 0, err
	}
	if ext {
		return secondaryBitmapHex, nil
	}
	return primaryBitmapHex, nil
}

// HexToBits expands every hex nibble into four '0'/'1' characters, most
// significant bit first.
func HexToBits(hexStr string) (string, error) {
	bits := make([]byte, 0, len(hexStr)*4)
	for i := 0; i < len(hexStr); i++ {
		v, ok := nibble(hexStr[i])
		if !ok {
			return "", fmt.Errorf("%w: character %q at %d", ErrInvalidBitmapHex, hexStr[i], i)
		}
		for mask := byte(0x8); mask != 0; mask >>= 1 {
			if v&mask != 0 {
				bits = append(bits, '1')
			} else {
				bits = append(bits, '0')
			}
		}
	}
	return string(bits), nil
}

// BitsToHex packs a '0'/'1' string into uppercase hex. The length must be a
// multiple of four.
func BitsToHex(bits string) (string, error) {
	if len(bits)%4 != 0 {
		return "", fmt.Errorf("%w: %d bits is not a whole number of nibbles", ErrInvalidBitmap, len(bits))
	}
	out := make([]byte, len(bits)/4)
	for i := range out {
		var v byte
		for _, c := range []byte(bits[i*4 : i*4+4]) {
			v <<= 1
			switch c {
			case '1':
				v |= 1
			case '0':
			default:
				return "", fmt.Errorf("%w: character %q in bit string", ErrInvalidBitmap, c)
			}
		}
		out[i] = hexTableUpper[v]
	}
	return string(out), nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
