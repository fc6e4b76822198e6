package iso8583

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Message text is single-byte protocol text: every character is one byte
// and offsets count bytes. EncodeText and DecodeText convert between that
// form (ISO 8859-1) and UTF-8 for callers that hold UTF-8 strings.

// EncodeText converts UTF-8 s to protocol text. Runes outside ISO 8859-1
// are an error.
func EncodeText(s string) (string, error) {
	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("encode protocol text: %w", err)
	}
	return out, nil
}

// DecodeText converts protocol text to UTF-8.
func DecodeText(s string) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return "", fmt.Errorf("decode protocol text: %w", err)
	}
	return out, nil
}
