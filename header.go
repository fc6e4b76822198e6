package iso8583

import (
	"fmt"
	"regexp"
	"strconv"
)

// HeaderType defines how a message length header is encoded in front of
// the wire bytes.
type HeaderType int

const (
	HeaderNone   HeaderType = iota
	HeaderBinary            // 2-byte big-endian length
	HeaderASCII             // 4-digit ASCII decimal length, e.g. "0048"
	HeaderHex               // 4-char ASCII hex length, e.g. "0030"
)

// Len is the number of bytes the header occupies.
func (h HeaderType) Len() int {
	switch h {
	case HeaderBinary:
		return 2
	case HeaderASCII, HeaderHex:
		return 4
	}
	return 0
}

// WriteHeader writes msgLen into buf according to htype and returns the
// number of bytes written.
func WriteHeader(msgLen int, buf []byte, htype HeaderType) (int, error) {
	if msgLen < 0 {
		return 0, ErrInvalidLength
	}
	switch htype {
	case HeaderNone:
		return 0, nil

	case HeaderBinary:
		if len(buf) < 2 {
			return 0, ErrBufferUnderrun
		}
		if msgLen > maxWireLength {
			return 0, ErrMessageTooLong
		}
		buf[0] = byte(msgLen >> 8)
		buf[1] = byte(msgLen & 0xFF)
		return 2, nil

	case HeaderASCII:
		if len(buf) < 4 {
			return 0, ErrBufferUnderrun
		}
		if msgLen > 9999 {
			return 0, ErrMessageTooLong
		}
		buf[0] = byte('0' + (msgLen/1000)%10)
		buf[1] = byte('0' + (msgLen/100)%10)
		buf[2] = byte('0' + (msgLen/10)%10)
		buf[3] = byte('0' + msgLen%10)
		return 4, nil

	case HeaderHex:
		if len(buf) < 4 {
			return 0, ErrBufferUnderrun
		}
		if msgLen > maxWireLength {
			return 0, ErrMessageTooLong
		}
		encodeHexUpper(buf[:4], []byte{byte(msgLen >> 8), byte(msgLen)})
		return 4, nil
	}
	return 0, fmt.Errorf("%w: unknown header type %d", ErrMalformedHeader, htype)
}

// ReadHeader reads a message length from the start of buf.
func ReadHeader(buf []byte, htype HeaderType) (int, error) {
	if len(buf) < htype.Len() {
		return 0, fmt.Errorf("%w: %d byte header, have %d", ErrBufferUnderrun, htype.Len(), len(buf))
	}
	switch htype {
	case HeaderNone:
		return len(buf), nil

	case HeaderBinary:
		return int(buf[0])<<8 | int(buf[1]), nil

	case HeaderASCII:
		n, err := parseDecimal(string(buf[:4]))
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		return n, nil

	case HeaderHex:
		n, err := strconv.ParseUint(string(buf[:4]), 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: unknown header type %d", ErrMalformedHeader, htype)
}

var displayHeader = regexp.MustCompile(`^\{([^,]*),([^}]*)\}(.*)$`)

// FormatDisplayHeader renders size as "{H,L}", the two length bytes in
// decimal.
func FormatDisplayHeader(size int) string {
	return "{" + strconv.Itoa(size>>8&0xFF) + "," + strconv.Itoa(size&0xFF) + "}"
}

// splitDisplayHeader strips a "{H,L}" prefix and returns H*256+L and the
// body, cut to that size when it is longer. A body shorter than the
// declared size is an underrun.
func splitDisplayHeader(text string) (int, string, error) {
	m := displayHeader.FindStringSubmatch(text)
	if m == nil {
		return 0, "", fmt.Errorf("%w: expected {H,L} prefix", ErrMalformedHeader)
	}
	hi, err := headerByte(m[1])
	if err != nil {
		return 0, "", err
	}
	lo, err := headerByte(m[2])
	if err != nil {
		return 0, "", err
	}
	size := hi*256 + lo
	body := m[3]
	if len(body) < size {
		return 0, "", fmt.Errorf("%w: header declares %d bytes, have %d", ErrBufferUnderrun, size, len(body))
	}
	if len(body) > size {
		body = body[:size]
	}
	return size, body, nil
}

func headerByte(s string) (int, error) {
	n, err := parseDecimal(s)
	if err != nil || n > 0xFF {
		return 0, fmt.Errorf("%w: %q is not a byte value", ErrMalformedHeader, s)
	}
	return n, nil
}
