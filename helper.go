package iso8583

const hexTableUpper = "0123456789ABCDEF"

// encodeHexUpper converts src to uppercase hex and writes it to dst.
func encodeHexUpper(dst, src []byte) {
	for i, v := range src {
		dst[i*2] = hexTableUpper[v>>4]
		dst[i*2+1] = hexTableUpper[v&0x0f]
	}
}

// padLeft right-justifies s in a field of width characters.
func padLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	buf := make([]byte, width)
	n := width - len(s)
	for i := 0; i < n; i++ {
		buf[i] = pad
	}
	copy(buf[n:], s)
	return string(buf)
}

// padRight left-justifies s in a field of width characters.
func padRight(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	buf := make([]byte, width)
	copy(buf, s)
	for i := len(s); i < width; i++ {
		buf[i] = pad
	}
	return string(buf)
}
