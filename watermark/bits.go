package watermark

import (
	"fmt"
	"unicode/utf8"
)

const byteWidth = 8

// ToBits returns the UTF-8 encoding of text as a bit sequence, most significant
// bit first within each byte.  The empty string gives an empty sequence.
func ToBits(text string) []bool {
	bits := make([]bool, 0, len(text)*byteWidth)
	for i := 0; i < len(text); i++ {
		bits = appendByte(bits, text[i])
	}
	return bits
}

func appendByte(bits []bool, b byte) []bool {
	for shift := byteWidth - 1; shift >= 0; shift-- {
		bits = append(bits, b&(1<<uint(shift)) != 0)
	}
	return bits
}

// FromBits is the inverse of ToBits.  It fails with ErrMalformedBits if the
// sequence is not a whole number of bytes, or if the bytes are not valid UTF-8.
func FromBits(bits []bool) (string, error) {
	if len(bits)%byteWidth != 0 {
		return "", fmt.Errorf("%w: %d bits is not a whole number of bytes", ErrMalformedBits, len(bits))
	}
	buf := make([]byte, len(bits)/byteWidth)
	for i := range buf {
		var b byte
		for _, bit := range bits[i*byteWidth : (i+1)*byteWidth] {
			b <<= 1
			if bit {
				b |= 1
			}
		}
		buf[i] = b
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: decoded bytes are not valid UTF-8", ErrMalformedBits)
	}
	return string(buf), nil
}
