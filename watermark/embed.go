package watermark

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Embed hides payload in carrier using the default codec.
func Embed(carrier, payload string) (string, error) {
	return defaultCodec.Embed(carrier, payload)
}

// Embed hides payload in carrier.  The frame's symbols are inserted as one
// contiguous run immediately after the first code point of carrier, or make
// up the whole result if carrier is empty.  Removing every alphabet symbol
// from the result gives back carrier exactly.
//
// Embed fails with ErrCarrierContainsSymbols if carrier already holds alphabet
// symbols, since those would be read back as part of the frame.  It fails with
// ErrPayloadTooLarge if the payload does not fit the length prefix; no partial
// result is returned.
func (c *Codec) Embed(carrier, payload string) (string, error) {
	if !utf8.ValidString(carrier) {
		return "", fmt.Errorf("%w: carrier", ErrInvalidUTF8)
	}
	if !utf8.ValidString(payload) {
		return "", fmt.Errorf("%w: payload", ErrInvalidUTF8)
	}
	if uint64(len(payload)) > c.MaxPayloadBytes() {
		return "", fmt.Errorf("%w: %d bytes, at most %d fit a %d-bit length prefix",
			ErrPayloadTooLarge, len(payload), c.MaxPayloadBytes(), c.lengthBits)
	}
	if i := c.index(carrier); i >= 0 {
		return "", fmt.Errorf("%w: %U at byte %d", ErrCarrierContainsSymbols, c.runeAt(carrier, i), i)
	}

	symbols, err := c.EncodeFrame(ToBits(payload))
	if err != nil {
		return "", err
	}

	_, split := utf8.DecodeRuneInString(carrier)
	var b strings.Builder
	b.Grow(len(carrier) + len(symbols)*utf8.UTFMax)
	b.WriteString(carrier[:split])
	for _, r := range symbols {
		b.WriteRune(r)
	}
	b.WriteString(carrier[split:])
	return b.String(), nil
}

// index returns the byte offset of the first alphabet symbol in s, or -1.
func (c *Codec) index(s string) int {
	return strings.IndexFunc(s, c.alphabet.Contains)
}

func (c *Codec) runeAt(s string, i int) rune {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

// Contains reports whether text holds any symbol of the default alphabet.
func Contains(text string) bool {
	return defaultCodec.Contains(text)
}

// Contains reports whether text holds any symbol of the codec's alphabet.
func (c *Codec) Contains(text string) bool {
	return c.index(text) >= 0
}

// Strip removes every symbol of the default alphabet from text.
func Strip(text string) string {
	return defaultCodec.Strip(text)
}

// Strip removes every symbol of the codec's alphabet from text.  Applied to
// the output of Embed it returns the original carrier.
func (c *Codec) Strip(text string) string {
	if !c.Contains(text) {
		return text
	}
	visible, _ := c.Split(text)
	return visible
}
