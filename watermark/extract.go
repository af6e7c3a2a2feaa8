package watermark

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// Result is everything recovered from an encoded text.
type Result struct {
	// Payload is the hidden text.
	Payload string
	// Carrier is the encoded text with every alphabet symbol removed.
	Carrier string
	// Length is the frame's length prefix, in payload bits.
	Length uint64
	// Symbols is the number of alphabet symbols found in the input.
	Symbols int
	// Trailing is the number of symbols found after the end of the frame.
	Trailing int
}

// Extract returns the payload hidden in encoded by the default codec.
func Extract(encoded string) (string, error) {
	return defaultCodec.Extract(encoded)
}

// Extract returns the payload hidden in encoded.  It fails with ErrNoWatermark
// if encoded holds no alphabet symbols, ErrTruncatedFrame if it holds fewer
// than its length prefix declares, and ErrMalformedBits if the payload bits
// are not valid UTF-8.
func (c *Codec) Extract(encoded string) (string, error) {
	res, err := c.Open(encoded)
	if err != nil {
		return "", err
	}
	return res.Payload, nil
}

// Open extracts the payload from encoded using the default codec, and also
// returns the reconstructed carrier.
func Open(encoded string) (Result, error) {
	return defaultCodec.Open(encoded)
}

// Open extracts the payload from encoded, and also returns the reconstructed
// carrier.  It fails in the same ways as Extract.
func (c *Codec) Open(encoded string) (Result, error) {
	e := c.newExtraction()
	for i := 0; i < len(encoded); {
		r, size := utf8.DecodeRuneInString(encoded[i:])
		if !e.symbol(r) {
			e.visible.WriteString(encoded[i : i+size])
		}
		i += size
	}
	return e.finish()
}

// ExtractReader is the streaming form of Open.  It reads r to the end, so the
// carrier in the result holds everything that was not an alphabet symbol.
func (c *Codec) ExtractReader(r io.Reader) (Result, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	e := c.newExtraction()
	for {
		ch, size, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, err
		}
		if ch == utf8.RuneError && size == 1 {
			// Keep the invalid byte as it was rather than writing U+FFFD.
			if err := br.UnreadRune(); err != nil {
				return Result{}, err
			}
			b, err := br.ReadByte()
			if err != nil {
				return Result{}, err
			}
			e.visible.WriteByte(b)
			continue
		}
		if !e.symbol(ch) {
			e.visible.WriteRune(ch)
		}
	}
	return e.finish()
}

// Split partitions encoded into its visible code points and its alphabet
// symbols, both in their original order.
func Split(encoded string) (visible string, symbols []rune) {
	return defaultCodec.Split(encoded)
}

// Split partitions encoded into its visible code points and its alphabet
// symbols, both in their original order.
func (c *Codec) Split(encoded string) (visible string, symbols []rune) {
	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); {
		r, size := utf8.DecodeRuneInString(encoded[i:])
		if c.alphabet.Contains(r) {
			symbols = append(symbols, r)
		} else {
			b.WriteString(encoded[i : i+size])
		}
		i += size
	}
	return b.String(), symbols
}

// extraction holds the state of one Open or ExtractReader call.
type extraction struct {
	alphabet Alphabet
	decoder  *FrameDecoder
	visible  strings.Builder
	symbols  int
}

func (c *Codec) newExtraction() *extraction {
	return &extraction{alphabet: c.alphabet, decoder: c.NewFrameDecoder()}
}

// symbol feeds r to the frame decoder if it is an alphabet symbol, and reports
// whether it was.
func (e *extraction) symbol(r rune) bool {
	bit, ok := e.alphabet.Bit(r)
	if !ok {
		return false
	}
	e.symbols++
	e.decoder.Feed(bit)
	return true
}

func (e *extraction) finish() (Result, error) {
	if e.symbols == 0 {
		return Result{}, ErrNoWatermark
	}
	frame, err := e.decoder.Finish()
	if err != nil {
		return Result{}, err
	}
	payload, err := FromBits(frame.Bits)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Payload:  payload,
		Carrier:  e.visible.String(),
		Length:   frame.Length,
		Symbols:  e.symbols,
		Trailing: e.decoder.Trailing(),
	}, nil
}
