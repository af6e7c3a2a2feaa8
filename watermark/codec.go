package watermark

import (
	"fmt"
	"math"
)

const (
	// DefaultLengthBits is the width of the length prefix used by the
	// package-level functions.  32 bits allows payloads up to 512 MiB.
	DefaultLengthBits = 32

	// MaxLengthBits is the widest length prefix a Codec accepts.
	MaxLengthBits = 64
)

// Codec embeds and extracts watermarks using one alphabet and one length
// prefix width.  Both sides of a round trip must use the same settings.  A
// Codec is immutable once built and safe for concurrent use.
type Codec struct {
	alphabet   Alphabet
	lengthBits int
}

// Option configures a Codec built by New.
type Option func(*Codec) error

// WithAlphabet makes the codec use a custom alphabet.
func WithAlphabet(a Alphabet) Option {
	return func(c *Codec) error {
		if err := a.Validate(); err != nil {
			return err
		}
		c.alphabet = a
		return nil
	}
}

// WithLengthBits sets the width of the length prefix, between 1 and
// MaxLengthBits.
func WithLengthBits(n int) Option {
	return func(c *Codec) error {
		if n < 1 || n > MaxLengthBits {
			return fmt.Errorf("length prefix width %d outside [1, %d]", n, MaxLengthBits)
		}
		c.lengthBits = n
		return nil
	}
}

var defaultCodec = &Codec{alphabet: DefaultAlphabet, lengthBits: DefaultLengthBits}

// New returns a Codec using DefaultAlphabet and DefaultLengthBits, modified by
// opts.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{alphabet: DefaultAlphabet, lengthBits: DefaultLengthBits}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() Alphabet {
	return c.alphabet
}

// LengthBits returns the width of the codec's length prefix.
func (c *Codec) LengthBits() int {
	return c.lengthBits
}

// MaxPayloadBits is the largest length prefix value the codec can write.
func (c *Codec) MaxPayloadBits() uint64 {
	if c.lengthBits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(c.lengthBits) - 1
}

// MaxPayloadBytes is the size of the largest payload, in UTF-8 bytes, that
// Embed accepts.
func (c *Codec) MaxPayloadBytes() uint64 {
	return c.MaxPayloadBits() / byteWidth
}
