package watermark

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

const (
	// ZeroWidthSpace encodes a 0 bit in the default alphabet.
	ZeroWidthSpace = '\u200b'
	// ZeroWidthNonJoiner encodes a 1 bit in the default alphabet.
	ZeroWidthNonJoiner = '\u200c'
)

// DefaultAlphabet is the alphabet used by the package-level functions.  The
// zero width joiner (U+200D) is avoided because it shows up inside ordinary
// emoji sequences.
var DefaultAlphabet = Alphabet{Zero: ZeroWidthSpace, One: ZeroWidthNonJoiner}

// Alphabet is the pair of invisible code points that carry the binary digits of
// a frame.  The fixed-width length prefix makes a frame self-delimiting, so no
// separate terminator symbol is needed.
type Alphabet struct {
	Zero rune
	One  rune
}

// NewAlphabet returns an alphabet built from the two code points, after
// checking that they are usable as invisible symbols.
func NewAlphabet(zero, one rune) (Alphabet, error) {
	a := Alphabet{Zero: zero, One: one}
	if err := a.Validate(); err != nil {
		return Alphabet{}, err
	}
	return a, nil
}

// Validate checks that the two symbols are distinct and both render with
// zero width.
func (a Alphabet) Validate() error {
	if a.Zero == a.One {
		return fmt.Errorf("%w: zero and one are both %U", ErrInvalidAlphabet, a.Zero)
	}
	for _, r := range []rune{a.Zero, a.One} {
		if !unicode.Is(zeroWidth, r) {
			return fmt.Errorf("%w: %U is not a zero width format character", ErrInvalidAlphabet, r)
		}
	}
	return nil
}

// zeroWidth holds the format characters that never render.  Category Cf alone
// isn't enough: U+0600..U+0605, U+06DD, U+070F, U+08E2, U+110BD and the soft
// hyphen are all Cf but can show up on screen.  Every member is unchanged by
// NFC and NFKC.
var zeroWidth = func() *unicode.RangeTable {
	runes := []rune{0x180e, 0xfeff, 0xe0001}
	for r := rune(0x200b); r <= 0x200f; r++ {
		runes = append(runes, r)
	}
	for r := rune(0x2060); r <= 0x2064; r++ {
		runes = append(runes, r)
	}
	for r := rune(0xe0020); r <= 0xe007f; r++ {
		runes = append(runes, r)
	}
	return rangetable.New(runes...)
}()

// Contains reports whether r is one of the alphabet's symbols.
func (a Alphabet) Contains(r rune) bool {
	return r == a.Zero || r == a.One
}

// Symbol returns the symbol for a single bit.
func (a Alphabet) Symbol(bit bool) rune {
	if bit {
		return a.One
	}
	return a.Zero
}

// Bit returns the bit that r encodes.  ok is false when r is not in the
// alphabet.
func (a Alphabet) Bit(r rune) (bit bool, ok bool) {
	switch r {
	case a.Zero:
		return false, true
	case a.One:
		return true, true
	}
	return false, false
}
