package watermark

import "errors"

var (
	// ErrPayloadTooLarge is returned by Embed when the payload needs more bits
	// than the length prefix can describe.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrNoWatermark is returned when the input holds no alphabet symbols at
	// all, which means it was never watermarked.
	ErrNoWatermark = errors.New("no watermark found")

	// ErrTruncatedFrame is returned when the symbols run out before the frame
	// declared by the length prefix is complete.
	ErrTruncatedFrame = errors.New("truncated frame")

	// ErrMalformedBits is returned when a bit sequence is not a whole number of
	// bytes, or its bytes are not valid UTF-8.
	ErrMalformedBits = errors.New("malformed bits")

	// ErrCarrierContainsSymbols is returned by Embed when the carrier already
	// contains alphabet symbols.  Use Strip to clean such a carrier first.
	ErrCarrierContainsSymbols = errors.New("carrier already contains watermark symbols")

	// ErrInvalidUTF8 is returned by Embed when the carrier or payload is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 text")

	// ErrInvalidAlphabet is returned when a custom alphabet uses code points
	// that are visible, combining, unstable under normalization, or repeated.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)
