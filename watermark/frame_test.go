package watermark_test

import (
	"testing"

	"github.com/dcreager/zero-width-watermark-go/watermark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T, opts ...watermark.Option) *watermark.Codec {
	t.Helper()
	c, err := watermark.New(opts...)
	require.NoError(t, err)
	return c
}

// symbols turns a string of '0' and '1' into alphabet symbols.
func symbols(a watermark.Alphabet, s string) []rune {
	out := make([]rune, len(s))
	for i := range s {
		out[i] = a.Symbol(s[i] == '1')
	}
	return out
}

type frameTestCase struct {
	bits    string
	encoded string
}

// Frames for a 4-bit length prefix.
var frameTestCases = []frameTestCase{
	{"", "0000"},
	{"1", "0001" + "1"},
	{"01000001", "1000" + "01000001"},
	{"101010101010101", "1111" + "101010101010101"},
}

func TestEncodeFrame(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(4))
	for _, tc := range frameTestCases {
		encoded, err := c.EncodeFrame(parseBits(tc.bits))
		require.NoError(t, err)
		assert.Equal(t, symbols(c.Alphabet(), tc.encoded), encoded, "bits %s", tc.bits)
	}
}

func TestDecodeFrame(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(4))
	for _, tc := range frameTestCases {
		frame, err := c.DecodeFrame(symbols(c.Alphabet(), tc.encoded))
		require.NoError(t, err)
		assert.Equal(t, uint64(len(tc.bits)), frame.Length)
		assert.Equal(t, tc.bits, bitString(frame.Bits))
	}
}

func TestDecodeFrameIgnoresTrailingSymbols(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(4))
	frame, err := c.DecodeFrame(symbols(c.Alphabet(), "0010"+"11"+"0101"))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), frame.Length)
	assert.Equal(t, "11", bitString(frame.Bits))
}

func TestEncodeFrameTooLarge(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(4))
	encoded, err := c.EncodeFrame(make([]bool, 16))
	assert.ErrorIs(t, err, watermark.ErrPayloadTooLarge)
	assert.Nil(t, encoded)
}

func TestDecodeFrameTruncated(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(4))
	truncated := []string{
		"",
		"0",
		"000",
		"0001",
		"1000" + "0100000",
	}
	for _, encoded := range truncated {
		_, err := c.DecodeFrame(symbols(c.Alphabet(), encoded))
		assert.ErrorIs(t, err, watermark.ErrTruncatedFrame, "encoded %s", encoded)
	}
}

func TestDecodeFrameRejectsForeignSymbols(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(4))
	_, err := c.DecodeFrame([]rune{c.Alphabet().Zero, 'x'})
	assert.ErrorIs(t, err, watermark.ErrMalformedBits)
}

func TestDefaultFrameWidth(t *testing.T) {
	c := newCodec(t)
	assert.Equal(t, watermark.DefaultLengthBits, c.LengthBits())
	encoded, err := c.EncodeFrame(parseBits("1"))
	require.NoError(t, err)
	assert.Len(t, encoded, 33)
}

func TestFrameDecoderStates(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(2))
	d := c.NewFrameDecoder()
	assert.Equal(t, watermark.ReadingLengthPrefix, d.State())

	assert.False(t, d.Feed(true))
	assert.Equal(t, watermark.ReadingLengthPrefix, d.State())
	assert.False(t, d.Feed(false))
	assert.Equal(t, watermark.ReadingPayload, d.State())
	assert.False(t, d.Feed(true))
	assert.True(t, d.Feed(false))
	assert.Equal(t, watermark.Done, d.State())

	assert.True(t, d.Feed(true))
	assert.Equal(t, 1, d.Trailing())

	frame, err := d.Finish()
	require.NoError(t, err)
	assert.Equal(t, "10", bitString(frame.Bits))
}

func TestFrameDecoderEmptyPayload(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(3))
	d := c.NewFrameDecoder()
	d.Feed(false)
	d.Feed(false)
	assert.True(t, d.Feed(false))
	frame, err := d.Finish()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), frame.Length)
	assert.Empty(t, frame.Bits)
}

func TestFrameDecoderFailure(t *testing.T) {
	c := newCodec(t, watermark.WithLengthBits(2))
	d := c.NewFrameDecoder()
	d.Feed(true)
	d.Feed(true)
	d.Feed(false)
	_, err := d.Finish()
	assert.ErrorIs(t, err, watermark.ErrTruncatedFrame)
	assert.Equal(t, watermark.Failed, d.State())

	// Once failed, more input doesn't revive the frame.
	assert.False(t, d.Feed(true))
	_, err = d.Finish()
	assert.ErrorIs(t, err, watermark.ErrTruncatedFrame)

	d.Reset()
	assert.Equal(t, watermark.ReadingLengthPrefix, d.State())
	d.Feed(false)
	d.Feed(true)
	d.Feed(true)
	frame, err := d.Finish()
	require.NoError(t, err)
	assert.Equal(t, "1", bitString(frame.Bits))
}

func TestLengthBitsOption(t *testing.T) {
	for _, n := range []int{0, -1, 65} {
		_, err := watermark.New(watermark.WithLengthBits(n))
		assert.Error(t, err, "width %d", n)
	}

	c := newCodec(t, watermark.WithLengthBits(64))
	assert.Equal(t, ^uint64(0), c.MaxPayloadBits())

	c = newCodec(t, watermark.WithLengthBits(8))
	assert.Equal(t, uint64(255), c.MaxPayloadBits())
	assert.Equal(t, uint64(31), c.MaxPayloadBytes())
}
