package watermark

import (
	"fmt"
)

// Frame is a decoded watermark: the length prefix and the payload bits it
// describes.  len(Bits) always equals Length.
type Frame struct {
	Length uint64
	Bits   []bool
}

// EncodeFrame returns the symbols for a frame holding bits: the length prefix,
// most significant bit first, followed by one symbol per payload bit.
func (c *Codec) EncodeFrame(bits []bool) ([]rune, error) {
	length := uint64(len(bits))
	if length > c.MaxPayloadBits() {
		return nil, fmt.Errorf("%w: %d bits exceeds the %d-bit length prefix", ErrPayloadTooLarge, length, c.lengthBits)
	}
	symbols := make([]rune, 0, c.lengthBits+len(bits))
	for shift := c.lengthBits - 1; shift >= 0; shift-- {
		symbols = append(symbols, c.alphabet.Symbol(length&(1<<uint(shift)) != 0))
	}
	for _, bit := range bits {
		symbols = append(symbols, c.alphabet.Symbol(bit))
	}
	return symbols, nil
}

// DecodeFrame reads one frame from the start of symbols.  Every element must
// be an alphabet symbol.  Symbols after the end of the frame are ignored.
func (c *Codec) DecodeFrame(symbols []rune) (Frame, error) {
	d := c.NewFrameDecoder()
	for i, r := range symbols {
		bit, ok := c.alphabet.Bit(r)
		if !ok {
			return Frame{}, fmt.Errorf("%w: %U at symbol %d is not in the alphabet", ErrMalformedBits, r, i)
		}
		if d.Feed(bit) {
			break
		}
	}
	return d.Finish()
}

// DecoderState is the position of a FrameDecoder within a frame.
type DecoderState int

const (
	// ReadingLengthPrefix is the initial state: the decoder is collecting the
	// fixed-width length prefix.
	ReadingLengthPrefix DecoderState = iota
	// ReadingPayload means the prefix is complete and payload bits are
	// arriving.
	ReadingPayload
	// Done means the whole frame has been read.
	Done
	// Failed means input ended before the frame was complete.
	Failed
)

func (s DecoderState) String() string {
	switch s {
	case ReadingLengthPrefix:
		return "reading length prefix"
	case ReadingPayload:
		return "reading payload"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("DecoderState(%d)", int(s))
}

// payloadPrealloc caps how much of a declared payload we allocate up front, so
// a corrupt length prefix can't make us reserve gigabytes.
const payloadPrealloc = 1 << 16

// FrameDecoder decodes a frame one bit at a time.  It starts out reading the
// length prefix, moves on to the payload, and is done once the declared number
// of payload bits has arrived.  A zero length prefix goes straight to done.
// Calling Finish in either reading state moves the decoder to failed and
// reports ErrTruncatedFrame.  Create one with Codec.NewFrameDecoder.
type FrameDecoder struct {
	width    int
	state    DecoderState
	prefix   int
	length   uint64
	bits     []bool
	trailing int
}

// NewFrameDecoder returns a decoder for the codec's length prefix width.
func (c *Codec) NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{width: c.lengthBits}
}

// Reset prepares the decoder to read a new frame.
func (d *FrameDecoder) Reset() {
	d.state = ReadingLengthPrefix
	d.prefix = 0
	d.length = 0
	d.bits = nil
	d.trailing = 0
}

// Feed hands the next bit to the decoder and reports whether the frame is
// complete.  Bits fed after that are counted as trailing and otherwise ignored.
func (d *FrameDecoder) Feed(bit bool) bool {
	switch d.state {
	case ReadingLengthPrefix:
		d.length <<= 1
		if bit {
			d.length |= 1
		}
		d.prefix++
		if d.prefix == d.width {
			d.startPayload()
		}
	case ReadingPayload:
		d.bits = append(d.bits, bit)
		if uint64(len(d.bits)) == d.length {
			d.state = Done
		}
	case Done:
		d.trailing++
	}
	return d.state == Done
}

func (d *FrameDecoder) startPayload() {
	if d.length == 0 {
		d.bits = []bool{}
		d.state = Done
		return
	}
	n := d.length
	if n > payloadPrealloc {
		n = payloadPrealloc
	}
	d.bits = make([]bool, 0, n)
	d.state = ReadingPayload
}

// State returns where the decoder is within the frame.
func (d *FrameDecoder) State() DecoderState {
	return d.state
}

// Trailing returns the number of bits fed after the frame was complete.
func (d *FrameDecoder) Trailing() int {
	return d.trailing
}

// Finish signals the end of input.  It returns the decoded frame, or
// ErrTruncatedFrame if the decoder has not reached the end of one.
func (d *FrameDecoder) Finish() (Frame, error) {
	var err error
	switch d.state {
	case ReadingLengthPrefix:
		err = fmt.Errorf("%w: have %d of %d length prefix symbols", ErrTruncatedFrame, d.prefix, d.width)
	case ReadingPayload:
		err = fmt.Errorf("%w: have %d of %d payload symbols", ErrTruncatedFrame, len(d.bits), d.length)
	case Failed:
		err = fmt.Errorf("%w: decoder already failed", ErrTruncatedFrame)
	}
	if err != nil {
		d.state = Failed
		return Frame{}, err
	}
	return Frame{Length: d.length, Bits: d.bits}, nil
}
