// Package watermark hides a text payload inside a visible carrier text using
// invisible Unicode code points.  The encoded text renders like the carrier,
// and the payload can be read back from it without any side-channel metadata.
//
// The payload's UTF-8 bytes are turned into bits, most significant bit first,
// and wrapped in a frame: a fixed-width length prefix (32 bits by default)
// giving the number of payload bits, followed by the payload bits themselves.
// Each bit becomes one symbol of a two-letter alphabet of zero width format
// characters, U+200B for 0 and U+200C for 1.  The frame is inserted as a
// single run right after the first code point of the carrier.
//
// Extraction doesn't need to know where the run was inserted: every alphabet
// symbol in the text is read as part of the frame, and everything else is
// carrier.  For that reason Embed refuses carriers that already contain
// alphabet symbols; use Strip to clean them first.
//
// This is watermarking, not encryption.  Anyone who knows the scheme can read
// the payload, and text transformations that drop format characters destroy
// it.
package watermark
