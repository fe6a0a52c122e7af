// Package wire implements the rowfile on-disk format: a fixed preamble,
// a schema block, then a stream of encoded rows until end of stream.
//
// Layout (all integers little-endian):
//
//	offset 0 : signature "ROWFILE1" (8 ASCII bytes)
//	offset 8 : version, int64
//	offset 16: schema: u16 column count, then per column:
//	           u16 name length, name bytes (UTF-8), u8 type tag, u8 nullable
//	then     : rows, each: u8 row marker (0x01), then per column in schema
//	           order a u8 presence byte (0 = absent, 1 = present) followed,
//	           when present, by the type-directed payload
//
// Payloads: int32 = 4 bytes, int64 = 8 bytes, bool = 1 byte, float64 =
// 8 bytes (IEEE-754 bits), text/bytes = u32 length + raw bytes.
//
// When a compression transform is configured, the preamble and schema stay
// plaintext and only the row region (first row marker through EOF) is the
// transform's output. The format carries no algorithm tag: the reader must
// be handed the same transform the writer used.
package wire

import (
	"errors"
	"io"
)

const (
	// Signature identifies a rowfile stream; anything not starting with
	// these exact bytes is rejected before further interpretation.
	Signature       = "ROWFILE1"
	SignatureLength = len(Signature)

	// Version is the current wire format revision.
	Version int64 = 1
)

const (
	rowMarker byte = 0x01

	valueAbsent  byte = 0
	valuePresent byte = 1
)

// readFull fills buf from r, mapping truncation onto kind so decode errors
// identify the phase (preamble/schema/row) that hit the short read. Real
// I/O errors propagate unchanged.
func readFull(r io.Reader, buf []byte, kind error) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return kind
		}
		return err
	}
	return nil
}
