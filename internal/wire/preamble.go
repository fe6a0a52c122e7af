package wire

import (
	"io"

	"github.com/tuannm99/rowfile/internal/alias/bx"
)

// WritePreamble writes the signature and format version at the current
// write position. No validation happens on the write side.
func WritePreamble(w io.Writer, version int64) error {
	buf := make([]byte, SignatureLength+8)
	copy(buf, Signature)
	bx.PutU64(buf[SignatureLength:], uint64(version))
	_, err := w.Write(buf)
	return err
}

// ReadPreamble verifies the signature byte-for-byte and returns the format
// version. A mismatch or truncated signature fails with ErrBadSignature;
// nothing past the preamble is interpreted in that case.
func ReadPreamble(r io.Reader) (int64, error) {
	sig := make([]byte, SignatureLength)
	if err := readFull(r, sig, ErrBadSignature); err != nil {
		return 0, err
	}
	if string(sig) != Signature {
		return 0, ErrBadSignature
	}

	var verB [8]byte
	if err := readFull(r, verB[:], ErrBadSignature); err != nil {
		return 0, err
	}
	return bx.I64(verB[:]), nil
}
