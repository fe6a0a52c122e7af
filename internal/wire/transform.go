package wire

import "io"

// Transform is a streaming compression codec layered between the row
// region and the underlying byte channel. Wrapping is scoped: the writer
// closes the returned WriteCloser before the sink, and the reader closes
// the returned ReadCloser before the source, on every exit path.
//
// The format records no algorithm tag, so the reader must be configured
// with the same transform the writer used.
type Transform interface {
	// WrapWriter layers the compressor over w. level is transform
	// specific; 0 selects the transform's default.
	WrapWriter(w io.Writer, level int) (io.WriteCloser, error)

	// WrapReader layers the decompressor over r.
	WrapReader(r io.Reader) (io.ReadCloser, error)

	Name() string
}

// WriteOptions configures serialization.
type WriteOptions struct {
	Compression      Transform // nil: rows are stored uncompressed
	CompressionLevel int       // only meaningful with Compression set
}

// ReadOptions configures deserialization. Decompression must match the
// transform used on the write side, or be nil for plaintext rows.
type ReadOptions struct {
	Decompression Transform
}
