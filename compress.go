package rowfile

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Gzip returns the gzip transform. Levels follow gzip semantics
// (1 = fastest .. 9 = best); 0 selects gzip.DefaultCompression.
func Gzip() Transform { return gzipTransform{} }

type gzipTransform struct{}

func (gzipTransform) Name() string { return "gzip" }

func (gzipTransform) WrapWriter(w io.Writer, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	return gzip.NewWriterLevel(w, level)
}

func (gzipTransform) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Zstd returns the zstd transform. Levels follow zstd semantics (1..22,
// mapped onto the encoder's speed buckets); 0 selects the encoder default.
func Zstd() Transform { return zstdTransform{} }

type zstdTransform struct{}

func (zstdTransform) Name() string { return "zstd" }

func (zstdTransform) WrapWriter(w io.Writer, level int) (io.WriteCloser, error) {
	var opts []zstd.EOption
	if level != 0 {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	}
	return zstd.NewWriter(w, opts...)
}

func (zstdTransform) WrapReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}
