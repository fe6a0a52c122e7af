package wire

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuannm99/rowfile/internal/record"
)

// Write serializes table to w: preamble, schema, then every row in source
// order. When opts.Compression is set the row region is routed through the
// transform. On every exit path the transform is finalized first, then the
// buffered sink is flushed, then w is closed when it implements io.Closer
// (path-based callers hand us the open file). Any encode failure aborts
// the whole write; a partial artifact is the caller's to discard.
func Write(w io.Writer, table record.Table, opts WriteOptions) (err error) {
	bw := bufio.NewWriterSize(w, 1<<16)
	var zw io.WriteCloser

	defer func() {
		// release order: transform, then sink
		if zw != nil {
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
		if c, ok := w.(io.Closer); ok {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}
	}()

	if table == nil {
		return ErrNoTable
	}
	schema := table.Schema()
	if verr := schema.Validate(); verr != nil {
		return fmt.Errorf("%w: %s", ErrValidation, verr)
	}

	if err = WritePreamble(bw, Version); err != nil {
		return err
	}
	if err = EncodeSchema(bw, schema); err != nil {
		return err
	}

	sink := io.Writer(bw)
	if opts.Compression != nil {
		zw, err = opts.Compression.WrapWriter(bw, opts.CompressionLevel)
		if err != nil {
			return err
		}
		sink = zw
	}

	return table.Scan(func(row record.Row) error {
		return EncodeRow(sink, schema, row)
	})
}
