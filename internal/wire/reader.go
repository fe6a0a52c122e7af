package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/tuannm99/rowfile/internal/record"
)

type rowsState uint8

const (
	stateNotStarted rowsState = iota
	stateActive
	stateExhausted
)

// Rows is a lazy, single-pass, forward-only row sequence over one open
// stream. It owns the underlying channel: reaching end of stream (or any
// fatal decode error) releases the decompression transform and then the
// source exactly once. A Rows cannot be rewound; a fresh read requires
// reopening the original resource.
type Rows struct {
	schema  record.Schema
	version int64

	src io.ReadCloser // underlying channel, owned by Rows
	zr  io.ReadCloser // decompression transform, nil for plaintext rows
	dec io.Reader     // row decode source (zr or the buffered src)

	state  rowsState
	closed bool
	busy   atomic.Bool // single logical cursor per open stream
}

// NewRows validates the preamble, decodes the schema and returns the row
// sequence in its not-yet-started state. src is closed before returning
// any error, and owned by the returned Rows otherwise.
func NewRows(src io.ReadCloser, opts ReadOptions) (*Rows, error) {
	br := bufio.NewReaderSize(src, 1<<16)

	version, err := ReadPreamble(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	if version != Version {
		_ = src.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	schema, err := DecodeSchema(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	rs := &Rows{
		schema:  schema,
		version: version,
		src:     src,
		dec:     br,
	}
	if opts.Decompression != nil {
		zr, err := opts.Decompression.WrapReader(br)
		if err != nil {
			_ = src.Close()
			return nil, err
		}
		rs.zr = zr
		rs.dec = bufio.NewReaderSize(zr, 1<<16)
	}
	return rs, nil
}

// Schema is available before any row is consumed.
func (rs *Rows) Schema() record.Schema { return rs.schema }

// Version reports the format revision read from the preamble.
func (rs *Rows) Version() int64 { return rs.version }

// Next decodes and returns the next row. It returns io.EOF once the
// stream is exhausted (and keeps returning it), releasing the transform
// and the source on the way. A concurrent Next on an active sequence
// fails with ErrIterationInProgress.
func (rs *Rows) Next() (record.Row, error) {
	if !rs.busy.CompareAndSwap(false, true) {
		return nil, ErrIterationInProgress
	}
	defer rs.busy.Store(false)

	switch rs.state {
	case stateExhausted:
		return nil, io.EOF
	case stateNotStarted:
		rs.state = stateActive
	}

	row, err := DecodeRow(rs.dec, rs.schema)
	if err == nil {
		return row, nil
	}

	rs.state = stateExhausted
	cerr := rs.release()
	if errors.Is(err, io.EOF) {
		if cerr != nil {
			return nil, cerr
		}
		return nil, io.EOF
	}
	return nil, err
}

// Collect drains the remaining rows into a slice.
func (rs *Rows) Collect() ([]record.Row, error) {
	var out []record.Row
	for {
		row, err := rs.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, row)
	}
}

// Close releases the transform and the underlying source early. It is
// idempotent and safe to call after exhaustion.
func (rs *Rows) Close() error {
	if !rs.busy.CompareAndSwap(false, true) {
		return ErrIterationInProgress
	}
	defer rs.busy.Store(false)

	rs.state = stateExhausted
	return rs.release()
}

// release closes the transform first, then the source, exactly once.
func (rs *Rows) release() error {
	if rs.closed {
		return nil
	}
	rs.closed = true

	var err error
	if rs.zr != nil {
		err = rs.zr.Close()
	}
	if cerr := rs.src.Close(); err == nil {
		err = cerr
	}
	return err
}
