// Package rowfile persists tabular data (uniformly-typed rows sharing one
// column schema) to a single byte stream and reads it back as a lazy,
// single-pass row sequence, with optional streaming compression. The wire
// format is documented in internal/wire.
package rowfile

import (
	"io"
	"os"

	"github.com/tuannm99/rowfile/internal/record"
	"github.com/tuannm99/rowfile/internal/wire"
)

type (
	Schema     = record.Schema
	Column     = record.Column
	ColumnType = record.ColumnType
	Row        = record.Row
	Table      = record.Table
	MemTable   = record.MemTable

	Rows         = wire.Rows
	Transform    = wire.Transform
	WriteOptions = wire.WriteOptions
	ReadOptions  = wire.ReadOptions
)

const (
	ColInt32   = record.ColInt32
	ColInt64   = record.ColInt64
	ColBool    = record.ColBool
	ColFloat64 = record.ColFloat64
	ColText    = record.ColText
	ColBytes   = record.ColBytes
)

// FormatVersion is the wire format revision this build reads and writes.
const FormatVersion = wire.Version

// Error kinds; specific failures wrap one of these.
var (
	ErrValidation = wire.ErrValidation
	ErrFormat     = wire.ErrFormat
	ErrUsage      = wire.ErrUsage

	ErrBadSignature        = wire.ErrBadSignature
	ErrUnsupportedVersion  = wire.ErrUnsupportedVersion
	ErrIterationInProgress = wire.ErrIterationInProgress
)

func NewMemTable(schema Schema, rows []Row) *MemTable {
	return record.NewMemTable(schema, rows)
}

// SerializeTableRows writes table to a new artifact at path, creating or
// truncating the file. The file is closed on every exit path; on error
// the partial artifact is the caller's to discard.
func SerializeTableRows(path string, table Table, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return wire.Write(f, table, opts)
}

// SerializeTableRowsTo writes table to an already-open sink. If w
// implements io.Closer the facade owns it from this point and closes it
// after finalizing the compression transform.
func SerializeTableRowsTo(w io.Writer, table Table, opts WriteOptions) error {
	return wire.Write(w, table, opts)
}

// DeserializeTableRows opens the artifact at path and returns its row
// sequence. The schema is available immediately; rows are decoded on
// demand and the file is released when the sequence is exhausted or
// closed.
func DeserializeTableRows(path string, opts ReadOptions) (*Rows, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wire.NewRows(f, opts)
}

// DeserializeTableRowsFrom reads from an already-open channel, which the
// returned sequence owns (it is closed even when setup fails).
func DeserializeTableRowsFrom(r io.ReadCloser, opts ReadOptions) (*Rows, error) {
	return wire.NewRows(r, opts)
}
