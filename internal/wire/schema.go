package wire

import (
	"fmt"
	"io"
	"math"

	"github.com/tuannm99/rowfile/internal/alias/bx"
	"github.com/tuannm99/rowfile/internal/record"
)

// EncodeSchema serializes column names, type tags and nullability in
// column order. Written exactly once per stream, right after the preamble.
func EncodeSchema(w io.Writer, s record.Schema) error {
	if s.NumCols() > math.MaxUint16 {
		return fmt.Errorf("%w: too many columns (%d)", ErrValidation, s.NumCols())
	}

	out := bx.AppendU16(nil, uint16(s.NumCols()))
	for _, col := range s.Cols {
		name := []byte(col.Name)
		if len(name) > math.MaxUint16 {
			return fmt.Errorf("%w: column name too long (%d bytes)", ErrValidation, len(name))
		}
		out = bx.AppendU16(out, uint16(len(name)))
		out = append(out, name...)
		out = append(out, byte(col.Type))
		if col.Nullable {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}

	_, err := w.Write(out)
	return err
}

// DecodeSchema reconstructs column order, names and types exactly as
// written. Truncated or ill-typed bytes fail with ErrBadSchema.
func DecodeSchema(r io.Reader) (record.Schema, error) {
	var countB [2]byte
	if err := readFull(r, countB[:], ErrBadSchema); err != nil {
		return record.Schema{}, err
	}
	count := int(bx.U16(countB[:]))

	s := record.Schema{Cols: make([]record.Column, count)}
	for i := 0; i < count; i++ {
		var lenB [2]byte
		if err := readFull(r, lenB[:], ErrBadSchema); err != nil {
			return record.Schema{}, err
		}

		name := make([]byte, int(bx.U16(lenB[:])))
		if err := readFull(r, name, ErrBadSchema); err != nil {
			return record.Schema{}, err
		}

		var meta [2]byte
		if err := readFull(r, meta[:], ErrBadSchema); err != nil {
			return record.Schema{}, err
		}
		typ := record.ColumnType(meta[0])
		if typ > record.ColBytes {
			return record.Schema{}, fmt.Errorf("%w: unknown type tag %d for column %q", ErrBadSchema, meta[0], name)
		}
		if meta[1] > 1 {
			return record.Schema{}, fmt.Errorf("%w: bad nullable flag %d for column %q", ErrBadSchema, meta[1], name)
		}

		s.Cols[i] = record.Column{
			Name:     string(name),
			Type:     typ,
			Nullable: meta[1] == 1,
		}
	}

	if err := s.Validate(); err != nil {
		return record.Schema{}, fmt.Errorf("%w: %s", ErrBadSchema, err)
	}
	return s, nil
}
