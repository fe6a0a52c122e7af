package wire

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tuannm99/rowfile/internal/alias/bx"
	"github.com/tuannm99/rowfile/internal/record"
)

// EncodeRow writes one row: the row marker, then per column a presence
// byte and, when present, the type-directed payload. The whole row is
// built in memory and written with a single Write so a row is never
// half-emitted on a value error.
func EncodeRow(w io.Writer, s record.Schema, row record.Row) error {
	if len(row) != s.NumCols() {
		return fmt.Errorf("%w: got %d values, schema has %d columns", ErrSchemaMismatch, len(row), s.NumCols())
	}

	out := make([]byte, 1, 1+2*s.NumCols())
	out[0] = rowMarker

	for i, col := range s.Cols {
		v := row[i]
		if v == nil {
			if !col.Nullable {
				return fmt.Errorf("%w: %q", ErrNotNullable, col.Name)
			}
			out = append(out, valueAbsent)
			continue
		}
		out = append(out, valuePresent)

		switch col.Type {
		case record.ColInt32:
			x, ok := asInt32(v)
			if !ok {
				return fmt.Errorf("%w: column %q wants int32, got %T", ErrSchemaMismatch, col.Name, v)
			}
			out = bx.AppendU32(out, uint32(x))

		case record.ColInt64:
			x, ok := asInt64(v)
			if !ok {
				return fmt.Errorf("%w: column %q wants int64, got %T", ErrSchemaMismatch, col.Name, v)
			}
			out = bx.AppendU64(out, uint64(x))

		case record.ColBool:
			x, ok := v.(bool)
			if !ok {
				return fmt.Errorf("%w: column %q wants bool, got %T", ErrSchemaMismatch, col.Name, v)
			}
			if x {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}

		case record.ColFloat64:
			x, ok := asFloat64(v)
			if !ok {
				return fmt.Errorf("%w: column %q wants float64, got %T", ErrSchemaMismatch, col.Name, v)
			}
			out = bx.AppendU64(out, math.Float64bits(x))

		case record.ColText:
			str, ok := v.(string)
			if !ok {
				return fmt.Errorf("%w: column %q wants string, got %T", ErrSchemaMismatch, col.Name, v)
			}
			if len(str) > math.MaxUint32 {
				return fmt.Errorf("%w: column %q", ErrVarTooLong, col.Name)
			}
			out = bx.AppendU32(out, uint32(len(str)))
			out = append(out, str...)

		case record.ColBytes:
			bs, ok := v.([]byte)
			if !ok {
				return fmt.Errorf("%w: column %q wants []byte, got %T", ErrSchemaMismatch, col.Name, v)
			}
			if len(bs) > math.MaxUint32 {
				return fmt.Errorf("%w: column %q", ErrVarTooLong, col.Name)
			}
			out = bx.AppendU32(out, uint32(len(bs)))
			out = append(out, bs...)

		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedType, col.Type)
		}
	}

	_, err := w.Write(out)
	return err
}

// DecodeRow reads one row. A clean EOF where the row marker is expected
// signals end of stream and is reported as io.EOF; truncation anywhere
// inside a row fails with ErrBadRow.
func DecodeRow(r io.Reader, s record.Schema) (record.Row, error) {
	var marker [1]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	if marker[0] != rowMarker {
		return nil, fmt.Errorf("%w: bad row marker 0x%02x", ErrBadRow, marker[0])
	}

	out := make(record.Row, s.NumCols())
	var scratch [8]byte

	for i, col := range s.Cols {
		if err := readFull(r, scratch[:1], ErrBadRow); err != nil {
			return nil, err
		}
		switch scratch[0] {
		case valueAbsent:
			if !col.Nullable {
				return nil, fmt.Errorf("%w: null in non-nullable column %q", ErrBadRow, col.Name)
			}
			out[i] = nil
			continue
		case valuePresent:
		default:
			return nil, fmt.Errorf("%w: bad presence byte 0x%02x for column %q", ErrBadRow, scratch[0], col.Name)
		}

		switch col.Type {
		case record.ColInt32:
			if err := readFull(r, scratch[:4], ErrBadRow); err != nil {
				return nil, err
			}
			out[i] = int32(bx.U32(scratch[:4]))

		case record.ColInt64:
			if err := readFull(r, scratch[:8], ErrBadRow); err != nil {
				return nil, err
			}
			out[i] = int64(bx.U64(scratch[:8]))

		case record.ColBool:
			if err := readFull(r, scratch[:1], ErrBadRow); err != nil {
				return nil, err
			}
			out[i] = scratch[0] != 0

		case record.ColFloat64:
			if err := readFull(r, scratch[:8], ErrBadRow); err != nil {
				return nil, err
			}
			out[i] = math.Float64frombits(bx.U64(scratch[:8]))

		case record.ColText:
			if err := readFull(r, scratch[:4], ErrBadRow); err != nil {
				return nil, err
			}
			buf := make([]byte, int(bx.U32(scratch[:4])))
			if err := readFull(r, buf, ErrBadRow); err != nil {
				return nil, err
			}
			out[i] = string(buf)

		case record.ColBytes:
			if err := readFull(r, scratch[:4], ErrBadRow); err != nil {
				return nil, err
			}
			buf := make([]byte, int(bx.U32(scratch[:4])))
			if err := readFull(r, buf, ErrBadRow); err != nil {
				return nil, err
			}
			out[i] = buf

		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, col.Type)
		}
	}

	return out, nil
}

// ---- small helpers to accept multiple numeric types on encode ----

func asInt32(v any) (int32, bool) {
	switch x := v.(type) {
	case int32:
		return x, true
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return int32(x), true
		}
	case int64:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return int32(x), true
		}
	}
	return 0, false
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	}
	return 0, false
}
