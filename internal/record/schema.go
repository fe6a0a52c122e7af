package record

import (
	"bytes"
	"errors"
	"fmt"
)

type ColumnType uint8

const (
	ColInt32 ColumnType = iota
	ColInt64
	ColBool
	ColFloat64
	ColText  // UTF-8
	ColBytes // opaque bytes
)

func (t ColumnType) String() string {
	switch t {
	case ColInt32:
		return "int32"
	case ColInt64:
		return "int64"
	case ColBool:
		return "bool"
	case ColFloat64:
		return "float64"
	case ColText:
		return "text"
	case ColBytes:
		return "bytes"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

type Column struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// Schema is the ordered column list shared by every row of a stream.
// Column order is significant: it defines the field order of each row.
type Schema struct {
	Cols []Column
}

func (s Schema) NumCols() int { return len(s.Cols) }

var (
	ErrEmptyColumnName = errors.New("record: empty column name")
	ErrDuplicateColumn = errors.New("record: duplicate column name")
)

// Validate checks that every column has a unique, non-empty name.
func (s Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Cols))
	for _, col := range s.Cols {
		if col.Name == "" {
			return ErrEmptyColumnName
		}
		if _, ok := seen[col.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Name)
		}
		seen[col.Name] = struct{}{}
	}
	return nil
}

func (s Schema) Equal(o Schema) bool {
	if len(s.Cols) != len(o.Cols) {
		return false
	}
	for i := range s.Cols {
		if s.Cols[i] != o.Cols[i] {
			return false
		}
	}
	return true
}

// Row holds one record's values, one per schema column, in schema order.
// A nil element marks an absent (null) value.
type Row []any

// Equal compares field-for-field; absent-vs-absent counts as equal and
// byte columns are compared by content.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		a, b := r[i], o[i]
		if a == nil || b == nil {
			if a != b {
				return false
			}
			continue
		}
		ab, aok := a.([]byte)
		bb, bok := b.([]byte)
		if aok || bok {
			if !aok || !bok || !bytes.Equal(ab, bb) {
				return false
			}
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}
