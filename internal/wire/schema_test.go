package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/rowfile/internal/record"
)

func wireTestSchema() record.Schema {
	return record.Schema{
		Cols: []record.Column{
			{Name: "id32", Type: record.ColInt32, Nullable: false},
			{Name: "id64", Type: record.ColInt64, Nullable: false},
			{Name: "active", Type: record.ColBool, Nullable: false},
			{Name: "score", Type: record.ColFloat64, Nullable: false},
			{Name: "name", Type: record.ColText, Nullable: true},
			{Name: "blob", Type: record.ColBytes, Nullable: true},
		},
	}
}

// TestSchemaCodecRoundTrip checks column order, names, types and
// nullability survive encode/decode exactly.
func TestSchemaCodecRoundTrip(t *testing.T) {
	schema := wireTestSchema()

	var buf bytes.Buffer
	require.NoError(t, EncodeSchema(&buf, schema))

	got, err := DecodeSchema(&buf)
	require.NoError(t, err)
	require.True(t, schema.Equal(got))
}

// TestSchemaCodecEmpty round-trips a zero-column schema.
func TestSchemaCodecEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSchema(&buf, record.Schema{}))

	got, err := DecodeSchema(&buf)
	require.NoError(t, err)
	require.Equal(t, 0, got.NumCols())
}

// TestDecodeSchemaRejectsMalformedBytes covers truncation and ill-typed
// metadata, all of which are format errors.
func TestDecodeSchemaRejectsMalformedBytes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSchema(&buf, wireTestSchema()))
	good := buf.Bytes()

	t.Run("truncated", func(t *testing.T) {
		for _, cut := range []int{1, 3, len(good) / 2, len(good) - 1} {
			_, err := DecodeSchema(bytes.NewReader(good[:cut]))
			require.ErrorIs(t, err, ErrBadSchema)
			require.ErrorIs(t, err, ErrFormat)
		}
	})

	t.Run("unknown type tag", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, EncodeSchema(&b, record.Schema{
			Cols: []record.Column{{Name: "x", Type: record.ColInt32}},
		}))
		bad := b.Bytes()
		// last two bytes are type tag + nullable flag
		bad[len(bad)-2] = 0xEE
		_, err := DecodeSchema(bytes.NewReader(bad))
		require.ErrorIs(t, err, ErrBadSchema)
	})

	t.Run("bad nullable flag", func(t *testing.T) {
		var b bytes.Buffer
		require.NoError(t, EncodeSchema(&b, record.Schema{
			Cols: []record.Column{{Name: "x", Type: record.ColInt32}},
		}))
		bad := b.Bytes()
		bad[len(bad)-1] = 7
		_, err := DecodeSchema(bytes.NewReader(bad))
		require.ErrorIs(t, err, ErrBadSchema)
	})

	t.Run("duplicate column names", func(t *testing.T) {
		// bypass the encoder's validation by writing two identical columns
		var b bytes.Buffer
		require.NoError(t, EncodeSchema(&b, record.Schema{
			Cols: []record.Column{{Name: "x", Type: record.ColInt32}},
		}))
		one := b.Bytes()[2:] // strip the count
		var bad bytes.Buffer
		bad.Write([]byte{2, 0}) // count = 2, little-endian
		bad.Write(one)
		bad.Write(one)
		_, err := DecodeSchema(&bad)
		require.ErrorIs(t, err, ErrBadSchema)
	})
}

// TestEncodeSchemaRejectsInvalid checks write-side validation surfaces as
// a validation error, not a format error.
func TestEncodeSchemaRejectsInvalid(t *testing.T) {
	s := record.Schema{Cols: make([]record.Column, 0x10001)}
	for i := range s.Cols {
		s.Cols[i] = record.Column{Name: "c", Type: record.ColInt32}
	}
	err := EncodeSchema(&bytes.Buffer{}, s)
	require.ErrorIs(t, err, ErrValidation)
}
