package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuannm99/rowfile/internal/record"
)

// closeRecorder wraps a buffer and records whether Close was called, so
// tests can assert the writer finalizes its sink on every exit path.
type closeRecorder struct {
	bytes.Buffer
	closes int
}

func (c *closeRecorder) Close() error {
	c.closes++
	return nil
}

func testRows(n int) []record.Row {
	rows := make([]record.Row, n)
	for i := range rows {
		rows[i] = record.Row{
			int32(i + 1),
			int64(i * 10),
			i%2 == 0,
			float64(i) + 0.5,
			"row",
			[]byte{byte(i)},
		}
	}
	return rows
}

// TestWriteLayout checks the writer emits preamble, schema and rows in
// the documented order.
func TestWriteLayout(t *testing.T) {
	schema := wireTestSchema()
	table := record.NewMemTable(schema, testRows(3))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table, WriteOptions{}))

	raw := buf.Bytes()
	require.Equal(t, []byte(Signature), raw[:SignatureLength])

	r := bytes.NewReader(raw)
	version, err := ReadPreamble(r)
	require.NoError(t, err)
	require.Equal(t, Version, version)

	got, err := DecodeSchema(r)
	require.NoError(t, err)
	require.True(t, schema.Equal(got))

	for i := 0; i < 3; i++ {
		_, err := DecodeRow(r, got)
		require.NoError(t, err)
	}
	require.Zero(t, r.Len())
}

// TestWriteClosesSink: the sink must be closed on success, on validation
// failure and on encode failure.
func TestWriteClosesSink(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sink := &closeRecorder{}
		table := record.NewMemTable(wireTestSchema(), testRows(1))
		require.NoError(t, Write(sink, table, WriteOptions{}))
		require.Equal(t, 1, sink.closes)
	})

	t.Run("nil table", func(t *testing.T) {
		sink := &closeRecorder{}
		err := Write(sink, nil, WriteOptions{})
		require.ErrorIs(t, err, ErrNoTable)
		require.ErrorIs(t, err, ErrValidation)
		require.Equal(t, 1, sink.closes)
	})

	t.Run("invalid schema", func(t *testing.T) {
		sink := &closeRecorder{}
		bad := record.Schema{Cols: []record.Column{
			{Name: "x", Type: record.ColInt32},
			{Name: "x", Type: record.ColInt32},
		}}
		err := Write(sink, record.NewMemTable(bad, nil), WriteOptions{})
		require.ErrorIs(t, err, ErrValidation)
		require.Equal(t, 1, sink.closes)
	})

	t.Run("row encode failure", func(t *testing.T) {
		sink := &closeRecorder{}
		table := record.NewMemTable(wireTestSchema(), []record.Row{
			testRows(1)[0],
			{int32(1)}, // wrong shape, aborts the whole write
		})
		err := Write(sink, table, WriteOptions{})
		require.ErrorIs(t, err, ErrSchemaMismatch)
		require.Equal(t, 1, sink.closes)
	})
}

// TestWriteEmptyTable: zero rows is a valid stream (preamble + schema,
// nothing after).
func TestWriteEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	table := record.NewMemTable(wireTestSchema(), nil)
	require.NoError(t, Write(&buf, table, WriteOptions{}))

	r := bytes.NewReader(buf.Bytes())
	_, err := ReadPreamble(r)
	require.NoError(t, err)
	got, err := DecodeSchema(r)
	require.NoError(t, err)
	require.True(t, wireTestSchema().Equal(got))
	require.Zero(t, r.Len())
}
