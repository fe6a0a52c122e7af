package record

// Table is a row-oriented data source: a schema plus a forward scan over
// every row in source order. Scan stops at the first error returned by fn.
type Table interface {
	Schema() Schema
	Scan(fn func(row Row) error) error
}

// MemTable is an in-memory Table, mainly for tests and small payloads.
type MemTable struct {
	schema Schema
	rows   []Row
}

var _ Table = (*MemTable)(nil)

func NewMemTable(schema Schema, rows []Row) *MemTable {
	return &MemTable{
		schema: schema,
		rows:   rows,
	}
}

func (t *MemTable) Schema() Schema { return t.schema }

func (t *MemTable) NumRows() int { return len(t.rows) }

func (t *MemTable) Append(rows ...Row) {
	t.rows = append(t.rows, rows...)
}

func (t *MemTable) Scan(fn func(row Row) error) error {
	for _, row := range t.rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}
