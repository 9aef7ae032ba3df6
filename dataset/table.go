// Package dataset implements loading, schema validation and serialization
// of delimited tabular data. A Table is an immutable snapshot of one
// dataset: operations return new tables and never mutate the receiver.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"churnprep/pkg/errors"
)

// Table is an ordered set of named columns over row-major string cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Load parses a delimited stream with a header line into a Table.
// It returns a FormatError for unparseable input or a header missing a
// schema-required column, and a DataError when the input holds no data rows.
func Load(r io.Reader, source string, schema Schema) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are rejected below with a line number

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewFormatError(source, 0, err.Error())
	}
	if len(records) == 0 {
		return nil, errors.WrapDataError("Load", "input "+source+" is empty", errors.ErrEmptyData)
	}

	header := records[0]
	rows := records[1:]
	if len(rows) == 0 {
		return nil, errors.NewDataError("Load", "input "+source+" contains a header but no data rows")
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, errors.NewFormatError(source, i+2,
				fmt.Sprintf("row has %d fields, header has %d", len(row), len(header)))
		}
	}

	table := &Table{Columns: header, Rows: rows}
	for _, name := range schema.RequiredColumns() {
		if _, ok := table.ColumnIndex(name); !ok {
			return nil, errors.NewFormatError(source, 1, fmt.Sprintf("required column %q absent from header", name))
		}
	}
	return table, nil
}

// LoadFile opens path and loads it as a Table.
func LoadFile(path string, schema Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "churnprep: LoadFile")
	}
	defer f.Close()
	return Load(f, path, schema)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, errors.NewSchemaError("Table.Column", name, t.Columns)
	}
	col := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}
	return col, nil
}

// DropColumns returns a new Table without the named columns.
// Every named column must exist; a missing one is a SchemaError.
func (t *Table) DropColumns(names ...string) (*Table, error) {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		idx, ok := t.ColumnIndex(name)
		if !ok {
			return nil, errors.NewSchemaError("Table.DropColumns", name, t.Columns)
		}
		drop[idx] = true
	}

	kept := make([]string, 0, len(t.Columns)-len(drop))
	for i, c := range t.Columns {
		if !drop[i] {
			kept = append(kept, c)
		}
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out := make([]string, 0, len(kept))
		for j, cell := range row {
			if !drop[j] {
				out = append(out, cell)
			}
		}
		rows[i] = out
	}
	return &Table{Columns: kept, Rows: rows}, nil
}
