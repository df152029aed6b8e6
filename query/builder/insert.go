package builder

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/fluentsql/query/sqlgen"
)

// InsertBuilder accumulates an INSERT statement: either a single merged row
// or an explicit multi-row batch.
type InsertBuilder struct {
	table        string
	cols         []string // single-row column order, first write wins
	row          map[string]interface{}
	rows         []map[string]interface{}
	returning    []string
	returningSet bool
}

// NewInsert creates an INSERT builder.
func NewInsert() *InsertBuilder {
	return &InsertBuilder{row: map[string]interface{}{}}
}

func (b *InsertBuilder) clone() *InsertBuilder {
	c := *b
	c.cols = cloneStrings(b.cols)
	c.row = cloneValues(b.row)
	c.rows = make([]map[string]interface{}, len(b.rows))
	for i, row := range b.rows {
		c.rows[i] = cloneValues(row)
	}
	c.returning = cloneStrings(b.returning)
	return &c
}

// Into sets the target table.
func (b *InsertBuilder) Into(table string) *InsertBuilder {
	c := b.clone()
	c.table = table
	return c
}

// Value sets one column of the single row. Repeated writes to the same
// column keep the original position but take the last value.
func (b *InsertBuilder) Value(column string, value interface{}) *InsertBuilder {
	c := b.clone()
	c.setValue(column, value)
	return c
}

// Values merges a column map into the single row, last write wins per key.
// Map entries apply in sorted column order so parameter numbering stays
// reproducible.
func (b *InsertBuilder) Values(values map[string]interface{}) *InsertBuilder {
	c := b.clone()
	for _, col := range sortedColumns(values) {
		c.setValue(col, values[col])
	}
	return c
}

func (b *InsertBuilder) setValue(column string, value interface{}) {
	if _, ok := b.row[column]; !ok {
		b.cols = append(b.cols, column)
	}
	b.row[column] = value
}

// Rows switches the builder to bulk mode. Any single-row state is ignored.
// The column set comes from the first row; every row must carry exactly
// those columns.
func (b *InsertBuilder) Rows(rows ...map[string]interface{}) *InsertBuilder {
	c := b.clone()
	for _, row := range rows {
		c.rows = append(c.rows, cloneValues(row))
	}
	return c
}

// Returning adds an OUTPUT INSERTED clause. Without columns it emits
// INSERTED.*.
func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	c := b.clone()
	c.returning = append(c.returning, columns...)
	c.returningSet = true
	return c
}

// Build validates and assembles the statement. Row values bind in
// column-then-row order on a single running counter.
func (b *InsertBuilder) Build() (*sqlgen.Query, error) {
	if strings.TrimSpace(b.table) == "" {
		return nil, buildErr("INSERT", "INTO", sqlgen.ErrMissingTable)
	}
	if err := sqlgen.ValidateIdentifier(b.table); err != nil {
		return nil, buildErr("INSERT", "INTO", err)
	}

	cols, rows, err := b.rowData()
	if err != nil {
		return nil, err
	}
	for _, col := range cols {
		if err := sqlgen.ValidateIdentifier(col); err != nil {
			return nil, buildErr("INSERT", "columns", err)
		}
	}

	bind := sqlgen.NewBinder()
	tuples := make([]string, len(rows))
	for i, row := range rows {
		placeholders := make([]string, len(cols))
		for j, col := range cols {
			placeholders[j] = bind.Bind(row[col])
		}
		tuples[i] = "(" + strings.Join(placeholders, ", ") + ")"
	}

	parts := []string{
		fmt.Sprintf("INSERT INTO %s (%s)", b.table, strings.Join(cols, ", ")),
		"VALUES " + strings.Join(tuples, ", "),
	}
	if b.returningSet {
		output, err := renderOutput("INSERTED", b.returning)
		if err != nil {
			return nil, buildErr("INSERT", "OUTPUT", err)
		}
		parts = append(parts, output)
	}

	return &sqlgen.Query{
		SQL:        strings.Join(parts, " "),
		Parameters: bind.Parameters(),
	}, nil
}

// rowData resolves the column order and row list for assembly. Bulk rows
// take precedence; the first row fixes the column set in sorted order and
// later rows must match it exactly rather than silently misaligning.
func (b *InsertBuilder) rowData() ([]string, []map[string]interface{}, error) {
	if len(b.rows) > 0 {
		cols := sortedColumns(b.rows[0])
		for i, row := range b.rows {
			if len(row) != len(cols) {
				return nil, nil, buildErr("INSERT", fmt.Sprintf("row %d", i), sqlgen.ErrMissingValues)
			}
			for _, col := range cols {
				if _, ok := row[col]; !ok {
					return nil, nil, buildErr("INSERT", fmt.Sprintf("row %d", i), sqlgen.ErrMissingValues)
				}
			}
		}
		return cols, b.rows, nil
	}
	if len(b.row) == 0 {
		return nil, nil, buildErr("INSERT", "VALUES", sqlgen.ErrMissingValues)
	}
	return b.cols, []map[string]interface{}{b.row}, nil
}

// renderOutput renders the OUTPUT clause for the given pseudo-table
// (INSERTED or DELETED).
func renderOutput(source string, columns []string) (string, error) {
	if len(columns) == 0 {
		return "OUTPUT " + source + ".*", nil
	}
	parts := make([]string, len(columns))
	for i, col := range columns {
		if col != "*" {
			if err := sqlgen.ValidateIdentifier(col); err != nil {
				return "", err
			}
		}
		parts[i] = source + "." + col
	}
	return "OUTPUT " + strings.Join(parts, ", "), nil
}
