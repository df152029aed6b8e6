package builder

import (
	"strings"

	"github.com/satishbabariya/fluentsql/query/sqlgen"
)

// UpdateBuilder accumulates an UPDATE statement. WHERE is mandatory: a
// builder with zero conditions refuses to build rather than mutate a whole
// table.
type UpdateBuilder struct {
	table        string
	setCols      []string
	setVals      map[string]interface{}
	conds        []sqlgen.Condition
	returning    []string
	returningSet bool
}

// NewUpdate creates an UPDATE builder.
func NewUpdate() *UpdateBuilder {
	return &UpdateBuilder{setVals: map[string]interface{}{}}
}

func (b *UpdateBuilder) clone() *UpdateBuilder {
	c := *b
	c.setCols = cloneStrings(b.setCols)
	c.setVals = cloneValues(b.setVals)
	c.conds = cloneConditions(b.conds)
	c.returning = cloneStrings(b.returning)
	return &c
}

// Table sets the target table.
func (b *UpdateBuilder) Table(table string) *UpdateBuilder {
	c := b.clone()
	c.table = table
	return c
}

// Set merges a column map into the SET clause, last write wins per key. Map
// entries apply in sorted column order so parameter numbering stays
// reproducible.
func (b *UpdateBuilder) Set(values map[string]interface{}) *UpdateBuilder {
	c := b.clone()
	for _, col := range sortedColumns(values) {
		c.setColumn(col, values[col])
	}
	return c
}

// SetColumn sets one column of the SET clause, keeping call order.
func (b *UpdateBuilder) SetColumn(column string, value interface{}) *UpdateBuilder {
	c := b.clone()
	c.setColumn(column, value)
	return c
}

func (b *UpdateBuilder) setColumn(column string, value interface{}) {
	if _, ok := b.setVals[column]; !ok {
		b.setCols = append(b.setCols, column)
	}
	b.setVals[column] = value
}

// Where adds a comparison condition, AND-connected to any previous one.
func (b *UpdateBuilder) Where(column, operator string, value interface{}) *UpdateBuilder {
	return b.condition(simpleCond(column, operator, value, sqlgen.ConnectorAnd))
}

// WhereEq adds an equality condition.
func (b *UpdateBuilder) WhereEq(column string, value interface{}) *UpdateBuilder {
	return b.Where(column, "=", value)
}

// OrWhere adds a comparison condition, OR-connected to the previous one.
func (b *UpdateBuilder) OrWhere(column, operator string, value interface{}) *UpdateBuilder {
	return b.condition(simpleCond(column, operator, value, sqlgen.ConnectorOr))
}

// WhereCondition appends a prebuilt condition.
func (b *UpdateBuilder) WhereCondition(cond sqlgen.Condition) *UpdateBuilder {
	return b.condition(cond)
}

// WhereRaw appends a raw fragment; values bind positionally to "?" markers.
func (b *UpdateBuilder) WhereRaw(fragment string, values ...interface{}) *UpdateBuilder {
	return b.condition(rawCond(fragment, values, sqlgen.ConnectorAnd))
}

// WhereIn adds an IN condition.
func (b *UpdateBuilder) WhereIn(column string, values ...interface{}) *UpdateBuilder {
	return b.condition(inCond(column, false, values, sqlgen.ConnectorAnd))
}

// WhereNotIn adds a NOT IN condition.
func (b *UpdateBuilder) WhereNotIn(column string, values ...interface{}) *UpdateBuilder {
	return b.condition(inCond(column, true, values, sqlgen.ConnectorAnd))
}

// WhereBetween adds a BETWEEN condition.
func (b *UpdateBuilder) WhereBetween(column string, low, high interface{}) *UpdateBuilder {
	return b.condition(betweenCond(column, low, high, sqlgen.ConnectorAnd))
}

// WhereNull adds an IS NULL condition.
func (b *UpdateBuilder) WhereNull(column string) *UpdateBuilder {
	return b.condition(nullCond(column, false, sqlgen.ConnectorAnd))
}

// WhereNotNull adds an IS NOT NULL condition.
func (b *UpdateBuilder) WhereNotNull(column string) *UpdateBuilder {
	return b.condition(nullCond(column, true, sqlgen.ConnectorAnd))
}

func (b *UpdateBuilder) condition(cond sqlgen.Condition) *UpdateBuilder {
	c := b.clone()
	c.conds = appendCondition(c.conds, cond)
	return c
}

// Returning adds an OUTPUT INSERTED clause carrying the post-update row.
// Without columns it emits INSERTED.*.
func (b *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	c := b.clone()
	c.returning = append(c.returning, columns...)
	c.returningSet = true
	return c
}

// Build validates and assembles the statement. SET values bind before WHERE
// values on one running counter.
func (b *UpdateBuilder) Build() (*sqlgen.Query, error) {
	if strings.TrimSpace(b.table) == "" {
		return nil, buildErr("UPDATE", "table", sqlgen.ErrMissingTable)
	}
	if err := sqlgen.ValidateIdentifier(b.table); err != nil {
		return nil, buildErr("UPDATE", "table", err)
	}
	if len(b.setCols) == 0 {
		return nil, buildErr("UPDATE", "SET", sqlgen.ErrMissingValues)
	}
	if len(b.conds) == 0 {
		return nil, buildErr("UPDATE", "WHERE", sqlgen.ErrUnsafeMutationWithoutWhere)
	}

	bind := sqlgen.NewBinder()
	assignments := make([]string, len(b.setCols))
	for i, col := range b.setCols {
		if err := sqlgen.ValidateIdentifier(col); err != nil {
			return nil, buildErr("UPDATE", "SET", err)
		}
		assignments[i] = col + " = " + bind.Bind(b.setVals[col])
	}

	parts := []string{"UPDATE " + b.table, "SET " + strings.Join(assignments, ", ")}
	if b.returningSet {
		output, err := renderOutput("INSERTED", b.returning)
		if err != nil {
			return nil, buildErr("UPDATE", "OUTPUT", err)
		}
		parts = append(parts, output)
	}

	where, err := sqlgen.RenderConditions(b.conds, bind)
	if err != nil {
		return nil, buildErr("UPDATE", "WHERE", err)
	}
	parts = append(parts, "WHERE "+where)

	return &sqlgen.Query{
		SQL:        strings.Join(parts, " "),
		Parameters: bind.Parameters(),
	}, nil
}
