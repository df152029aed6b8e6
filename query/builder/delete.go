package builder

import (
	"strings"

	"github.com/satishbabariya/fluentsql/query/sqlgen"
)

// DeleteBuilder accumulates a DELETE statement. Like UpdateBuilder, it
// refuses to build without a WHERE clause.
type DeleteBuilder struct {
	table        string
	conds        []sqlgen.Condition
	returning    []string
	returningSet bool
}

// NewDelete creates a DELETE builder.
func NewDelete() *DeleteBuilder {
	return &DeleteBuilder{}
}

func (b *DeleteBuilder) clone() *DeleteBuilder {
	c := *b
	c.conds = cloneConditions(b.conds)
	c.returning = cloneStrings(b.returning)
	return &c
}

// From sets the target table.
func (b *DeleteBuilder) From(table string) *DeleteBuilder {
	c := b.clone()
	c.table = table
	return c
}

// Where adds a comparison condition, AND-connected to any previous one.
func (b *DeleteBuilder) Where(column, operator string, value interface{}) *DeleteBuilder {
	return b.condition(simpleCond(column, operator, value, sqlgen.ConnectorAnd))
}

// WhereEq adds an equality condition.
func (b *DeleteBuilder) WhereEq(column string, value interface{}) *DeleteBuilder {
	return b.Where(column, "=", value)
}

// OrWhere adds a comparison condition, OR-connected to the previous one.
func (b *DeleteBuilder) OrWhere(column, operator string, value interface{}) *DeleteBuilder {
	return b.condition(simpleCond(column, operator, value, sqlgen.ConnectorOr))
}

// WhereCondition appends a prebuilt condition.
func (b *DeleteBuilder) WhereCondition(cond sqlgen.Condition) *DeleteBuilder {
	return b.condition(cond)
}

// WhereRaw appends a raw fragment; values bind positionally to "?" markers.
func (b *DeleteBuilder) WhereRaw(fragment string, values ...interface{}) *DeleteBuilder {
	return b.condition(rawCond(fragment, values, sqlgen.ConnectorAnd))
}

// WhereIn adds an IN condition.
func (b *DeleteBuilder) WhereIn(column string, values ...interface{}) *DeleteBuilder {
	return b.condition(inCond(column, false, values, sqlgen.ConnectorAnd))
}

// WhereNotIn adds a NOT IN condition.
func (b *DeleteBuilder) WhereNotIn(column string, values ...interface{}) *DeleteBuilder {
	return b.condition(inCond(column, true, values, sqlgen.ConnectorAnd))
}

// WhereBetween adds a BETWEEN condition.
func (b *DeleteBuilder) WhereBetween(column string, low, high interface{}) *DeleteBuilder {
	return b.condition(betweenCond(column, low, high, sqlgen.ConnectorAnd))
}

// WhereNull adds an IS NULL condition.
func (b *DeleteBuilder) WhereNull(column string) *DeleteBuilder {
	return b.condition(nullCond(column, false, sqlgen.ConnectorAnd))
}

// WhereNotNull adds an IS NOT NULL condition.
func (b *DeleteBuilder) WhereNotNull(column string) *DeleteBuilder {
	return b.condition(nullCond(column, true, sqlgen.ConnectorAnd))
}

func (b *DeleteBuilder) condition(cond sqlgen.Condition) *DeleteBuilder {
	c := b.clone()
	c.conds = appendCondition(c.conds, cond)
	return c
}

// Returning adds an OUTPUT DELETED clause carrying the removed rows.
// Without columns it emits DELETED.*.
func (b *DeleteBuilder) Returning(columns ...string) *DeleteBuilder {
	c := b.clone()
	c.returning = append(c.returning, columns...)
	c.returningSet = true
	return c
}

// Build validates and assembles the statement.
func (b *DeleteBuilder) Build() (*sqlgen.Query, error) {
	if strings.TrimSpace(b.table) == "" {
		return nil, buildErr("DELETE", "FROM", sqlgen.ErrMissingTable)
	}
	if err := sqlgen.ValidateIdentifier(b.table); err != nil {
		return nil, buildErr("DELETE", "FROM", err)
	}
	if len(b.conds) == 0 {
		return nil, buildErr("DELETE", "WHERE", sqlgen.ErrUnsafeMutationWithoutWhere)
	}

	bind := sqlgen.NewBinder()
	parts := []string{"DELETE FROM " + b.table}
	if b.returningSet {
		output, err := renderOutput("DELETED", b.returning)
		if err != nil {
			return nil, buildErr("DELETE", "OUTPUT", err)
		}
		parts = append(parts, output)
	}

	where, err := sqlgen.RenderConditions(b.conds, bind)
	if err != nil {
		return nil, buildErr("DELETE", "WHERE", err)
	}
	parts = append(parts, "WHERE "+where)

	return &sqlgen.Query{
		SQL:        strings.Join(parts, " "),
		Parameters: bind.Parameters(),
	}, nil
}
