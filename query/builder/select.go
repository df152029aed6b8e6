package builder

import (
	"strings"

	"github.com/satishbabariya/fluentsql/query/sqlgen"
)

// SelectBuilder accumulates the clauses of a SELECT statement. The zero
// value is not usable; start with NewSelect.
type SelectBuilder struct {
	exprs      []sqlgen.SelectExpr
	aggregates []sqlgen.Aggregate
	distinct   bool
	table      string
	tableRaw   bool
	joins      []sqlgen.Join
	conds      []sqlgen.Condition
	groupBy    []string
	having     []sqlgen.Condition
	orderBy    []sqlgen.OrderBy
	limit      int
	limitSet   bool
	offset     int
	offsetSet  bool
}

// NewSelect creates a SELECT builder over the given columns. Columns may be
// added later via Columns; "*" selects everything.
func NewSelect(columns ...string) *SelectBuilder {
	b := &SelectBuilder{}
	for _, col := range columns {
		b.exprs = append(b.exprs, sqlgen.SelectExpr{Expr: col})
	}
	return b
}

func (b *SelectBuilder) clone() *SelectBuilder {
	c := *b
	c.exprs = append([]sqlgen.SelectExpr(nil), b.exprs...)
	c.aggregates = append([]sqlgen.Aggregate(nil), b.aggregates...)
	c.joins = append([]sqlgen.Join(nil), b.joins...)
	c.conds = cloneConditions(b.conds)
	c.groupBy = cloneStrings(b.groupBy)
	c.having = cloneConditions(b.having)
	c.orderBy = append([]sqlgen.OrderBy(nil), b.orderBy...)
	return &c
}

// Columns appends plain columns to the select list.
func (b *SelectBuilder) Columns(columns ...string) *SelectBuilder {
	c := b.clone()
	for _, col := range columns {
		c.exprs = append(c.exprs, sqlgen.SelectExpr{Expr: col})
	}
	return c
}

// SelectRaw appends a raw expression to the select list, bypassing
// identifier validation.
func (b *SelectBuilder) SelectRaw(expr string) *SelectBuilder {
	c := b.clone()
	c.exprs = append(c.exprs, sqlgen.SelectExpr{Expr: expr, Raw: true})
	return c
}

// Distinct marks the statement as SELECT DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	c := b.clone()
	c.distinct = true
	return c
}

// Count adds a COUNT aggregate to the select list.
func (b *SelectBuilder) Count(column, alias string) *SelectBuilder {
	return b.aggregate("COUNT", column, alias)
}

// Sum adds a SUM aggregate to the select list.
func (b *SelectBuilder) Sum(column, alias string) *SelectBuilder {
	return b.aggregate("SUM", column, alias)
}

// Avg adds an AVG aggregate to the select list.
func (b *SelectBuilder) Avg(column, alias string) *SelectBuilder {
	return b.aggregate("AVG", column, alias)
}

// Min adds a MIN aggregate to the select list.
func (b *SelectBuilder) Min(column, alias string) *SelectBuilder {
	return b.aggregate("MIN", column, alias)
}

// Max adds a MAX aggregate to the select list.
func (b *SelectBuilder) Max(column, alias string) *SelectBuilder {
	return b.aggregate("MAX", column, alias)
}

func (b *SelectBuilder) aggregate(fn, column, alias string) *SelectBuilder {
	c := b.clone()
	c.aggregates = append(c.aggregates, sqlgen.Aggregate{Function: fn, Column: column, Alias: alias})
	return c
}

// From sets the source table.
func (b *SelectBuilder) From(table string) *SelectBuilder {
	c := b.clone()
	c.table = table
	c.tableRaw = false
	return c
}

// FromRaw sets a raw FROM fragment (subquery, alias), bypassing identifier
// validation.
func (b *SelectBuilder) FromRaw(fragment string) *SelectBuilder {
	c := b.clone()
	c.table = fragment
	c.tableRaw = true
	return c
}

// Join adds an INNER JOIN.
func (b *SelectBuilder) Join(table, on string) *SelectBuilder {
	return b.join("INNER", table, on)
}

// InnerJoin adds an INNER JOIN.
func (b *SelectBuilder) InnerJoin(table, on string) *SelectBuilder {
	return b.join("INNER", table, on)
}

// LeftJoin adds a LEFT JOIN.
func (b *SelectBuilder) LeftJoin(table, on string) *SelectBuilder {
	return b.join("LEFT", table, on)
}

// RightJoin adds a RIGHT JOIN.
func (b *SelectBuilder) RightJoin(table, on string) *SelectBuilder {
	return b.join("RIGHT", table, on)
}

// FullJoin adds a FULL JOIN.
func (b *SelectBuilder) FullJoin(table, on string) *SelectBuilder {
	return b.join("FULL", table, on)
}

func (b *SelectBuilder) join(kind, table, on string) *SelectBuilder {
	c := b.clone()
	c.joins = append(c.joins, sqlgen.Join{Kind: kind, Table: table, On: on})
	return c
}

// Where adds a comparison condition, AND-connected to any previous one.
func (b *SelectBuilder) Where(column, operator string, value interface{}) *SelectBuilder {
	return b.condition(simpleCond(column, operator, value, sqlgen.ConnectorAnd))
}

// WhereEq adds an equality condition.
func (b *SelectBuilder) WhereEq(column string, value interface{}) *SelectBuilder {
	return b.Where(column, "=", value)
}

// OrWhere adds a comparison condition, OR-connected to the previous one.
func (b *SelectBuilder) OrWhere(column, operator string, value interface{}) *SelectBuilder {
	return b.condition(simpleCond(column, operator, value, sqlgen.ConnectorOr))
}

// WhereCondition appends a prebuilt condition.
func (b *SelectBuilder) WhereCondition(cond sqlgen.Condition) *SelectBuilder {
	return b.condition(cond)
}

// WhereRaw appends a raw fragment; values bind positionally to "?" markers.
func (b *SelectBuilder) WhereRaw(fragment string, values ...interface{}) *SelectBuilder {
	return b.condition(rawCond(fragment, values, sqlgen.ConnectorAnd))
}

// WhereIn adds an IN condition.
func (b *SelectBuilder) WhereIn(column string, values ...interface{}) *SelectBuilder {
	return b.condition(inCond(column, false, values, sqlgen.ConnectorAnd))
}

// WhereNotIn adds a NOT IN condition.
func (b *SelectBuilder) WhereNotIn(column string, values ...interface{}) *SelectBuilder {
	return b.condition(inCond(column, true, values, sqlgen.ConnectorAnd))
}

// WhereBetween adds a BETWEEN condition.
func (b *SelectBuilder) WhereBetween(column string, low, high interface{}) *SelectBuilder {
	return b.condition(betweenCond(column, low, high, sqlgen.ConnectorAnd))
}

// WhereNull adds an IS NULL condition.
func (b *SelectBuilder) WhereNull(column string) *SelectBuilder {
	return b.condition(nullCond(column, false, sqlgen.ConnectorAnd))
}

// WhereNotNull adds an IS NOT NULL condition.
func (b *SelectBuilder) WhereNotNull(column string) *SelectBuilder {
	return b.condition(nullCond(column, true, sqlgen.ConnectorAnd))
}

func (b *SelectBuilder) condition(cond sqlgen.Condition) *SelectBuilder {
	c := b.clone()
	c.conds = appendCondition(c.conds, cond)
	return c
}

// GroupBy sets the grouping columns.
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	c := b.clone()
	c.groupBy = append(c.groupBy, columns...)
	return c
}

// Having adds a HAVING condition. Only meaningful alongside GroupBy; Build
// rejects it otherwise.
func (b *SelectBuilder) Having(column, operator string, value interface{}) *SelectBuilder {
	c := b.clone()
	c.having = appendCondition(c.having, simpleCond(column, operator, value, sqlgen.ConnectorAnd))
	return c
}

// HavingRaw adds a raw HAVING fragment; values bind positionally to "?"
// markers.
func (b *SelectBuilder) HavingRaw(fragment string, values ...interface{}) *SelectBuilder {
	c := b.clone()
	c.having = appendCondition(c.having, rawCond(fragment, values, sqlgen.ConnectorAnd))
	return c
}

// OrderBy appends a sort key.
func (b *SelectBuilder) OrderBy(column, direction string) *SelectBuilder {
	c := b.clone()
	c.orderBy = append(c.orderBy, sqlgen.OrderBy{Column: column, Direction: direction})
	return c
}

// ThenBy appends a secondary sort key; sorts are stable in call order.
func (b *SelectBuilder) ThenBy(column, direction string) *SelectBuilder {
	return b.OrderBy(column, direction)
}

// Limit caps the row count. Renders as TOP until an offset forces
// OFFSET/FETCH pagination.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	c := b.clone()
	c.limit = n
	c.limitSet = true
	return c
}

// Offset skips rows. Valid without a limit; renders bare "OFFSET n ROWS".
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	c := b.clone()
	c.offset = n
	c.offsetSet = true
	return c
}

// Build validates the accumulated state and assembles the statement in fixed
// section order, regardless of the order methods were called in.
func (b *SelectBuilder) Build() (*sqlgen.Query, error) {
	if strings.TrimSpace(b.table) == "" {
		return nil, buildErr("SELECT", "FROM", sqlgen.ErrMissingFromClause)
	}
	if len(b.exprs) == 0 && len(b.aggregates) == 0 {
		return nil, buildErr("SELECT", "select list", sqlgen.ErrMissingSelectClause)
	}
	if (b.limitSet && b.limit < 0) || (b.offsetSet && b.offset < 0) {
		return nil, buildErr("SELECT", "pagination", sqlgen.ErrInvalidLimitOffset)
	}
	if len(b.aggregates) > 0 && len(b.exprs) > 0 && len(b.groupBy) == 0 {
		return nil, buildErr("SELECT", "select list", sqlgen.ErrAggregateRequiresGroupBy)
	}
	if len(b.having) > 0 && len(b.groupBy) == 0 {
		return nil, buildErr("SELECT", "HAVING", sqlgen.ErrHavingRequiresGroupBy)
	}
	if !b.tableRaw {
		if err := sqlgen.ValidateIdentifier(b.table); err != nil {
			return nil, buildErr("SELECT", "FROM", err)
		}
	}

	bind := sqlgen.NewBinder()
	var parts []string

	// TOP only covers the limit-without-offset case; with an offset the
	// pagination moves to OFFSET/FETCH.
	useTop := b.limitSet && !b.offsetSet
	selectList, err := sqlgen.RenderSelectList(b.distinct, b.limit, useTop, b.exprs, b.aggregates)
	if err != nil {
		return nil, buildErr("SELECT", "select list", err)
	}
	parts = append(parts, selectList, "FROM "+b.table)

	if len(b.joins) > 0 {
		joins, err := sqlgen.RenderJoins(b.joins)
		if err != nil {
			return nil, buildErr("SELECT", "JOIN", err)
		}
		parts = append(parts, joins)
	}

	if len(b.conds) > 0 {
		where, err := sqlgen.RenderConditions(b.conds, bind)
		if err != nil {
			return nil, buildErr("SELECT", "WHERE", err)
		}
		parts = append(parts, "WHERE "+where)
	}

	if len(b.groupBy) > 0 {
		group, err := sqlgen.RenderGroupBy(b.groupBy, b.having, bind)
		if err != nil {
			return nil, buildErr("SELECT", "GROUP BY", err)
		}
		parts = append(parts, group)
	}

	if len(b.orderBy) > 0 {
		order, err := sqlgen.RenderOrderBy(b.orderBy)
		if err != nil {
			return nil, buildErr("SELECT", "ORDER BY", err)
		}
		parts = append(parts, order)
	} else if b.offsetSet {
		// OFFSET/FETCH is only legal after ORDER BY in T-SQL.
		parts = append(parts, "ORDER BY (SELECT NULL)")
	}

	if b.offsetSet {
		parts = append(parts, sqlgen.RenderOffsetFetch(b.offset, b.limit, b.limitSet))
	}

	return &sqlgen.Query{
		SQL:        strings.Join(parts, " "),
		Parameters: bind.Parameters(),
	}, nil
}
