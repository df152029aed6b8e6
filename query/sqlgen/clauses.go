package sqlgen

import (
	"fmt"
	"strings"
)

// SelectExpr is one entry of the select list. Raw expressions skip
// identifier validation.
type SelectExpr struct {
	Expr string
	Raw  bool
}

// Aggregate is one aggregate entry of the select list.
type Aggregate struct {
	Function string // COUNT, SUM, AVG, MIN or MAX
	Column   string
	Alias    string
}

// Join is one JOIN clause, rendered in insertion order.
type Join struct {
	Kind  string // INNER, LEFT, RIGHT or FULL
	Table string
	On    string
}

// OrderBy is one ORDER BY key.
type OrderBy struct {
	Column    string
	Direction string // ASC or DESC
}

// RenderSelectList renders "SELECT [DISTINCT] [TOP n] <exprs>". TOP is the
// caller's decision; it only applies when paginating without an offset.
func RenderSelectList(distinct bool, top int, topSet bool, exprs []SelectExpr, aggregates []Aggregate) (string, error) {
	list := make([]string, 0, len(exprs)+len(aggregates))
	for _, e := range exprs {
		if !e.Raw && e.Expr != "*" {
			if err := ValidateIdentifier(e.Expr); err != nil {
				return "", err
			}
		}
		list = append(list, e.Expr)
	}
	for _, agg := range aggregates {
		if agg.Column != "*" {
			if err := ValidateIdentifier(agg.Column); err != nil {
				return "", err
			}
		}
		expr := fmt.Sprintf("%s(%s)", agg.Function, agg.Column)
		if agg.Alias != "" {
			if err := ValidateIdentifier(agg.Alias); err != nil {
				return "", err
			}
			expr += " AS " + agg.Alias
		}
		list = append(list, expr)
	}

	var sb strings.Builder
	sb.WriteString("SELECT")
	if distinct {
		sb.WriteString(" DISTINCT")
	}
	if topSet {
		fmt.Fprintf(&sb, " TOP %d", top)
	}
	sb.WriteString(" " + strings.Join(list, ", "))
	return sb.String(), nil
}

// RenderJoins renders the join clauses in insertion order, space-joined.
func RenderJoins(joins []Join) (string, error) {
	parts := make([]string, 0, len(joins))
	for _, j := range joins {
		if err := ValidateIdentifier(j.Table); err != nil {
			return "", err
		}
		if err := ValidateRawFragment(j.On); err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s JOIN %s ON %s", j.Kind, j.Table, j.On))
	}
	return strings.Join(parts, " "), nil
}

// RenderOrderBy renders "ORDER BY ..." keys in insertion order, so
// multi-key sorts stay stable. Directions normalize to upper case.
func RenderOrderBy(orders []OrderBy) (string, error) {
	parts := make([]string, len(orders))
	for i, ob := range orders {
		if err := ValidateIdentifier(ob.Column); err != nil {
			return "", err
		}
		direction := strings.ToUpper(strings.TrimSpace(ob.Direction))
		if direction == "" {
			direction = "ASC"
		}
		if direction != "ASC" && direction != "DESC" {
			return "", fmt.Errorf("%w: %q on column %s", ErrInvalidOrderDirection, ob.Direction, ob.Column)
		}
		parts[i] = ob.Column + " " + direction
	}
	return "ORDER BY " + strings.Join(parts, ", "), nil
}

// RenderGroupBy renders "GROUP BY ..." plus an optional HAVING tail built
// from the shared condition model.
func RenderGroupBy(columns []string, having []Condition, b *Binder) (string, error) {
	for _, col := range columns {
		if err := ValidateIdentifier(col); err != nil {
			return "", err
		}
	}
	out := "GROUP BY " + strings.Join(columns, ", ")
	if len(having) > 0 {
		havingSQL, err := RenderConditions(having, b)
		if err != nil {
			return "", err
		}
		out += " HAVING " + havingSQL
	}
	return out, nil
}

// RenderOffsetFetch renders T-SQL keyset pagination. FETCH only appears when
// a limit was set; offset-only pagination is valid and renders bare
// "OFFSET n ROWS".
func RenderOffsetFetch(offset, limit int, limitSet bool) string {
	out := fmt.Sprintf("OFFSET %d ROWS", offset)
	if limitSet {
		out += fmt.Sprintf(" FETCH NEXT %d ROWS ONLY", limit)
	}
	return out
}
