package builder

import "github.com/satishbabariya/fluentsql/query/sqlgen"

// The WHERE vocabulary is shared by Select, Update and Delete. Each builder
// keeps its own condition list; these helpers construct the variants and
// append without aliasing the source slice.

func appendCondition(conds []sqlgen.Condition, c sqlgen.Condition) []sqlgen.Condition {
	out := make([]sqlgen.Condition, len(conds), len(conds)+1)
	copy(out, conds)
	return append(out, c)
}

func simpleCond(column, operator string, value interface{}, conn sqlgen.Connector) sqlgen.Condition {
	return sqlgen.SimpleCondition{Column: column, Operator: operator, Value: value, Connector: conn}
}

func rawCond(text string, values []interface{}, conn sqlgen.Connector) sqlgen.Condition {
	return sqlgen.RawCondition{Text: text, Values: values, Connector: conn}
}

func inCond(column string, not bool, values []interface{}, conn sqlgen.Connector) sqlgen.Condition {
	return sqlgen.InCondition{Column: column, Not: not, Values: values, Connector: conn}
}

func betweenCond(column string, low, high interface{}, conn sqlgen.Connector) sqlgen.Condition {
	return sqlgen.BetweenCondition{Column: column, Low: low, High: high, Connector: conn}
}

func nullCond(column string, not bool, conn sqlgen.Connector) sqlgen.Condition {
	return sqlgen.NullCondition{Column: column, Not: not, Connector: conn}
}
