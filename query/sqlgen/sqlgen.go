// Package sqlgen holds the clause data model and the T-SQL fragment
// renderers shared by the statement builders: conditions, joins, ordering,
// grouping, pagination, and the parameter binder that keeps every literal
// value out of the SQL text.
package sqlgen

// Query is a fully assembled statement: dialect-correct SQL text plus the
// insertion-ordered parameter map the executor passes along as named
// arguments.
type Query struct {
	SQL        string
	Parameters *Parameters
}
