package sqlgen

import "errors"

// Validation errors raised while assembling a statement. All of them surface
// at Build time; none are retryable.
var (
	// ErrInvalidIdentifier is returned for a blank column/table name or a
	// raw fragment containing statement terminators.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrMissingFromClause is returned when a SELECT has no FROM table.
	ErrMissingFromClause = errors.New("missing FROM clause")

	// ErrMissingSelectClause is returned when a SELECT has neither columns
	// nor aggregates.
	ErrMissingSelectClause = errors.New("empty select list")

	// ErrMissingTable is returned when an INSERT/UPDATE has no target table.
	ErrMissingTable = errors.New("missing target table")

	// ErrMissingValues is returned when an INSERT carries no row data.
	ErrMissingValues = errors.New("no values to insert")

	// ErrAggregateRequiresGroupBy is returned when plain columns are mixed
	// with aggregates and no GROUP BY was given.
	ErrAggregateRequiresGroupBy = errors.New("aggregates mixed with plain columns require GROUP BY")

	// ErrHavingRequiresGroupBy is returned when HAVING is present without
	// GROUP BY columns.
	ErrHavingRequiresGroupBy = errors.New("HAVING requires GROUP BY")

	// ErrInvalidInValues is returned for an IN/NOT IN condition with an
	// empty value list.
	ErrInvalidInValues = errors.New("IN condition requires at least one value")

	// ErrInvalidOrderDirection is returned for a sort direction other than
	// ASC or DESC.
	ErrInvalidOrderDirection = errors.New("order direction must be ASC or DESC")

	// ErrInvalidLimitOffset is returned for a negative limit or offset.
	ErrInvalidLimitOffset = errors.New("limit and offset must not be negative")

	// ErrUnsafeMutationWithoutWhere is returned when an UPDATE or DELETE is
	// built with zero WHERE conditions.
	ErrUnsafeMutationWithoutWhere = errors.New("mutation without WHERE clause")
)
