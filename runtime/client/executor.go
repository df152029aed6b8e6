package client

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/satishbabariya/fluentsql/internal/debug"
	"github.com/satishbabariya/fluentsql/query/sqlgen"
)

// ErrNoResults is returned by ExecuteScalar when the query yields no rows.
var ErrNoResults = errors.New("query returned no results")

// Row is one result row keyed by column name.
type Row map[string]interface{}

// QueryExecutor is the execution contract consumed by the framework layer:
// it runs the SQL/parameter tuple the builders emit.
type QueryExecutor interface {
	Execute(ctx context.Context, query *sqlgen.Query) ([]Row, error)
	ExecuteScalar(ctx context.Context, query *sqlgen.Query) (interface{}, error)
	ExecuteNonQuery(ctx context.Context, query *sqlgen.Query) (int64, error)
}

// Executor runs built queries against a client, caching prepared statements
// per SQL text.
type Executor struct {
	db        *sql.DB
	stmtCache map[string]*sql.Stmt
	cacheMu   sync.RWMutex
}

// NewExecutor creates an executor over the client's connection pool.
func NewExecutor(c *Client) *Executor {
	return &Executor{
		db:        c.DB(),
		stmtCache: make(map[string]*sql.Stmt),
	}
}

// Execute runs a query and returns all rows.
func (e *Executor) Execute(ctx context.Context, query *sqlgen.Query) ([]Row, error) {
	stmt, err := e.cachedStmt(ctx, query.SQL)
	if err != nil {
		return nil, err
	}
	debug.Debug("executing query", "id", uuid.NewString(), "sql", query.SQL, "params", query.Parameters.Len())

	rows, err := stmt.QueryContext(ctx, namedArgs(query)...)
	if err != nil {
		return nil, errors.Wrap(err, "execute query")
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return nil, err
	}
	return out, errors.Wrap(rows.Err(), "read rows")
}

// ExecuteScalar runs a query and returns the first column of the first row,
// or ErrNoResults when the result set is empty.
func (e *Executor) ExecuteScalar(ctx context.Context, query *sqlgen.Query) (interface{}, error) {
	stmt, err := e.cachedStmt(ctx, query.SQL)
	if err != nil {
		return nil, err
	}
	debug.Debug("executing scalar query", "id", uuid.NewString(), "sql", query.SQL)

	var value interface{}
	err = stmt.QueryRowContext(ctx, namedArgs(query)...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNoResults
	}
	if err != nil {
		return nil, errors.Wrap(err, "execute scalar")
	}
	return value, nil
}

// ExecuteNonQuery runs a mutation and returns the number of affected rows.
func (e *Executor) ExecuteNonQuery(ctx context.Context, query *sqlgen.Query) (int64, error) {
	stmt, err := e.cachedStmt(ctx, query.SQL)
	if err != nil {
		return 0, err
	}
	debug.Debug("executing non-query", "id", uuid.NewString(), "sql", query.SQL)

	result, err := stmt.ExecContext(ctx, namedArgs(query)...)
	if err != nil {
		return 0, errors.Wrap(err, "execute non-query")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "rows affected")
	}
	return affected, nil
}

// cachedStmt returns a cached prepared statement or prepares and caches a
// new one. Identical builder input yields identical SQL text, which is what
// makes this cache effective.
func (e *Executor) cachedStmt(ctx context.Context, sqlText string) (*sql.Stmt, error) {
	e.cacheMu.RLock()
	stmt, ok := e.stmtCache[sqlText]
	e.cacheMu.RUnlock()
	if ok {
		return stmt, nil
	}

	stmt, err := e.db.PrepareContext(ctx, sqlText)
	if err != nil {
		return nil, errors.Wrap(err, "prepare statement")
	}
	e.cacheMu.Lock()
	e.stmtCache[sqlText] = stmt
	e.cacheMu.Unlock()
	return stmt, nil
}

// ClearStmtCache closes and drops all cached prepared statements.
func (e *Executor) ClearStmtCache() {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	for _, stmt := range e.stmtCache {
		stmt.Close()
	}
	e.stmtCache = make(map[string]*sql.Stmt)
}

// namedArgs converts the ordered parameter map into driver named arguments
// matching the @paramN placeholders in the SQL text.
func namedArgs(query *sqlgen.Query) []interface{} {
	args := make([]interface{}, 0, query.Parameters.Len())
	query.Parameters.Each(func(name string, value interface{}) {
		args = append(args, sql.Named(name, value))
	})
	return args
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "read columns")
	}

	var out []Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, nil
}

var _ QueryExecutor = (*Executor)(nil)
