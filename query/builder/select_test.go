package builder_test

import (
	"testing"

	"github.com/satishbabariya/fluentsql/query/builder"
	"github.com/satishbabariya/fluentsql/query/sqlgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_BasicWithTop(t *testing.T) {
	q, err := builder.NewSelect("id", "name").
		From("users").
		Where("active", "=", true).
		OrderBy("name", "ASC").
		Limit(5).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "SELECT TOP 5 id, name FROM users WHERE active = @param0 ORDER BY name ASC", q.SQL)
	assert.Equal(t, []string{"param0"}, q.Parameters.Names())
	v, _ := q.Parameters.Get("param0")
	assert.Equal(t, true, v)
}

func TestSelect_OffsetWithoutLimitOrOrder(t *testing.T) {
	q, err := builder.NewSelect("*").From("t").Offset(10).Build()
	require.NoError(t, err)

	// Offset-only pagination is valid; T-SQL needs an ORDER BY, so one is
	// synthesized. No FETCH without a limit.
	assert.Equal(t, "SELECT * FROM t ORDER BY (SELECT NULL) OFFSET 10 ROWS", q.SQL)
	assert.Equal(t, 0, q.Parameters.Len())
}

func TestSelect_LimitAndOffsetUseFetch(t *testing.T) {
	q, err := builder.NewSelect("id").
		From("t").
		OrderBy("id", "DESC").
		Limit(5).
		Offset(10).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM t ORDER BY id DESC OFFSET 10 ROWS FETCH NEXT 5 ROWS ONLY", q.SQL)
	assert.NotContains(t, q.SQL, "TOP")
}

func TestSelect_ClauseOrderIndependentOfCallOrder(t *testing.T) {
	q, err := builder.NewSelect().
		Limit(3).
		OrderBy("id", "ASC").
		Where("a", ">", 1).
		Columns("id").
		LeftJoin("orders", "orders.user_id = users.id").
		From("users").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "SELECT TOP 3 id FROM users LEFT JOIN orders ON orders.user_id = users.id WHERE a > @param0 ORDER BY id ASC", q.SQL)
}

func TestSelect_WhereVariants(t *testing.T) {
	q, err := builder.NewSelect("id").
		From("t").
		WhereIn("status", "a", "b", "c").
		WhereBetween("price", 10, 20).
		WhereNotNull("shipped_at").
		OrWhere("priority", ">", 9).
		Build()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id FROM t WHERE status IN (@param0, @param1, @param2) AND price BETWEEN @param3 AND @param4 AND shipped_at IS NOT NULL OR priority > @param5",
		q.SQL)
	assert.Equal(t, []string{"param0", "param1", "param2", "param3", "param4", "param5"}, q.Parameters.Names())
}

func TestSelect_GroupByHaving(t *testing.T) {
	q, err := builder.NewSelect("status").
		Count("id", "total").
		From("orders").
		Where("created_at", ">", "2026-01-01").
		GroupBy("status").
		Having("total", ">", 10).
		OrderBy("status", "ASC").
		Build()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT status, COUNT(id) AS total FROM orders WHERE created_at > @param0 GROUP BY status HAVING total > @param1 ORDER BY status ASC",
		q.SQL)
}

func TestSelect_DistinctAndRawExpressions(t *testing.T) {
	q, err := builder.NewSelect().
		Distinct().
		SelectRaw("YEAR(created_at)").
		FromRaw("(SELECT * FROM audit) a").
		WhereRaw("a.kind <> ?", "noise").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "SELECT DISTINCT YEAR(created_at) FROM (SELECT * FROM audit) a WHERE a.kind <> @param0", q.SQL)
}

func TestSelect_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (*sqlgen.Query, error)
		wantErr error
	}{
		{
			name:    "missing from",
			build:   builder.NewSelect("id").Build,
			wantErr: sqlgen.ErrMissingFromClause,
		},
		{
			name:    "empty select list",
			build:   builder.NewSelect().From("t").Build,
			wantErr: sqlgen.ErrMissingSelectClause,
		},
		{
			name:    "aggregate with plain columns needs group by",
			build:   builder.NewSelect("status").Count("id", "n").From("t").Build,
			wantErr: sqlgen.ErrAggregateRequiresGroupBy,
		},
		{
			name:    "having needs group by",
			build:   builder.NewSelect("id").From("t").Having("n", ">", 1).Build,
			wantErr: sqlgen.ErrHavingRequiresGroupBy,
		},
		{
			name:    "negative limit",
			build:   builder.NewSelect("id").From("t").Limit(-1).Build,
			wantErr: sqlgen.ErrInvalidLimitOffset,
		},
		{
			name:    "negative offset",
			build:   builder.NewSelect("id").From("t").Offset(-3).Build,
			wantErr: sqlgen.ErrInvalidLimitOffset,
		},
		{
			name:    "invalid order direction",
			build:   builder.NewSelect("id").From("t").OrderBy("id", "UP").Build,
			wantErr: sqlgen.ErrInvalidOrderDirection,
		},
		{
			name:    "empty in list",
			build:   builder.NewSelect("id").From("t").WhereIn("status").Build,
			wantErr: sqlgen.ErrInvalidInValues,
		},
		{
			name:    "blank where column",
			build:   builder.NewSelect("id").From("t").Where(" ", "=", 1).Build,
			wantErr: sqlgen.ErrInvalidIdentifier,
		},
		{
			name:    "raw fragment with terminator",
			build:   builder.NewSelect("id").From("t").WhereRaw("1=1; DROP TABLE t").Build,
			wantErr: sqlgen.ErrInvalidIdentifier,
		},
		{
			name:    "table with terminator",
			build:   builder.NewSelect("id").From("t; DROP TABLE t").Build,
			wantErr: sqlgen.ErrInvalidIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var buildErr *builder.BuildError
			require.ErrorAs(t, err, &buildErr)
			assert.Equal(t, "SELECT", buildErr.Statement)
		})
	}
}

func TestSelect_BuilderIsImmutable(t *testing.T) {
	base := builder.NewSelect("id").From("t")

	active := base.WhereEq("active", true)
	archived := base.WhereEq("archived", true).Limit(10)

	baseQ, err := base.Build()
	require.NoError(t, err)
	activeQ, err := active.Build()
	require.NoError(t, err)
	archivedQ, err := archived.Build()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM t", baseQ.SQL)
	assert.Equal(t, "SELECT id FROM t WHERE active = @param0", activeQ.SQL)
	assert.Equal(t, "SELECT TOP 10 id FROM t WHERE archived = @param0", archivedQ.SQL)
}

func TestSelect_BuildIsIdempotent(t *testing.T) {
	b := builder.NewSelect("id", "name").
		From("users").
		WhereIn("role", "admin", "editor").
		OrderBy("id", "ASC").
		Limit(20)

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, first.SQL, second.SQL)
	assert.Equal(t, first.Parameters.Names(), second.Parameters.Names())
	assert.Equal(t, first.Parameters.Map(), second.Parameters.Map())
}
