package builder_test

import (
	"testing"

	"github.com/satishbabariya/fluentsql/query/builder"
	"github.com/satishbabariya/fluentsql/query/sqlgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_Basic(t *testing.T) {
	q, err := builder.NewUpdate().
		Table("users").
		Set(map[string]interface{}{"active": false}).
		Where("id", "=", 7).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET active = @param0 WHERE id = @param1", q.SQL)
	assert.Equal(t, []string{"param0", "param1"}, q.Parameters.Names())

	active, _ := q.Parameters.Get("param0")
	id, _ := q.Parameters.Get("param1")
	assert.Equal(t, false, active)
	assert.Equal(t, 7, id)
}

func TestUpdate_SetMapOrdersColumnsDeterministically(t *testing.T) {
	build := func() *sqlgen.Query {
		q, err := builder.NewUpdate().
			Table("t").
			Set(map[string]interface{}{"c": 3, "a": 1, "b": 2}).
			WhereEq("id", 1).
			Build()
		require.NoError(t, err)
		return q
	}

	first := build()
	assert.Equal(t, "UPDATE t SET a = @param0, b = @param1, c = @param2 WHERE id = @param3", first.SQL)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.SQL, build().SQL)
	}
}

func TestUpdate_SetColumnKeepsCallOrder(t *testing.T) {
	q, err := builder.NewUpdate().
		Table("t").
		SetColumn("z", 1).
		SetColumn("a", 2).
		WhereEq("id", 1).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE t SET z = @param0, a = @param1 WHERE id = @param2", q.SQL)
}

func TestUpdate_Returning(t *testing.T) {
	q, err := builder.NewUpdate().
		Table("users").
		SetColumn("active", false).
		WhereEq("id", 7).
		Returning().
		Build()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET active = @param0 OUTPUT INSERTED.* WHERE id = @param1", q.SQL)
}

func TestUpdate_WithoutWhereFails(t *testing.T) {
	_, err := builder.NewUpdate().
		Table("users").
		Set(map[string]interface{}{"active": false}).
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlgen.ErrUnsafeMutationWithoutWhere)

	var buildErr *builder.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "UPDATE", buildErr.Statement)
	assert.Equal(t, "WHERE", buildErr.Clause)
}

func TestUpdate_ValidationErrors(t *testing.T) {
	_, err := builder.NewUpdate().SetColumn("a", 1).WhereEq("id", 1).Build()
	assert.ErrorIs(t, err, sqlgen.ErrMissingTable)

	_, err = builder.NewUpdate().Table("t").WhereEq("id", 1).Build()
	assert.ErrorIs(t, err, sqlgen.ErrMissingValues)
}

func TestUpdate_BuilderIsImmutable(t *testing.T) {
	base := builder.NewUpdate().Table("t").SetColumn("a", 1)

	one := base.WhereEq("id", 1)
	two := base.WhereEq("id", 2).Returning()

	oneQ, err := one.Build()
	require.NoError(t, err)
	twoQ, err := two.Build()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE t SET a = @param0 WHERE id = @param1", oneQ.SQL)
	assert.Equal(t, "UPDATE t SET a = @param0 OUTPUT INSERTED.* WHERE id = @param1", twoQ.SQL)

	_, err = base.Build()
	assert.ErrorIs(t, err, sqlgen.ErrUnsafeMutationWithoutWhere)
}
