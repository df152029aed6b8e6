package builder_test

import (
	"testing"

	"github.com/satishbabariya/fluentsql/query/builder"
	"github.com/satishbabariya/fluentsql/query/sqlgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_Basic(t *testing.T) {
	q, err := builder.NewDelete().
		From("users").
		Where("id", "=", 7).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM users WHERE id = @param0", q.SQL)
	v, _ := q.Parameters.Get("param0")
	assert.Equal(t, 7, v)
}

func TestDelete_WithoutWhereFails(t *testing.T) {
	_, err := builder.NewDelete().From("users").Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, sqlgen.ErrUnsafeMutationWithoutWhere)

	var buildErr *builder.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "DELETE", buildErr.Statement)
}

func TestDelete_Returning(t *testing.T) {
	q, err := builder.NewDelete().
		From("sessions").
		WhereBetween("created_at", "2026-01-01", "2026-02-01").
		Returning("id").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM sessions OUTPUT DELETED.id WHERE created_at BETWEEN @param0 AND @param1", q.SQL)
	assert.Equal(t, []string{"param0", "param1"}, q.Parameters.Names())
}

func TestDelete_MissingTable(t *testing.T) {
	_, err := builder.NewDelete().WhereEq("id", 1).Build()
	assert.ErrorIs(t, err, sqlgen.ErrMissingTable)
}

func TestDelete_BuilderIsImmutable(t *testing.T) {
	base := builder.NewDelete().From("t")

	one := base.WhereEq("id", 1)
	two := base.WhereNull("deleted_at")

	oneQ, err := one.Build()
	require.NoError(t, err)
	twoQ, err := two.Build()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM t WHERE id = @param0", oneQ.SQL)
	assert.Equal(t, "DELETE FROM t WHERE deleted_at IS NULL", twoQ.SQL)

	_, err = base.Build()
	assert.ErrorIs(t, err, sqlgen.ErrUnsafeMutationWithoutWhere)
}
