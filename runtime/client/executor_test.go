package client

import (
	"database/sql"
	"testing"

	"github.com/satishbabariya/fluentsql/query/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedArgs_MatchBindingOrder(t *testing.T) {
	q, err := builder.NewSelect("id").
		From("t").
		WhereIn("status", "a", "b").
		WhereEq("active", true).
		Build()
	require.NoError(t, err)

	args := namedArgs(q)
	require.Len(t, args, 3)

	first, ok := args[0].(sql.NamedArg)
	require.True(t, ok)
	assert.Equal(t, "param0", first.Name)
	assert.Equal(t, "a", first.Value)

	last, ok := args[2].(sql.NamedArg)
	require.True(t, ok)
	assert.Equal(t, "param2", last.Name)
	assert.Equal(t, true, last.Value)
}

func TestNamedArgs_EmptyParameters(t *testing.T) {
	q, err := builder.NewSelect("id").From("t").Build()
	require.NoError(t, err)
	assert.Empty(t, namedArgs(q))
}
