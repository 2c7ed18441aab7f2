package graphql_test

import (
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestNewScalarEmptyHooksAreIdentity(t *testing.T) {
	foo := graphql.NewScalar(graphql.ScalarConfig{Name: "Foo"})

	serialized, err := foo.Serialize(123)
	require.NoError(t, err)
	assert.Equal(t, 123, serialized)

	parsed, err := foo.ParseValue("x")
	require.NoError(t, err)
	assert.Equal(t, "x", parsed)
}

func TestNewScalarParseLiteralWithoutParseValuePanics(t *testing.T) {
	assert.Panics(t, func() {
		graphql.NewScalar(graphql.ScalarConfig{
			Name:         "Bad",
			ParseLiteral: func(v *ast.Value, vars map[string]interface{}) (interface{}, error) { return nil, nil },
		})
	})
}

func TestIntSerializeRejectsOutOfRange(t *testing.T) {
	_, err := graphql.Int.Serialize(1e100)
	assert.Error(t, err)
}

func TestIDCoercesIntOrString(t *testing.T) {
	v, err := graphql.ID.ParseValue(42)
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	v, err = graphql.ID.ParseValue("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestIsSpecifiedScalar(t *testing.T) {
	assert.True(t, graphql.IsSpecifiedScalar(graphql.Int))
	assert.True(t, graphql.IsSpecifiedScalar(graphql.ID))
	custom := graphql.NewScalar(graphql.ScalarConfig{Name: "Custom"})
	assert.False(t, graphql.IsSpecifiedScalar(custom))
}
