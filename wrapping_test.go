package graphql_test

import (
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListString(t *testing.T) {
	l := graphql.NewList(graphql.String)
	assert.Equal(t, "[String]", l.String())
	assert.Equal(t, graphql.String, graphql.GetNamedType(l))
}

func TestNewNonNullString(t *testing.T) {
	nn := graphql.NewNonNull(graphql.String)
	assert.Equal(t, "String!", nn.String())
}

func TestNonNullWrappingNonNullPanics(t *testing.T) {
	nn := graphql.NewNonNull(graphql.String)
	assert.Panics(t, func() {
		graphql.NewNonNull(nn)
	})
}

func TestGetNamedTypeUnwrapsNesting(t *testing.T) {
	wrapped := graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int)))
	assert.Equal(t, graphql.Int, graphql.GetNamedType(wrapped))
}

func TestGetNullableType(t *testing.T) {
	nn := graphql.NewNonNull(graphql.Boolean)
	assert.Equal(t, graphql.Type(graphql.Boolean), graphql.GetNullableType(nn))
	assert.Equal(t, graphql.Type(graphql.Boolean), graphql.GetNullableType(graphql.Boolean))
	assert.Nil(t, graphql.GetNullableType(nil))
}

func TestIsRequiredArgument(t *testing.T) {
	required := &graphql.Argument{Type: graphql.NewNonNull(graphql.String)}
	require.True(t, graphql.IsRequiredArgument(required))

	withDefault := &graphql.Argument{Type: graphql.NewNonNull(graphql.String), Default: graphql.DefaultOf("x")}
	assert.False(t, graphql.IsRequiredArgument(withDefault))

	nullable := &graphql.Argument{Type: graphql.String}
	assert.False(t, graphql.IsRequiredArgument(nullable))
}
