package graphql_test

import (
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceInputValueNonNullRejectsNull(t *testing.T) {
	_, err := graphql.CoerceInputValue(nil, graphql.NewNonNull(graphql.String))
	assert.Error(t, err)
}

func TestCoerceInputValueListWrapsSingleton(t *testing.T) {
	v, err := graphql.CoerceInputValue("x", graphql.NewList(graphql.String))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"x"}, v)
}

func TestCoerceInputValueListOfValues(t *testing.T) {
	v, err := graphql.CoerceInputValue([]interface{}{"a", "b"}, graphql.NewList(graphql.String))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b"}, v)
}

func TestCoerceEnumInputUnknownNameSuggests(t *testing.T) {
	color := newColorEnum()
	_, err := graphql.CoerceInputValue("RAD", color)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Did you mean the enum value \"RED\"?")
}

func TestCoerceInputObjectAppliesDefaultAndRejectsExtraKeys(t *testing.T) {
	io := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "Point",
		Fields: graphql.InputFieldMapConfig{
			"x": {Type: graphql.NewNonNull(graphql.Int)},
			"y": {Type: graphql.Int, Default: graphql.DefaultOf(0)},
		},
	})

	v, err := graphql.CoerceInputValue(map[string]interface{}{"x": 1.0}, io)
	require.NoError(t, err)
	m := v.(map[string]interface{})
	assert.Equal(t, 1, m["x"])
	assert.Equal(t, 0, m["y"])

	_, err = graphql.CoerceInputValue(map[string]interface{}{"x": 1.0, "z": 2.0}, io)
	assert.Error(t, err)

	_, err = graphql.CoerceInputValue(map[string]interface{}{}, io)
	assert.Error(t, err)
}

func TestCoerceInputObjectOneOfRequiresExactlyOneField(t *testing.T) {
	io := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:    "Search",
		IsOneOf: true,
		Fields: graphql.InputFieldMapConfig{
			"byID":   {Type: graphql.String},
			"byName": {Type: graphql.String},
		},
	})

	_, err := graphql.CoerceInputValue(map[string]interface{}{"byID": "1", "byName": "x"}, io)
	assert.Error(t, err)

	v, err := graphql.CoerceInputValue(map[string]interface{}{"byID": "1"}, io)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"byID": "1"}, v)
}

func TestCoerceOutputValueEnum(t *testing.T) {
	color := newColorEnum()
	v, err := graphql.CoerceOutputValue(1, color)
	require.NoError(t, err)
	assert.Equal(t, "GREEN", v)
}
