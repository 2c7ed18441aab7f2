package graphql_test

import (
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDefaultValueStringEscaping(t *testing.T) {
	d := graphql.DefaultOf("tes\t de\fault")
	printed, ok := graphql.PrintDefaultValue(d, graphql.String)
	require.True(t, ok)
	assert.Equal(t, `"tes\t de\fault"`, printed)
}

func TestPrintDefaultValueList(t *testing.T) {
	abcEnum := graphql.NewEnum(graphql.EnumConfig{
		Name:   "ABC",
		Values: []graphql.EnumValueName{{Name: "abc", Config: graphql.EnumValueConfig{}}},
	})
	d := graphql.DefaultOf([]interface{}{"abc"})
	printed, ok := graphql.PrintDefaultValue(d, graphql.NewList(abcEnum))
	require.True(t, ok)
	assert.Equal(t, `[abc]`, printed)
}

func TestPrintDefaultValueObject(t *testing.T) {
	io := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "XY",
		Fields: graphql.InputFieldMapConfig{
			"x": {Type: graphql.NewList(graphql.String)},
			"y": {Type: graphql.Int},
		},
	})
	d := graphql.DefaultOf(map[string]interface{}{
		"x": []interface{}{"abc"},
		"y": 123,
	})
	printed, ok := graphql.PrintDefaultValue(d, io)
	require.True(t, ok)
	assert.Equal(t, `{x: ["abc"], y: 123}`, printed)
}

func TestPrintDefaultValueNoneHasValue(t *testing.T) {
	_, ok := graphql.PrintDefaultValue(graphql.Default{}, graphql.String)
	assert.False(t, ok)
}

func TestPrintDefaultValueNull(t *testing.T) {
	d := graphql.DefaultOf(nil)
	printed, ok := graphql.PrintDefaultValue(d, graphql.String)
	require.True(t, ok)
	assert.Equal(t, "null", printed)
}
