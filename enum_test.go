package graphql_test

import (
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColorEnum() *graphql.Enum {
	return graphql.NewEnum(graphql.EnumConfig{
		Name: "Color",
		Values: []graphql.EnumValueName{
			{Name: "RED", Config: graphql.EnumValueConfig{Value: 0}},
			{Name: "GREEN", Config: graphql.EnumValueConfig{Value: 1}},
			{Name: "BLUE", Config: graphql.EnumValueConfig{Value: 2, DeprecationReason: "Just because"}},
		},
	})
}

func TestEnumDeprecationRoundTrip(t *testing.T) {
	e := newColorEnum()
	blue, ok := e.ValueByName("BLUE")
	require.True(t, ok)
	assert.Equal(t, "Just because", blue.DeprecationReason)

	cfg := e.ToConfig()
	round := graphql.NewEnum(cfg)
	blue2, ok := round.ValueByName("BLUE")
	require.True(t, ok)
	assert.Equal(t, "Just because", blue2.DeprecationReason)
}

func TestEnumValueByInternal(t *testing.T) {
	e := newColorEnum()
	ev, ok := e.ValueByInternal(1)
	require.True(t, ok)
	assert.Equal(t, "GREEN", ev.Name)

	_, ok = e.ValueByInternal(99)
	assert.False(t, ok)
}

func TestEnumForbiddenValueNamesPanic(t *testing.T) {
	assert.Panics(t, func() {
		graphql.NewEnum(graphql.EnumConfig{
			Name: "Bad",
			Values: []graphql.EnumValueName{
				{Name: "true", Config: graphql.EnumValueConfig{}},
			},
		})
	})
}

func TestEnumDuplicateValuePanics(t *testing.T) {
	assert.Panics(t, func() {
		graphql.NewEnum(graphql.EnumConfig{
			Name: "Bad",
			Values: []graphql.EnumValueName{
				{Name: "A", Config: graphql.EnumValueConfig{}},
				{Name: "A", Config: graphql.EnumValueConfig{}},
			},
		})
	})
}

func TestEnumValuesPreserveOrder(t *testing.T) {
	e := newColorEnum()
	names := make([]string, 0, 3)
	for _, v := range e.Values() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, names)
}
