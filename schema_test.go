package graphql_test

import (
	"context"
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryType(name string) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.FieldMapConfig{
			"ok": {Type: graphql.NewNonNull(graphql.Boolean), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
				return true, nil
			}},
		},
	})
}

func TestNewSchemaDuplicateNamePanics(t *testing.T) {
	a := newQueryType("SameName")
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldMapConfig{
			"a": {Type: a},
		},
	})
	b := graphql.NewObject(graphql.ObjectConfig{
		Name: "SameName",
		Fields: graphql.FieldMapConfig{
			"other": {Type: graphql.String},
		},
	})

	assert.PanicsWithValue(t,
		`Schema must contain uniquely named types but contains multiple types named "SameName".`,
		func() {
			graphql.NewSchema(graphql.SchemaConfig{Query: query, Types: []graphql.NamedType{b}})
		})
}

func TestSchemaGetTypeAndTypeNames(t *testing.T) {
	query := newQueryType("Query")
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	assert.Equal(t, graphql.NamedType(query), s.GetType("Query"))
	names := s.GetTypeNames()
	assert.Contains(t, names, "Query")
	assert.Contains(t, names, "__Schema")
	assert.Equal(t, "Query", names[0])
}

func TestSchemaToConfigRoundTripPreservesOrder(t *testing.T) {
	query := newQueryType("Query")
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	cfg := s.ToConfig()
	s2 := graphql.NewSchema(cfg)
	assert.Equal(t, s.GetTypeNames(), s2.GetTypeNames())
}

func TestSchemaGetFieldMetaFields(t *testing.T) {
	query := newQueryType("Query")
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	assert.NotNil(t, s.GetField(query, "__typename"))
	assert.NotNil(t, s.GetField(query, "__schema"))
	assert.NotNil(t, s.GetField(query, "__type"))
	assert.NotNil(t, s.GetField(query, "ok"))
}

func TestSchemaInterfaceImplementationsAndSubType(t *testing.T) {
	named := graphql.NewInterface(graphql.InterfaceConfig{
		Name: "Named",
		Fields: graphql.FieldMapConfig{
			"name": {Type: graphql.NewNonNull(graphql.String)},
		},
	})
	person := graphql.NewObject(graphql.ObjectConfig{
		Name:       "Person",
		Interfaces: graphql.ThunkInterfaces([]*graphql.Interface{named}),
		Fields: graphql.FieldMapConfig{
			"name": {Type: graphql.NewNonNull(graphql.String)},
		},
	})
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldMapConfig{
			"person": {Type: person},
		},
	})
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	impl := s.GetImplementations(named)
	require.Len(t, impl.Objects, 1)
	assert.Equal(t, person, impl.Objects[0])
	assert.True(t, s.IsSubType(named, person))

	possible := s.GetPossibleTypes(named)
	require.Len(t, possible, 1)
	assert.Equal(t, person, possible[0])
}
