package graphql_test

import (
	"context"
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntrospectionSchemaFieldResolvesSchema(t *testing.T) {
	query := newQueryType("Query")
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	schemaField := s.GetField(query, "__schema")
	require.NotNil(t, schemaField)
	got, err := schemaField.Resolve(context.Background(), query, nil)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestIntrospectionTypeFieldLooksUpByName(t *testing.T) {
	query := newQueryType("Query")
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	typeField := s.GetField(query, "__type")
	require.NotNil(t, typeField)

	got, err := typeField.Resolve(context.Background(), query, map[string]interface{}{"name": "Query"})
	require.NoError(t, err)
	assert.Equal(t, graphql.Type(query), got)

	got, err = typeField.Resolve(context.Background(), query, map[string]interface{}{"name": "DoesNotExist"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIntrospectionTypenameOnCompositeType(t *testing.T) {
	query := newQueryType("Query")
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	typenameField := s.GetField(query, "__typename")
	require.NotNil(t, typenameField)
	got, err := typenameField.Resolve(context.Background(), query, nil)
	require.NoError(t, err)
	assert.Equal(t, "Query", got)
}

func TestIntrospectionTypeKindAndFieldsViaTypeType(t *testing.T) {
	query := newQueryType("Query")
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	typeType := s.GetType("__Type")
	require.NotNil(t, typeType)
	obj, ok := typeType.(*graphql.Object)
	require.True(t, ok)

	kindField := obj.Fields()["kind"]
	got, err := kindField.Resolve(context.Background(), graphql.Type(query), nil)
	require.NoError(t, err)
	assert.Equal(t, graphql.ObjectKind, got)

	fieldsField := obj.Fields()["fields"]
	got, err = fieldsField.Resolve(context.Background(), graphql.Type(query), map[string]interface{}{})
	require.NoError(t, err)
	fields, ok := got.([]interface{})
	require.True(t, ok)
	assert.Len(t, fields, 1)
}

func TestIntrospectionDefaultValuePrinting(t *testing.T) {
	io := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "WithDefault",
		Fields: graphql.InputFieldMapConfig{
			"note": {Type: graphql.String, Default: graphql.DefaultOf("tes\t de\fault")},
		},
	})
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldMapConfig{
			"ok": {
				Type: graphql.Boolean,
				Args: []graphql.ArgumentConfig{{Name: "in", Type: io}},
			},
		},
	})
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})

	typeType := s.GetType("__Type").(*graphql.Object)
	inputFieldsField := typeType.Fields()["inputFields"]
	rawViews, err := inputFieldsField.Resolve(context.Background(), graphql.Type(io), map[string]interface{}{})
	require.NoError(t, err)
	views := rawViews.([]interface{})
	require.Len(t, views, 1)

	inputValueType := s.GetType("__InputValue").(*graphql.Object)
	defaultValueField := inputValueType.Fields()["defaultValue"]
	got, err := defaultValueField.Resolve(context.Background(), views[0], nil)
	require.NoError(t, err)
	assert.Equal(t, `"tes\t de\fault"`, got)
}
