package graphql_test

import (
	"testing"

	"github.com/shyptr/graphql-core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchemaInterfaceCovarianceAccepted(t *testing.T) {
	var i *graphql.Interface
	i = graphql.NewInterface(graphql.InterfaceConfig{
		Name: "I",
		Fields: func() graphql.FieldMapConfig {
			return graphql.FieldMapConfig{"field": {Type: i}}
		},
	})

	var o *graphql.Object
	o = graphql.NewObject(graphql.ObjectConfig{
		Name:       "O",
		Interfaces: graphql.ThunkInterfaces([]*graphql.Interface{i}),
		Fields: func() graphql.FieldMapConfig {
			return graphql.FieldMapConfig{"field": {Type: o}}
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldMapConfig{
			"o": {Type: o},
			"i": {Type: i},
		},
	})

	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	assert.Empty(t, s.Validate())
}

func TestValidateSchemaInterfaceCovarianceAcceptedNonNull(t *testing.T) {
	var i *graphql.Interface
	i = graphql.NewInterface(graphql.InterfaceConfig{
		Name: "I",
		Fields: func() graphql.FieldMapConfig {
			return graphql.FieldMapConfig{"field": {Type: graphql.NewNonNull(i)}}
		},
	})

	var o *graphql.Object
	o = graphql.NewObject(graphql.ObjectConfig{
		Name:       "O",
		Interfaces: graphql.ThunkInterfaces([]*graphql.Interface{i}),
		Fields: func() graphql.FieldMapConfig {
			return graphql.FieldMapConfig{"field": {Type: graphql.NewNonNull(o)}}
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldMapConfig{
			"o": {Type: o},
			"i": {Type: i},
		},
	})

	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	assert.Empty(t, s.Validate())
}

func TestValidateSchemaInterfaceArgumentTypeMismatch(t *testing.T) {
	iface := graphql.NewInterface(graphql.InterfaceConfig{
		Name: "AnotherInterface",
		Fields: graphql.FieldMapConfig{
			"field": {
				Type: graphql.String,
				Args: []graphql.ArgumentConfig{{Name: "input", Type: graphql.String}},
			},
		},
	})
	obj := graphql.NewObject(graphql.ObjectConfig{
		Name:       "AnotherObject",
		Interfaces: graphql.ThunkInterfaces([]*graphql.Interface{iface}),
		Fields: graphql.FieldMapConfig{
			"field": {
				Type: graphql.String,
				Args: []graphql.ArgumentConfig{{Name: "input", Type: graphql.Int}},
			},
		},
	})
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldMapConfig{
			"obj": {Type: obj},
		},
	})

	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	errs := s.Validate()
	require.NotEmpty(t, errs)

	found := false
	want := "Interface field argument AnotherInterface.field(input:) expects type String but AnotherObject.field(input:) is type Int."
	for _, e := range errs {
		if e.Message == want {
			found = true
		}
	}
	assert.True(t, found, "expected validation error %q, got: %v", want, errs)
}

func TestValidateSchemaRequiresQueryType(t *testing.T) {
	s := graphql.NewSchema(graphql.SchemaConfig{})
	errs := s.Validate()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "Query root type must be provided.")
}

func TestValidateSchemaAssumeValidSkipsChecks(t *testing.T) {
	s := graphql.NewSchema(graphql.SchemaConfig{AssumeValid: true})
	assert.Empty(t, s.Validate())
}

func TestValidateSchemaDetectsRequiredInputObjectCycle(t *testing.T) {
	var self *graphql.InputObject
	self = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "Cyclic",
		Fields: func() graphql.InputFieldMapConfig {
			return graphql.InputFieldMapConfig{"child": {Type: graphql.NewNonNull(self)}}
		},
	})
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.FieldMapConfig{
			"ok": {
				Type: graphql.Boolean,
				Args: []graphql.ArgumentConfig{{Name: "in", Type: self}},
			},
		},
	})
	s := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	errs := s.Validate()

	found := false
	for _, e := range errs {
		if e.Message == `Cannot reference Input Object "Cyclic" within itself through a series of non-null fields: Cyclic.child.` {
			found = true
		}
	}
	assert.True(t, found, "expected cyclic input object error, got: %v", errs)
}
