package graphql

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// DirectiveLocation names a position in a GraphQL document or schema where
// a directive may be applied. The 19 values cover both the 8 executable
// and 11 type-system locations.
type DirectiveLocation string

const (
	// Executable locations.
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	// Type-system locations.
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// AllDirectiveLocations lists all 19 locations, in the order introspection
// prints them.
var AllDirectiveLocations = []DirectiveLocation{
	DirectiveLocationQuery,
	DirectiveLocationMutation,
	DirectiveLocationSubscription,
	DirectiveLocationField,
	DirectiveLocationFragmentDefinition,
	DirectiveLocationFragmentSpread,
	DirectiveLocationInlineFragment,
	DirectiveLocationVariableDefinition,
	DirectiveLocationSchema,
	DirectiveLocationScalar,
	DirectiveLocationObject,
	DirectiveLocationFieldDefinition,
	DirectiveLocationArgumentDefinition,
	DirectiveLocationInterface,
	DirectiveLocationUnion,
	DirectiveLocationEnum,
	DirectiveLocationEnumValue,
	DirectiveLocationInputObject,
	DirectiveLocationInputFieldDefinition,
}

// DefaultDeprecationReason is used when @deprecated omits its `reason` arg.
const DefaultDeprecationReason = "No longer supported"

// DirectiveConfig is the user-supplied configuration for NewDirective.
type DirectiveConfig struct {
	Name         string
	Description  string
	Locations    []DirectiveLocation
	Args         []ArgumentConfig
	IsRepeatable bool
	ASTNode      ast.Node
	Extensions   Extensions
}

// Directive modifies execution or validation behavior at a fixed set of
// document/schema locations. A Schema whose config lists no Directives gets
// the three built-ins plus @specifiedBy (spec.md §3.5); a non-empty
// SchemaConfig.Directives replaces that set.
type Directive struct {
	Name         string
	Description  string
	Locations    []DirectiveLocation
	Args         []*Argument
	IsRepeatable bool
	ASTNode      ast.Node
	Extensions   Extensions
}

// NewDirective constructs a Directive from cfg. Panics if unnamed or if no
// locations are given.
func NewDirective(cfg DirectiveConfig) *Directive {
	AssertValidName(cfg.Name)
	if len(cfg.Locations) == 0 {
		panic("Must provide locations for directive.")
	}
	return &Directive{
		Name:         cfg.Name,
		Description:  cfg.Description,
		Locations:    append([]DirectiveLocation(nil), cfg.Locations...),
		Args:         buildArgs(cfg.Name, cfg.Args),
		IsRepeatable: cfg.IsRepeatable,
		ASTNode:      cfg.ASTNode,
		Extensions:   CloneExtensions(cfg.Extensions),
	}
}

// ToConfig returns a plain, round-trippable snapshot of d.
func (d *Directive) ToConfig() DirectiveConfig {
	args := make([]ArgumentConfig, len(d.Args))
	for i, a := range d.Args {
		args[i] = ArgumentConfig{
			Name:              a.Name,
			Description:       a.Description,
			Type:              a.Type,
			Default:           a.Default,
			DeprecationReason: a.DeprecationReason,
			ASTNode:           a.ASTNode,
			Extensions:        CloneExtensions(a.Extensions),
		}
	}
	return DirectiveConfig{
		Name:         d.Name,
		Description:  d.Description,
		Locations:    append([]DirectiveLocation(nil), d.Locations...),
		Args:         args,
		IsRepeatable: d.IsRepeatable,
		ASTNode:      d.ASTNode,
		Extensions:   CloneExtensions(d.Extensions),
	}
}

// IncludeDirective conditionally includes a field or fragment.
var IncludeDirective = NewDirective(DirectiveConfig{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: []ArgumentConfig{{
		Name:        "if",
		Description: "Included when true.",
		Type:        NewNonNull(Boolean),
	}},
})

// SkipDirective conditionally excludes a field or fragment.
var SkipDirective = NewDirective(DirectiveConfig{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Locations: []DirectiveLocation{
		DirectiveLocationField,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
	},
	Args: []ArgumentConfig{{
		Name:        "if",
		Description: "Skipped when true.",
		Type:        NewNonNull(Boolean),
	}},
})

// DeprecatedDirective marks a schema element as no longer supported.
var DeprecatedDirective = NewDirective(DirectiveConfig{
	Name:        "deprecated",
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Locations: []DirectiveLocation{
		DirectiveLocationFieldDefinition,
		DirectiveLocationArgumentDefinition,
		DirectiveLocationInputFieldDefinition,
		DirectiveLocationEnumValue,
	},
	Args: []ArgumentConfig{{
		Name: "reason",
		Description: "Explains why this element was deprecated, usually also including a suggestion for how to " +
			"access supported similar data. Formatted using the Markdown syntax, as specified by " +
			"[CommonMark](https://commonmark.org/).",
		Type:    String,
		Default: DefaultOf(DefaultDeprecationReason),
	}},
})

// SpecifiedByDirective documents the URL specifying a custom Scalar's
// coercion rules.
var SpecifiedByDirective = NewDirective(DirectiveConfig{
	Name:        "specifiedBy",
	Description: "Exposes a URL that specifies the behavior of this scalar.",
	Locations:   []DirectiveLocation{DirectiveLocationScalar},
	Args: []ArgumentConfig{{
		Name:        "url",
		Description: "The URL that specifies the behavior of this scalar.",
		Type:        NewNonNull(String),
	}},
})

// specifiedDirectives is the set a Schema is seeded with when its config
// lists no Directives.
var specifiedDirectives = []*Directive{
	IncludeDirective,
	SkipDirective,
	DeprecatedDirective,
	SpecifiedByDirective,
}
