package graphql

import (
	"context"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// FieldResolve is the signature an external executor invokes to produce a
// field's value. The core never calls it; it is stored and handed back
// unmodified via Field.Resolve.
type FieldResolve func(ctx context.Context, source, args interface{}) (interface{}, error)

// SubscribeFn is the signature an external executor invokes to obtain a
// subscription's source event stream.
type SubscribeFn func(ctx context.Context, source, args interface{}) (interface{}, error)

// Default is a stored default value for an argument or input field: either
// an already-coerced internal value, or an unparsed literal AST node. The
// two forms are mutually exclusive.
type Default struct {
	HasValue bool
	Value    interface{}
	Literal  *ast.Value
}

// DefaultOf wraps an internal value as a Default.
func DefaultOf(v interface{}) Default { return Default{HasValue: true, Value: v} }

// DefaultFromLiteral wraps an unparsed literal as a Default.
func DefaultFromLiteral(lit *ast.Value) Default { return Default{HasValue: true, Literal: lit} }

// ArgumentConfig configures a single argument of a field or directive.
type ArgumentConfig struct {
	Name              string
	Description       string
	Type              Type
	Default           Default
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions
}

// Argument is a realized field or directive argument.
type Argument struct {
	Name              string
	Description       string
	Type              Type
	Default           Default
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions
}

// IsRequiredArgument reports whether a is NonNull typed and has no default,
// meaning a query must always supply it.
func IsRequiredArgument(a *Argument) bool {
	if a == nil {
		return false
	}
	_, nonNull := a.Type.(*NonNull)
	return nonNull && !a.Default.HasValue
}

// FieldConfig configures a single field of an Object or Interface.
type FieldConfig struct {
	Name              string
	Description       string
	Type              Type
	Args              []ArgumentConfig
	Resolve           FieldResolve
	Subscribe         SubscribeFn
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions
}

// Field is a realized Object/Interface field.
type Field struct {
	Name              string
	Description       string
	Type              Type
	Args              []*Argument
	Resolve           FieldResolve
	Subscribe         SubscribeFn
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions

	// Parent back-references the Object or Interface this field belongs to.
	Parent NamedType
}

// FieldMap is the realized field set of an Object or Interface, keyed by
// field name.
type FieldMap map[string]*Field

// FieldMapConfig is the map-of-configs shape a ThunkFieldsObject resolves to.
type FieldMapConfig map[string]FieldConfig

func buildArgs(parentDesc string, cfgs []ArgumentConfig) []*Argument {
	args := make([]*Argument, 0, len(cfgs))
	seen := make(map[string]bool, len(cfgs))
	for _, cfg := range cfgs {
		AssertValidName(cfg.Name)
		if seen[cfg.Name] {
			panic(fmt.Sprintf("%s args must be unique, got duplicate %q.", parentDesc, cfg.Name))
		}
		seen[cfg.Name] = true
		if cfg.Default.HasValue && cfg.Default.Literal != nil && cfg.Default.Value != nil {
			panic(fmt.Sprintf("%s(%s:) default must be either a coerced value or a literal, not both.", parentDesc, cfg.Name))
		}
		args = append(args, &Argument{
			Name:              cfg.Name,
			Description:       cfg.Description,
			Type:              cfg.Type,
			Default:           cfg.Default,
			DeprecationReason: cfg.DeprecationReason,
			ASTNode:           cfg.ASTNode,
			Extensions:        CloneExtensions(cfg.Extensions),
		})
	}
	return args
}

// realizeFieldMap turns a raw thunk result (expected to be FieldMapConfig)
// into a FieldMap, attributing any structural problem to typeName. Resolver
// functions are only accepted for output (non-input) field maps.
func realizeFieldMap(typeName string, raw interface{}, allowResolve bool) (FieldMap, error) {
	cfgs, ok := raw.(FieldMapConfig)
	if !ok {
		return nil, fmt.Errorf("%s fields must be an object with field names as keys or a function which returns such an object.", typeName)
	}
	out := make(FieldMap, len(cfgs))
	for name, cfg := range cfgs {
		if cfg.Name == "" {
			cfg.Name = name
		}
		AssertValidName(cfg.Name)
		if cfg.Type == nil {
			return nil, fmt.Errorf("%s.%s field type must be provided", typeName, name)
		}
		if !allowResolve && cfg.Resolve != nil {
			return nil, fmt.Errorf("%s.%s field has a resolve property, but Input Types cannot define resolvers.", typeName, name)
		}
		out[name] = &Field{
			Name:              cfg.Name,
			Description:       cfg.Description,
			Type:              cfg.Type,
			Args:              buildArgs(fmt.Sprintf("%s.%s", typeName, name), cfg.Args),
			Resolve:           cfg.Resolve,
			Subscribe:         cfg.Subscribe,
			DeprecationReason: cfg.DeprecationReason,
			ASTNode:           cfg.ASTNode,
			Extensions:        CloneExtensions(cfg.Extensions),
		}
	}
	return out, nil
}

func realizeThunkFieldsObject(typeName string, thunk ThunkFieldsObject) (FieldMap, error) {
	raw := thunk
	if fn, ok := thunk.(func() FieldMapConfig); ok {
		raw = fn()
	}
	return realizeFieldMap(typeName, raw, true)
}

// InputFieldConfig configures a single field of an InputObject.
type InputFieldConfig struct {
	Name              string
	Description       string
	Type              Type
	Default           Default
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions
}

// InputField is a realized InputObject field.
type InputField struct {
	Name              string
	Description       string
	Type              Type
	Default           Default
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions
	Parent            *InputObject
}

// IsRequiredInputField reports whether f is NonNull typed with no default.
func IsRequiredInputField(f *InputField) bool {
	if f == nil {
		return false
	}
	_, nonNull := f.Type.(*NonNull)
	return nonNull && !f.Default.HasValue
}

// InputFieldMap is the realized field set of an InputObject.
type InputFieldMap map[string]*InputField

// InputFieldMapConfig is the map-of-configs shape an input fields thunk
// resolves to.
type InputFieldMapConfig map[string]InputFieldConfig

func realizeThunkFieldsInput(typeName string, thunk ThunkFieldsInput) (InputFieldMap, error) {
	raw := thunk
	if fn, ok := thunk.(func() InputFieldMapConfig); ok {
		raw = fn()
	}
	cfgs, ok := raw.(InputFieldMapConfig)
	if !ok {
		return nil, fmt.Errorf("%s fields must be an object with field names as keys or a function which returns such an object.", typeName)
	}
	out := make(InputFieldMap, len(cfgs))
	for name, cfg := range cfgs {
		if cfg.Name == "" {
			cfg.Name = name
		}
		AssertValidName(cfg.Name)
		if cfg.Type == nil {
			return nil, fmt.Errorf("%s.%s field type must be provided", typeName, name)
		}
		out[name] = &InputField{
			Name:              cfg.Name,
			Description:       cfg.Description,
			Type:              cfg.Type,
			Default:           cfg.Default,
			DeprecationReason: cfg.DeprecationReason,
			ASTNode:           cfg.ASTNode,
			Extensions:        CloneExtensions(cfg.Extensions),
		}
	}
	return out, nil
}
