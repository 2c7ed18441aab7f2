package graphql

import (
	"context"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// IsTypeOfFn lets an Object claim ownership of a resolved value when the
// executor is dispatching an abstract (interface/union) field.
type IsTypeOfFn func(ctx context.Context, value interface{}) bool

// ObjectConfig is the user-supplied configuration for NewObject.
type ObjectConfig struct {
	Name        string
	Description string
	Fields      ThunkFieldsObject
	Interfaces  ThunkInterfaces
	IsTypeOf    IsTypeOfFn
	ASTNode     ast.Node
	// ExtensionASTNodes holds the AST node of each `extend type` block
	// folded into this Object, in addition to its base definition in ASTNode.
	ExtensionASTNodes []ast.Node
	Extensions        Extensions
}

// Object is the most common named type: a concrete, selectable type with
// a set of fields keyed by name and zero or more implemented interfaces.
type Object struct {
	Name              string
	Description       string
	IsTypeOf          IsTypeOfFn
	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
	Extensions        Extensions

	fields     fieldsCell
	interfaces interfacesCell
}

// NewObject constructs an Object from cfg. Fields and Interfaces are
// resolved lazily on first call to Fields()/Interfaces().
func NewObject(cfg ObjectConfig) *Object {
	AssertValidName(cfg.Name)
	o := &Object{
		Name:              cfg.Name,
		Description:       cfg.Description,
		IsTypeOf:          cfg.IsTypeOf,
		ASTNode:           cfg.ASTNode,
		ExtensionASTNodes: cfg.ExtensionASTNodes,
		Extensions:        CloneExtensions(cfg.Extensions),
	}
	o.fields.thunk = cfg.Fields
	o.interfaces.thunk = cfg.Interfaces
	return o
}

func (o *Object) TypeName() string        { return o.Name }
func (o *Object) TypeDescription() string { return o.Description }
func (o *Object) String() string          { return o.Name }
func (o *Object) isType()                 {}

// Fields realizes and returns o's field map, memoized after first call.
func (o *Object) Fields() FieldMap {
	fm := o.fields.get(func(t ThunkFieldsObject) (FieldMap, error) {
		return realizeThunkFieldsObject(o.Name, t)
	})
	for _, f := range fm {
		f.Parent = o
	}
	return fm
}

// Interfaces realizes and returns the list of interfaces o implements.
func (o *Object) Interfaces() []*Interface {
	return o.interfaces.get(func(t ThunkInterfaces) ([]*Interface, error) {
		return realizeInterfaceList(o.Name, t)
	})
}

// ToConfig returns a plain, round-trippable snapshot of o.
func (o *Object) ToConfig() ObjectConfig {
	fm := o.Fields()
	fcfgs := make(FieldMapConfig, len(fm))
	for name, f := range fm {
		fcfgs[name] = fieldToConfig(f)
	}
	ifaces := o.Interfaces()
	icfg := make([]*Interface, len(ifaces))
	copy(icfg, ifaces)
	return ObjectConfig{
		Name:              o.Name,
		Description:       o.Description,
		Fields:            fcfgs,
		Interfaces:        ThunkInterfaces(icfg),
		IsTypeOf:          o.IsTypeOf,
		ASTNode:           o.ASTNode,
		ExtensionASTNodes: o.ExtensionASTNodes,
		Extensions:        CloneExtensions(o.Extensions),
	}
}

func fieldToConfig(f *Field) FieldConfig {
	args := make([]ArgumentConfig, len(f.Args))
	for i, a := range f.Args {
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
	return FieldConfig{
		Name:              f.Name,
		Description:       f.Description,
		Type:              f.Type,
		Args:              args,
		Resolve:           f.Resolve,
		Subscribe:         f.Subscribe,
		DeprecationReason: f.DeprecationReason,
		ASTNode:           f.ASTNode,
		Extensions:        CloneExtensions(f.Extensions),
	}
}

func realizeInterfaceList(typeName string, thunk ThunkInterfaces) ([]*Interface, error) {
	if thunk == nil {
		return nil, nil
	}
	raw := thunk
	if fn, ok := thunk.(func() []*Interface); ok {
		raw = fn()
	}
	list, ok := raw.([]*Interface)
	if !ok {
		return nil, fmt.Errorf("%s interfaces must be an Array or a function which returns an Array.", typeName)
	}
	out := make([]*Interface, len(list))
	copy(out, list)
	return out, nil
}
