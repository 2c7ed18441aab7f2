package graphql

import (
	"context"

	"github.com/vektah/gqlparser/v2/ast"
)

// InterfaceConfig is the user-supplied configuration for NewInterface.
type InterfaceConfig struct {
	Name        string
	Description string
	Fields      ThunkFieldsObject
	Interfaces  ThunkInterfaces
	ResolveType ResolveTypeFn
	ASTNode     ast.Node
	// ExtensionASTNodes holds the AST node of each `extend interface` block
	// folded into this Interface, in addition to its base definition in ASTNode.
	ExtensionASTNodes []ast.Node
	Extensions        Extensions
}

// ResolveTypeFn dispatches an abstract (interface/union) value to the
// concrete Object that represents it at runtime.
type ResolveTypeFn func(ctx context.Context, value interface{}) *Object

// Interface describes a field set that one or more Objects (and other
// Interfaces) promise to implement.
type Interface struct {
	Name              string
	Description       string
	ResolveType       ResolveTypeFn
	ASTNode           ast.Node
	ExtensionASTNodes []ast.Node
	Extensions        Extensions

	fields     fieldsCell
	interfaces interfacesCell
}

// NewInterface constructs an Interface from cfg.
func NewInterface(cfg InterfaceConfig) *Interface {
	AssertValidName(cfg.Name)
	i := &Interface{
		Name:              cfg.Name,
		Description:       cfg.Description,
		ResolveType:       cfg.ResolveType,
		ASTNode:           cfg.ASTNode,
		ExtensionASTNodes: cfg.ExtensionASTNodes,
		Extensions:        CloneExtensions(cfg.Extensions),
	}
	i.fields.thunk = cfg.Fields
	i.interfaces.thunk = cfg.Interfaces
	return i
}

func (i *Interface) TypeName() string        { return i.Name }
func (i *Interface) TypeDescription() string { return i.Description }
func (i *Interface) String() string          { return i.Name }
func (i *Interface) isType()                 {}

// Fields realizes and returns i's field map.
func (i *Interface) Fields() FieldMap {
	fm := i.fields.get(func(t ThunkFieldsObject) (FieldMap, error) {
		return realizeThunkFieldsObject(i.Name, t)
	})
	for _, f := range fm {
		f.Parent = i
	}
	return fm
}

// Interfaces realizes and returns the parent interfaces i itself implements
// (interface-implements-interface).
func (i *Interface) Interfaces() []*Interface {
	return i.interfaces.get(func(t ThunkInterfaces) ([]*Interface, error) {
		return realizeInterfaceList(i.Name, t)
	})
}

// ToConfig returns a plain, round-trippable snapshot of i.
func (i *Interface) ToConfig() InterfaceConfig {
	fm := i.Fields()
	fcfgs := make(FieldMapConfig, len(fm))
	for name, f := range fm {
		fcfgs[name] = fieldToConfig(f)
	}
	ifaces := i.Interfaces()
	icfg := make([]*Interface, len(ifaces))
	copy(icfg, ifaces)
	return InterfaceConfig{
		Name:              i.Name,
		Description:       i.Description,
		Fields:            fcfgs,
		Interfaces:        ThunkInterfaces(icfg),
		ResolveType:       i.ResolveType,
		ASTNode:           i.ASTNode,
		ExtensionASTNodes: i.ExtensionASTNodes,
		Extensions:        CloneExtensions(i.Extensions),
	}
}
