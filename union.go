package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// UnionConfig is the user-supplied configuration for NewUnion.
type UnionConfig struct {
	Name        string
	Description string
	Types       ThunkTypes
	ResolveType ResolveTypeFn
	ASTNode     ast.Node
	Extensions  Extensions
}

// Union describes a field whose value may be any one of a fixed set of
// Object types.
type Union struct {
	Name        string
	Description string
	ResolveType ResolveTypeFn
	ASTNode     ast.Node
	Extensions  Extensions

	types typesCell
}

// NewUnion constructs a Union from cfg.
func NewUnion(cfg UnionConfig) *Union {
	AssertValidName(cfg.Name)
	u := &Union{
		Name:        cfg.Name,
		Description: cfg.Description,
		ResolveType: cfg.ResolveType,
		ASTNode:     cfg.ASTNode,
		Extensions:  CloneExtensions(cfg.Extensions),
	}
	u.types.thunk = cfg.Types
	return u
}

func (u *Union) TypeName() string        { return u.Name }
func (u *Union) TypeDescription() string { return u.Description }
func (u *Union) String() string          { return u.Name }
func (u *Union) isType()                 {}

// Types realizes and returns u's member Object list, in declared order.
func (u *Union) Types() []*Object {
	return u.types.get(func(t ThunkTypes) ([]*Object, error) {
		raw := t
		if fn, ok := t.(func() []*Object); ok {
			raw = fn()
		}
		list, ok := raw.([]*Object)
		if !ok {
			return nil, fmt.Errorf("Must provide Array of types or a function which returns such an array for Union %s.", u.Name)
		}
		out := make([]*Object, len(list))
		copy(out, list)
		return out, nil
	})
}

// ToConfig returns a plain, round-trippable snapshot of u.
func (u *Union) ToConfig() UnionConfig {
	types := u.Types()
	cp := make([]*Object, len(types))
	copy(cp, types)
	return UnionConfig{
		Name:        u.Name,
		Description: u.Description,
		Types:       ThunkTypes(cp),
		ResolveType: u.ResolveType,
		ASTNode:     u.ASTNode,
		Extensions:  CloneExtensions(u.Extensions),
	}
}
