package graphql

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// InputObjectConfig is the user-supplied configuration for NewInputObject.
type InputObjectConfig struct {
	Name        string
	Description string
	Fields      ThunkFieldsInput
	// IsOneOf marks the input object as requiring exactly one field set,
	// per the @oneOf input-object proposal (spec.md §3.1, §4.4).
	IsOneOf    bool
	ASTNode    ast.Node
	Extensions Extensions
}

// InputObject describes a structured collection of input fields that may
// be supplied as an argument or variable value. Unlike Object, its fields
// may never carry resolvers.
type InputObject struct {
	Name        string
	Description string
	IsOneOf     bool
	ASTNode     ast.Node
	Extensions  Extensions

	fields inputFieldsCell
}

// NewInputObject constructs an InputObject from cfg.
func NewInputObject(cfg InputObjectConfig) *InputObject {
	AssertValidName(cfg.Name)
	io := &InputObject{
		Name:        cfg.Name,
		Description: cfg.Description,
		IsOneOf:     cfg.IsOneOf,
		ASTNode:     cfg.ASTNode,
		Extensions:  CloneExtensions(cfg.Extensions),
	}
	io.fields.thunk = cfg.Fields
	return io
}

func (io *InputObject) TypeName() string        { return io.Name }
func (io *InputObject) TypeDescription() string { return io.Description }
func (io *InputObject) String() string          { return io.Name }
func (io *InputObject) isType()                 {}

// Fields realizes and returns io's input field map.
func (io *InputObject) Fields() InputFieldMap {
	fm := io.fields.get(func(t ThunkFieldsInput) (InputFieldMap, error) {
		return realizeThunkFieldsInput(io.Name, t)
	})
	for _, f := range fm {
		f.Parent = io
	}
	return fm
}

// ToConfig returns a plain, round-trippable snapshot of io.
func (io *InputObject) ToConfig() InputObjectConfig {
	fm := io.Fields()
	cfgs := make(InputFieldMapConfig, len(fm))
	for name, f := range fm {
		cfgs[name] = InputFieldConfig{
			Name:              f.Name,
			Description:       f.Description,
			Type:              f.Type,
			Default:           f.Default,
			DeprecationReason: f.DeprecationReason,
			ASTNode:           f.ASTNode,
			Extensions:        CloneExtensions(f.Extensions),
		}
	}
	return InputObjectConfig{
		Name:        io.Name,
		Description: io.Description,
		Fields:      cfgs,
		IsOneOf:     io.IsOneOf,
		ASTNode:     io.ASTNode,
		Extensions:  CloneExtensions(io.Extensions),
	}
}
