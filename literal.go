package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// valueFromASTUntyped converts an AST value node into a plain Go value with
// no type information, substituting $variable references from vars. This
// backs the default ParseLiteral hook every Scalar gets when the user does
// not supply one (spec.md §4.4: "default behavior recursively converts the
// AST to a plain value ... and delegates to parseValue").
func valueFromASTUntyped(value *ast.Value, vars map[string]interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}
	switch value.Kind {
	case ast.Variable:
		if vars != nil {
			if v, ok := vars[value.Raw]; ok {
				return v, nil
			}
		}
		return nil, nil
	case ast.NullValue:
		return nil, nil
	case ast.IntValue:
		var n int64
		if _, err := fmt.Sscanf(value.Raw, "%d", &n); err != nil {
			return nil, fmt.Errorf("invalid int literal: %s", value.Raw)
		}
		return n, nil
	case ast.FloatValue:
		var f float64
		if _, err := fmt.Sscanf(value.Raw, "%g", &f); err != nil {
			return nil, fmt.Errorf("invalid float literal: %s", value.Raw)
		}
		return f, nil
	case ast.StringValue, ast.BlockValue, ast.EnumValue:
		return value.Raw, nil
	case ast.BooleanValue:
		return value.Raw == "true", nil
	case ast.ListValue:
		out := make([]interface{}, 0, len(value.Children))
		for _, c := range value.Children {
			v, err := valueFromASTUntyped(c.Value, vars)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case ast.ObjectValue:
		out := make(map[string]interface{}, len(value.Children))
		for _, c := range value.Children {
			v, err := valueFromASTUntyped(c.Value, vars)
			if err != nil {
				return nil, err
			}
			out[c.Name] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported literal kind: %v", value.Kind)
	}
}

// ValueFromAST coerces a literal AST node into an internal value of the
// given type, substituting variables from vars. This is the literal-path
// counterpart of CoerceInputValue - see coerce.go.
func ValueFromAST(value *ast.Value, t Type, vars map[string]interface{}) (interface{}, error) {
	if value != nil && value.Kind == ast.Variable {
		if vars == nil {
			return nil, nil
		}
		v, ok := vars[value.Raw]
		if !ok {
			return nil, nil
		}
		return CoerceInputValue(v, t)
	}

	if nn, ok := t.(*NonNull); ok {
		if value == nil || value.Kind == ast.NullValue {
			return nil, fmt.Errorf("Expected non-nullable type %s not to be null.", t.String())
		}
		return ValueFromAST(value, nn.OfType, vars)
	}

	if value == nil || value.Kind == ast.NullValue {
		return nil, nil
	}

	switch wt := t.(type) {
	case *List:
		if value.Kind == ast.ListValue {
			out := make([]interface{}, 0, len(value.Children))
			for _, c := range value.Children {
				v, err := ValueFromAST(c.Value, wt.OfType, vars)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		}
		v, err := ValueFromAST(value, wt.OfType, vars)
		if err != nil {
			return nil, err
		}
		return []interface{}{v}, nil

	case *InputObject:
		if value.Kind != ast.ObjectValue {
			return nil, fmt.Errorf("%s cannot represent non-object value.", wt.Name)
		}
		provided := make(map[string]*ast.Value, len(value.Children))
		names := make([]string, 0, len(value.Children))
		for _, c := range value.Children {
			provided[c.Name] = c.Value
			names = append(names, c.Name)
		}
		return coerceInputObjectFields(wt, names, func(name string, fieldType Type) (interface{}, bool, error) {
			lit, ok := provided[name]
			if !ok {
				return nil, false, nil
			}
			v, err := ValueFromAST(lit, fieldType, vars)
			return v, true, err
		})

	case *Enum:
		if value.Kind != ast.EnumValue {
			return nil, fmt.Errorf("Enum %q cannot represent non-enum value: %s.", wt.Name, value.Raw)
		}
		ev, ok := wt.ValueByName(value.Raw)
		if !ok {
			return nil, fmt.Errorf("Value %q does not exist in %q enum.%s", value.Raw, wt.Name, didYouMeanValue(wt, value.Raw))
		}
		return ev.Value, nil

	case *Scalar:
		return wt.ParseLiteral(value, vars)
	}

	return nil, fmt.Errorf("unsupported type for literal coercion: %s", t.String())
}
