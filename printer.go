package graphql

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// PrintDefaultValue renders the default d (if any) of type t as the canonical GraphQL
// literal string used by introspection's __InputValue.defaultValue
// (spec.md §6 "Format — default-value printing"). Returns "", false when no
// default is set.
func PrintDefaultValue(d Default, t Type) (string, bool) {
	if !d.HasValue {
		return "", false
	}
	if d.Literal != nil {
		return printASTLiteral(d.Literal), true
	}
	return printValueAsLiteral(d.Value, t), true
}

func printValueAsLiteral(value interface{}, t Type) string {
	if value == nil {
		return "null"
	}
	switch wt := t.(type) {
	case *NonNull:
		return printValueAsLiteral(value, wt.OfType)
	case *List:
		slice, ok := asSlice(value)
		if !ok {
			return printValueAsLiteral(value, wt.OfType)
		}
		parts := make([]string, len(slice))
		for i, v := range slice {
			parts[i] = printValueAsLiteral(v, wt.OfType)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *InputObject:
		m, ok := value.(map[string]interface{})
		if !ok {
			return genericLiteral(value)
		}
		fields := wt.Fields()
		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			ft := Type(String)
			if f, ok := fields[name]; ok {
				ft = f.Type
			}
			parts = append(parts, fmt.Sprintf("%s: %s", name, printValueAsLiteral(m[name], ft)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Enum:
		if ev, ok := wt.ValueByInternal(value); ok {
			return ev.Name
		}
		return genericLiteral(value)
	case *Scalar:
		switch wt.Name {
		case "String", "ID":
			s, _ := wt.Serialize(value)
			return quoteGraphQLString(fmt.Sprintf("%v", s))
		case "Boolean":
			b, _ := wt.Serialize(value)
			return fmt.Sprintf("%v", b)
		case "Int", "Float":
			n, _ := wt.Serialize(value)
			return fmt.Sprintf("%v", n)
		default:
			s, err := wt.Serialize(value)
			if err != nil {
				return genericLiteral(value)
			}
			if str, ok := s.(string); ok {
				return quoteGraphQLString(str)
			}
			return fmt.Sprintf("%v", s)
		}
	default:
		return genericLiteral(value)
	}
}

func genericLiteral(value interface{}) string {
	switch v := value.(type) {
	case string:
		return quoteGraphQLString(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// quoteGraphQLString escapes a Go string the way a GraphQL StringValue
// literal must be escaped: backslash, quote, and the common control
// characters get their short escape; anything else passes through.
func quoteGraphQLString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\b':
			b.WriteString(`\b`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// printASTLiteral renders a stored literal AST node back to source text.
// Only the node kinds a Default can legally hold are handled.
func printASTLiteral(v *ast.Value) string {
	if v == nil {
		return "null"
	}
	switch v.Kind {
	case ast.Variable:
		return "$" + v.Raw
	case ast.IntValue, ast.FloatValue, ast.EnumValue:
		return v.Raw
	case ast.StringValue, ast.BlockValue:
		return quoteGraphQLString(v.Raw)
	case ast.BooleanValue:
		return v.Raw
	case ast.NullValue:
		return "null"
	case ast.ListValue:
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = printASTLiteral(c.Value)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ast.ObjectValue:
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = fmt.Sprintf("%s: %s", c.Name, printASTLiteral(c.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return v.Raw
	}
}
