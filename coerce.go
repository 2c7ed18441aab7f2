package graphql

import (
	"fmt"
	"reflect"
)

// CoerceInputValue converts a wire value (already JSON-decoded: map, slice,
// string, float64, bool, nil) into an internal value of type t, per
// spec.md §4.4 "Input coercion".
func CoerceInputValue(value interface{}, t Type) (interface{}, error) {
	if nn, ok := t.(*NonNull); ok {
		if value == nil {
			return nil, fmt.Errorf("Expected non-nullable type %s not to be null.", t.String())
		}
		return CoerceInputValue(value, nn.OfType)
	}
	if value == nil {
		return nil, nil
	}

	switch wt := t.(type) {
	case *List:
		return coerceListInput(value, wt)
	case *InputObject:
		return coerceInputObjectInput(value, wt)
	case *Enum:
		return coerceEnumInput(value, wt)
	case *Scalar:
		return wt.ParseValue(value)
	default:
		return nil, fmt.Errorf("unsupported type for input coercion: %s", t.String())
	}
}

func coerceListInput(value interface{}, lt *List) (interface{}, error) {
	if slice, ok := asSlice(value); ok {
		out := make([]interface{}, len(slice))
		for i, item := range slice {
			v, err := CoerceInputValue(item, lt.OfType)
			if err != nil {
				return nil, fmt.Errorf("In element #%d: %s", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
	// A single non-list value coerces into a singleton list - preserved
	// verbatim per spec.md §8 Open Questions.
	v, err := CoerceInputValue(value, lt.OfType)
	if err != nil {
		return nil, err
	}
	return []interface{}{v}, nil
}

func asSlice(value interface{}) ([]interface{}, bool) {
	if s, ok := value.([]interface{}); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func coerceEnumInput(value interface{}, e *Enum) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("Enum %q cannot represent non-string value: %v.%s", e.Name, value, didYouMeanValue(e, fmt.Sprintf("%v", value)))
	}
	ev, ok := e.ValueByName(name)
	if !ok {
		return nil, fmt.Errorf("Value %q does not exist in %q enum.%s", name, e.Name, didYouMeanValue(e, name))
	}
	return ev.Value, nil
}

func didYouMeanValue(e *Enum, given string) string {
	var best string
	bestDist := -1
	for _, ev := range e.Values() {
		d := levenshtein(given, ev.Name)
		if d <= 2 && (bestDist == -1 || d < bestDist) {
			bestDist, best = d, ev.Name
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" Did you mean the enum value %q?", best)
}

func levenshtein(a, b string) int {
	la, lb := len(a), len(b)
	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		cur[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}

// fieldProvider resolves the coerced value for a single InputObject field
// by name, reporting whether the caller supplied anything for it at all
// (present=false means "use the default, or error if required").
type fieldProvider func(name string, fieldType Type) (value interface{}, present bool, err error)

// coerceInputObjectFields applies io's field defaults/requiredness rules
// uniformly across both the wire-value and literal-AST coercion paths.
func coerceInputObjectFields(io *InputObject, providedNames []string, get fieldProvider) (map[string]interface{}, error) {
	fields := io.Fields()

	if !io.IsOneOf {
		known := make(map[string]bool, len(fields))
		for name := range fields {
			known[name] = true
		}
		for _, name := range providedNames {
			if !known[name] {
				return nil, fmt.Errorf("Field %q is not defined by type %q.", name, io.Name)
			}
		}
	}

	out := make(map[string]interface{}, len(fields))
	setCount := 0
	for name, f := range fields {
		v, present, err := get(name, f.Type)
		if err != nil {
			return nil, fmt.Errorf("In field %q: %s", name, err)
		}
		if present {
			if v == nil {
				if _, nonNull := f.Type.(*NonNull); nonNull {
					return nil, fmt.Errorf("Field %q of required type %s was not provided.", name, f.Type.String())
				}
				out[name] = nil
				setCount++
				continue
			}
			out[name] = v
			setCount++
			continue
		}
		if f.Default.HasValue {
			dv, err := defaultValueOf(f.Default, f.Type)
			if err != nil {
				return nil, err
			}
			out[name] = dv
			continue
		}
		if IsRequiredInputField(f) {
			return nil, fmt.Errorf("Field %q of required type %s was not provided.", name, f.Type.String())
		}
	}

	if io.IsOneOf {
		if setCount != 1 {
			return nil, fmt.Errorf("Exactly one key must be specified for oneOf type %q.", io.Name)
		}
		for name, v := range out {
			if v == nil {
				return nil, fmt.Errorf("Field %q must be non-null for oneOf type %q.", name, io.Name)
			}
		}
	}

	return out, nil
}

func defaultValueOf(d Default, t Type) (interface{}, error) {
	if d.Literal != nil {
		return ValueFromAST(d.Literal, t, nil)
	}
	return d.Value, nil
}

func coerceInputObjectInput(value interface{}, io *InputObject) (interface{}, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s cannot represent non-object value: %v.", io.Name, value)
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return coerceInputObjectFields(io, names, func(name string, fieldType Type) (interface{}, bool, error) {
		raw, present := m[name]
		if !present {
			return nil, false, nil
		}
		if raw == nil {
			return nil, true, nil
		}
		v, err := CoerceInputValue(raw, fieldType)
		return v, true, err
	})
}

// CoerceOutputValue converts a resolver-produced internal value into its
// wire representation, per spec.md §4.4 "Output coercion".
func CoerceOutputValue(value interface{}, t Type) (interface{}, error) {
	if nn, ok := t.(*NonNull); ok {
		if value == nil {
			return nil, fmt.Errorf("Expected non-nullable type %s not to be null.", t.String())
		}
		return CoerceOutputValue(value, nn.OfType)
	}
	if value == nil {
		return nil, nil
	}
	switch wt := t.(type) {
	case *List:
		slice, ok := asSlice(value)
		if !ok {
			v, err := CoerceOutputValue(value, wt.OfType)
			if err != nil {
				return nil, err
			}
			return []interface{}{v}, nil
		}
		out := make([]interface{}, len(slice))
		for i, item := range slice {
			v, err := CoerceOutputValue(item, wt.OfType)
			if err != nil {
				return nil, fmt.Errorf("In element #%d: %s", i, err)
			}
			out[i] = v
		}
		return out, nil
	case *Enum:
		ev, ok := wt.ValueByInternal(value)
		if !ok {
			return nil, fmt.Errorf("Enum %q cannot represent value: %v", wt.Name, value)
		}
		return ev.Name, nil
	case *Scalar:
		return wt.Serialize(value)
	default:
		return nil, fmt.Errorf("unsupported type for output coercion: %s", t.String())
	}
}
