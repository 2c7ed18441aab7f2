package graphql

import (
	"fmt"
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
)

// EqualFn compares two internal enum values for the purposes of output
// serialization lookup. The default behaves like JS's `===`: primitive
// kinds compare by value; pointers, maps, slices, channels and functions
// by identity; any other value (structs, arrays) by reflect.DeepEqual.
type EqualFn func(a, b interface{}) bool

func defaultEnumEqual(a, b interface{}) bool {
	switch a.(type) {
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return a == b
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.IsValid() && rb.IsValid() && ra.Type() == rb.Type() {
		switch ra.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return ra.Pointer() == rb.Pointer()
		case reflect.Slice:
			return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
		}
	}
	return reflect.DeepEqual(a, b)
}

// EnumValueConfig configures one member of an Enum.
type EnumValueConfig struct {
	Value             interface{} // defaults to the member's name if nil
	Description       string
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions
}

// EnumValue is a single realized member of an Enum.
type EnumValue struct {
	Name              string
	Value             interface{}
	Description       string
	DeprecationReason string
	ASTNode           ast.Node
	Extensions        Extensions
}

// EnumConfig is the user-supplied configuration for NewEnum.
type EnumConfig struct {
	Name        string
	Description string
	// Values preserves insertion order, unlike a Go map.
	Values     []EnumValueName
	Equal      EqualFn
	ASTNode    ast.Node
	Extensions Extensions
}

// EnumValueName pairs a member name with its configuration, used to
// preserve declaration order (spec.md §3.1: "an ordered sequence").
type EnumValueName struct {
	Name   string
	Config EnumValueConfig
}

// Enum is a leaf type whose values are a fixed, ordered set of named
// members, each with its own internal representation.
type Enum struct {
	Name        string
	Description string
	Equal       EqualFn
	ASTNode     ast.Node
	Extensions  Extensions

	values     []*EnumValue
	byName     map[string]*EnumValue
}

var forbiddenEnumValueNames = map[string]bool{"true": true, "false": true, "null": true}

// NewEnum constructs an Enum from cfg. Panics on an invalid enum name, an
// invalid or forbidden value name, or a duplicate value name.
func NewEnum(cfg EnumConfig) *Enum {
	AssertValidName(cfg.Name)
	e := &Enum{
		Name:        cfg.Name,
		Description: cfg.Description,
		Equal:       cfg.Equal,
		ASTNode:     cfg.ASTNode,
		Extensions:  CloneExtensions(cfg.Extensions),
		byName:      make(map[string]*EnumValue, len(cfg.Values)),
	}
	if e.Equal == nil {
		e.Equal = defaultEnumEqual
	}
	for _, ev := range cfg.Values {
		AssertValidName(ev.Name)
		if forbiddenEnumValueNames[ev.Name] {
			panic(fmt.Sprintf("%s.%s: Enum values cannot be named: true, false, or null", cfg.Name, ev.Name))
		}
		if _, dup := e.byName[ev.Name]; dup {
			panic(fmt.Sprintf("%s.%s: duplicate enum value", cfg.Name, ev.Name))
		}
		val := ev.Config.Value
		if val == nil {
			val = ev.Name
		}
		rv := &EnumValue{
			Name:              ev.Name,
			Value:             val,
			Description:       ev.Config.Description,
			DeprecationReason: ev.Config.DeprecationReason,
			ASTNode:           ev.Config.ASTNode,
			Extensions:        CloneExtensions(ev.Config.Extensions),
		}
		e.values = append(e.values, rv)
		e.byName[ev.Name] = rv
	}
	return e
}

func (e *Enum) TypeName() string        { return e.Name }
func (e *Enum) TypeDescription() string { return e.Description }
func (e *Enum) String() string          { return e.Name }
func (e *Enum) isType()                 {}

// Values returns e's members in declaration order.
func (e *Enum) Values() []*EnumValue {
	out := make([]*EnumValue, len(e.values))
	copy(out, e.values)
	return out
}

// ValueByName looks up a member by its GraphQL name.
func (e *Enum) ValueByName(name string) (*EnumValue, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// ValueByInternal finds the first member whose internal value equals v
// under e.Equal, used by output coercion.
func (e *Enum) ValueByInternal(v interface{}) (*EnumValue, bool) {
	for _, ev := range e.values {
		if e.Equal(ev.Value, v) {
			return ev, true
		}
	}
	return nil, false
}

// ToConfig returns a plain, round-trippable snapshot of e.
func (e *Enum) ToConfig() EnumConfig {
	values := make([]EnumValueName, len(e.values))
	for i, ev := range e.values {
		values[i] = EnumValueName{
			Name: ev.Name,
			Config: EnumValueConfig{
				Value:             ev.Value,
				Description:       ev.Description,
				DeprecationReason: ev.DeprecationReason,
				ASTNode:           ev.ASTNode,
				Extensions:        CloneExtensions(ev.Extensions),
			},
		}
	}
	return EnumConfig{
		Name:        e.Name,
		Description: e.Description,
		Values:      values,
		Equal:       e.Equal,
		ASTNode:     e.ASTNode,
		Extensions:  CloneExtensions(e.Extensions),
	}
}
