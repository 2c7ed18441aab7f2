package graphql

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// SerializeFn converts an internal (resolver-produced) value into its
// client-visible wire representation.
type SerializeFn func(value interface{}) (interface{}, error)

// ParseValueFn converts a wire value (from variables or a JSON default)
// into the scalar's internal representation.
type ParseValueFn func(value interface{}) (interface{}, error)

// ParseLiteralFn converts a literal AST node into the scalar's internal
// representation. vars carries the enclosing operation's variable values,
// for literals containing $variable references; it may be nil.
type ParseLiteralFn func(value *ast.Value, vars map[string]interface{}) (interface{}, error)

// ScalarConfig is the user-supplied configuration for NewScalar.
type ScalarConfig struct {
	Name           string
	Description    string
	SpecifiedByURL string
	Serialize      SerializeFn
	ParseValue     ParseValueFn
	ParseLiteral   ParseLiteralFn
	ASTNode        ast.Node
	Extensions     Extensions
}

// Scalar is a leaf type: Int, Float, String, Boolean, ID, or any
// user-defined scalar with its own coercion hooks.
type Scalar struct {
	Name           string
	Description    string
	SpecifiedByURL string
	Serialize      SerializeFn
	ParseValue     ParseValueFn
	ParseLiteral   ParseLiteralFn
	ASTNode        ast.Node
	Extensions     Extensions
}

func identitySerialize(v interface{}) (interface{}, error) { return v, nil }

// NewScalar constructs a Scalar from cfg, filling in identity hooks for any
// coercion function left unset. It panics if the name is invalid, or if
// ParseLiteral is supplied without ParseValue.
func NewScalar(cfg ScalarConfig) *Scalar {
	AssertValidName(cfg.Name)
	if cfg.ParseLiteral != nil && cfg.ParseValue == nil {
		panic(fmt.Sprintf("%s must provide both \"parseValue\" and \"parseLiteral\" functions.", cfg.Name))
	}
	s := &Scalar{
		Name:           cfg.Name,
		Description:    cfg.Description,
		SpecifiedByURL: cfg.SpecifiedByURL,
		Serialize:      cfg.Serialize,
		ParseValue:     cfg.ParseValue,
		ParseLiteral:   cfg.ParseLiteral,
		ASTNode:        cfg.ASTNode,
		Extensions:     CloneExtensions(cfg.Extensions),
	}
	if s.Serialize == nil {
		s.Serialize = identitySerialize
	}
	if s.ParseValue == nil {
		s.ParseValue = identitySerialize
	}
	if s.ParseLiteral == nil {
		pv := s.ParseValue
		s.ParseLiteral = func(value *ast.Value, vars map[string]interface{}) (interface{}, error) {
			v, err := valueFromASTUntyped(value, vars)
			if err != nil {
				return nil, err
			}
			return pv(v)
		}
	}
	return s
}

func (s *Scalar) TypeName() string        { return s.Name }
func (s *Scalar) TypeDescription() string { return s.Description }
func (s *Scalar) String() string          { return s.Name }
func (s *Scalar) isType()                 {}

// ToConfig returns a plain, round-trippable snapshot of s.
func (s *Scalar) ToConfig() ScalarConfig {
	return ScalarConfig{
		Name:           s.Name,
		Description:    s.Description,
		SpecifiedByURL: s.SpecifiedByURL,
		Serialize:      s.Serialize,
		ParseValue:     s.ParseValue,
		ParseLiteral:   s.ParseLiteral,
		ASTNode:        s.ASTNode,
		Extensions:     CloneExtensions(s.Extensions),
	}
}

// The five specified scalars, per spec.md GLOSSARY "Specified scalar".

var Int = NewScalar(ScalarConfig{
	Name:        "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. Int can represent values between -(2^31) and 2^31 - 1.",
	Serialize:   serializeInt,
	ParseValue:  coerceInt,
	ParseLiteral: func(value *ast.Value, vars map[string]interface{}) (interface{}, error) {
		if value.Kind != ast.IntValue {
			return nil, errors.New("Int cannot represent non-integer value: " + value.Raw)
		}
		return coerceInt(value.Raw)
	},
})

func serializeInt(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %v", v)
		}
		return v, nil
	case int32:
		return v, nil
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %v", v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return nil, fmt.Errorf("Int cannot represent non-integer value: %v", v)
		}
		return int(v), nil
	default:
		return nil, fmt.Errorf("Int cannot represent value: %v", v)
	}
}

func coerceInt(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("Int cannot represent non-integer value: %v", v)
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %v", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("Int cannot represent non-integer value: %s", v)
		}
		return int(n), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return nil, fmt.Errorf("Int cannot represent value: %v", v)
	}
}

var Float = NewScalar(ScalarConfig{
	Name:        "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values as specified by IEEE 754.",
	Serialize:   coerceFloat,
	ParseValue:  coerceFloat,
	ParseLiteral: func(value *ast.Value, vars map[string]interface{}) (interface{}, error) {
		if value.Kind != ast.IntValue && value.Kind != ast.FloatValue {
			return nil, errors.New("Float cannot represent non numeric value: " + value.Raw)
		}
		return coerceFloat(value.Raw)
	},
})

func coerceFloat(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("Float cannot represent non numeric value: %s", v)
		}
		return f, nil
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	default:
		return nil, fmt.Errorf("Float cannot represent non numeric value: %v", v)
	}
}

var String = NewScalar(ScalarConfig{
	Name:        "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	Serialize:   coerceString,
	ParseValue:  coerceString,
	ParseLiteral: func(value *ast.Value, vars map[string]interface{}) (interface{}, error) {
		switch value.Kind {
		case ast.StringValue, ast.BlockValue:
			return value.Raw, nil
		default:
			return nil, errors.New("String cannot represent a non string value: " + value.Raw)
		}
	},
})

func coerceString(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool, int, float64:
		return fmt.Sprintf("%v", v), nil
	default:
		return nil, fmt.Errorf("String cannot represent value: %v", v)
	}
}

var Boolean = NewScalar(ScalarConfig{
	Name:        "Boolean",
	Description: "The `Boolean` scalar type represents `true` or `false`.",
	Serialize:   coerceBoolean,
	ParseValue:  coerceBoolean,
	ParseLiteral: func(value *ast.Value, vars map[string]interface{}) (interface{}, error) {
		if value.Kind != ast.BooleanValue {
			return nil, errors.New("Boolean cannot represent a non boolean value: " + value.Raw)
		}
		return value.Raw == "true", nil
	},
})

func coerceBoolean(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	default:
		return nil, fmt.Errorf("Boolean cannot represent a non boolean value: %v", v)
	}
}

var ID = NewScalar(ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as key " +
		"for a cache. The ID type is serialized in the same way as a String; however, it is not intended to be " +
		"human-readable.",
	Serialize:  coerceString,
	ParseValue: coerceIDValue,
	ParseLiteral: func(value *ast.Value, vars map[string]interface{}) (interface{}, error) {
		switch value.Kind {
		case ast.StringValue, ast.IntValue:
			return value.Raw, nil
		default:
			return nil, errors.New("ID cannot represent value: " + value.Raw)
		}
	},
})

func coerceIDValue(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), nil
		}
	}
	return nil, fmt.Errorf("ID cannot represent value: %v", value)
}

// IsSpecifiedScalar reports whether s is one of the five built-in scalars.
func IsSpecifiedScalar(s *Scalar) bool {
	switch s.Name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	default:
		return false
	}
}
