package graphql

import "fmt"

// Type is the root of every value in the type system: named types and the
// two wrapping type markers, List and NonNull.
type Type interface {
	String() string
	isType()
}

// NamedType is a Type with an identity: name, description, AST origin.
type NamedType interface {
	Type
	TypeName() string
	TypeDescription() string
}

var (
	_ Type = (*Scalar)(nil)
	_ Type = (*Object)(nil)
	_ Type = (*Interface)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*Enum)(nil)
	_ Type = (*InputObject)(nil)
	_ Type = (*List)(nil)
	_ Type = (*NonNull)(nil)

	_ NamedType = (*Scalar)(nil)
	_ NamedType = (*Object)(nil)
	_ NamedType = (*Interface)(nil)
	_ NamedType = (*Union)(nil)
	_ NamedType = (*Enum)(nil)
	_ NamedType = (*InputObject)(nil)
)

// List represents a sequence of values of the wrapped type.
type List struct {
	OfType Type
}

// NewList wraps t in a List. Unlike NonNull, wrapping any type (including
// another List or a NonNull) in List is always legal.
func NewList(t Type) *List {
	if t == nil {
		panic("Can only create List of a GraphQLType but got: <nil>.")
	}
	return &List{OfType: t}
}

func (l *List) String() string { return fmt.Sprintf("[%s]", l.OfType.String()) }
func (l *List) isType()        {}

// NonNull represents a type that a field/argument/input-field guarantees
// is never null. A NonNull may never itself wrap another NonNull.
type NonNull struct {
	OfType Type
}

// NewNonNull wraps t in a NonNull. Panics if t is itself a *NonNull - a
// NonNull never wraps a NonNull.
func NewNonNull(t Type) *NonNull {
	if t == nil {
		panic("Can only create NonNull of a Nullable GraphQLType but got: <nil>.")
	}
	if _, ok := t.(*NonNull); ok {
		panic(fmt.Sprintf("Can only create NonNull of a Nullable GraphQLType but got: %s.", t.String()))
	}
	return &NonNull{OfType: t}
}

func (n *NonNull) String() string { return fmt.Sprintf("%s!", n.OfType.String()) }
func (n *NonNull) isType()        {}

// IsWrappingType reports whether t is a List or NonNull.
func IsWrappingType(t Type) bool {
	switch t.(type) {
	case *List, *NonNull:
		return true
	default:
		return false
	}
}

// IsNullableType reports whether t is anything other than a NonNull.
func IsNullableType(t Type) bool {
	_, ok := t.(*NonNull)
	return !ok
}

// GetNullableType strips a single outer NonNull, if present. A nil input
// passes through as nil, matching the source's undefined-passthrough.
func GetNullableType(t Type) Type {
	if t == nil {
		return nil
	}
	if nn, ok := t.(*NonNull); ok {
		return nn.OfType
	}
	return t
}

// GetNamedType strips every wrapping layer (List, NonNull, in any nesting)
// down to the underlying NamedType. A nil input yields nil.
func GetNamedType(t Type) NamedType {
	unwrapped := t
	for unwrapped != nil {
		switch w := unwrapped.(type) {
		case *List:
			unwrapped = w.OfType
		case *NonNull:
			unwrapped = w.OfType
		default:
			named, _ := unwrapped.(NamedType)
			return named
		}
	}
	return nil
}

// typesEqual reports structural equality between two Type values: two
// List(String) built independently are equal, unlike Go's == on pointers.
func typesEqual(a, b Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case *List:
		bv, ok := b.(*List)
		return ok && typesEqual(av.OfType, bv.OfType)
	case *NonNull:
		bv, ok := b.(*NonNull)
		return ok && typesEqual(av.OfType, bv.OfType)
	default:
		an, aok := a.(NamedType)
		bn, bok := b.(NamedType)
		return aok && bok && an.TypeName() == bn.TypeName()
	}
}
