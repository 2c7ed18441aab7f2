package graphql

import "fmt"

func IsType(t Type) bool { return t != nil }

func IsScalarType(t Type) bool      { _, ok := t.(*Scalar); return ok }
func IsObjectType(t Type) bool      { _, ok := t.(*Object); return ok }
func IsInterfaceType(t Type) bool   { _, ok := t.(*Interface); return ok }
func IsUnionType(t Type) bool       { _, ok := t.(*Union); return ok }
func IsEnumType(t Type) bool        { _, ok := t.(*Enum); return ok }
func IsInputObjectType(t Type) bool { _, ok := t.(*InputObject); return ok }
func IsListType(t Type) bool        { _, ok := t.(*List); return ok }
func IsNonNullType(t Type) bool     { _, ok := t.(*NonNull); return ok }

// IsInputType reports whether t may be used as an argument or input-field
// type: a Scalar, Enum, InputObject, or a wrapping thereof.
func IsInputType(t Type) bool {
	named := GetNamedType(t)
	if named == nil {
		return false
	}
	switch named.(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	default:
		return false
	}
}

// IsOutputType reports whether t may be used as a field type: a Scalar,
// Object, Interface, Union, Enum, or a wrapping thereof.
func IsOutputType(t Type) bool {
	named := GetNamedType(t)
	if named == nil {
		return false
	}
	switch named.(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	default:
		return false
	}
}

// IsLeafType reports whether t is a Scalar or Enum - a type with no
// sub-selections.
func IsLeafType(t Type) bool {
	switch t.(type) {
	case *Scalar, *Enum:
		return true
	default:
		return false
	}
}

// IsCompositeType reports whether t is an Object, Interface or Union - a
// type that admits sub-selections.
func IsCompositeType(t Type) bool {
	switch t.(type) {
	case *Object, *Interface, *Union:
		return true
	default:
		return false
	}
}

// IsAbstractType reports whether t is an Interface or Union, requiring
// runtime dispatch to resolve a concrete type.
func IsAbstractType(t Type) bool {
	switch t.(type) {
	case *Interface, *Union:
		return true
	default:
		return false
	}
}

func IsDirective(d *Directive) bool { return d != nil }

func IsSpecifiedDirective(d *Directive) bool {
	switch d.Name {
	case "skip", "include", "deprecated", "specifiedBy":
		return true
	default:
		return false
	}
}

func assertKind(ok bool, value interface{}, kind string) {
	if !ok {
		panic(fmt.Sprintf("Expected %v to be a %s.", value, kind))
	}
}

func AssertScalarType(t Type) *Scalar {
	v, ok := t.(*Scalar)
	assertKind(ok, t, "GraphQL Scalar type")
	return v
}

func AssertObjectType(t Type) *Object {
	v, ok := t.(*Object)
	assertKind(ok, t, "GraphQL Object type")
	return v
}

func AssertInterfaceType(t Type) *Interface {
	v, ok := t.(*Interface)
	assertKind(ok, t, "GraphQL Interface type")
	return v
}

func AssertUnionType(t Type) *Union {
	v, ok := t.(*Union)
	assertKind(ok, t, "GraphQL Union type")
	return v
}

func AssertEnumType(t Type) *Enum {
	v, ok := t.(*Enum)
	assertKind(ok, t, "GraphQL Enum type")
	return v
}

func AssertInputObjectType(t Type) *InputObject {
	v, ok := t.(*InputObject)
	assertKind(ok, t, "GraphQL Input Object type")
	return v
}

func AssertListType(t Type) *List {
	v, ok := t.(*List)
	assertKind(ok, t, "GraphQL List type")
	return v
}

func AssertNonNullType(t Type) *NonNull {
	v, ok := t.(*NonNull)
	assertKind(ok, t, "GraphQL Non-Null type")
	return v
}

func AssertInputType(t Type) Type {
	assertKind(IsInputType(t), t, "GraphQL input type")
	return t
}

func AssertOutputType(t Type) Type {
	assertKind(IsOutputType(t), t, "GraphQL output type")
	return t
}

func AssertLeafType(t Type) Type {
	assertKind(IsLeafType(t), t, "GraphQL leaf type")
	return t
}

func AssertCompositeType(t Type) Type {
	assertKind(IsCompositeType(t), t, "GraphQL composite type")
	return t
}

func AssertAbstractType(t Type) Type {
	assertKind(IsAbstractType(t), t, "GraphQL abstract type")
	return t
}

func AssertWrappingType(t Type) Type {
	assertKind(IsWrappingType(t), t, "GraphQL wrapping type")
	return t
}

func AssertNullableType(t Type) Type {
	assertKind(IsNullableType(t), t, "GraphQL nullable type")
	return t
}

func AssertNamedType(t NamedType) NamedType {
	assertKind(t != nil, t, "GraphQL named type")
	return t
}
