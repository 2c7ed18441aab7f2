package graphql

import (
	"context"
	"sort"
)

// TypeKind enumerates the eight possible shapes __Type.kind may report.
type TypeKind string

const (
	ScalarKind      TypeKind = "SCALAR"
	ObjectKind      TypeKind = "OBJECT"
	InterfaceKind   TypeKind = "INTERFACE"
	UnionKind       TypeKind = "UNION"
	EnumKind        TypeKind = "ENUM"
	InputObjectKind TypeKind = "INPUT_OBJECT"
	ListKind        TypeKind = "LIST"
	NonNullKind     TypeKind = "NON_NULL"
)

func kindOf(t Type) TypeKind {
	switch t.(type) {
	case *Scalar:
		return ScalarKind
	case *Object:
		return ObjectKind
	case *Interface:
		return InterfaceKind
	case *Union:
		return UnionKind
	case *Enum:
		return EnumKind
	case *InputObject:
		return InputObjectKind
	case *List:
		return ListKind
	case *NonNull:
		return NonNullKind
	default:
		return ""
	}
}

func isIntrospectionTypeName(name string) bool {
	switch name {
	case "__Schema", "__Type", "__Field", "__InputValue", "__EnumValue", "__Directive",
		"__TypeKind", "__DirectiveLocation":
		return true
	default:
		return false
	}
}

// inputValueView unifies Argument and InputField for the shared
// __InputValue resolver set.
type inputValueView struct {
	Name              string
	Description       string
	Type              Type
	Default           Default
	DeprecationReason string
}

func argumentView(a *Argument) inputValueView {
	return inputValueView{a.Name, a.Description, a.Type, a.Default, a.DeprecationReason}
}

func inputFieldView(f *InputField) inputValueView {
	return inputValueView{f.Name, f.Description, f.Type, f.Default, f.DeprecationReason}
}

func includeDeprecatedArg() ArgumentConfig {
	return ArgumentConfig{
		Name:        "includeDeprecated",
		Type:        Boolean,
		Default:     DefaultOf(false),
		Description: "Included when true; deprecated fields and values are omitted otherwise.",
	}
}

func wantsDeprecated(args interface{}) bool {
	m, _ := args.(map[string]interface{})
	if m == nil {
		return false
	}
	b, _ := m["includeDeprecated"].(bool)
	return b
}

func reasonOrNil(reason string) interface{} {
	if reason == "" {
		return nil
	}
	return reason
}

func filteredArgViews(args []*Argument, includeDeprecated bool) []interface{} {
	out := make([]interface{}, 0, len(args))
	for _, a := range args {
		if !includeDeprecated && a.DeprecationReason != "" {
			continue
		}
		out = append(out, argumentView(a))
	}
	return out
}

func filteredFields(fm FieldMap, includeDeprecated bool) []interface{} {
	names := make([]string, 0, len(fm))
	for name := range fm {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]interface{}, 0, len(names))
	for _, name := range names {
		f := fm[name]
		if !includeDeprecated && f.DeprecationReason != "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func ifacesToTypes(ifaces []*Interface) []interface{} {
	out := make([]interface{}, len(ifaces))
	for i, f := range ifaces {
		out[i] = Type(f)
	}
	return out
}

func objectsToTypes(objs []*Object) []interface{} {
	out := make([]interface{}, len(objs))
	for i, o := range objs {
		out[i] = Type(o)
	}
	return out
}

// buildIntrospectionTypes constructs the meta-schema bound to s: the
// __Schema/__Type/... Object types plus the __TypeKind/__DirectiveLocation
// enums, and the three meta-fields (__typename, __type, __schema). It runs
// once, from NewSchema, before the reachability walk - the returned types
// are then discovered and added to the type map exactly like any user type.
//
// __Type, __Field, __InputValue, __EnumValue, __Directive and __Schema form
// a mutually recursive graph (a __Type's "fields" are __Field, whose "type"
// is a __Type, and so on), so each Object's field map is built lazily from
// a thunk closing over the six forward-declared variables below; by the
// time anything calls Fields(), every variable has been assigned.
func (s *Schema) buildIntrospectionTypes() []Type {
	typeKindEnum := NewEnum(EnumConfig{
		Name:        "__TypeKind",
		Description: "An enum describing what kind of type a given `__Type` is.",
		Values: []EnumValueName{
			{"SCALAR", EnumValueConfig{Value: ScalarKind, Description: "Indicates this type is a scalar."}},
			{"OBJECT", EnumValueConfig{Value: ObjectKind, Description: "Indicates this type is an object. `fields` and `interfaces` are valid fields."}},
			{"INTERFACE", EnumValueConfig{Value: InterfaceKind, Description: "Indicates this type is an interface. `fields`, `interfaces`, and `possibleTypes` are valid fields."}},
			{"UNION", EnumValueConfig{Value: UnionKind, Description: "Indicates this type is a union. `possibleTypes` is a valid field."}},
			{"ENUM", EnumValueConfig{Value: EnumKind, Description: "Indicates this type is an enum. `enumValues` is a valid field."}},
			{"INPUT_OBJECT", EnumValueConfig{Value: InputObjectKind, Description: "Indicates this type is an input object. `inputFields` is a valid field."}},
			{"LIST", EnumValueConfig{Value: ListKind, Description: "Indicates this type is a list. `ofType` is a valid field."}},
			{"NON_NULL", EnumValueConfig{Value: NonNullKind, Description: "Indicates this type is a non-null. `ofType` is a valid field."}},
		},
	})

	directiveLocationValues := make([]EnumValueName, len(AllDirectiveLocations))
	for i, loc := range AllDirectiveLocations {
		directiveLocationValues[i] = EnumValueName{Name: string(loc), Config: EnumValueConfig{Value: loc}}
	}
	directiveLocationEnum := NewEnum(EnumConfig{
		Name:        "__DirectiveLocation",
		Description: "A Directive can be adjacent to many parts of the GraphQL language, a __DirectiveLocation describes one such possible adjacency.",
		Values:      directiveLocationValues,
	})

	var schemaType, typeType, fieldType, inputValueType, enumValueType, directiveType *Object

	inputValueType = NewObject(ObjectConfig{
		Name:        "__InputValue",
		Description: "Arguments provided to Fields or Directives and the input fields of an InputObject are represented as Input Values which describe their type and optionally a default value.",
		Fields: func() FieldMapConfig {
			return FieldMapConfig{
				"name":        {Type: NewNonNull(String), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(inputValueView).Name, nil }},
				"description": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(inputValueView).Description, nil }},
				"type":        {Type: NewNonNull(typeType), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(inputValueView).Type, nil }},
				"defaultValue": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					iv := source.(inputValueView)
					printed, ok := PrintDefaultValue(iv.Default, iv.Type)
					if !ok {
						return nil, nil
					}
					return printed, nil
				}},
				"isDeprecated": {Type: NewNonNull(Boolean), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return source.(inputValueView).DeprecationReason != "", nil
				}},
				"deprecationReason": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return reasonOrNil(source.(inputValueView).DeprecationReason), nil
				}},
			}
		},
	})

	enumValueType = NewObject(ObjectConfig{
		Name:        "__EnumValue",
		Description: "One possible value for a given Enum. Enum values are unique values, not a placeholder for a string or numeric value. However an Enum value is returned in a JSON response as a string.",
		Fields: func() FieldMapConfig {
			return FieldMapConfig{
				"name":        {Type: NewNonNull(String), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(*EnumValue).Name, nil }},
				"description": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(*EnumValue).Description, nil }},
				"isDeprecated": {Type: NewNonNull(Boolean), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return source.(*EnumValue).DeprecationReason != "", nil
				}},
				"deprecationReason": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return reasonOrNil(source.(*EnumValue).DeprecationReason), nil
				}},
			}
		},
	})

	fieldType = NewObject(ObjectConfig{
		Name:        "__Field",
		Description: "Object and Interface types are described by a list of Fields, each of which has a name, potentially a list of arguments, and a return type.",
		Fields: func() FieldMapConfig {
			return FieldMapConfig{
				"name":        {Type: NewNonNull(String), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(*Field).Name, nil }},
				"description": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(*Field).Description, nil }},
				"args": {Type: NewNonNull(NewList(NewNonNull(inputValueType))), Args: []ArgumentConfig{includeDeprecatedArg()},
					Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
						f := source.(*Field)
						return filteredArgViews(f.Args, wantsDeprecated(args)), nil
					}},
				"type": {Type: NewNonNull(typeType), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(*Field).Type, nil }},
				"isDeprecated": {Type: NewNonNull(Boolean), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return source.(*Field).DeprecationReason != "", nil
				}},
				"deprecationReason": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return reasonOrNil(source.(*Field).DeprecationReason), nil
				}},
			}
		},
	})

	directiveType = NewObject(ObjectConfig{
		Name:        "__Directive",
		Description: "A Directive provides a way to describe alternate runtime execution and type validation behavior in a GraphQL document.",
		Fields: func() FieldMapConfig {
			return FieldMapConfig{
				"name":        {Type: NewNonNull(String), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(*Directive).Name, nil }},
				"description": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) { return source.(*Directive).Description, nil }},
				"isRepeatable": {Type: NewNonNull(Boolean), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return source.(*Directive).IsRepeatable, nil
				}},
				"locations": {Type: NewNonNull(NewList(NewNonNull(directiveLocationEnum))), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					d := source.(*Directive)
					out := make([]interface{}, len(d.Locations))
					for i, l := range d.Locations {
						out[i] = l
					}
					return out, nil
				}},
				"args": {Type: NewNonNull(NewList(NewNonNull(inputValueType))), Args: []ArgumentConfig{includeDeprecatedArg()},
					Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
						d := source.(*Directive)
						return filteredArgViews(d.Args, wantsDeprecated(args)), nil
					}},
			}
		},
	})

	typeType = NewObject(ObjectConfig{
		Name:        "__Type",
		Description: "The fundamental unit of any GraphQL Schema is the type. There are many kinds of types in GraphQL as represented by the `__TypeKind` enum.",
		Fields: func() FieldMapConfig {
			return FieldMapConfig{
				"kind": {Type: NewNonNull(typeKindEnum), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return kindOf(source.(Type)), nil
				}},
				"name": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					if n, ok := source.(Type).(NamedType); ok {
						return n.TypeName(), nil
					}
					return nil, nil
				}},
				"description": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					if n, ok := source.(Type).(NamedType); ok {
						return n.TypeDescription(), nil
					}
					return nil, nil
				}},
				"specifiedByURL": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					if sc, ok := source.(Type).(*Scalar); ok && sc.SpecifiedByURL != "" {
						return sc.SpecifiedByURL, nil
					}
					return nil, nil
				}},
				"fields": {Type: NewList(NewNonNull(fieldType)), Args: []ArgumentConfig{includeDeprecatedArg()},
					Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
						var fm FieldMap
						switch t := source.(Type).(type) {
						case *Object:
							fm = t.Fields()
						case *Interface:
							fm = t.Fields()
						default:
							return nil, nil
						}
						return filteredFields(fm, wantsDeprecated(args)), nil
					}},
				"interfaces": {Type: NewList(NewNonNull(typeType)), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					switch t := source.(Type).(type) {
					case *Object:
						return ifacesToTypes(t.Interfaces()), nil
					case *Interface:
						return ifacesToTypes(t.Interfaces()), nil
					default:
						return nil, nil
					}
				}},
				"possibleTypes": {Type: NewList(NewNonNull(typeType)), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					named, ok := source.(Type).(NamedType)
					if !ok || !IsAbstractType(named) {
						return nil, nil
					}
					return objectsToTypes(s.GetPossibleTypes(named)), nil
				}},
				"enumValues": {Type: NewList(NewNonNull(enumValueType)), Args: []ArgumentConfig{includeDeprecatedArg()},
					Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
						e, ok := source.(Type).(*Enum)
						if !ok {
							return nil, nil
						}
						include := wantsDeprecated(args)
						out := make([]interface{}, 0, len(e.Values()))
						for _, v := range e.Values() {
							if !include && v.DeprecationReason != "" {
								continue
							}
							out = append(out, v)
						}
						return out, nil
					}},
				"inputFields": {Type: NewList(NewNonNull(inputValueType)), Args: []ArgumentConfig{includeDeprecatedArg()},
					Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
						io, ok := source.(Type).(*InputObject)
						if !ok {
							return nil, nil
						}
						include := wantsDeprecated(args)
						fields := io.Fields()
						names := make([]string, 0, len(fields))
						for name := range fields {
							names = append(names, name)
						}
						sort.Strings(names)
						out := make([]interface{}, 0, len(names))
						for _, name := range names {
							f := fields[name]
							if !include && f.DeprecationReason != "" {
								continue
							}
							out = append(out, inputFieldView(f))
						}
						return out, nil
					}},
				"ofType": {Type: typeType, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					switch t := source.(Type).(type) {
					case *List:
						return t.OfType, nil
					case *NonNull:
						return t.OfType, nil
					default:
						return nil, nil
					}
				}},
			}
		},
	})

	schemaType = NewObject(ObjectConfig{
		Name:        "__Schema",
		Description: "A GraphQL Schema defines the capabilities of a GraphQL server. It exposes all available types and directives on the server, as well as the entry points for query, mutation, and subscription operations.",
		Fields: func() FieldMapConfig {
			return FieldMapConfig{
				"description": {Type: String, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return source.(*Schema).Description, nil
				}},
				"types": {Type: NewNonNull(NewList(NewNonNull(typeType))), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					sch := source.(*Schema)
					names := sch.GetTypeNames()
					out := make([]interface{}, len(names))
					for i, n := range names {
						out[i] = Type(sch.GetType(n))
					}
					return out, nil
				}},
				"queryType": {Type: NewNonNull(typeType), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					return Type(source.(*Schema).Query), nil
				}},
				"mutationType": {Type: typeType, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					if source.(*Schema).Mutation == nil {
						return nil, nil
					}
					return Type(source.(*Schema).Mutation), nil
				}},
				"subscriptionType": {Type: typeType, Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					if source.(*Schema).Subscription == nil {
						return nil, nil
					}
					return Type(source.(*Schema).Subscription), nil
				}},
				"directives": {Type: NewNonNull(NewList(NewNonNull(directiveType))), Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
					dirs := source.(*Schema).GetDirectives()
					out := make([]interface{}, len(dirs))
					for i, d := range dirs {
						out[i] = d
					}
					return out, nil
				}},
			}
		},
	})

	s.typenameField = &Field{
		Name: "__typename",
		Type: NewNonNull(String),
		Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
			if n, ok := source.(NamedType); ok {
				return n.TypeName(), nil
			}
			return nil, nil
		},
	}
	s.schemaField = &Field{
		Name: "__schema",
		Type: NewNonNull(schemaType),
		Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
			return s, nil
		},
	}
	s.typeField = &Field{
		Name: "__type",
		Type: typeType,
		Args: buildArgs("__type", []ArgumentConfig{{Name: "name", Type: NewNonNull(String)}}),
		Resolve: func(ctx context.Context, source, args interface{}) (interface{}, error) {
			m, _ := args.(map[string]interface{})
			name, _ := m["name"].(string)
			named := s.GetType(name)
			if named == nil {
				return nil, nil
			}
			return Type(named), nil
		},
	}

	return []Type{
		schemaType, typeType, fieldType, inputValueType, enumValueType, directiveType,
		typeKindEnum, directiveLocationEnum,
	}
}
