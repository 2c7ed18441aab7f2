package graphql

import (
	"fmt"

	"github.com/shyptr/graphql-core/errors"
)

// SchemaConfig is the user-supplied configuration for NewSchema.
type SchemaConfig struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object
	// Types lists additional types to include in the schema even if they
	// are not otherwise reachable - e.g. concrete implementations of an
	// interface that no field returns directly.
	Types       []NamedType
	Directives  []*Directive
	Description string
	Extensions  Extensions
	// AssumeValid skips validateSchema bookkeeping; Schema.Validate()
	// then immediately reports no errors without re-walking the schema.
	AssumeValid bool
}

// Implementations indexes, for a single Interface, every Object and every
// other Interface that implements it.
type Implementations struct {
	Objects    []*Object
	Interfaces []*Interface
}

// Schema is the assembled, queryable representation of a GraphQL service:
// a deduplicated type map plus the indices and accessors the validator,
// coercion layer and introspection system all build on.
type Schema struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object
	Description  string
	Extensions   Extensions

	typeMap         map[string]NamedType
	typeOrder       []string
	directives      []*Directive
	implementations map[string]*Implementations
	possibleTypeSet map[string]map[string]bool

	typenameField *Field
	schemaField   *Field
	typeField     *Field

	assumedValid bool
	validated    bool
	validation   []*errors.GraphQLError
}

// NewSchema walks cfg's roots, extra types and directive argument types to
// build a fully deduplicated, order-preserving Schema. It panics if two
// distinct type values share a name, mirroring the teacher's
// construction-time duplicate-type panics.
func NewSchema(cfg SchemaConfig) *Schema {
	s := &Schema{
		Query:           cfg.Query,
		Mutation:        cfg.Mutation,
		Subscription:    cfg.Subscription,
		Description:     cfg.Description,
		Extensions:      CloneExtensions(cfg.Extensions),
		typeMap:         make(map[string]NamedType),
		directives:      append([]*Directive(nil), specifiedDirectives...),
		implementations: make(map[string]*Implementations),
		assumedValid:    cfg.AssumeValid,
	}
	if len(cfg.Directives) > 0 {
		s.directives = append([]*Directive(nil), cfg.Directives...)
	}

	queue := make([]Type, 0, 16+len(cfg.Types))
	if cfg.Query != nil {
		queue = append(queue, cfg.Query)
	}
	if cfg.Mutation != nil {
		queue = append(queue, cfg.Mutation)
	}
	if cfg.Subscription != nil {
		queue = append(queue, cfg.Subscription)
	}
	for _, t := range cfg.Types {
		queue = append(queue, t)
	}
	for _, d := range s.directives {
		for _, a := range d.Args {
			queue = append(queue, a.Type)
		}
	}
	// Boolean and String are always reachable: introspection's
	// includeDeprecated arguments and every __*.name field depend on them.
	queue = append(queue, Boolean, String)
	// The introspection types join the walk only after every other reachable
	// type has been discovered, so ToConfig's Types list (which omits them)
	// reproduces the same type-map order.
	introspection := s.buildIntrospectionTypes()

	seen := make(map[Type]bool)
	for i := 0; i < len(queue) || introspection != nil; i++ {
		if i == len(queue) {
			queue = append(queue, introspection...)
			introspection = nil
		}
		t := queue[i]
		if t == nil || seen[t] {
			continue
		}
		seen[t] = true

		named := GetNamedType(t)
		if named == nil {
			continue
		}
		s.addNamedType(named)

		switch nt := named.(type) {
		case *Object:
			for _, f := range nt.Fields() {
				queue = append(queue, f.Type)
				for _, a := range f.Args {
					queue = append(queue, a.Type)
				}
			}
			for _, iface := range nt.Interfaces() {
				queue = append(queue, iface)
			}
			s.recordImplementation(nt, nt.Interfaces())
		case *Interface:
			for _, f := range nt.Fields() {
				queue = append(queue, f.Type)
				for _, a := range f.Args {
					queue = append(queue, a.Type)
				}
			}
			for _, parent := range nt.Interfaces() {
				queue = append(queue, parent)
				s.recordInterfaceImplementsInterface(nt, parent)
			}
		case *Union:
			for _, m := range nt.Types() {
				queue = append(queue, m)
			}
		case *InputObject:
			for _, f := range nt.Fields() {
				queue = append(queue, f.Type)
			}
		}
	}

	if cfg.AssumeValid {
		s.validated = true
		s.validation = nil
	}

	return s
}

func (s *Schema) addNamedType(named NamedType) {
	name := named.TypeName()
	if existing, ok := s.typeMap[name]; ok {
		if existing == named {
			return
		}
		panic(fmt.Sprintf("Schema must contain uniquely named types but contains multiple types named %q.", name))
	}
	s.typeMap[name] = named
	s.typeOrder = append(s.typeOrder, name)
}

func (s *Schema) recordImplementation(obj *Object, ifaces []*Interface) {
	for _, iface := range ifaces {
		impl := s.implementations[iface.Name]
		if impl == nil {
			impl = &Implementations{}
			s.implementations[iface.Name] = impl
		}
		impl.Objects = append(impl.Objects, obj)
	}
}

func (s *Schema) recordInterfaceImplementsInterface(child, parent *Interface) {
	impl := s.implementations[parent.Name]
	if impl == nil {
		impl = &Implementations{}
		s.implementations[parent.Name] = impl
	}
	impl.Interfaces = append(impl.Interfaces, child)
}

// GetType looks up a named type by name.
func (s *Schema) GetType(name string) NamedType { return s.typeMap[name] }

// GetTypeMap returns the schema's name->type map. Iteration must use
// GetTypeNames for a deterministic order; ranging over the returned map
// directly is unordered, as with any Go map.
func (s *Schema) GetTypeMap() map[string]NamedType { return s.typeMap }

// GetTypeNames returns every type name in first-discovery order, the order
// introspection's __Schema.types and toConfig round-trips must preserve.
func (s *Schema) GetTypeNames() []string {
	out := make([]string, len(s.typeOrder))
	copy(out, s.typeOrder)
	return out
}

func (s *Schema) GetQueryType() *Object        { return s.Query }
func (s *Schema) GetMutationType() *Object      { return s.Mutation }
func (s *Schema) GetSubscriptionType() *Object { return s.Subscription }

// GetDirectives returns every directive definition known to the schema.
func (s *Schema) GetDirectives() []*Directive {
	out := make([]*Directive, len(s.directives))
	copy(out, s.directives)
	return out
}

// GetDirective looks up a directive definition by name.
func (s *Schema) GetDirective(name string) *Directive {
	for _, d := range s.directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// GetImplementations returns every Object and Interface that implements
// iface.
func (s *Schema) GetImplementations(iface *Interface) Implementations {
	if impl := s.implementations[iface.Name]; impl != nil {
		return Implementations{
			Objects:    append([]*Object(nil), impl.Objects...),
			Interfaces: append([]*Interface(nil), impl.Interfaces...),
		}
	}
	return Implementations{}
}

// GetPossibleTypes returns the concrete Object types a field typed as
// abstractType could actually resolve to: a Union's members, or an
// Interface's object implementers.
func (s *Schema) GetPossibleTypes(abstractType NamedType) []*Object {
	switch t := abstractType.(type) {
	case *Union:
		return t.Types()
	case *Interface:
		return s.GetImplementations(t).Objects
	default:
		return nil
	}
}

// IsSubType reports whether maybeSubType satisfies the sub-type relation
// against abstractType, per spec.md §4.3: equal to it, a union member, or an
// interface implementer. Both arguments are named types; the List/NonNull
// cases of the relation are handled by typesCompatible in validate.go.
func (s *Schema) IsSubType(abstractType NamedType, maybeSubType NamedType) bool {
	if abstractType == maybeSubType {
		return true
	}
	switch at := abstractType.(type) {
	case *Union:
		for _, m := range at.Types() {
			if m == maybeSubType {
				return true
			}
		}
		return false
	case *Interface:
		switch st := maybeSubType.(type) {
		case *Object:
			for _, iface := range st.Interfaces() {
				if iface == at || s.interfaceImplementsTransitively(iface, at) {
					return true
				}
			}
			return false
		case *Interface:
			if st == at {
				return true
			}
			for _, iface := range st.Interfaces() {
				if iface == at || s.interfaceImplementsTransitively(iface, at) {
					return true
				}
			}
			return false
		}
	}
	return false
}

func (s *Schema) interfaceImplementsTransitively(child, ancestor *Interface) bool {
	if child == ancestor {
		return true
	}
	for _, parent := range child.Interfaces() {
		if parent == ancestor || s.interfaceImplementsTransitively(parent, ancestor) {
			return true
		}
	}
	return false
}

// GetField looks up fieldName on parent. The three introspection
// meta-fields are handled specially per spec.md §4.2/§4.5: __typename is
// valid on every composite type, __type/__schema only on the query root.
func (s *Schema) GetField(parent NamedType, fieldName string) *Field {
	if fieldName == "__typename" && IsCompositeType(parent) {
		return s.typenameField
	}
	if s.Query != nil && parent == NamedType(s.Query) {
		switch fieldName {
		case "__schema":
			return s.schemaField
		case "__type":
			return s.typeField
		}
	}
	switch t := parent.(type) {
	case *Object:
		return t.Fields()[fieldName]
	case *Interface:
		return t.Fields()[fieldName]
	default:
		return nil
	}
}

// ToConfig returns a plain, round-trippable snapshot of s. Iterating the
// returned Types slice in order and feeding it back to NewSchema
// reconstructs the same type-map order (spec.md §4.2 "Iteration order").
func (s *Schema) ToConfig() SchemaConfig {
	types := make([]NamedType, 0, len(s.typeOrder))
	for _, name := range s.typeOrder {
		if isIntrospectionTypeName(name) {
			continue
		}
		types = append(types, s.typeMap[name])
	}
	dirs := make([]*Directive, len(s.directives))
	copy(dirs, s.directives)
	return SchemaConfig{
		Query:        s.Query,
		Mutation:     s.Mutation,
		Subscription: s.Subscription,
		Types:        types,
		Directives:   dirs,
		Description:  s.Description,
		Extensions:   CloneExtensions(s.Extensions),
		AssumeValid:  s.assumedValid,
	}
}

// Validate runs validateSchema once and caches the result, per spec.md
// §4.3 "Memoized per-schema".
func (s *Schema) Validate() []*errors.GraphQLError {
	if s.assumedValid {
		return nil
	}
	if !s.validated {
		s.validation = validateSchema(s)
		s.validated = true
	}
	return s.validation
}
