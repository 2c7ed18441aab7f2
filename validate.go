package graphql

import (
	"fmt"

	"github.com/shyptr/graphql-core/errors"
)

// validateSchema inspects s for every structural rule a schema must honor
// and returns the full list of violations without panicking. An empty
// (non-nil-checked) slice means the schema is valid.
func validateSchema(s *Schema) []*errors.GraphQLError {
	v := &schemaValidator{schema: s}
	v.validateRootTypes()
	v.validateDirectives()
	for _, name := range s.GetTypeNames() {
		v.validateNamedType(s.GetType(name))
	}
	return v.errs
}

type schemaValidator struct {
	schema *Schema
	errs   []*errors.GraphQLError
}

func (v *schemaValidator) addf(format string, args ...interface{}) {
	v.errs = append(v.errs, errors.New(format, args...))
}

func (v *schemaValidator) validateRootTypes() {
	if v.schema.Query == nil {
		v.addf("Query root type must be provided.")
	}
	if v.schema.Mutation != nil {
		if _, ok := Type(v.schema.Mutation).(*Object); !ok {
			v.addf("Mutation root type must be Object type if provided.")
		}
	}
	if v.schema.Subscription != nil {
		if _, ok := Type(v.schema.Subscription).(*Object); !ok {
			v.addf("Subscription root type must be Object type if provided.")
		}
	}
}

func (v *schemaValidator) validateDirectives() {
	for _, d := range v.schema.GetDirectives() {
		if !IsDirective(d) {
			v.addf("Expected directive but got: %v.", d)
			continue
		}
		seen := make(map[string]bool, len(d.Args))
		for _, a := range d.Args {
			if err := isValidNameError(a.Name); err != nil {
				v.addf("%s", err.Error())
			}
			if seen[a.Name] {
				v.addf("Directive @%s args must be unique, got duplicate %q.", d.Name, a.Name)
			}
			seen[a.Name] = true
			if !IsInputType(a.Type) {
				v.addf("The type of @%s(%s:) must be Input Type but got: %s.", d.Name, a.Name, a.Type.String())
				continue
			}
			v.validateDefaultValue(fmt.Sprintf("@%s(%s:)", d.Name, a.Name), a.Default, a.Type)
		}
	}
}

func (v *schemaValidator) validateDefaultValue(where string, d Default, t Type) {
	if !d.HasValue {
		return
	}
	var err error
	if d.Literal != nil {
		_, err = ValueFromAST(d.Literal, t, nil)
	} else {
		_, err = CoerceInputValue(d.Value, t)
	}
	if err != nil {
		v.addf("%s has invalid default value: %s", where, err.Error())
	}
}

func (v *schemaValidator) validateNamedType(named NamedType) {
	name := named.TypeName()
	if !isIntrospectionTypeName(name) {
		if isReservedName(name) {
			v.addf("Name %q must not begin with \"__\", which is reserved by GraphQL introspection.", name)
		}
		if err := isValidNameError(name); err != nil {
			v.addf("%s", err.Error())
		}
	}

	switch t := named.(type) {
	case *Object:
		v.validateFields(name, t.Fields())
		v.validateInterfaces(name, t, t.Interfaces())
	case *Interface:
		v.validateFields(name, t.Fields())
		v.validateInterfaces(name, t, t.Interfaces())
	case *Union:
		v.validateUnion(t)
	case *Enum:
		v.validateEnum(t)
	case *InputObject:
		v.validateInputObject(t)
	}
}

func (v *schemaValidator) validateFields(typeName string, fields FieldMap) {
	if len(fields) == 0 {
		v.addf("Type %s must define one or more fields.", typeName)
		return
	}
	for fieldName, f := range fields {
		if err := isValidNameError(fieldName); err != nil {
			v.addf("%s.%s: %s", typeName, fieldName, err.Error())
		}
		if !IsOutputType(f.Type) {
			v.addf("The type of %s.%s must be Output Type but got: %s.", typeName, fieldName, f.Type.String())
		}
		seen := make(map[string]bool, len(f.Args))
		for _, a := range f.Args {
			argWhere := fmt.Sprintf("%s.%s(%s:)", typeName, fieldName, a.Name)
			if err := isValidNameError(a.Name); err != nil {
				v.addf("%s", err.Error())
			}
			if seen[a.Name] {
				v.addf("%s: args must be unique, got duplicate %q.", fmt.Sprintf("%s.%s", typeName, fieldName), a.Name)
			}
			seen[a.Name] = true
			if !IsInputType(a.Type) {
				v.addf("The type of %s must be Input Type but got: %s.", argWhere, a.Type.String())
				continue
			}
			v.validateDefaultValue(argWhere, a.Default, a.Type)
		}
	}
}

func (v *schemaValidator) validateInterfaces(typeName string, self NamedType, ifaces []*Interface) {
	seen := make(map[string]bool, len(ifaces))
	for _, iface := range ifaces {
		if iface == nil {
			v.addf("Type %s must only implement Interface types.", typeName)
			continue
		}
		if seen[iface.Name] {
			v.addf("Type %s can only implement %s once.", typeName, iface.Name)
			continue
		}
		seen[iface.Name] = true
		v.validateImplementsInterface(typeName, self, iface)
	}
}

func fieldsOf(named NamedType) FieldMap {
	switch t := named.(type) {
	case *Object:
		return t.Fields()
	case *Interface:
		return t.Fields()
	default:
		return nil
	}
}

func (v *schemaValidator) validateImplementsInterface(typeName string, self NamedType, iface *Interface) {
	selfFields := fieldsOf(self)
	for ifaceFieldName, ifaceField := range iface.Fields() {
		selfField, ok := selfFields[ifaceFieldName]
		if !ok {
			v.addf("Interface field %s.%s expected but %s does not provide it.", iface.Name, ifaceFieldName, typeName)
			continue
		}
		if !typesCompatible(v.schema, ifaceField.Type, selfField.Type) {
			v.addf("Interface field %s.%s expects type %s but %s.%s is type %s.",
				iface.Name, ifaceFieldName, ifaceField.Type.String(), typeName, ifaceFieldName, selfField.Type.String())
		}
		for _, ifaceArg := range ifaceField.Args {
			var selfArg *Argument
			for _, a := range selfField.Args {
				if a.Name == ifaceArg.Name {
					selfArg = a
					break
				}
			}
			if selfArg == nil {
				v.addf("Interface field argument %s.%s(%s:) expected but %s.%s does not provide it.",
					iface.Name, ifaceFieldName, ifaceArg.Name, typeName, ifaceFieldName)
				continue
			}
			if !typesEqual(ifaceArg.Type, selfArg.Type) {
				v.addf("Interface field argument %s.%s(%s:) expects type %s but %s.%s(%s:) is type %s.",
					iface.Name, ifaceFieldName, ifaceArg.Name, ifaceArg.Type.String(),
					typeName, ifaceFieldName, selfArg.Name, selfArg.Type.String())
			}
		}
		for _, selfArg := range selfField.Args {
			if IsRequiredArgument(selfArg) {
				found := false
				for _, ifaceArg := range ifaceField.Args {
					if ifaceArg.Name == selfArg.Name {
						found = true
						break
					}
				}
				if !found {
					v.addf("Object field %s.%s includes required argument %s that is missing from the Interface field %s.%s.",
						typeName, ifaceFieldName, selfArg.Name, iface.Name, ifaceFieldName)
				}
			}
		}
	}
}

func (v *schemaValidator) validateUnion(u *Union) {
	members := u.Types()
	if len(members) == 0 {
		v.addf("Union type %s must define one or more member types.", u.Name)
	}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if m == nil {
			v.addf("Union type %s must only include Object types, it cannot include %v.", u.Name, m)
			continue
		}
		if seen[m.Name] {
			v.addf("Union type %s can only include type %s once.", u.Name, m.Name)
		}
		seen[m.Name] = true
	}
}

func (v *schemaValidator) validateEnum(e *Enum) {
	values := e.Values()
	if len(values) == 0 {
		v.addf("Enum type %s must define one or more values.", e.Name)
	}
	for _, ev := range values {
		if err := isValidNameError(ev.Name); err != nil {
			v.addf("%s.%s: %s", e.Name, ev.Name, err.Error())
		}
		if forbiddenEnumValueNames[ev.Name] {
			v.addf("Enum type %s cannot include value: %s.", e.Name, ev.Name)
		}
	}
}

func (v *schemaValidator) validateInputObject(io *InputObject) {
	fields := io.Fields()
	if len(fields) == 0 {
		v.addf("Input Object type %s must define one or more fields.", io.Name)
	}
	for name, f := range fields {
		if err := isValidNameError(name); err != nil {
			v.addf("%s.%s: %s", io.Name, name, err.Error())
		}
		if !IsInputType(f.Type) {
			v.addf("The type of %s.%s must be Input Type but got: %s.", io.Name, name, f.Type.String())
			continue
		}
		v.validateDefaultValue(fmt.Sprintf("%s.%s", io.Name, name), f.Default, f.Type)
	}
	if cycle := findRequiredInputObjectCycle(io); cycle != "" {
		v.addf("Cannot reference Input Object %q within itself through a series of non-null fields: %s.", io.Name, cycle)
	}
}

// findRequiredInputObjectCycle walks io's required (NonNull, no default)
// fields looking for a path that returns to io through only such edges.
func findRequiredInputObjectCycle(io *InputObject) string {
	visited := make(map[string]bool)
	var path []string
	var walk func(cur *InputObject) string
	walk = func(cur *InputObject) string {
		visited[cur.Name] = true
		path = append(path, cur.Name)
		for name, f := range cur.Fields() {
			nn, ok := f.Type.(*NonNull)
			if !ok || f.Default.HasValue {
				continue
			}
			next, ok := nn.OfType.(*InputObject)
			if !ok {
				continue
			}
			if next == io {
				return pathString(append(append([]string(nil), path...), name))
			}
			if !visited[next.Name] {
				if found := walk(next); found != "" {
					return found
				}
			}
		}
		path = path[:len(path)-1]
		return ""
	}
	return walk(io)
}

func pathString(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += "."
		}
		out += f
	}
	return out
}

// typesCompatible implements the full field-type covariance rule from
// spec.md §4.3's sub-type relation, including the NonNull/List recursive
// cases that Schema.IsSubType (named-type only) does not cover.
func typesCompatible(s *Schema, superType, subType Type) bool {
	if typesEqual(superType, subType) {
		return true
	}
	if sup, ok := superType.(*NonNull); ok {
		if subNN, ok := subType.(*NonNull); ok {
			return typesCompatible(s, sup.OfType, subNN.OfType)
		}
		return false
	}
	if sub, ok := subType.(*NonNull); ok {
		return typesCompatible(s, superType, sub.OfType)
	}
	if supList, ok := superType.(*List); ok {
		if subList, ok := subType.(*List); ok {
			return typesCompatible(s, supList.OfType, subList.OfType)
		}
		return false
	}
	supNamed, supOk := superType.(NamedType)
	subNamed, subOk := subType.(NamedType)
	if supOk && subOk {
		return s.IsSubType(supNamed, subNamed)
	}
	return false
}
