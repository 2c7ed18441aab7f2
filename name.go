package graphql

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// nameRegexp is the GraphQL name production: a leading letter or
// underscore followed by letters, digits or underscores.
var nameRegexp = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// nameValidate is a single shared validator.Validate instance carrying the
// "gqlname" tag used by nameHolder below, and available for any future
// *Config struct that wants field-level validation beyond the name check.
var nameValidate = newNameValidator()

func newNameValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("gqlname", func(fl validator.FieldLevel) bool {
		return nameRegexp.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// nameHolder lets AssertValidName reuse the same struct-tag machinery the
// rest of the ecosystem drives config validation with, instead of calling
// the regexp directly.
type nameHolder struct {
	Name string `validate:"required,gqlname"`
}

// AssertValidName panics if name is not a syntactically valid GraphQL name.
// Types, fields, arguments, directives and enum values all route through
// this check at construction/realization time.
func AssertValidName(name string) string {
	if err := isValidNameError(name); err != nil {
		panic(err.Error())
	}
	return name
}

func isValidNameError(name string) error {
	if name == "" {
		return newErrorf("Must provide name.")
	}
	if err := nameValidate.Struct(nameHolder{Name: name}); err != nil {
		return newErrorf("Names must only contain [_a-zA-Z0-9] but %q does not.", name)
	}
	return nil
}

// isReservedName reports whether name begins with the "__" prefix reserved
// for introspection types and fields.
func isReservedName(name string) bool {
	return len(name) >= 2 && name[0] == '_' && name[1] == '_'
}

type simpleError string

func (e simpleError) Error() string { return string(e) }

func newErrorf(format string, args ...interface{}) error {
	return simpleError(fmt.Sprintf(format, args...))
}
