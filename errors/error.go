package errors

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// GraphQLError is the diagnostic type returned by schema validation and
// value coercion. Construction-time failures (bad config shape, invalid
// names) use plain panics instead - see AssertValidName and NewSchema in
// package graphql.
type GraphQLError struct {
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (err *GraphQLError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (%d:%d)", loc.Line, loc.Column)
	}
	if err.Path != nil {
		str += fmt.Sprintf(" path: %v", err.Path)
	}
	return str
}

// MultiError collects several GraphQLErrors returned from a single
// operation, such as schema validation.
type MultiError []*GraphQLError

func (m MultiError) Error() string {
	var res string
	for _, err := range m {
		res += err.Error() + "\n"
	}
	return res
}

var _ error = (*GraphQLError)(nil)

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// LocationOf converts a gqlparser AST position into a Location, returning
// the zero Location when pos is nil.
func LocationOf(pos *ast.Position) Location {
	if pos == nil {
		return Location{}
	}
	return Location{Line: pos.Line, Column: pos.Column}
}

func New(format string, arg ...interface{}) *GraphQLError {
	return &GraphQLError{
		Message: fmt.Sprintf(format, arg...),
	}
}

// WithLocations appends source locations to err and returns err for chaining.
func (err *GraphQLError) WithLocations(locs ...Location) *GraphQLError {
	err.Locations = append(err.Locations, locs...)
	return err
}
