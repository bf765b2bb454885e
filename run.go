package joiql

// run.go provides the MustRun and MustBuild functions for quickly creating a
// GraphQL http handler or schema from validation schemas.

import (
	"net/http"

	"github.com/graphql-go/graphql"
)

// MustRun creates an http handler that handles GraphQL requests. It is a
// variadic function but to be useful you need to supply at least one parameter
// - the map of root query fields (field name to validation schema). A second
// map, if supplied, provides the root mutation fields.
// It panics if the schemas cannot be assembled into a valid GraphQL schema,
// which is appropriate at server start-up; use New + GetHandler if you need
// the error instead.
func MustRun(roots ...map[string]Schema) http.Handler {
	h := New(roots...)
	handler, err := h.GetHandler()
	if err != nil {
		panic("joiql.MustRun - error making schema: " + err.Error())
	}
	return handler
}

// MustBuild assembles the GraphQL schema from the given root field maps
// (query, then optionally mutation) and panics on error.
func MustBuild(roots ...map[string]Schema) graphql.Schema {
	h := New(roots...)
	schema, err := h.GetSchema()
	if err != nil {
		panic("joiql.MustBuild - error making schema: " + err.Error())
	}
	return schema
}
