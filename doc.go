// Package joiql turns validation schemas into a GraphQL schema with validated
// resolvers, so a data shape declared once gives you both runtime validation
// and a queryable type system.

// A validation schema is anything implementing the Schema interface: it can
// describe itself as a tree of description nodes and validate a value. The joi
// subpackage provides chainable builders for constructing such schemas. For
// example, here is the code for a complete GraphQL server:

//package main
//
//import (
//	"net/http"
//
//	"github.com/JJK801/joiql"
//	"github.com/JJK801/joiql/joi"
//	"github.com/graphql-go/graphql"
//)
//
//func main() {
//	hello := joi.String().Meta(joiql.Meta{
//		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
//			return "world", nil
//		},
//	})
//	http.Handle("/graphql", joiql.MustRun(map[string]joiql.Schema{"hello": hello}))
//	http.ListenAndServe(":80", nil)
//}

// This creates a GraphQL field called "hello" that can be used in a query like
// this:
// {
//    hello
// }

// which will return this JSON:
// {
//    "data": {
//      "hello": "world"
//    }
// }

// Fields can declare arguments as schemas too; arguments are then validated
// (and coerced) before the resolver runs, and a failing argument is reported
// as a field error without the resolver ever being called.

// See the README.md file for more details on using the package.

package joiql

// TODO:
// default values for input object fields (description nodes carry no default yet)
// interface types (only objects, input objects, unions and scalars are generated)
