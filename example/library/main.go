// The library example serves a small book-catalog GraphQL API built entirely
// from joi validation schemas: queries with validated arguments, a login
// mutation issuing a JWT, and a mutation that requires authentication.
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/jensneuse/abstractlogger"
	"go.uber.org/zap"

	"github.com/JJK801/joiql"
	"github.com/JJK801/joiql/joi"
)

const (
	address = "localhost:8080"
	path    = "/graphql"
)

// bookSchema describes a book. Both the "book" and "books" fields use it, so
// the generated schema contains a single Book type shared by reference.
func bookSchema() *joi.S {
	return joi.Object(map[string]joiql.Schema{
		"title":     joi.String().Description("Title of the book"),
		"author":    joi.String(),
		"pages":     joi.Number().Integer(),
		"published": joi.Date(),
	}).Meta(joiql.Meta{Name: "Book"}).Description("A book in the catalog")
}

func main() {
	query := map[string]joiql.Schema{
		"books": joi.Array(bookSchema()).
			Description("All books, optionally filtered by page count").
			Meta(joiql.Meta{
				Args: map[string]joiql.Schema{
					"minPages": joi.Number().Integer().Min(0),
				},
				Resolve: listBooks,
			}),
		"book": bookSchema().Meta(joiql.Meta{
			Args: map[string]joiql.Schema{
				"title": joi.String().Required(),
			},
			Resolve: findBook,
		}),
	}
	mutation := map[string]joiql.Schema{
		"login": joi.Object(map[string]joiql.Schema{
			"token": joi.String().Description("Bearer token to authenticate subsequent requests"),
		}).Meta(joiql.Meta{
			Name: "AuthPayload",
			Args: map[string]joiql.Schema{
				"user":     joi.String().Required(),
				"password": joi.String().Required().Min(4),
			},
			Resolve: login,
		}),
		"addBook": bookSchema().Meta(joiql.Meta{
			Args: map[string]joiql.Schema{
				"title":     joi.String().Required(),
				"author":    joi.String(),
				"pages":     joi.Number().Integer().Min(1),
				"published": joi.Date(),
			},
			Resolve: addBook,
		}),
	}

	g := joiql.New(query, mutation)

	sdl, err := g.GetSDL()
	if err != nil {
		log.Fatalln("cannot build schema:", err)
	}
	log.Println("serving schema:\n" + sdl)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalln("cannot create logger:", err)
	}
	handler, err := g.GetHandler(
		joiql.WithLogger(abstractlogger.NewZapLogger(zapLogger, abstractlogger.DebugLevel)),
		joiql.WithIndent(true),
	)
	if err != nil {
		log.Fatalln("cannot build handler:", err)
	}

	handler = http.TimeoutHandler(handler, 15*time.Second, `{"errors":[{"message":"timeout"}]}`)
	handler = &authHandler{inner: handler}
	http.Handle(path, handler)

	log.Println("starting server on: http://" + address + path)
	log.Fatalln(http.ListenAndServe(address, nil))
}
