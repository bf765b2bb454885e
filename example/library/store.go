package main

// store.go holds the in-memory book catalog and user store plus the resolvers
// that operate on them. Resolvers receive arguments already validated and
// coerced by their joi schemas.

import (
	"errors"
	"log"
	"sync"

	"github.com/graphql-go/graphql"
	"golang.org/x/crypto/bcrypt"
)

var (
	mu    sync.Mutex
	books = []map[string]interface{}{
		{"title": "The Go Programming Language", "author": "Donovan & Kernighan", "pages": 380, "published": "2015-10-26T00:00:00Z"},
		{"title": "Structure and Interpretation of Computer Programs", "author": "Abelson & Sussman", "pages": 657, "published": "1985-07-01T00:00:00Z"},
		{"title": "The Little Schemer", "author": "Friedman & Felleisen", "pages": 216, "published": "1974-01-01T00:00:00Z"},
	}

	// user name -> bcrypt hash of the password
	users = map[string][]byte{}
)

func init() {
	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalln("cannot hash password:", err)
	}
	users["librarian"] = hash
}

// listBooks returns the catalog, filtered by the optional minPages argument.
func listBooks(p graphql.ResolveParams) (interface{}, error) {
	mu.Lock()
	defer mu.Unlock()
	minPages, _ := p.Args["minPages"].(int)
	out := make([]interface{}, 0, len(books))
	for _, b := range books {
		if pages, ok := b["pages"].(int); ok && pages < minPages {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// findBook returns the book with the given (required) title, or nil.
func findBook(p graphql.ResolveParams) (interface{}, error) {
	mu.Lock()
	defer mu.Unlock()
	title, _ := p.Args["title"].(string)
	for _, b := range books {
		if b["title"] == title {
			return b, nil
		}
	}
	return nil, nil
}

// login checks the password against the stored bcrypt hash and returns a
// payload carrying a signed JWT.
func login(p graphql.ResolveParams) (interface{}, error) {
	user, _ := p.Args["user"].(string)
	password, _ := p.Args["password"].(string)

	hash, ok := users[user]
	if !ok {
		return nil, errors.New("unknown user")
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, errors.New("wrong password")
	}
	token, err := getToken(user)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"token": token}, nil
}

// addBook appends a book to the catalog. It requires an authenticated request
// (see authHandler).
func addBook(p graphql.ResolveParams) (interface{}, error) {
	if p.Context.Value(userKey) == nil {
		return nil, errors.New("you must be logged in to add a book")
	}
	mu.Lock()
	defer mu.Unlock()
	book := map[string]interface{}{
		"title":     p.Args["title"],
		"author":    p.Args["author"],
		"pages":     p.Args["pages"],
		"published": p.Args["published"],
	}
	books = append(books, book)
	return book, nil
}
