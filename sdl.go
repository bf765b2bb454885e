package joiql

// sdl.go renders a built schema as GraphQL schema definition language by
// projecting the graphql-go type graph onto a gqlparser AST and formatting it.

import (
	"bytes"
	"sort"

	"github.com/graphql-go/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// SDL renders the schema as SDL text. Built-in scalars and introspection types
// are omitted; only the types derived from the validation schemas appear.
func SDL(schema graphql.Schema) (string, error) {
	doc := &ast.Schema{
		Types:         map[string]*ast.Definition{},
		PossibleTypes: map[string][]*ast.Definition{},
		Implements:    map[string][]*ast.Definition{},
	}
	for name, typ := range schema.TypeMap() {
		if isBuiltinType(name) {
			continue
		}
		def := definition(typ)
		if def == nil {
			continue
		}
		doc.Types[name] = def
	}
	if q := schema.QueryType(); q != nil {
		doc.Query = doc.Types[q.Name()]
	}
	if m := schema.MutationType(); m != nil {
		doc.Mutation = doc.Types[m.Name()]
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchema(doc)
	return buf.String(), nil
}

// isBuiltinType reports whether the named type is part of every GraphQL schema
// (introspection types and built-in scalars) and so should not be printed.
func isBuiltinType(name string) bool {
	if len(name) >= 2 && name[:2] == "__" {
		return true
	}
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	return false
}

// definition converts one named graphql-go type to its AST definition.
// Unhandled named types (none are produced by the translator) yield nil and
// are skipped.
func definition(typ graphql.Type) *ast.Definition {
	switch t := typ.(type) {
	case *graphql.Object:
		def := &ast.Definition{
			Kind:        ast.Object,
			Name:        t.Name(),
			Description: t.Description(),
		}
		for name, field := range t.Fields() {
			fd := &ast.FieldDefinition{
				Name:        name,
				Description: field.Description,
				Type:        astType(field.Type),
			}
			for _, arg := range field.Args {
				fd.Arguments = append(fd.Arguments, &ast.ArgumentDefinition{
					Name: arg.Name(),
					Type: astType(arg.Type),
				})
			}
			sort.Slice(fd.Arguments, func(i, j int) bool { return fd.Arguments[i].Name < fd.Arguments[j].Name })
			def.Fields = append(def.Fields, fd)
		}
		sortFields(def.Fields)
		return def
	case *graphql.InputObject:
		def := &ast.Definition{
			Kind:        ast.InputObject,
			Name:        t.Name(),
			Description: t.Description(),
		}
		for name, field := range t.Fields() {
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Name:        name,
				Description: field.Description(),
				Type:        astType(field.Type),
			})
		}
		sortFields(def.Fields)
		return def
	case *graphql.Union:
		def := &ast.Definition{
			Kind:        ast.Union,
			Name:        t.Name(),
			Description: t.Description(),
		}
		for _, member := range t.Types() {
			def.Types = append(def.Types, member.Name())
		}
		return def
	case *graphql.Scalar:
		return &ast.Definition{
			Kind:        ast.Scalar,
			Name:        t.Name(),
			Description: t.Description(),
		}
	}
	return nil
}

// astType converts a (possibly wrapped) type reference to an AST type.
func astType(typ graphql.Type) *ast.Type {
	switch t := typ.(type) {
	case *graphql.NonNull:
		inner := astType(t.OfType)
		inner.NonNull = true
		return inner
	case *graphql.List:
		return &ast.Type{Elem: astType(t.OfType)}
	default:
		return &ast.Type{NamedType: typ.Name()}
	}
}

// sortFields keeps the printed field order stable across runs, since the
// underlying graphql-go field maps iterate in random order.
func sortFields(fields ast.FieldList) {
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
}
