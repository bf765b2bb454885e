package joiql

// describe.go defines the description tree that validation schemas expose via
// Describe() and that the translator walks to build the GraphQL type graph.

import (
	"context"

	"github.com/graphql-go/graphql"
)

// Kind identifies the variant of a description node.
type Kind string

// The description kinds the translator understands. Anything else aborts the
// build with an UnsupportedKindError.
const (
	KindBoolean      Kind = "boolean"
	KindDate         Kind = "date"
	KindString       Kind = "string"
	KindNumber       Kind = "number"
	KindObject       Kind = "object"
	KindArray        Kind = "array"
	KindAlternatives Kind = "alternatives"
)

// Presence governs nullability and inclusion of a node within its parent.
type Presence int

const (
	// Optional is the zero value: the node is emitted and nullable.
	Optional Presence = iota
	// Required wraps the node in NonNull, but only in input position.
	Required
	// Forbidden removes the node from its parent entirely; it never reaches
	// the type graph.
	Forbidden
)

// Rule is a named validation rule attached to a node, e.g. {Name: "integer"}.
// Only the "integer" rule influences translation (Int vs Float); the rest are
// the validation engine's business.
type Rule struct {
	Name string
	Arg  interface{}
}

// Meta is one metadata annotation attached to a description node. All fields
// are optional; the translator reads the first annotation that carries the
// field it is looking for.
type Meta struct {
	// Name names the generated GraphQL type for object nodes and contributes
	// to composite type names for array/alternatives items.
	Name string
	// Args declares the field's arguments: argument name to the schema its
	// value is validated against before the resolver runs.
	Args map[string]Schema
	// Resolve is the user resolver invoked once arguments have been validated.
	Resolve graphql.FieldResolveFn
	// IsTypeOf decides union membership for a runtime value. Candidates
	// without a predicate fall back to structural key matching.
	IsTypeOf func(value interface{}) bool
}

// Description is the introspectable form of a validation schema: one node of
// the tree that Schema.Describe produces.
type Description struct {
	Kind        Kind
	Presence    Presence
	Rules       []Rule
	Children    map[string]*Description // object kind
	Items       []*Description          // array kind, in order
	Branches    []*Description          // alternatives kind, in order
	Metas       []Meta
	Description string
}

// Schema is the contract a validation schema must offer: an introspectable
// description plus value validation. Validate returns the (possibly coerced)
// value on success. The joi subpackage provides a ready-made implementation.
type Schema interface {
	Describe() *Description
	Validate(ctx context.Context, value interface{}) (interface{}, error)
}

// metaName returns the first name annotation, or "".
func (d *Description) metaName() string {
	for _, m := range d.Metas {
		if m.Name != "" {
			return m.Name
		}
	}
	return ""
}

// metaArgs returns the first arguments-schema annotation, or nil.
func (d *Description) metaArgs() map[string]Schema {
	for _, m := range d.Metas {
		if m.Args != nil {
			return m.Args
		}
	}
	return nil
}

// metaResolve returns the first resolver annotation, or nil.
func (d *Description) metaResolve() graphql.FieldResolveFn {
	for _, m := range d.Metas {
		if m.Resolve != nil {
			return m.Resolve
		}
	}
	return nil
}

// metaIsTypeOf returns the first type predicate annotation, or nil.
func (d *Description) metaIsTypeOf() func(interface{}) bool {
	for _, m := range d.Metas {
		if m.IsTypeOf != nil {
			return m.IsTypeOf
		}
	}
	return nil
}

// hasRule reports whether any rule with the given name is attached.
func (d *Description) hasRule(name string) bool {
	for _, r := range d.Rules {
		if r.Name == name {
			return true
		}
	}
	return false
}

// childNames returns the names of the non-forbidden children.
func (d *Description) childNames() map[string]struct{} {
	names := make(map[string]struct{}, len(d.Children))
	for name, child := range d.Children {
		if child.Presence == Forbidden {
			continue
		}
		names[name] = struct{}{}
	}
	return names
}
