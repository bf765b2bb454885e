// Package joi provides chainable builders for validation schemas in the style
// of the Joi library. Every builder implements joiql.Schema, so the resulting
// schemas can be handed straight to the joiql schema assembler and double as
// argument validators.
package joi

import (
	"github.com/JJK801/joiql"
)

// S is a validation schema under construction. Chainers mutate and return the
// receiver, so a schema reads as one expression:
//
//	joi.Number().Integer().Min(0).Required()
type S struct {
	kind     joiql.Kind
	presence joiql.Presence
	rules    []joiql.Rule
	children map[string]joiql.Schema
	items    []joiql.Schema
	branches []joiql.Schema
	metas    []joiql.Meta
	desc     string
}

// Boolean creates a boolean schema.
func Boolean() *S { return &S{kind: joiql.KindBoolean} }

// Date creates a date schema. Values are RFC 3339 strings and validate to a
// time.Time.
func Date() *S { return &S{kind: joiql.KindDate} }

// String creates a string schema.
func String() *S { return &S{kind: joiql.KindString} }

// Number creates a number schema. Use Integer to restrict it to whole values.
func Number() *S { return &S{kind: joiql.KindNumber} }

// Object creates an object schema with the given child schemas.
func Object(children map[string]joiql.Schema) *S {
	return &S{kind: joiql.KindObject, children: children}
}

// Array creates an array schema whose elements must match one of the given
// item schemas.
func Array(items ...joiql.Schema) *S {
	return &S{kind: joiql.KindArray, items: items}
}

// Alternatives creates a schema that accepts a value matching any one of the
// given branches, tried in order.
func Alternatives(branches ...joiql.Schema) *S {
	return &S{kind: joiql.KindAlternatives, branches: branches}
}

// Required marks the value as required.
func (s *S) Required() *S {
	s.presence = joiql.Required
	return s
}

// Forbidden marks the value as forbidden: it must not be supplied, and the
// schema assembler drops it from the generated type graph.
func (s *S) Forbidden() *S {
	s.presence = joiql.Forbidden
	return s
}

// Integer restricts a number schema to whole values (and maps it to the Int
// scalar in the generated type graph).
func (s *S) Integer() *S {
	s.rules = append(s.rules, joiql.Rule{Name: "integer"})
	return s
}

// Min sets the minimum value (numbers) or length (strings, arrays).
func (s *S) Min(n float64) *S {
	s.rules = append(s.rules, joiql.Rule{Name: "min", Arg: n})
	return s
}

// Max sets the maximum value (numbers) or length (strings, arrays).
func (s *S) Max(n float64) *S {
	s.rules = append(s.rules, joiql.Rule{Name: "max", Arg: n})
	return s
}

// Description attaches free-text documentation, which ends up on the generated
// GraphQL type or field.
func (s *S) Description(text string) *S {
	s.desc = text
	return s
}

// Meta appends a metadata annotation (type name, argument schemas, resolver,
// type predicate).
func (s *S) Meta(m joiql.Meta) *S {
	s.metas = append(s.metas, m)
	return s
}

// Describe returns the description tree for this schema.
func (s *S) Describe() *joiql.Description {
	d := &joiql.Description{
		Kind:        s.kind,
		Presence:    s.presence,
		Rules:       append([]joiql.Rule(nil), s.rules...),
		Metas:       append([]joiql.Meta(nil), s.metas...),
		Description: s.desc,
	}
	if s.children != nil {
		d.Children = make(map[string]*joiql.Description, len(s.children))
		for name, child := range s.children {
			d.Children[name] = child.Describe()
		}
	}
	for _, item := range s.items {
		d.Items = append(d.Items, item.Describe())
	}
	for _, branch := range s.branches {
		d.Branches = append(d.Branches, branch.Describe())
	}
	return d
}
