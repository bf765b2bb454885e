package joiql_test

// End-to-end tests (also see low-level tests in translate_test.go etc.):
// schemas are built with the joi builders and queries are executed with the
// graphql-go engine.

import (
	"reflect"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/JJK801/joiql"
	"github.com/JJK801/joiql/joi"
)

type (
	// JsonObject is what the engine produces for object results. Note that we
	// use a type alias here, hence the equals sign (=), rather than a type
	// definition - otherwise reflect.DeepEqual does not work.
	JsonObject = map[string]interface{}
)

func resolveValue(v interface{}) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		return v, nil
	}
}

// TestQuery performs high-level (end to end) tests of GraphQL queries.
func TestQuery(t *testing.T) {
	tests := map[string]struct {
		query      map[string]joiql.Schema
		request    string
		root       map[string]interface{} // root value for default property lookup
		expected   interface{}            // expected data
		errorMatch string                 // if not empty: an error containing this text is expected
	}{
		"hello": {
			query: map[string]joiql.Schema{
				"hello": joi.String().Meta(joiql.Meta{Resolve: resolveValue("world")}),
			},
			request:  "{ hello }",
			expected: JsonObject{"hello": "world"},
		},
		"default_property_lookup": {
			// No resolver annotation: the engine reads the property named
			// after the field off the source value.
			query: map[string]joiql.Schema{
				"greeting": joi.String(),
			},
			request:  "{ greeting }",
			root:     map[string]interface{}{"greeting": "hi"},
			expected: JsonObject{"greeting": "hi"},
		},
		"object_fields": {
			query: map[string]joiql.Schema{
				"person": joi.Object(map[string]joiql.Schema{
					"name": joi.String(),
					"age":  joi.Number().Integer(),
				}).Meta(joiql.Meta{
					Name:    "Person",
					Resolve: resolveValue(map[string]interface{}{"name": "Al", "age": 21}),
				}),
			},
			request:  "{ person { name age } }",
			expected: JsonObject{"person": JsonObject{"name": "Al", "age": 21}},
		},
		"forbidden_field_absent": {
			query: map[string]joiql.Schema{
				"doc": joi.Object(map[string]joiql.Schema{
					"body":   joi.String(),
					"secret": joi.Boolean().Forbidden(),
				}).Meta(joiql.Meta{
					Name:    "Doc",
					Resolve: resolveValue(map[string]interface{}{"body": "text"}),
				}),
			},
			request:    "{ doc { body secret } }",
			errorMatch: `Cannot query field "secret"`,
		},
		"forbidden_sibling_remains": {
			query: map[string]joiql.Schema{
				"doc": joi.Object(map[string]joiql.Schema{
					"body":   joi.String(),
					"secret": joi.Boolean().Forbidden(),
				}).Meta(joiql.Meta{
					Name:    "Doc",
					Resolve: resolveValue(map[string]interface{}{"body": "text"}),
				}),
			},
			request:  "{ doc { body } }",
			expected: JsonObject{"doc": JsonObject{"body": "text"}},
		},
		"validated_args": {
			query: map[string]joiql.Schema{
				"greet": joi.String().Meta(joiql.Meta{
					Args: map[string]joiql.Schema{"name": joi.String().Required()},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return "Hello " + p.Args["name"].(string), nil
					},
				}),
			},
			request:  `{ greet(name: "Bob") }`,
			expected: JsonObject{"greet": "Hello Bob"},
		},
		"invalid_args": {
			query: map[string]joiql.Schema{
				"repeat": joi.String().Meta(joiql.Meta{
					Args: map[string]joiql.Schema{"count": joi.Number().Integer().Max(3)},
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return strings.Repeat("x", p.Args["count"].(int)), nil
					},
				}),
			},
			request:    `{ repeat(count: 5) }`,
			errorMatch: `invalid argument "count"`,
		},
		"union_members": {
			query: map[string]joiql.Schema{
				"pets": joi.Array(
					joi.Object(map[string]joiql.Schema{"meow": joi.String()}).Meta(joiql.Meta{
						Name: "Cat",
						IsTypeOf: func(value interface{}) bool {
							m, ok := value.(map[string]interface{})
							return ok && m["meow"] != nil
						},
					}),
					joi.Object(map[string]joiql.Schema{"bark": joi.String()}).Meta(joiql.Meta{Name: "Dog"}),
				).Meta(joiql.Meta{
					Resolve: resolveValue([]interface{}{
						map[string]interface{}{"meow": "yes"},
						map[string]interface{}{"bark": "woof"},
					}),
				}),
			},
			request: "{ pets { __typename ... on Cat { meow } ... on Dog { bark } } }",
			expected: JsonObject{"pets": []interface{}{
				JsonObject{"__typename": "Cat", "meow": "yes"},
				JsonObject{"__typename": "Dog", "bark": "woof"},
			}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			g := joiql.New(tc.query)
			schema, err := g.GetSchema()
			if err != nil {
				t.Fatalf("GetSchema returned error: %v", err)
			}
			result := graphql.Do(graphql.Params{
				Schema:        schema,
				RequestString: tc.request,
				RootObject:    tc.root,
			})
			if tc.errorMatch != "" {
				if !result.HasErrors() {
					t.Fatalf("expected an error containing %q, got none", tc.errorMatch)
				}
				if !strings.Contains(result.Errors[0].Message, tc.errorMatch) {
					t.Fatalf("expected error containing %q, got %q", tc.errorMatch, result.Errors[0].Message)
				}
				return
			}
			if result.HasErrors() {
				t.Fatalf("unexpected errors: %v", result.Errors)
			}
			if !reflect.DeepEqual(tc.expected, result.Data) {
				t.Errorf("expected %v, got %v", tc.expected, result.Data)
			}
		})
	}
}

// TestMutation checks that the second root map produces a working mutation.
func TestMutation(t *testing.T) {
	query := map[string]joiql.Schema{
		"ping": joi.String().Meta(joiql.Meta{Resolve: resolveValue("pong")}),
	}
	mutation := map[string]joiql.Schema{
		"double": joi.Number().Integer().Meta(joiql.Meta{
			Args: map[string]joiql.Schema{"n": joi.Number().Integer().Required()},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Args["n"].(int) * 2, nil
			},
		}),
	}
	g := joiql.New(query, mutation)
	schema, err := g.GetSchema()
	if err != nil {
		t.Fatalf("GetSchema returned error: %v", err)
	}
	if schema.MutationType() == nil || schema.MutationType().Name() != "RootMutationType" {
		t.Fatalf("expected a RootMutationType, got %v", schema.MutationType())
	}

	result := graphql.Do(graphql.Params{Schema: schema, RequestString: "mutation { double(n: 4) }"})
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if !reflect.DeepEqual(JsonObject{"double": 8}, result.Data) {
		t.Errorf("expected {double: 8}, got %v", result.Data)
	}
}

// TestSharedNamedType checks that two fields built from descriptions carrying
// the same name annotation share one type node by reference.
func TestSharedNamedType(t *testing.T) {
	person := func() joiql.Schema {
		return joi.Object(map[string]joiql.Schema{
			"name": joi.String(),
		}).Meta(joiql.Meta{Name: "Person"})
	}
	g := joiql.New(map[string]joiql.Schema{
		"me":  person(),
		"you": person(),
	})
	schema, err := g.GetSchema()
	if err != nil {
		t.Fatalf("GetSchema returned error: %v", err)
	}

	fields := schema.QueryType().Fields()
	if fields["me"].Type != fields["you"].Type {
		t.Errorf("expected both fields to reference the identical Person node")
	}
	if _, ok := schema.TypeMap()["Person"]; !ok {
		t.Errorf("expected Person in the schema type map")
	}
}

// TestNumberScalars checks the integer-rule driven Int/Float split at the
// schema level.
func TestNumberScalars(t *testing.T) {
	g := joiql.New(map[string]joiql.Schema{
		"count": joi.Number().Integer(),
		"ratio": joi.Number(),
	})
	schema, err := g.GetSchema()
	if err != nil {
		t.Fatalf("GetSchema returned error: %v", err)
	}
	fields := schema.QueryType().Fields()
	if fields["count"].Type != graphql.Int {
		t.Errorf("expected count to be Int, got %v", fields["count"].Type)
	}
	if fields["ratio"].Type != graphql.Float {
		t.Errorf("expected ratio to be Float, got %v", fields["ratio"].Type)
	}
}

// TestIndependentBuilds checks that builds do not leak state into each other:
// anonymous names restart and caches are not shared.
func TestIndependentBuilds(t *testing.T) {
	anon := func() joiql.Schema {
		return joi.Object(map[string]joiql.Schema{"x": joi.String()})
	}
	g := joiql.New(map[string]joiql.Schema{"thing": anon()})

	first, err := g.GetSchema()
	if err != nil {
		t.Fatalf("GetSchema returned error: %v", err)
	}
	second, err := g.GetSchema()
	if err != nil {
		t.Fatalf("GetSchema returned error: %v", err)
	}

	if _, ok := first.TypeMap()["Anon0"]; !ok {
		t.Fatalf("expected Anon0 in the first build")
	}
	if _, ok := second.TypeMap()["Anon0"]; !ok {
		t.Fatalf("expected Anon0 in the second build too (counter must reset per build)")
	}
	if first.TypeMap()["Anon0"] == second.TypeMap()["Anon0"] {
		t.Errorf("expected independent builds to produce distinct nodes")
	}
}

// TestBuildErrors checks that build-time failures abort the whole build.
func TestBuildErrors(t *testing.T) {
	tests := map[string]struct {
		query map[string]joiql.Schema
	}{
		"empty_array": {
			query: map[string]joiql.Schema{
				"list": joi.Array(joi.String().Forbidden()),
			},
		},
		"empty_alternatives": {
			query: map[string]joiql.Schema{
				"value": joi.Alternatives(joi.String().Forbidden()),
			},
		},
		"union_of_scalars": {
			query: map[string]joiql.Schema{
				"value": joi.Alternatives(joi.String(), joi.Number()),
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			g := joiql.New(tc.query)
			if _, err := g.GetSchema(); err == nil {
				t.Errorf("expected a build error")
			}
		})
	}
}
