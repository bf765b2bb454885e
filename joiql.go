package joiql

// joiql.go provides the gql type for assembling a GraphQL schema (and
// optionally an HTTP handler) from maps of validation schemas.

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/JJK801/joiql/internal/handler"
)

type (
	gql struct {
		roots [2]map[string]Schema // query fields, mutation fields
	}
)

// New creates a new instance from zero to 2 parameters: the query and mutation
// field maps, each mapping a root field name to the validation schema it is
// derived from. Either map may also be added or replaced later using the
// SetQuery and SetMutation methods, or built up field by field with AddQuery
// and AddMutation.
func New(roots ...map[string]Schema) gql {
	r := gql{}
	for i := 0; i < len(r.roots); i++ {
		if len(roots) > i {
			r.roots[i] = roots[i]
		}
	}
	return r
}

// SetQuery adds or replaces the map of root query fields.
func (h *gql) SetQuery(query map[string]Schema) {
	h.roots[0] = query
}

// SetMutation adds or replaces the map of root mutation fields.
func (h *gql) SetMutation(mutation map[string]Schema) {
	h.roots[1] = mutation
}

// AddQuery adds one root query field. You can call AddQuery repeatedly instead
// of using SetQuery.
func (h *gql) AddQuery(name string, s Schema) {
	if h.roots[0] == nil {
		h.roots[0] = make(map[string]Schema)
	}
	h.roots[0][name] = s
}

// AddMutation adds one root mutation field.
func (h *gql) AddMutation(name string, s Schema) {
	if h.roots[1] == nil {
		h.roots[1] = make(map[string]Schema)
	}
	h.roots[1][name] = s
}

// GetSchema builds and returns the GraphQL schema. Each call is an independent
// build with its own type cache and anonymous-name counter.
func (h *gql) GetSchema() (graphql.Schema, error) {
	t := newTranslator()
	config := graphql.SchemaConfig{}

	if len(h.roots[0]) > 0 {
		root, err := t.rootObject("RootQueryType", h.roots[0])
		if err != nil {
			return graphql.Schema{}, err
		}
		config.Query = root
	}
	if len(h.roots[1]) > 0 {
		root, err := t.rootObject("RootMutationType", h.roots[1])
		if err != nil {
			return graphql.Schema{}, err
		}
		config.Mutation = root
	}
	return graphql.NewSchema(config)
}

// GetSDL builds the schema and renders it as schema definition language.
func (h *gql) GetSDL() (string, error) {
	schema, err := h.GetSchema()
	if err != nil {
		return "", err
	}
	return SDL(schema)
}

// GetHandler builds the schema and returns the HTTP handler that serves
// GraphQL queries against it.
func (h *gql) GetHandler(options ...func(*options)) (http.Handler, error) {
	schema, err := h.GetSchema()
	if err != nil {
		return nil, err
	}
	opt := newOptions()
	for _, o := range options {
		o(opt)
	}
	return handler.New(schema, handler.WithLogger(opt.logger), handler.WithIndent(opt.indent)), nil
}

// rootObject synthesizes a root object type from a map of field name to
// validation schema.
func (t *translator) rootObject(name string, fields map[string]Schema) (*graphql.Object, error) {
	children := make(map[string]*Description, len(fields))
	for fieldName, s := range fields {
		children[fieldName] = s.Describe()
	}
	rootFields, err := t.fields(children)
	if err != nil {
		return nil, err
	}
	return graphql.NewObject(graphql.ObjectConfig{
		Name:   name,
		Fields: rootFields,
	}), nil
}
