// Package handler implements an HTTP handler that executes GraphQL queries
// (and mutations) against a schema assembled from validation schemas.
package handler

// handler.go implements the handler and its ServeHTTP method

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/graphql-go/graphql"
	"github.com/jensneuse/abstractlogger"
)

type (
	// Handler stores the invariants (schema, logger) used across GraphQL requests
	Handler struct {
		schema graphql.Schema
		logger abstractlogger.Logger
		indent bool
	}

	// gqlRequest is the JSON body of a GraphQL HTTP request
	gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}
)

// New returns an HTTP handler that serves GraphQL requests against the given
// (already built, immutable) schema.
func New(schema graphql.Schema, options ...Option) http.Handler {
	h := &Handler{
		schema: schema,
		logger: abstractlogger.NoopLogger,
	}
	for _, o := range options {
		o(h)
	}
	return h
}

// ServeHTTP receives a GraphQL query as an HTTP request, executes the query
// (or mutation) and generates an HTTP response or error message.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Decode the request (JSON)
	var g gqlRequest
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber() // allows us to distinguish ints from floats (see fixNumberVariables below)
	if err := decoder.Decode(&g); err != nil {
		h.logger.Error("joiql: bad request", abstractlogger.Error(err))
		h.writeError(w, http.StatusBadRequest, "Error decoding JSON request: "+err.Error())
		return
	}

	// Since variables are sent as JSON (which does not distinguish int/float) we need to decide
	fixNumberVariables(g.Variables)

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  g.Query,
		OperationName:  g.OperationName,
		VariableValues: g.Variables,
		Context:        r.Context(),
	})
	if result.HasErrors() {
		h.logger.Error("joiql: request failed",
			abstractlogger.String("operationName", g.OperationName),
			abstractlogger.String("error", result.Errors[0].Message),
		)
	} else {
		h.logger.Debug("joiql: request served", abstractlogger.String("operationName", g.OperationName))
	}

	buf, err := h.marshal(result)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Error encoding JSON response: "+err.Error())
		return
	}
	w.Write(buf)
}

// writeError writes a GraphQL-style error envelope. The message is marshalled,
// not interpolated, so it stays valid JSON whatever characters it contains.
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	buf, err := json.Marshal(map[string]interface{}{
		"data":   nil,
		"errors": []map[string]string{{"message": message}},
	})
	if err != nil {
		return // cannot happen for a map of strings
	}
	w.Write(buf)
}

func (h *Handler) marshal(result *graphql.Result) ([]byte, error) {
	if h.indent {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// fixNumberVariables goes through the structure created by the JSON decoder,
// converting any json.Number values to either an int64 or a float64. This
// assumes that all the JSON numbers were decoded into a json.Number type,
// rather than int/float, by use of the decoder's UseNumber method. A number
// that fits neither (which the decoder should never produce) is left as is.
func fixNumberVariables(m map[string]interface{}) {
	for key, val := range m {
		switch v := val.(type) {
		case json.Number:
			if i, err := v.Int64(); err == nil {
				m[key] = i
				continue
			}
			if f, err := v.Float64(); err == nil {
				m[key] = f
				continue
			}

		case map[string]interface{}:
			fixNumberVariables(v) // recursively handle nested numbers

		case []interface{}:
			fixNumberList(v)
		}
	}
}

// fixNumberList applies the same number normalization to list variables.
func fixNumberList(list []interface{}) {
	for i, val := range list {
		switch v := val.(type) {
		case json.Number:
			if n, err := v.Int64(); err == nil {
				list[i] = n
				continue
			}
			if f, err := v.Float64(); err == nil {
				list[i] = f
			}

		case map[string]interface{}:
			fixNumberVariables(v)

		case []interface{}:
			fixNumberList(v)
		}
	}
}
