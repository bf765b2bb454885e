package joiql

// resolve.go wraps user resolvers so that supplied arguments are validated
// (and coerced) against their schemas before any user logic runs.

import (
	"context"
	"sort"

	"github.com/graphql-go/graphql"
)

// resolver builds the resolve function for a field description. When the
// description carries neither an arguments schema nor a resolver annotation it
// returns nil, which makes the engine fall back to its default behavior of
// reading the property named after the field off the source value.
func resolver(d *Description) graphql.FieldResolveFn {
	schemas := d.metaArgs()
	userResolve := d.metaResolve()
	if schemas == nil && userResolve == nil {
		return nil
	}
	return func(p graphql.ResolveParams) (interface{}, error) {
		// Validation only runs when arguments were actually supplied; an
		// empty argument map goes straight to the user resolver.
		if len(schemas) > 0 && len(p.Args) > 0 {
			validated, err := validateArgs(p.Context, schemas, p.Args)
			if err != nil {
				return nil, err
			}
			p.Args = validated
		}
		if userResolve == nil {
			return graphql.DefaultResolveFn(p)
		}
		return userResolve(p)
	}
}

// validateArgs validates every supplied argument against its schema and
// returns the map of coerced values. A missing required argument or a value
// failing its schema aborts with an ArgumentError naming the argument.
// Arguments are checked in name order so the reported failure is stable.
func validateArgs(ctx context.Context, schemas map[string]Schema, args map[string]interface{}) (map[string]interface{}, error) {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	validated := make(map[string]interface{}, len(args))
	for _, name := range names {
		value, supplied := args[name]
		if !supplied {
			if schemas[name].Describe().Presence == Required {
				return nil, &ArgumentError{Argument: name, Err: ErrRequired}
			}
			continue
		}
		coerced, err := schemas[name].Validate(ctx, value)
		if err != nil {
			return nil, &ArgumentError{Argument: name, Err: err}
		}
		validated[name] = coerced
	}
	// Arguments without a schema pass through untouched.
	for name, value := range args {
		if _, ok := schemas[name]; !ok {
			validated[name] = value
		}
	}
	return validated, nil
}
