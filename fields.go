package joiql

// fields.go converts a map of named child descriptions into the graphql-go
// field map an object type requires, and extracts typed argument descriptors
// from the arguments-schema annotation.

import "github.com/graphql-go/graphql"

// fields builds the output-position field map for the given children. Fields
// with forbidden presence are omitted; every retained field gets its type,
// arguments, description text and a validated resolver.
func (t *translator) fields(children map[string]*Description) (graphql.Fields, error) {
	fields := graphql.Fields{}
	for name, child := range children {
		if child.Presence == Forbidden {
			continue
		}
		fieldType, err := t.translate(child, false)
		if err != nil {
			return nil, err
		}
		args, err := t.arguments(child)
		if err != nil {
			return nil, err
		}
		fields[name] = &graphql.Field{
			Type:        fieldType,
			Args:        args,
			Description: child.Description,
			Resolve:     resolver(child),
		}
	}
	return fields, nil
}

// arguments reads the arguments-schema annotation off a description and
// converts it to argument descriptors. It returns nil when the node carries no
// such annotation. Arguments whose own description is forbidden are dropped.
func (t *translator) arguments(d *Description) (graphql.FieldConfigArgument, error) {
	schemas := d.metaArgs()
	if schemas == nil {
		return nil, nil
	}
	args := graphql.FieldConfigArgument{}
	for name, s := range schemas {
		argDesc := s.Describe()
		if argDesc.Presence == Forbidden {
			continue
		}
		argType, err := t.translate(argDesc, true)
		if err != nil {
			return nil, err
		}
		args[name] = &graphql.ArgumentConfig{
			Type:        argType,
			Description: argDesc.Description,
		}
	}
	return args, nil
}
