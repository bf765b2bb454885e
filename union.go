package joiql

// union.go synthesizes a composite type from a heterogeneous candidate list
// (array items or alternatives branches): a merged input object in input
// position, a runtime-discriminated union in output position.

import (
	"fmt"

	"github.com/graphql-go/graphql"
)

// composite builds (or returns the cached) composite type for the given
// candidates. owner supplies the description text; candidates must already be
// filtered for forbidden presence.
func (t *translator) composite(owner *Description, isInput bool, name string, candidates []*Description) (graphql.Type, error) {
	if typ, ok := t.types[name]; ok {
		return typ, nil
	}

	var typ graphql.Type
	if isInput {
		// Merge every candidate's children into one flat field map. A later
		// candidate's field overwrites an earlier one with the same name.
		merged := map[string]*Description{}
		for _, c := range candidates {
			for childName, child := range c.Children {
				merged[childName] = child
			}
		}
		fields := graphql.InputObjectConfigFieldMap{}
		for childName, child := range merged {
			if child.Presence == Forbidden {
				continue
			}
			childType, err := t.translate(child, true)
			if err != nil {
				return nil, err
			}
			fields[childName] = &graphql.InputObjectFieldConfig{
				Type:        childType,
				Description: child.Description,
			}
		}
		typ = graphql.NewInputObject(graphql.InputObjectConfig{
			Name:        name,
			Fields:      fields,
			Description: owner.Description,
		})
	} else {
		members := make([]*graphql.Object, 0, len(candidates))
		for _, c := range candidates {
			memberType, err := t.translate(c, false)
			if err != nil {
				return nil, err
			}
			member, ok := memberType.(*graphql.Object)
			if !ok {
				return nil, fmt.Errorf("joiql: union %s: member %q is not an object type", name, memberType.Name())
			}
			members = append(members, member)
		}
		typ = graphql.NewUnion(graphql.UnionConfig{
			Name:        name,
			Types:       members,
			Description: owner.Description,
			ResolveType: unionResolveType(candidates, members),
		})
	}
	t.types[name] = typ
	return typ, nil
}

// unionResolveType returns the runtime member resolution function for a union:
// the first candidate, in declaration order, whose IsTypeOf predicate accepts
// the value, or - for candidates without a predicate - whose child-name set
// exactly matches the value's key set. Returning nil on no match makes the
// engine fail the field with an unresolved-abstract-type error.
func unionResolveType(candidates []*Description, members []*graphql.Object) graphql.ResolveTypeFn {
	return func(p graphql.ResolveTypeParams) *graphql.Object {
		for i, c := range candidates {
			if isTypeOf := c.metaIsTypeOf(); isTypeOf != nil {
				if isTypeOf(p.Value) {
					return members[i]
				}
				continue
			}
			if matchesChildKeys(p.Value, c) {
				return members[i]
			}
		}
		return nil
	}
}

// matchesChildKeys reports whether the value is a map whose key set equals the
// candidate's non-forbidden child-name set.
func matchesChildKeys(value interface{}, d *Description) bool {
	m, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	names := d.childNames()
	if len(m) != len(names) {
		return false
	}
	for key := range m {
		if _, ok := names[key]; !ok {
			return false
		}
	}
	return true
}
