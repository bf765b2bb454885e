package joiql

// translate.go is the core of the package: the recursive translator that maps
// description nodes to graphql-go type nodes. Named types are cached per build
// so that repeated references to the same logical type share one node.

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/iancoleman/strcase"
)

// translator holds the mutable state of one schema build: the name-to-type
// cache and the counter used to name anonymous types. A fresh translator is
// created for every build, so neither leaks across builds.
type translator struct {
	types map[string]graphql.Type
	anon  int
}

func newTranslator() *translator {
	return &translator{types: make(map[string]graphql.Type)}
}

// anonName returns the next synthesized name for a type that carries no name
// annotation. Anonymous types are never deduplicated: two structurally equal
// anonymous descriptions get distinct names and distinct nodes.
func (t *translator) anonName() string {
	name := fmt.Sprintf("Anon%d", t.anon)
	t.anon++
	return name
}

// translate maps one description node to a type-graph node. isInput selects
// the input-position variant (InputObject instead of Object) and is the only
// position in which a Required presence forces a NonNull wrapper.
func (t *translator) translate(d *Description, isInput bool) (graphql.Type, error) {
	var (
		typ graphql.Type
		err error
	)
	switch d.Kind {
	case KindBoolean:
		typ = graphql.Boolean
	case KindDate, KindString:
		typ = graphql.String
	case KindNumber:
		if d.hasRule("integer") {
			typ = graphql.Int
		} else {
			typ = graphql.Float
		}
	case KindObject:
		typ, err = t.object(d, isInput)
	case KindArray:
		typ, err = t.array(d, isInput)
	case KindAlternatives:
		branches := withoutForbidden(d.Branches)
		if len(branches) == 0 {
			return nil, fmt.Errorf("joiql: alternatives description has no usable branch types")
		}
		typ, err = t.composite(d, isInput, t.compositeName(branches, isInput), branches)
	default:
		err = &UnsupportedKindError{Kind: d.Kind}
	}
	if err != nil {
		return nil, err
	}
	if isInput && d.Presence == Required {
		typ = graphql.NewNonNull(typ)
	}
	return typ, nil
}

// object translates an object description into an Object or InputObject,
// reusing the cached node when the computed name has been built before. The
// first build under a name wins: a later description that computes the same
// name gets the cached node back unchecked.
func (t *translator) object(d *Description, isInput bool) (graphql.Type, error) {
	name := d.metaName()
	if name == "" {
		name = t.anonName()
	}
	if isInput {
		name = "Input" + name
	}
	if typ, ok := t.types[name]; ok {
		return typ, nil
	}

	var typ graphql.Type
	if isInput {
		fields := graphql.InputObjectConfigFieldMap{}
		for childName, child := range d.Children {
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
			Description: d.Description,
		})
	} else {
		fields, err := t.fields(d.Children)
		if err != nil {
			return nil, err
		}
		typ = graphql.NewObject(graphql.ObjectConfig{
			Name:        name,
			Fields:      fields,
			Description: d.Description,
		})
	}
	t.types[name] = typ
	return typ, nil
}

// array translates an array description into a List. A single item type is
// used directly as the element type; multiple item types are synthesized into
// a composite (merged input object or union) element type.
func (t *translator) array(d *Description, isInput bool) (graphql.Type, error) {
	items := withoutForbidden(d.Items)
	switch len(items) {
	case 0:
		return nil, fmt.Errorf("joiql: array description has no usable item types")
	case 1:
		itemType, err := t.translate(items[0], isInput)
		if err != nil {
			return nil, err
		}
		return graphql.NewList(itemType), nil
	default:
		composite, err := t.composite(d, isInput, t.compositeName(items, isInput), items)
		if err != nil {
			return nil, err
		}
		return graphql.NewList(composite), nil
	}
}

// compositeName derives the name of a composite type from its candidates:
// each candidate contributes its name annotation (or, failing that, its kind),
// capitalized and "Input"-prefixed in input position, joined with "Or".
func (t *translator) compositeName(candidates []*Description, isInput bool) string {
	name := ""
	for i, c := range candidates {
		part := c.metaName()
		if part == "" {
			part = string(c.Kind)
		}
		part = strcase.ToCamel(part)
		if isInput {
			part = "Input" + part
		}
		if i > 0 {
			name += "Or"
		}
		name += part
	}
	return name
}

// withoutForbidden filters forbidden nodes out of an item/branch list,
// preserving order.
func withoutForbidden(nodes []*Description) []*Description {
	kept := make([]*Description, 0, len(nodes))
	for _, n := range nodes {
		if n.Presence == Forbidden {
			continue
		}
		kept = append(kept, n)
	}
	return kept
}
