package introspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// FromSDL builds a schema from an SDL document and introspects it.
func FromSDL(sdl string) (*Document, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSDL, err)
	}

	return FromAST(schema), nil
}

// FromAST introspects a gqlparser schema. Built-in types come first, sorted
// by name, followed by user types in definition order.
func FromAST(schema *ast.Schema) *Document {
	defs := make([]*ast.Definition, 0, len(schema.Types))
	for _, def := range schema.Types {
		defs = append(defs, def)
	}

	sort.SliceStable(defs, func(i, j int) bool {
		return definitionBefore(defs[i], defs[j])
	})

	doc := &Document{
		Schema: Schema{
			QueryType:        namedRef(schema.Query),
			MutationType:     namedRef(schema.Mutation),
			SubscriptionType: namedRef(schema.Subscription),
			Types:            make([]FullType, 0, len(defs)),
		},
	}

	for _, def := range defs {
		ft := FullType{
			Kind:        TypeKind(def.Kind),
			Name:        def.Name,
			Description: def.Description,
		}

		if def.Kind == ast.Object || def.Kind == ast.Interface {
			ft.Fields = make([]Field, 0, len(def.Fields))

			for _, f := range def.Fields {
				// __schema and __type are injected into the query root
				if strings.HasPrefix(f.Name, "__") {
					continue
				}

				ft.Fields = append(ft.Fields, Field{
					Name:        f.Name,
					Description: f.Description,
					Type:        astTypeRef(schema, f.Type),
				})
			}
		}

		doc.Schema.Types = append(doc.Schema.Types, ft)
	}

	return doc
}

func astTypeRef(schema *ast.Schema, t *ast.Type) TypeRef {
	if t.NonNull {
		inner := *t
		inner.NonNull = false
		of := astTypeRef(schema, &inner)

		return TypeRef{Kind: KindNonNull, OfType: &of}
	}

	if t.Elem != nil {
		of := astTypeRef(schema, t.Elem)

		return TypeRef{Kind: KindList, OfType: &of}
	}

	ref := TypeRef{Name: t.NamedType}
	if def, ok := schema.Types[t.NamedType]; ok {
		ref.Kind = TypeKind(def.Kind)
	}

	return ref
}

func namedRef(def *ast.Definition) *NamedRef {
	if def == nil {
		return nil
	}

	return &NamedRef{Name: def.Name}
}

func definitionBefore(a, b *ast.Definition) bool {
	if a.BuiltIn != b.BuiltIn {
		return a.BuiltIn
	}

	if a.BuiltIn || a.Position == nil || b.Position == nil {
		if (a.Position == nil) != (b.Position == nil) {
			return a.Position != nil
		}

		return a.Name < b.Name
	}

	if srcA, srcB := sourceName(a.Position), sourceName(b.Position); srcA != srcB {
		return srcA < srcB
	}

	return a.Position.Start < b.Position.Start
}

func sourceName(pos *ast.Position) string {
	if pos.Src == nil {
		return ""
	}

	return pos.Src.Name
}
