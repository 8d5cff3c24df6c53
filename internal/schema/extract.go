package schema

import (
	"fmt"

	"workbook-generator/internal/introspect"
)

// Extract returns the user-defined object types of doc in document order.
func Extract(doc *introspect.Document) ([]Object, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrMalformedDocument)
	}

	var objects []Object

	for _, ft := range doc.Schema.Types {
		if !isDomainObject(ft) {
			continue
		}

		obj := Object{
			Name:        ft.Name,
			Description: ft.Description,
			Fields:      make([]Field, 0, len(ft.Fields)),
		}

		for _, f := range ft.Fields {
			ref, err := Resolve(f.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", ft.Name, f.Name, err)
			}

			obj.Fields = append(obj.Fields, Field{
				Name:        f.Name,
				Description: f.Description,
				Type:        ref,
			})
		}

		objects = append(objects, obj)
	}

	return objects, nil
}

func isDomainObject(ft introspect.FullType) bool {
	return ft.Kind == introspect.KindObject &&
		!IsRootOperation(ft.Name) &&
		!IsMetaName(ft.Name)
}

// Resolve converts a raw type reference into a TypeRef. A wrapper without an
// inner type resolves to OtherRef; nesting beyond MaxTypeDepth is an error.
func Resolve(raw introspect.TypeRef) (TypeRef, error) {
	return resolve(&raw, 0)
}

func resolve(raw *introspect.TypeRef, depth int) (TypeRef, error) {
	if depth > MaxTypeDepth {
		return nil, fmt.Errorf("%w: type reference nested deeper than %d", ErrMalformedDocument, MaxTypeDepth)
	}

	switch raw.Kind {
	case introspect.KindScalar:
		return ScalarRef{Name: raw.Name}, nil

	case introspect.KindObject:
		return ObjectRef{Name: raw.Name}, nil

	case introspect.KindList, introspect.KindNonNull:
		if raw.OfType == nil {
			return OtherRef{RawKind: string(raw.Kind), Name: raw.Name}, nil
		}

		inner, err := resolve(raw.OfType, depth+1)
		if err != nil {
			return nil, err
		}

		if raw.Kind == introspect.KindList {
			return ListRef{Of: inner}, nil
		}

		return NonNullRef{Of: inner}, nil

	default:
		return OtherRef{RawKind: string(raw.Kind), Name: raw.Name}, nil
	}
}
