package sheet

import (
	"fmt"

	"workbook-generator/internal/diagnostic"
	"workbook-generator/internal/model"
	"workbook-generator/internal/naming"
	"workbook-generator/internal/schema"
)

// ScalarType maps a GraphQL scalar name to its tabular type.
func ScalarType(name string) model.FieldType {
	switch name {
	case "Int", "Float":
		return model.FieldTypeNumber
	case "Boolean":
		return model.FieldTypeBoolean
	default:
		return model.FieldTypeString
	}
}

// MapField maps field of object to a tabular field. It returns nil when the
// field's type cannot be represented, after recording a warning in diags.
func MapField(field schema.Field, object string, diags *diagnostic.Diagnostics) *model.Field {
	base := model.Field{
		Key:         field.Name,
		Label:       naming.CapitalCase(field.Name),
		Description: field.Description,
	}

	return mapType(base, field.Type, object, diags)
}

func mapType(base model.Field, t schema.TypeRef, object string, diags *diagnostic.Diagnostics) *model.Field {
	switch tt := t.(type) {
	case schema.NonNullRef:
		inner := mapType(base, tt.Of, object, diags)
		if inner == nil {
			return nil
		}

		inner.AddConstraint(model.ConstraintRequired)

		return inner
	case schema.ScalarRef:
		base.Type = ScalarType(tt.Name)
	case schema.ObjectRef:
		base.Type = model.FieldTypeReference
		base.Config = &model.ReferenceConfig{
			Ref:          tt.Name,
			Key:          model.IDKey,
			Relationship: model.RelationshipHasOne,
		}
	case schema.ListRef:
		base.Type = model.FieldTypeString
		base.Multi = true
	default:
		if diags != nil {
			diags.AddWarning(diagnostic.CodeUnsupportedFieldKind,
				fmt.Sprintf("field %q on %q skipped: kind %s is unsupported", base.Key, object, unsupportedKind(t)),
				object, base.Key)
		}

		return nil
	}

	return &base
}

func unsupportedKind(t schema.TypeRef) string {
	if o, ok := t.(schema.OtherRef); ok && o.RawKind != "" {
		return o.RawKind
	}

	if t == nil {
		return "<nil>"
	}

	return t.Kind().String()
}
