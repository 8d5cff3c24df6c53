package sheet

import (
	"fmt"
	"strings"

	"workbook-generator/internal/common"
	"workbook-generator/internal/diagnostic"
	"workbook-generator/internal/model"
	"workbook-generator/internal/naming"
	"workbook-generator/internal/schema"
)

// FindOverride returns the first override whose slug equals the object name.
func FindOverride(overrides []model.SheetOverride, object string) (model.SheetOverride, bool) {
	return common.FindFirst(overrides, func(o model.SheetOverride) bool {
		return o.Slug == object
	})
}

// Generate builds the sheet descriptor for obj. Diagnostics from field
// mapping, id synthesis and override handling are recorded in diags.
func Generate(obj schema.Object, overrides []model.SheetOverride, diags *diagnostic.Diagnostics) model.Sheet {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	fields := make([]model.Field, 0, len(obj.Fields)+1)

	for _, f := range obj.Fields {
		if mapped := MapField(f, obj.Name, diags); mapped != nil {
			fields = append(fields, *mapped)
		}
	}

	if !hasKey(fields, model.IDKey) {
		fields = append([]model.Field{model.IDField()}, fields...)
		diags.AddInfo(diagnostic.CodeSynthesizedID,
			fmt.Sprintf("object %q has no id field; a numeric id was added", obj.Name),
			obj.Name, model.IDKey)
	}

	override, found := FindOverride(overrides, obj.Name)
	if found {
		if keys := override.ComputedKeys(); len(keys) > 0 {
			diags.AddInfo(diagnostic.CodeOverrideComputedKey,
				fmt.Sprintf("override for %q sets %s, which are computed from the schema and were ignored",
					obj.Name, strings.Join(keys, ", ")),
				obj.Name, "")
		}
	}

	return Build(override, obj, fields)
}

// Build layers the computed properties of obj over the override. Name,
// Fields, Slug and Description always come from the schema.
func Build(override model.SheetOverride, obj schema.Object, fields []model.Field) model.Sheet {
	s := override.Base()
	s.Name = naming.CapitalCase(obj.Name)
	s.Fields = fields
	s.Slug = obj.Name
	s.Description = obj.Description

	return s
}

func hasKey(fields []model.Field, key string) bool {
	_, ok := common.FindFirst(fields, func(f model.Field) bool {
		return f.Key == key
	})

	return ok
}
