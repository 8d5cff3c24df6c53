package model

import (
	"maps"
	"slices"
)

// Action is a user-triggerable operation attached to a sheet or workbook.
type Action struct {
	Operation   string `json:"operation" yaml:"operation"`
	Mode        string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Primary     bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
	Confirm     bool   `json:"confirm,omitempty" yaml:"confirm,omitempty"`
}

// Sheet is a typed table of records.
type Sheet struct {
	Name                  string         `json:"name" yaml:"name"`
	Slug                  string         `json:"slug" yaml:"slug"`
	Description           string         `json:"description" yaml:"description"`
	ReadOnly              bool           `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	AllowAdditionalFields bool           `json:"allowAdditionalFields,omitempty" yaml:"allowAdditionalFields,omitempty"`
	Access                []string       `json:"access,omitempty" yaml:"access,omitempty"`
	Fields                []Field        `json:"fields" yaml:"fields"`
	Actions               []Action       `json:"actions,omitempty" yaml:"actions,omitempty"`
	Metadata              map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Field returns the field with the given key.
func (s *Sheet) Field(key string) (*Field, bool) {
	for i := range s.Fields {
		if s.Fields[i].Key == key {
			return &s.Fields[i], true
		}
	}

	return nil, false
}

// References returns the slugs referenced by the sheet's reference fields,
// in field order.
func (s *Sheet) References() []string {
	var refs []string

	for i := range s.Fields {
		if ref := s.Fields[i].RefTarget(); ref != "" {
			refs = append(refs, ref)
		}
	}

	return refs
}

// SheetOverride is a partial sheet configuration matched to an object by
// slug. Name and Description are accepted for compatibility but never
// honored: they are always recomputed from the schema.
type SheetOverride struct {
	Slug                  string         `json:"slug" yaml:"slug"`
	Name                  string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description           string         `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly              bool           `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	AllowAdditionalFields bool           `json:"allowAdditionalFields,omitempty" yaml:"allowAdditionalFields,omitempty"`
	Access                []string       `json:"access,omitempty" yaml:"access,omitempty"`
	Actions               []Action       `json:"actions,omitempty" yaml:"actions,omitempty"`
	Metadata              map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Base returns a sheet carrying the override's non-computed properties.
// Slices and maps are copied so the result shares no state with o.
func (o SheetOverride) Base() Sheet {
	return Sheet{
		ReadOnly:              o.ReadOnly,
		AllowAdditionalFields: o.AllowAdditionalFields,
		Access:                slices.Clone(o.Access),
		Actions:               slices.Clone(o.Actions),
		Metadata:              maps.Clone(o.Metadata),
	}
}

// ComputedKeys lists the computed properties the override tried to set.
func (o SheetOverride) ComputedKeys() []string {
	var keys []string
	if o.Name != "" {
		keys = append(keys, "name")
	}

	if o.Description != "" {
		keys = append(keys, "description")
	}

	return keys
}
