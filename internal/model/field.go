package model

import "slices"

// FieldType is the tabular type of a field.
type FieldType string

const (
	FieldTypeString    FieldType = "string"
	FieldTypeNumber    FieldType = "number"
	FieldTypeBoolean   FieldType = "boolean"
	FieldTypeReference FieldType = "reference"
)

// Well-known constraint and reference values.
const (
	ConstraintRequired = "required"
	RelationshipHasOne = "has-one"
	IDKey              = "id"
)

// Constraint restricts the values a field accepts.
type Constraint struct {
	Type string `json:"type" yaml:"type"`
}

// ReferenceConfig links a reference field to a row of another sheet.
type ReferenceConfig struct {
	// Ref is the slug of the referenced sheet.
	Ref string `json:"ref" yaml:"ref"`
	// Key is the field of the referenced sheet used for lookups.
	Key string `json:"key" yaml:"key"`
	// Relationship is always "has-one".
	Relationship string `json:"relationship" yaml:"relationship"`
}

// Field is one column of a sheet.
type Field struct {
	Key         string           `json:"key" yaml:"key"`
	Label       string           `json:"label" yaml:"label"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Type        FieldType        `json:"type" yaml:"type"`
	Constraints []Constraint     `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Multi       bool             `json:"multi,omitempty" yaml:"multi,omitempty"`
	Config      *ReferenceConfig `json:"config,omitempty" yaml:"config,omitempty"`
}

// IDField returns the identity field synthesized for sheets that lack one.
func IDField() Field {
	return Field{Key: IDKey, Label: "Id", Type: FieldTypeNumber}
}

// HasConstraint reports whether the field carries a constraint of type t.
func (f *Field) HasConstraint(t string) bool {
	return slices.ContainsFunc(f.Constraints, func(c Constraint) bool {
		return c.Type == t
	})
}

// IsRequired reports whether the field carries the required constraint.
func (f *Field) IsRequired() bool {
	return f.HasConstraint(ConstraintRequired)
}

// AddConstraint adds a constraint of type t unless already present.
func (f *Field) AddConstraint(t string) {
	if !f.HasConstraint(t) {
		f.Constraints = append(f.Constraints, Constraint{Type: t})
	}
}

// IsReference reports whether the field links to another sheet.
func (f *Field) IsReference() bool {
	return f.Type == FieldTypeReference
}

// RefTarget returns the referenced sheet slug, or "" for non-reference fields.
func (f *Field) RefTarget() string {
	if !f.IsReference() || f.Config == nil {
		return ""
	}

	return f.Config.Ref
}
