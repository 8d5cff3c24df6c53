package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFieldConstraints(t *testing.T) {
	f := Field{Key: "title", Type: FieldTypeString}
	assert.False(t, f.IsRequired())

	f.AddConstraint(ConstraintRequired)
	f.AddConstraint(ConstraintRequired)
	assert.True(t, f.IsRequired())
	assert.Len(t, f.Constraints, 1)
}

func TestFieldRefTarget(t *testing.T) {
	ref := Field{Key: "director", Type: FieldTypeReference, Config: &ReferenceConfig{Ref: "Person", Key: IDKey, Relationship: RelationshipHasOne}}
	assert.Equal(t, "Person", ref.RefTarget())

	plain := Field{Key: "title", Type: FieldTypeString}
	assert.Empty(t, plain.RefTarget())

	s := Sheet{Fields: []Field{IDField(), ref, plain}}
	assert.Equal(t, []string{"Person"}, s.References())

	got, ok := s.Field("id")
	require.True(t, ok)
	assert.Equal(t, FieldTypeNumber, got.Type)

	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestSheetOverrideBase(t *testing.T) {
	o := SheetOverride{
		Slug:        "Movie",
		Name:        "Films",
		Description: "ignored",
		ReadOnly:    true,
		Access:      []string{"add"},
		Actions:     []Action{{Operation: "dedupe", Label: "Dedupe"}},
		Metadata:    map[string]any{"k": "v"},
	}

	base := o.Base()
	assert.True(t, base.ReadOnly)
	assert.Empty(t, base.Name)
	assert.Empty(t, base.Slug)
	assert.Empty(t, base.Description)
	assert.Equal(t, []string{"name", "description"}, o.ComputedKeys())

	base.Access[0] = "edit"
	base.Metadata["k"] = "changed"
	assert.Equal(t, "add", o.Access[0])
	assert.Equal(t, "v", o.Metadata["k"])
}

func TestWorkbookJSON(t *testing.T) {
	wb := Workbook{
		WorkbookProperties: WorkbookProperties{Name: "Movies", Labels: []string{"pinned"}},
		Sheets: []Sheet{{
			Name: "Movie", Slug: "Movie",
			Fields: []Field{
				IDField(),
				{Key: "director", Label: "Director", Type: FieldTypeReference, Config: &ReferenceConfig{Ref: "Person", Key: IDKey, Relationship: RelationshipHasOne}},
			},
		}},
	}

	data, err := json.Marshal(wb)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Movies",
		"labels": ["pinned"],
		"sheets": [{
			"name": "Movie",
			"slug": "Movie",
			"description": "",
			"fields": [
				{"key": "id", "label": "Id", "type": "number"},
				{"key": "director", "label": "Director", "type": "reference",
				 "config": {"ref": "Person", "key": "id", "relationship": "has-one"}}
			]
		}]
	}`, string(data))

	out, err := yaml.Marshal(wb)
	require.NoError(t, err)

	var back Workbook
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "Movies", back.Name)
	assert.Equal(t, []string{"Movie"}, back.Slugs())
}
