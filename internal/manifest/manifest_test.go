package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleYAML = `
name: Star Wars
labels: pinned
source:
  url: https://example.test/graphql
  headers:
    Authorization: Bearer x
sheets:
  - slug: Film
    readonly: true
    access: [add, edit]
    actions:
      - operation: submitAction
        mode: foreground
        label: Submit
        primary: true
`

const multiYAML = `
version: "2"
workbooks:
  - name: Movies
    referenceCheck: Universe
    source:
      sdl_file: movies.graphql
  - name: Snapshot
    labels: [a, b]
    source:
      introspection_file: schema.json
`

func TestParse_Shorthand(t *testing.T) {
	f, err := Parse([]byte(singleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Workbooks, 1)

	w := f.Workbooks[0]
	assert.Equal(t, "Star Wars", w.Name)
	assert.Equal(t, StringOrArray{"pinned"}, w.Labels)
	assert.Equal(t, "https://example.test/graphql", w.Source.URL)
	assert.Equal(t, "Bearer x", w.Source.Headers["Authorization"])

	require.Len(t, w.Sheets, 1)
	s := w.Sheets[0]
	assert.Equal(t, "Film", s.Slug)
	assert.True(t, s.ReadOnly)
	assert.Equal(t, []string{"add", "edit"}, s.Access)
	require.Len(t, s.Actions, 1)
	assert.Equal(t, "submitAction", s.Actions[0].Operation)
	assert.True(t, s.Actions[0].Primary)

	props := w.Properties()
	assert.Equal(t, "Star Wars", props.Name)
	assert.Equal(t, []string{"pinned"}, props.Labels)

	assert.True(t, Validate(f).IsValid())
}

func TestParse_Multiple(t *testing.T) {
	f, err := Parse([]byte(multiYAML))
	require.NoError(t, err)

	assert.Equal(t, "2", f.Version)
	require.Len(t, f.Workbooks, 2)
	assert.Equal(t, "universe", f.Workbooks[0].ReferenceCheck)
	assert.Equal(t, StringOrArray{"a", "b"}, f.Workbooks[1].Labels)
	assert.True(t, Validate(f).IsValid())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest YAML")

	_, err = Parse([]byte("labels: {a: b}"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"empty", "version: '1'", "no_workbooks"},
		{"missing source", "name: x\nsheets: [{slug: A}]", "missing_source"},
		{"ambiguous source", "name: x\nsource: {url: 'http://a', sdl: 'type A {id: ID}'}", "ambiguous_source"},
		{"missing slug", "name: x\nsource: {sdl: 'type A {id: ID}'}\nsheets: [{readonly: true}]", "missing_slug"},
		{"duplicate slug", "name: x\nsource: {sdl: 'type A {id: ID}'}\nsheets: [{slug: A}, {slug: A}]", "duplicate_slug"},
		{"bad reference check", "name: x\nreferenceCheck: loose\nsource: {sdl: 'type A {id: ID}'}", "invalid_reference_check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(f)
			require.False(t, res.IsValid())
			assert.NotEmpty(t, res.ByCode(tt.code), res.Error())
		})
	}

	assert.False(t, Validate(nil).IsValid())
}

func TestValidate_UnusedHeaders(t *testing.T) {
	f, err := Parse([]byte("name: x\nsource: {sdl: 'type A {id: ID}', headers: {X: y}}"))
	require.NoError(t, err)

	res := Validate(f)
	assert.True(t, res.IsValid())
	assert.Len(t, res.ByCode("unused_headers"), 1)
}

func TestLoadFile_ResolvesRelativeSources(t *testing.T) {
	dir := t.TempDir()

	sdl := "type Movie { id: ID! }"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.graphql"), []byte(sdl), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "schema.json"), []byte(`{"__schema":{"types":[]}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte(multiYAML), 0o644))

	f, err := LoadFile(filepath.Join(dir, "manifest.yaml"))
	require.NoError(t, err)
	assert.Equal(t, dir, f.Dir)

	src, err := f.Resolve(f.Workbooks[0].Source)
	require.NoError(t, err)
	assert.Equal(t, sdl, src)

	src, err = f.Resolve(f.Workbooks[1].Source)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"__schema":{"types":[]}}`), src)

	_, err = f.Resolve(Source{SDLFile: "missing.graphql"})
	require.Error(t, err)

	_, err = f.Resolve(Source{})
	require.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestWriteFile(t *testing.T) {
	f, err := Parse([]byte(singleYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, back.Workbooks, 1)
	assert.Equal(t, f.Workbooks[0].Name, back.Workbooks[0].Name)
	assert.Equal(t, f.Workbooks[0].Sheets, back.Workbooks[0].Sheets)
	assert.Equal(t, f.Workbooks[0].Labels, back.Workbooks[0].Labels)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "https://a", Source{URL: "https://a"}.String())
	assert.Equal(t, "type A {", Source{SDL: "type A {\n id: ID }"}.String())
	assert.Equal(t, "<empty>", Source{}.String())
}
