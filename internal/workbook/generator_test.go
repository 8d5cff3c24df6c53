package workbook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbook-generator/internal/diagnostic"
	"workbook-generator/internal/introspect"
	"workbook-generator/internal/model"
)

const movieSDL = `
type Query {
  movies: [Movie!]!
}

type Movie {
  id: ID!
  title: String!
  director: Person
}

type Person {
  id: ID!
  name: String
}
`

func named(kind introspect.TypeKind, name string) introspect.TypeRef {
	return introspect.TypeRef{Kind: kind, Name: name}
}

func nonNull(t introspect.TypeRef) introspect.TypeRef {
	return introspect.TypeRef{Kind: introspect.KindNonNull, OfType: &t}
}

func object(name string, fields ...introspect.Field) introspect.FullType {
	return introspect.FullType{Kind: introspect.KindObject, Name: name, Fields: fields}
}

func field(name string, t introspect.TypeRef) introspect.Field {
	return introspect.Field{Name: name, Type: t}
}

func document(types ...introspect.FullType) *introspect.Document {
	return &introspect.Document{Schema: introspect.Schema{Types: types}}
}

func idField() introspect.Field {
	return field("id", nonNull(named(introspect.KindScalar, "ID")))
}

func sheetSlugs(wb *model.Workbook) []string {
	return wb.Slugs()
}

func TestGenerate_MovieSDL(t *testing.T) {
	res, err := Generate(context.Background(), SourceConfig{Source: movieSDL}, nil)
	require.NoError(t, err)

	wb := res.Workbook
	assert.Equal(t, DefaultName, wb.Name)
	require.Equal(t, []string{"Movie", "Person"}, sheetSlugs(wb), spew.Sdump(wb))

	movie, _ := wb.Sheet("Movie")
	director, ok := movie.Field("director")
	require.True(t, ok)
	assert.Equal(t, model.FieldTypeReference, director.Type)
	require.NotNil(t, director.Config)
	assert.Equal(t, "Person", director.Config.Ref)
	assert.Equal(t, model.RelationshipHasOne, director.Config.Relationship)

	title, _ := movie.Field("title")
	assert.True(t, title.IsRequired())

	assert.NotEmpty(t, res.ID)
	assert.Len(t, res.Objects, 2)
	assert.False(t, res.Diagnostics.HasWarnings(), spew.Sdump(res.Diagnostics))
}

func TestGenerate_WorkbookProperties(t *testing.T) {
	cfg := SourceConfig{
		Source: movieSDL,
		WorkbookProperties: model.WorkbookProperties{
			Name:     "Movies",
			Labels:   []string{"pinned"},
			SpaceID:  "us_sp_1",
			Metadata: map[string]any{"team": "catalog"},
		},
	}

	res, err := Generate(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "Movies", res.Workbook.Name)
	assert.Equal(t, []string{"pinned"}, res.Workbook.Labels)
	assert.Equal(t, "us_sp_1", res.Workbook.SpaceID)

	res.Workbook.Labels[0] = "changed"
	assert.Equal(t, "pinned", cfg.Labels[0])
}

func TestGenerate_DropsSheetWithMissingReference(t *testing.T) {
	doc := document(
		object("Movie", idField(), field("reviewer", named(introspect.KindObject, "Critic"))),
		object("Person", idField()),
	)

	for _, mode := range []ReferenceCheck{ReferenceCheckSurviving, ReferenceCheckUniverse} {
		t.Run(string(mode), func(t *testing.T) {
			g := NewGenerator(nil, Options{ReferenceCheck: mode})

			res, err := g.Generate(context.Background(), SourceConfig{Source: doc}, nil)
			require.NoError(t, err)

			assert.Equal(t, []string{"Person"}, sheetSlugs(res.Workbook))

			dangling := res.Diagnostics.ByCode(diagnostic.CodeDanglingReference)
			require.Len(t, dangling, 1)
			assert.Equal(t, "Movie", dangling[0].Object)
			assert.Equal(t, "reviewer", dangling[0].Field)
			assert.Contains(t, dangling[0].Message, "Critic")
		})
	}
}

func TestGenerate_CascadeDependsOnMode(t *testing.T) {
	doc := document(
		object("Review", idField(), field("movie", named(introspect.KindObject, "Movie"))),
		object("Movie", idField(), field("reviewer", named(introspect.KindObject, "Critic"))),
		object("Person", idField()),
	)

	universe, err := NewGenerator(nil, Options{ReferenceCheck: ReferenceCheckUniverse}).
		Generate(context.Background(), SourceConfig{Source: doc}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Review", "Person"}, sheetSlugs(universe.Workbook))

	surviving, err := NewGenerator(nil, Options{ReferenceCheck: ReferenceCheckSurviving}).
		Generate(context.Background(), SourceConfig{Source: doc}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Person"}, sheetSlugs(surviving.Workbook))
	assert.Len(t, surviving.Diagnostics.ByCode(diagnostic.CodeDanglingReference), 2)
}

func TestGenerate_UnionFieldSkipped(t *testing.T) {
	sdl := `
type Query { search: [SearchResult] }
union SearchResult = Movie | Person
type Movie { title: String  result: SearchResult }
type Person { id: ID! }
`

	res, err := Generate(context.Background(), SourceConfig{Source: sdl}, nil)
	require.NoError(t, err)

	movie, ok := res.Workbook.Sheet("Movie")
	require.True(t, ok)

	keys := make([]string, 0, len(movie.Fields))
	for _, f := range movie.Fields {
		keys = append(keys, f.Key)
	}

	assert.Equal(t, []string{"id", "title"}, keys)

	unsupported := res.Diagnostics.ByCode(diagnostic.CodeUnsupportedFieldKind)
	require.Len(t, unsupported, 1)
	assert.Equal(t, "result", unsupported[0].Field)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeSynthesizedID), 1)
}

func TestGenerate_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res, err := Generate(context.Background(), SourceConfig{Source: srv.URL}, nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, introspect.ErrSchemaFetch))
	assert.Contains(t, err.Error(), "Internal Server Error")
}

func TestGenerate_InvalidSource(t *testing.T) {
	res, err := Generate(context.Background(), SourceConfig{Source: 42}, nil)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, introspect.ErrInvalidSource)
}

func TestGenerate_Overrides(t *testing.T) {
	overrides := []model.SheetOverride{
		{Slug: "Movie", Name: "Films", ReadOnly: true},
		{Slug: "Ghost"},
		{Slug: "Persons"},
	}

	res, err := Generate(context.Background(), SourceConfig{Source: movieSDL}, overrides)
	require.NoError(t, err)

	movie, _ := res.Workbook.Sheet("Movie")
	assert.Equal(t, "Movie", movie.Name)
	assert.True(t, movie.ReadOnly)

	unmatched := res.Diagnostics.ByCode(diagnostic.CodeOverrideUnmatched)
	require.Len(t, unmatched, 2)
	assert.Equal(t, "Ghost", unmatched[0].Object)
	assert.NotContains(t, unmatched[0].Message, "did you mean")
	assert.Contains(t, unmatched[1].Message, `did you mean "Person"?`)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeOverrideComputedKey), 1)
}

func TestGenerate_Idempotent(t *testing.T) {
	overrides := []model.SheetOverride{{Slug: "Person", Access: []string{"add"}}}

	first, err := Generate(context.Background(), SourceConfig{Source: movieSDL}, overrides)
	require.NoError(t, err)

	second, err := Generate(context.Background(), SourceConfig{Source: movieSDL}, overrides)
	require.NoError(t, err)

	assert.Equal(t, first.Workbook, second.Workbook)
	assert.Equal(t, first.Diagnostics, second.Diagnostics)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerate_IDInvariant(t *testing.T) {
	doc := document(
		object("Tag", field("label", named(introspect.KindScalar, "String"))),
		object("Movie", idField(), field("tag", named(introspect.KindObject, "Tag"))),
	)

	res, err := Generate(context.Background(), SourceConfig{Source: doc}, nil)
	require.NoError(t, err)
	require.Len(t, res.Workbook.Sheets, 2)

	for _, s := range res.Workbook.Sheets {
		ids := 0

		for _, f := range s.Fields {
			if f.Key == model.IDKey {
				ids++
			}
		}

		assert.Equal(t, 1, ids, "sheet %s", s.Slug)
	}

	tag, _ := res.Workbook.Sheet("Tag")
	assert.Equal(t, model.IDField(), tag.Fields[0])
}

func TestGenerate_EmptySchema(t *testing.T) {
	res, err := Generate(context.Background(), SourceConfig{Source: document()}, nil)
	require.NoError(t, err)
	assert.NotNil(t, res.Workbook.Sheets)
	assert.Empty(t, res.Workbook.Sheets)
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := document(object("Movie", idField()))

	_, err := NewGenerator(nil, Options{Workers: 1}).FromDocument(ctx, doc, model.WorkbookProperties{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_ManyObjectsKeepOrder(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

	types := make([]introspect.FullType, 0, len(names))
	for _, n := range names {
		types = append(types, object(n, idField()))
	}

	res, err := NewGenerator(nil, Options{Workers: 3}).
		FromDocument(context.Background(), document(types...), model.WorkbookProperties{}, nil)
	require.NoError(t, err)
	assert.Equal(t, names, sheetSlugs(res.Workbook))
}

type stubIntrospector struct {
	doc *introspect.Document
	err error
	got any
}

func (s *stubIntrospector) Introspect(_ context.Context, source any) (*introspect.Document, error) {
	s.got = source
	return s.doc, s.err
}

func TestGenerator_UsesIntrospector(t *testing.T) {
	stub := &stubIntrospector{doc: document(object("Movie", idField()))}

	res, err := NewGenerator(stub, Options{DefaultName: "Custom"}).
		Generate(context.Background(), SourceConfig{Source: "anything"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "anything", stub.got)
	assert.Equal(t, "Custom", res.Workbook.Name)

	stub.err = errors.New("boom")
	_, err = NewGenerator(stub, Options{}).Generate(context.Background(), SourceConfig{Source: "x"}, nil)
	assert.EqualError(t, err, "boom")
}
