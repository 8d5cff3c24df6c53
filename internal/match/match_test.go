package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("MovieReview", "movie_review"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.8, Similarity("Movie", "Movi"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.Greater(t, Similarity("Person", "Persons"), Similarity("Person", "Planet"))
}

func TestRank(t *testing.T) {
	names := []string{"Planet", "Person", "People", "Film"}

	got := Rank("persons", names, 0.5)
	if assert.NotEmpty(t, got) {
		assert.Equal(t, "Person", got[0].Name)
	}

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}

	assert.Empty(t, Rank("zzz", names, 0.5))
}

func TestRankTiesAlphabetical(t *testing.T) {
	got := Rank("ab", []string{"ax", "aa"}, 0)
	assert.Equal(t, []string{"aa", "ax"}, []string{got[0].Name, got[1].Name})
}

func TestSuggest(t *testing.T) {
	names := []string{"Movie", "Person", "Review"}

	s, ok := Suggest("Moviee", names)
	assert.True(t, ok)
	assert.Equal(t, "Movie", s)

	_, ok = Suggest("Spaceship", names)
	assert.False(t, ok)
}
