package match

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"workbook-generator/internal/naming"
)

// DefaultThreshold is the minimum similarity for a suggestion.
const DefaultThreshold = 0.6

// Candidate is a known identifier with its similarity score.
type Candidate struct {
	Name  string
	Score float64
}

// NormalizeIdent lowercases s and drops word separators.
//
//	"OrderID"    -> "orderid"
//	"order_id"   -> "orderid"
//	"XMLParser"  -> "xmlparser"
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(naming.Words(s), ""))
}

// Similarity scores a and b between 0 (unrelated) and 1 (equal after
// normalization).
func Similarity(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)
	if na == nb {
		return 1
	}

	longest := max(len([]rune(na)), len([]rune(nb)))

	return 1 - float64(levenshtein.ComputeDistance(na, nb))/float64(longest)
}

// Rank returns the names scoring at least minScore against target, best
// first. Ties keep alphabetical order.
func Rank(target string, names []string, minScore float64) []Candidate {
	var out []Candidate

	for _, n := range names {
		if score := Similarity(target, n); score >= minScore {
			out = append(out, Candidate{Name: n, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Suggest returns the closest name to target above DefaultThreshold.
func Suggest(target string, names []string) (string, bool) {
	ranked := Rank(target, names, DefaultThreshold)
	if len(ranked) == 0 {
		return "", false
	}

	return ranked[0].Name, true
}
