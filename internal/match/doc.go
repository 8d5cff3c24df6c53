// Package match ranks known identifiers by similarity to a given one.
//
// Identifiers are normalized before comparison: CamelCase and separators
// are folded away, so "movie_review", "MovieReview" and "movieReview" are
// identical. Similarity is one minus the edit distance over the longer
// normalized length.
package match
