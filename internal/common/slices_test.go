package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFindFirst(t *testing.T) {
	type item struct {
		slug string
		n    int
	}

	items := []item{{"a", 1}, {"b", 2}, {"b", 3}}

	got, ok := FindFirst(items, func(i item) bool { return i.slug == "b" })
	assert.True(t, ok)
	assert.Equal(t, 2, got.n)

	_, ok = FindFirst(items, func(i item) bool { return i.slug == "z" })
	assert.False(t, ok)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "x", FirstNonEmpty("", "x", "y"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
	assert.True(t, IsEmpty([]int{}))
}
