package index_test

import (
	"fmt"
	"github.com/hscells/authorship/comment"
	"github.com/hscells/authorship/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

func comments(author string, n int) []comment.Comment {
	c := make([]comment.Comment, n)
	for i := range c {
		c[i] = comment.Comment{Author: author, Body: fmt.Sprintf("%s %d", author, i)}
	}
	return c
}

func TestBuild(t *testing.T) {
	var all []comment.Comment
	all = append(all, comments("a", 3)...)
	all = append(all, comments("b", 2)...)
	all = append(all, comments("a", 1)[0], comments("c", 1)[0])

	idx := index.Build(all)
	assert.Equal(t, []string{"a", "b", "c"}, idx.Users())
	assert.Equal(t, len(all), idx.Count())
	require.Len(t, idx["a"], 4)
	// Insertion order is kept per user.
	assert.Equal(t, "a 0", idx["a"][0].Body)
	assert.Equal(t, "a 0", idx["a"][3].Body)
	for user, cs := range idx {
		for _, c := range cs {
			assert.Equal(t, user, c.Author)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	idx := index.Build(nil)
	assert.Empty(t, idx)
	assert.Empty(t, idx.Users())
}

func TestFilter(t *testing.T) {
	var all []comment.Comment
	all = append(all, comments("A", 150)...)
	all = append(all, comments("B", 50)...)

	idx := index.Filter(index.Build(all), 100)
	assert.Equal(t, []string{"A"}, idx.Users())
	assert.Len(t, idx["A"], 150)
	_, ok := idx["B"]
	assert.False(t, ok)
}

func TestSplit(t *testing.T) {
	var all []comment.Comment
	all = append(all, comments("even", 10)...)
	all = append(all, comments("odd", 11)...)
	all = append(all, comments("one", 1)...)
	idx := index.Build(all)
	original := make([]comment.Comment, len(idx["odd"]))
	copy(original, idx["odd"])

	training, test := index.Split(idx, rand.New(rand.NewSource(42)))

	assert.Len(t, training["even"], 5)
	assert.Len(t, test["even"], 5)
	assert.Len(t, training["odd"], 5)
	assert.Len(t, test["odd"], 6)
	assert.Len(t, training["one"], 0)
	assert.Len(t, test["one"], 1)

	for user, cs := range idx {
		seen := make(map[string]int)
		for _, c := range training[user] {
			seen[c.Body]++
		}
		for _, c := range test[user] {
			seen[c.Body]++
		}
		assert.Len(t, seen, len(cs))
		for _, c := range cs {
			assert.Equal(t, 1, seen[c.Body], "%s in exactly one half", c.Body)
		}
	}

	// The original comment order is untouched.
	assert.Equal(t, original, idx["odd"])
}

func TestSplitGlobalSource(t *testing.T) {
	training, test := index.Split(index.Build(comments("a", 7)), nil)
	assert.Len(t, training["a"], 3)
	assert.Len(t, test["a"], 4)
}

func TestSplitAppendDoesNotLeak(t *testing.T) {
	training, test := index.Split(index.Build(comments("a", 4)), rand.New(rand.NewSource(1)))
	first := test["a"][0]
	training["a"] = append(training["a"], comment.Comment{Author: "a", Body: "new"})
	assert.Equal(t, first, test["a"][0])
}
