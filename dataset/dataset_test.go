package dataset_test

import (
	"bytes"
	"github.com/hscells/authorship/comment"
	"github.com/hscells/authorship/dataset"
	"github.com/hscells/authorship/features"
	"github.com/hscells/authorship/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	training := index.Build([]comment.Comment{
		{Author: "bob", Body: "cat dog"},
		{Author: "alice", Body: "red green"},
		{Author: "bob", Body: "dog"},
	})
	test := index.Build([]comment.Comment{
		{Author: "alice", Body: "green blue"},
		{Author: "bob", Body: "cat fish"},
	})

	bow := features.NewBagOfWords(nil)
	var progress bytes.Buffer
	train, err := dataset.Build(training, bow, nil, dataset.Progress(&progress))
	require.NoError(t, err)
	assert.NotEmpty(t, progress.String())

	assert.Equal(t, []string{"alice", "bob"}, train.Users)
	assert.Equal(t, []int{0, 1, 1}, train.Y)
	assert.Equal(t, []string{"cat", "dog", "green", "red"}, train.Vectorizer.FeatureNames())
	r, c := train.X.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)

	held, err := dataset.Build(test, bow, train.Vectorizer)
	require.NoError(t, err)
	assert.Same(t, train.Vectorizer, held.Vectorizer)
	assert.Equal(t, []int{0, 1}, held.Y)
	_, c2 := held.X.Dims()
	assert.Equal(t, c, c2)
	assert.Equal(t, []string{"cat", "dog", "green", "red"}, held.Vectorizer.FeatureNames())

	// "blue" and "fish" never became columns.
	assert.Equal(t, []int{2}, held.X.Rows[0].Indices)
	assert.Equal(t, []int{0}, held.X.Rows[1].Indices)
}

func TestBuildEmptyText(t *testing.T) {
	idx := index.Build([]comment.Comment{{Author: "alice", Body: ""}})
	var progress bytes.Buffer
	_, err := dataset.Build(idx, features.NewContentFree(nil), nil, dataset.Progress(&progress))
	require.Error(t, err)
	// The bar is finished even though extraction failed.
	assert.True(t, strings.HasSuffix(progress.String(), "\n"))

	_, err = dataset.Build(idx, features.NewRawContentFree(nil), nil)
	require.NoError(t, err)
}
