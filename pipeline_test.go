package authorship_test

import (
	"fmt"
	"github.com/hscells/authorship"
	"github.com/hscells/authorship/classify"
	"github.com/hscells/authorship/comment"
	"github.com/hscells/authorship/features"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

func corpus() []comment.Comment {
	styles := map[string]string{
		"shouty": "WOW THIS IS GREAT NUMBER %d!!!",
		"quiet":  "i think maybe item %d is fine, perhaps",
		"formal": "Regarding Item %d, The Committee Disagrees.",
	}
	var comments []comment.Comment
	for user, style := range styles {
		for i := 0; i < 12; i++ {
			comments = append(comments, comment.Comment{Author: user, Body: fmt.Sprintf(style, i)})
		}
	}
	comments = append(comments, comment.Comment{Author: "lurker", Body: "hello"})
	// Collected twice.
	comments = append(comments, comments[0])
	return comments
}

func TestPipeline(t *testing.T) {
	p, err := authorship.NewPipeline(
		authorship.Extractors(features.NewBagOfWords(nil), features.NewRawContentFree(nil)),
		authorship.Classifiers(classify.NaiveBayesFamily, classify.NeighbourFamily),
		authorship.MinComments(10),
		authorship.Randomness(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	var results []authorship.PipelineResult
	require.NoError(t, p.Execute(corpus(), func(r authorship.PipelineResult) {
		results = append(results, r)
	}))

	require.True(t, len(results) > 4)
	assert.Equal(t, authorship.Loaded, results[0].Type)
	assert.Equal(t, 37, results[0].Count)
	assert.Equal(t, authorship.Users, results[1].Type)
	assert.Equal(t, 4, results[1].Count)
	assert.Equal(t, authorship.QualifyingUsers, results[2].Type)
	assert.Equal(t, 3, results[2].Count)
	assert.Equal(t, authorship.Baseline, results[3].Type)
	assert.InDelta(t, 1.0/3.0, results[3].Accuracy, 1e-12)
	assert.Equal(t, authorship.Done, results[len(results)-1].Type)

	var accuracies []authorship.PipelineResult
	for _, r := range results {
		assert.Equal(t, results[0].Run, r.Run)
		if r.Type == authorship.Accuracy {
			accuracies = append(accuracies, r)
		}
	}
	require.Len(t, accuracies, 4)
	assert.Equal(t, "Bag-of-Words", accuracies[0].Extractor)
	assert.Equal(t, "Naive Bayes", accuracies[0].Classifier)
	assert.Equal(t, "Content-Free (Raw)", accuracies[3].Extractor)
	assert.Equal(t, "Nearest Neighbor", accuracies[3].Classifier)
	for _, a := range accuracies {
		assert.True(t, a.Accuracy >= 0 && a.Accuracy <= 1)
	}
	// The users write nothing alike.
	assert.Equal(t, 1.0, accuracies[0].Accuracy)
}

func TestPipelineNoUsers(t *testing.T) {
	p, err := authorship.NewPipeline(authorship.MinComments(100))
	require.NoError(t, err)
	assert.Len(t, p.Extractors, 4)
	assert.Len(t, p.Families, 3)

	var baseline bool
	err = p.Execute(corpus(), func(r authorship.PipelineResult) {
		if r.Type == authorship.Baseline {
			baseline = true
		}
	})
	assert.Equal(t, authorship.ErrNoQualifyingUsers, err)
	assert.False(t, baseline)
}

func TestPipelineOneUser(t *testing.T) {
	var comments []comment.Comment
	for i := 0; i < 6; i++ {
		comments = append(comments, comment.Comment{Author: "a", Body: fmt.Sprintf("comment number %d", i)})
	}
	p, err := authorship.NewPipeline(
		authorship.Classifiers(classify.SVCFamily),
		authorship.MinComments(1))
	require.NoError(t, err)

	var results []authorship.PipelineResult
	err = p.Execute(comments, func(r authorship.PipelineResult) {
		results = append(results, r)
	})
	assert.Equal(t, authorship.ErrTooFewUsers, err)
	require.Len(t, results, 3)
	assert.Equal(t, authorship.QualifyingUsers, results[2].Type)
	assert.Equal(t, 1, results[2].Count)
}

func TestPipelineEmptyText(t *testing.T) {
	comments := []comment.Comment{
		{Author: "a", Body: ""},
		{Author: "a", Body: "x"},
		{Author: "b", Body: "y"},
		{Author: "b", Body: "z"},
	}
	p, err := authorship.NewPipeline(
		authorship.Extractors(features.NewContentFree(nil)),
		authorship.MinComments(1))
	require.NoError(t, err)
	err = p.Execute(comments, func(authorship.PipelineResult) {})
	assert.Equal(t, features.ErrEmptyText, errors.Cause(err))
}

func TestPipelineTokeniser(t *testing.T) {
	tok, err := features.NewTokeniser(1)
	require.NoError(t, err)
	p, err := authorship.NewPipeline(
		authorship.Tokens(tok),
		authorship.Classifiers(classify.NaiveBayesFamily),
		authorship.MinComments(10),
		authorship.Randomness(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Same(t, tok, p.Tokeniser)

	require.NoError(t, p.Execute(corpus(), func(authorship.PipelineResult) {}))
	// Room for every comment of the three qualifying users.
	assert.Equal(t, 36, tok.Size())
}
