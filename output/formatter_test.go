package output_test

import (
	"github.com/hscells/authorship"
	"github.com/hscells/authorship/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	assert.Equal(t, "12 comments loaded", output.TextFormatter(authorship.PipelineResult{Type: authorship.Loaded, Count: 12}))
	assert.Equal(t, "Uniform guess correctness rate: 0.25", output.TextFormatter(authorship.PipelineResult{Type: authorship.Baseline, Accuracy: 0.25}))
	assert.Equal(t, "Naive Bayes/Bag-of-Words Accuracy: 0.5", output.TextFormatter(authorship.PipelineResult{
		Type:       authorship.Accuracy,
		Extractor:  "Bag-of-Words",
		Classifier: "Naive Bayes",
		Accuracy:   0.5,
	}))
}

func TestCsvAccuracyFormatter(t *testing.T) {
	s, err := output.CsvAccuracyFormatter([]authorship.PipelineResult{
		{Type: authorship.Baseline, Run: "r", Accuracy: 0.25},
		{Type: authorship.Accuracy, Run: "r", Extractor: "Content-Free", Classifier: "Naive Bayes", Accuracy: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, "Run,Features,Classifier,Accuracy\nr,Content-Free,Naive Bayes,0.5\n", s)
}
