// Package classify provides the classifier families compared by the authorship experiments. Every
// classifier trains on a sparse feature matrix with integer user labels and predicts labels for new rows.
package classify

import (
	"github.com/hscells/authorship/eval"
	"github.com/hscells/authorship/vectorize"
	"github.com/pkg/errors"
)

var (
	// ErrNotFitted is returned when predicting with a classifier that has not been trained.
	ErrNotFitted = errors.New("classifier has not been fitted")
	// ErrEmptyDataset is returned when training on no examples.
	ErrEmptyDataset = errors.New("cannot fit a classifier to an empty dataset")
)

// Classifier learns to predict user labels from feature vectors.
type Classifier interface {
	Name() string
	Fit(x *vectorize.Matrix, y []int) error
	Predict(x *vectorize.Matrix) ([]int, error)
}

// Family names a kind of classifier and creates fresh, untrained instances of it.
type Family struct {
	Name string
	New  func() Classifier
}

var (
	NaiveBayesFamily = Family{Name: naiveBayesName, New: func() Classifier { return NewNaiveBayes() }}
	NeighbourFamily  = Family{Name: neighbourName, New: func() Classifier { return NewNearestNeighbour() }}
	SVCFamily        = Family{Name: svcName, New: func() Classifier { return NewSVC() }}
)

// Families are the classifiers compared by default.
func Families() []Family {
	return []Family{NaiveBayesFamily, NeighbourFamily, SVCFamily}
}

// Score predicts labels for x and scores them against y with each evaluator.
func Score(c Classifier, x *vectorize.Matrix, y []int, evaluators ...eval.Evaluator) (map[string]float64, error) {
	predicted, err := c.Predict(x)
	if err != nil {
		return nil, err
	}
	return eval.Evaluate(evaluators, predicted, y)
}

func checkFit(x *vectorize.Matrix, y []int) error {
	if x == nil {
		return ErrEmptyDataset
	}
	if r, _ := x.Dims(); r == 0 {
		return ErrEmptyDataset
	} else if r != len(y) {
		return errors.Errorf("%d rows but %d labels", r, len(y))
	}
	return nil
}

func checkPredict(x *vectorize.Matrix, cols int) error {
	if _, c := x.Dims(); c != cols {
		return errors.Errorf("fitted with %d features, got %d", cols, c)
	}
	return nil
}
