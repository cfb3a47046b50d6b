// Package eval scores predicted user labels against the true ones.
package eval

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Evaluator is an interface for scoring a list of predictions.
type Evaluator interface {
	Score(predicted, actual []int) (float64, error)
	Name() string
}

type accuracy struct{}

// Accuracy is the fraction of predictions that are correct.
var Accuracy = accuracy{}

func (accuracy) Name() string {
	return "Accuracy"
}

func (accuracy) Score(predicted, actual []int) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, errors.Errorf("%d predictions for %d labels", len(predicted), len(actual))
	}
	if len(actual) == 0 {
		return 0, errors.New("nothing to score")
	}
	hits := make([]float64, len(actual))
	for i := range actual {
		if predicted[i] == actual[i] {
			hits[i] = 1
		}
	}
	return stat.Mean(hits, nil), nil
}

// UniformBaseline is the accuracy expected from guessing uniformly at random between n users.
func UniformBaseline(n int) (float64, error) {
	if n <= 0 {
		return 0, errors.New("no users to guess between")
	}
	return 1 / float64(n), nil
}

// Evaluate scores predictions with each evaluator.
func Evaluate(evaluators []Evaluator, predicted, actual []int) (map[string]float64, error) {
	scores := make(map[string]float64)
	for _, e := range evaluators {
		s, err := e.Score(predicted, actual)
		if err != nil {
			return nil, err
		}
		scores[e.Name()] = s
	}
	return scores, nil
}
