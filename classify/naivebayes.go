package classify

import (
	"github.com/hscells/authorship/vectorize"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"math"
	"sort"
)

const naiveBayesName = "Naive Bayes"

// NaiveBayes is a multinomial naive Bayes classifier with additive smoothing. Feature values are treated
// as (possibly fractional) counts and must not be negative.
type NaiveBayes struct {
	alpha float64

	classes        []int
	classLogPrior  []float64
	featureLogProb [][]float64
	cols           int
}

// NaiveBayesAlpha sets the additive smoothing parameter (default 1).
func NaiveBayesAlpha(alpha float64) func(nb *NaiveBayes) {
	return func(nb *NaiveBayes) {
		nb.alpha = alpha
	}
}

// NewNaiveBayes creates an untrained multinomial naive Bayes classifier.
func NewNaiveBayes(options ...func(nb *NaiveBayes)) *NaiveBayes {
	nb := &NaiveBayes{alpha: 1}
	for _, o := range options {
		o(nb)
	}
	return nb
}

func (nb *NaiveBayes) Name() string {
	return naiveBayesName
}

func (nb *NaiveBayes) Fit(x *vectorize.Matrix, y []int) error {
	if err := checkFit(x, y); err != nil {
		return err
	}

	class := make(map[int]int)
	for _, label := range y {
		class[label] = 0
	}
	nb.classes = make([]int, 0, len(class))
	for label := range class {
		nb.classes = append(nb.classes, label)
	}
	sort.Ints(nb.classes)
	for i, label := range nb.classes {
		class[label] = i
	}

	nb.cols = x.Cols
	counts := make([]float64, len(nb.classes))
	featureCounts := make([][]float64, len(nb.classes))
	for i := range featureCounts {
		featureCounts[i] = make([]float64, x.Cols)
	}
	for i, row := range x.Rows {
		c := class[y[i]]
		counts[c]++
		for j, idx := range row.Indices {
			if row.Values[j] < 0 {
				return errors.Errorf("negative value for feature %d in row %d", idx, i)
			}
			featureCounts[c][idx] += row.Values[j]
		}
	}

	n := float64(len(y))
	nb.classLogPrior = make([]float64, len(nb.classes))
	nb.featureLogProb = make([][]float64, len(nb.classes))
	for c := range nb.classes {
		nb.classLogPrior[c] = math.Log(counts[c] / n)
		total := floats.Sum(featureCounts[c]) + nb.alpha*float64(x.Cols)
		lp := make([]float64, x.Cols)
		for j, fc := range featureCounts[c] {
			lp[j] = math.Log((fc + nb.alpha) / total)
		}
		nb.featureLogProb[c] = lp
	}
	return nil
}

func (nb *NaiveBayes) Predict(x *vectorize.Matrix) ([]int, error) {
	if nb.classes == nil {
		return nil, ErrNotFitted
	}
	if err := checkPredict(x, nb.cols); err != nil {
		return nil, err
	}

	predicted := make([]int, len(x.Rows))
	jll := make([]float64, len(nb.classes))
	for i, row := range x.Rows {
		for c := range nb.classes {
			jll[c] = nb.classLogPrior[c] + row.DotDense(nb.featureLogProb[c])
		}
		predicted[i] = nb.classes[floats.MaxIdx(jll)]
	}
	return predicted, nil
}
