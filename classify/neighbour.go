package classify

import (
	"github.com/hscells/authorship/vectorize"
	"sort"
)

const neighbourName = "Nearest Neighbor"

// NearestNeighbour labels a row with the most common label among the k closest training rows by
// Euclidean distance. Ties in the vote go to the smallest label.
type NearestNeighbour struct {
	k int

	rows   []vectorize.Vector
	norms  []float64
	labels []int
	cols   int
}

// NeighbourK sets the number of neighbours that vote (default 5).
func NeighbourK(k int) func(nn *NearestNeighbour) {
	return func(nn *NearestNeighbour) {
		nn.k = k
	}
}

// NewNearestNeighbour creates an untrained k-nearest-neighbour classifier.
func NewNearestNeighbour(options ...func(nn *NearestNeighbour)) *NearestNeighbour {
	nn := &NearestNeighbour{k: 5}
	for _, o := range options {
		o(nn)
	}
	return nn
}

func (nn *NearestNeighbour) Name() string {
	return neighbourName
}

func (nn *NearestNeighbour) Fit(x *vectorize.Matrix, y []int) error {
	if err := checkFit(x, y); err != nil {
		return err
	}
	nn.rows = x.Rows
	nn.labels = make([]int, len(y))
	copy(nn.labels, y)
	nn.norms = make([]float64, len(x.Rows))
	for i, row := range x.Rows {
		nn.norms[i] = row.SquaredNorm()
	}
	nn.cols = x.Cols
	return nil
}

type neighbour struct {
	distance float64
	label    int
}

func (nn *NearestNeighbour) Predict(x *vectorize.Matrix) ([]int, error) {
	if nn.rows == nil {
		return nil, ErrNotFitted
	}
	if err := checkPredict(x, nn.cols); err != nil {
		return nil, err
	}

	k := nn.k
	if k < 1 {
		k = 1
	}
	if k > len(nn.rows) {
		k = len(nn.rows)
	}

	predicted := make([]int, len(x.Rows))
	neighbours := make([]neighbour, len(nn.rows))
	for i, row := range x.Rows {
		norm := row.SquaredNorm()
		for j, other := range nn.rows {
			// Squared distance; the square root does not change the ordering.
			neighbours[j] = neighbour{
				distance: norm + nn.norms[j] - 2*row.Dot(other),
				label:    nn.labels[j],
			}
		}
		sort.SliceStable(neighbours, func(a, b int) bool {
			return neighbours[a].distance < neighbours[b].distance
		})

		votes := make(map[int]int)
		for _, n := range neighbours[:k] {
			votes[n.label]++
		}
		best, bestVotes := 0, -1
		for label, v := range votes {
			if v > bestVotes || (v == bestVotes && label < best) {
				best, bestVotes = label, v
			}
		}
		predicted[i] = best
	}
	return predicted, nil
}
