package vectorize

import (
	"github.com/hscells/authorship/features"
	"github.com/pkg/errors"
	"sort"
)

// ErrNotFitted is returned when transforming with a vectorizer that has not seen any data.
var ErrNotFitted = errors.New("vectorizer has not been fitted")

// DictVectorizer maps feature names onto columns. The mapping is fixed by Fit and then reused, so that
// training and test data end up with the same columns. Features that were not seen while fitting are
// dropped when transforming.
type DictVectorizer struct {
	names []string
	index map[string]int
}

// NewDictVectorizer creates an unfitted vectorizer.
func NewDictVectorizer() *DictVectorizer {
	return &DictVectorizer{}
}

// Fit fixes the columns to the sorted names of every feature in data.
func (d *DictVectorizer) Fit(data []features.Features) *DictVectorizer {
	seen := make(map[string]struct{})
	for _, f := range data {
		for name := range f {
			seen[name] = struct{}{}
		}
	}
	d.names = make([]string, 0, len(seen))
	for name := range seen {
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)

	d.index = make(map[string]int, len(d.names))
	for i, name := range d.names {
		d.index[name] = i
	}
	return d
}

// Fitted reports whether Fit has been called.
func (d *DictVectorizer) Fitted() bool {
	return d.index != nil
}

// Len is the number of columns.
func (d *DictVectorizer) Len() int {
	return len(d.names)
}

// FeatureNames returns the feature name of each column.
func (d *DictVectorizer) FeatureNames() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Vector transforms a single set of features.
func (d *DictVectorizer) Vector(f features.Features) Vector {
	var v Vector
	for name := range f {
		if i, ok := d.index[name]; ok {
			v.Indices = append(v.Indices, i)
		}
	}
	sort.Ints(v.Indices)
	v.Values = make([]float64, len(v.Indices))
	for i, idx := range v.Indices {
		v.Values[i] = f[d.names[idx]]
	}
	return v
}

// Transform converts features into a matrix using the fitted columns.
func (d *DictVectorizer) Transform(data []features.Features) (*Matrix, error) {
	if !d.Fitted() {
		return nil, ErrNotFitted
	}
	m := &Matrix{
		Rows: make([]Vector, len(data)),
		Cols: len(d.names),
	}
	for i, f := range data {
		m.Rows[i] = d.Vector(f)
	}
	return m, nil
}

// FitTransform fits the vectorizer and transforms the same data.
func (d *DictVectorizer) FitTransform(data []features.Features) (*Matrix, error) {
	return d.Fit(data).Transform(data)
}
