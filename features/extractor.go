// Package features extracts named numeric features from comment text. Each extractor is a different
// model of what makes a user's writing recognisable.
package features

import "github.com/pkg/errors"

// ErrEmptyText is returned when a normalised feature would have to be divided by a zero word or character
// count.
var ErrEmptyText = errors.New("cannot normalise features of empty text")

// Features is a sparse mapping of feature names to values. Features that were not observed are absent;
// presence features use the value 1.
type Features map[string]float64

// Extractor computes features from a piece of text. Extractors hold no state that changes the result:
// extracting from the same text twice gives equal features.
type Extractor interface {
	Extract(text string) (Features, error)
	Name() string
}
