// Package dataset assembles labelled feature matrices out of a user index.
package dataset

import (
	"github.com/hscells/authorship/features"
	"github.com/hscells/authorship/index"
	"github.com/hscells/authorship/vectorize"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	"io"
)

// Dataset is a feature matrix with one label per row. Labels number users in the order of
// index.UserIndex.Users.
type Dataset struct {
	X          *vectorize.Matrix
	Y          []int
	Users      []string
	Vectorizer *vectorize.DictVectorizer
}

type builder struct {
	progress io.Writer
}

// Option configures how a dataset is built.
type Option func(b *builder)

// Progress renders a progress bar to w while features are extracted.
func Progress(w io.Writer) Option {
	return func(b *builder) {
		b.progress = w
	}
}

// Build extracts features from every comment in idx. When vectorizer is nil a new one is fitted to the
// extracted features; otherwise the given one is used as is, so that a test set built with the training
// set's vectorizer has the same columns. Two datasets only share label numbering when their indexes
// contain the same users.
func Build(idx index.UserIndex, extractor features.Extractor, vectorizer *vectorize.DictVectorizer, options ...Option) (Dataset, error) {
	b := &builder{}
	for _, o := range options {
		o(b)
	}

	var bar *pb.ProgressBar
	if b.progress != nil {
		bar = pb.New(idx.Count()).Prefix(extractor.Name() + " ")
		bar.Output = b.progress
		bar.Start()
		defer bar.Finish()
	}

	users := idx.Users()
	var (
		dicts  []features.Features
		labels []int
	)
	for label, user := range users {
		for _, c := range idx[user] {
			f, err := extractor.Extract(c.Body)
			if err != nil {
				return Dataset{}, errors.Wrapf(err, "could not extract %s features from comment by %s", extractor.Name(), user)
			}
			dicts = append(dicts, f)
			labels = append(labels, label)
			if bar != nil {
				bar.Increment()
			}
		}
	}

	var (
		x   *vectorize.Matrix
		err error
	)
	if vectorizer == nil {
		vectorizer = vectorize.NewDictVectorizer()
		x, err = vectorizer.FitTransform(dicts)
	} else {
		x, err = vectorizer.Transform(dicts)
	}
	if err != nil {
		return Dataset{}, err
	}

	return Dataset{
		X:          x,
		Y:          labels,
		Users:      users,
		Vectorizer: vectorizer,
	}, nil
}
