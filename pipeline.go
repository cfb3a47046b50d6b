// Package authorship provides a framework for comparing how well different text features and
// classifiers attribute comments to the users that wrote them.
package authorship

import (
	"github.com/google/uuid"
	"github.com/hscells/authorship/classify"
	"github.com/hscells/authorship/comment"
	"github.com/hscells/authorship/dataset"
	"github.com/hscells/authorship/eval"
	"github.com/hscells/authorship/features"
	"github.com/hscells/authorship/index"
	"github.com/pkg/errors"
	"io"
	"math/rand"
)

// DefaultMinComments is the fewest comments a user needs to take part in an experiment.
const DefaultMinComments = 100

var (
	// ErrNoQualifyingUsers is returned when no user has enough comments.
	ErrNoQualifyingUsers = errors.New("no users have enough comments for analysis")
	// ErrTooFewUsers is returned when only one user has enough comments, leaving nothing to tell apart.
	ErrTooFewUsers = errors.New("at least two users need enough comments for analysis")
)

// Pipeline contains all the information for executing an authorship experiment.
type Pipeline struct {
	Extractors  []features.Extractor
	Families    []classify.Family
	MinComments int
	Rand        *rand.Rand
	Progress    io.Writer
	Tokeniser   *features.Tokeniser
}

// Extractors sets the feature models to compare.
func Extractors(extractors ...features.Extractor) func() interface{} {
	return func() interface{} {
		return extractors
	}
}

// Classifiers sets the classifier families to compare.
func Classifiers(families ...classify.Family) func() interface{} {
	return func() interface{} {
		return families
	}
}

type minComments int

// MinComments sets the fewest comments a user needs to take part.
func MinComments(n int) func() interface{} {
	return func() interface{} {
		return minComments(n)
	}
}

// Randomness sets the source used to split users' comments. Without it the global source is used.
func Randomness(rng *rand.Rand) func() interface{} {
	return func() interface{} {
		return rng
	}
}

type progress struct {
	io.Writer
}

// Progress renders progress bars to w while features are extracted.
func Progress(w io.Writer) func() interface{} {
	return func() interface{} {
		return progress{w}
	}
}

// Tokens sets the tokeniser shared by the configured extractors. Its cache grows to fit the corpus.
func Tokens(t *features.Tokeniser) func() interface{} {
	return func() interface{} {
		return t
	}
}

// DefaultExtractors are the feature models compared when none are configured. They share one tokeniser.
func DefaultExtractors(tok *features.Tokeniser) []features.Extractor {
	return []features.Extractor{
		features.NewContentFree(tok),
		features.NewRawContentFree(tok),
		features.NewBagOfWords(tok),
		features.NewBagOfStems(tok),
	}
}

// NewPipeline creates a new authorship pipeline. Components are provided via the optional functional
// arguments; anything not provided falls back to the defaults.
func NewPipeline(components ...func() interface{}) (Pipeline, error) {
	p := Pipeline{
		MinComments: DefaultMinComments,
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case []features.Extractor:
			p.Extractors = v
		case []classify.Family:
			p.Families = v
		case minComments:
			p.MinComments = int(v)
		case *rand.Rand:
			p.Rand = v
		case progress:
			p.Progress = v.Writer
		case *features.Tokeniser:
			p.Tokeniser = v
		}
	}

	if len(p.Extractors) == 0 {
		if p.Tokeniser == nil {
			tok, err := features.NewTokeniser(features.DefaultCacheSize)
			if err != nil {
				return Pipeline{}, err
			}
			p.Tokeniser = tok
		}
		p.Extractors = DefaultExtractors(p.Tokeniser)
	}
	if len(p.Families) == 0 {
		p.Families = classify.Families()
	}
	return p, nil
}

// Execute runs the experiment over comments, passing results to handle as they become available. Every
// feature model gets its own vectorizer and every classifier is trained from scratch.
func (p Pipeline) Execute(comments []comment.Comment, handle func(PipelineResult)) error {
	run := uuid.New().String()

	comments = comment.Unique(comments)
	handle(PipelineResult{Type: Loaded, Run: run, Count: len(comments)})

	users := index.Build(comments)
	handle(PipelineResult{Type: Users, Run: run, Count: len(users)})

	users = index.Filter(users, p.MinComments)
	handle(PipelineResult{Type: QualifyingUsers, Run: run, Count: len(users)})
	switch len(users) {
	case 0:
		return ErrNoQualifyingUsers
	case 1:
		return ErrTooFewUsers
	}

	baseline, err := eval.UniformBaseline(len(users))
	if err != nil {
		return err
	}
	handle(PipelineResult{Type: Baseline, Run: run, Accuracy: baseline})

	training, test := index.Split(users, p.Rand)

	// Every extractor visits all comments before the next one starts.
	p.Tokeniser.Reserve(users.Count())

	var options []dataset.Option
	if p.Progress != nil {
		options = append(options, dataset.Progress(p.Progress))
	}

	for _, extractor := range p.Extractors {
		handle(PipelineResult{Type: Producing, Run: run, Extractor: extractor.Name()})

		train, err := dataset.Build(training, extractor, nil, options...)
		if err != nil {
			return err
		}
		held, err := dataset.Build(test, extractor, train.Vectorizer, options...)
		if err != nil {
			return err
		}

		for _, family := range p.Families {
			handle(PipelineResult{Type: Training, Run: run, Extractor: extractor.Name(), Classifier: family.Name})

			c := family.New()
			if err := c.Fit(train.X, train.Y); err != nil {
				return errors.Wrapf(err, "could not train %s on %s features", family.Name, extractor.Name())
			}

			handle(PipelineResult{Type: Scoring, Run: run, Extractor: extractor.Name(), Classifier: family.Name})
			scores, err := classify.Score(c, held.X, held.Y, eval.Accuracy)
			if err != nil {
				return errors.Wrapf(err, "could not score %s on %s features", family.Name, extractor.Name())
			}

			handle(PipelineResult{
				Type:       Accuracy,
				Run:        run,
				Extractor:  extractor.Name(),
				Classifier: family.Name,
				Accuracy:   scores[eval.Accuracy.Name()],
			})
		}
	}

	handle(PipelineResult{Type: Done, Run: run})
	return nil
}
