package features

import (
	"github.com/hscells/authorship/preprocess"
	"github.com/reiver/go-porterstemmer"
)

// BagOfWords records which words appear in a comment, ignoring how many times.
type BagOfWords struct {
	tokeniser *Tokeniser
}

// NewBagOfWords creates a bag-of-words extractor. A nil tokeniser tokenises without caching.
func NewBagOfWords(t *Tokeniser) BagOfWords {
	return BagOfWords{tokeniser: t}
}

func (b BagOfWords) Name() string {
	return "Bag-of-Words"
}

func (b BagOfWords) Extract(text string) (Features, error) {
	words, err := b.tokeniser.Tokenise(text)
	if err != nil {
		return nil, err
	}
	f := make(Features, len(words))
	for _, word := range words {
		f[word] = 1
	}
	return f, nil
}

// BagOfStems records which stemmed, non-stopword terms appear in a comment. Text is transliterated,
// lowercased and stripped of punctuation first, so spelling variations of the same term collapse into one
// feature.
type BagOfStems struct {
	tokeniser  *Tokeniser
	processors []preprocess.TextProcessor
}

// NewBagOfStems creates a bag-of-stems extractor. A nil tokeniser tokenises without caching.
func NewBagOfStems(t *Tokeniser) BagOfStems {
	return BagOfStems{
		tokeniser:  t,
		processors: []preprocess.TextProcessor{
			preprocess.Transliterate,
			preprocess.Lowercase,
			preprocess.AlphaNum,
			preprocess.StripStopwords,
		},
	}
}

func (b BagOfStems) Name() string {
	return "Bag-of-Stems"
}

func (b BagOfStems) Extract(text string) (Features, error) {
	words, err := b.tokeniser.Tokenise(preprocess.Process(text, b.processors...))
	if err != nil {
		return nil, err
	}
	f := make(Features, len(words))
	for _, word := range words {
		f[porterstemmer.StemString(word)] = 1
	}
	return f, nil
}
