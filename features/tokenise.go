package features

import (
	"github.com/hashicorp/golang-lru"
	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
)

// DefaultCacheSize is the number of tokenised texts a Tokeniser remembers by default.
const DefaultCacheSize = 8192

// Tokeniser splits text into word tokens. Results are memoised in an LRU cache, so extractors sharing a
// tokeniser only tokenise a text once as long as the cache holds every text they visit (see Reserve).
// Token slices handed out are shared and must not be modified.
type Tokeniser struct {
	cache *lru.Cache
	size  int
}

// NewTokeniser creates a tokeniser remembering up to size texts.
func NewTokeniser(size int) (*Tokeniser, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "could not create token cache")
	}
	return &Tokeniser{cache: c, size: size}, nil
}

// Reserve grows the cache to hold at least n texts. It never shrinks the cache.
func (t *Tokeniser) Reserve(n int) {
	if t == nil || t.cache == nil || n <= t.size {
		return
	}
	t.cache.Resize(n)
	t.size = n
}

// Size is the number of texts the cache can hold.
func (t *Tokeniser) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Tokenise returns the words in text using standard treebank-like tokenisation rules.
func (t *Tokeniser) Tokenise(text string) ([]string, error) {
	if t != nil && t.cache != nil {
		if v, ok := t.cache.Get(text); ok {
			return v.([]string), nil
		}
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, errors.Wrap(err, "could not tokenise text")
	}
	toks := doc.Tokens()
	words := make([]string, len(toks))
	for i, tok := range toks {
		words[i] = tok.Text
	}

	if t != nil && t.cache != nil {
		t.cache.Add(text, words)
	}
	return words, nil
}
