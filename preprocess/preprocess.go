// Package preprocess handles normalisation of comment text before it is tokenised.
package preprocess

import (
	"github.com/bbalet/stopwords"
	"github.com/hscells/go-unidecode"
	"regexp"
	"strings"
)

// TextProcessor is applied to text before features are extracted from it.
type TextProcessor func(text string) string

var alphanum = regexp.MustCompile("[^a-zA-Z0-9]+")

// AlphaNum keeps runs of ASCII letters and digits, separated by single spaces. Transliterate text first
// to keep accented letters.
func AlphaNum(text string) string {
	return strings.TrimSpace(alphanum.ReplaceAllString(text, " "))
}

// Lowercase transforms all capital letters to lowercase.
func Lowercase(text string) string {
	return strings.ToLower(text)
}

// Transliterate replaces non-ASCII characters with their closest ASCII representation.
func Transliterate(text string) string {
	return unidecode.Unidecode(text)
}

// StripStopwords removes common English words.
func StripStopwords(text string) string {
	return strings.TrimSpace(stopwords.CleanString(text, "en", false))
}

// Process applies processors to text in order.
func Process(text string, processors ...TextProcessor) string {
	for _, p := range processors {
		text = p(text)
	}
	return text
}
