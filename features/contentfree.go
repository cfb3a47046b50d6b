package features

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxWordLength is the longest word counted towards a word-length feature.
const MaxWordLength = 20

const (
	Characters = "characters"
	Words      = "words"

	CaseUpper       = "case:upper"
	CaseLower       = "case:lower"
	CaseCapitalized = "case:capitalized"
	CaseCamel       = "case:camel"
	CaseOther       = "case:other"
)

// Matches a prefix of one or more capitalised runs, e.g. "CamelCase".
var camel = regexp.MustCompile(`^([A-Z][a-z]+)+`)

// WordLength is the name of the feature counting words with n characters.
func WordLength(n int) string {
	return "word-length:" + strconv.Itoa(n)
}

// Char is the name of the feature counting occurrences of a character, ignoring case.
func Char(c rune) string {
	return "char:" + strings.ToLower(string(c))
}

// ContentFree describes the style of a comment independent of its topic:
//  - the number of characters and words,
//  - how many words are 1 to 20 characters long,
//  - how many words are UPPER, lower, Capitalised, CamelCase or anything else,
//  - how often each character occurs, ignoring case.
// When normalised, word lengths and cases are fractions of the word count, and characters are fractions
// of the character count. The character and word counts themselves are never normalised.
type ContentFree struct {
	tokeniser *Tokeniser
	normalise bool
}

// NewContentFree creates a normalised content-free extractor. A nil tokeniser tokenises without caching.
func NewContentFree(t *Tokeniser) ContentFree {
	return ContentFree{tokeniser: t, normalise: true}
}

// NewRawContentFree creates a content-free extractor that reports raw counts.
func NewRawContentFree(t *Tokeniser) ContentFree {
	return ContentFree{tokeniser: t}
}

func (c ContentFree) Name() string {
	if c.normalise {
		return "Content-Free"
	}
	return "Content-Free (Raw)"
}

func (c ContentFree) Extract(text string) (Features, error) {
	words, err := c.tokeniser.Tokenise(text)
	if err != nil {
		return nil, err
	}
	characters := utf8.RuneCountInString(text)
	if c.normalise && (len(words) == 0 || characters == 0) {
		return nil, ErrEmptyText
	}

	f := make(Features)
	f[Characters] = float64(characters)
	f[Words] = float64(len(words))

	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if n == 0 || n > MaxWordLength {
			continue
		}
		f[WordLength(n)]++
	}

	for _, word := range words {
		f[wordCase(word)]++
	}

	if c.normalise {
		total := float64(len(words))
		for n := 1; n <= MaxWordLength; n++ {
			f[WordLength(n)] /= total
		}
		for _, k := range []string{CaseUpper, CaseLower, CaseCapitalized, CaseCamel, CaseOther} {
			f[k] /= total
		}
	}

	chars := make(map[string]float64)
	for _, r := range text {
		chars[Char(r)]++
	}
	for k, v := range chars {
		if c.normalise {
			v /= float64(characters)
		}
		f[k] = v
	}

	return f, nil
}

func wordCase(word string) string {
	switch {
	case isUpper(word):
		return CaseUpper
	case isLower(word):
		return CaseLower
	case isTitle(word):
		return CaseCapitalized
	case camel.MatchString(word):
		return CaseCamel
	default:
		return CaseOther
	}
}

// isUpper reports whether s has at least one cased character and all of them are uppercase.
func isUpper(s string) bool {
	var cased bool
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isLower reports whether s has at least one cased character and all of them are lowercase.
func isLower(s string) bool {
	var cased bool
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isTitle reports whether uppercase characters in s only start runs of cased characters, and lowercase
// characters only continue them.
func isTitle(s string) bool {
	var cased, previousCased bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if previousCased {
				return false
			}
			previousCased = true
			cased = true
		case unicode.IsLower(r):
			if !previousCased {
				return false
			}
			previousCased = true
			cased = true
		default:
			previousCased = false
		}
	}
	return cased
}
