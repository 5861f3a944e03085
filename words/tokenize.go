package words

import (
	"strings"
	"unicode"
)

// minWordLen is the shortest significant word, in bytes.
const minWordLen = 3

// Normalize lowercases a single token and trims leading and trailing non-letters.
func Normalize(token string) string {
	return strings.TrimFunc(strings.ToLower(token), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// Significant reports whether a normalized token survives the filter.
func Significant(word string) bool {
	return len(word) >= minWordLen && !stopWords[word]
}

// Sequence returns the significant words of text in source order.
// Repeated words are kept; n-grams are built from this sequence.
func Sequence(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))

	for _, field := range fields {
		word := Normalize(field)
		if Significant(word) {
			out = append(out, word)
		}
	}

	return out
}

// Extract returns the set of significant words in text.
func Extract(text string) Set {
	return NewSet(Sequence(text)...)
}
