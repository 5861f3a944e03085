// Package synonyms expands words through a thesaurus of interchangeable terms.
//
// A Map is loaded once, typically from a "key: syn1, syn2" config file,
// and never modified afterwards. Components receive it as a plain value
// so tests can supply fixtures.
package synonyms

import (
	"sort"
	"strings"

	"github.com/poiesic/lectio/words"
)

// Map maps a normalized term to its interchangeable surface forms,
// the term itself included. Absent keys expand only to themselves.
type Map map[string][]string

// Len returns the number of synonym groups.
func (m Map) Len() int {
	return len(m)
}

// ExpandWord returns the variants of word, or word alone when unmapped.
func (m Map) ExpandWord(word string) []string {
	if syns, ok := m[word]; ok && len(syns) > 0 {
		return syns
	}
	return []string{word}
}

// Expand returns set with every mapped word replaced by the union of its variants.
// Unmapped words pass through unchanged. The input set is not modified.
func (m Map) Expand(set words.Set) words.Set {
	out := make(words.Set, len(set))
	for w := range set {
		syns, ok := m[w]
		if !ok || len(syns) == 0 {
			out.Add(w)
			continue
		}
		for _, s := range syns {
			out.Add(s)
		}
	}
	return out
}

// ExpandQuery expands a free-text query into sorted, deduplicated search terms.
// Each whitespace-separated word is normalized before lookup; words with
// no letters are dropped.
func (m Map) ExpandQuery(query string) []string {
	seen := make(map[string]bool)
	var terms []string

	for _, field := range strings.Fields(query) {
		word := words.Normalize(field)
		if word == "" {
			continue
		}
		for _, term := range m.ExpandWord(word) {
			if !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}

	sort.Strings(terms)
	return terms
}
