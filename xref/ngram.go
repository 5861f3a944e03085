package xref

import (
	"strconv"
	"strings"

	"github.com/poiesic/lectio/synonyms"
	"github.com/poiesic/lectio/words"
)

// ExpansionMode selects how an n-gram is expanded through synonyms.
type ExpansionMode int

const (
	// ExpansionIncremental substitutes synonyms one position at a time,
	// left to right, applying each position's substitutions to every
	// variant produced so far. The literal n-gram is always kept.
	ExpansionIncremental ExpansionMode = iota

	// ExpansionCartesian builds the product of each position's synonym
	// group directly. The literal n-gram is only present when every
	// group contains its own word.
	ExpansionCartesian
)

// String returns the mode name.
func (m ExpansionMode) String() string {
	if m == ExpansionCartesian {
		return "cartesian"
	}
	return "incremental"
}

// NGram is a run of consecutive significant words.
type NGram []string

// Key returns the n-gram as a single space-joined string.
// Significant words never contain whitespace, so keys are unambiguous.
func (g NGram) Key() string {
	return strings.Join(g, " ")
}

// NGramSet is a set of n-gram keys.
type NGramSet map[string]struct{}

// Contains reports whether key is in the set.
func (s NGramSet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// BuildNGrams returns one n-gram per start position of seq.
// A sequence shorter than n, or n < 1, yields none.
func BuildNGrams(seq []string, n int) []NGram {
	if n < 1 || len(seq) < n {
		return nil
	}
	grams := make([]NGram, 0, len(seq)-n+1)
	for i := 0; i+n <= len(seq); i++ {
		grams = append(grams, NGram(seq[i:i+n]))
	}
	return grams
}

// Variations expands gram into its synonym variants under mode.
func Variations(gram NGram, syn synonyms.Map, mode ExpansionMode) NGramSet {
	if mode == ExpansionCartesian {
		return cartesianVariations(gram, syn)
	}
	return incrementalVariations(gram, syn)
}

func incrementalVariations(gram NGram, syn synonyms.Map) NGramSet {
	set := NGramSet{gram.Key(): {}}
	variants := []NGram{gram}

	for i, word := range gram {
		group, ok := syn[word]
		if !ok || len(group) == 0 {
			continue
		}
		// Only variants that existed before this position are substituted.
		current := len(variants)
		for _, v := range variants[:current] {
			for _, s := range group {
				next := make(NGram, len(v))
				copy(next, v)
				next[i] = s
				key := next.Key()
				if _, seen := set[key]; seen {
					continue
				}
				set[key] = struct{}{}
				variants = append(variants, next)
			}
		}
	}

	return set
}

func cartesianVariations(gram NGram, syn synonyms.Map) NGramSet {
	partial := [][]string{nil}
	for _, word := range gram {
		choices := syn.ExpandWord(word)
		next := make([][]string, 0, len(partial)*len(choices))
		for _, p := range partial {
			for _, c := range choices {
				v := make([]string, len(p), len(p)+1)
				copy(v, p)
				next = append(next, append(v, c))
			}
		}
		partial = next
	}

	set := make(NGramSet, len(partial))
	for _, p := range partial {
		set[NGram(p).Key()] = struct{}{}
	}
	return set
}

// HasNGramMatch reports whether the two variant sets share any n-gram.
func HasNGramMatch(a, b NGramSet) bool {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}
	for key := range small {
		if large.Contains(key) {
			return true
		}
	}
	return false
}

// CountNGramMatches counts the distinct n-grams of source present in candidate.
func CountNGramMatches(source, candidate NGramSet) int {
	n := 0
	for key := range source {
		if candidate.Contains(key) {
			n++
		}
	}
	return n
}

// NGramMetric scores verses by the number of shared n-word phrases.
type NGramMetric struct {
	N         int
	Expansion ExpansionMode
}

var _ Metric = (*NGramMetric)(nil)

// NewNGram returns an n-gram metric using incremental expansion.
func NewNGram(n int) *NGramMetric {
	return &NGramMetric{N: n, Expansion: ExpansionIncremental}
}

func (m *NGramMetric) Name() string {
	return strconv.Itoa(m.N) + "-gram"
}

// Prepare builds the verse's n-grams, each expanded into its variants when useSynonyms is set.
func (m *NGramMetric) Prepare(text string, syn synonyms.Map, useSynonyms bool) *Features {
	grams := BuildNGrams(words.Sequence(text), m.N)
	set := make(NGramSet, len(grams))
	for _, g := range grams {
		if !useSynonyms {
			set[g.Key()] = struct{}{}
			continue
		}
		for key := range Variations(g, syn, m.Expansion) {
			set[key] = struct{}{}
		}
	}
	return &Features{NGrams: set}
}

// Score returns the match count; any match qualifies.
func (m *NGramMetric) Score(source, candidate *Features) (float64, bool) {
	if !HasNGramMatch(source.NGrams, candidate.NGrams) {
		return 0, false
	}
	return float64(CountNGramMatches(source.NGrams, candidate.NGrams)), true
}
