package words

import "sort"

// Set is a deduplicated, unordered collection of normalized words.
type Set map[string]struct{}

// NewSet builds a set from words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts w.
func (s Set) Add(w string) {
	s[w] = struct{}{}
}

// Contains reports whether w is in the set.
func (s Set) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words.
func (s Set) Len() int {
	return len(s)
}

// Slice returns the words in sorted order.
func (s Set) Slice() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// IntersectionSize counts the words present in both sets.
func (s Set) IntersectionSize(other Set) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for w := range small {
		if _, ok := large[w]; ok {
			n++
		}
	}
	return n
}

// UnionSize counts the distinct words present in either set.
func (s Set) UnionSize(other Set) int {
	return len(s) + len(other) - s.IntersectionSize(other)
}
