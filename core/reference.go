package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// referencePattern matches "Book Chapter:Verse". The book is the shortest
// prefix followed by a single whitespace character, so "1 Kings 2:3" and
// "Song of Solomon 1:1" keep their full book names.
var referencePattern = regexp.MustCompile(`^(.+?)\s(\d+):(\d+)$`)

// ParseReference parses a reference string such as "John 3:16".
// Surrounding whitespace is ignored; the book name keeps its case.
func ParseReference(s string) (Reference, error) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Reference{}, fmt.Errorf("%w: %q (expected 'Book Chapter:Verse')", ErrInvalidReferenceFormat, s)
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil || chapter < 1 {
		return Reference{}, fmt.Errorf("%w: chapter %q", ErrInvalidReferenceFormat, m[2])
	}
	verse, err := strconv.Atoi(m[3])
	if err != nil || verse < 1 {
		return Reference{}, fmt.Errorf("%w: verse %q", ErrInvalidReferenceFormat, m[3])
	}

	return Reference{Book: m[1], Chapter: chapter, Verse: verse}, nil
}

// FindVerse returns the first verse matching ref, or ErrVerseNotFound.
func FindVerse(verses []*Verse, ref Reference) (*Verse, error) {
	for _, v := range verses {
		if ref.Matches(v) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrVerseNotFound, ref)
}
