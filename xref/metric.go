package xref

import (
	"github.com/poiesic/lectio/synonyms"
	"github.com/poiesic/lectio/words"
)

// Features is the prepared form of one verse for a metric.
// Jaccard fills Words; n-gram matching fills NGrams.
type Features struct {
	Words  words.Set
	NGrams NGramSet
}

// Metric scores a candidate verse against a source verse.
type Metric interface {
	// Name identifies the metric, e.g. "jaccard" or "2-gram".
	Name() string

	// Prepare computes the features of a verse text.
	Prepare(text string, syn synonyms.Map, useSynonyms bool) *Features

	// Score compares prepared features and reports whether the
	// candidate qualifies as a cross-reference.
	Score(source, candidate *Features) (score float64, ok bool)
}
