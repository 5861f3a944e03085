package xref

import (
	"math"

	"github.com/poiesic/lectio/synonyms"
	"github.com/poiesic/lectio/words"
)

// DefaultThreshold is the Jaccard threshold used when none is given
// and when a metric string cannot be parsed.
const DefaultThreshold = 0.3

// Jaccard scores verses by |A ∩ B| / |A ∪ B| over their significant words.
type Jaccard struct {
	Threshold float64
}

var _ Metric = (*Jaccard)(nil)

// NewJaccard returns a Jaccard metric with threshold clamped to [0,1].
// NaN selects DefaultThreshold.
func NewJaccard(threshold float64) *Jaccard {
	switch {
	case math.IsNaN(threshold):
		threshold = DefaultThreshold
	case threshold < 0:
		threshold = 0
	case threshold > 1:
		threshold = 1
	}
	return &Jaccard{Threshold: threshold}
}

func (j *Jaccard) Name() string {
	return "jaccard"
}

// Prepare extracts the significant words, expanded through syn when useSynonyms is set.
func (j *Jaccard) Prepare(text string, syn synonyms.Map, useSynonyms bool) *Features {
	set := words.Extract(text)
	if useSynonyms {
		set = syn.Expand(set)
	}
	return &Features{Words: set}
}

// Score returns the Jaccard similarity; the candidate qualifies at or above the threshold.
func (j *Jaccard) Score(source, candidate *Features) (float64, bool) {
	score := JaccardSimilarity(source.Words, candidate.Words)
	return score, score >= j.Threshold
}

// JaccardSimilarity returns |a ∩ b| / |a ∪ b|, or 0 when either set is empty.
func JaccardSimilarity(a, b words.Set) float64 {
	if a.Len() == 0 || b.Len() == 0 {
		return 0
	}
	union := a.UnionSize(b)
	if union == 0 {
		return 0
	}
	return float64(a.IntersectionSize(b)) / float64(union)
}
