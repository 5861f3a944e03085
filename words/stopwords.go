package words

// Stop words removed before comparing verses. The list covers common
// English function words and the archaic forms frequent in older
// translations.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "he": true, "in": true, "is": true, "it": true, "its": true,
	"of": true, "on": true, "that": true, "the": true, "to": true,
	"was": true, "will": true, "with": true, "shall": true, "unto": true,
	"thee": true, "thou": true, "thy": true, "ye": true,
	"hath": true, "his": true, "her": true, "him": true, "them": true,
	"they": true, "their": true, "all": true, "not": true,
	"which": true, "there": true, "this": true, "these": true, "those": true,
	"when": true, "who": true, "what": true,
	"into": true, "upon": true, "out": true, "up": true, "have": true,
	"had": true, "do": true, "did": true, "done": true,
	"said": true, "came": true, "went": true, "been": true, "were": true, "being": true,
}

// IsStopWord reports whether w (already lowercased) is a stop word.
func IsStopWord(w string) bool {
	return stopWords[w]
}

// StopWords returns a copy of the stop-word list.
func StopWords() []string {
	out := make([]string, 0, len(stopWords))
	for w := range stopWords {
		out = append(out, w)
	}
	return out
}
