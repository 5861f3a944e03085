package search

import (
	"sort"
	"strings"
	"unicode/utf8"
)

type span struct {
	start, end int
}

// Highlight returns text with every occurrence of each term passed through
// mark. Overlapping occurrences are merged into a single span, and the
// original casing of the text is kept.
func Highlight(text string, terms []string, caseSensitive bool, mark func(string) string) string {
	if mark == nil || len(terms) == 0 {
		return text
	}

	haystack := text
	if !caseSensitive {
		haystack = strings.ToLower(text)
		// Lowercasing can change byte lengths for some scripts, which
		// would invalidate offsets into text.
		if len(haystack) != len(text) {
			haystack = text
			caseSensitive = true
		}
	}

	var spans []span
	for _, term := range terms {
		if !caseSensitive {
			term = strings.ToLower(term)
		}
		if term == "" {
			continue
		}
		for offset := 0; offset < len(haystack); {
			idx := strings.Index(haystack[offset:], term)
			if idx < 0 {
				break
			}
			start := offset + idx
			spans = append(spans, span{start: start, end: start + len(term)})
			_, size := utf8.DecodeRuneInString(haystack[start:])
			offset = start + size
		}
	}
	if len(spans) == 0 {
		return text
	}

	spans = mergeSpans(spans)

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(text[last:sp.start])
		b.WriteString(mark(text[sp.start:sp.end]))
		last = sp.end
	}
	b.WriteString(text[last:])
	return b.String()
}

func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start == spans[j].start {
			return spans[i].end > spans[j].end
		}
		return spans[i].start < spans[j].start
	})

	merged := spans[:1]
	for _, sp := range spans[1:] {
		cur := &merged[len(merged)-1]
		if sp.start <= cur.end {
			cur.end = max(cur.end, sp.end)
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
