package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/lectio/core"
	"github.com/poiesic/lectio/synonyms"
)

// Query describes a keyword search.
type Query struct {
	Text string

	// UseSynonyms expands the query words through the thesaurus.
	UseSynonyms bool

	// CaseSensitive disables lowercasing of both terms and verse text.
	CaseSensitive bool

	// Book restricts results to books whose name contains this value,
	// compared case-insensitively. Empty means every book.
	Book string

	// Limit stops the scan after this many matches; 0 or less means no limit.
	Limit int
}

// Result holds the verses matching a query.
type Result struct {
	// Terms are the strings actually searched for.
	Terms []string

	// Expanded is set when synonym expansion added terms beyond the
	// words of the query.
	Expanded bool

	// Verses are the matches in corpus order.
	Verses []*core.Verse
}

// Searcher provides keyword search over an in-memory corpus.
type Searcher struct {
	verses   []*core.Verse
	synonyms synonyms.Map
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(verses []*core.Verse, syn synonyms.Map, opts ...Option) (*Searcher, error) {
	s := &Searcher{
		verses:   verses,
		synonyms: syn,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search scans the corpus for verses containing any of the query terms.
func (s *Searcher) Search(ctx context.Context, q Query) (*Result, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, ErrEmptyQuery
	}

	queryWords := strings.Fields(q.Text)
	terms := queryWords
	if q.UseSynonyms {
		terms = s.synonyms.ExpandQuery(q.Text)
	}

	result := &Result{
		Terms:    terms,
		Expanded: q.UseSynonyms && len(terms) > len(queryWords),
		Verses:   []*core.Verse{},
	}

	needles := terms
	if !q.CaseSensitive {
		needles = make([]string, len(terms))
		for i, t := range terms {
			needles[i] = strings.ToLower(t)
		}
	}
	book := strings.ToLower(q.Book)

	for i, v := range s.verses {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if book != "" && !strings.Contains(strings.ToLower(v.Book), book) {
			continue
		}

		if !containsAny(v.Text, needles, q.CaseSensitive) {
			continue
		}

		result.Verses = append(result.Verses, v)
		if q.Limit > 0 && len(result.Verses) >= q.Limit {
			break
		}
	}

	s.logger.Debug("keyword search complete",
		"query", q.Text,
		"terms", len(terms),
		"expanded", result.Expanded,
		"matches", len(result.Verses))

	return result, nil
}

func containsAny(text string, needles []string, caseSensitive bool) bool {
	if !caseSensitive {
		text = strings.ToLower(text)
	}
	for _, n := range needles {
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}
