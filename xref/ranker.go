package xref

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lectio/core"
	"github.com/poiesic/lectio/synonyms"
	"github.com/poiesic/lectio/words"
)

// minChunkSize keeps small corpora from being split into tiny tasks.
const minChunkSize = 256

// cancelCheckInterval is how many candidates are scored between context checks.
const cancelCheckInterval = 128

// Query describes one cross-reference lookup.
type Query struct {
	// Reference is the source verse, e.g. "John 3:16".
	Reference string

	// Metric scores candidates. Use ParseMetric to build one from user input.
	Metric Metric

	// UseSynonyms expands words through the ranker's thesaurus.
	UseSynonyms bool

	// Limit caps the number of results; 0 or less means no limit.
	Limit int
}

// Result is the outcome of a cross-reference query.
type Result struct {
	Source      *core.Verse
	Metric      Metric
	UseSynonyms bool

	// Matches holds qualifying candidates, highest score first.
	Matches []core.ScoredVerse

	// NoSignificantWords is set when the source verse contains only stop
	// words or short tokens; Matches is then empty.
	NoSignificantWords bool
}

// Empty reports whether the query produced no cross-references.
func (r *Result) Empty() bool {
	return len(r.Matches) == 0
}

// Ranker finds cross-references within an in-memory corpus.
type Ranker struct {
	verses   []*core.Verse
	synonyms synonyms.Map
	pool     *ants.Pool
	poolSize int
	monitor  Monitor
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithPoolSize sets the number of workers scoring candidates.
// A size of 1 scores sequentially. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		r.poolSize = size
		return nil
	}
}

// WithMonitor installs hooks observing each query.
func WithMonitor(monitor Monitor) Option {
	return func(r *Ranker) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		r.monitor = monitor
		return nil
	}
}

// NewRanker creates a ranker over verses. The slice and the thesaurus
// are read but never modified.
func NewRanker(verses []*core.Verse, syn synonyms.Map, opts ...Option) (*Ranker, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	r := &Ranker{
		verses:   verses,
		synonyms: syn,
		poolSize: poolSize,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.poolSize > 1 {
		pool, err := ants.NewPool(r.poolSize)
		if err != nil {
			return nil, err
		}
		r.pool = pool
	}

	return r, nil
}

// Release releases the worker pool.
// The ranker should not be used after calling Release.
func (r *Ranker) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// FindCrossReferences ranks every other verse in the corpus against the
// verse named by q.Reference.
//
// It fails with core.ErrInvalidReferenceFormat or core.ErrVerseNotFound.
// A source verse without significant words is not an error: the result
// has NoSignificantWords set and no matches.
func (r *Ranker) FindCrossReferences(ctx context.Context, q Query) (*Result, error) {
	if q.Metric == nil {
		return nil, ErrMetricRequired
	}

	r.monitor.Start(q)
	result, err := r.rank(ctx, q)
	r.monitor.Finish(result)
	return result, err
}

func (r *Ranker) rank(ctx context.Context, q Query) (*Result, error) {
	ref, err := core.ParseReference(q.Reference)
	if err != nil {
		return nil, err
	}

	source, err := core.FindVerse(r.verses, ref)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Source:      source,
		Metric:      q.Metric,
		UseSynonyms: q.UseSynonyms,
		Matches:     []core.ScoredVerse{},
	}

	significant := words.Extract(source.Text)
	r.monitor.SourceResolved(source, significant)
	if significant.Len() == 0 {
		r.logger.Debug("source verse has no significant words", "reference", source.Reference().String())
		result.NoSignificantWords = true
		return result, nil
	}

	sourceFeatures := q.Metric.Prepare(source.Text, r.synonyms, q.UseSynonyms)

	scores, err := r.scoreAll(ctx, q, source, sourceFeatures)
	if err != nil {
		return nil, err
	}

	for i, s := range scores {
		if s.skip {
			continue
		}
		r.monitor.CandidateScored(r.verses[i], s.score, s.ok)
		if s.ok {
			result.Matches = append(result.Matches, core.ScoredVerse{Verse: r.verses[i], Score: s.score})
		}
	}

	// Stable: equal scores keep corpus order.
	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].Score > result.Matches[j].Score
	})
	if q.Limit > 0 && len(result.Matches) > q.Limit {
		result.Matches = result.Matches[:q.Limit]
	}

	r.logger.Debug("cross-references ranked",
		"reference", source.Reference().String(),
		"metric", q.Metric.Name(),
		"synonyms", q.UseSynonyms,
		"candidates", len(r.verses)-1,
		"matches", len(result.Matches))

	return result, nil
}

type candidateScore struct {
	score float64
	ok    bool
	skip  bool
}

// scoreAll scores every verse against the source, indexed by corpus position.
func (r *Ranker) scoreAll(ctx context.Context, q Query, source *core.Verse, sourceFeatures *Features) ([]candidateScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scores := make([]candidateScore, len(r.verses))
	scoreRange := func(start, end int) error {
		for i := start; i < end; i++ {
			if (i-start)%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			v := r.verses[i]
			if v.SameReference(source) {
				scores[i].skip = true
				continue
			}
			features := q.Metric.Prepare(v.Text, r.synonyms, q.UseSynonyms)
			scores[i].score, scores[i].ok = q.Metric.Score(sourceFeatures, features)
		}
		return ctx.Err()
	}

	if r.pool == nil || len(r.verses) <= minChunkSize {
		if err := scoreRange(0, len(r.verses)); err != nil {
			return nil, err
		}
		return scores, nil
	}

	chunk := (len(r.verses) + r.poolSize - 1) / r.poolSize
	if chunk < minChunkSize {
		chunk = minChunkSize
	}

	var wg sync.WaitGroup
	for start := 0; start < len(r.verses); start += chunk {
		end := min(start+chunk, len(r.verses))
		wg.Add(1)
		task := func() {
			defer wg.Done()
			// A canceled chunk stops early; the check after Wait reports it.
			_ = scoreRange(start, end)
		}
		if err := r.pool.Submit(task); err != nil {
			r.logger.Warn("worker pool rejected task, scoring inline", "err", err)
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}
