package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/poiesic/lectio/core"
	"github.com/poiesic/lectio/corpus"
	"github.com/poiesic/lectio/importer"
	"github.com/poiesic/lectio/search"
	"github.com/poiesic/lectio/storage/badger"
	"github.com/poiesic/lectio/synonyms"
	"github.com/poiesic/lectio/xref"
	"github.com/urfave/cli/v2"
)

var errReferenceRequired = errors.New(`a reference such as "John 3:16" is required`)

func rendererFor(c *cli.Context) *renderer {
	return newRenderer(c.App.Writer, !c.Bool("no-color"))
}

// reportReferenceError prints the user-facing message for lookup failures
// and returns any error it does not recognize.
func reportReferenceError(out *renderer, err error, notFound string) error {
	switch {
	case errors.Is(err, core.ErrInvalidReferenceFormat):
		out.println("Invalid reference format. Please use 'Book Chapter:Verse'.", ansiRed)
	case errors.Is(err, core.ErrVerseNotFound):
		out.println(notFound, ansiRed)
	default:
		return err
	}
	return nil
}

func lookupCommand(c *cli.Context) error {
	ref := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(ref) == "" {
		return errReferenceRequired
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	out := rendererFor(c)
	verse, err := lib.Corpus().LookupString(ref)
	if err != nil {
		return reportReferenceError(out, err, "Verse not found.")
	}
	out.verse(verse)
	return nil
}

func searchCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	searcher, err := lib.NewSearcher()
	if err != nil {
		return err
	}

	out := rendererFor(c)
	q := search.Query{
		Text:          strings.Join(c.Args().Slice(), " "),
		UseSynonyms:   c.Bool("synonyms"),
		CaseSensitive: c.Bool("case-sensitive"),
		Book:          c.String("book"),
		Limit:         c.Int("limit"),
	}
	result, err := searcher.Search(c.Context, q)
	if errors.Is(err, search.ErrEmptyQuery) {
		out.println("Search query cannot be empty.", ansiYellow)
		return nil
	}
	if err != nil {
		return err
	}

	out.searchResult(q, result)
	return nil
}

func randomCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	seed := c.Uint64("seed")
	if seed == 0 {
		seed = rand.Uint64()
	}

	verse, err := lib.Corpus().Random(rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return err
	}
	rendererFor(c).verse(verse)
	return nil
}

func xrefCommand(c *cli.Context) error {
	ref := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(ref) == "" {
		return errReferenceRequired
	}

	metric, err := xref.ParseMetric(c.String("metric"), c.Float64("similarity"))
	if err != nil {
		slog.Warn("invalid similarity metric, using default", "err", err)
	}
	if ngram, ok := metric.(*xref.NGramMetric); ok && c.Bool("cartesian") {
		ngram.Expansion = xref.ExpansionCartesian
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	var opts []xref.Option
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, xref.WithPoolSize(workers))
	}
	ranker, err := lib.NewRanker(opts...)
	if err != nil {
		return err
	}
	defer ranker.Release()

	out := rendererFor(c)
	result, err := ranker.FindCrossReferences(c.Context, xref.Query{
		Reference:   ref,
		Metric:      metric,
		UseSynonyms: c.Bool("use-synonyms"),
		Limit:       c.Int("limit"),
	})
	if err != nil {
		return reportReferenceError(out, err, "Source verse not found.")
	}

	out.crossReferences(result)
	return nil
}

func synonymsInitCommand(c *cli.Context) error {
	path := c.String("synonyms-file")
	if err := synonyms.WriteDefault(path); err != nil {
		return fmt.Errorf("error creating synonyms file: %w", err)
	}

	out := rendererFor(c)
	out.println("Created default synonyms file: "+path, ansiGreen)
	fmt.Fprintln(out.w, "You can now edit this file to customize your synonyms.")
	return nil
}

func synonymsListCommand(c *cli.Context) error {
	path := c.String("synonyms-file")
	m, err := synonyms.Load(path)
	if err != nil {
		return fmt.Errorf("could not load synonyms file: %w", err)
	}

	keys := make([]string, 0, m.Len())
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := rendererFor(c)
	for _, k := range keys {
		fmt.Fprintf(out.w, "%s: %s\n", out.paint(k, ansiCyan), strings.Join(m[k], ", "))
	}
	fmt.Fprintf(out.w, "\n%d synonym groups in %s\n", m.Len(), path)
	return nil
}

func importCommand(c *cli.Context) error {
	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required: pass --db")
	}

	path, err := corpusPath(c)
	if err != nil {
		return err
	}

	config := &importer.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		Replace:        !c.Bool("append"),
	}

	// Validate config
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	source, err := corpus.Load(path, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewVerseRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	im, err := importer.NewImporter(repo, config, c.App.ErrWriter)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.ErrWriter, "Corpus: %s\n", path)
	fmt.Fprintf(c.App.ErrWriter, "Database: %s\n", dbPath)
	fmt.Fprintln(c.App.ErrWriter)

	written, err := im.Run(c.Context, source)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	rendererFor(c).println(fmt.Sprintf("Imported %d verses into %s", written, dbPath), ansiGreen)
	return nil
}
