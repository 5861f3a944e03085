// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package lectio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/lectio/corpus"
	"github.com/poiesic/lectio/search"
	"github.com/poiesic/lectio/storage"
	"github.com/poiesic/lectio/storage/badger"
	"github.com/poiesic/lectio/synonyms"
	"github.com/poiesic/lectio/xref"
)

// ErrEmptyStore is returned when a verse store holds no verses.
var ErrEmptyStore = errors.New("verse store is empty; run import first")

// ErrIncompleteStore is returned when a verse store holds an import that
// did not finish.
var ErrIncompleteStore = errors.New("verse store holds an interrupted import; run import again")

// Library is a loaded corpus together with its thesaurus.
// It hands out searchers and rankers that share the same verses.
type Library struct {
	corpus   *corpus.Corpus
	synonyms synonyms.Map
	backend  *badger.Backend
	repo     storage.VerseRepository
	logger   *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	corpusFile   string
	storeDir     string
	synonyms     synonyms.Map
	synonymsFile string
	logger       *slog.Logger
}

// WithCorpusFile loads verses from a text or JSON corpus file.
// Default is corpus.DefaultFile.
func WithCorpusFile(path string) LibraryOption {
	return func(o *libraryOptions) {
		o.corpusFile = path
	}
}

// WithStore loads verses from a BadgerDB directory written by the importer.
// It takes precedence over WithCorpusFile.
func WithStore(dir string) LibraryOption {
	return func(o *libraryOptions) {
		o.storeDir = dir
	}
}

// WithSynonyms uses an already loaded thesaurus.
func WithSynonyms(m synonyms.Map) LibraryOption {
	return func(o *libraryOptions) {
		o.synonyms = m
	}
}

// WithSynonymsFile loads the thesaurus from path. A file that cannot be
// read leaves the library with an empty thesaurus, so matching falls back
// to exact words.
func WithSynonymsFile(path string) LibraryOption {
	return func(o *libraryOptions) {
		o.synonymsFile = path
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LibraryOption {
	return func(o *libraryOptions) {
		o.logger = logger
	}
}

// OpenLibrary loads a corpus and thesaurus.
func OpenLibrary(opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		corpusFile: corpus.DefaultFile,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	lib := &Library{logger: options.logger}

	if options.storeDir != "" {
		if err := lib.openStore(options.storeDir); err != nil {
			return nil, err
		}
	} else {
		c, err := corpus.Load(options.corpusFile, options.logger)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", options.corpusFile, err)
		}
		lib.corpus = c
	}

	switch {
	case options.synonyms != nil:
		lib.synonyms = options.synonyms
	case options.synonymsFile != "":
		m, err := synonyms.Load(options.synonymsFile)
		if err != nil {
			lib.logger.Warn("could not load synonyms file, using exact word matching only",
				"path", options.synonymsFile, "err", err)
			m = synonyms.Map{}
		}
		lib.synonyms = m
	default:
		lib.synonyms = synonyms.Map{}
	}

	lib.logger.Debug("library opened",
		"translation", lib.corpus.Translation,
		"verses", lib.corpus.Len(),
		"synonymGroups", lib.synonyms.Len())

	return lib, nil
}

func (l *Library) openStore(dir string) error {
	backend, err := badger.OpenBackend(dir, false)
	if err != nil {
		return err
	}

	repo, err := badger.NewVerseRepository(backend)
	if err != nil {
		backend.Close()
		return err
	}

	ctx := context.Background()
	verses, err := repo.AllVerses(ctx)
	if err == nil && len(verses) == 0 {
		err = ErrEmptyStore
	}
	if err == nil {
		if _, markerErr := repo.GetMetadata(ctx, storage.MetadataComplete); errors.Is(markerErr, storage.ErrNotFound) {
			err = ErrIncompleteStore
		} else {
			err = markerErr
		}
	}
	if err != nil {
		repo.Close()
		backend.Close()
		return err
	}

	c := &corpus.Corpus{Verses: verses}
	if v, err := repo.GetMetadata(ctx, storage.MetadataTranslation); err == nil {
		c.Translation = v
	}
	if v, err := repo.GetMetadata(ctx, storage.MetadataName); err == nil {
		c.Name = v
	}

	l.corpus = c
	l.backend = backend
	l.repo = repo
	return nil
}

// Close releases the verse store, if one was opened.
func (l *Library) Close() error {
	if l.repo == nil {
		return nil
	}

	if err := l.repo.Close(); err != nil {
		l.logger.Error("error closing verse repository", "err", err)
		return err
	}
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (l *Library) Corpus() *corpus.Corpus {
	return l.corpus
}

func (l *Library) Synonyms() synonyms.Map {
	return l.synonyms
}

func (l *Library) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithLogger(l.logger)}, opts...)
	return search.NewSearcher(l.corpus.Verses, l.synonyms, opts...)
}

// NewRanker returns a ranker over the library's verses.
// Callers must Release it when done.
func (l *Library) NewRanker(opts ...xref.Option) (*xref.Ranker, error) {
	opts = append([]xref.Option{xref.WithLogger(l.logger)}, opts...)
	return xref.NewRanker(l.corpus.Verses, l.synonyms, opts...)
}
