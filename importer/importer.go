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


package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/lectio/core"
	"github.com/poiesic/lectio/corpus"
	"github.com/poiesic/lectio/storage"
)

// Config holds configuration for an import.
type Config struct {
	// BatchSize is the number of verses written per transaction
	BatchSize int

	// ReportInterval is how often to report progress (number of verses)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for each batch
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// Replace clears previously stored verses before writing
	Replace bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      500,
		ReportInterval: 1000,
		MaxRetries:     3,
		RetryDelay:     100 * time.Millisecond,
		Replace:        true,
	}
}

// Importer writes corpora into a verse repository.
type Importer struct {
	repo     storage.VerseRepository
	config   *Config
	progress io.Writer
	logger   *slog.Logger
}

// NewImporter creates a new importer.
// progress: where to write progress output (typically os.Stderr)
func NewImporter(repo storage.VerseRepository, config *Config, progress io.Writer) (*Importer, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.BatchSize < 1 {
		config.BatchSize = 1
	}
	if config.MaxRetries < 1 {
		return nil, ErrInvalidMaxAttempts
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Importer{
		repo:     repo,
		config:   config,
		progress: progress,
		logger:   slog.Default(),
	}, nil
}

// Run imports every verse of c, returning the number written.
// Nothing is written if any verse fails validation. The store is marked
// complete (storage.MetadataComplete) only after the last batch commits.
func (im *Importer) Run(ctx context.Context, c *corpus.Corpus) (int, error) {
	if c == nil || c.Len() == 0 {
		return 0, ErrNothingToImport
	}

	var invalid []error
	for _, v := range c.Verses {
		if err := core.ValidateVerse(v); err != nil {
			ref := "<nil>"
			if v != nil {
				ref = v.Reference().String()
			}
			invalid = append(invalid, fmt.Errorf("%s: %w", ref, err))
		}
	}
	if len(invalid) > 0 {
		return 0, errors.Join(invalid...)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// The completion marker is cleared together with the new metadata, so
	// a store whose import stops partway is never taken for a finished one.
	err := im.repo.WithTransaction(ctx, func(ctx context.Context) error {
		if err := im.repo.DeleteMetadata(ctx, storage.MetadataComplete); err != nil {
			return fmt.Errorf("failed to clear completion marker: %w", err)
		}
		return im.writeMetadata(ctx, c)
	})
	if err != nil {
		return 0, err
	}

	if im.config.Replace {
		if err := im.repo.Reset(ctx); err != nil {
			return 0, fmt.Errorf("failed to clear existing verses: %w", err)
		}
	}

	total := c.Len()
	fmt.Fprintf(im.progress, "Importing %d verses (batch size: %d)\n", total, im.config.BatchSize)

	progress := NewProgress(im.progress, c.Translation, total, im.config.ReportInterval)
	defer progress.Done()

	policy := RetryPolicy{MaxAttempts: im.config.MaxRetries, BaseDelay: im.config.RetryDelay}
	for start := 0; start < total; start += im.config.BatchSize {
		end := min(start+im.config.BatchSize, total)
		batch := c.Verses[start:end]

		// Each batch commits in its own transaction so a retry rewrites
		// only the batch that failed.
		err := policy.Do(ctx, im.logger, func() error {
			return im.repo.WithTransaction(ctx, func(ctx context.Context) error {
				return im.repo.PutVerses(ctx, batch...)
			})
		})
		if err != nil {
			return progress.Written(), fmt.Errorf("failed to write verses %d-%d: %w", start+1, end, err)
		}

		progress.BatchCommitted(len(batch))
	}

	completed := time.Now().UTC().Format(time.RFC3339)
	if err := im.repo.PutMetadata(ctx, storage.MetadataComplete, completed); err != nil {
		return total, fmt.Errorf("failed to mark import complete: %w", err)
	}

	im.logger.Debug("import complete",
		"translation", c.Translation,
		"verses", total,
		"elapsed", progress.Elapsed())

	return total, nil
}

func (im *Importer) writeMetadata(ctx context.Context, c *corpus.Corpus) error {
	if c.Translation != "" {
		if err := im.repo.PutMetadata(ctx, storage.MetadataTranslation, c.Translation); err != nil {
			return fmt.Errorf("failed to write metadata: %w", err)
		}
	}
	if c.Name != "" {
		if err := im.repo.PutMetadata(ctx, storage.MetadataName, c.Name); err != nil {
			return fmt.Errorf("failed to write metadata: %w", err)
		}
	}
	return nil
}
