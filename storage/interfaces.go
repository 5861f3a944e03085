package storage

import (
	"context"

	"github.com/poiesic/lectio/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// Repository calls made with the context passed to fn join the
	// transaction. If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// VerseRepository stores a corpus of verses in insertion order.
type VerseRepository interface {
	Repository

	// PutVerses stores verses after any already present.
	// A verse whose reference is already stored replaces the old text
	// and keeps its original position.
	PutVerses(ctx context.Context, verses ...*core.Verse) error

	// GetVerse retrieves a verse by reference. Book names compare
	// case-insensitively.
	// Returns ErrNotFound if the verse doesn't exist.
	GetVerse(ctx context.Context, ref core.Reference) (*core.Verse, error)

	// AllVerses returns every stored verse in insertion order.
	AllVerses(ctx context.Context) ([]*core.Verse, error)

	// Count returns the number of stored verses.
	Count(ctx context.Context) (int, error)

	// Reset removes every stored verse. Metadata is kept.
	Reset(ctx context.Context) error

	// PutMetadata stores a named string value, such as the translation name.
	PutMetadata(ctx context.Context, key, value string) error

	// DeleteMetadata removes a named value if present.
	DeleteMetadata(ctx context.Context, key string) error

	// GetMetadata retrieves a named value.
	// Returns ErrNotFound if the key was never stored.
	GetMetadata(ctx context.Context, key string) (string, error)
}

// Metadata keys written by the importer.
const (
	MetadataTranslation = "translation"
	MetadataName        = "name"

	// MetadataComplete is set once every verse of an import is written.
	// A store without it holds an interrupted import.
	MetadataComplete = "complete"
)
