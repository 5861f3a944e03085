package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lectio/core"
	"github.com/poiesic/lectio/storage"
)

// VerseRepository implements storage.VerseRepository for BadgerDB.
type VerseRepository struct {
	backend *Backend
	ordSeq  *badger.Sequence
}

var _ storage.VerseRepository = (*VerseRepository)(nil)

// NewVerseRepository creates a new VerseRepository.
func NewVerseRepository(backend *Backend) (*VerseRepository, error) {
	ordSeq, err := backend.GetSequence(verseOrdSeq)
	if err != nil {
		return nil, err
	}

	return &VerseRepository{
		backend: backend,
		ordSeq:  ordSeq,
	}, nil
}

// Close releases the ordinal sequence.
func (r *VerseRepository) Close() error {
	return r.ordSeq.Release()
}

// WithTransaction delegates to the backend. Repository calls made with
// the context passed to fn share its transaction.
func (r *VerseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutVerses stores verses after any already present.
func (r *VerseRepository) PutVerses(ctx context.Context, verses ...*core.Verse) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	return r.backend.update(ctx, func(tx *badger.Txn) error {
		for _, verse := range verses {
			if err := ctx.Err(); err != nil {
				return err
			}

			refKey := makeVerseRefKey(verse.Reference())
			ordinal, found, err := r.readOrdinal(tx, refKey)
			if err != nil {
				return err
			}

			if !found {
				ordinal, err = r.nextOrdinal()
				if err != nil {
					return err
				}
				if err := tx.Set(refKey, storage.MarshalOrdinal(ordinal)); err != nil {
					return err
				}
			}

			if err := tx.Set(makeVerseKey(ordinal), storage.MarshalVerse(verse)); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetVerse retrieves a verse by reference.
func (r *VerseRepository) GetVerse(ctx context.Context, ref core.Reference) (*core.Verse, error) {
	var result *core.Verse
	err := r.backend.view(ctx, func(tx *badger.Txn) error {
		ordinal, found, err := r.readOrdinal(tx, makeVerseRefKey(ref))
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %s", storage.ErrNotFound, ref)
		}

		result, err = r.readVerse(tx, makeVerseKey(ordinal))
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("%w: %s", storage.ErrNotFound, ref)
		}
		return nil
	})
	return result, err
}

// AllVerses returns every stored verse in insertion order.
func (r *VerseRepository) AllVerses(ctx context.Context) ([]*core.Verse, error) {
	var verses []*core.Verse
	err := r.backend.view(ctx, func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(versePrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := iter.Item().Value(func(val []byte) error {
				verse, err := storage.UnmarshalVerse(val)
				if err != nil {
					return err
				}
				verses = append(verses, verse)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verses, nil
}

// Count returns the number of stored verses.
func (r *VerseRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.view(ctx, func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(versePrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Reset removes every stored verse and the reference index.
// Inside WithTransaction the keys are deleted as part of the transaction;
// otherwise they are dropped directly.
func (r *VerseRepository) Reset(ctx context.Context) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if tx := txFromContext(ctx); tx != nil {
		return deletePrefixesTx(tx, versePrefix, verseRefPrefix)
	}
	return r.backend.DropPrefix(versePrefix, verseRefPrefix)
}

// nextOrdinal draws the next corpus position.
func (r *VerseRepository) nextOrdinal() (uint64, error) {
	next, err := r.ordSeq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if next == 0 {
		return r.ordSeq.Next()
	}
	return next, nil
}

// readOrdinal looks up the corpus position stored under a reference key.
func (r *VerseRepository) readOrdinal(tx *badger.Txn, key []byte) (uint64, bool, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	var ordinal uint64
	err = item.Value(func(val []byte) error {
		var err error
		ordinal, err = storage.UnmarshalOrdinal(val)
		return err
	})
	if err != nil {
		return 0, false, err
	}
	return ordinal, true, nil
}

// readVerse reads a verse from the database.
// Returns nil if the verse doesn't exist.
func (r *VerseRepository) readVerse(tx *badger.Txn, key []byte) (*core.Verse, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var verse *core.Verse
	err = item.Value(func(val []byte) error {
		var err error
		verse, err = storage.UnmarshalVerse(val)
		return err
	})
	return verse, err
}
