package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/mus-format/mus-go/ord"
	"github.com/poiesic/lectio/storage"
)

// PutMetadata stores a named string value.
func (r *VerseRepository) PutMetadata(ctx context.Context, key, value string) error {
	return r.backend.update(ctx, func(tx *badger.Txn) error {
		buf := make([]byte, ord.String.Size(value))
		ord.String.Marshal(value, buf)
		return tx.Set(makeMetadataKey(key), buf)
	})
}

// DeleteMetadata removes a named value. Deleting a missing key is not an error.
func (r *VerseRepository) DeleteMetadata(ctx context.Context, key string) error {
	return r.backend.update(ctx, func(tx *badger.Txn) error {
		return tx.Delete(makeMetadataKey(key))
	})
}

// GetMetadata retrieves a named value.
// Returns storage.ErrNotFound if no value exists.
func (r *VerseRepository) GetMetadata(ctx context.Context, key string) (string, error) {
	var value string
	err := r.backend.view(ctx, func(tx *badger.Txn) error {
		item, err := tx.Get(makeMetadataKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: metadata %q", storage.ErrNotFound, key)
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			value, _, unmarshalErr = ord.String.Unmarshal(val)
			if unmarshalErr != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, unmarshalErr)
			}
			return nil
		})
	})

	return value, err
}
