package synonyms

import "errors"

var (
	// ErrInvalidLine indicates a non-comment line without a "key:" prefix.
	ErrInvalidLine = errors.New("invalid synonym line")

	// ErrFileExists is returned by WriteDefault when the target already exists.
	ErrFileExists = errors.New("synonyms file already exists")
)
