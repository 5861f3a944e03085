package badger

import (
	"encoding/binary"

	"github.com/poiesic/lectio/core"
)

// Key prefixes for different data types
const (
	versePrefix    = "verse:"
	verseRefPrefix = "verseref:"
	verseOrdSeq    = "verseseq"
	metadataPrefix = "meta:"
)

// makeVerseKey generates a key for a verse by its corpus position.
// Format: prefix:ordinal
func makeVerseKey(ordinal uint64) []byte {
	prefixBytes := []byte(versePrefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort matches corpus order
	binary.BigEndian.PutUint64(buf[offset:], ordinal)
	return buf
}

// makeVerseRefKey generates a key for the reference index.
// Format: prefix:id
func makeVerseRefKey(ref core.Reference) []byte {
	prefixBytes := []byte(verseRefPrefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromReference(ref)))
	return buf
}

// makeMetadataKey generates a key for a named metadata value.
func makeMetadataKey(name string) []byte {
	return []byte(metadataPrefix + name)
}
