package core

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for a verse.
// It is derived from the verse reference so the same reference always maps to the same ID.
type ID uint64

// IDFromReference generates a deterministic ID from a reference using BLAKE2b hashing.
// The book name is lowercased first, so IDs follow the case-insensitive identity of verses.
func IDFromReference(ref Reference) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(ref.normalized()))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Verse is a single verse of a loaded corpus.
// Verses are never modified after loading; every component only reads them.
type Verse struct {
	Book    string
	Chapter int
	Verse   int
	Text    string
}

// Reference returns the book/chapter/verse triple identifying the verse.
func (v *Verse) Reference() Reference {
	return Reference{Book: v.Book, Chapter: v.Chapter, Verse: v.Verse}
}

// SameReference reports whether two verses share an identity.
// Books compare case-insensitively; chapter and verse must be equal.
func (v *Verse) SameReference(other *Verse) bool {
	if v == nil || other == nil {
		return false
	}
	return v.Reference().Matches(other)
}

// String renders the verse as "Book C:V text".
func (v *Verse) String() string {
	return v.Reference().String() + " " + v.Text
}

// Reference identifies a verse by book, chapter and verse number.
type Reference struct {
	Book    string
	Chapter int
	Verse   int
}

// String formats the reference as "{book} {chapter}:{verse}", preserving the book's case.
func (r Reference) String() string {
	return r.Book + " " + strconv.Itoa(r.Chapter) + ":" + strconv.Itoa(r.Verse)
}

// Matches reports whether v is the verse this reference points at.
func (r Reference) Matches(v *Verse) bool {
	if v == nil {
		return false
	}
	return v.Chapter == r.Chapter && v.Verse == r.Verse && strings.EqualFold(v.Book, r.Book)
}

func (r Reference) normalized() string {
	return strings.ToLower(r.Book) + " " + strconv.Itoa(r.Chapter) + ":" + strconv.Itoa(r.Verse)
}

// ScoredVerse pairs a candidate verse with its similarity score.
// For Jaccard the score is a fraction in [0,1]; for n-gram matching it is a match count.
type ScoredVerse struct {
	Verse *Verse
	Score float64
}
