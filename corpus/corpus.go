package corpus

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/poiesic/lectio/core"
)

// DefaultFile is the corpus used when no file or version is selected.
const DefaultFile = "bibles/bible.txt"

var versions = map[string]string{
	"kjv": "King James Version",
	"erv": "English Revised Version",
	"asv": "American Standard Version",
}

// VersionPath returns the bundled file for a translation shortcut such as "kjv".
func VersionPath(version string) (string, error) {
	v := strings.ToLower(version)
	if _, ok := versions[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVersion, version)
	}
	return filepath.Join("bibles", v+".txt"), nil
}

// Corpus is an ordered, in-memory list of verses.
type Corpus struct {
	// Translation is the short identifier from the file header, e.g. "KJV".
	Translation string

	// Name is the full translation name from the file header.
	Name string

	Verses []*core.Verse
}

// Len returns the number of verses.
func (c *Corpus) Len() int {
	return len(c.Verses)
}

// Lookup returns the verse ref points at.
func (c *Corpus) Lookup(ref core.Reference) (*core.Verse, error) {
	return core.FindVerse(c.Verses, ref)
}

// LookupString parses s as "Book Chapter:Verse" and looks it up.
func (c *Corpus) LookupString(s string) (*core.Verse, error) {
	ref, err := core.ParseReference(s)
	if err != nil {
		return nil, err
	}
	return c.Lookup(ref)
}

// Random picks a verse uniformly using r.
func (c *Corpus) Random(r *rand.Rand) (*core.Verse, error) {
	if len(c.Verses) == 0 {
		return nil, ErrEmptyCorpus
	}
	return c.Verses[r.IntN(len(c.Verses))], nil
}

// Books returns book names in order of first appearance.
func (c *Corpus) Books() []string {
	seen := make(map[string]bool)
	var books []string
	for _, v := range c.Verses {
		if !seen[v.Book] {
			seen[v.Book] = true
			books = append(books, v.Book)
		}
	}
	return books
}
