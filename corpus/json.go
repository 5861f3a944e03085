package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/poiesic/lectio/core"
)

// ParseJSON reads the nested book/chapter/verse JSON format.
// Verses are sorted by book name, chapter and verse since JSON objects
// carry no order.
func ParseJSON(r io.Reader) (*Corpus, error) {
	var books map[string]map[string]map[string]string
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	c := &Corpus{}
	for book, chapters := range books {
		for chapterKey, verses := range chapters {
			chapter, err := strconv.Atoi(chapterKey)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid chapter number %q in %s", ErrInvalidJSON, chapterKey, book)
			}
			for verseKey, text := range verses {
				verse, err := strconv.Atoi(verseKey)
				if err != nil {
					return nil, fmt.Errorf("%w: invalid verse number %q in %s %d", ErrInvalidJSON, verseKey, book, chapter)
				}
				c.Verses = append(c.Verses, &core.Verse{
					Book:    book,
					Chapter: chapter,
					Verse:   verse,
					Text:    strings.TrimSpace(text),
				})
			}
		}
	}

	if len(c.Verses) == 0 {
		return nil, ErrNoVerses
	}

	sort.Slice(c.Verses, func(i, j int) bool {
		a, b := c.Verses[i], c.Verses[j]
		if a.Book != b.Book {
			return a.Book < b.Book
		}
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		return a.Verse < b.Verse
	})
	return c, nil
}
