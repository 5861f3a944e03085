package corpus

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/poiesic/lectio/core"
)

var linePattern = regexp.MustCompile(`^(.+?)\s(\d+):(\d+)\t(.+)$`)

// maxLineSize bounds a single verse line.
const maxLineSize = 1024 * 1024

// ParseText reads the tab-delimited format. Lines that do not look like a
// verse are skipped.
func ParseText(r io.Reader, logger *slog.Logger) (*Corpus, error) {
	if logger == nil {
		logger = slog.Default()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	c := &Corpus{}
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch lineNo {
		case 1:
			c.Translation = strings.TrimSpace(line)
			continue
		case 2:
			c.Name = strings.TrimSpace(line)
			continue
		}

		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			skipped++
			logger.Debug("skipping malformed corpus line", "line", lineNo)
			continue
		}
		chapter, err := strconv.Atoi(m[2])
		if err != nil {
			skipped++
			continue
		}
		verse, err := strconv.Atoi(m[3])
		if err != nil {
			skipped++
			continue
		}

		c.Verses = append(c.Verses, &core.Verse{
			Book:    m[1],
			Chapter: chapter,
			Verse:   verse,
			Text:    m[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	if len(c.Verses) == 0 {
		return nil, ErrNoVerses
	}
	if skipped > 0 {
		logger.Debug("corpus lines skipped", "count", skipped)
	}
	return c, nil
}
