package corpus

import (
	"bufio"
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a corpus file, choosing the format from the extension or,
// failing that, from the first non-space byte.
func Load(path string, logger *slog.Logger) (*Corpus, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	isJSON := strings.EqualFold(filepath.Ext(path), ".json")
	if !isJSON {
		head, _ := br.Peek(512)
		trimmed := bytes.TrimLeft(head, " \t\r\n\ufeff")
		isJSON = len(trimmed) > 0 && trimmed[0] == '{'
	}

	var c *Corpus
	if isJSON {
		c, err = ParseJSON(br)
	} else {
		c, err = ParseText(br, logger)
	}
	if err != nil {
		return nil, err
	}

	if c.Translation == "" {
		c.Translation = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	logger.Debug("corpus loaded", "path", path, "translation", c.Translation, "verses", c.Len())
	return c, nil
}
