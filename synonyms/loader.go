package synonyms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// Parse reads a thesaurus in the line format
//
//	# comment
//	love: love, loved, beloved, charity
//
// Keys and values are trimmed and lowercased. Lines whose value list is
// empty are dropped. When a key is missing from its own list it is added,
// so every group contains its key.
func Parse(r io.Reader) (Map, error) {
	m := make(Map)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, values, ok := strings.Cut(line, ":")
		if !ok {
			slog.Debug("skipping synonym line without key", "line", lineNo)
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("%w: line %d has an empty key", ErrInvalidLine, lineNo)
		}

		var group []string
		seen := make(map[string]bool)
		for _, v := range strings.Split(values, ",") {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			group = append(group, v)
		}
		if len(group) == 0 {
			continue
		}
		if !seen[key] {
			group = append([]string{key}, group...)
		}
		m[key] = group
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads a thesaurus file.
func Load(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteDefault writes the default thesaurus to path.
// It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(DefaultConfig), 0644)
}

// Default returns the parsed default thesaurus.
func Default() Map {
	m, err := Parse(strings.NewReader(DefaultConfig))
	if err != nil {
		panic(err)
	}
	return m
}
