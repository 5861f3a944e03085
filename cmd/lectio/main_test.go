package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/lectio/synonyms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testCorpus = "TST\n" +
	"Test Translation\n" +
	"John 3:16\tFor God so loved the world\n" +
	"John 3:17\tFor God sent not his Son into the world\n" +
	"Psalms 23:1\tThe LORD is my shepherd; I shall not want.\n"

func writeCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bible.txt")
	require.NoError(t, os.WriteFile(path, []byte(testCorpus), 0o644))
	return path
}

// run executes the app with the given arguments after the global
// --no-color and --file flags and returns what it wrote to stdout.
func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(strings.NewReader(input), &out)
	app.ErrWriter = &errOut

	argv := append([]string{"lectio", "--no-color",
		"--synonyms-file", filepath.Join(t.TempDir(), "synonyms.txt"),
		"--file", writeCorpus(t)}, args...)
	err := app.Run(argv)
	return out.String(), err
}

func findFlag(flags []cli.Flag, name string) cli.Flag {
	for _, f := range flags {
		for _, n := range f.Names() {
			if n == name {
				return f
			}
		}
	}
	return nil
}

func findCommand(app *cli.App, name string) *cli.Command {
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func TestGlobalFlags(t *testing.T) {
	app := newApp(strings.NewReader(""), &bytes.Buffer{})

	t.Run("file defaults to bundled corpus", func(t *testing.T) {
		f, ok := findFlag(app.Flags, "file").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "bibles/bible.txt", f.Value)
	})

	t.Run("log level defaults to info", func(t *testing.T) {
		f, ok := findFlag(app.Flags, "l").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "info", f.Value)
	})

	t.Run("synonyms file default", func(t *testing.T) {
		f, ok := findFlag(app.Flags, "synonyms-file").(*cli.StringFlag)
		require.True(t, ok)
		assert.Equal(t, "synonyms.txt", f.Value)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := run(t, "", "--log-level", "loud", "lookup", "John", "3:16")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestXrefCommandFlags(t *testing.T) {
	cmd := findCommand(newApp(strings.NewReader(""), &bytes.Buffer{}), "xref")
	require.NotNil(t, cmd)
	assert.Contains(t, cmd.Aliases, "cross-references")

	similarity, ok := findFlag(cmd.Flags, "similarity").(*cli.Float64Flag)
	require.True(t, ok)
	assert.Equal(t, 0.3, similarity.Value)

	assert.NotNil(t, findFlag(cmd.Flags, "metric"))
	assert.NotNil(t, findFlag(cmd.Flags, "cartesian"))
	assert.NotNil(t, findFlag(cmd.Flags, "use-synonyms"))
}

func TestLookupCommand(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		out, err := run(t, "", "lookup", "john", "3:16")
		require.NoError(t, err)
		assert.Equal(t, "John 3:16 For God so loved the world\n", out)
	})

	t.Run("not found", func(t *testing.T) {
		out, err := run(t, "", "lookup", "John", "9:9")
		require.NoError(t, err)
		assert.Equal(t, "Verse not found.\n", out)
	})

	t.Run("invalid format", func(t *testing.T) {
		out, err := run(t, "", "lookup", "John")
		require.NoError(t, err)
		assert.Contains(t, out, "Invalid reference format")
	})

	t.Run("missing reference", func(t *testing.T) {
		_, err := run(t, "", "lookup")
		assert.ErrorIs(t, err, errReferenceRequired)
	})

	t.Run("missing corpus", func(t *testing.T) {
		var out bytes.Buffer
		app := newApp(strings.NewReader(""), &out)
		err := app.Run([]string{"lectio", "--file", filepath.Join(t.TempDir(), "none.txt"), "lookup", "John", "3:16"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load corpus")
	})
}

func TestSearchCommand(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		out, err := run(t, "", "search", "world")
		require.NoError(t, err)
		assert.Contains(t, out, "Searching for 'world'...")
		assert.Contains(t, out, "John 3:16 For God so loved the world")
		assert.Contains(t, out, "John 3:17 For God sent not his Son into the world")
		assert.Contains(t, out, "Found 2 matching verses.")
	})

	t.Run("no results", func(t *testing.T) {
		out, err := run(t, "", "search", "pharaoh")
		require.NoError(t, err)
		assert.Contains(t, out, "No results found.")
	})

	t.Run("limit", func(t *testing.T) {
		out, err := run(t, "", "search", "--limit", "1", "world")
		require.NoError(t, err)
		assert.Contains(t, out, "Found 1 matching verses.")
	})

	t.Run("book filter", func(t *testing.T) {
		out, err := run(t, "", "search", "--book", "psalm", "the")
		require.NoError(t, err)
		assert.Contains(t, out, "Psalms 23:1")
		assert.NotContains(t, out, "John 3:16")
	})

	t.Run("empty query", func(t *testing.T) {
		out, err := run(t, "", "search")
		require.NoError(t, err)
		assert.Contains(t, out, "Search query cannot be empty.")
	})
}

func TestRandomCommand(t *testing.T) {
	first, err := run(t, "", "random", "--seed", "42")
	require.NoError(t, err)
	second, err := run(t, "", "random", "--seed", "42")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "John ") || strings.HasPrefix(first, "Psalms "), first)
}

func TestXrefCommand(t *testing.T) {
	t.Run("jaccard", func(t *testing.T) {
		out, err := run(t, "", "xref", "John", "3:16")
		require.NoError(t, err)
		assert.Contains(t, out, "Source Verse:\nJohn 3:16 For God so loved the world\n")
		assert.Contains(t, out, "Found 1 cross-reference(s) with similarity >= 30.0%:")
		assert.Contains(t, out, "40.0% - John 3:17 For God sent not his Son into the world")
	})

	t.Run("threshold too high", func(t *testing.T) {
		out, err := run(t, "", "xref", "--similarity", "0.9", "John", "3:16")
		require.NoError(t, err)
		assert.Contains(t, out, "No cross-references found with similarity >= 90.0%")
		assert.Contains(t, out, "Try lowering the --similarity threshold (default: 0.3)")
	})

	t.Run("ngram", func(t *testing.T) {
		out, err := run(t, "", "xref", "--metric", "2-gram", "John", "3:16")
		require.NoError(t, err)
		assert.Contains(t, out, "No cross-references found sharing a 2-gram")
	})

	t.Run("invalid metric falls back to jaccard", func(t *testing.T) {
		out, err := run(t, "", "xref", "--metric", "bogus", "John", "3:16")
		require.NoError(t, err)
		assert.Contains(t, out, "with similarity >= 30.0%")
	})

	t.Run("unknown source", func(t *testing.T) {
		out, err := run(t, "", "xref", "Jude", "1:99")
		require.NoError(t, err)
		assert.Equal(t, "Source verse not found.\n", out)
	})
}

func TestSynonymsCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synonyms.txt")
	args := func(rest ...string) []string {
		return append([]string{"lectio", "--no-color", "--synonyms-file", path, "synonyms"}, rest...)
	}

	var out bytes.Buffer
	require.NoError(t, newApp(strings.NewReader(""), &out).Run(args("init")))
	assert.Contains(t, out.String(), "Created default synonyms file: "+path)
	assert.FileExists(t, path)

	err := newApp(strings.NewReader(""), &bytes.Buffer{}).Run(args("init"))
	assert.ErrorIs(t, err, synonyms.ErrFileExists)

	out.Reset()
	require.NoError(t, newApp(strings.NewReader(""), &out).Run(args("list")))
	assert.Contains(t, out.String(), "synonym groups in "+path)
}

func TestImportCommand(t *testing.T) {
	corpusFile := writeCorpus(t)
	dbDir := filepath.Join(t.TempDir(), "db")

	t.Run("requires db", func(t *testing.T) {
		var out bytes.Buffer
		app := newApp(strings.NewReader(""), &out)
		app.ErrWriter = &bytes.Buffer{}
		err := app.Run([]string{"lectio", "--file", corpusFile, "import"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--db")
	})

	t.Run("import then query the store", func(t *testing.T) {
		var out, progress bytes.Buffer
		app := newApp(strings.NewReader(""), &out)
		app.ErrWriter = &progress
		err := app.Run([]string{"lectio", "--no-color", "--file", corpusFile, "--db", dbDir, "import", "--batch-size", "2"})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Imported 3 verses into "+dbDir)
		assert.Contains(t, progress.String(), "Importing 3 verses (batch size: 2)")

		out.Reset()
		app = newApp(strings.NewReader(""), &out)
		err = app.Run([]string{"lectio", "--no-color", "--db", dbDir, "lookup", "Psalms", "23:1"})
		require.NoError(t, err)
		assert.Equal(t, "Psalms 23:1 The LORD is my shepherd; I shall not want.\n", out.String())
	})

	t.Run("rejects zero batch size", func(t *testing.T) {
		app := newApp(strings.NewReader(""), &bytes.Buffer{})
		app.ErrWriter = &bytes.Buffer{}
		err := app.Run([]string{"lectio", "--file", corpusFile, "--db", t.TempDir(), "import", "--batch-size", "0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch-size")
	})
}

func TestInteractiveCommand(t *testing.T) {
	t.Run("lookup, bad choice, exit", func(t *testing.T) {
		out, err := run(t, "1\nJohn 3:16\n9\n4\n", "interactive")
		require.NoError(t, err)
		assert.Contains(t, out, "1. Lookup Verse")
		assert.Contains(t, out, "John 3:16 For God so loved the world")
		assert.Contains(t, out, "Invalid choice, please try again.")
		assert.Contains(t, out, "Goodbye!")
	})

	t.Run("search", func(t *testing.T) {
		out, err := run(t, "2\nshepherd\nn\n4\n", "interactive")
		require.NoError(t, err)
		assert.Contains(t, out, "Psalms 23:1")
		assert.Contains(t, out, "Found 1 matching verses.")
	})

	t.Run("cross references", func(t *testing.T) {
		out, err := run(t, "3\nJohn 3:16\n\nn\n4\n", "interactive")
		require.NoError(t, err)
		assert.Contains(t, out, "40.0% - John 3:17")
	})

	t.Run("end of input", func(t *testing.T) {
		out, err := run(t, "", "interactive")
		require.NoError(t, err)
		assert.NotContains(t, out, "Goodbye!")
	})

	t.Run("default action", func(t *testing.T) {
		out, err := run(t, "4\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Goodbye!")
	})
}
