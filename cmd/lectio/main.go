// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/lectio"
	"github.com/poiesic/lectio/corpus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:   "lectio",
		Usage:  "Scripture lookup, keyword search and cross-reference discovery",
		Reader: in,
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a corpus file (tab-delimited text or JSON)",
				Value:   corpus.DefaultFile,
			},
			&cli.BoolFlag{
				Name:  "kjv",
				Usage: "Use the King James Version (bibles/kjv.txt)",
			},
			&cli.BoolFlag{
				Name:  "erv",
				Usage: "Use the English Revised Version (bibles/erv.txt)",
			},
			&cli.BoolFlag{
				Name:  "asv",
				Usage: "Use the American Standard Version (bibles/asv.txt)",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to a BadgerDB verse store written by the import command",
			},
			&cli.StringFlag{
				Name:  "synonyms-file",
				Usage: "Path to the synonyms configuration file",
				Value: "synonyms.txt",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: setupLogger,
		Action: interactiveCommand,
		Commands: []*cli.Command{
			{
				Name:      "lookup",
				Usage:     "Print a single verse",
				ArgsUsage: "BOOK CHAPTER:VERSE",
				Action:    lookupCommand,
			},
			{
				Name:      "search",
				Usage:     "Find verses containing any of the query words",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "synonyms",
						Aliases: []string{"s"},
						Usage:   "Include synonyms of the query words",
					},
					&cli.BoolFlag{
						Name:    "case-sensitive",
						Aliases: []string{"c"},
						Usage:   "Match letter case exactly",
					},
					&cli.StringFlag{
						Name:    "book",
						Aliases: []string{"b"},
						Usage:   "Only search books whose name contains this text",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results (0 for no limit)",
					},
				},
			},
			{
				Name:   "random",
				Usage:  "Print a random verse",
				Action: randomCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:  "seed",
						Usage: "Seed for reproducible selection (0 picks a fresh seed)",
					},
				},
			},
			{
				Name:      "xref",
				Aliases:   []string{"cross-references"},
				Usage:     "Find verses similar to a source verse",
				ArgsUsage: "BOOK CHAPTER:VERSE",
				Action:    xrefCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "similarity",
						Usage: "Minimum Jaccard similarity between 0.0 and 1.0",
						Value: 0.3,
					},
					&cli.StringFlag{
						Name:  "metric",
						Usage: `Similarity metric: "jaccard" or an n-gram size such as "2-gram"`,
					},
					&cli.BoolFlag{
						Name:  "cartesian",
						Usage: "Expand n-gram synonyms over every combination of positions",
					},
					&cli.BoolFlag{
						Name:  "use-synonyms",
						Usage: "Use synonyms when comparing verses",
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of cross-references (0 for no limit)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of scoring workers (0 for half the CPUs)",
					},
				},
			},
			{
				Name:  "synonyms",
				Usage: "Manage the synonyms configuration file",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "Write the default synonyms file",
						Action: synonymsInitCommand,
					},
					{
						Name:   "list",
						Usage:  "Print the loaded synonym groups",
						Action: synonymsListCommand,
					},
				},
			},
			{
				Name:   "import",
				Usage:  "Parse a corpus file and store it in the --db directory",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of verses written per transaction",
						Value: 500,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N verses",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum attempts for each batch",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 100 * time.Millisecond,
					},
					&cli.BoolFlag{
						Name:  "append",
						Usage: "Keep verses already in the store",
					},
				},
			},
			{
				Name:   "interactive",
				Usage:  "Start the interactive menu",
				Action: interactiveCommand,
			},
		},
	}
}

// corpusPath resolves the version shortcuts before falling back to --file.
func corpusPath(c *cli.Context) (string, error) {
	for _, v := range []string{"kjv", "erv", "asv"} {
		if c.Bool(v) {
			return corpus.VersionPath(v)
		}
	}
	return c.String("file"), nil
}

func openLibrary(c *cli.Context) (*lectio.Library, error) {
	opts := []lectio.LibraryOption{
		lectio.WithSynonymsFile(c.String("synonyms-file")),
	}

	if dir := c.String("db"); dir != "" {
		opts = append(opts, lectio.WithStore(dir))
	} else {
		path, err := corpusPath(c)
		if err != nil {
			return nil, err
		}
		opts = append(opts, lectio.WithCorpusFile(path))
	}

	lib, err := lectio.OpenLibrary(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	slog.Info("corpus loaded",
		"translation", lib.Corpus().Translation,
		"verses", lib.Corpus().Len(),
		"synonymGroups", lib.Synonyms().Len())
	return lib, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
