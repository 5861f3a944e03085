package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/poiesic/lectio"
	"github.com/poiesic/lectio/search"
	"github.com/poiesic/lectio/xref"
	"github.com/urfave/cli/v2"
)

type session struct {
	lib     *lectio.Library
	out     *renderer
	scanner *bufio.Scanner
	c       *cli.Context
}

func interactiveCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	s := &session{
		lib:     lib,
		out:     rendererFor(c),
		scanner: bufio.NewScanner(c.App.Reader),
		c:       c,
	}
	return s.run()
}

func (s *session) run() error {
	fmt.Fprintln(s.out.w)
	s.out.println("=== Interactive Bible Search Tool ===", ansiBrightCyan, ansiBold)

	for {
		s.printMenu()
		choice, ok := s.prompt("> ")
		if !ok {
			return s.scanner.Err()
		}

		switch choice {
		case "1":
			s.lookup()
		case "2":
			if err := s.search(); err != nil {
				return err
			}
		case "3":
			if err := s.crossReferences(); err != nil {
				return err
			}
		case "4", "q", "quit", "exit":
			fmt.Fprintln(s.out.w, "Goodbye!")
			return nil
		default:
			s.out.println("Invalid choice, please try again.", ansiRed)
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out.w)
	fmt.Fprintln(s.out.w, "--- Bible Tool Menu ---")
	fmt.Fprintln(s.out.w, "1. Lookup Verse (e.g., Genesis 1:1)")
	fmt.Fprintln(s.out.w, "2. Search Text")
	fmt.Fprintln(s.out.w, "3. Cross-References")
	fmt.Fprintln(s.out.w, "4. Exit")
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out.w, label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func (s *session) confirm(label string) bool {
	answer, _ := s.prompt(label)
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

func (s *session) lookup() {
	ref, _ := s.prompt("Enter reference (e.g., John 3:16): ")
	verse, err := s.lib.Corpus().LookupString(ref)
	if err != nil {
		reportReferenceError(s.out, err, "Verse not found.")
		return
	}
	s.out.verse(verse)
}

func (s *session) search() error {
	text, _ := s.prompt("Enter search query: ")
	if text == "" {
		s.out.println("Search query cannot be empty.", ansiYellow)
		return nil
	}
	q := search.Query{Text: text, UseSynonyms: s.confirm("Use synonyms? (y/n): ")}

	searcher, err := s.lib.NewSearcher()
	if err != nil {
		return err
	}
	result, err := searcher.Search(s.c.Context, q)
	if err != nil {
		return err
	}
	s.out.searchResult(q, result)
	return nil
}

func (s *session) crossReferences() error {
	ref, _ := s.prompt("Enter source reference (e.g., John 3:16): ")
	spec, _ := s.prompt(`Metric ("jaccard" or an n-gram size such as "2-gram") [jaccard]: `)
	metric, err := xref.ParseMetric(spec, xref.DefaultThreshold)
	if err != nil {
		s.out.println(fmt.Sprintf("Unrecognized metric %q, using jaccard.", spec), ansiYellow)
	}
	useSynonyms := s.confirm("Use synonyms? (y/n): ")

	ranker, err := s.lib.NewRanker()
	if err != nil {
		return err
	}
	defer ranker.Release()

	result, err := ranker.FindCrossReferences(s.c.Context, xref.Query{
		Reference:   ref,
		Metric:      metric,
		UseSynonyms: useSynonyms,
		Limit:       20,
	})
	if err != nil {
		return reportReferenceError(s.out, err, "Source verse not found.")
	}
	s.out.crossReferences(result)
	return nil
}
