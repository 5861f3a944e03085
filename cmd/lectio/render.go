package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/poiesic/lectio/core"
	"github.com/poiesic/lectio/search"
	"github.com/poiesic/lectio/xref"
)

// ANSI SGR sequences.
const (
	ansiReset       = "\x1b[0m"
	ansiBold        = "\x1b[1m"
	ansiRed         = "\x1b[31m"
	ansiGreen       = "\x1b[32m"
	ansiYellow      = "\x1b[33m"
	ansiCyan        = "\x1b[36m"
	ansiBrightBlack = "\x1b[90m"
	ansiBrightGreen = "\x1b[92m"
	ansiBrightCyan  = "\x1b[96m"
	ansiHighlight   = "\x1b[30;43m"
)

type renderer struct {
	w     io.Writer
	color bool
}

func newRenderer(w io.Writer, color bool) *renderer {
	return &renderer{w: w, color: color}
}

func (r *renderer) paint(s string, codes ...string) string {
	if !r.color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ansiReset
}

func (r *renderer) println(s string, codes ...string) {
	fmt.Fprintln(r.w, r.paint(s, codes...))
}

func (r *renderer) reference(v *core.Verse) string {
	return r.paint(v.Book, ansiCyan) + " " +
		r.paint(strconv.Itoa(v.Chapter), ansiCyan) + ":" +
		r.paint(strconv.Itoa(v.Verse), ansiCyan)
}

func (r *renderer) verse(v *core.Verse) {
	fmt.Fprintf(r.w, "%s %s\n", r.reference(v), v.Text)
}

func (r *renderer) searchResult(q search.Query, result *search.Result) {
	switch {
	case result.Expanded:
		fmt.Fprintf(r.w, "Searching for '%s' (with synonyms: %s)...\n", q.Text, strings.Join(result.Terms, ", "))
	case q.UseSynonyms:
		fmt.Fprintf(r.w, "Searching for '%s' (no synonyms defined for these terms)...\n", q.Text)
	default:
		fmt.Fprintf(r.w, "Searching for '%s'...\n", q.Text)
	}

	if len(result.Verses) == 0 {
		r.println("No results found.", ansiRed)
		return
	}

	fmt.Fprintln(r.w)
	var mark func(string) string
	if r.color {
		mark = func(s string) string { return r.paint(s, ansiHighlight) }
	}
	for _, v := range result.Verses {
		fmt.Fprintf(r.w, "%s %s\n", r.reference(v), search.Highlight(v.Text, result.Terms, q.CaseSensitive, mark))
	}
	fmt.Fprintf(r.w, "\nFound %d matching verses.\n", len(result.Verses))
}

func (r *renderer) crossReferences(result *xref.Result) {
	r.println("Source Verse:", ansiBrightGreen, ansiBold)
	r.verse(result.Source)
	fmt.Fprintln(r.w)

	if result.NoSignificantWords {
		r.println("No significant words found in source verse.", ansiYellow)
		return
	}

	jaccard, isJaccard := result.Metric.(*xref.Jaccard)

	if result.Empty() {
		if isJaccard {
			r.println(fmt.Sprintf("No cross-references found with similarity >= %.1f%%", jaccard.Threshold*100), ansiRed)
			fmt.Fprintf(r.w, "Try lowering the --similarity threshold (default: %.1f)\n", xref.DefaultThreshold)
		} else {
			r.println(fmt.Sprintf("No cross-references found sharing a %s", result.Metric.Name()), ansiRed)
			fmt.Fprintln(r.w, "Try a smaller n-gram size with --metric, or add --use-synonyms")
		}
		return
	}

	if isJaccard {
		r.println(fmt.Sprintf("Found %d cross-reference(s) with similarity >= %.1f%%:",
			len(result.Matches), jaccard.Threshold*100), ansiGreen, ansiBold)
	} else {
		r.println(fmt.Sprintf("Found %d cross-reference(s) sharing a %s:",
			len(result.Matches), result.Metric.Name()), ansiGreen, ansiBold)
	}
	if result.UseSynonyms {
		r.println("(Using synonym matching)", ansiBrightBlack)
	}
	fmt.Fprintln(r.w)

	for _, m := range result.Matches {
		var score string
		if isJaccard {
			score = fmt.Sprintf("%.1f%%", m.Score*100)
		} else {
			score = fmt.Sprintf("%d match(es)", int(m.Score))
		}
		fmt.Fprintf(r.w, "%s - %s %s\n\n", r.paint(score, ansiYellow, ansiBold), r.reference(m.Verse), m.Verse.Text)
	}
}
