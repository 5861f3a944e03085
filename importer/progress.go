package importer

import (
	"fmt"
	"io"
	"time"
)

// Progress prints a running status line while batches are committed.
// A line is written once at least interval verses have been committed
// since the previous line, and once more by Done.
type Progress struct {
	w        io.Writer
	label    string
	total    int
	interval int

	written  int
	batches  int
	reported int
	start    time.Time
}

// NewProgress starts the clock for an import of total verses.
// label names the corpus in each line, usually its translation.
func NewProgress(w io.Writer, label string, total, interval int) *Progress {
	if w == nil {
		w = io.Discard
	}
	if label == "" {
		label = "corpus"
	}
	return &Progress{
		w:        w,
		label:    label,
		total:    total,
		interval: max(interval, 1),
		start:    time.Now(),
	}
}

// BatchCommitted records a batch of n verses written to the store.
func (p *Progress) BatchCommitted(n int) {
	p.batches++
	p.written = min(p.written+n, p.total)
	if p.written-p.reported >= p.interval {
		p.line()
		p.reported = p.written
	}
}

// Written returns the number of verses committed so far.
func (p *Progress) Written() int {
	return p.written
}

// Elapsed returns the time since the import started.
func (p *Progress) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Done prints the final line, which reports what was actually written
// when the import stopped early.
func (p *Progress) Done() {
	p.line()
	fmt.Fprintln(p.w)
}

func (p *Progress) line() {
	rate := 0.0
	if secs := p.Elapsed().Seconds(); secs > 0 {
		rate = float64(p.written) / secs
	}
	pct := 0.0
	if p.total > 0 {
		pct = float64(p.written) / float64(p.total) * 100
	}
	fmt.Fprintf(p.w, "\r%s: %d/%d verses (%.1f%%) in %d batches, %.0f verses/s",
		p.label, p.written, p.total, pct, p.batches, rate)
}
