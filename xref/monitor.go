package xref

import (
	"github.com/poiesic/lectio/core"
	"github.com/poiesic/lectio/words"
)

// Monitor provides hooks to observe a cross-reference query.
// Hooks are called from the goroutine running FindCrossReferences.
// Every Start is followed by exactly one Finish; Finish receives nil
// when the query fails.
type Monitor interface {
	Start(query Query)
	SourceResolved(source *core.Verse, significant words.Set)
	CandidateScored(candidate *core.Verse, score float64, qualified bool)
	Finish(result *Result)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ Query)                                    {}
func (n *noopMonitor) SourceResolved(_ *core.Verse, _ words.Set)        {}
func (n *noopMonitor) CandidateScored(_ *core.Verse, _ float64, _ bool) {}
func (n *noopMonitor) Finish(_ *Result)                                 {}
