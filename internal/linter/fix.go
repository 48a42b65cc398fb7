package linter

import (
	"sort"

	"github.com/oxc-go/oxc/internal/logger"
)

type proposedFix struct {
	span        logger.Range
	replacement string
}

// fixCollector gathers every fix proposed during one run and resolves
// conflicts: fixes are sorted by start offset, and a fix that overlaps one
// already accepted is dropped — non-overlapping, earliest wins.
type fixCollector struct {
	proposed []proposedFix
}

func (c *fixCollector) propose(f proposedFix) {
	c.proposed = append(c.proposed, f)
}

// Resolve returns the accepted, pairwise-disjoint subset of proposed fixes
// in source order.
func (c *fixCollector) Resolve() []proposedFix {
	sorted := append([]proposedFix(nil), c.proposed...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].span.Loc.Start < sorted[j].span.Loc.Start
	})

	var accepted []proposedFix
	var lastEnd int32 = -1
	for _, f := range sorted {
		if f.span.Loc.Start < lastEnd {
			continue // overlaps an already-accepted, earlier fix
		}
		accepted = append(accepted, f)
		lastEnd = f.span.End()
	}
	return accepted
}
