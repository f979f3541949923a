// Package setdiff compares documents by line membership rather than by
// sequence alignment.
package setdiff

import (
	"strings"

	"github.com/fwojciec/diffmend"
)

// Compile-time interface verification.
var _ diffmend.Differ = (*Differ)(nil)

// Differ finds base lines whose text does not occur anywhere in the modified
// document.
//
// Membership is by exact line text. Repeated lines are not counted as a
// multiset: a text present once in modified satisfies every base occurrence.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Compute returns the missing-line candidates in base order and the
// aggregate statistics.
func (d *Differ) Compute(base, modified diffmend.Document) diffmend.Comparison {
	inModified := lineSet(modified)
	inBase := lineSet(base)

	var cmp diffmend.Comparison
	for id, line := range base {
		if _, ok := inModified[line]; ok {
			// Shared is positional, so blank lines count too when modified
			// contains an identical blank line.
			cmp.Stats.Shared++
			continue
		}
		if isBlank(line) {
			continue
		}
		cmp.Candidates = append(cmp.Candidates, diffmend.Candidate{ID: id, Text: line})
	}
	cmp.Stats.Removed = len(cmp.Candidates)

	for _, line := range modified {
		if isBlank(line) {
			continue
		}
		if _, ok := inBase[line]; !ok {
			cmp.Stats.Added++
		}
	}

	return cmp
}

func lineSet(doc diffmend.Document) map[string]struct{} {
	set := make(map[string]struct{}, len(doc))
	for _, line := range doc {
		set[line] = struct{}{}
	}
	return set
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
