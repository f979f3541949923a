package diffmend

import "errors"

// ErrNothingToMerge is returned when a merge is requested with a selection
// that names no candidate lines.
var ErrNothingToMerge = errors.New("nothing to merge: no lines selected")

// Placement records where a restored candidate was inserted.
type Placement struct {
	Candidate Candidate
	Heading   string // Owning heading the line was restored under; empty for orphans
	Orphan    bool   // True if the line went to the overflow block
	Index     int    // Line index in the merged document
}

// MergeResult is the output of a merge.
type MergeResult struct {
	Document   Document
	Placements []Placement // In candidate (base) order
}

// Restored returns the number of lines placed under a matching heading.
func (r *MergeResult) Restored() int {
	n := 0
	for _, p := range r.Placements {
		if !p.Orphan {
			n++
		}
	}
	return n
}

// Orphans returns the number of lines appended to the overflow block.
func (r *MergeResult) Orphans() int {
	return len(r.Placements) - r.Restored()
}

// Engine exposes the text-level contract: documents go in as text and the
// merged document comes back as text.
type Engine struct {
	Differ Differ
	Merger Merger
}

// CompareText splits both texts into lines and computes their comparison.
func (e *Engine) CompareText(base, modified string) Comparison {
	return e.Differ.Compute(SplitLines(base), SplitLines(modified))
}

// MergeText restores the candidates identified by ids and returns the joined
// result. Returns ErrNothingToMerge if ids is empty.
func (e *Engine) MergeText(base, modified string, ids []int) (string, error) {
	if len(ids) == 0 {
		return "", ErrNothingToMerge
	}
	result, err := e.Merger.Merge(SplitLines(base), SplitLines(modified), NewSelection(ids...))
	if err != nil {
		return "", err
	}
	return JoinLines(result.Document), nil
}
