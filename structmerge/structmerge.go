// Package structmerge restores missing lines into a document section by
// section, using heading lines to decide where each line belongs.
package structmerge

import (
	"sort"

	"github.com/fwojciec/diffmend"
	"github.com/fwojciec/diffmend/setdiff"
)

// Compile-time interface verification.
var _ diffmend.Merger = (*Merger)(nil)

// Merger inserts selected candidates after the last occurrence of their
// owning heading in the modified document. Candidates whose heading is
// absent go to an overflow block at the end.
type Merger struct {
	marker   diffmend.HeadingMarker
	overflow diffmend.Overflow
	differ   diffmend.Differ
}

// Option configures a Merger.
type Option func(*Merger)

// WithHeadingMarker sets the heading convention. Defaults to 【...】.
func WithHeadingMarker(marker diffmend.HeadingMarker) Option {
	return func(m *Merger) {
		m.marker = marker
	}
}

// WithOverflow sets the separator and marker lines of the overflow block.
func WithOverflow(overflow diffmend.Overflow) Option {
	return func(m *Merger) {
		m.overflow = overflow
	}
}

// WithDiffer sets the differ used to find candidates. Defaults to setdiff.
func WithDiffer(d diffmend.Differ) Option {
	return func(m *Merger) {
		m.differ = d
	}
}

// NewMerger creates a new Merger.
func NewMerger(opts ...Option) *Merger {
	m := &Merger{
		marker:   diffmend.DefaultHeadingMarker,
		overflow: diffmend.DefaultOverflow,
		differ:   setdiff.NewDiffer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// group is a run of candidates restored under one heading.
type group struct {
	heading    string
	at         int // Insertion index in the unmodified target
	candidates []diffmend.Candidate
}

// Merge returns a new document with the selected candidates restored.
// Selected IDs that are not candidates are ignored. Returns
// diffmend.ErrNothingToMerge if no selected ID is a candidate.
func (m *Merger) Merge(base, modified diffmend.Document, selected diffmend.Selection) (*diffmend.MergeResult, error) {
	if selected.Len() == 0 {
		return nil, diffmend.ErrNothingToMerge
	}

	cmp := m.differ.Compute(base, modified)
	owners := m.marker.Owners(base)
	occurrences := m.headingOccurrences(modified)

	// Group in discovery order; candidates are already in base order.
	var groups []*group
	byHeading := make(map[string]*group)
	var orphans []diffmend.Candidate

	for _, c := range cmp.Candidates {
		if !selected.Has(c.ID) || c.ID < 0 || c.ID >= len(base) {
			continue
		}
		owner := owners[c.ID]
		if _, ok := occurrences[owner]; owner == "" || !ok {
			orphans = append(orphans, c)
			continue
		}
		g, ok := byHeading[owner]
		if !ok {
			g = &group{heading: owner}
			byHeading[owner] = g
			groups = append(groups, g)
		}
		g.candidates = append(g.candidates, c)
	}
	if len(groups) == 0 && len(orphans) == 0 {
		return nil, diffmend.ErrNothingToMerge
	}

	for _, g := range groups {
		positions := occurrences[g.heading]
		g.at = m.sectionEnd(modified, positions[len(positions)-1])
	}

	// Insertion points are relative to the pristine target, so emitting
	// groups in position order lets one pass build the output. Distinct
	// headings never share an insertion point, so discovery order is lost
	// without affecting where any line lands.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].at < groups[j].at
	})

	size := len(modified) + selected.Len()
	if len(orphans) > 0 {
		size += len(m.overflow.Header())
	}
	result := &diffmend.MergeResult{
		Document: make(diffmend.Document, 0, size),
	}

	next := 0
	for _, g := range groups {
		result.Document = append(result.Document, modified[next:g.at]...)
		next = g.at
		for _, c := range g.candidates {
			result.Placements = append(result.Placements, diffmend.Placement{
				Candidate: c,
				Heading:   g.heading,
				Index:     len(result.Document),
			})
			result.Document = append(result.Document, c.Text)
		}
	}
	result.Document = append(result.Document, modified[next:]...)

	if len(orphans) > 0 {
		result.Document = append(result.Document, m.overflow.Header()...)
		for _, c := range orphans {
			result.Placements = append(result.Placements, diffmend.Placement{
				Candidate: c,
				Orphan:    true,
				Index:     len(result.Document),
			})
			result.Document = append(result.Document, c.Text)
		}
	}

	sort.SliceStable(result.Placements, func(i, j int) bool {
		return result.Placements[i].Candidate.ID < result.Placements[j].Candidate.ID
	})

	return result, nil
}

// headingOccurrences maps each heading in doc to the ascending indices of
// its occurrences.
func (m *Merger) headingOccurrences(doc diffmend.Document) map[string][]int {
	occurrences := make(map[string][]int)
	for i, line := range doc {
		if heading := m.marker.Heading(line); heading != "" {
			occurrences[heading] = append(occurrences[heading], i)
		}
	}
	return occurrences
}

// sectionEnd returns the index of the first heading after from, or len(doc)
// if the section runs to the end of the document.
func (m *Merger) sectionEnd(doc diffmend.Document, from int) int {
	for i := from + 1; i < len(doc); i++ {
		if m.marker.IsHeading(doc[i]) {
			return i
		}
	}
	return len(doc)
}
