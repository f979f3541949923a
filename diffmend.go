// Package diffmend provides domain types for finding lines a modified document
// lost relative to its base and restoring them section by section.
package diffmend

import "strings"

// Document is an ordered sequence of lines. Documents passed into the engine
// are treated as read-only; every operation returns a fresh Document.
type Document []string

// SplitLines splits text on "\n". A trailing newline yields a trailing empty
// line, and the empty string yields a single empty line.
func SplitLines(text string) Document {
	return Document(strings.Split(text, "\n"))
}

// JoinLines joins lines with "\n", reversing SplitLines.
func JoinLines(doc Document) string {
	return strings.Join(doc, "\n")
}

// Clone returns a copy of the document that shares no backing array.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	copy(out, d)
	return out
}

// Candidate is a base line whose text does not occur in the modified document.
type Candidate struct {
	ID   int    `json:"id"`   // 0-based index of the line in the base document
	Text string `json:"text"` // Raw line text, never blank
}

// Stats holds the aggregate counts of a comparison.
//
// The counts are independent set-membership tallies, so Shared+Added+Removed
// is not expected to equal the total number of lines.
type Stats struct {
	Shared  int `json:"shared"`  // Base lines whose text occurs in modified
	Added   int `json:"added"`   // Non-blank modified lines whose text is absent from base
	Removed int `json:"removed"` // Number of candidates
}

// Comparison is the result of comparing a base document to a modified one.
type Comparison struct {
	Candidates []Candidate `json:"candidates"`
	Stats      Stats       `json:"stats"`
}

// Candidate returns the candidate with the given id.
func (c Comparison) Candidate(id int) (Candidate, bool) {
	for _, cand := range c.Candidates {
		if cand.ID == id {
			return cand, true
		}
		if cand.ID > id {
			break
		}
	}
	return Candidate{}, false
}

// Differ computes missing-line candidates between two documents.
type Differ interface {
	// Compute returns the base lines missing from modified along with
	// aggregate statistics. Candidates are ordered by ascending ID.
	Compute(base, modified Document) Comparison
}

// Merger restores selected candidates into a modified document.
type Merger interface {
	// Merge inserts the selected candidates into a copy of modified.
	// Returns ErrNothingToMerge if the selection is empty.
	Merge(base, modified Document, selected Selection) (*MergeResult, error)
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	// Copy writes content to the clipboard.
	Copy(content string) error
}
