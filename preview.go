package diffmend

import "io"

// Preview is a line-level diff between a modified document and its merged
// counterpart, used to show what a merge would insert.
type Preview struct {
	Hunks []Hunk
}

// Inserted returns the number of added lines across all hunks.
func (p *Preview) Inserted() int {
	if p == nil {
		return 0
	}
	n := 0
	for _, h := range p.Hunks {
		for _, l := range h.Lines {
			if l.Type == LineAdded {
				n++
			}
		}
	}
	return n
}

// Hunk represents a contiguous block of changes.
type Hunk struct {
	OldStart int // From @@ -X,...
	OldCount int // From @@ -X,Y ...
	NewStart int // From @@ ...,+X
	NewCount int // From @@ ...,+X,Y
	Lines    []PreviewLine
}

// PreviewLine represents a single line within a hunk.
type PreviewLine struct {
	Type       LineType
	Content    string // Line text without the trailing newline
	OldLineNum int    // 0 if line is Added
	NewLineNum int    // 0 if line is Deleted
}

// LineType represents the type of a preview line.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineDeleted
)

// Previewer computes the preview of a merge.
type Previewer interface {
	// Preview returns the changes needed to turn modified into merged.
	Preview(modified, merged Document) (*Preview, error)
}

// PreviewParser parses unified diff text into a Preview.
type PreviewParser interface {
	Parse(r io.Reader) (*Preview, error)
}
