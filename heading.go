package diffmend

import "strings"

// HeadingMarker describes the bracket convention that marks section headings.
type HeadingMarker struct {
	Open  string // e.g. "【"
	Close string // e.g. "】"
}

// DefaultHeadingMarker is the 【...】 convention.
var DefaultHeadingMarker = HeadingMarker{Open: "【", Close: "】"}

// IsHeading reports whether the trimmed line starts with the open bracket and
// contains a close bracket after it.
func (h HeadingMarker) IsHeading(line string) bool {
	if h.Open == "" || h.Close == "" {
		return false
	}
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, h.Open) {
		return false
	}
	return strings.Contains(trimmed[len(h.Open):], h.Close)
}

// Heading returns the trimmed heading text of line, or "" if line is not a heading.
func (h HeadingMarker) Heading(line string) string {
	if !h.IsHeading(line) {
		return ""
	}
	return strings.TrimSpace(line)
}

// Owners maps each line of doc to its owning heading: the trimmed text of the
// nearest heading at or before it, or "" when no heading precedes it.
// A heading line owns itself.
func (h HeadingMarker) Owners(doc Document) []string {
	owners := make([]string, len(doc))
	current := ""
	for i, line := range doc {
		if heading := h.Heading(line); heading != "" {
			current = heading
		}
		owners[i] = current
	}
	return owners
}

// Overflow describes the trailing block that receives lines whose section
// cannot be found in the target document.
type Overflow struct {
	Separator string
	Marker    string
}

// DefaultOverflow is the "---" / "[Auto-Appended Missing Blocks]" block.
var DefaultOverflow = Overflow{
	Separator: "---",
	Marker:    "[Auto-Appended Missing Blocks]",
}

// Header returns the lines written before the first orphan line.
func (o Overflow) Header() []string {
	return []string{"", o.Separator, o.Marker, ""}
}
