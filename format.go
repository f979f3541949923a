package diffmend

import (
	"fmt"
	"strings"
)

// ReportFormatter renders a comparison as human-readable text.
type ReportFormatter interface {
	Format(base Document, cmp Comparison) string
}

// DefaultFormatter implements ReportFormatter with the standard layout.
type DefaultFormatter struct {
	Marker HeadingMarker
}

// noSection labels candidates that have no owning heading.
const noSection = "(no section)"

// Format renders stats followed by candidates grouped under their owning section.
func (f *DefaultFormatter) Format(base Document, cmp Comparison) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("shared: %d  added: %d  removed: %d\n",
		cmp.Stats.Shared, cmp.Stats.Added, cmp.Stats.Removed))

	if len(cmp.Candidates) == 0 {
		sb.WriteString("\nno missing lines\n")
		return sb.String()
	}

	owners := f.Marker.Owners(base)
	current := "\x00"
	for _, c := range cmp.Candidates {
		section := SectionLabel(owners, c.ID)
		if section != current {
			sb.WriteString(fmt.Sprintf("\n%s\n", section))
			current = section
		}
		sb.WriteString(fmt.Sprintf("  %*d  %s\n", idWidth(base), c.ID, c.Text))
	}

	return sb.String()
}

// SectionLabel returns the owning heading of line id, or a placeholder label
// when the line has none.
func SectionLabel(owners []string, id int) string {
	if id < 0 || id >= len(owners) || owners[id] == "" {
		return noSection
	}
	return owners[id]
}

// idWidth returns the column width needed for the largest line index.
func idWidth(base Document) int {
	n := len(base) - 1
	if n < 10 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
