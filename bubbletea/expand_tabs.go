package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ExpandTabs replaces tabs in a document line with spaces so candidate rows
// and preview lines keep their alignment once a row prefix is drawn in front
// of them. startCol is the screen column the line starts at: the checkbox,
// id and section label of a candidate row shift every tab stop after them.
func ExpandTabs(line string, startCol int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line) + tabWidth)
	col := startCol
	for _, r := range line {
		if r != '\t' {
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
			continue
		}
		stop := nextTabStop(col)
		sb.WriteString(strings.Repeat(" ", stop-col))
		col = stop
	}
	return sb.String()
}

// nextTabStop returns the first tab stop strictly after col.
func nextTabStop(col int) int {
	return (col/tabWidth + 1) * tabWidth
}
