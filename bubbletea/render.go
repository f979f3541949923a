package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffmend"
)

// tabWidth is the distance between tab stops.
const tabWidth = 8

// minGutterWidth is the minimum width of each line number column in the gutter.
const minGutterWidth = 4

// listConfig holds the rendering parameters for renderCandidates.
type listConfig struct {
	candidates []diffmend.Candidate
	labels     []string     // Section label per candidate
	orphans    map[int]bool // Candidate IDs whose section is absent from the target
	selection  diffmend.Selection
	cursor     int
	idWidth    int
	styles     diffmend.Styles
	renderer   *lipgloss.Renderer
	width      int
}

// renderCandidates renders one row per candidate:
// cursor mark, checkbox, base line number, section label and text.
func renderCandidates(cfg listConfig) string {
	if len(cfg.candidates) == 0 {
		return styleFromColorPair(cfg.styles.Context, cfg.renderer).Render("no missing lines")
	}

	candidateStyle := styleFromColorPair(cfg.styles.Candidate, cfg.renderer)
	selectedStyle := styleFromColorPair(cfg.styles.Selected, cfg.renderer)
	cursorStyle := styleFromColorPair(cfg.styles.Cursor, cfg.renderer)
	headingStyle := styleFromColorPair(cfg.styles.Heading, cfg.renderer)
	orphanStyle := styleFromColorPair(cfg.styles.Orphan, cfg.renderer)
	lineNumStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)

	labelWidth := 0
	for _, l := range cfg.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	rows := make([]string, 0, len(cfg.candidates))
	for i, c := range cfg.candidates {
		mark := "  "
		if i == cfg.cursor {
			mark = "> "
		}
		box := "[ ]"
		textStyle := candidateStyle
		if cfg.selection.Has(c.ID) {
			box = "[x]"
			textStyle = selectedStyle
		}
		labelStyle := headingStyle
		if cfg.orphans[c.ID] {
			labelStyle = orphanStyle
		}

		label := cfg.labels[i]
		prefix := fmt.Sprintf("%s%s %*d  ", mark, box, cfg.idWidth, c.ID)
		labelCell := label + strings.Repeat(" ", labelWidth-lipgloss.Width(label)) + "  "
		text := ExpandTabs(c.Text, lipgloss.Width(prefix)+lipgloss.Width(labelCell))

		if i == cfg.cursor {
			rows = append(rows, cursorStyle.Render(padLine(prefix+labelCell+text, cfg.width)))
			continue
		}
		rows = append(rows,
			textStyle.Render(mark+box)+
				lineNumStyle.Render(fmt.Sprintf(" %*d  ", cfg.idWidth, c.ID))+
				labelStyle.Render(labelCell)+
				textStyle.Render(text))
	}
	return strings.Join(rows, "\n")
}

// previewConfig holds the rendering parameters for renderPreview.
type previewConfig struct {
	preview  *diffmend.Preview
	styles   diffmend.Styles
	renderer *lipgloss.Renderer
	width    int
}

// renderPreview converts a merge preview to a styled string.
// Width is the terminal width for full-width backgrounds.
func renderPreview(cfg previewConfig) string {
	headerStyle := styleFromColorPair(cfg.styles.Heading, cfg.renderer)
	insertedStyle := styleFromColorPair(cfg.styles.Inserted, cfg.renderer)
	deletedStyle := styleFromColorPair(cfg.styles.Orphan, cfg.renderer)
	contextStyle := styleFromColorPair(cfg.styles.Context, cfg.renderer)
	lineNumStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)

	// Format: ── preview ─────────────────── +N ──
	middle := "── preview "
	end := fmt.Sprintf(" +%d ──", cfg.preview.Inserted())
	fillWidth := max(cfg.width-lipgloss.Width(middle)-lipgloss.Width(end), 3)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(middle + strings.Repeat("─", fillWidth) + end))
	sb.WriteString("\n")

	if cfg.preview == nil || len(cfg.preview.Hunks) == 0 {
		sb.WriteString(contextStyle.Render("(no changes)"))
		return sb.String()
	}

	gutterWidth := calculateGutterWidth(cfg.preview)
	for _, hunk := range cfg.preview.Hunks {
		sb.WriteString(lineNumStyle.Render(formatHunkHeader(hunk)))
		sb.WriteString("\n")

		for _, line := range hunk.Lines {
			var lineStyle lipgloss.Style
			switch line.Type {
			case diffmend.LineAdded:
				lineStyle = insertedStyle
			case diffmend.LineDeleted:
				lineStyle = deletedStyle
			default:
				lineStyle = contextStyle
			}
			sb.WriteString(formatGutter(line.OldLineNum, line.NewLineNum, gutterWidth, lineNumStyle))
			sb.WriteString(lineStyle.Render(" "))

			gutter := 2*gutterWidth + 3
			fullLine := linePrefixFor(line.Type) + ExpandTabs(line.Content, gutter+1)
			if line.Type == diffmend.LineContext {
				sb.WriteString(lineStyle.Render(fullLine))
			} else {
				sb.WriteString(lineStyle.Render(padLine(fullLine, cfg.width-gutter)))
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// calculateGutterWidth returns the width needed for the largest line number.
func calculateGutterWidth(p *diffmend.Preview) int {
	maxLineNum := 0
	for _, hunk := range p.Hunks {
		for _, line := range hunk.Lines {
			maxLineNum = max(maxLineNum, line.OldLineNum, line.NewLineNum)
		}
	}
	return max(digitWidth(maxLineNum), minGutterWidth)
}

func formatGutter(oldLineNum, newLineNum, width int, style lipgloss.Style) string {
	oldStr := formatLineNum(oldLineNum, width)
	newStr := formatLineNum(newLineNum, width)
	gutter := fmt.Sprintf("%s %s ", oldStr, newStr)
	return style.Render(gutter)
}

func formatLineNum(num, width int) string {
	if num == 0 {
		return fmt.Sprintf("%*s", width, "")
	}
	return fmt.Sprintf("%*d", width, num)
}

func formatHunkHeader(hunk diffmend.Hunk) string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
}

func linePrefixFor(lineType diffmend.LineType) string {
	switch lineType {
	case diffmend.LineAdded:
		return "+"
	case diffmend.LineDeleted:
		return "-"
	default:
		return " "
	}
}

// styleFromColorPair creates a lipgloss style from a color pair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp diffmend.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}

// defaultStyles is used when no theme is configured.
func defaultStyles() diffmend.Styles {
	return diffmend.Styles{
		Candidate:  diffmend.ColorPair{Foreground: "#cdd6f4"},
		Selected:   diffmend.ColorPair{Foreground: "#a6e3a1"},
		Cursor:     diffmend.ColorPair{Foreground: "#cdd6f4", Background: "#45475a"},
		Heading:    diffmend.ColorPair{Foreground: "#f9e2af"},
		Orphan:     diffmend.ColorPair{Foreground: "#fab387"},
		Inserted:   diffmend.ColorPair{Foreground: "#a6e3a1", Background: "#004000"},
		Context:    diffmend.ColorPair{Foreground: "#6c7086"},
		LineNumber: diffmend.ColorPair{Foreground: "#6c7086"},
		StatusBar:  diffmend.ColorPair{Foreground: "#a6adc8", Background: "#313244"},
	}
}
