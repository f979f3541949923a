package diffmend

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the review screen.
type Styles struct {
	Candidate  ColorPair // Unselected candidate rows
	Selected   ColorPair // Selected candidate rows
	Cursor     ColorPair // Row under the cursor
	Heading    ColorPair // Section labels
	Orphan     ColorPair // Label for candidates without a matching section
	Inserted   ColorPair // Lines a merge would insert (preview)
	Context    ColorPair // Unchanged lines (preview)
	LineNumber ColorPair // Line numbers in the preview gutter
	StatusBar  ColorPair // Bottom status bar
}

// Theme provides styles for rendering.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
