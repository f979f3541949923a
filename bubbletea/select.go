// Package bubbletea provides an interactive review screen for choosing which
// missing lines to restore, built on the Bubble Tea framework.
package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffmend"
)

// OutputTarget names where the save key writes the merged document.
type OutputTarget struct {
	Dir  string
	Name string
	Ext  string
}

// ReviewInput carries everything the review screen needs.
type ReviewInput struct {
	Base       diffmend.Document
	Modified   diffmend.Document
	Comparison diffmend.Comparison
	Marker     diffmend.HeadingMarker
	Merger     diffmend.Merger
	Previewer  diffmend.Previewer      // Optional; disables the preview panel when nil
	Writer     diffmend.DocumentWriter // Optional; disables saving when nil
	Output     OutputTarget
	Clipboard  diffmend.Clipboard // Optional; disables copying when nil
	Selected   diffmend.Selection // Initial selection
}

// Outcome is the state of the review screen when it exits.
type Outcome struct {
	Selection diffmend.Selection
	Result    *diffmend.MergeResult // Last merge produced by save or copy; nil if none
	SavedPath string
	Copied    bool
}

type savedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

// SelectModel is the Bubble Tea model for reviewing candidates.
type SelectModel struct {
	in ReviewInput

	// Pre-computed on construction
	labels  []string
	orphans map[int]bool
	idWidth int

	// Selection state
	cursor    int
	selection diffmend.Selection
	result    *diffmend.MergeResult
	savedPath string
	copied    bool
	message   string

	// UI state
	list        viewport.Model
	preview     viewport.Model
	showPreview bool
	keymap      KeyMap
	help        help.Model
	styles      diffmend.Styles
	renderer    *lipgloss.Renderer
	width       int
	height      int
	ready       bool
	pendingKey  string
}

// SelectModelOption configures a SelectModel.
type SelectModelOption func(*selectModelConfig)

type selectModelConfig struct {
	renderer *lipgloss.Renderer
	theme    diffmend.Theme
	keymap   *KeyMap
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) SelectModelOption {
	return func(cfg *selectModelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t diffmend.Theme) SelectModelOption {
	return func(cfg *selectModelConfig) {
		cfg.theme = t
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) SelectModelOption {
	return func(cfg *selectModelConfig) {
		cfg.keymap = &km
	}
}

// NewSelectModel creates a new SelectModel for the given input.
func NewSelectModel(in ReviewInput, opts ...SelectModelOption) SelectModel {
	cfg := &selectModelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	styles := defaultStyles()
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
	}
	keymap := DefaultKeyMap()
	if cfg.keymap != nil {
		keymap = *cfg.keymap
	}

	present := make(map[string]bool)
	for _, line := range in.Modified {
		if h := in.Marker.Heading(line); h != "" {
			present[h] = true
		}
	}
	owners := in.Marker.Owners(in.Base)
	labels := make([]string, len(in.Comparison.Candidates))
	orphans := make(map[int]bool)
	for i, c := range in.Comparison.Candidates {
		labels[i] = diffmend.SectionLabel(owners, c.ID)
		if c.ID < 0 || c.ID >= len(owners) || !present[owners[c.ID]] {
			orphans[c.ID] = true
		}
	}

	return SelectModel{
		in:        in,
		labels:    labels,
		orphans:   orphans,
		idWidth:   digitWidth(max(len(in.Base)-1, 0)),
		selection: in.Selected.Clone(),
		keymap:    keymap,
		help:      help.New(),
		styles:    styles,
		renderer:  cfg.renderer,
	}
}

// Init implements tea.Model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
	case savedMsg:
		if msg.err != nil {
			m.message = "save failed: " + msg.err.Error()
			return m, nil
		}
		m.savedPath = msg.path
		m.message = "saved " + msg.path
	case copiedMsg:
		if msg.err != nil {
			m.message = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.copied = true
		m.message = "copied merged text"
	}
	return m, nil
}

func (m SelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle multi-key sequences (gg for go to top)
	if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = ""
		m.moveTo(0)
		return m, nil
	}
	if key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = "g"
		return m, nil
	}
	m.pendingKey = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Up):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keymap.Down):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keymap.GotoBottom):
		m.moveTo(len(m.in.Comparison.Candidates) - 1)
	case key.Matches(msg, m.keymap.Toggle):
		if c, ok := m.current(); ok {
			m.selection.Toggle(c.ID)
			m.selectionChanged()
		}
	case key.Matches(msg, m.keymap.SelectAll):
		m.selection.SelectAll(m.in.Comparison.Candidates)
		m.selectionChanged()
	case key.Matches(msg, m.keymap.Clear):
		m.selection.Clear()
		m.selectionChanged()
	case key.Matches(msg, m.keymap.Preview):
		if m.in.Previewer == nil {
			m.message = "preview is not available"
			return m, nil
		}
		m.showPreview = !m.showPreview
		m.layout()
	case key.Matches(msg, m.keymap.HalfPageUp):
		m.preview.HalfPageUp()
	case key.Matches(msg, m.keymap.HalfPageDown):
		m.preview.HalfPageDown()
	case key.Matches(msg, m.keymap.Save):
		return m, m.save()
	case key.Matches(msg, m.keymap.Copy):
		return m, m.copyText()
	}
	return m, nil
}

// View implements tea.Model.
func (m SelectModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showPreview {
		return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.preview.View(), m.statusBarView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.statusBarView())
}

// Outcome returns the current selection and the results of save and copy.
func (m SelectModel) Outcome() *Outcome {
	return &Outcome{
		Selection: m.selection.Clone(),
		Result:    m.result,
		SavedPath: m.savedPath,
		Copied:    m.copied,
	}
}

func (m SelectModel) current() (diffmend.Candidate, bool) {
	cands := m.in.Comparison.Candidates
	if m.cursor < 0 || m.cursor >= len(cands) {
		return diffmend.Candidate{}, false
	}
	return cands[m.cursor], true
}

func (m *SelectModel) moveTo(i int) {
	n := len(m.in.Comparison.Candidates)
	if n == 0 {
		return
	}
	m.cursor = min(max(i, 0), n-1)
	m.refreshList()
}

func (m *SelectModel) selectionChanged() {
	m.message = ""
	m.refreshList()
	if m.showPreview {
		m.refreshPreview()
	}
}

// layout sizes the panels and re-renders their content.
func (m *SelectModel) layout() {
	statusBarHeight := 1
	available := max(m.height-statusBarHeight, 1)
	listHeight := available
	if m.showPreview {
		listHeight = max(available/2, 1)
	}

	m.list = viewport.New(m.width, listHeight)
	m.preview = viewport.New(m.width, max(available-listHeight, 0))
	m.refreshList()
	if m.showPreview {
		m.refreshPreview()
	}
}

func (m *SelectModel) refreshList() {
	m.list.SetContent(renderCandidates(listConfig{
		candidates: m.in.Comparison.Candidates,
		labels:     m.labels,
		orphans:    m.orphans,
		selection:  m.selection,
		cursor:     m.cursor,
		idWidth:    m.idWidth,
		styles:     m.styles,
		renderer:   m.renderer,
		width:      m.width,
	}))

	// Keep the cursor row visible.
	if m.cursor < m.list.YOffset {
		m.list.SetYOffset(m.cursor)
	} else if m.list.Height > 0 && m.cursor >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(m.cursor - m.list.Height + 1)
	}
}

func (m *SelectModel) refreshPreview() {
	if m.selection.Len() == 0 {
		m.preview.SetContent(renderPreview(previewConfig{
			styles:   m.styles,
			renderer: m.renderer,
			width:    m.width,
		}))
		return
	}
	result, err := m.in.Merger.Merge(m.in.Base, m.in.Modified, m.selection.Clone())
	if err != nil {
		m.message = err.Error()
		return
	}
	p, err := m.in.Previewer.Preview(m.in.Modified, result.Document)
	if err != nil {
		m.message = "preview failed: " + err.Error()
		return
	}
	m.preview.SetContent(renderPreview(previewConfig{
		preview:  p,
		styles:   m.styles,
		renderer: m.renderer,
		width:    m.width,
	}))
}

// merge produces the merged document for the current selection, or records
// why it cannot.
func (m *SelectModel) merge() (*diffmend.MergeResult, bool) {
	if m.selection.Len() == 0 {
		m.message = diffmend.ErrNothingToMerge.Error()
		return nil, false
	}
	result, err := m.in.Merger.Merge(m.in.Base, m.in.Modified, m.selection.Clone())
	if err != nil {
		m.message = err.Error()
		return nil, false
	}
	m.result = result
	return result, true
}

func (m *SelectModel) save() tea.Cmd {
	if m.in.Writer == nil {
		m.message = "saving is not available"
		return nil
	}
	result, ok := m.merge()
	if !ok {
		return nil
	}
	w, out := m.in.Writer, m.in.Output
	text := diffmend.JoinLines(result.Document)
	return func() tea.Msg {
		path, err := w.Write(out.Dir, out.Name, out.Ext, text)
		return savedMsg{path: path, err: err}
	}
}

func (m *SelectModel) copyText() tea.Cmd {
	if m.in.Clipboard == nil {
		m.message = "clipboard is not available"
		return nil
	}
	result, ok := m.merge()
	if !ok {
		return nil
	}
	cb := m.in.Clipboard
	text := diffmend.JoinLines(result.Document)
	return func() tea.Msg {
		return copiedMsg{err: cb.Copy(text)}
	}
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m SelectModel) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders stats, selection count, the last message and help.
func (m SelectModel) statusBarView() string {
	barStyle := styleFromColorPair(m.styles.StatusBar, m.renderer)
	msgStyle := barStyle.Foreground(lipgloss.Color(m.styles.Orphan.Foreground))
	sep := barStyle.Render(" │ ")

	stats := m.in.Comparison.Stats
	content := barStyle.Render(fmt.Sprintf(" shared %d  added %d  removed %d", stats.Shared, stats.Added, stats.Removed)) +
		sep +
		barStyle.Render(fmt.Sprintf("selected %d/%d", m.selection.Len(), len(m.in.Comparison.Candidates)))
	if m.message != "" {
		content += sep + msgStyle.Render(m.message)
	}

	helpView := m.help.ShortHelpView(m.keymap.ShortHelp())
	if m.width == 0 || lipgloss.Width(content)+lipgloss.Width(helpView)+3 <= m.width {
		content += sep + helpView
	}

	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		content += m.newStyle().Background(lipgloss.Color(m.styles.StatusBar.Background)).
			Render(strings.Repeat(" ", m.width-contentWidth))
	}
	return content
}
