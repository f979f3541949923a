package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/diffmend/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"k moves up", runeKey('k'), km.Up},
		{"arrow up moves up", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"j moves down", runeKey('j'), km.Down},
		{"arrow down moves down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"g starts go to top", runeKey('g'), km.GotoTop},
		{"G goes to bottom", runeKey('G'), km.GotoBottom},
		{"space toggles", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.Toggle},
		{"a selects all", runeKey('a'), km.SelectAll},
		{"x clears", runeKey('x'), km.Clear},
		{"p toggles preview", runeKey('p'), km.Preview},
		{"ctrl+u scrolls preview up", tea.KeyMsg{Type: tea.KeyCtrlU}, km.HalfPageUp},
		{"ctrl+d scrolls preview down", tea.KeyMsg{Type: tea.KeyCtrlD}, km.HalfPageDown},
		{"s saves", runeKey('s'), km.Save},
		{"y copies", runeKey('y'), km.Copy},
		{"q quits", runeKey('q'), km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_HelpText(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	for _, b := range km.ShortHelp() {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
		}
	}
}
