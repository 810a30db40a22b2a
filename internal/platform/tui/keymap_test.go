package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim l", runeKey('l'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is not an action", runeKey('?'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}
