package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w flaps", runeKey('w'), core.ActionJump},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"plus raises volume", runeKey('+'), core.ActionVolumeUp},
		{"equals raises volume", runeKey('='), core.ActionVolumeUp},
		{"minus lowers volume", runeKey('-'), core.ActionVolumeDown},
		{"m mutes", runeKey('m'), core.ActionMute},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 6 {
		t.Errorf("FullHelp lists %d bindings, expected 6", total)
	}
}
