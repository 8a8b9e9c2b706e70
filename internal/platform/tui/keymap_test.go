package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghost-catcher/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionStart, false},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{"c", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, core.ActionCopy, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%s) = %s, %v; expected %s, %v", tc.name, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		tap  bool
	}{
		{"left press", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"wheel", tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if got := km.MapMouseToFrame(tc.msg, &frame); got != tc.tap {
				t.Fatalf("MapMouseToFrame() = %v, expected %v", got, tc.tap)
			}
			if tc.tap && (len(frame.Taps) != 1 || frame.Taps[0] != (core.Tap{Col: 4, Row: 9})) {
				t.Errorf("taps = %+v", frame.Taps)
			}
			if !tc.tap && len(frame.Taps) != 0 {
				t.Errorf("unexpected taps %+v", frame.Taps)
			}
		})
	}
}

func TestPlayKeyMapHelp(t *testing.T) {
	keys := DefaultPlayKeyMap()
	if len(keys.ShortHelp()) == 0 || len(keys.FullHelp()) == 0 {
		t.Error("help views should list bindings")
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
