package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghost-catcher/internal/config"
)

func press(m DifficultyModel, msg tea.KeyMsg) DifficultyModel {
	next, _ := m.Update(msg)
	return next.(DifficultyModel)
}

func TestDifficultyModelDefaultsToNormal(t *testing.T) {
	m := NewDifficultyModel(80, 24)
	if _, ok := m.Selected(); ok {
		t.Fatal("nothing is selected before enter")
	}
	if !strings.Contains(m.View(), "> normal") {
		t.Errorf("normal should be highlighted:\n%s", m.View())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if p, ok := m.Selected(); !ok || p != config.DifficultyNormal {
		t.Errorf("Selected() = %q, %v", p, ok)
	}
}

func TestDifficultyModelNavigation(t *testing.T) {
	m := NewDifficultyModel(80, 24)
	for range 10 {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if p, _ := m.Selected(); p != config.DifficultyFixed {
		t.Errorf("cursor should stop at the last preset, got %q", p)
	}

	m = NewDifficultyModel(80, 24)
	for range 10 {
		m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if p, _ := m.Selected(); p != config.DifficultyEasy {
		t.Errorf("cursor should stop at the first preset, got %q", p)
	}
}

func TestDifficultyModelQuit(t *testing.T) {
	m := press(NewDifficultyModel(80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.Selected(); ok {
		t.Error("quitting must not select a preset")
	}
	if m.View() != "" {
		t.Error("a quitting picker renders nothing")
	}
}
