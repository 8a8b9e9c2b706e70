package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghost-catcher/internal/config"
	"github.com/vovakirdan/ghost-catcher/internal/core"
)

var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "slower spawns",
	config.DifficultyNormal: "the standard round",
	config.DifficultyHard:   "starts three ramps in",
	config.DifficultyFixed:  "no ramp, steady pace",
}

// MenuKeyMap defines the key bindings for list pickers.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up", "move")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down", "move")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// DifficultyModel lets the player pick a difficulty preset before playing.
type DifficultyModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates a picker with the normal preset highlighted.
func NewDifficultyModel(width, height int) DifficultyModel {
	m := DifficultyModel{width: width, height: height, keys: DefaultMenuKeyMap()}
	for i, p := range config.Presets {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(config.Presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(title.Render(centerText("G H O S T   C A T C H E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-7s %s", cursor, p, presetBlurbs[p]), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(centerText("Enter: Select  |  Q: Quit", m.width)))
	return b.String()
}

// Selected returns the chosen preset, or false if the player quit or is still choosing.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return config.Presets[m.cursor], true
}

// RunDifficultySelector asks for a preset. The returned config carries the
// terminal size seen by the picker. ok is false when the player quit.
func RunDifficultySelector(cfg core.RuntimeConfig) (preset config.DifficultyPreset, updated core.RuntimeConfig, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", cfg, false, err
	}

	m, isModel := final.(DifficultyModel)
	if !isModel {
		return "", cfg, false, nil
	}
	if m.width > 0 && m.height > 0 {
		cfg.ScreenW, cfg.ScreenH = m.width, m.height
	}
	preset, ok = m.Selected()
	return preset, cfg, ok, nil
}
