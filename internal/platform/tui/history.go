package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghost-catcher/internal/storage"
)

// maxHistory is the number of rounds loaded into the table.
const maxHistory = 100

// HistoryKeyMap defines the key bindings for the round history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the round journal viewer.
type HistoryModel struct {
	store    *storage.Store
	gameID   string
	title    string
	byScore  bool // best rounds instead of recent ones
	rounds   []storage.Round
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history viewer for one game.
func NewHistoryModel(store *storage.Store, gameID, title string, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		store:  store,
		gameID: gameID,
		title:  title,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Ended", Width: 14},
		{Title: "Mode", Width: 7},
		{Title: "Score", Width: 6},
		{Title: "Ghosts", Width: 7},
		{Title: "Bombs", Width: 6},
		{Title: "Nets", Width: 5},
		{Title: "Missed", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // title, stats, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads rounds and stats from the store.
func (m *HistoryModel) load() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	if m.byScore {
		m.rounds, err = m.store.TopRounds(m.gameID, maxHistory)
	} else {
		m.rounds, err = m.store.RecentRounds(m.gameID, maxHistory)
	}
	if err != nil {
		m.loadErr = err
	} else if m.stats, err = m.store.RoundStats(m.gameID); err != nil {
		m.loadErr = err
	}
	m.updateTableRows()
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			r.EndedAt.Local().Format("Jan 02 15:04"),
			r.Difficulty,
			fmt.Sprintf("%02d", r.Score),
			strconv.Itoa(r.Ghosts),
			strconv.Itoa(r.Bombs),
			strconv.Itoa(r.Nets),
			strconv.Itoa(r.Missed),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.byScore = !m.byScore
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	heading := "RECENT ROUNDS"
	if m.byScore {
		heading = "BEST ROUNDS"
	}
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("%s - %s", heading, m.title), m.width)))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil && m.stats.Rounds > 0 {
		b.WriteString(dim.Render(centerText(fmt.Sprintf("%d rounds  best %02d  avg %.1f  ghosts %d  missed %d",
			m.stats.Rounds, m.stats.BestScore, m.stats.AvgScore, m.stats.TotalGhosts, m.stats.TotalMissed), m.width)))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) tableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return empty.Render("No round journal.\nPlay with --db to record rounds.")
	case m.loadErr != nil:
		return empty.Render("Could not read the journal:\n" + m.loadErr.Error())
	case len(m.rounds) == 0:
		return empty.Render("No rounds recorded yet.")
	}
	return m.table.View()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return strings.Repeat(" ", (width-textWidth)/2) + text
}

// RunHistory runs the round history viewer.
func RunHistory(store *storage.Store, gameID, title string, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(store, gameID, title, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
