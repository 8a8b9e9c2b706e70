package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghost-catcher/internal/clock"
	"github.com/vovakirdan/ghost-catcher/internal/core"
	"github.com/vovakirdan/ghost-catcher/internal/registry"
	"github.com/vovakirdan/ghost-catcher/internal/storage"
)

// statusDuration is how long a status message replaces the help bar.
const statusDuration = 3 * time.Second

// Options configures a Model.
type Options struct {
	// Store journals finished rounds. Nil disables the journal.
	Store *storage.Store

	// Logger receives round results. Nil disables logging. In local play it
	// must not write to the terminal the game draws on; see OpenLogFile.
	Logger *log.Logger

	// Clock times status messages and names screenshots. Nil uses the wall clock.
	Clock clock.TimeProvider

	// Clipboard enables copying the round summary to the local clipboard.
	// Leave it off for SSH sessions, where the clipboard is the server's.
	Clipboard bool

	// Player names the journal owner in log lines.
	Player string
}

// Model is the Bubble Tea model that runs one game.
// The bottom terminal row is reserved for the help bar.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	lastRound  *core.RoundSummary
	status     string
	statusTill time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(1, cfg.ScreenH-1)
	if opts.Clock == nil {
		opts.Clock = clock.SystemTime{}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize lays the game out again. The running round is abandoned.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(1, msg.Height-1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.game.Reset(m.config)
	return m, nil
}

// handleTick steps the game to the tick's time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Now = now
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Round != nil {
		round := *result.Round
		m.lastRound = &round
		m.recordRound(round)
	}

	if m.inputFrame.Has(core.ActionCopy) && m.gameState.GameOver {
		m.copyRound(now)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRound logs and journals a finished round. Journal failures are
// logged and otherwise ignored.
func (m *Model) recordRound(r core.RoundSummary) {
	if m.opts.Logger != nil {
		m.opts.Logger.Info("round finished",
			"player", m.opts.Player,
			"score", r.Score,
			"best", r.HighScore,
			"ghosts", r.Ghosts,
			"bombs", r.Bombs,
			"nets", r.Nets,
			"missed", r.Missed,
		)
	}
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveRound(r); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not journal round", "error", err)
	}
}

func (m *Model) copyRound(now time.Time) {
	switch {
	case m.lastRound == nil:
		return
	case !m.opts.Clipboard:
		m.setStatus(now, "copy is only available in local play")
	default:
		if err := clipboard.WriteAll(m.lastRound.String()); err != nil {
			m.setStatus(now, "copy failed: "+err.Error())
		} else {
			m.setStatus(now, "result copied to clipboard")
		}
	}
}

func (m *Model) setStatus(now time.Time, text string) {
	m.status = text
	m.statusTill = now.Add(statusDuration)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	now := m.opts.Clock.Now()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".ghostcatcher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus(now, "screenshot failed: "+err.Error())
		return
	}

	timestamp := now.Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus(now, "screenshot failed: "+err.Error())
		return
	}
	m.setStatus(now, "saved "+path)
}

// View renders the game screen and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

func (m Model) footer() string {
	if m.status != "" && m.opts.Clock.Now().Before(m.statusTill) {
		return statusStyle.Render(m.status)
	}
	return m.help.View(m.keys.Keys())
}

// LastRound returns the most recent finished round, if any.
func (m Model) LastRound() (core.RoundSummary, bool) {
	if m.lastRound == nil {
		return core.RoundSummary{}, false
	}
	return *m.lastRound, true
}

// Run starts the Bubble Tea program for a single game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
