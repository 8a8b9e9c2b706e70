package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghost-catcher/internal/core"
	"github.com/vovakirdan/ghost-catcher/internal/storage"
)

// fakeGame records what the model feeds it and ends a round on a chosen frame.
type fakeGame struct {
	resets []core.RuntimeConfig
	frames []core.InputFrame
	endOn  int
	state  core.GameState
}

func (g *fakeGame) ID() string          { return "fake" }
func (g *fakeGame) Title() string       { return "Fake" }
func (g *fakeGame) Description() string { return "records input" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := core.StepResult{State: g.state}
	if len(g.frames) == g.endOn {
		g.state.GameOver = true
		res.State = g.state
		res.Round = &core.RoundSummary{Game: "fake", Difficulty: "normal", Score: 5, HighScore: 5, EndedAt: in.Now}
	}
	return res
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})
	m.Init()

	if len(g.resets) != 1 || g.resets[0].ScreenH != 23 {
		t.Fatalf("Reset() calls = %+v, expected one with height 23", g.resets)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if last := g.resets[len(g.resets)-1]; last.ScreenW != 100 || last.ScreenH != 39 {
		t.Errorf("resize Reset() = %+v", last)
	}

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Errorf("view has %d lines, expected 40", lines)
	}
}

func TestModelFeedsTapsAndTime(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})

	m = update(t, m, tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m = update(t, m, TickMsg(now))

	if len(g.frames) != 1 {
		t.Fatalf("Step() called %d times", len(g.frames))
	}
	in := g.frames[0]
	if !in.Now.Equal(now) {
		t.Errorf("frame time = %v, expected %v", in.Now, now)
	}
	if len(in.Taps) != 1 || in.Taps[0] != (core.Tap{Col: 12, Row: 7}) {
		t.Errorf("taps = %+v", in.Taps)
	}
	if !in.Has(core.ActionStart) {
		t.Error("enter should start the game")
	}

	m = update(t, m, TickMsg(now.Add(time.Second/60)))
	if next := g.frames[1]; len(next.Taps) != 0 || next.Has(core.ActionStart) {
		t.Errorf("input leaked into the next frame: %+v", next)
	}
}

func TestModelJournalsRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endOn: 2}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{Store: store})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 4 {
		m = update(t, m, TickMsg(now.Add(time.Duration(i)*time.Second/60)))
	}

	rounds, err := store.RecentRounds("fake", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 || rounds[0].Score != 5 {
		t.Errorf("journal = %+v, expected the one finished round", rounds)
	}
	if r, ok := m.LastRound(); !ok || r.Score != 5 {
		t.Errorf("LastRound() = %+v, %v", r, ok)
	}
}

// fixedClock is a TimeProvider the test moves by hand.
type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func TestModelCopyWithoutClipboard(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clk := &fixedClock{now: now}
	g := &fakeGame{endOn: 1}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{Clock: clk})

	m = update(t, m, TickMsg(now))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = update(t, m, TickMsg(now.Add(time.Second/60)))

	if !strings.Contains(m.View(), "only available in local play") {
		t.Error("copying over SSH should explain why nothing was copied")
	}

	clk.now = now.Add(time.Second/60 + statusDuration)
	if strings.Contains(m.View(), "only available in local play") {
		t.Error("status should give way to the help bar once it expires")
	}
}

func TestLocalLoggingStaysOffTerminal(t *testing.T) {
	// Stand in for the terminal the game draws on.
	term, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	if err != nil {
		t.Fatal(err)
	}
	defer term.Close()
	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = term, term
	defer func() { os.Stdout, os.Stderr = stdout, stderr }()

	logPath := filepath.Join(t.TempDir(), "logs", "ghostcatcher.log")
	logger, logFile, err := OpenLogFile(logPath, log.DebugLevel)
	if err != nil {
		t.Fatalf("OpenLogFile() failed: %v", err)
	}
	defer logFile.Close()

	g := &fakeGame{endOn: 1}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{Logger: logger, Clipboard: true})
	update(t, m, TickMsg(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	info, err := term.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("terminal received %d bytes of log output", info.Size())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "round finished") {
		t.Errorf("log file = %q, expected the round", data)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if next.(Model).View() != "" {
		t.Error("a quitting model renders nothing")
	}
}
