// Package ghostcatch implements Ghost Catcher: ghosts, bombs and ice nets
// fall through a viewport and the player taps them before the countdown runs
// out. Session drives the simulation from a clock.Scheduler, and Game adapts
// a session to the terminal platform.
package ghostcatch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/ghost-catcher/internal/clock"
	"github.com/vovakirdan/ghost-catcher/internal/config"
	"github.com/vovakirdan/ghost-catcher/internal/core"
	"github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch/sim"
	"github.com/vovakirdan/ghost-catcher/internal/registry"
)

// ID is the registry id of the game.
const ID = "ghostcatch"

const (
	hudHeight  = 2 // title and score rows above the play area
	minScreenW = 30
	minScreenH = 12
)

var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets the config file used by games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on top of the loaded config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the terminal platform. Terminal cells of the play
// area are mapped onto a pixel viewport, so taps and entity positions use the
// same coordinates as the simulation.
type Game struct {
	cfg      config.GhostCatchConfig
	preset   config.DifficultyPreset
	settings Settings
	runtime  core.RuntimeConfig

	queue   *clock.Queue
	session *Session
	cells   core.CellMap

	rounds   int                // finished rounds
	finished *core.RoundSummary // round that ended during the current Step
	last     *core.RoundSummary
	tooSmall bool
}

// New creates a game. Configuration is loaded on Reset.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Ghost Catcher" }

// Description returns a one-line summary.
func (g *Game) Description() string {
	return "Catch falling ghosts, dodge bombs, tap nets to freeze time"
}

// SettingsFromConfig converts a loaded configuration to session settings.
func SettingsFromConfig(cfg config.GhostCatchConfig, frameInterval time.Duration) Settings {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	params := sim.Params{
		Ghost:       sim.KindProfile{Size: cfg.Kinds.Ghost.Size, BaseSpeed: cfg.Kinds.Ghost.BaseSpeed},
		Bomb:        sim.KindProfile{Size: cfg.Kinds.Bomb.Size, BaseSpeed: cfg.Kinds.Bomb.BaseSpeed},
		Net:         sim.KindProfile{Size: cfg.Kinds.Net.Size, BaseSpeed: cfg.Kinds.Net.BaseSpeed},
		SpeedJitter: cfg.Spawn.SpeedJitter,
		Lanes:       cfg.Spawn.Lanes,
		MaxLive:     cfg.Spawn.MaxLive,
		Difficulty: sim.Difficulty{
			SpawnInterval: ms(cfg.Spawn.IntervalMs),
			SpawnCount:    cfg.Spawn.Count,
			Odds: sim.Odds{
				Ghost: cfg.Spawn.Odds.Ghost,
				Bomb:  cfg.Spawn.Odds.Bomb,
				Net:   cfg.Spawn.Odds.Net,
			},
			SpeedMultiplier: 1,
		},
		Ramp: sim.RampRules{
			IntervalStep:  ms(cfg.Ramp.IntervalStepMs),
			IntervalFloor: ms(cfg.Ramp.IntervalFloorMs),
			CountCap:      cfg.Ramp.CountCap,
			GhostStep:     cfg.Ramp.GhostStep,
			GhostCap:      cfg.Ramp.GhostCap,
			BombShare:     cfg.Ramp.BombShare,
			SpeedFactor:   cfg.Ramp.SpeedFactor,
		},
	}

	rampEvery := cfg.Round.RampEverySecs
	if !cfg.Ramp.Enabled {
		rampEvery = 0
	}

	return Settings{
		RoundLength:   time.Duration(cfg.Round.DurationSecs) * time.Second,
		FreezeLength:  time.Duration(cfg.Round.FreezeSecs) * time.Second,
		RampEvery:     rampEvery,
		FrameInterval: frameInterval,
		InitialRamps:  cfg.Round.InitialRamps,
		GhostPoints:   cfg.Scoring.GhostPoints,
		BombPenalty:   cfg.Scoring.BombPenalty,
		Params:        params,
	}
}

// Reset loads the configuration and lays out the screen. The first call
// creates the session; later calls (on resize) abandon the running round
// but keep the high score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.session == nil {
		cfg, err := config.LoadGhostCatch(configPath)
		if err != nil {
			cfg = config.DefaultGhostCatchConfig()
		}
		config.ApplyGhostCatchPreset(&cfg, difficultyPreset)
		g.cfg = cfg
		g.preset = difficultyPreset
		g.settings = SettingsFromConfig(cfg, runtime.FrameInterval())
	} else {
		g.session.Stop()
	}

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.cells = core.CellMap{
		Area:  core.NewRect(1, hudHeight+1, max(1, runtime.ScreenW-2), max(1, runtime.ScreenH-hudHeight-2)),
		CellW: float64(g.cfg.Display.CellWidth),
		CellH: float64(g.cfg.Display.CellHeight),
	}
}

// ensureSession creates the scheduler and session on the first frame, so the
// scheduler's clock starts at the platform's first frame time.
func (g *Game) ensureSession(now time.Time) {
	if g.session != nil {
		return
	}
	g.queue = clock.NewQueue(now)
	g.session = NewSession(g.queue, g.settings, rand.New(rand.NewSource(g.runtime.Seed)),
		WithRoundHook(g.onRound))
}

func (g *Game) onRound(r RoundResult) {
	g.rounds++
	g.finished = &core.RoundSummary{
		Game:       ID,
		Difficulty: string(g.preset),
		Score:      r.Score,
		HighScore:  r.HighScore,
		Ghosts:     r.Stats.Ghosts,
		Bombs:      r.Stats.Bombs,
		Nets:       r.Stats.Nets,
		Missed:     r.Stats.Missed,
		Ramps:      r.Stats.Ramps,
		Duration:   r.Duration,
		EndedAt:    r.Started.Add(r.Duration),
	}
	g.last = g.finished
}

// Step advances the scheduler to in.Now, then applies the frame's actions
// and taps. A zero in.Now advances by one frame interval.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := in.Now
	if g.session == nil && now.IsZero() {
		now = time.Unix(0, 0)
	}
	g.ensureSession(now)
	if in.Now.IsZero() {
		now = g.queue.Now().Add(g.settings.FrameInterval)
	}

	g.finished = nil
	g.queue.AdvanceTo(now)

	// Start only begins a round from the overlay; restart also abandons a running one.
	start := in.Has(core.ActionStart) && !g.session.Active()
	if !g.tooSmall && (start || in.Has(core.ActionRestart)) {
		g.session.Start(g.cells.ViewportSize())
	}

	hits := 0
	for _, tap := range in.Taps {
		if !g.cells.Area.Contains(tap.Col, tap.Row) {
			continue
		}
		x, y := g.cells.CellToPixel(tap.Col, tap.Row)
		if _, ok := g.session.HandleTap(x, y); ok {
			hits++
		}
	}

	return core.StepResult{
		State: g.State(),
		Hits:  hits,
		Round: g.finished,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		TimeLeft:  g.session.TimeLeft(),
		Running:   g.session.Active(),
		Frozen:    g.session.Frozen(),
		GameOver:  g.session.Phase() == PhaseEnded,
	}
}

// LastRound returns the summary of the most recently finished round.
func (g *Game) LastRound() (core.RoundSummary, bool) {
	if g.last == nil {
		return core.RoundSummary{}, false
	}
	return *g.last, true
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}
