package ghostcatch

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/ghost-catcher/internal/clock"
	"github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch/sim"
)

// Phase is the state of a Session.
type Phase int

const (
	PhaseIdle   Phase = iota // no round has been played, or the round was abandoned
	PhaseActive              // countdown running, entities spawning and falling
	PhaseFrozen              // countdown paused, entities static
	PhaseEnded               // the last round ran out of time
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseFrozen:
		return "frozen"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Settings configures every round a Session plays.
type Settings struct {
	RoundLength   time.Duration
	FreezeLength  time.Duration
	RampEvery     int // countdown seconds between ramps, 0 disables ramping
	FrameInterval time.Duration
	InitialRamps  int // ramp steps applied before the first spawn
	GhostPoints   int
	BombPenalty   int
	Params        sim.Params
}

// DefaultSettings returns the standard 30 second round.
func DefaultSettings() Settings {
	return Settings{
		RoundLength:   30 * time.Second,
		FreezeLength:  5 * time.Second,
		RampEvery:     10,
		FrameInterval: time.Second / 60,
		GhostPoints:   1,
		BombPenalty:   10,
		Params:        sim.DefaultParams(),
	}
}

// Stats counts what happened during the current or last round.
type Stats struct {
	Ghosts int
	Bombs  int
	Nets   int
	Missed int
	Ramps  int
}

// RoundResult is published when a round runs out of time.
type RoundResult struct {
	Score     int
	HighScore int
	Stats     Stats
	Started   time.Time
	Duration  time.Duration // includes time spent frozen
}

// TapOutcome describes a tap that hit an entity.
type TapOutcome struct {
	Entity sim.Entity
	Delta  int  // applied score change, after clamping
	Froze  bool // the tap hit a net; the field is frozen
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRoundHook registers a callback that receives every finished round.
// It runs on the scheduler's goroutine after the session has entered PhaseEnded.
func WithRoundHook(fn func(RoundResult)) SessionOption {
	return func(s *Session) {
		s.onRound = fn
	}
}

// Session runs rounds of the game on top of a scheduler: a frame timer that
// spawns and moves entities, a one second countdown, and the freeze delay.
// All methods and timer callbacks must run on the same goroutine.
type Session struct {
	sched    clock.Scheduler
	settings Settings
	rng      *rand.Rand
	onRound  func(RoundResult)

	engine    *sim.Engine
	phase     Phase
	score     int
	highScore int
	timeLeft  int
	stats     Stats
	started   time.Time
	lastFrame time.Time

	frame     clock.Timer
	countdown clock.Timer
	thaw      clock.Timer
	freezeGen uint64
}

// NewSession creates an idle session. The high score starts at zero and
// survives every later Start.
func NewSession(sched clock.Scheduler, settings Settings, rng *rand.Rand, opts ...SessionOption) *Session {
	if settings.FrameInterval <= 0 {
		settings.FrameInterval = time.Second / 60
	}
	s := &Session{
		sched:    sched,
		settings: settings,
		rng:      rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a round on a viewport of the given size. A round already in
// progress is discarded without publishing a result.
func (s *Session) Start(width, height float64) {
	s.stopTimers()
	s.freezeGen++

	s.engine = sim.NewEngine(width, height, s.settings.Params, s.rng)
	for range s.settings.InitialRamps {
		s.engine.RampDifficulty()
	}

	now := s.sched.Now()
	s.score = 0
	s.timeLeft = int(s.settings.RoundLength / time.Second)
	s.stats = Stats{}
	s.started = now
	s.lastFrame = now
	s.phase = PhaseActive

	s.frame = s.sched.Every(s.settings.FrameInterval, s.onFrame)
	s.countdown = s.sched.Every(time.Second, s.onSecond)
}

// Stop abandons the current round and returns to PhaseIdle.
// No result is published. The high score is kept.
func (s *Session) Stop() {
	s.stopTimers()
	s.freezeGen++
	s.engine = nil
	s.timeLeft = 0
	s.phase = PhaseIdle
}

// HandleTap resolves a tap at viewport pixel (x, y). Taps count while the
// round is active or frozen. It returns false when nothing was hit.
func (s *Session) HandleTap(x, y float64) (TapOutcome, bool) {
	if s.phase != PhaseActive && s.phase != PhaseFrozen {
		return TapOutcome{}, false
	}
	ent, ok := s.engine.ResolveTap(x, y)
	if !ok {
		return TapOutcome{}, false
	}
	return s.apply(ent), true
}

func (s *Session) apply(ent sim.Entity) TapOutcome {
	out := TapOutcome{Entity: ent}
	before := s.score

	switch ent.Kind {
	case sim.KindGhost:
		s.stats.Ghosts++
		s.score += s.settings.GhostPoints
		s.highScore = max(s.highScore, s.score)
	case sim.KindBomb:
		s.stats.Bombs++
		s.score = max(0, s.score-s.settings.BombPenalty)
	case sim.KindNet:
		s.stats.Nets++
		s.freeze()
		out.Froze = true
	}

	out.Delta = s.score - before
	return out
}

func (s *Session) onFrame() {
	now := s.sched.Now()
	elapsed := now.Sub(s.lastFrame)
	s.lastFrame = now

	if s.phase == PhaseActive {
		s.engine.Spawn(now.Sub(s.started))
	}
	s.stats.Missed += s.engine.Update(elapsed)
}

// onSecond decides on the value before the decrement: the round ends when
// it is 1 or less, and the engine ramps when it is a multiple of RampEvery.
func (s *Session) onSecond() {
	if s.phase != PhaseActive {
		return
	}
	if s.timeLeft <= 1 {
		s.end()
		return
	}
	if every := s.settings.RampEvery; every > 0 && s.timeLeft%every == 0 {
		s.engine.RampDifficulty()
		s.stats.Ramps++
	}
	s.timeLeft--
}

// freeze pauses the countdown and the field for FreezeLength. A net tapped
// while already frozen keeps the pending thaw, so every freeze ends exactly
// FreezeLength after it began.
func (s *Session) freeze() {
	if s.phase == PhaseFrozen {
		s.engine.FreezeAll()
		return
	}
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
	if s.thaw != nil {
		s.thaw.Stop()
	}

	s.engine.FreezeAll()
	s.phase = PhaseFrozen

	s.freezeGen++
	gen := s.freezeGen
	s.thaw = s.sched.AfterFunc(s.settings.FreezeLength, func() {
		s.onThaw(gen)
	})
}

// onThaw ends the freeze it was scheduled for. A thaw from an earlier freeze
// or an earlier round is ignored.
func (s *Session) onThaw(gen uint64) {
	if gen != s.freezeGen || s.phase != PhaseFrozen {
		return
	}
	s.thaw = nil
	s.engine.UnfreezeAll()
	s.phase = PhaseActive
	s.countdown = s.sched.Every(time.Second, s.onSecond)
}

func (s *Session) end() {
	s.stopTimers()
	s.freezeGen++

	now := s.sched.Now()
	s.engine.Reset(now.Sub(s.started))
	s.timeLeft = 0
	s.phase = PhaseEnded

	if s.onRound != nil {
		s.onRound(RoundResult{
			Score:     s.score,
			HighScore: s.highScore,
			Stats:     s.stats,
			Started:   s.started,
			Duration:  now.Sub(s.started),
		})
	}
}

func (s *Session) stopTimers() {
	for _, t := range []*clock.Timer{&s.frame, &s.countdown, &s.thaw} {
		if *t != nil {
			(*t).Stop()
			*t = nil
		}
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the score of the current or last round.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score since the session was created.
func (s *Session) HighScore() int { return s.highScore }

// TimeLeft returns the countdown in whole seconds.
func (s *Session) TimeLeft() int { return s.timeLeft }

// Active reports whether a round is in progress, frozen or not.
func (s *Session) Active() bool {
	return s.phase == PhaseActive || s.phase == PhaseFrozen
}

// Frozen reports whether the freeze effect is on.
func (s *Session) Frozen() bool { return s.phase == PhaseFrozen }

// Stats returns the counters of the current or last round.
func (s *Session) Stats() Stats { return s.stats }

// Entities returns the live entities for rendering, oldest first.
func (s *Session) Entities() []sim.Entity {
	if s.engine == nil {
		return nil
	}
	return s.engine.Entities()
}

// Difficulty returns the engine's current difficulty.
func (s *Session) Difficulty() sim.Difficulty {
	if s.engine == nil {
		return s.settings.Params.Difficulty
	}
	return s.engine.Difficulty()
}
