package ghostcatch

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/ghost-catcher/internal/clock"
	"github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch/sim"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, odds sim.Odds, opts ...SessionOption) (*Session, *clock.Queue) {
	t.Helper()
	settings := DefaultSettings()
	settings.Params.Difficulty.Odds = odds
	q := clock.NewQueue(epoch)
	return NewSession(q, settings, rand.New(rand.NewSource(7)), opts...), q
}

var (
	onlyGhosts = sim.Odds{Ghost: 1}
	onlyNets   = sim.Odds{Net: 1}
)

// visibleEntity advances the clock until an unresolved entity's centre is
// inside the viewport.
func visibleEntity(t *testing.T, s *Session, q *clock.Queue) sim.Entity {
	t.Helper()
	for range 200 {
		for _, e := range s.Entities() {
			if _, cy := e.Center(); !e.Resolved && cy >= 0 {
				return e
			}
		}
		q.Advance(10 * time.Millisecond)
	}
	t.Fatal("no entity became visible")
	return sim.Entity{}
}

func tap(t *testing.T, s *Session, e sim.Entity) TapOutcome {
	t.Helper()
	x, y := e.Center()
	out, ok := s.HandleTap(x, y)
	if !ok {
		t.Fatalf("tap at the centre of %s %v missed", e.Kind, e.ID)
	}
	return out
}

func TestScoreProgression(t *testing.T) {
	s, _ := newTestSession(t, onlyGhosts)
	s.Start(500, 800)

	kinds := []sim.Kind{sim.KindGhost, sim.KindGhost, sim.KindBomb, sim.KindBomb}
	want := []int{1, 2, 0, 0}
	for i, k := range kinds {
		s.apply(sim.Entity{Kind: k})
		if s.Score() != want[i] {
			t.Errorf("after tap %d (%s): score = %d, expected %d", i+1, k, s.Score(), want[i])
		}
	}
	if s.HighScore() != 2 {
		t.Errorf("HighScore() = %d, expected 2", s.HighScore())
	}

	s.Start(500, 800)
	if s.Score() != 0 || s.HighScore() != 2 {
		t.Errorf("after restart score = %d, high = %d; expected 0, 2", s.Score(), s.HighScore())
	}
}

func TestBombOutcomeReportsClampedDelta(t *testing.T) {
	s, _ := newTestSession(t, onlyGhosts)
	s.Start(500, 800)
	s.apply(sim.Entity{Kind: sim.KindGhost})
	s.apply(sim.Entity{Kind: sim.KindGhost})
	s.apply(sim.Entity{Kind: sim.KindGhost})

	out := s.apply(sim.Entity{Kind: sim.KindBomb})
	if out.Delta != -3 {
		t.Errorf("Delta = %d, expected -3", out.Delta)
	}
}

func TestHandleTapOnGhost(t *testing.T) {
	s, q := newTestSession(t, onlyGhosts)
	s.Start(500, 800)

	e := visibleEntity(t, s, q)
	out := tap(t, s, e)
	if out.Entity.ID != e.ID || out.Delta != 1 {
		t.Errorf("outcome = %+v", out)
	}
	if s.Score() != 1 || s.HighScore() != 1 || s.Stats().Ghosts != 1 {
		t.Errorf("score = %d, high = %d, stats = %+v", s.Score(), s.HighScore(), s.Stats())
	}

	if _, ok := s.HandleTap(-5, -5); ok {
		t.Error("tap outside the viewport should miss")
	}
}

func TestTapIgnoredOutsideRound(t *testing.T) {
	s, _ := newTestSession(t, onlyGhosts)
	if _, ok := s.HandleTap(10, 10); ok {
		t.Error("tap before Start should be ignored")
	}
	if s.Phase() != PhaseIdle || s.Active() {
		t.Errorf("new session phase = %s", s.Phase())
	}
}

func TestFreezeLastsExactlyFreezeLength(t *testing.T) {
	s, q := newTestSession(t, onlyNets)
	s.Start(500, 800)

	out := tap(t, s, visibleEntity(t, s, q))
	if !out.Froze || s.Phase() != PhaseFrozen || !s.Frozen() {
		t.Fatalf("net tap: outcome = %+v, phase = %s", out, s.Phase())
	}

	var want []sim.Entity
	for _, e := range s.Entities() {
		if !e.Resolved {
			want = append(want, e)
		}
	}
	timeLeft := s.TimeLeft()

	q.Advance(5*time.Second - time.Nanosecond)
	if s.Phase() != PhaseFrozen {
		t.Fatalf("phase = %s just before the freeze ends", s.Phase())
	}
	if s.TimeLeft() != timeLeft {
		t.Errorf("countdown moved while frozen: %d -> %d", timeLeft, s.TimeLeft())
	}

	got := s.Entities()
	if len(got) != len(want) {
		t.Fatalf("entity count changed while frozen: %d -> %d", len(want), len(got))
	}
	for i, e := range got {
		if e.ID != want[i].ID || e.X != want[i].X || e.Y != want[i].Y {
			t.Errorf("entity %d moved while frozen: %+v -> %+v", i, want[i], e)
		}
		if !e.Frozen {
			t.Errorf("entity %v is not frozen", e.ID)
		}
	}

	q.Advance(time.Nanosecond)
	if s.Phase() != PhaseActive {
		t.Fatalf("phase = %s after the freeze length", s.Phase())
	}
	for _, e := range s.Entities() {
		if e.Frozen {
			t.Errorf("entity %v still frozen after thaw", e.ID)
		}
	}

	// The countdown restarts with a fresh one second interval.
	q.Advance(time.Second - time.Nanosecond)
	if s.TimeLeft() != timeLeft {
		t.Errorf("countdown ticked early: %d", s.TimeLeft())
	}
	q.Advance(time.Nanosecond)
	if s.TimeLeft() != timeLeft-1 {
		t.Errorf("TimeLeft() = %d, expected %d", s.TimeLeft(), timeLeft-1)
	}
}

func TestNoSpawnWhileFrozen(t *testing.T) {
	s, q := newTestSession(t, onlyNets)
	s.Start(500, 800)

	tap(t, s, visibleEntity(t, s, q))
	q.Advance(20 * time.Millisecond) // one frame removes the tapped net
	count := len(s.Entities())

	q.Advance(4 * time.Second)
	if got := len(s.Entities()); got != count {
		t.Errorf("entities while frozen: %d -> %d", count, got)
	}
}

func TestNetWhileFrozenKeepsThaw(t *testing.T) {
	s, q := newTestSession(t, onlyNets)
	s.Start(500, 800)

	// Let several nets fall into view before the first freeze.
	q.Advance(2 * time.Second)
	tap(t, s, visibleEntity(t, s, q))
	frozeAt := q.Now()

	q.Advance(3 * time.Second)
	out := tap(t, s, visibleEntity(t, s, q))
	if !out.Froze || s.Phase() != PhaseFrozen {
		t.Fatalf("second net: froze = %v, phase = %s", out.Froze, s.Phase())
	}
	if s.Stats().Nets != 2 {
		t.Errorf("Nets = %d, expected 2", s.Stats().Nets)
	}

	q.AdvanceTo(frozeAt.Add(5*time.Second - time.Millisecond))
	if s.Phase() != PhaseFrozen {
		t.Fatalf("phase = %s just before the freeze ends", s.Phase())
	}
	q.AdvanceTo(frozeAt.Add(5 * time.Second))
	if s.Phase() != PhaseActive {
		t.Fatalf("phase = %s, expected active 5s after the first net", s.Phase())
	}
	if q.Pending() != 2 {
		t.Errorf("pending timers = %d, expected frame and countdown only", q.Pending())
	}
}

func TestRoundEnds(t *testing.T) {
	var results []RoundResult
	s, q := newTestSession(t, onlyGhosts, WithRoundHook(func(r RoundResult) {
		results = append(results, r)
	}))
	s.Start(500, 800)

	q.Advance(29 * time.Second)
	if s.Phase() != PhaseActive || s.TimeLeft() != 1 {
		t.Fatalf("at 29s phase = %s, time left = %d", s.Phase(), s.TimeLeft())
	}

	q.Advance(time.Second)
	if s.Phase() != PhaseEnded || s.Active() {
		t.Fatalf("at 30s phase = %s", s.Phase())
	}
	if s.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %d after the round", s.TimeLeft())
	}
	if n := len(s.Entities()); n != 0 {
		t.Errorf("%d entities left after the round", n)
	}
	if q.Pending() != 0 {
		t.Errorf("%d timers still scheduled after the round", q.Pending())
	}

	if len(results) != 1 {
		t.Fatalf("round hook called %d times", len(results))
	}
	r := results[0]
	if r.Duration != 30*time.Second || !r.Started.Equal(epoch) {
		t.Errorf("result = %+v", r)
	}
	if r.Stats.Ramps != 3 {
		t.Errorf("Ramps = %d, expected 3", r.Stats.Ramps)
	}
	if r.Stats.Missed == 0 {
		t.Error("untapped ghosts should have been counted as missed")
	}

	q.Advance(time.Minute)
	if len(results) != 1 || s.Phase() != PhaseEnded {
		t.Error("nothing should run after the round ended")
	}
}

func TestRampCadence(t *testing.T) {
	s, q := newTestSession(t, onlyGhosts)
	s.Start(500, 800)

	steps := []struct {
		advance time.Duration
		ramps   int
	}{
		{999 * time.Millisecond, 0},
		{time.Millisecond, 1}, // countdown at 30
		{9 * time.Second, 1},
		{time.Second, 2}, // 20
		{10 * time.Second, 3},
	}
	for _, st := range steps {
		q.Advance(st.advance)
		if got := s.Stats().Ramps; got != st.ramps {
			t.Errorf("at %s: ramps = %d, expected %d", q.Now().Sub(epoch), got, st.ramps)
		}
	}

	want := sim.DefaultDifficulty().RampN(sim.DefaultRampRules(), 3)
	if got := s.Difficulty(); got.SpawnInterval != want.SpawnInterval || got.SpawnCount != want.SpawnCount {
		t.Errorf("Difficulty() = %+v, expected %+v", got, want)
	}
}

func TestRampDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.RampEvery = 0
	q := clock.NewQueue(epoch)
	s := NewSession(q, settings, rand.New(rand.NewSource(1)))
	s.Start(500, 800)

	q.Advance(25 * time.Second)
	if s.Stats().Ramps != 0 {
		t.Errorf("Ramps = %d with ramping disabled", s.Stats().Ramps)
	}
}

func TestInitialRamps(t *testing.T) {
	settings := DefaultSettings()
	settings.InitialRamps = 3
	s := NewSession(clock.NewQueue(epoch), settings, rand.New(rand.NewSource(1)))
	s.Start(500, 800)

	want := sim.DefaultDifficulty().RampN(sim.DefaultRampRules(), 3)
	if got := s.Difficulty(); got.SpawnInterval != want.SpawnInterval {
		t.Errorf("SpawnInterval = %s, expected %s", got.SpawnInterval, want.SpawnInterval)
	}
	if s.Stats().Ramps != 0 {
		t.Error("initial ramps should not count as round ramps")
	}
}

func TestRestartDuringRound(t *testing.T) {
	var rounds int
	s, q := newTestSession(t, onlyGhosts, WithRoundHook(func(RoundResult) { rounds++ }))
	s.Start(500, 800)
	q.Advance(12 * time.Second)

	s.Start(500, 800)
	if s.TimeLeft() != 30 || s.Stats().Ramps != 0 {
		t.Errorf("restart: time left = %d, stats = %+v", s.TimeLeft(), s.Stats())
	}
	if q.Pending() != 2 {
		t.Errorf("Pending() = %d, expected the frame and countdown timers only", q.Pending())
	}

	q.Advance(30 * time.Second)
	if rounds != 1 {
		t.Errorf("round hook called %d times, expected 1", rounds)
	}
}

// leakyScheduler hands out one-shot timers whose Stop does nothing, the way
// a platform timer that already fired into a queue behaves.
type leakyScheduler struct {
	*clock.Queue
}

func (l leakyScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	l.Queue.AfterFunc(d, f)
	return noopTimer{}
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

func TestStaleThawIgnoredAfterRestart(t *testing.T) {
	q := clock.NewQueue(epoch)
	settings := DefaultSettings()
	settings.Params.Difficulty.Odds = onlyNets
	s := NewSession(leakyScheduler{q}, settings, rand.New(rand.NewSource(3)))

	s.Start(500, 800)
	tap(t, s, visibleEntity(t, s, q))
	firstFreeze := q.Now()

	s.Start(500, 800)
	tap(t, s, visibleEntity(t, s, q))
	secondFreeze := q.Now()
	if !secondFreeze.After(firstFreeze) {
		t.Fatal("second freeze should start later than the first")
	}

	q.AdvanceTo(firstFreeze.Add(5 * time.Second))
	if s.Phase() != PhaseFrozen {
		t.Fatalf("stale thaw ended the second freeze, phase = %s", s.Phase())
	}

	q.AdvanceTo(secondFreeze.Add(5 * time.Second))
	if s.Phase() != PhaseActive {
		t.Fatalf("phase = %s after the second freeze", s.Phase())
	}
}

func TestStaleThawIgnoredAfterStop(t *testing.T) {
	q := clock.NewQueue(epoch)
	settings := DefaultSettings()
	settings.Params.Difficulty.Odds = onlyNets
	s := NewSession(leakyScheduler{q}, settings, rand.New(rand.NewSource(3)))

	s.Start(500, 800)
	tap(t, s, visibleEntity(t, s, q))
	s.Stop()

	q.Advance(10 * time.Second)
	if s.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, the thaw should not revive a stopped round", s.Phase())
	}
	if q.Pending() != 0 {
		t.Errorf("%d timers scheduled after the stale thaw", q.Pending())
	}
}
