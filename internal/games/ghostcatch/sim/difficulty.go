package sim

import (
	"math"
	"time"
)

// Odds holds per-kind spawn probabilities. They sum to 1.
type Odds struct {
	Ghost float64
	Bomb  float64
	Net   float64
}

// Pick maps a uniform draw r in [0, 1) onto a kind using cumulative thresholds.
func (o Odds) Pick(r float64) Kind {
	switch {
	case r < o.Ghost:
		return KindGhost
	case r < o.Ghost+o.Bomb:
		return KindBomb
	default:
		return KindNet
	}
}

// Difficulty is the set of parameters the ramp step moves. It is a value:
// Ramp returns the next step and leaves its receiver untouched.
type Difficulty struct {
	SpawnInterval   time.Duration // minimum time between spawn attempts
	SpawnCount      int           // entities per spawn attempt
	Odds            Odds
	SpeedMultiplier float64 // cumulative factor applied to new spawns' speed
}

// DefaultDifficulty returns the starting parameters of every round.
func DefaultDifficulty() Difficulty {
	return Difficulty{
		SpawnInterval:   600 * time.Millisecond,
		SpawnCount:      1,
		Odds:            Odds{Ghost: 0.75, Bomb: 0.15, Net: 0.10},
		SpeedMultiplier: 1,
	}
}

// RampRules describes one ramp step.
type RampRules struct {
	IntervalStep  time.Duration // subtracted from SpawnInterval
	IntervalFloor time.Duration
	CountCap      int
	GhostStep     float64 // added to Odds.Ghost
	GhostCap      float64
	BombShare     float64 // share of the non-ghost mass given to bombs; nets get the rest
	SpeedFactor   float64 // applied to live entities and to SpeedMultiplier
}

// DefaultRampRules returns the standard ramp.
func DefaultRampRules() RampRules {
	return RampRules{
		IntervalStep:  40 * time.Millisecond,
		IntervalFloor: 300 * time.Millisecond,
		CountCap:      3,
		GhostStep:     0.03,
		GhostCap:      0.85,
		BombShare:     0.6,
		SpeedFactor:   1.05,
	}
}

// Ramp returns the difficulty one step harder. Every field moves only in the
// harder direction and stops at its cap or floor.
func (d Difficulty) Ramp(r RampRules) Difficulty {
	next := d

	if interval := d.SpawnInterval - r.IntervalStep; interval > r.IntervalFloor {
		next.SpawnInterval = interval
	} else if r.IntervalFloor < d.SpawnInterval {
		next.SpawnInterval = r.IntervalFloor
	}

	if d.SpawnCount < r.CountCap {
		next.SpawnCount = d.SpawnCount + 1
	}

	ghost := math.Min(r.GhostCap, d.Odds.Ghost+r.GhostStep)
	if ghost < d.Odds.Ghost {
		ghost = d.Odds.Ghost
	}
	rest := 1 - ghost
	next.Odds = Odds{
		Ghost: ghost,
		Bomb:  rest * r.BombShare,
		Net:   rest * (1 - r.BombShare),
	}

	if r.SpeedFactor > 1 {
		next.SpeedMultiplier = d.SpeedMultiplier * r.SpeedFactor
	}

	return next
}

// RampN applies n ramp steps.
func (d Difficulty) RampN(r RampRules, n int) Difficulty {
	for range n {
		d = d.Ramp(r)
	}
	return d
}
