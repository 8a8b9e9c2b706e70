// Package config provides YAML-based game configuration loading and
// difficulty presets for Ghost Catcher.
package config

import (
	"errors"
	"fmt"
	"math"
)

// GhostCatchConfig contains all configuration for Ghost Catcher.
type GhostCatchConfig struct {
	Round   RoundConfig   `yaml:"round"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Kinds   KindsConfig   `yaml:"kinds"`
	Scoring ScoringConfig `yaml:"scoring"`
	Ramp    RampConfig    `yaml:"ramp"`
	Display DisplayConfig `yaml:"display"`
}

// RoundConfig defines round timing.
type RoundConfig struct {
	DurationSecs  int `yaml:"duration_secs"`
	FreezeSecs    int `yaml:"freeze_secs"`
	RampEverySecs int `yaml:"ramp_every_secs"`
	InitialRamps  int `yaml:"initial_ramps"` // ramp steps applied before the round starts
}

// SpawnConfig defines the starting spawn parameters.
type SpawnConfig struct {
	IntervalMs  int        `yaml:"interval_ms"`
	Count       int        `yaml:"count"`
	MaxLive     int        `yaml:"max_live"`
	Lanes       int        `yaml:"lanes"`
	SpeedJitter float64    `yaml:"speed_jitter"`
	Odds        OddsConfig `yaml:"odds"`
}

// OddsConfig holds per-kind spawn probabilities.
type OddsConfig struct {
	Ghost float64 `yaml:"ghost"`
	Bomb  float64 `yaml:"bomb"`
	Net   float64 `yaml:"net"`
}

// KindsConfig defines per-kind sizes and speeds.
type KindsConfig struct {
	Ghost KindConfig `yaml:"ghost"`
	Bomb  KindConfig `yaml:"bomb"`
	Net   KindConfig `yaml:"net"`
}

// KindConfig defines one entity kind.
type KindConfig struct {
	Size      float64 `yaml:"size"`       // pixels
	BaseSpeed float64 `yaml:"base_speed"` // pixels per 1/60 s
}

// ScoringConfig defines score deltas.
type ScoringConfig struct {
	GhostPoints int `yaml:"ghost_points"`
	BombPenalty int `yaml:"bomb_penalty"`
}

// RampConfig defines one difficulty ramp step.
type RampConfig struct {
	Enabled         bool    `yaml:"enabled"`
	IntervalStepMs  int     `yaml:"interval_step_ms"`
	IntervalFloorMs int     `yaml:"interval_floor_ms"`
	CountCap        int     `yaml:"count_cap"`
	GhostStep       float64 `yaml:"ghost_step"`
	GhostCap        float64 `yaml:"ghost_cap"`
	BombShare       float64 `yaml:"bomb_share"`
	SpeedFactor     float64 `yaml:"speed_factor"`
}

// DisplayConfig maps terminal cells to viewport pixels.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Validate reports configuration values the game cannot run with.
func (c GhostCatchConfig) Validate() error {
	var errs []error

	if c.Round.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("round.duration_secs must be positive, got %d", c.Round.DurationSecs))
	}
	if c.Round.FreezeSecs < 0 {
		errs = append(errs, fmt.Errorf("round.freeze_secs must not be negative, got %d", c.Round.FreezeSecs))
	}
	if c.Round.RampEverySecs <= 0 {
		errs = append(errs, fmt.Errorf("round.ramp_every_secs must be positive, got %d", c.Round.RampEverySecs))
	}
	if c.Round.InitialRamps < 0 {
		errs = append(errs, fmt.Errorf("round.initial_ramps must not be negative, got %d", c.Round.InitialRamps))
	}

	if c.Spawn.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval_ms must be positive, got %d", c.Spawn.IntervalMs))
	}
	if c.Spawn.Count <= 0 {
		errs = append(errs, fmt.Errorf("spawn.count must be positive, got %d", c.Spawn.Count))
	}
	if c.Spawn.MaxLive <= 0 {
		errs = append(errs, fmt.Errorf("spawn.max_live must be positive, got %d", c.Spawn.MaxLive))
	}
	if c.Spawn.Lanes <= 0 {
		errs = append(errs, fmt.Errorf("spawn.lanes must be positive, got %d", c.Spawn.Lanes))
	}
	if c.Spawn.SpeedJitter < 0 {
		errs = append(errs, fmt.Errorf("spawn.speed_jitter must not be negative, got %v", c.Spawn.SpeedJitter))
	}
	odds := c.Spawn.Odds
	if odds.Ghost < 0 || odds.Bomb < 0 || odds.Net < 0 {
		errs = append(errs, errors.New("spawn.odds must not be negative"))
	}
	if sum := odds.Ghost + odds.Bomb + odds.Net; math.Abs(sum-1) > 1e-6 {
		errs = append(errs, fmt.Errorf("spawn.odds must sum to 1, got %v", sum))
	}

	for name, k := range map[string]KindConfig{"ghost": c.Kinds.Ghost, "bomb": c.Kinds.Bomb, "net": c.Kinds.Net} {
		if k.Size <= 0 {
			errs = append(errs, fmt.Errorf("kinds.%s.size must be positive, got %v", name, k.Size))
		}
		if k.BaseSpeed < 0 {
			errs = append(errs, fmt.Errorf("kinds.%s.base_speed must not be negative, got %v", name, k.BaseSpeed))
		}
	}

	if c.Scoring.GhostPoints < 0 || c.Scoring.BombPenalty < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}

	if c.Ramp.Enabled {
		if c.Ramp.IntervalStepMs < 0 || c.Ramp.IntervalFloorMs < 0 {
			errs = append(errs, errors.New("ramp interval step and floor must not be negative"))
		}
		if c.Ramp.GhostStep < 0 || c.Ramp.GhostCap < 0 || c.Ramp.GhostCap > 1 {
			errs = append(errs, errors.New("ramp ghost step must not be negative and ghost cap must be in [0, 1]"))
		}
		if c.Ramp.BombShare < 0 || c.Ramp.BombShare > 1 {
			errs = append(errs, fmt.Errorf("ramp.bomb_share must be in [0, 1], got %v", c.Ramp.BombShare))
		}
		if c.Ramp.SpeedFactor < 1 {
			errs = append(errs, fmt.Errorf("ramp.speed_factor must be at least 1, got %v", c.Ramp.SpeedFactor))
		}
	}

	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, errors.New("display cell dimensions must be positive"))
	}

	return errors.Join(errs...)
}
