package config

import (
	_ "embed"
)

//go:embed defaults/ghostcatch.yaml
var defaultGhostCatchYAML []byte

// DefaultGhostCatchConfig returns the default Ghost Catcher configuration.
func DefaultGhostCatchConfig() GhostCatchConfig {
	return GhostCatchConfig{
		Round: RoundConfig{
			DurationSecs:  30,
			FreezeSecs:    5,
			RampEverySecs: 10,
			InitialRamps:  0,
		},
		Spawn: SpawnConfig{
			IntervalMs:  600,
			Count:       1,
			MaxLive:     25,
			Lanes:       5,
			SpeedJitter: 1.5,
			Odds: OddsConfig{
				Ghost: 0.75,
				Bomb:  0.15,
				Net:   0.10,
			},
		},
		Kinds: KindsConfig{
			Ghost: KindConfig{Size: 40, BaseSpeed: 3.0},
			Bomb:  KindConfig{Size: 35, BaseSpeed: 2.5},
			Net:   KindConfig{Size: 35, BaseSpeed: 2.5},
		},
		Scoring: ScoringConfig{
			GhostPoints: 1,
			BombPenalty: 10,
		},
		Ramp: RampConfig{
			Enabled:         true,
			IntervalStepMs:  40,
			IntervalFloorMs: 300,
			CountCap:        3,
			GhostStep:       0.03,
			GhostCap:        0.85,
			BombShare:       0.6,
			SpeedFactor:     1.05,
		},
		Display: DisplayConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
	}
}
