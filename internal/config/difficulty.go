package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// easySpawnIntervalMs is the slower starting spawn interval of the easy preset.
const easySpawnIntervalMs = 900

// hardInitialRamps is how many ramp steps the hard preset starts with.
const hardInitialRamps = 3

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyGhostCatchPreset modifies the config based on a difficulty preset.
func ApplyGhostCatchPreset(cfg *GhostCatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ramp.Enabled = true
		if cfg.Spawn.IntervalMs < easySpawnIntervalMs {
			cfg.Spawn.IntervalMs = easySpawnIntervalMs
		}
		cfg.Round.InitialRamps = 0
	case DifficultyHard:
		cfg.Ramp.Enabled = true
		cfg.Round.InitialRamps = hardInitialRamps
	case DifficultyFixed:
		cfg.Ramp.Enabled = false
		cfg.Round.InitialRamps = 0
	}
}
