package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the duration of one frame at the configured tick rate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score in this process
	TimeLeft  int  // Seconds left in the round
	Running   bool // Whether a round is in progress
	Frozen    bool // Whether the freeze effect is active
	GameOver  bool // Whether the last round has ended
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Hits  int           // Taps that resolved an entity this frame
	Round *RoundSummary // Set on the frame a round ends
}
