package core

import (
	"fmt"
	"time"
)

// RoundSummary describes a finished round. Games attach one to the StepResult
// of the frame on which the round ended.
type RoundSummary struct {
	Game       string
	Difficulty string
	Score      int
	HighScore  int
	Ghosts     int // ghosts caught
	Bombs      int // bombs tapped
	Nets       int // nets tapped
	Missed     int // entities that fell out unresolved
	Ramps      int
	Duration   time.Duration
	EndedAt    time.Time
}

// String formats the summary as a single shareable line.
func (r RoundSummary) String() string {
	return fmt.Sprintf("%s (%s): score %d, best %d | ghosts %d, bombs %d, nets %d, missed %d | %s",
		r.Game, r.Difficulty, r.Score, r.HighScore,
		r.Ghosts, r.Bombs, r.Nets, r.Missed, r.Duration.Round(time.Second))
}
