// Package sim implements the Ghost Catcher simulation: falling entities,
// spawn timing, the difficulty ratchet and tap resolution.
// It has no knowledge of terminals, timers or scoring.
package sim

import "github.com/google/uuid"

// Kind identifies what a falling entity is.
type Kind int

const (
	KindGhost Kind = iota // +1 point
	KindBomb              // -10 points
	KindNet               // freezes the field
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGhost:
		return "ghost"
	case KindBomb:
		return "bomb"
	case KindNet:
		return "net"
	default:
		return "unknown"
	}
}

// Entity is a spawned falling object. Coordinates are viewport pixels with
// (X, Y) the top-left corner of the entity's bounding square.
type Entity struct {
	ID       uuid.UUID
	Seq      uint64 // spawn order, strictly increasing within an engine
	Kind     Kind
	X, Y     float64
	Speed    float64 // pixels per 1/60 s
	Size     float64 // diameter
	Resolved bool    // tapped; removed on the next Update
	Frozen   bool
}

// Center returns the centre of the entity's hit circle.
func (e Entity) Center() (float64, float64) {
	return e.X + e.Size/2, e.Y + e.Size/2
}

// Radius returns the hit radius.
func (e Entity) Radius() float64 {
	return e.Size / 2
}
