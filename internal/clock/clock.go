// Package clock provides the timing sources that drive a game session.
//
// Games never call time.AfterFunc or time.NewTicker directly. They register
// callbacks with a Scheduler and get back a Timer handle they can cancel.
// The platform pumps the scheduler from its own frame loop, and tests pump it
// synthetically, so session logic never waits on the wall clock.
package clock

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer had already
	// fired (one-shot) or had already been stopped.
	Stop() bool
}

// Scheduler registers deferred and periodic callbacks.
// Callbacks never run concurrently with each other.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// AfterFunc runs f once, d after Now().
	AfterFunc(d time.Duration, f func()) Timer

	// Every runs f every d, starting d after Now(), until stopped.
	Every(d time.Duration, f func()) Timer
}

// TimeProvider supplies the current time.
type TimeProvider interface {
	Now() time.Time
}

// SystemTime is the wall clock.
type SystemTime struct{}

// Now returns time.Now().
func (SystemTime) Now() time.Time {
	return time.Now()
}
