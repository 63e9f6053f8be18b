// Package clock provides the timer facility notifications schedule against.
//
// Two implementations exist: Fake, a simulated clock that tests advance by
// hand, and Tea, which turns timers into bubbletea ticks so callbacks run on
// the program's update goroutine.
package clock

import "time"

// Timer is a handle to a scheduled single-shot callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was stopped before.
	Stop() bool
}

// Scheduler schedules single-shot callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}
