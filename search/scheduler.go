package search

import "time"

// Timer is a pending deferred callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Compile-time interface verification.
var _ Scheduler = RealScheduler{}

// RealScheduler schedules callbacks on the runtime timer.
type RealScheduler struct{}

// AfterFunc runs f in its own goroutine after d.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
