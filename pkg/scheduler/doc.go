// Package scheduler runs deferred callbacks that can be cancelled.
//
// Code that needs "do this after a delay" takes a Scheduler instead of
// calling time.AfterFunc directly, so tests can drive time with Manual:
//
//	clock := scheduler.NewManual()
//	clock.AfterFunc(2*time.Second, hideSpinner)
//	clock.Advance(2 * time.Second) // hideSpinner runs here
//
// A Group collects the tasks created through it and cancels all of them with
// StopAll, which is how a form discards stale effects when it is submitted
// again or abandoned.
package scheduler
