package scheduler

import "time"

// Task is a pending callback.
type Task interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the task; false means it already ran or was already stopped.
	Stop() bool
}

// Scheduler schedules callbacks to run once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

type realScheduler struct{}

// Real returns a Scheduler backed by time.AfterFunc.
// Callbacks run on their own goroutine.
func Real() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Task {
	return time.AfterFunc(d, fn)
}
