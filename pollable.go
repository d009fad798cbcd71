package futures

import (
	"time"
)

// Pollable is a single-use unit of waiting: something that can be polled for
// readiness and then dispatched exactly once.
//
// The lifecycle is pending -> (ready | failed) -> dispatched. An executor
// owns every Pollable submitted to it until it calls Dispatch.
type Pollable interface {
	// Poll waits up to timeout for the pollable to become ready and reports
	// whether it is. A non-nil error means the pollable has terminally failed
	// and must be dispatched with that error. Once Poll has returned true,
	// subsequent calls return true promptly.
	Poll(timeout time.Duration) (bool, error)

	// Dispatch finalizes the pollable, completing its output with err (nil
	// when the pollable became ready). Dispatch is called exactly once and
	// never panics back into the executor, with the deliberate exception of
	// Observe continuations.
	Dispatch(err error)
}

// TimedPollable is a Pollable bounded by an absolute deadline. Executors may
// use the deadline to poll soonest-expiring pollables first; they are not
// required to.
type TimedPollable interface {
	Pollable

	// Deadline returns the instant after which the pollable fails with
	// ErrTimeout.
	Deadline() time.Time
}

// Executor watches pollables and eventually dispatches them when they become
// ready, fail or time out.
type Executor interface {
	// Submit transfers ownership of the pollable to the executor. It never
	// blocks. If the executor has been stopped, the pollable is dispatched
	// synchronously with ErrExecutorStopped.
	Submit(p Pollable)

	// Stop marks the executor terminal and fails every held pollable with
	// ErrExecutorStopped. Stop is idempotent.
	Stop()
}

// timedPollable implements the deadline bookkeeping shared by all adapters.
// The deadline is fixed at construction and immutable.
type timedPollable struct {
	deadline time.Time
}

func newTimedPollable(limit time.Duration) timedPollable {
	return timedPollable{deadline: time.Now().Add(limit)}
}

func timedPollableAt(deadline time.Time) timedPollable {
	return timedPollable{deadline: deadline}
}

func (t *timedPollable) Deadline() time.Time {
	return t.deadline
}

// poll applies the deadline to a single poll pass. Before the deadline it
// delegates with the full timeout. At or past the deadline it performs one
// last zero-wait poll, so a value that arrived in the same instant the
// deadline expired is not dropped.
func (t *timedPollable) poll(timeout time.Duration, timedPoll func(time.Duration) bool) (bool, error) {
	if time.Now().Before(t.deadline) {
		return timedPoll(timeout), nil
	}

	if timedPoll(0) {
		return true, nil
	}
	return false, ErrTimeout
}
