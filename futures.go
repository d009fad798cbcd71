// Package futures extends one-shot asynchronous result values with three
// capabilities the bare Future type does not have: attaching continuations
// that run when a future becomes ready, composing many futures into a single
// aggregate future, and bounding how long the library waits for any future
// before giving up.
//
// Waiting is multiplexed onto a small, fixed number of goroutines by a
// polling executor. The executor polls every watched future at a fixed
// quantum, so readiness is detected with up to one quantum of lag per
// watched future (and up to quantum*N^2 in the worst case when continuations
// recursively watch further futures). The design trades polling lag for
// resource economy; it is not a sub-millisecond scheduler.
package futures

import (
	"errors"
	"fmt"
)

var (
	// ErrWait indicates a systemic failure while waiting for a future: the
	// executor was stopped, no executor was available, the wait limit was
	// exceeded, or a chained continuation returned a nil future. ErrTimeout,
	// ErrExecutorStopped and ErrNoExecutor wrap ErrWait; ErrPanic does not.
	ErrWait = errors.New("future wait failed")

	// ErrTimeout is returned when a future does not become ready within the
	// configured wait limit. It wraps ErrWait.
	ErrTimeout = fmt.Errorf("%w: wait limit exceeded", ErrWait)

	// ErrExecutorStopped is returned when a future is submitted to an
	// executor that has been stopped, or when a stop cancels a pending wait.
	// It wraps ErrWait.
	ErrExecutorStopped = fmt.Errorf("%w: executor has been stopped and is no longer accepting pollables", ErrWait)

	// ErrNoExecutor is returned when no executor is available to carry out a
	// wait: none was supplied with On and no default executor has been
	// installed. A chained continuation whose executor has been stopped fails
	// with ErrExecutorStopped instead. It wraps ErrWait.
	ErrNoExecutor = fmt.Errorf("%w: no executor available", ErrWait)

	// ErrPanic is wrapped around the recovered value when a user continuation
	// panics. The wrapped error is placed into the output future.
	ErrPanic = errors.New("continuation panicked")
)
