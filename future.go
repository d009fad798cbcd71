package futures

import (
	"context"
	"time"
)

// ResolveFunc completes the write side of a Future with a value or an error.
// Only the first invocation has any effect; a Future is resolved exactly once.
type ResolveFunc[T any] func(value T, err error)

// A Future represents a one-shot asynchronous result: a value of type T or an
// error that will be available at some point. Futures are created with
// NewFuture, FromValue or FromError, or returned by Then, Chain and the All
// family.
type Future[T any] struct {
	ctx context.Context
}

// NewFuture creates an unresolved Future together with the function that
// resolves it. The resolve function may be called from any goroutine; calls
// after the first are no-ops.
func NewFuture[T any]() (*Future[T], ResolveFunc[T]) {
	ctx, cancel := context.WithCancelCause(context.Background())

	future := &Future[T]{
		ctx: ctx,
	}

	return future, func(value T, err error) {
		cancel(&resolution[T]{
			value: value,
			err:   err,
		})
	}
}

// FromValue returns a Future that is already resolved with the given value.
func FromValue[T any](value T) *Future[T] {
	future, resolve := NewFuture[T]()
	resolve(value, nil)
	return future
}

// FromError returns a Future of T that is already resolved with the given
// error.
func FromError[T any](err error) *Future[T] {
	future, resolve := NewFuture[T]()
	var zero T
	resolve(zero, err)
	return future
}

// Done returns a channel that is closed when the future has been resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.ctx.Done()
}

// Poll waits up to timeout for the future to be resolved and reports whether
// it is. A timeout of zero (or less) performs a pure non-blocking check.
// Once Poll has returned true it keeps returning true.
func (f *Future[T]) Poll(timeout time.Duration) bool {
	if timeout <= 0 {
		select {
		case <-f.ctx.Done():
			return true
		default:
			return false
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.ctx.Done():
		return true
	case <-timer.C:
		return false
	}
}

// Get blocks until the future is resolved and returns its value and error.
// Get may be called any number of times; every call returns the same result.
func (f *Future[T]) Get() (T, error) {
	<-f.ctx.Done()

	cause := context.Cause(f.ctx)
	if res, ok := cause.(*resolution[T]); ok {
		return res.value, res.err
	}
	var zero T
	return zero, cause
}

// Wait blocks until the future is resolved and returns its error, if any.
func (f *Future[T]) Wait() error {
	_, err := f.Get()
	return err
}

type resolution[T any] struct {
	value T
	err   error
}

func (r *resolution[T]) Error() string {
	if r.err != nil {
		return r.err.Error()
	}
	return "future resolved"
}
