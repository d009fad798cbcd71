package futures

import (
	"fmt"
	"time"
)

// chainingFuture waits for an input future, runs a continuation that returns
// another future, and bridges that inner future's resolution into the output
// future by submitting a forwarding pollable to the same executor. The
// forwarding hop inherits the remaining portion of the original wait limit.
type chainingFuture[T, U any] struct {
	timedPollable
	executor Executor
	in       *Future[T]
	resolve  ResolveFunc[U]
	cont     func(*Future[T]) (*Future[U], error)
}

func (c *chainingFuture[T, U]) Poll(timeout time.Duration) (bool, error) {
	return c.timedPollable.poll(timeout, c.in.Poll)
}

func (c *chainingFuture[T, U]) Dispatch(err error) {
	var zero U

	if err != nil {
		c.resolve(zero, err)
		return
	}

	if _, err := c.in.Get(); err != nil {
		c.resolve(zero, err)
		return
	}

	inner, err := invokeContinuation(c.in, c.cont)
	if err != nil {
		c.resolve(zero, err)
		return
	}
	if inner == nil {
		c.resolve(zero, fmt.Errorf("%w: continuation returned a nil future", ErrWait))
		return
	}

	c.executor.Submit(&forwardingFuture[U]{
		timedPollable: timedPollableAt(c.deadline),
		in:            inner,
		resolve:       c.resolve,
	})
}
