package futures

import (
	"fmt"
	"time"
)

// continuationFuture waits for an input future and, once it is ready, runs a
// user continuation whose return value resolves the output future. If the
// input carries an error, the continuation is not invoked and the error is
// forwarded verbatim.
type continuationFuture[T, U any] struct {
	timedPollable
	in      *Future[T]
	resolve ResolveFunc[U]
	cont    func(*Future[T]) (U, error)
}

func (c *continuationFuture[T, U]) Poll(timeout time.Duration) (bool, error) {
	return c.timedPollable.poll(timeout, c.in.Poll)
}

func (c *continuationFuture[T, U]) Dispatch(err error) {
	var zero U

	if err != nil {
		c.resolve(zero, err)
		return
	}

	if _, err := c.in.Get(); err != nil {
		c.resolve(zero, err)
		return
	}

	value, err := invokeContinuation(c.in, c.cont)
	c.resolve(value, err)
}

// invokeContinuation runs a user continuation, converting a panic into an
// error that wraps ErrPanic so it can be placed into the output future.
func invokeContinuation[T, U any](f *Future[T], cont func(*Future[T]) (U, error)) (value U, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
	}()

	return cont(f)
}
