package futures

import (
	"time"
)

// observedFuture runs a side-effect continuation once its input future is
// ready. There is no output future to carry failures, so a wait error or an
// error held by the input panics on the dispatching goroutine. A dispatch
// invoker with a panic handler installed can intercept that panic.
type observedFuture[T any] struct {
	timedPollable
	in   *Future[T]
	cont func(*Future[T])
}

func (o *observedFuture[T]) Poll(timeout time.Duration) (bool, error) {
	return o.timedPollable.poll(timeout, o.in.Poll)
}

func (o *observedFuture[T]) Dispatch(err error) {
	if err != nil {
		panic(err)
	}

	if _, err := o.in.Get(); err != nil {
		panic(err)
	}

	o.cont(o.in)
}
