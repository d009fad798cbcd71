package futures

import (
	"time"
)

// forwardingFuture moves an input future's resolution into another future's
// resolve function unchanged. It bridges the two executor hops of a chained
// continuation.
type forwardingFuture[T any] struct {
	timedPollable
	in      *Future[T]
	resolve ResolveFunc[T]
}

func (f *forwardingFuture[T]) Poll(timeout time.Duration) (bool, error) {
	return f.timedPollable.poll(timeout, f.in.Poll)
}

func (f *forwardingFuture[T]) Dispatch(err error) {
	if err != nil {
		var zero T
		f.resolve(zero, err)
		return
	}

	value, err := f.in.Get()
	f.resolve(value, err)
}
