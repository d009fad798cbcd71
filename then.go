package futures

import (
	"time"
)

// DefaultWaitLimit is the wait limit applied by Then, Chain, All and Observe
// when no Within option is supplied.
const DefaultWaitLimit = time.Hour

type callOptions struct {
	executor Executor
	limit    time.Duration
}

// CallOption configures a single Then, Chain, All or Observe call.
type CallOption func(*callOptions)

// On directs the call to the given executor instead of the process default.
func On(executor Executor) CallOption {
	return func(o *callOptions) {
		o.executor = executor
	}
}

// Within bounds the wait for the input future. After the limit elapses the
// continuation is not invoked and the call fails with ErrTimeout, which wraps
// ErrWait.
func Within(limit time.Duration) CallOption {
	return func(o *callOptions) {
		o.limit = limit
	}
}

func applyCallOptions(options []CallOption) callOptions {
	opts := callOptions{limit: DefaultWaitLimit}
	for _, option := range options {
		option(&opts)
	}
	if opts.executor == nil {
		opts.executor = Default()
	}
	return opts
}

// Then schedules a continuation to run once the input future is ready. The
// continuation's return value resolves the output future. If the input
// carries an error, or the wait limit elapses first, the continuation is not
// invoked and the output future carries that error instead.
func Then[T, U any](f *Future[T], cont func(*Future[T]) (U, error), options ...CallOption) *Future[U] {
	opts := applyCallOptions(options)

	out, resolve := NewFuture[U]()
	if opts.executor == nil {
		var zero U
		resolve(zero, ErrNoExecutor)
		return out
	}

	opts.executor.Submit(&continuationFuture[T, U]{
		timedPollable: newTimedPollable(opts.limit),
		in:            f,
		resolve:       resolve,
		cont:          cont,
	})

	return out
}

// Chain schedules a continuation that itself returns a future. The output
// future resolves with the inner future's resolution, waited for on the same
// executor under the remainder of the original wait limit.
func Chain[T, U any](f *Future[T], cont func(*Future[T]) (*Future[U], error), options ...CallOption) *Future[U] {
	opts := applyCallOptions(options)

	out, resolve := NewFuture[U]()
	if opts.executor == nil {
		var zero U
		resolve(zero, ErrNoExecutor)
		return out
	}

	opts.executor.Submit(&chainingFuture[T, U]{
		timedPollable: newTimedPollable(opts.limit),
		executor:      opts.executor,
		in:            f,
		resolve:       resolve,
		cont:          cont,
	})

	return out
}
