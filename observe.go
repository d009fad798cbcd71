package futures

// Observe schedules a side-effect continuation to run once the input future
// is ready. There is no output future: a wait error or an error carried by
// the input panics on the dispatching goroutine. Installing a panic handler
// on the dispatch invoker is the only way to intercept such failures.
//
// Observe panics immediately if no executor is available.
func Observe[T any](f *Future[T], cont func(*Future[T]), options ...CallOption) {
	opts := applyCallOptions(options)

	if opts.executor == nil {
		panic(ErrNoExecutor)
	}

	opts.executor.Submit(&observedFuture[T]{
		timedPollable: newTimedPollable(opts.limit),
		in:            f,
		cont:          cont,
	})
}
