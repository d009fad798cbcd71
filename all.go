package futures

// All resolves once every future in the slice is ready. The output carries
// the input futures themselves so the caller can inspect per-element values
// and errors; an element holding an error does not fail the aggregate. An
// empty slice resolves immediately.
func All[T any](fs []*Future[T], options ...CallOption) *Future[[]*Future[T]] {
	opts := applyCallOptions(options)

	out, resolve := NewFuture[[]*Future[T]]()
	if opts.executor == nil {
		resolve(nil, ErrNoExecutor)
		return out
	}

	opts.executor.Submit(&containerFuture[T]{
		timedPollable: newTimedPollable(opts.limit),
		futures:       fs,
		resolve:       resolve,
	})

	return out
}

// AllOf is the variadic form of All.
func AllOf[T any](fs ...*Future[T]) *Future[[]*Future[T]] {
	return All(fs)
}

// AllRange resolves once every future in fs[first:last] is ready. The output
// carries the borrowed sub-slice; the caller must keep the backing slice
// alive until resolution.
func AllRange[T any](fs []*Future[T], first, last int, options ...CallOption) *Future[[]*Future[T]] {
	opts := applyCallOptions(options)

	out, resolve := NewFuture[[]*Future[T]]()
	if opts.executor == nil {
		resolve(nil, ErrNoExecutor)
		return out
	}

	opts.executor.Submit(&rangeFuture[T]{
		timedPollable: newTimedPollable(opts.limit),
		futures:       fs,
		first:         first,
		last:          last,
		resolve:       resolve,
	})

	return out
}

// All2 resolves once both futures are ready, carrying them as a Tuple2.
func All2[A, B any](a *Future[A], b *Future[B], options ...CallOption) *Future[Tuple2[A, B]] {
	opts := applyCallOptions(options)

	out, resolve := NewFuture[Tuple2[A, B]]()
	if opts.executor == nil {
		var zero Tuple2[A, B]
		resolve(zero, ErrNoExecutor)
		return out
	}

	opts.executor.Submit(&tupleFuture2[A, B]{
		timedPollable: newTimedPollable(opts.limit),
		tuple:         Tuple2[A, B]{First: a, Second: b},
		resolve:       resolve,
	})

	return out
}

// All3 resolves once all three futures are ready, carrying them as a Tuple3.
func All3[A, B, C any](a *Future[A], b *Future[B], c *Future[C], options ...CallOption) *Future[Tuple3[A, B, C]] {
	opts := applyCallOptions(options)

	out, resolve := NewFuture[Tuple3[A, B, C]]()
	if opts.executor == nil {
		var zero Tuple3[A, B, C]
		resolve(zero, ErrNoExecutor)
		return out
	}

	opts.executor.Submit(&tupleFuture3[A, B, C]{
		timedPollable: newTimedPollable(opts.limit),
		tuple:         Tuple3[A, B, C]{First: a, Second: b, Third: c},
		resolve:       resolve,
	})

	return out
}

// All4 resolves once all four futures are ready, carrying them as a Tuple4.
func All4[A, B, C, D any](a *Future[A], b *Future[B], c *Future[C], d *Future[D], options ...CallOption) *Future[Tuple4[A, B, C, D]] {
	opts := applyCallOptions(options)

	out, resolve := NewFuture[Tuple4[A, B, C, D]]()
	if opts.executor == nil {
		var zero Tuple4[A, B, C, D]
		resolve(zero, ErrNoExecutor)
		return out
	}

	opts.executor.Submit(&tupleFuture4[A, B, C, D]{
		timedPollable: newTimedPollable(opts.limit),
		tuple:         Tuple4[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d},
		resolve:       resolve,
	})

	return out
}
