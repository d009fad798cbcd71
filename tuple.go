package futures

import (
	"time"
)

// Tuple2 carries two futures of distinct types, resolved together by All2.
type Tuple2[A, B any] struct {
	First  *Future[A]
	Second *Future[B]
}

// Tuple3 carries three futures of distinct types, resolved together by All3.
type Tuple3[A, B, C any] struct {
	First  *Future[A]
	Second *Future[B]
	Third  *Future[C]
}

// Tuple4 carries four futures of distinct types, resolved together by All4.
type Tuple4[A, B, C, D any] struct {
	First  *Future[A]
	Second *Future[B]
	Third  *Future[C]
	Fourth *Future[D]
}

type tupleFuture2[A, B any] struct {
	timedPollable
	tuple   Tuple2[A, B]
	resolve ResolveFunc[Tuple2[A, B]]
}

func (t *tupleFuture2[A, B]) Poll(timeout time.Duration) (bool, error) {
	return t.timedPollable.poll(timeout, t.timedPoll)
}

func (t *tupleFuture2[A, B]) timedPoll(timeout time.Duration) bool {
	ready := t.tuple.First.Poll(timeout)
	ready = t.tuple.Second.Poll(timeout) && ready
	return ready
}

func (t *tupleFuture2[A, B]) Dispatch(err error) {
	if err != nil {
		var zero Tuple2[A, B]
		t.resolve(zero, err)
		return
	}

	t.resolve(t.tuple, nil)
}

type tupleFuture3[A, B, C any] struct {
	timedPollable
	tuple   Tuple3[A, B, C]
	resolve ResolveFunc[Tuple3[A, B, C]]
}

func (t *tupleFuture3[A, B, C]) Poll(timeout time.Duration) (bool, error) {
	return t.timedPollable.poll(timeout, t.timedPoll)
}

func (t *tupleFuture3[A, B, C]) timedPoll(timeout time.Duration) bool {
	ready := t.tuple.First.Poll(timeout)
	ready = t.tuple.Second.Poll(timeout) && ready
	ready = t.tuple.Third.Poll(timeout) && ready
	return ready
}

func (t *tupleFuture3[A, B, C]) Dispatch(err error) {
	if err != nil {
		var zero Tuple3[A, B, C]
		t.resolve(zero, err)
		return
	}

	t.resolve(t.tuple, nil)
}

type tupleFuture4[A, B, C, D any] struct {
	timedPollable
	tuple   Tuple4[A, B, C, D]
	resolve ResolveFunc[Tuple4[A, B, C, D]]
}

func (t *tupleFuture4[A, B, C, D]) Poll(timeout time.Duration) (bool, error) {
	return t.timedPollable.poll(timeout, t.timedPoll)
}

func (t *tupleFuture4[A, B, C, D]) timedPoll(timeout time.Duration) bool {
	ready := t.tuple.First.Poll(timeout)
	ready = t.tuple.Second.Poll(timeout) && ready
	ready = t.tuple.Third.Poll(timeout) && ready
	ready = t.tuple.Fourth.Poll(timeout) && ready
	return ready
}

func (t *tupleFuture4[A, B, C, D]) Dispatch(err error) {
	if err != nil {
		var zero Tuple4[A, B, C, D]
		t.resolve(zero, err)
		return
	}

	t.resolve(t.tuple, nil)
}
