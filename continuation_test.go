package futures

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/softsea/futures/internal/assert"
)

func TestContinuationFutureDispatch(t *testing.T) {
	out, resolve := NewFuture[string]()

	c := &continuationFuture[int, string]{
		timedPollable: newTimedPollable(time.Minute),
		in:            FromValue(3),
		resolve:       resolve,
		cont: func(f *Future[int]) (string, error) {
			value, _ := f.Get()
			return strconv.Itoa(value * 10), nil
		},
	}

	ready, err := c.Poll(0)
	assert.True(t, ready)
	assert.NoError(t, err)

	c.Dispatch(nil)

	value, err := out.Get()
	assert.NoError(t, err)
	assert.Equal(t, "30", value)
}

func TestContinuationFutureForwardsInputError(t *testing.T) {
	out, resolve := NewFuture[string]()
	sentinel := errors.New("boom")

	c := &continuationFuture[int, string]{
		timedPollable: newTimedPollable(time.Minute),
		in:            FromError[int](sentinel),
		resolve:       resolve,
		cont: func(f *Future[int]) (string, error) {
			t.Errorf("Continuation must not run for a failed input")
			return "", nil
		},
	}

	c.Dispatch(nil)

	_, err := out.Get()
	assert.ErrorIs(t, sentinel, err)
}

func TestContinuationFutureDispatchWithWaitError(t *testing.T) {
	out, resolve := NewFuture[string]()

	c := &continuationFuture[int, string]{
		timedPollable: newTimedPollable(time.Minute),
		in:            FromValue(1),
		resolve:       resolve,
		cont: func(f *Future[int]) (string, error) {
			t.Errorf("Continuation must not run after a wait error")
			return "", nil
		},
	}

	c.Dispatch(ErrTimeout)

	_, err := out.Get()
	assert.ErrorIs(t, ErrTimeout, err)
}

func TestContinuationFutureRecoversPanic(t *testing.T) {
	out, resolve := NewFuture[string]()

	c := &continuationFuture[int, string]{
		timedPollable: newTimedPollable(time.Minute),
		in:            FromValue(1),
		resolve:       resolve,
		cont: func(f *Future[int]) (string, error) {
			panic("kaboom")
		},
	}

	c.Dispatch(nil)

	_, err := out.Get()
	assert.ErrorIs(t, ErrPanic, err)
}

func TestForwardingFutureDispatch(t *testing.T) {
	out, resolve := NewFuture[int]()

	f := &forwardingFuture[int]{
		timedPollable: newTimedPollable(time.Minute),
		in:            FromValue(17),
		resolve:       resolve,
	}

	ready, err := f.Poll(0)
	assert.True(t, ready)
	assert.NoError(t, err)

	f.Dispatch(nil)

	value, err := out.Get()
	assert.NoError(t, err)
	assert.Equal(t, 17, value)
}

func TestChainingFutureRejectsNilInnerFuture(t *testing.T) {
	executor := NewPollingExecutor(WithQuantum(time.Millisecond))
	defer executor.StopAndWait()

	out, resolve := NewFuture[int]()

	c := &chainingFuture[int, int]{
		timedPollable: newTimedPollable(time.Minute),
		executor:      executor,
		in:            FromValue(1),
		resolve:       resolve,
		cont: func(f *Future[int]) (*Future[int], error) {
			return nil, nil
		},
	}

	c.Dispatch(nil)

	_, err := out.Get()
	assert.ErrorIs(t, ErrWait, err)
}

func TestChainingFutureSubmitsToStoppedExecutor(t *testing.T) {
	executor := NewPollingExecutor(WithQuantum(time.Millisecond))
	executor.StopAndWait()

	out, resolve := NewFuture[int]()

	c := &chainingFuture[int, int]{
		timedPollable: newTimedPollable(time.Minute),
		executor:      executor,
		in:            FromValue(1),
		resolve:       resolve,
		cont: func(f *Future[int]) (*Future[int], error) {
			return FromValue(2), nil
		},
	}

	c.Dispatch(nil)

	_, err := out.Get()
	assert.ErrorIs(t, ErrExecutorStopped, err)
}

func TestObservedFuturePanicsOnError(t *testing.T) {
	o := &observedFuture[int]{
		timedPollable: newTimedPollable(time.Minute),
		in:            FromValue(1),
		cont:          func(f *Future[int]) {},
	}

	assert.PanicsWith(t, any(ErrTimeout), func() {
		o.Dispatch(ErrTimeout)
	})
}

func TestContainerFuturePollsEveryElement(t *testing.T) {
	pending, resolve := NewFuture[int]()

	out, resolveOut := NewFuture[[]*Future[int]]()

	c := &containerFuture[int]{
		timedPollable: newTimedPollable(time.Minute),
		futures:       []*Future[int]{FromValue(1), pending, FromValue(3)},
		resolve:       resolveOut,
	}

	ready, err := c.Poll(0)
	assert.False(t, ready)
	assert.NoError(t, err)

	resolve(2, nil)

	ready, err = c.Poll(0)
	assert.True(t, ready)
	assert.NoError(t, err)

	c.Dispatch(nil)

	resolved, err := out.Get()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(resolved))
}

func TestTupleFuturePollsEveryElement(t *testing.T) {
	pending, resolve := NewFuture[string]()

	out, resolveOut := NewFuture[Tuple2[int, string]]()

	tf := &tupleFuture2[int, string]{
		timedPollable: newTimedPollable(time.Minute),
		tuple:         Tuple2[int, string]{First: FromValue(1), Second: pending},
		resolve:       resolveOut,
	}

	ready, err := tf.Poll(0)
	assert.False(t, ready)
	assert.NoError(t, err)

	resolve("two", nil)

	ready, err = tf.Poll(0)
	assert.True(t, ready)
	assert.NoError(t, err)

	tf.Dispatch(nil)

	tuple, err := out.Get()
	assert.NoError(t, err)

	first, _ := tuple.First.Get()
	second, _ := tuple.Second.Get()
	assert.Equal(t, 1, first)
	assert.Equal(t, "two", second)
}
