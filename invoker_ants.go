package futures

import (
	"time"

	"github.com/panjf2000/ants/v2"
)

// AntsInvoker is a dispatch invoker backed by an ants goroutine pool, for
// callers that want continuations to run concurrently on a bounded,
// recycling pool instead of the serialized WorkerInvoker.
type AntsInvoker struct {
	pool *ants.Pool
}

// NewAntsInvoker creates an invoker running closures on an ants pool of the
// given size.
func NewAntsInvoker(size int) (*AntsInvoker, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &AntsInvoker{pool: pool}, nil
}

func (i *AntsInvoker) Invoke(fn func()) {
	if err := i.pool.Submit(fn); err != nil {
		// The pool is released or overloaded; run on the caller's goroutine
		// so the closure is not lost.
		fn()
	}
}

func (i *AntsInvoker) Stop() {
	_ = i.pool.ReleaseTimeout(time.Minute)
}
