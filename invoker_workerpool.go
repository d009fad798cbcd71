package futures

import (
	"sync/atomic"

	"github.com/gammazero/workerpool"
)

// WorkerpoolInvoker is a dispatch invoker backed by a gammazero workerpool,
// an alternative bounded-concurrency strategy for running continuations.
type WorkerpoolInvoker struct {
	pool    *workerpool.WorkerPool
	stopped atomic.Bool
}

// NewWorkerpoolInvoker creates an invoker running closures on a workerpool
// with the given maximum number of workers.
func NewWorkerpoolInvoker(maxWorkers int) *WorkerpoolInvoker {
	return &WorkerpoolInvoker{
		pool: workerpool.New(maxWorkers),
	}
}

func (i *WorkerpoolInvoker) Invoke(fn func()) {
	if i.stopped.Load() {
		fn()
		return
	}
	i.pool.Submit(fn)
}

func (i *WorkerpoolInvoker) Stop() {
	if i.stopped.Swap(true) {
		return
	}
	i.pool.StopWait()
}
