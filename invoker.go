package futures

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/softsea/futures/internal/fifo"
)

// Invoker is a pluggable "run this closure somewhere" strategy. Executors use
// one invoker to run the poll loop and another to run dispatches.
type Invoker interface {
	// Invoke schedules fn for execution. Until Stop, it never blocks on fn
	// itself.
	Invoke(fn func())

	// Stop waits for all previously invoked closures to finish. After Stop,
	// further Invoke calls run fn on the caller's goroutine so no closure is
	// ever lost.
	Stop()
}

// GoInvoker runs every closure on its own tracked goroutine. Stop waits for
// all of them to terminate; none are ever detached.
type GoInvoker struct {
	mutex     sync.Mutex
	waitGroup sync.WaitGroup
	stopped   bool
}

// NewGoInvoker creates an invoker that is immediately ready to run closures.
func NewGoInvoker() *GoInvoker {
	return &GoInvoker{}
}

// Invoke runs fn on a new tracked goroutine, or on the caller's goroutine
// once the invoker has been stopped.
func (i *GoInvoker) Invoke(fn func()) {
	i.mutex.Lock()
	if i.stopped {
		i.mutex.Unlock()
		fn()
		return
	}
	i.waitGroup.Add(1)
	i.mutex.Unlock()

	go func() {
		defer i.waitGroup.Done()
		fn()
	}()
}

// Stop waits for every goroutine started by Invoke to terminate.
func (i *GoInvoker) Stop() {
	i.mutex.Lock()
	i.stopped = true
	i.mutex.Unlock()

	i.waitGroup.Wait()
}

// WorkerOption configures a WorkerInvoker.
type WorkerOption func(*WorkerInvoker)

// WithPanicHandler installs a handler that receives the value of any panic
// raised by an invoked closure, including the deliberate panics of Observe
// continuations. Without a handler, panics propagate and terminate the
// process.
func WithPanicHandler(handler func(any)) WorkerOption {
	return func(w *WorkerInvoker) {
		w.panicHandler = handler
	}
}

// WorkerInvoker owns a single worker goroutine that drains a FIFO of
// closures, running them one at a time in submission order. It is the default
// dispatch invoker, keeping user continuations serialized and off the poll
// goroutine.
type WorkerInvoker struct {
	queue        *fifo.Queue[func()]
	hasElements  chan struct{}
	quit         chan struct{}
	done         chan struct{}
	stopped      atomic.Bool
	stopOnce     sync.Once
	workerID     atomic.Uint64
	panicHandler func(any)
}

func NewWorkerInvoker(options ...WorkerOption) *WorkerInvoker {
	invoker := &WorkerInvoker{
		queue:       fifo.NewQueue[func()](),
		hasElements: make(chan struct{}, 1),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	for _, option := range options {
		option(invoker)
	}

	go invoker.worker()

	return invoker
}

func (w *WorkerInvoker) Invoke(fn func()) {
	if w.stopped.Load() {
		fn()
		return
	}

	w.queue.Push(fn)

	select {
	case w.hasElements <- struct{}{}:
	default:
	}
}

// Stop drains the queue, terminates the worker goroutine and waits for it.
// Stop may be called from inside a dispatched closure (an executor stopped
// from within a continuation); the self-join is detected and skipped, and the
// worker exits once the current closure returns.
func (w *WorkerInvoker) Stop() {
	w.stopOnce.Do(func() {
		w.stopped.Store(true)
		close(w.quit)
	})

	if goroutineID() == w.workerID.Load() {
		return
	}
	<-w.done
}

func (w *WorkerInvoker) worker() {
	defer close(w.done)

	w.workerID.Store(goroutineID())

	batch := make([]func(), 64)

	for {
		n := w.queue.Drain(batch)
		if n > 0 {
			for _, fn := range batch[:n] {
				w.run(fn)
			}
			continue
		}

		if w.stopped.Load() {
			return
		}

		select {
		case <-w.hasElements:
		case <-w.quit:
		}
	}
}

func (w *WorkerInvoker) run(fn func()) {
	if w.panicHandler != nil {
		defer func() {
			if p := recover(); p != nil {
				w.panicHandler(p)
			}
		}()
	}

	fn()
}

// goroutineID parses the current goroutine's id from the runtime stack header
// ("goroutine 123 [running]: ..."). It exists solely so a worker can detect
// that it is stopping itself.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	id, _ := strconv.ParseUint(header[:strings.IndexByte(header, ' ')], 10, 64)
	return id
}
