package futures

import (
	"sort"
	"sync"
	"time"
)

// DefaultQuantum is the per-poll wait budget used when no explicit quantum is
// configured.
const DefaultQuantum = 10 * time.Millisecond

// ExecutorOption configures a PollingExecutor.
type ExecutorOption func(*PollingExecutor)

// WithQuantum sets the per-poll wait budget. A quantum of zero turns every
// poll into a pure non-blocking check; correctness is unchanged but the poll
// goroutine may saturate a core.
func WithQuantum(quantum time.Duration) ExecutorOption {
	return func(e *PollingExecutor) {
		e.quantum = quantum
	}
}

// WithPollInvoker sets the invoker used to run the poll loop. The default is
// a GoInvoker, so Submit never blocks the caller.
func WithPollInvoker(invoker Invoker) ExecutorOption {
	return func(e *PollingExecutor) {
		e.pollInvoker = invoker
	}
}

// WithDispatchInvoker sets the invoker used to run dispatches (and therefore
// user continuations). The default is a WorkerInvoker, which serializes them
// on a single goroutine.
func WithDispatchInvoker(invoker Invoker) ExecutorOption {
	return func(e *PollingExecutor) {
		e.dispatchInvoker = invoker
	}
}

// WithDeadlineOrdering makes each poll pass visit pollables in ascending
// deadline order, so the soonest-expiring ones are polled first. This is a
// lag optimization only; observable semantics do not change.
func WithDeadlineOrdering() ExecutorOption {
	return func(e *PollingExecutor) {
		e.orderByDeadline = true
	}
}

// PollingExecutor multiplexes waiting on many pollables onto one poll
// goroutine. The poll loop calls Poll(quantum) on every live pollable and
// hands the ready (or failed) ones to the dispatch invoker.
//
// The worst-case time to detect readiness is quantum*N for N independent
// pollables, and quantum*N^2 when each pollable's readiness depends on
// another pollable in the same batch, as happens with recursively chained
// continuations.
type PollingExecutor struct {
	quantum         time.Duration
	orderByDeadline bool

	mutex         sync.Mutex
	queue         []Pollable
	pollerRunning bool
	stopped       bool

	pollInvoker     Invoker
	dispatchInvoker Invoker
}

// NewPollingExecutor creates an active executor. Unless overridden via
// options, it polls with DefaultQuantum, runs the poll loop on a GoInvoker
// and dispatches on a WorkerInvoker.
func NewPollingExecutor(options ...ExecutorOption) *PollingExecutor {
	executor := &PollingExecutor{
		quantum: DefaultQuantum,
	}

	for _, option := range options {
		option(executor)
	}

	if executor.pollInvoker == nil {
		executor.pollInvoker = NewGoInvoker()
	}
	if executor.dispatchInvoker == nil {
		executor.dispatchInvoker = NewWorkerInvoker()
	}

	return executor
}

// NewDefaultExecutor creates the canonical executor pairing: a
// PollingExecutor with the given quantum, a GoInvoker for the poll loop and a
// WorkerInvoker that serializes dispatches.
func NewDefaultExecutor(quantum time.Duration) *PollingExecutor {
	return NewPollingExecutor(
		WithQuantum(quantum),
		WithPollInvoker(NewGoInvoker()),
		WithDispatchInvoker(NewWorkerInvoker()),
	)
}

// Submit transfers ownership of the pollable to the executor and returns
// immediately. If no poll loop is currently running, one is started through
// the poll invoker. After Stop, the pollable is dispatched synchronously with
// ErrExecutorStopped.
func (e *PollingExecutor) Submit(p Pollable) {
	e.mutex.Lock()

	if e.stopped {
		e.mutex.Unlock()
		p.Dispatch(ErrExecutorStopped)
		return
	}

	e.queue = append(e.queue, p)

	if e.pollerRunning {
		e.mutex.Unlock()
		return
	}
	e.pollerRunning = true
	e.mutex.Unlock()

	e.pollInvoker.Invoke(e.pollLoop)
}

// Stop marks the executor terminal and fails every queued pollable with
// ErrExecutorStopped. A poll loop that is mid-iteration notices on its next
// lock acquisition and drain-cancels its working batch. Stop does not wait
// for in-flight dispatches; use StopAndWait for that.
func (e *PollingExecutor) Stop() {
	e.mutex.Lock()
	if e.stopped {
		e.mutex.Unlock()
		return
	}
	e.stopped = true
	doomed := e.queue
	e.queue = nil
	e.mutex.Unlock()

	e.cancel(doomed)
}

// StopAndWait stops the executor and then stops both invokers, waiting for
// the poll loop to exit and for every pending dispatch to finish.
func (e *PollingExecutor) StopAndWait() {
	e.Stop()
	e.pollInvoker.Stop()
	e.dispatchInvoker.Stop()
}

// pollLoop is the single conceptual coroutine that drives the executor. At
// most one instance runs at a time, guarded by the pollerRunning flag.
func (e *PollingExecutor) pollLoop() {
	var batch []Pollable

	for {
		e.mutex.Lock()

		if e.stopped {
			doomed := append(batch, e.queue...)
			e.queue = nil
			e.pollerRunning = false
			e.mutex.Unlock()

			e.cancel(doomed)
			return
		}

		batch = append(batch, e.queue...)
		e.queue = nil

		if len(batch) == 0 {
			e.pollerRunning = false
			e.mutex.Unlock()
			return
		}
		e.mutex.Unlock()

		if e.orderByDeadline {
			sortByDeadline(batch)
		}

		// Poll every pollable in the batch, keeping the pending ones. The
		// lock is never held across Poll or invoker calls.
		pending := batch[:0]
		for _, p := range batch {
			ready, err := p.Poll(e.quantum)
			if !ready && err == nil {
				pending = append(pending, p)
				continue
			}

			p, err := p, err
			e.dispatchInvoker.Invoke(func() {
				p.Dispatch(err)
			})
		}
		batch = pending
	}
}

func (e *PollingExecutor) cancel(doomed []Pollable) {
	for _, p := range doomed {
		p := p
		e.dispatchInvoker.Invoke(func() {
			p.Dispatch(ErrExecutorStopped)
		})
	}
}

// sortByDeadline orders timed pollables by ascending deadline. Pollables
// without a deadline keep their relative order at the end of the batch.
func sortByDeadline(batch []Pollable) {
	sort.SliceStable(batch, func(i, j int) bool {
		ti, iok := batch[i].(TimedPollable)
		tj, jok := batch[j].(TimedPollable)
		if !iok || !jok {
			return iok && !jok
		}
		return ti.Deadline().Before(tj.Deadline())
	})
}
