package futures

import (
	"sync"
)

var (
	defaultMutex    sync.Mutex
	defaultExecutor Executor
)

// Default returns a snapshot of the currently installed default executor, or
// nil if none has been installed.
func Default() Executor {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	return defaultExecutor
}

// SetDefault installs the given executor as the process-wide default used by
// Then, Chain, All and Observe when no explicit executor is supplied. It
// returns a function that restores the previously installed executor.
//
// Nested installations must be undone in LIFO order, typically by deferring
// the restore function:
//
//	restore := futures.SetDefault(executor)
//	defer restore()
func SetDefault(executor Executor) (restore func()) {
	defaultMutex.Lock()
	prev := defaultExecutor
	defaultExecutor = executor
	defaultMutex.Unlock()

	return func() {
		defaultMutex.Lock()
		defaultExecutor = prev
		defaultMutex.Unlock()
	}
}
