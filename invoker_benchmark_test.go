package futures_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/softsea/futures"
)

type invokerWorkload struct {
	name      string
	taskCount int
}

type invokerSubject struct {
	name string
	make func() futures.Invoker
}

var invokerWorkloads = []invokerWorkload{
	{"1k", 1000},
	{"100k", 100000},
}

var invokerSubjects = []invokerSubject{
	{"Worker", func() futures.Invoker {
		return futures.NewWorkerInvoker()
	}},
	{"Go", func() futures.Invoker {
		return futures.NewGoInvoker()
	}},
	{"Ants", func() futures.Invoker {
		invoker, _ := futures.NewAntsInvoker(8)
		return invoker
	}},
	{"Workerpool", func() futures.Invoker {
		return futures.NewWorkerpoolInvoker(8)
	}},
}

func BenchmarkInvokers(b *testing.B) {
	for _, workload := range invokerWorkloads {
		for _, subject := range invokerSubjects {
			name := fmt.Sprintf("%s/%s", workload.name, subject.name)
			b.Run(name, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					runInvoker(subject.make(), workload.taskCount)
				}
			})
		}
	}
}

func runInvoker(invoker futures.Invoker, taskCount int) {
	var wg sync.WaitGroup
	wg.Add(taskCount)
	for n := 0; n < taskCount; n++ {
		invoker.Invoke(func() {
			wg.Done()
		})
	}
	wg.Wait()
	invoker.Stop()
}

func BenchmarkExecutorThroughput(b *testing.B) {
	dispatchSubjects := []invokerSubject{
		{"Worker", func() futures.Invoker {
			return futures.NewWorkerInvoker()
		}},
		{"Ants", func() futures.Invoker {
			invoker, _ := futures.NewAntsInvoker(8)
			return invoker
		}},
		{"Workerpool", func() futures.Invoker {
			return futures.NewWorkerpoolInvoker(8)
		}},
	}

	for _, subject := range dispatchSubjects {
		b.Run(subject.name, func(b *testing.B) {
			executor := futures.NewPollingExecutor(
				futures.WithQuantum(0),
				futures.WithDispatchInvoker(subject.make()),
			)
			defer executor.StopAndWait()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				future := futures.Then(futures.FromValue(i), func(f *futures.Future[int]) (int, error) {
					return f.Get()
				}, futures.On(executor))
				_, _ = future.Get()
			}
		})
	}
}
