// Package workers provides a small fixed-size goroutine pool for independent computations.
package workers

import (
	"sync"
)

// DefaultWorkers is used when a non-positive worker count is requested
const DefaultWorkers = 10

// WorkerPool manages a pool of worker goroutines for parallel evaluation
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a new worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers
	}
	return &WorkerPool{
		numWorkers: numWorkers,
	}
}

// Size returns the configured number of workers
func (wp *WorkerPool) Size() int {
	return wp.numWorkers
}

// Run calls fn once for every index in [0, numJobs) and blocks until all calls return.
// Calls run concurrently on at most Size() goroutines; fn must only touch
// state owned by its index.
func (wp *WorkerPool) Run(numJobs int, fn func(index int)) {
	if numJobs <= 0 {
		return
	}

	jobs := make(chan int, numJobs)

	numActualWorkers := wp.numWorkers
	if numJobs < numActualWorkers {
		numActualWorkers = numJobs // Don't spawn more workers than jobs
	}

	var wg sync.WaitGroup
	for i := 0; i < numActualWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				fn(index)
			}
		}()
	}

	for idx := 0; idx < numJobs; idx++ {
		jobs <- idx
	}
	close(jobs)

	wg.Wait()
}

// Map applies fn to every item in parallel and returns the results in input order
func Map[T, R any](wp *WorkerPool, items []T, fn func(T) R) []R {
	results := make([]R, len(items))
	wp.Run(len(items), func(index int) {
		results[index] = fn(items[index])
	})
	return results
}
