// Package worker runs independent jobs on a fixed number of goroutines.
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) Result

func (f JobFunc) Execute(ctx context.Context) Result {
	return f(ctx)
}

// Pool runs jobs on a fixed number of workers.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given number of workers, at least one.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

func (p *Pool) Workers() int {
	return p.workers
}

// Run executes jobs and returns their results in job order, whatever the
// order they complete in. When ctx is done no further job is started; the
// results of jobs never started are nil and ctx.Err() is returned.
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	queue := make(chan int, p.workers)

	var wg sync.WaitGroup
	for w := 0; w < min(p.workers, len(jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				// each worker writes only the indexes it received
				results[i] = jobs[i].Execute(ctx)
			}
		}()
	}

SUBMIT:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break SUBMIT
		case queue <- i:
		}
	}
	close(queue)
	wg.Wait()

	return results, ctx.Err()
}

// Errors returns the non nil errors of results, skipping nil results.
func Errors(results []Result) []error {
	var errs []error
	for _, r := range results {
		if r == nil {
			continue
		}
		if err := r.GetError(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
