// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for fork/join
// execution. A Pool is created once and reused across many sort calls, so
// repeated sorts do not pay goroutine spawn cost per window.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	cfg := psort.DefaultConfig()
//	cfg.Pool = pool
//	for _, batch := range batches {
//	    if err := psort.SortWith(cfg, batch, seqsort.QuickSort[float64]); err != nil {
//	        return err
//	    }
//	}
package workerpool

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one task of a Run call plus the slot its result goes to.
type workItem struct {
	fn      func() error
	result  *error
	barrier *sync.WaitGroup
}

// PanicError is returned by Run when a task panics. The worker that ran the
// task survives and keeps serving the pool.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: task panicked: %v", e.Value)
}

// New creates a pool with numWorkers persistent goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		*item.result = call(item.fn)
		item.barrier.Done()
	}
}

// call runs fn, converting a panic into a *PanicError.
func call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Queued tasks still complete.
// Calling Close multiple times is safe; calling it while a Run is in flight
// is not.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes every task on the pool and blocks until all of them have
// returned. It returns the error of the lowest-indexed failing task, or nil.
//
// Tasks must not call Run on the same pool: a task waiting on the pool holds
// a worker and can deadlock it.
func (p *Pool) Run(tasks ...func() error) error {
	if len(tasks) == 0 {
		return nil
	}

	results := make([]error, len(tasks))

	if p.closed.Load() || len(tasks) == 1 {
		// Sequential fallback for a closed pool or a single task.
		for i, fn := range tasks {
			results[i] = call(fn)
		}
		return firstError(results)
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, fn := range tasks {
		p.workC <- workItem{fn: fn, result: &results[i], barrier: &wg}
	}
	wg.Wait()

	return firstError(results)
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
