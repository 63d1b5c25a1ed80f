// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// forkJoin runs every task concurrently and returns once all of them have
// finished, with the first error observed. Tasks go to cfg.Pool when one is
// configured, otherwise each gets its own goroutine.
func (c Config) forkJoin(tasks []func() error) error {
	if c.Pool != nil {
		return c.Pool.Run(tasks...)
	}
	var g errgroup.Group
	for _, task := range tasks {
		g.Go(task)
	}
	return g.Wait()
}

// sortTask binds fn to the window w of data. A panic in fn is returned as a
// *WorkerPanicError.
func sortTask[T any](data []T, w Window, fn SortFunc[T]) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.WithStack(&WorkerPanicError{Window: w, Value: r})
			}
		}()
		fn(of(data, w))
		return nil
	}
}

// dispatch sorts every window of data with fn concurrently. It does not return
// before every window is done, so callers never observe a partially sorted
// window.
func dispatch[T any](cfg Config, data []T, windows []Window, fn SortFunc[T]) error {
	if err := checkWindows(windows, len(data)); err != nil {
		return err
	}
	tasks := make([]func() error, len(windows))
	for i, w := range windows {
		tasks[i] = sortTask(data, w, fn)
	}
	return cfg.forkJoin(tasks)
}
