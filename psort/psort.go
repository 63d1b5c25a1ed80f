// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// SortFunc sorts data ascending in place. Any sequential algorithm works;
// the engine only requires that it touch nothing outside the slice it is
// given.
type SortFunc[T any] func(data []T)

// Sort sorts data ascending in place using DefaultConfig.
func Sort[T constraints.Ordered](data []T, fn SortFunc[T]) error {
	return SortWith(DefaultConfig(), data, fn)
}

// SortWorkers sorts data with exactly workers windows on the parallel path.
// A worker count below one is rejected.
func SortWorkers[T constraints.Ordered](data []T, fn SortFunc[T], workers int) error {
	if workers < 1 {
		return errors.Wrapf(ErrInvalidWorkers, "workers=%d", workers)
	}
	cfg := DefaultConfig()
	cfg.Workers = workers
	return SortWith(cfg, data, fn)
}

// SortWith sorts data ascending in place.
//
// Slices shorter than two elements are left alone. Slices no longer than
// cfg.Threshold are sorted by fn directly. Longer slices are split into
// cfg.Workers windows (see Partition), each window is sorted by fn on its own
// goroutine, and the sorted windows are merged bottom-up.
//
// A panic inside fn is returned as a *WorkerPanicError; no partial merge is
// attempted.
func SortWith[T constraints.Ordered](cfg Config, data []T, fn SortFunc[T]) error {
	if fn == nil {
		return ErrNilSortFunc
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	n := len(data)
	if n < 2 {
		return nil
	}

	whole := Window{Start: 0, End: n}
	if n <= cfg.Threshold {
		return sortTask(data, whole, fn)()
	}

	p := cfg.workers(n)
	if p == 1 {
		return sortTask(data, whole, fn)()
	}

	windows := Partition(n, p)
	if err := dispatch(cfg, data, windows, fn); err != nil {
		return err
	}
	return mergePasses(cfg, data, windows[0].Len())
}
