// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package psort

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidWorkers is returned for a worker count below one (or below
	// zero in a Config, where zero selects the default).
	ErrInvalidWorkers = errors.New("psort: invalid worker count")

	// ErrInvalidThreshold is returned for a negative threshold.
	ErrInvalidThreshold = errors.New("psort: invalid threshold")

	// ErrNilSortFunc is returned when no sequential algorithm is supplied.
	ErrNilSortFunc = errors.New("psort: nil sort func")

	// ErrOverlappingWindows is returned when a window set is not a disjoint,
	// gap-free cover of the slice. Concurrent writes are never started on
	// such a set.
	ErrOverlappingWindows = errors.New("psort: windows overlap or leave gaps")
)

// WorkerPanicError reports a panic raised by the sequential algorithm while
// sorting one window. The whole Sort call fails and the slice is left in an
// unspecified state.
type WorkerPanicError struct {
	Window Window
	Value  any
}

func (e *WorkerPanicError) Error() string {
	return fmt.Sprintf("psort: worker for window [%d, %d) panicked: %v", e.Window.Start, e.Window.End, e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *WorkerPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
